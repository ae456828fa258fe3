package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mohan0265/mydurhamlaw-api/internal/dto"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
)

type personalEventRepository interface {
	List(ctx context.Context, userID string, filter models.PersonalEventFilter) ([]models.PersonalEvent, int, error)
	FindByID(ctx context.Context, id string) (*models.PersonalEvent, error)
	Create(ctx context.Context, event *models.PersonalEvent) error
	Update(ctx context.Context, event *models.PersonalEvent) error
	Delete(ctx context.Context, id string) error
}

// EventService manages personal calendar entries.
type EventService struct {
	repo      personalEventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo personalEventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// List returns the caller's events matching the query, with pagination.
func (s *EventService) List(ctx context.Context, userID string, query dto.EventListQuery) ([]models.PersonalEvent, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event query")
	}

	filter := models.PersonalEventFilter{
		From:     query.From,
		To:       query.To,
		Kind:     models.EventKind(query.Kind),
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	events, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}

	pagination := models.NewPagination(filter.Page, filter.PageSize, total)
	return events, &pagination, nil
}

// Get returns a single event owned by the caller.
func (s *EventService) Get(ctx context.Context, userID, id string) (*models.PersonalEvent, error) {
	event, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create validates and persists a new event for the caller.
func (s *EventService) Create(ctx context.Context, userID string, req dto.CreateEventRequest) (*models.PersonalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if err := validateTimeOrder(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	event := &models.PersonalEvent{
		UserID:     userID,
		Title:      req.Title,
		EventDate:  req.EventDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Kind:       req.Kind,
		ModuleCode: req.ModuleCode,
		Details:    req.Details,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	s.logger.Info("personal event created",
		zap.String("event_id", event.ID),
		zap.String("user_id", userID),
		zap.String("date", event.EventDate))
	return event, nil
}

// Update replaces an event owned by the caller.
func (s *EventService) Update(ctx context.Context, userID, id string, req dto.UpdateEventRequest) (*models.PersonalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if err := validateTimeOrder(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	event, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.EventDate = req.EventDate
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Kind = req.Kind
	event.ModuleCode = req.ModuleCode
	event.Details = req.Details

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	return event, nil
}

// Delete removes an event owned by the caller.
func (s *EventService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.fetchOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}

func (s *EventService) fetchOwned(ctx context.Context, userID, id string) (*models.PersonalEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	// Ownership is enforced here rather than in SQL so a foreign ID yields
	// 404, not a hint that the row exists.
	if event.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return event, nil
}

func validateTimeOrder(start, end *string) error {
	if start == nil || end == nil {
		return nil
	}
	st, err := time.Parse("15:04", *start)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "start_time must be HH:MM")
	}
	et, err := time.Parse("15:04", *end)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "end_time must be HH:MM")
	}
	if !et.After(st) {
		return appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}
	return nil
}
