package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mohan0265/mydurhamlaw-api/internal/dto"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
)

type profileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// ProfileService reads and writes the academic profile attached to a user.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, "profile has not been set up yet")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// YearGroup resolves the caller's year group for the overview endpoints.
// A missing profile or unrecognised year group is a precondition failure,
// not a 404: the account exists, it just has no usable academic context.
func (s *ProfileService) YearGroup(ctx context.Context, userID string) (models.YearKey, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	key := models.YearKey(profile.YearGroup)
	if key.Index() < 0 {
		return "", appErrors.Clone(appErrors.ErrProfileIncomplete, "profile year group is not recognised")
	}
	return key, nil
}

// Update upserts the caller's profile.
func (s *ProfileService) Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	if models.YearKey(req.YearGroup).Index() < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "year_group must be one of foundation, year1, year2, year3")
	}

	userType := req.UserType
	if userType == "" {
		userType = "student"
	}

	profile := &models.Profile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		YearGroup:   req.YearGroup,
		UserType:    userType,
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}

	s.logger.Info("profile updated",
		zap.String("user_id", userID),
		zap.String("year_group", profile.YearGroup))
	return profile, nil
}
