package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

// ProfileRepository handles persistence for academic profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository instantiates a profile repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUserID loads the profile belonging to a user.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	const query = `SELECT user_id, display_name, year_group, user_type, created_at, updated_at FROM profiles WHERE user_id = $1`
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or replaces a user's profile.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	const query = `INSERT INTO profiles (user_id, display_name, year_group, user_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET display_name = $2, year_group = $3, user_type = $4, updated_at = $6`
	if _, err := r.db.ExecContext(ctx, query,
		profile.UserID, profile.DisplayName, profile.YearGroup, profile.UserType, profile.CreatedAt, profile.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
