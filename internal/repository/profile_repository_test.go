package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func TestProfileRepositoryFindByUserID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "display_name", "year_group", "user_type", "created_at", "updated_at"}).
		AddRow("user-1", "Aisha", "year2", "student", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, display_name, year_group, user_type, created_at, updated_at FROM profiles WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(rows)

	profile, err := repo.FindByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "year2", profile.YearGroup)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("user-1", "Aisha", "year3", "student", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	profile := &models.Profile{UserID: "user-1", DisplayName: "Aisha", YearGroup: "year3", UserType: "student"}
	require.NoError(t, repo.Upsert(context.Background(), profile))
	assert.False(t, profile.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
