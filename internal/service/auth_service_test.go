package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
)

type fakeUserRepo struct {
	users         map[string]*models.User
	usersByID     map[string]*models.User
	tokens        map[string]*models.RefreshToken
	createdTokens []*models.RefreshToken
	revokedIDs    []string
	revokedUsers  []string
	lastLogin     map[string]time.Time
	passwordHash  map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        map[string]*models.User{},
		usersByID:    map[string]*models.User{},
		tokens:       map[string]*models.RefreshToken{},
		lastLogin:    map[string]time.Time{},
		passwordHash: map[string]string{},
	}
}

func (f *fakeUserRepo) addUser(u *models.User) {
	f.users[u.Email] = u
	f.usersByID[u.ID] = u
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.usersByID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, ts time.Time) error {
	f.lastLogin[id] = ts
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string, _ time.Time) error {
	f.passwordHash[id] = passwordHash
	return nil
}

func (f *fakeUserRepo) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	token.ID = "tok-" + token.Token[:6]
	f.tokens[token.Token] = token
	f.createdTokens = append(f.createdTokens, token)
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeUserRepo) RevokeRefreshToken(_ context.Context, id string, revokedAt time.Time) error {
	f.revokedIDs = append(f.revokedIDs, id)
	for _, t := range f.tokens {
		if t.ID == id {
			at := revokedAt
			t.RevokedAt = &at
		}
	}
	return nil
}

func (f *fakeUserRepo) RevokeUserRefreshTokens(_ context.Context, userID string) error {
	f.revokedUsers = append(f.revokedUsers, userID)
	return nil
}

func testAuthConfig() AuthConfig {
	return AuthConfig{
		AccessTokenSecret:  "unit-test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "mydurhamlaw-api",
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{
		ID:           "user-1",
		Email:        "student@durham.ac.uk",
		PasswordHash: string(hash),
		FullName:     "Test Student",
		Role:         models.RoleStudent,
		IsActive:     active,
	}
	repo.addUser(u)
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Len(t, repo.createdTokens, 1)
	assert.Contains(t, repo.lastLogin, user.ID)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "mydurhamlaw-api", claims.Issuer)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "battery-staple",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@durham.ac.uk",
		Password: "irrelevant",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", false)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErrors.FromError(err).Code)
}

func TestRefreshTokenRotates(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	login, err := svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The first token was revoked by the exchange.
	first := repo.tokens[login.RefreshToken]
	require.NotNil(t, first)
	assert.NotNil(t, first.RevokedAt)

	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestRefreshTokenExpired(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	expired := &models.RefreshToken{ID: "tok-old", UserID: user.ID, Token: "stale-token", ExpiresAt: time.Now().UTC().Add(-time.Hour)}
	repo.tokens[expired.Token] = expired

	_, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: expired.Token})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestLogoutRevokesOwnToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	login, err := svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken, user.ID))
	assert.NotNil(t, repo.tokens[login.RefreshToken].RevokedAt)
}

func TestLogoutRejectsForeignToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	login, err := svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct-horse"})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), login.RefreshToken, "someone-else")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	err := svc.ChangePassword(context.Background(), user.ID, models.ChangePasswordRequest{
		OldPassword: "correct-horse",
		NewPassword: "battery-staple-9",
	})
	require.NoError(t, err)
	assert.Contains(t, repo.passwordHash, user.ID)
	assert.Contains(t, repo.revokedUsers, user.ID)
}

func TestChangePasswordWrongOld(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "correct-horse", true)
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	err := svc.ChangePassword(context.Background(), user.ID, models.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "battery-staple-9",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil, nil, testAuthConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
