package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgAuth "github.com/marcusvales/shoplane-backend/pkg/auth"
	"github.com/marcusvales/shoplane-backend/pkg/config"
	"github.com/marcusvales/shoplane-backend/pkg/db/models"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
	"github.com/marcusvales/shoplane-backend/pkg/security"
)

type stubUserRepo struct {
	user        *models.User
	lastLoginAt *time.Time
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, at time.Time) error {
	s.lastLoginAt = &at
	return nil
}

type stubSessionManager struct {
	generated []string
}

func (s *stubSessionManager) Generate(_ context.Context, accessID string) (string, error) {
	s.generated = append(s.generated, accessID)
	return "refresh-" + accessID, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret",
		Issuer:                 "shoplane-test",
		ExpirationMinutes:      15,
		RefreshTokenTTLMinutes: 60,
	}
}

func newTokenTestService(t *testing.T, user *models.User) (Service, *stubUserRepo, *stubSessionManager) {
	t.Helper()
	repo := &stubUserRepo{user: user}
	sessions := &stubSessionManager{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	require.NoError(t, err)
	return svc, repo, sessions
}

func seedTestUser(t *testing.T, password string, staff bool) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Email:        "dana@example.com",
		Name:         "Dana",
		PasswordHash: hash,
		IsStaff:      staff,
		IsActive:     true,
	}
}

func TestIssueTokensReturnsValidPair(t *testing.T) {
	user := seedTestUser(t, "hunter2hunter2", false)
	svc, repo, sessions := newTokenTestService(t, user)

	pair, err := svc.IssueTokens(context.Background(), TokenRequest{
		Email:    "dana@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, pkgAuth.RoleCustomer, claims.Role)

	require.Len(t, sessions.generated, 1)
	assert.Equal(t, claims.ID, sessions.generated[0])
	assert.NotNil(t, repo.lastLoginAt)
}

func TestIssueTokensStaffGetsAdminRole(t *testing.T) {
	user := seedTestUser(t, "hunter2hunter2", true)
	svc, _, _ := newTokenTestService(t, user)

	pair, err := svc.IssueTokens(context.Background(), TokenRequest{
		Email:    "dana@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pkgAuth.RoleAdmin, claims.Role)
}

func TestIssueTokensWrongPasswordUnauthorized(t *testing.T) {
	user := seedTestUser(t, "hunter2hunter2", false)
	svc, _, _ := newTokenTestService(t, user)

	_, err := svc.IssueTokens(context.Background(), TokenRequest{
		Email:    "dana@example.com",
		Password: "wrong-password",
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	assert.Equal(t, "invalid credentials", appErr.Message())
}

func TestIssueTokensUnknownEmailUnauthorized(t *testing.T) {
	svc, _, _ := newTokenTestService(t, nil)

	_, err := svc.IssueTokens(context.Background(), TokenRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
	// Same message as a bad password so the two cases cannot be told apart.
	assert.Equal(t, "invalid credentials", appErr.Message())
}

func TestIssueTokensInactiveUserUnauthorized(t *testing.T) {
	user := seedTestUser(t, "hunter2hunter2", false)
	user.IsActive = false
	svc, _, _ := newTokenTestService(t, user)

	_, err := svc.IssueTokens(context.Background(), TokenRequest{
		Email:    "dana@example.com",
		Password: "hunter2hunter2",
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
}
