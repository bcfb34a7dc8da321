package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	authdomain "github.com/smallbiznis/rentdesk/internal/auth/domain"
	authrepo "github.com/smallbiznis/rentdesk/internal/auth/repository"
	authservice "github.com/smallbiznis/rentdesk/internal/auth/service"
	"github.com/smallbiznis/rentdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) authdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.Session{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	repo, sessionRepo := authrepo.New(db)
	return authservice.New(authservice.Params{
		Log:         zap.NewNop(),
		Config:      config.Config{SessionTTLHours: 1},
		Repo:        repo,
		SessionRepo: sessionRepo,
		GenID:       node,
	})
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, authdomain.CreateUserRequest{
		Email:    "ops@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops", user.DisplayName)

	result, err := svc.Login(ctx, authdomain.LoginRequest{
		Email:    "Ops@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)

	session, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, authdomain.CreateUserRequest{
		Email:    "ops@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, authdomain.LoginRequest{Email: "ops@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	// Unknown accounts fail the same way as bad passwords.
	_, err = svc.Login(ctx, authdomain.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, authdomain.CreateUserRequest{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, authdomain.CreateUserRequest{Email: "ops@example.com", Password: "another pass"})
	assert.ErrorIs(t, err, authdomain.ErrUserExists)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, authdomain.CreateUserRequest{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, authdomain.LoginRequest{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, authdomain.ErrSessionRevoked)
}

func TestChangePassword(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, authdomain.CreateUserRequest{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, authdomain.ChangePasswordRequest{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "fresh password",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, authdomain.ChangePasswordRequest{
		UserID:          user.ID,
		CurrentPassword: "correct horse",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, authdomain.ErrWeakPassword)

	err = svc.ChangePassword(ctx, authdomain.ChangePasswordRequest{
		UserID:          user.ID,
		CurrentPassword: "correct horse",
		NewPassword:     "fresh password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, authdomain.LoginRequest{Email: "ops@example.com", Password: "fresh password"})
	require.NoError(t, err)

	updated, err := svc.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := setup(t)

	_, err := svc.Authenticate(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, authdomain.ErrInvalidSession)

	_, err = svc.Authenticate(context.Background(), "   ")
	assert.ErrorIs(t, err, authdomain.ErrInvalidSession)
}
