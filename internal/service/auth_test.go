package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariven/dermalens-v2/backend/internal/service"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(db, "test-secret", 24)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Ada",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada", claims.Username)

	_, loginToken, err := svc.Login(ctx, "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(db, "test-secret", 24)
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Ada", Username: "ada", Email: "ada@example.com", Password: "correct-horse"}
	_, _, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(db, "test-secret", 24)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Ada", Username: "ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(db, "test-secret", 24)
	other := service.NewAuthService(db, "other-secret", 24)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Ada", Username: "ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
