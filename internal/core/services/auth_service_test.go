package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils"
	"github.com/deepak-sekarbabu-coder/apargo/pkg/config"
)

func authTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
		JWTIssuer:         "apargo-backend",
		JWTExpiryDuration: time.Hour,
	}
}

func TestLogin_Success(t *testing.T) {
	service := services.NewAuthService(authTestConfig(t, "s3cret"))

	resp, err := service.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	service := services.NewAuthService(authTestConfig(t, "s3cret"))

	resp, err := service.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	service := services.NewAuthService(authTestConfig(t, "s3cret"))

	_, err := service.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "s3cret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
