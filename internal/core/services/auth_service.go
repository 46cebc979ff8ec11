package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils"
	"github.com/deepak-sekarbabu-coder/apargo/pkg/config"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// authService validates the configured admin credential and mints bearer
// tokens for the protected API group.
type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Username != s.cfg.AdminUsername || !utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTIssuer, expiresAt)
	if err != nil {
		logger.Error("Failed to mint token", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Login succeeded", slog.String("username", req.Username))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
