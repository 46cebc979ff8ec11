package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// AuthSvcFacade defines the authentication operations for the public routes.
type AuthSvcFacade interface {
	// Login validates the configured admin credential and mints a bearer
	// token for the protected API group.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
