package usecase

import (
	"context"

	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/internal/session"
)

// AuthUsecase drives the sign-in/sign-up/reset flows against the identity
// provider and keeps the auth state store in step.
type AuthUsecase interface {
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResponse, error)
	ResetPassword(ctx context.Context, req *authdto.ResetPasswordRequest) (*authdto.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser() *session.UserRecord
	ValidateToken(ctx context.Context, token string) (*session.UserRecord, error)
	SetIDTokenVerifier(v IDTokenVerifier)
}
