package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/internal/identity"
	"storefront-backend/internal/session"
	"storefront-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// FlowError carries the user-facing message mapped from a provider rejection.
// Non-fatal: the user stays on the form and may retry.
type FlowError struct {
	Message string
}

func (e *FlowError) Error() string {
	return e.Message
}

// IDTokenVerifier verifies a raw identity-provider token server-side. The
// Firebase admin auth client satisfies it.
type IDTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*identity.Session, error)
}

type authUsecase struct {
	provider identity.Provider
	store    *session.Store
	durable  session.Tier
	scoped   session.Tier
	verifier IDTokenVerifier
	config   *config.Config

	// signToken is swapped out in tests to exercise signing failures.
	signToken func(*session.UserRecord) (string, error)
}

func NewAuthUsecase(provider identity.Provider, store *session.Store, durable, scoped session.Tier, cfg *config.Config) AuthUsecase {
	u := &authUsecase{
		provider: provider,
		store:    store,
		durable:  durable,
		scoped:   scoped,
		config:   cfg,
	}
	u.signToken = u.generateAccessToken
	return u
}

// SetIDTokenVerifier enables accepting provider ID tokens on protected API
// routes in addition to service access tokens.
func (u *authUsecase) SetIDTokenVerifier(v IDTokenVerifier) {
	u.verifier = v
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}

	u.store.SetRememberMe(req.RememberMe)
	u.store.LoginStart()

	sess, err := u.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		msg := identity.MessageFor(err, identity.LoginMessage)
		u.store.LoginFailure(msg)
		return nil, &FlowError{Message: msg}
	}

	user := session.UserFromSession(sess)
	u.store.LoginSuccess(user)
	u.persistSession(user, req.RememberMe)

	token, err := u.signToken(user)
	if err != nil {
		// Roll the store back so state and response agree.
		msg := identity.LoginMessage(identity.CodeUnknown)
		u.store.LoginFailure(msg)
		return nil, &FlowError{Message: msg}
	}

	return &authdto.AuthResponse{
		AccessToken: token,
		User:        user,
		Message:     "Welcome back! Redirecting...",
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}

	u.store.LoginStart()

	sess, err := u.provider.CreateAccount(ctx, req.Email, req.Password, req.DisplayName())
	if err != nil {
		msg := identity.MessageFor(err, identity.RegisterMessage)
		u.store.LoginFailure(msg)
		return nil, &FlowError{Message: msg}
	}

	user := session.UserFromSession(sess)
	u.store.LoginSuccess(user)
	u.persistSession(user, false)

	token, err := u.signToken(user)
	if err != nil {
		msg := identity.RegisterMessage(identity.CodeUnknown)
		u.store.LoginFailure(msg)
		return nil, &FlowError{Message: msg}
	}

	return &authdto.AuthResponse{
		AccessToken: token,
		User:        user,
		Message:     "Account created successfully! Welcome aboard.",
	}, nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *authdto.ResetPasswordRequest) (*authdto.AuthResponse, error) {
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}

	if err := u.provider.SendPasswordReset(ctx, req.Email); err != nil {
		return nil, &FlowError{Message: identity.MessageFor(err, identity.ResetMessage)}
	}

	return &authdto.AuthResponse{
		Message: "Password reset email sent! Please check your inbox and follow the instructions.",
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	// The provider emits a nil session event; the reconciler resets the
	// store and clears both tiers.
	return u.provider.SignOut(ctx)
}

func (u *authUsecase) CurrentUser() *session.UserRecord {
	return u.store.Snapshot().User
}

// persistSession mirrors the user record into the tier chosen by the
// remember-me preference.
func (u *authUsecase) persistSession(user *session.UserRecord, rememberMe bool) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	tier := session.Tier(u.scoped)
	if rememberMe {
		tier = u.durable
	}
	tier.Set(session.KeyUser, string(data))
	tier.Set(session.KeyAuthenticated, "true")
}

func (u *authUsecase) generateAccessToken(user *session.UserRecord) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.UID,
		"email":    user.Email,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}
	if user.DisplayName != nil {
		claims["name"] = *user.DisplayName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*session.UserRecord, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		// Not one of ours; fall back to provider ID token verification
		// when configured.
		if u.verifier != nil {
			sess, verr := u.verifier.Verify(ctx, tokenString)
			if verr == nil {
				return session.UserFromSession(sess), nil
			}
		}
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	user := &session.UserRecord{UID: userID}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		user.DisplayName = &name
	}
	return user, nil
}
