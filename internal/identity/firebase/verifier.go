package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"storefront-backend/internal/identity"
)

// AdminVerifier verifies Firebase ID tokens with the admin SDK and maps the
// claims onto a provider session.
type AdminVerifier struct {
	client *auth.Client
}

func NewAdminVerifier(client *auth.Client) *AdminVerifier {
	return &AdminVerifier{client: client}
}

func (v *AdminVerifier) Verify(ctx context.Context, idToken string) (*identity.Session, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	sess := &identity.Session{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		sess.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		sess.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		sess.PhotoURL = picture
	}
	return sess, nil
}
