package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"storefront-backend/internal/identity"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com/v1"

// Provider implements identity.Provider against the Firebase Identity
// Toolkit REST API. Credential checks, account records and password-reset
// emails all live on Firebase; this client only relays requests and mirrors
// the resulting session.
type Provider struct {
	*identity.Broadcaster
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewProvider creates a REST provider for the given web API key.
func NewProvider(apiKey string) *Provider {
	return &Provider{
		Broadcaster: identity.NewBroadcaster(),
		apiKey:      apiKey,
		endpoint:    defaultEndpoint,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewProviderWithEndpoint points the client at a non-default endpoint, e.g.
// the Firebase Auth emulator.
func NewProviderWithEndpoint(apiKey, endpoint string) *Provider {
	p := NewProvider(apiKey)
	p.endpoint = endpoint
	return p
}

// accountResponse is the common shape of signInWithPassword / signUp /
// update responses.
type accountResponse struct {
	LocalID        string `json:"localId"`
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	ProfilePicture string `json:"profilePicture"`
	IDToken        string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	var resp accountResponse
	err := p.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	session := sessionFrom(&resp)
	p.Publish(session)
	return session, nil
}

func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (*identity.Session, error) {
	var resp accountResponse
	err := p.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if displayName != "" {
		var updated accountResponse
		err := p.post(ctx, "accounts:update", map[string]any{
			"idToken":           resp.IDToken,
			"displayName":       displayName,
			"returnSecureToken": false,
		}, &updated)
		if err != nil {
			// The account exists; a failed profile update is not fatal.
			log.Printf("[WARN] Failed to set display name for %s: %v", email, err)
		} else {
			resp.DisplayName = updated.DisplayName
		}
	}

	session := sessionFrom(&resp)
	p.Publish(session)
	return session, nil
}

func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	return p.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, &struct{}{})
}

func (p *Provider) SignOut(ctx context.Context) error {
	// Firebase sessions are revoked client-side by discarding the token;
	// publishing nil drives the reconciler's signed-out path.
	p.Publish(nil)
	return nil
}

func (p *Provider) post(ctx context.Context, action string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.endpoint, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return identity.NewProviderError(fmt.Sprintf("HTTP_%d", resp.StatusCode))
		}
		return identity.NewProviderError(errResp.Error.Message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func sessionFrom(resp *accountResponse) *identity.Session {
	return &identity.Session{
		UID:         resp.LocalID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.ProfilePicture,
	}
}
