// Package local is a development stand-in for the hosted identity provider.
// It keeps accounts in Postgres and verifies credentials with bcrypt, but
// surfaces the same Provider contract and error codes as the Firebase client
// so the rest of the system cannot tell the difference.
package local

import (
	"context"
	"errors"
	"log"
	"time"

	"storefront-backend/internal/identity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account is the locally stored credential record.
type Account struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Provider struct {
	*identity.Broadcaster
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{
		Broadcaster: identity.NewBroadcaster(),
		db:          db,
	}
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	account, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, identity.NewProviderError("EMAIL_NOT_FOUND")
	}
	if account.Disabled {
		return nil, identity.NewProviderError("USER_DISABLED")
	}
	if !checkPasswordHash(password, account.PasswordHash) {
		return nil, identity.NewProviderError("INVALID_PASSWORD")
	}

	session := sessionFrom(account)
	p.Publish(session)
	return session, nil
}

func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (*identity.Session, error) {
	existing, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, identity.NewProviderError("EMAIL_EXISTS")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := p.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}

	session := sessionFrom(account)
	p.Publish(session)
	return session, nil
}

func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	account, err := p.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return identity.NewProviderError("EMAIL_NOT_FOUND")
	}
	// No mail transport in development; log instead of sending.
	log.Printf("[DEBUG] Password reset requested for %s (local provider, no email sent)", email)
	return nil
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.Publish(nil)
	return nil
}

func (p *Provider) findByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func sessionFrom(account *Account) *identity.Session {
	return &identity.Session{
		UID:         account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		PhotoURL:    account.PhotoURL,
	}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
