package identity

import "context"

// Session is the identity provider's view of the signed-in user. A nil
// *Session means signed out.
type Session struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// Provider abstracts the hosted identity service. Credential verification,
// account creation and password-reset email delivery all happen remotely;
// this system only consumes the results.
//
// Subscribe returns a long-lived session-change stream. It fires once
// immediately with the current session (possibly nil) and again on every
// subsequent sign-in or sign-out. Every delivery is authoritative and must be
// reconciled idempotently by the consumer.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	CreateAccount(ctx context.Context, email, password, displayName string) (*Session, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
	Current() *Session
	Subscribe() (<-chan *Session, func())
}
