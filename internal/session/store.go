package session

import (
	"sync"

	"storefront-backend/internal/identity"
)

// UserRecord is the storefront's copy of the provider session. DisplayName
// and PhotoURL are nullable; the serialized form keeps them as JSON null when
// absent.
type UserRecord struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// UserFromSession copies a provider session into a UserRecord.
func UserFromSession(s *identity.Session) *UserRecord {
	if s == nil {
		return nil
	}
	u := &UserRecord{UID: s.UID, Email: s.Email}
	if s.DisplayName != "" {
		name := s.DisplayName
		u.DisplayName = &name
	}
	if s.PhotoURL != "" {
		url := s.PhotoURL
		u.PhotoURL = &url
	}
	return u
}

// State is the process-wide auth state. IsAuthenticated is true exactly when
// User is non-nil; every transition re-establishes that invariant.
type State struct {
	User            *UserRecord
	IsAuthenticated bool
	IsLoading       bool
	Err             string
	RememberMe      bool
}

// Store holds the single source of truth for auth state. It is mutated only
// through the named transitions below; each one replaces the state wholesale
// under the lock, so callers never observe a partial update.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoginStart marks an attempt in flight and clears any previous error.
func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.IsLoading = true
	next.Err = ""
	s.state = next
}

// LoginSuccess installs the authenticated user.
func (s *Store) LoginSuccess(user *UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.IsLoading = false
	next.User = user
	next.IsAuthenticated = user != nil
	next.Err = ""
	s.state = next
}

// LoginFailure records the user-facing message and leaves the user signed out.
func (s *Store) LoginFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.IsLoading = false
	next.User = nil
	next.IsAuthenticated = false
	next.Err = msg
	s.state = next
}

// Logout resets the store to its initial value.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// SetRememberMe records the user's persistence preference.
func (s *Store) SetRememberMe(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.RememberMe = v
	s.state = next
}

// RestoreUser installs a session recovered from the provider stream or from
// a persistence tier. It is a pure overwrite, so redundant restorations from
// racing paths converge on the same state.
func (s *Store) RestoreUser(user *UserRecord, rememberMe bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.User = user
	next.IsAuthenticated = user != nil
	next.RememberMe = rememberMe
	s.state = next
}

// ClearError drops the current error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Err = ""
	s.state = next
}
