package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapRawCode(t *testing.T) {
	tests := []struct {
		raw  string
		want ErrorCode
	}{
		{"EMAIL_NOT_FOUND", CodeUserNotFound},
		{"auth/user-not-found", CodeUserNotFound},
		{"INVALID_PASSWORD", CodeWrongPassword},
		{"INVALID_LOGIN_CREDENTIALS", CodeWrongPassword},
		{"auth/invalid-credential", CodeWrongPassword},
		{"INVALID_EMAIL", CodeInvalidEmail},
		{"USER_DISABLED", CodeUserDisabled},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", CodeTooManyRequests},
		{"EMAIL_EXISTS", CodeEmailInUse},
		{"WEAK_PASSWORD", CodeWeakPassword},
		{"NEVER_HEARD_OF_IT", CodeUnknown},
		{"", CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, NewProviderError(tt.raw).Code)
		})
	}
}

func TestMessageTablesFallBackToGeneric(t *testing.T) {
	require.Equal(t, "Login failed. Please try again.", LoginMessage(CodeUnknown))
	require.Equal(t, "Registration failed. Please try again.", RegisterMessage(CodeUnknown))
	require.Equal(t, "Failed to send password reset email. Please try again.", ResetMessage(CodeUnknown))
}

func TestMessageForNonProviderError(t *testing.T) {
	// A transport failure has no provider code and collapses to the
	// generic message.
	msg := MessageFor(errors.New("connection refused"), LoginMessage)
	require.Equal(t, "Login failed. Please try again.", msg)
}

func TestBroadcasterReplaysCurrentSession(t *testing.T) {
	b := NewBroadcaster()
	sess := &Session{UID: "uid-1"}
	b.Publish(sess)

	events, cancel := b.Subscribe()
	defer cancel()

	got := <-events
	require.Equal(t, sess, got)
	require.Equal(t, sess, b.Current())
}

func TestBroadcasterDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()

	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	<-first
	<-second

	b.Publish(&Session{UID: "uid-1"})
	require.Equal(t, "uid-1", (<-first).UID)
	require.Equal(t, "uid-1", (<-second).UID)

	b.Publish(nil)
	require.Nil(t, <-first)
	require.Nil(t, <-second)
}

func TestBroadcasterCancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	events, cancel := b.Subscribe()
	<-events
	cancel()

	_, open := <-events
	require.False(t, open)
}
