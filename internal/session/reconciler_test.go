package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-backend/internal/identity"
)

type fakeProvider struct {
	*identity.Broadcaster
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{Broadcaster: identity.NewBroadcaster()}
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	sess := &identity.Session{UID: "uid-1", Email: email}
	f.Publish(sess)
	return sess, nil
}

func (f *fakeProvider) CreateAccount(ctx context.Context, email, password, displayName string) (*identity.Session, error) {
	sess := &identity.Session{UID: "uid-1", Email: email, DisplayName: displayName}
	f.Publish(sess)
	return sess, nil
}

func (f *fakeProvider) SendPasswordReset(ctx context.Context, email string) error { return nil }

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.Publish(nil)
	return nil
}

func setupReconciler(t *testing.T) (*Reconciler, *Store, Tier, Tier) {
	t.Helper()
	store := NewStore()
	durable := NewMemoryTier()
	scoped := NewMemoryTier()
	r := NewReconciler(newFakeProvider(), store, durable, scoped)
	return r, store, durable, scoped
}

func TestReconcileSignInWithoutDurableEntry(t *testing.T) {
	r, store, durable, scoped := setupReconciler(t)

	sess := &identity.Session{UID: "uid-1", Email: "user@example.com", DisplayName: "Test User"}
	r.reconcile(sess)

	state := store.Snapshot()
	require.True(t, state.IsAuthenticated)
	require.Equal(t, "uid-1", state.User.UID)
	require.Equal(t, "user@example.com", state.User.Email)
	require.False(t, state.RememberMe)

	// No prior remember-me evidence: only the session-scoped tier holds
	// the entry.
	_, ok := durable.Get(KeyUser)
	require.False(t, ok)
	v, ok := scoped.Get(KeyAuthenticated)
	require.True(t, ok)
	require.Equal(t, "true", v)
}

func TestReconcileSignInWithDurableEntry(t *testing.T) {
	r, store, durable, scoped := setupReconciler(t)

	// A durable entry from a previous run is evidence of remember-me.
	durable.Set(KeyUser, `{"uid":"stale"}`)

	sess := &identity.Session{UID: "uid-1", Email: "user@example.com"}
	r.reconcile(sess)

	state := store.Snapshot()
	require.True(t, state.RememberMe)

	stored, ok := durable.Get(KeyUser)
	require.True(t, ok)
	var user UserRecord
	require.NoError(t, json.Unmarshal([]byte(stored), &user))
	require.Equal(t, "uid-1", user.UID)

	_, ok = scoped.Get(KeyUser)
	require.False(t, ok)
}

func TestReconcileNullSessionResetsEverything(t *testing.T) {
	r, store, durable, scoped := setupReconciler(t)

	durable.Set(KeyUser, `{"uid":"u1"}`)
	durable.Set(KeyAuthenticated, "true")
	scoped.Set(KeyUser, `{"uid":"u1"}`)
	scoped.Set(KeyAuthenticated, "true")
	store.RestoreUser(&UserRecord{UID: "u1"}, true)

	r.reconcile(nil)

	require.Equal(t, State{}, store.Snapshot())
	for _, tier := range []Tier{durable, scoped} {
		_, ok := tier.Get(KeyUser)
		require.False(t, ok)
		_, ok = tier.Get(KeyAuthenticated)
		require.False(t, ok)
	}
}

// Delivering the same session event twice leaves the state unchanged.
func TestReconcileIsIdempotent(t *testing.T) {
	r, store, _, _ := setupReconciler(t)

	sess := &identity.Session{UID: "uid-1", Email: "user@example.com"}
	r.reconcile(sess)
	first := store.Snapshot()

	r.reconcile(sess)
	require.Equal(t, first, store.Snapshot())
}

func TestReconcileLastEventWins(t *testing.T) {
	r, store, _, _ := setupReconciler(t)

	r.reconcile(&identity.Session{UID: "uid-1", Email: "a@example.com"})
	r.reconcile(nil)
	r.reconcile(&identity.Session{UID: "uid-2", Email: "b@example.com"})

	state := store.Snapshot()
	require.True(t, state.IsAuthenticated)
	require.Equal(t, "uid-2", state.User.UID)
	require.Equal(t, "b@example.com", state.User.Email)
}

func TestRunDeliversInitialEventAndReady(t *testing.T) {
	provider := newFakeProvider()
	store := NewStore()
	r := NewReconciler(provider, store, NewMemoryTier(), NewMemoryTier())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	// The subscription replays the current (nil) session immediately, so
	// Ready resolves without any sign-in.
	select {
	case <-r.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler never became ready")
	}
	require.False(t, store.Snapshot().IsAuthenticated)
}

func TestRunReconcilesLiveSignIn(t *testing.T) {
	provider := newFakeProvider()
	store := NewStore()
	r := NewReconciler(provider, store, NewMemoryTier(), NewMemoryTier())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	<-r.Ready()

	_, err := provider.SignIn(ctx, "user@example.com", "secret123")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.Snapshot().IsAuthenticated
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, "user@example.com", store.Snapshot().User.Email)
}

func TestRestoreFromDurableTier(t *testing.T) {
	r, store, durable, _ := setupReconciler(t)

	durable.Set(KeyUser, `{"uid":"uid-1","email":"user@example.com","displayName":null,"photoURL":null}`)
	durable.Set(KeyAuthenticated, "true")

	r.Restore()

	state := store.Snapshot()
	require.True(t, state.IsAuthenticated)
	require.Equal(t, "uid-1", state.User.UID)
	require.True(t, state.RememberMe)
}

func TestRestoreFallsBackToScopedTier(t *testing.T) {
	r, store, _, scoped := setupReconciler(t)

	scoped.Set(KeyUser, `{"uid":"uid-1","email":"user@example.com","displayName":null,"photoURL":null}`)
	scoped.Set(KeyAuthenticated, "true")

	r.Restore()

	state := store.Snapshot()
	require.True(t, state.IsAuthenticated)
	require.False(t, state.RememberMe)
}

func TestRestoreRequiresLiteralTrueFlag(t *testing.T) {
	r, store, durable, _ := setupReconciler(t)

	durable.Set(KeyUser, `{"uid":"uid-1"}`)
	durable.Set(KeyAuthenticated, "TRUE")

	r.Restore()
	require.False(t, store.Snapshot().IsAuthenticated)
}

func TestRestoreCorruptUserFailsSafe(t *testing.T) {
	r, store, durable, scoped := setupReconciler(t)

	durable.Set(KeyUser, `{broken`)
	durable.Set(KeyAuthenticated, "true")
	scoped.Set(KeyUser, `{broken`)
	scoped.Set(KeyAuthenticated, "true")

	r.Restore()

	require.False(t, store.Snapshot().IsAuthenticated)
	for _, tier := range []Tier{Tier(durable), Tier(scoped)} {
		_, ok := tier.Get(KeyUser)
		require.False(t, ok)
		_, ok = tier.Get(KeyAuthenticated)
		require.False(t, ok)
	}
}

func TestRestoreDoesNothingWhenAlreadyAuthenticated(t *testing.T) {
	r, store, durable, _ := setupReconciler(t)

	user := &UserRecord{UID: "live"}
	store.RestoreUser(user, false)

	durable.Set(KeyUser, `{"uid":"stored"}`)
	durable.Set(KeyAuthenticated, "true")

	r.Restore()
	require.Equal(t, "live", store.Snapshot().User.UID)
}
