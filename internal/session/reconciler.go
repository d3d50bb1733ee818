package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"storefront-backend/internal/identity"
)

// Reconciler keeps the auth state store consistent with the identity
// provider's live session, across restarts, honoring the remember-me
// persistence preference.
//
// Two restoration paths exist: the provider stream handled by Run, and the
// guard-driven Restore that reads the persistence tiers directly. Both end in
// RestoreUser, which is a pure overwrite, so their ordering cannot produce an
// inconsistent final state.
type Reconciler struct {
	provider identity.Provider
	store    *Store
	durable  Tier
	scoped   Tier

	ready     chan struct{}
	readyOnce sync.Once
}

func NewReconciler(provider identity.Provider, store *Store, durable, scoped Tier) *Reconciler {
	return &Reconciler{
		provider: provider,
		store:    store,
		durable:  durable,
		scoped:   scoped,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the first session-change event has been reconciled.
// Route guards wait on it so they never make a premature unauthenticated
// decision.
func (r *Reconciler) Ready() <-chan struct{} {
	return r.ready
}

// Run subscribes to the provider's session-change stream and reconciles every
// delivery until ctx is cancelled. The stream fires immediately with the
// current session, so Ready resolves without waiting for user activity.
func (r *Reconciler) Run(ctx context.Context) {
	events, cancel := r.provider.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case sess, ok := <-events:
			if !ok {
				return
			}
			r.reconcile(sess)
			r.readyOnce.Do(func() { close(r.ready) })
		}
	}
}

// reconcile applies a single authoritative session event.
func (r *Reconciler) reconcile(sess *identity.Session) {
	if sess == nil {
		r.store.Logout()
		r.clearTiers()
		return
	}

	user := UserFromSession(sess)
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("[ERROR] Failed to serialize user record: %v", err)
		return
	}

	// A durable entry is treated as evidence of a prior remember-me choice.
	_, remembered := r.durable.Get(KeyUser)
	rememberMe := remembered || r.store.Snapshot().RememberMe

	if rememberMe {
		r.durable.Set(KeyUser, string(data))
		r.durable.Set(KeyAuthenticated, "true")
	} else {
		r.scoped.Set(KeyUser, string(data))
		r.scoped.Set(KeyAuthenticated, "true")
	}

	r.store.RestoreUser(user, rememberMe)
}

// Restore is the guard's independent restoration path: if the store is not
// yet authenticated, recover the session from the persistence tiers (durable
// first). Corrupt stored JSON fails safe: every auth key is cleared from both
// tiers and the user stays unauthenticated.
func (r *Reconciler) Restore() {
	if r.store.Snapshot().IsAuthenticated {
		return
	}

	storedUser, fromDurable := r.durable.Get(KeyUser)
	if !fromDurable {
		storedUser, _ = r.scoped.Get(KeyUser)
	}
	storedAuth, ok := r.durable.Get(KeyAuthenticated)
	if !ok {
		storedAuth, _ = r.scoped.Get(KeyAuthenticated)
	}

	if storedUser == "" || storedAuth != "true" {
		return
	}

	var user UserRecord
	if err := json.Unmarshal([]byte(storedUser), &user); err != nil {
		log.Printf("[WARN] Failed to restore user session: %v", err)
		r.clearTiers()
		return
	}

	r.store.RestoreUser(&user, fromDurable)
}

// clearTiers deletes the auth keys from both tiers. The active tier is not
// tracked at logout time, so both are cleared.
func (r *Reconciler) clearTiers() {
	r.durable.Delete(KeyUser)
	r.durable.Delete(KeyAuthenticated)
	r.scoped.Delete(KeyUser)
	r.scoped.Delete(KeyAuthenticated)
}
