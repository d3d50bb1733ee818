package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards protected routes. It waits for the reconciler's first
// session event, attempts a manual restoration from the persistence tiers,
// and redirects visitors who are still unauthenticated to /login.
func RequireAuth(r *Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		case <-r.Ready():
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}

		r.Restore()

		state := r.store.Snapshot()
		if !state.IsAuthenticated || state.User == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GuestOnly guards the login and register routes: already-authenticated
// visitors are sent back to the home page.
func GuestOnly(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.Snapshot()
		if state.IsAuthenticated && state.User != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
