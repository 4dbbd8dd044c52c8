package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireLogin redirects to /login when the request carries no session user.
// Applied per-route; pages that should stay public simply don't use it.
func (sm *SessionManager) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sm.IsAuthenticated(c.Request) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
