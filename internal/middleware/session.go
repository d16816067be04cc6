package middleware

import (
	"net/http"

	"github.com/GunarsK-portfolio/recipe-service/internal/handlers"
	"github.com/GunarsK-portfolio/recipe-service/internal/identity"
	"github.com/GunarsK-portfolio/recipe-service/internal/session"
	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests without an authenticated session and
// attaches the session user id to the request context for the rest of the
// chain.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := store.UserID(c)
		if !ok {
			handlers.RespondError(c, http.StatusUnauthorized, handlers.MsgUnauthorized)
			return
		}

		c.Request = c.Request.WithContext(identity.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
