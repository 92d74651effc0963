package middlewares

import (
	"MediCare/services"
	"MediCare/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionAuthMiddleware resolves the bearer token, or the session cookie,
// into a session available to handlers through GetSession.
func SessionAuthMiddleware(auth services.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		session, err := auth.Verify(c.Request.Context(), token)
		if errors.Is(err, services.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		if err != nil {
			HttpError(c, "Failed to verify session", http.StatusInternalServerError, err)
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(utils.SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// GetSession returns the session stored by SessionAuthMiddleware.
func GetSession(c *gin.Context) (services.Session, bool) {
	value, ok := c.Get(sessionKey)
	if !ok {
		return services.Session{}, false
	}
	session, ok := value.(services.Session)
	return session, ok
}
