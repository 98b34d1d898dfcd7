package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sevencake/internal/domain"
)

const (
	currentUserKey  = "currentUser"
	sessionTokenKey = "sessionToken"
)

// authRequired resolves the bearer token to a user and stores both on the
// gin context. Requests without a valid session get a 401.
func authRequired(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		u, err := users.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set(currentUserKey, u)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// adminRequired rejects sessions whose user is not an admin. Must run
// after authRequired.
func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

func sessionToken(c *gin.Context) string {
	v, ok := c.Get(sessionTokenKey)
	if !ok {
		return ""
	}
	t, _ := v.(string)
	return t
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
