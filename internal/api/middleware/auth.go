package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CaCortez384/MiFestival/internal/auth"
)

const principalKey = "principal"

// tokenFrom pulls the JWT from the "Authorization" header or, as a
// fallback, the "?token=" query parameter.
func tokenFrom(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// RequireAuth ensures the request carries a valid JWT and stores the
// resulting principal in the Gin context.
func RequireAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFrom(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
			return
		}

		user, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(principalKey, auth.Principal(user))
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a token is present and falls
// back to the guest sentinel otherwise. Guests may create and edit
// guest-owned festivals; those are not durable across sessions.
func OptionalAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFrom(c); tokenString != "" {
			if user, err := tokens.Parse(tokenString); err == nil {
				c.Set(principalKey, auth.Principal(user))
				c.Set("user_id", user.ID)
				c.Set("user_role", user.Role)
				c.Next()
				return
			}
		}
		c.Set(principalKey, auth.Principal(auth.Guest{}))
		c.Next()
	}
}

// PrincipalFrom reads the principal the auth middleware stored; a
// request that skipped both middlewares counts as guest.
func PrincipalFrom(c *gin.Context) auth.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(auth.Principal); ok {
			return p
		}
	}
	return auth.Guest{}
}
