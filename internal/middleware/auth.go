package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtsvc "talentbook/internal/pkg/jwt"
	"talentbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenChecker is the slice of the auth token repository the middleware needs.
type TokenChecker interface {
	IsActive(ctx context.Context, jti string) (bool, error)
}

// Authenticate validates the Bearer JWT and checks that its session row has
// not been revoked, then exposes user_id and role to handlers. No identity
// -> 401.
func Authenticate(jwt *jwtsvc.Service, tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		active, err := tokens.IsActive(c.Request.Context(), claims.ID)
		if err != nil || !active {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
