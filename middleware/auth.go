// api/middleware/auth.go

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/auth"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/service"
	"github.com/dev-anuragv/skillboard/api/util"
)

// Authenticate resolves the caller from the bearer token and, when
// allowedRoles is non-empty, enforces role membership. Any token or
// resolution problem is a 401; a role mismatch on a valid identity is a 403.
func Authenticate(issuer *auth.TokenIssuer, users service.IUserService, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			message := "token invalid"
			if errors.Is(err, board_errors.ErrTokenExpired) {
				message = "token expired"
			}
			logger.Warn("Token verification failed", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			c.Abort()
			return
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token carries no subject"})
			c.Abort()
			return
		}

		user, err := users.ResolveSubject(c.Request.Context(), subject)
		if err != nil {
			logger.Warn("Failed to resolve token subject", zap.Error(err), zap.String("subject", subject))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		if len(allowedRoles) > 0 && !roleAllowed(user.Role, allowedRoles) {
			logger.Warn("Role check failed",
				zap.String("user", user.Name),
				zap.String("role", user.Role),
				zap.Strings("allowed", allowedRoles))
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}

		c.Set(util.ContextUserIDKey, user.ID)
		c.Set(util.ContextUsernameKey, user.Name)
		c.Set(util.ContextRoleKey, user.Role)

		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
