// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
)

// Context keys set by the auth middleware once the caller is resolved.
const (
	ContextUserIDKey   = "requestingUserID"
	ContextUsernameKey = "requestingUser"
	ContextRoleKey     = "requestingRole"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetUserIDFromContext returns the authenticated caller's user ID.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, board_errors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok {
		return 0, board_errors.ErrUnauthorized
	}
	return id, nil
}

// GetUsernameFromContext returns the authenticated caller's username.
func GetUsernameFromContext(c *gin.Context) (string, error) {
	username, exists := c.Get(ContextUsernameKey)
	if !exists {
		return "", board_errors.ErrUnauthorized
	}
	name, ok := username.(string)
	if !ok {
		return "", board_errors.ErrUnauthorized
	}
	return name, nil
}
