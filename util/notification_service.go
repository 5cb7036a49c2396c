// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

type NotificationService struct {
	// A message queue client would live here in a real deployment.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New user registered",
			zap.Uint("userID", user.ID),
			zap.String("name", user.Name))
	case "deleted":
		logger.Info("NOTIFICATION: User removed",
			zap.Uint("userID", user.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyPostChange(ctx context.Context, changeType string, post model.Post) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New post published",
			zap.Uint("postID", post.ID),
			zap.Uint("userID", post.UserID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}
