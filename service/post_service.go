// api/service/post_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/dao"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/util"
)

// IPostService defines the interface for post operations
type IPostService interface {
	CreatePost(ctx context.Context, userID uint, req model.PostCreate) (*model.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]model.Post, error)
}

type PostService struct {
	postDAO         *dao.PostDAO
	userDAO         *dao.UserDAO
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IPostService = &PostService{}

func NewPostService(
	postDAO *dao.PostDAO,
	userDAO *dao.UserDAO,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *PostService {
	service := &PostService{
		postDAO:         postDAO,
		userDAO:         userDAO,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventPostCreated, service.handlePostCreated)

	return service
}

func (s *PostService) handlePostCreated(ctx context.Context, event util.Event) error {
	post := event.Payload.(model.Post)
	logger.Info("Post created event received", zap.Uint("postID", post.ID))
	return s.notificationSvc.NotifyPostChange(ctx, "created", post)
}

func (s *PostService) CreatePost(ctx context.Context, userID uint, req model.PostCreate) (*model.Post, error) {
	author, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Content: req.Content,
		UserID:  author.ID,
	}
	if err := s.postDAO.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	post.Author = author

	s.cacheService.Invalidate(ctx, HandlerListPosts)
	s.eventBus.Publish(ctx, util.EventPostCreated, *post)
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]model.Post, error) {
	return s.postDAO.ListPosts(ctx, limit, offset)
}
