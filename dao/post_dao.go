// api/dao/post_dao.go
package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

type PostDAO struct {
	db *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

func (dao *PostDAO) CreatePost(ctx context.Context, post *model.Post) error {
	if err := dao.db.WithContext(ctx).Create(post).Error; err != nil {
		logger.Error("Failed to create post", zap.Error(err), zap.Uint("userID", post.UserID))
		return board_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *PostDAO) ListPosts(ctx context.Context, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.WithContext(ctx).Preload("Author").
		Limit(limit).Offset(offset).Order("id").
		Find(&posts).Error
	if err != nil {
		logger.Error("Failed to list posts", zap.Error(err))
		return nil, board_errors.ErrDatabaseOperation
	}
	return posts, nil
}
