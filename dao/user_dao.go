// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) error {
	err := dao.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return board_errors.ErrUserConflict
	}
	if err != nil {
		logger.Error("Failed to create user", zap.Error(err), zap.String("name", user.Name))
		return board_errors.ErrDatabaseOperation
	}
	return dao.db.WithContext(ctx).Preload("City").First(user, user.ID).Error
}

func (dao *UserDAO) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Preload("City").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, board_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.Uint("userID", userID))
		return nil, board_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Preload("City").Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, board_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user by name", zap.Error(err), zap.String("name", name))
		return nil, board_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) GetUserWithSkills(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Preload("Skills").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, board_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user skills", zap.Error(err), zap.Uint("userID", userID))
		return nil, board_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := dao.db.WithContext(ctx).Preload("City").
		Limit(limit).Offset(offset).Order("id").
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, board_errors.ErrDatabaseOperation
	}
	return users, nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID uint) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{ID: userID}
		if err := tx.Model(&user).Association("Skills").Clear(); err != nil {
			logger.Error("Failed to clear user skills", zap.Error(err), zap.Uint("userID", userID))
			return board_errors.ErrDatabaseOperation
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Post{}).Error; err != nil {
			logger.Error("Failed to delete user posts", zap.Error(err), zap.Uint("userID", userID))
			return board_errors.ErrDatabaseOperation
		}
		res := tx.Delete(&model.User{}, userID)
		if res.Error != nil {
			logger.Error("Failed to delete user", zap.Error(res.Error), zap.Uint("userID", userID))
			return board_errors.ErrDatabaseOperation
		}
		if res.RowsAffected == 0 {
			return board_errors.ErrUserNotFound
		}
		return nil
	})
}

// AddSkill attaches a registered skill to the user. Attaching the same skill
// twice is a conflict, not a no-op.
func (dao *UserDAO) AddSkill(ctx context.Context, userID uint, skill model.Skill) (*model.User, error) {
	user, err := dao.GetUserWithSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, s := range user.Skills {
		if s.ID == skill.ID {
			return nil, board_errors.ErrSkillConflict
		}
	}
	if err := dao.db.WithContext(ctx).Model(user).Association("Skills").Append(&skill); err != nil {
		logger.Error("Failed to add skill to user", zap.Error(err),
			zap.Uint("userID", userID), zap.String("skill", skill.Name))
		return nil, board_errors.ErrDatabaseOperation
	}
	return user, nil
}
