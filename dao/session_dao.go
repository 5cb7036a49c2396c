// api/dao/session_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dev-anuragv/skillboard/api/auth"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

// RefreshSessionDAO owns the refresh_sessions table. Sessions are hard
// deleted on rotation, logout and expiry detection; no row is ever reused.
type RefreshSessionDAO struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewRefreshSessionDAO(db *gorm.DB, ttl time.Duration) *RefreshSessionDAO {
	return &RefreshSessionDAO{db: db, ttl: ttl}
}

// Create persists a new session with a fresh 256-bit secret.
func (dao *RefreshSessionDAO) Create(ctx context.Context, userID uint) (*model.RefreshSession, error) {
	return dao.create(dao.db.WithContext(ctx), userID)
}

func (dao *RefreshSessionDAO) create(tx *gorm.DB, userID uint) (*model.RefreshSession, error) {
	secret, err := auth.NewRefreshSecret()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &model.RefreshSession{
		ID:        uuid.New().String(),
		Secret:    secret,
		UserID:    userID,
		ExpiresAt: now.Add(dao.ttl),
		CreatedAt: now,
	}
	if err := tx.Create(session).Error; err != nil {
		logger.Error("Failed to create refresh session", zap.Error(err), zap.Uint("userID", userID))
		return nil, board_errors.ErrDatabaseOperation
	}
	return session, nil
}

// Rotate consumes oldSecret and issues a replacement session for the same
// user. The cutover is a conditional delete checked via RowsAffected: of any
// number of concurrent callers holding the same secret, only the one whose
// delete removes the row creates the replacement, the rest observe
// ErrSessionNotFound. An expired session is removed as a side effect and
// reported as ErrSessionExpired.
func (dao *RefreshSessionDAO) Rotate(ctx context.Context, oldSecret string) (*model.RefreshSession, error) {
	var current model.RefreshSession
	err := dao.db.WithContext(ctx).Where("secret = ?", oldSecret).First(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, board_errors.ErrSessionNotFound
	}
	if err != nil {
		logger.Error("Failed to look up refresh session", zap.Error(err))
		return nil, board_errors.ErrDatabaseOperation
	}

	if current.Expired(time.Now()) {
		// Stale row: remove it so the next attempt reports not-found.
		if err := dao.Revoke(ctx, oldSecret); err != nil {
			return nil, err
		}
		return nil, board_errors.ErrSessionExpired
	}

	var next *model.RefreshSession
	err = dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("secret = ?", oldSecret).Delete(&model.RefreshSession{})
		if res.Error != nil {
			logger.Error("Failed to consume refresh session", zap.Error(res.Error))
			return board_errors.ErrDatabaseOperation
		}
		if res.RowsAffected == 0 {
			// Lost the race: another rotation already consumed the secret.
			return board_errors.ErrSessionNotFound
		}
		created, err := dao.create(tx, current.UserID)
		if err != nil {
			return err
		}
		next = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Revoke deletes the session if present. Revoking an unknown secret is not
// an error.
func (dao *RefreshSessionDAO) Revoke(ctx context.Context, secret string) error {
	err := dao.db.WithContext(ctx).Where("secret = ?", secret).Delete(&model.RefreshSession{}).Error
	if err != nil {
		logger.Error("Failed to revoke refresh session", zap.Error(err))
		return board_errors.ErrDatabaseOperation
	}
	return nil
}

// RevokeAllForUser deletes every live session of a user, e.g. when the
// account is removed.
func (dao *RefreshSessionDAO) RevokeAllForUser(ctx context.Context, userID uint) error {
	err := dao.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshSession{}).Error
	if err != nil {
		logger.Error("Failed to revoke user sessions", zap.Error(err), zap.Uint("userID", userID))
		return board_errors.ErrDatabaseOperation
	}
	return nil
}
