// api/dao/lookup_dao.go
package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

// LookupDAO reads and seeds the small cities/skills reference tables.
type LookupDAO struct {
	db *gorm.DB
}

func NewLookupDAO(db *gorm.DB) *LookupDAO {
	return &LookupDAO{db: db}
}

func (dao *LookupDAO) ListCities(ctx context.Context) ([]model.City, error) {
	var cities []model.City
	if err := dao.db.WithContext(ctx).Order("id").Find(&cities).Error; err != nil {
		logger.Error("Failed to list cities", zap.Error(err))
		return nil, board_errors.ErrDatabaseOperation
	}
	return cities, nil
}

func (dao *LookupDAO) ListSkills(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := dao.db.WithContext(ctx).Order("id").Find(&skills).Error; err != nil {
		logger.Error("Failed to list skills", zap.Error(err))
		return nil, board_errors.ErrDatabaseOperation
	}
	return skills, nil
}

// SeedDefaults inserts any missing city and skill names, leaving existing
// rows untouched.
func (dao *LookupDAO) SeedDefaults(ctx context.Context, cities, skills []string) error {
	for _, name := range cities {
		err := dao.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.City{Name: name}).Error
		if err != nil {
			logger.Error("Failed to seed city", zap.Error(err), zap.String("city", name))
			return board_errors.ErrDatabaseOperation
		}
	}
	for _, name := range skills {
		err := dao.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Skill{Name: name}).Error
		if err != nil {
			logger.Error("Failed to seed skill", zap.Error(err), zap.String("skill", name))
			return board_errors.ErrDatabaseOperation
		}
	}
	return nil
}
