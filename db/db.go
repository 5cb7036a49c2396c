// api/db/db.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dev-anuragv/skillboard/api/config"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
)

var DB *gorm.DB

func InitDB() error {
	dsn := config.GetString("database.dsn")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Successfully connected to database")
	return nil
}

// Migrate creates or updates the schema. Shared with the test database setup.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.City{},
		&model.Skill{},
		&model.User{},
		&model.Post{},
		&model.RefreshSession{},
	)
}

func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
