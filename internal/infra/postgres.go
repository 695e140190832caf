package infra

import (
	"os"

	"dailydilli/internal/models/db_models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("error connecting to database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		zap.L().Fatal("error running migrations", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Category{},
		&db_models.Place{},
		&db_models.LikedPlace{},
		&db_models.PlaceSafetyFeedback{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("error getting database instance", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.L().Error("error closing database connection", zap.Error(err))
	}
}
