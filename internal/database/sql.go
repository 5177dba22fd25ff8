package database

import (
	"fmt"

	"api/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(config models.DatabaseConfig) *gorm.DB {
	var dialector gorm.Dialector
	switch config.Driver {
	case "postgres":
		sslMode := config.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			config.Host, config.User, config.Password, config.Name, config.Port, sslMode,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(config.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Service{},
		&models.Aspect{},
		&models.Source{},
		&models.Reward{},
		&models.Platform{},
		&models.Reason{},
		&models.News{},
		&models.Review{},
		&models.Complaint{},
		&models.Prompt{},
	)
	if err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}

	return db
}
