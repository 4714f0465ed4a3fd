package database

import (
	"fmt"

	"github.com/Latesh-31/Adaptlearn/internal/config"
	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *logger.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	log.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB, log *logger.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Assessment{},
		&models.Question{},
		&models.Course{},
		&models.Module{},
	)
	if err != nil {
		log.Fatal("failed to auto-migrate", "error", err)
	}
	log.Info("database migrated")
}
