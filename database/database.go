// Package database provides database connection and migration functionality
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherhub.app/config"
	"weatherhub.app/models"
)

// InitDB initializes the database connection
func InitDB(config config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.City{}, "Users", &models.Favorite{}); err != nil {
		return fmt.Errorf("set up favorites join table: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.City{},
		&models.Favorite{},
		&models.WeatherForecast{},
		&models.SupportRequest{},
	)
}

// CloseDB safely closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
