package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherhub.app/database"
	"weatherhub.app/models"
)

// Setup test database with in-memory SQLite
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, staff bool) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		IsStaff:  staff,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCity(t *testing.T, db *gorm.DB, name, country string) *models.City {
	city := &models.City{
		Name:      name,
		Country:   country,
		Latitude:  50.45,
		Longitude: 30.52,
	}
	require.NoError(t, db.Create(city).Error)
	return city
}

func createTestForecast(t *testing.T, db *gorm.DB, cityID uint) *models.WeatherForecast {
	forecast := &models.WeatherForecast{
		CityID:         cityID,
		ForecastDate:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TemperatureMin: 12.5,
		TemperatureMax: 21.0,
		Condition:      "Partly cloudy",
		Humidity:       65,
	}
	require.NoError(t, db.Create(forecast).Error)
	return forecast
}
