package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

// ForecastRepository handles data access operations for weather forecasts
type ForecastRepository struct {
	db *gorm.DB
}

// NewForecastRepository creates a new repository for forecast data
func NewForecastRepository(db *gorm.DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

// ListAll returns every forecast with its city and the city's favoriting
// users preloaded, so callers can render relationship context without
// issuing further queries.
func (r *ForecastRepository) ListAll() ([]models.WeatherForecast, error) {
	log.Println("[DEBUG] ForecastRepository.ListAll called")

	var forecasts []models.WeatherForecast
	err := r.db.Preload("City").Preload("City.Users").
		Order("id ASC").
		Find(&forecasts).Error
	if err != nil {
		log.Printf("[ERROR] Database error when listing forecasts: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list forecasts", err)
	}

	return forecasts, nil
}

// ListByCity returns all forecasts belonging to one city
func (r *ForecastRepository) ListByCity(cityID uint) ([]models.WeatherForecast, error) {
	log.Printf("[DEBUG] ForecastRepository.ListByCity: cityID=%d\n", cityID)

	var forecasts []models.WeatherForecast
	err := r.db.Where("city_id = ?", cityID).
		Order("forecast_date ASC").
		Find(&forecasts).Error
	if err != nil {
		log.Printf("[ERROR] Database error when listing city forecasts: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list city forecasts", err)
	}

	return forecasts, nil
}

// FindByID retrieves a forecast by its ID
func (r *ForecastRepository) FindByID(id uint) (*models.WeatherForecast, error) {
	var forecast models.WeatherForecast
	result := r.db.First(&forecast, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, weathererr.NewNotFoundError(fmt.Sprintf("forecast %d not found", id))
		}
		log.Printf("[ERROR] Database error when finding forecast: %v\n", result.Error)
		return nil, weathererr.NewDatabaseError("failed to find forecast", result.Error)
	}

	return &forecast, nil
}

// Create persists a new forecast to the database
func (r *ForecastRepository) Create(forecast *models.WeatherForecast) error {
	log.Printf("[DEBUG] ForecastRepository.Create: cityID=%d, date=%v\n", forecast.CityID, forecast.ForecastDate)

	if err := r.db.Create(forecast).Error; err != nil {
		log.Printf("[ERROR] Database error when creating forecast: %v\n", err)
		return weathererr.NewDatabaseError("failed to create forecast", err)
	}

	return nil
}

// Update modifies an existing forecast. CreatedAt is create-only and is
// left untouched by GORM's write permission on the field.
func (r *ForecastRepository) Update(forecast *models.WeatherForecast) error {
	log.Printf("[DEBUG] ForecastRepository.Update: id=%d\n", forecast.ID)

	if err := r.db.Save(forecast).Error; err != nil {
		log.Printf("[ERROR] Database error when updating forecast: %v\n", err)
		return weathererr.NewDatabaseError("failed to update forecast", err)
	}

	return nil
}

// Delete removes a forecast from the database
func (r *ForecastRepository) Delete(forecast *models.WeatherForecast) error {
	log.Printf("[DEBUG] ForecastRepository.Delete: id=%d\n", forecast.ID)

	if err := r.db.Delete(forecast).Error; err != nil {
		log.Printf("[ERROR] Database error when deleting forecast: %v\n", err)
		return weathererr.NewDatabaseError("failed to delete forecast", err)
	}

	return nil
}
