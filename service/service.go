// Package service implements the application's business logic
package service

import (
	"fmt"
	"log"
	"time"

	"weatherhub.app/errors"
	"weatherhub.app/models"
	"weatherhub.app/pkg/validation"
	"weatherhub.app/providers/cache"
)

// requireAuthenticated rejects anonymous callers
func requireAuthenticated(actor *models.User) error {
	if actor == nil {
		return errors.NewPermissionDeniedError("authentication required")
	}
	return nil
}

// requireStaff rejects anonymous and non-staff callers before any mutation
func requireStaff(actor *models.User) error {
	if actor == nil {
		return errors.NewPermissionDeniedError("authentication required")
	}
	if !actor.IsStaff {
		return errors.NewPermissionDeniedError("staff access required")
	}
	return nil
}

func forecastCacheKey(cityID uint) string {
	return fmt.Sprintf("forecasts:city:%d", cityID)
}

// CityService handles city browsing, search and staff-gated management
type CityService struct {
	cityRepo     CityRepositoryInterface
	forecastRepo ForecastRepositoryInterface
	favoriteRepo FavoriteRepositoryInterface
	cache        cache.ForecastCache
	cacheTTL     time.Duration
}

// NewCityService creates a new city service
func NewCityService(
	cityRepo CityRepositoryInterface,
	forecastRepo ForecastRepositoryInterface,
	favoriteRepo FavoriteRepositoryInterface,
	forecastCache cache.ForecastCache,
	cacheTTL time.Duration,
) *CityService {
	return &CityService{
		cityRepo:     cityRepo,
		forecastRepo: forecastRepo,
		favoriteRepo: favoriteRepo,
		cache:        forecastCache,
		cacheTTL:     cacheTTL,
	}
}

// ListCities returns one page of active cities, filtered and sorted.
// Cities without a single forecast never appear here.
func (s *CityService) ListCities(filter models.CityFilter) (*models.CityPage, error) {
	log.Printf("[DEBUG] CityService.ListCities: filter=%+v\n", filter)

	if filter.Sort != "" {
		switch filter.Sort {
		case "name", "-name", "country", "-country":
		default:
			return nil, errors.NewValidationError("sort must be one of: name, -name, country, -country")
		}
	}

	return s.cityRepo.ListActive(filter)
}

// SearchCities returns all cities whose name or country matches the query.
// Unlike the listing, the search covers cities without forecasts too.
func (s *CityService) SearchCities(query, order string) ([]models.City, error) {
	log.Printf("[DEBUG] CityService.SearchCities: query=%q, order=%q\n", query, order)

	if order != "" && order != "asc" && order != "desc" {
		return nil, errors.NewValidationError("order must be either 'asc' or 'desc'")
	}

	return s.cityRepo.Search(query, order)
}

// GetCityDetail returns a city with its forecasts and the caller's favorite flag
func (s *CityService) GetCityDetail(actor *models.User, id uint) (*models.CityDetail, error) {
	log.Printf("[DEBUG] CityService.GetCityDetail: id=%d\n", id)

	city, err := s.cityRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	forecasts, err := s.cityForecasts(id)
	if err != nil {
		return nil, err
	}

	detail := &models.CityDetail{
		City:      *city,
		Forecasts: forecasts,
	}

	if actor != nil {
		isFavorite, err := s.favoriteRepo.Exists(actor.ID, id)
		if err != nil {
			return nil, err
		}
		detail.IsFavorite = isFavorite
	}

	return detail, nil
}

// cityForecasts reads a city's forecasts through the cache
func (s *CityService) cityForecasts(cityID uint) ([]models.WeatherForecast, error) {
	key := forecastCacheKey(cityID)
	if forecasts, found := s.cache.Get(key); found {
		return forecasts, nil
	}

	forecasts, err := s.forecastRepo.ListByCity(cityID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, forecasts, s.cacheTTL)
	return forecasts, nil
}

func validateCityRequest(req *models.CityRequest) error {
	if !validation.IsNotEmpty(req.Name) {
		return errors.NewValidationError("city name is required")
	}
	if !validation.IsNotEmpty(req.Country) {
		return errors.NewValidationError("city country is required")
	}
	if err := validation.ValidateLatitude(req.Latitude); err != nil {
		return err
	}
	if err := validation.ValidateLongitude(req.Longitude); err != nil {
		return err
	}
	return nil
}

// CreateCity creates a city. Staff only; coordinates are validated before
// anything is written.
func (s *CityService) CreateCity(actor *models.User, req *models.CityRequest) (*models.City, error) {
	log.Printf("[DEBUG] CityService.CreateCity: %+v\n", req)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if err := validateCityRequest(req); err != nil {
		return nil, err
	}

	city := &models.City{
		Name:      req.Name,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PhotoURL:  req.PhotoURL,
	}
	if err := s.cityRepo.Create(city); err != nil {
		return nil, err
	}

	return city, nil
}

// UpdateCity modifies a city. Staff only.
func (s *CityService) UpdateCity(actor *models.User, id uint, req *models.CityRequest) (*models.City, error) {
	log.Printf("[DEBUG] CityService.UpdateCity: id=%d\n", id)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if err := validateCityRequest(req); err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	city.Name = req.Name
	city.Country = req.Country
	city.Latitude = req.Latitude
	city.Longitude = req.Longitude
	city.PhotoURL = req.PhotoURL

	if err := s.cityRepo.Update(city); err != nil {
		return nil, err
	}

	return city, nil
}

// DeleteCity removes a city with its favorites and forecasts. Staff only.
func (s *CityService) DeleteCity(actor *models.User, id uint) error {
	log.Printf("[DEBUG] CityService.DeleteCity: id=%d\n", id)

	if err := requireStaff(actor); err != nil {
		return err
	}

	city, err := s.cityRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.cityRepo.Delete(city); err != nil {
		return err
	}

	s.cache.Delete(forecastCacheKey(id))
	return nil
}

// ForecastService handles forecast listing and staff-gated management
type ForecastService struct {
	forecastRepo ForecastRepositoryInterface
	cityRepo     CityRepositoryInterface
	cache        cache.ForecastCache
}

// NewForecastService creates a new forecast service
func NewForecastService(
	forecastRepo ForecastRepositoryInterface,
	cityRepo CityRepositoryInterface,
	forecastCache cache.ForecastCache,
) *ForecastService {
	return &ForecastService{
		forecastRepo: forecastRepo,
		cityRepo:     cityRepo,
		cache:        forecastCache,
	}
}

// ListForecasts returns every forecast with city and favoriting users attached
func (s *ForecastService) ListForecasts() ([]models.WeatherForecast, error) {
	log.Println("[DEBUG] ForecastService.ListForecasts called")
	return s.forecastRepo.ListAll()
}

// CreateForecast records a forecast for an existing city. Staff only.
// Temperature ordering and humidity range are deliberately not checked.
func (s *ForecastService) CreateForecast(actor *models.User, req *models.ForecastRequest) (*models.WeatherForecast, error) {
	log.Printf("[DEBUG] ForecastService.CreateForecast: cityID=%d\n", req.CityID)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	if _, err := s.cityRepo.FindByID(req.CityID); err != nil {
		return nil, err
	}

	forecast := &models.WeatherForecast{
		CityID:         req.CityID,
		ForecastDate:   req.ForecastDate,
		TemperatureMin: req.TemperatureMin,
		TemperatureMax: req.TemperatureMax,
		Condition:      req.Condition,
		Humidity:       req.Humidity,
	}
	if err := s.forecastRepo.Create(forecast); err != nil {
		return nil, err
	}

	s.cache.Delete(forecastCacheKey(req.CityID))
	return forecast, nil
}

// UpdateForecast modifies a forecast. Staff only.
func (s *ForecastService) UpdateForecast(actor *models.User, id uint, req *models.ForecastRequest) (*models.WeatherForecast, error) {
	log.Printf("[DEBUG] ForecastService.UpdateForecast: id=%d\n", id)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	forecast, err := s.forecastRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.CityID != forecast.CityID {
		if _, err := s.cityRepo.FindByID(req.CityID); err != nil {
			return nil, err
		}
		s.cache.Delete(forecastCacheKey(forecast.CityID))
	}

	forecast.CityID = req.CityID
	forecast.ForecastDate = req.ForecastDate
	forecast.TemperatureMin = req.TemperatureMin
	forecast.TemperatureMax = req.TemperatureMax
	forecast.Condition = req.Condition
	forecast.Humidity = req.Humidity

	if err := s.forecastRepo.Update(forecast); err != nil {
		return nil, err
	}

	s.cache.Delete(forecastCacheKey(req.CityID))
	return forecast, nil
}

// DeleteForecast removes a forecast. Staff only.
func (s *ForecastService) DeleteForecast(actor *models.User, id uint) error {
	log.Printf("[DEBUG] ForecastService.DeleteForecast: id=%d\n", id)

	if err := requireStaff(actor); err != nil {
		return err
	}

	forecast, err := s.forecastRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.forecastRepo.Delete(forecast); err != nil {
		return err
	}

	s.cache.Delete(forecastCacheKey(forecast.CityID))
	return nil
}
