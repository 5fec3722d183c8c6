// Package repository implements data access layer for the application
package repository

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

// CityPageSize is the fixed page size of the city listing
const CityPageSize = 10

// activeCityScope keeps only cities that have at least one forecast
func activeCityScope(db *gorm.DB) *gorm.DB {
	return db.Where("EXISTS (SELECT 1 FROM weather_forecasts WHERE weather_forecasts.city_id = cities.id)")
}

// citySortColumns whitelists the sort keys accepted by the listing.
// Ties are always broken by primary key so the order stays stable.
var citySortColumns = map[string]string{
	"name":     "name ASC, id ASC",
	"-name":    "name DESC, id ASC",
	"country":  "country ASC, id ASC",
	"-country": "country DESC, id ASC",
}

// CityRepository handles data access operations for cities
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new repository for city data
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// ListActive returns one page of active cities matching the given filters
func (r *CityRepository) ListActive(filter models.CityFilter) (*models.CityPage, error) {
	log.Printf("[DEBUG] CityRepository.ListActive: filter=%+v\n", filter)

	query := activeCityScope(r.db.Model(&models.City{}))

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Country != "" {
		query = query.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(filter.Country)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Database error when counting cities: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to count cities", err)
	}

	if order, ok := citySortColumns[filter.Sort]; ok {
		query = query.Order(order)
	} else {
		query = query.Order("id ASC")
	}

	// Out-of-range pages land on the last page; an empty result set is page 1.
	totalPages := int((total + CityPageSize - 1) / CityPageSize)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	var cities []models.City
	offset := (page - 1) * CityPageSize
	if err := query.Offset(offset).Limit(CityPageSize).Find(&cities).Error; err != nil {
		log.Printf("[ERROR] Database error when listing cities: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list cities", err)
	}

	return &models.CityPage{
		Cities:      cities,
		TotalCount:  total,
		Page:        page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// Search returns all cities whose name or country contains the query
func (r *CityRepository) Search(query, order string) ([]models.City, error) {
	log.Printf("[DEBUG] CityRepository.Search: query=%q, order=%q\n", query, order)

	q := r.db.Model(&models.City{})
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(country) LIKE ?", like, like)
	}

	switch order {
	case "asc":
		q = q.Order("name ASC, id ASC")
	case "desc":
		q = q.Order("name DESC, id ASC")
	}

	var cities []models.City
	if err := q.Find(&cities).Error; err != nil {
		log.Printf("[ERROR] Database error when searching cities: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to search cities", err)
	}

	return cities, nil
}

// FindByID retrieves a city by its ID
func (r *CityRepository) FindByID(id uint) (*models.City, error) {
	log.Printf("[DEBUG] CityRepository.FindByID: id=%d\n", id)

	var city models.City
	result := r.db.First(&city, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, weathererr.NewNotFoundError(fmt.Sprintf("city %d not found", id))
		}
		log.Printf("[ERROR] Database error when finding city: %v\n", result.Error)
		return nil, weathererr.NewDatabaseError("failed to find city", result.Error)
	}

	return &city, nil
}

// Create persists a new city to the database
func (r *CityRepository) Create(city *models.City) error {
	log.Printf("[DEBUG] CityRepository.Create: %+v\n", city)

	if err := r.db.Create(city).Error; err != nil {
		log.Printf("[ERROR] Database error when creating city: %v\n", err)
		return weathererr.NewDatabaseError("failed to create city", err)
	}

	log.Printf("[DEBUG] Created city with ID: %d\n", city.ID)
	return nil
}

// Update modifies an existing city
func (r *CityRepository) Update(city *models.City) error {
	log.Printf("[DEBUG] CityRepository.Update: %+v\n", city)

	if err := r.db.Save(city).Error; err != nil {
		log.Printf("[ERROR] Database error when updating city: %v\n", err)
		return weathererr.NewDatabaseError("failed to update city", err)
	}

	return nil
}

// Delete removes a city together with its favorites and forecasts
func (r *CityRepository) Delete(city *models.City) error {
	log.Printf("[DEBUG] CityRepository.Delete: id=%d\n", city.ID)

	tx := r.db.Begin()
	if tx.Error != nil {
		return weathererr.NewDatabaseError("failed to begin transaction", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("city_id = ?", city.ID).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete city favorites", err)
	}
	if err := tx.Where("city_id = ?", city.ID).Delete(&models.WeatherForecast{}).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete city forecasts", err)
	}
	if err := tx.Delete(city).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete city", err)
	}

	if err := tx.Commit().Error; err != nil {
		return weathererr.NewDatabaseError("failed to commit transaction", err)
	}

	log.Printf("[DEBUG] Deleted city %d and its dependents\n", city.ID)
	return nil
}
