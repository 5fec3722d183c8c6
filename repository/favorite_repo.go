package repository

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

// FavoriteRepository handles data access operations for user favorites
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new repository for favorite data
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the (user, city) favorite pair if it does not exist yet.
// The insert is a single ON CONFLICT DO NOTHING statement so concurrent
// calls for the same pair never surface a unique-constraint error.
// Returns true when a new record was created.
func (r *FavoriteRepository) Add(userID, cityID uint) (bool, error) {
	log.Printf("[DEBUG] FavoriteRepository.Add: userID=%d, cityID=%d\n", userID, cityID)

	favorite := models.Favorite{UserID: userID, CityID: cityID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "city_id"}},
		DoNothing: true,
	}).Create(&favorite)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when adding favorite: %v\n", result.Error)
		return false, weathererr.NewDatabaseError("failed to add favorite", result.Error)
	}

	created := result.RowsAffected > 0
	log.Printf("[DEBUG] Favorite add result: created=%v\n", created)
	return created, nil
}

// Remove deletes the (user, city) favorite pair. Removing a pair that does
// not exist is a no-op, not an error. Returns true when a record was deleted.
func (r *FavoriteRepository) Remove(userID, cityID uint) (bool, error) {
	log.Printf("[DEBUG] FavoriteRepository.Remove: userID=%d, cityID=%d\n", userID, cityID)

	result := r.db.Where("user_id = ? AND city_id = ?", userID, cityID).Delete(&models.Favorite{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when removing favorite: %v\n", result.Error)
		return false, weathererr.NewDatabaseError("failed to remove favorite", result.Error)
	}

	removed := result.RowsAffected > 0
	log.Printf("[DEBUG] Favorite remove result: removed=%v\n", removed)
	return removed, nil
}

// Exists reports whether the (user, city) favorite pair is present
func (r *FavoriteRepository) Exists(userID, cityID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND city_id = ?", userID, cityID).
		Count(&count).Error
	if err != nil {
		log.Printf("[ERROR] Database error when checking favorite: %v\n", err)
		return false, weathererr.NewDatabaseError("failed to check favorite", err)
	}
	return count > 0, nil
}

// ListCities returns the distinct cities the given user has favorited
func (r *FavoriteRepository) ListCities(userID uint) ([]models.City, error) {
	log.Printf("[DEBUG] FavoriteRepository.ListCities: userID=%d\n", userID)

	var cities []models.City
	err := r.db.Model(&models.City{}).
		Joins("JOIN favorites ON favorites.city_id = cities.id").
		Where("favorites.user_id = ?", userID).
		Distinct().
		Order("cities.id ASC").
		Find(&cities).Error
	if err != nil {
		log.Printf("[ERROR] Database error when listing favorite cities: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list favorite cities", err)
	}

	return cities, nil
}
