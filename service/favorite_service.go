package service

import (
	"log"

	"weatherhub.app/metrics"
	"weatherhub.app/models"
)

// FavoriteService handles the user-city favorite relation
type FavoriteService struct {
	favoriteRepo FavoriteRepositoryInterface
	cityRepo     CityRepositoryInterface
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo FavoriteRepositoryInterface, cityRepo CityRepositoryInterface) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		cityRepo:     cityRepo,
	}
}

// AddFavorite marks a city as a favorite of the acting user. Returns true
// when a new favorite was created and false when the pair already existed;
// both are success outcomes so the operation is idempotent.
func (s *FavoriteService) AddFavorite(actor *models.User, cityID uint) (bool, error) {
	log.Printf("[DEBUG] FavoriteService.AddFavorite: cityID=%d\n", cityID)

	if err := requireAuthenticated(actor); err != nil {
		return false, err
	}

	if _, err := s.cityRepo.FindByID(cityID); err != nil {
		return false, err
	}

	created, err := s.favoriteRepo.Add(actor.ID, cityID)
	if err != nil {
		return false, err
	}

	if created {
		metrics.GetAppMetrics().FavoritesAdded.Inc()
	}
	return created, nil
}

// RemoveFavorite removes a city from the acting user's favorites.
// Removing a favorite that does not exist succeeds silently.
func (s *FavoriteService) RemoveFavorite(actor *models.User, cityID uint) error {
	log.Printf("[DEBUG] FavoriteService.RemoveFavorite: cityID=%d\n", cityID)

	if err := requireAuthenticated(actor); err != nil {
		return err
	}

	if _, err := s.cityRepo.FindByID(cityID); err != nil {
		return err
	}

	removed, err := s.favoriteRepo.Remove(actor.ID, cityID)
	if err != nil {
		return err
	}

	if removed {
		metrics.GetAppMetrics().FavoritesRemoved.Inc()
	}
	return nil
}

// ListFavoriteCities returns the distinct cities the acting user favorited
func (s *FavoriteService) ListFavoriteCities(actor *models.User) ([]models.City, error) {
	log.Println("[DEBUG] FavoriteService.ListFavoriteCities called")

	if err := requireAuthenticated(actor); err != nil {
		return nil, err
	}

	return s.favoriteRepo.ListCities(actor.ID)
}
