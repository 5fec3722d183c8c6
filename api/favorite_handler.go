package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) addFavorite(c *gin.Context) {
	cityID, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	created, err := s.favoriteService.AddFavorite(currentUser(c), cityID)
	if err != nil {
		slog.Error("Add favorite error", "error", err, "cityID", cityID)
		s.handleError(c, err)
		return
	}

	if created {
		slog.Debug("Favorite created", "cityID", cityID)
		c.JSON(http.StatusCreated, gin.H{"message": "City added to favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City is already in favorites"})
}

func (s *Server) removeFavorite(c *gin.Context) {
	cityID, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.favoriteService.RemoveFavorite(currentUser(c), cityID); err != nil {
		slog.Error("Remove favorite error", "error", err, "cityID", cityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "City removed from favorites"})
}

func (s *Server) listFavorites(c *gin.Context) {
	cities, err := s.favoriteService.ListFavoriteCities(currentUser(c))
	if err != nil {
		slog.Error("List favorites error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
