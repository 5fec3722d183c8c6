package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

// parseIDParam extracts the numeric :id route parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, weathererr.NewValidationError("id must be a positive integer")
	}
	return uint(id), nil
}

func (s *Server) listCities(c *gin.Context) {
	var filter models.CityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s.handleError(c, weathererr.NewValidationError("invalid query parameters"))
		return
	}

	slog.Debug("Listing cities", "filter", filter)
	page, err := s.cityService.ListCities(filter)
	if err != nil {
		slog.Error("City listing error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) searchCities(c *gin.Context) {
	query := c.Query("q")
	order := c.Query("order")

	slog.Debug("Searching cities", "query", query, "order", order)
	cities, err := s.cityService.SearchCities(query, order)
	if err != nil {
		slog.Error("City search error", "error", err, "query", query)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (s *Server) getCity(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	detail, err := s.cityService.GetCityDetail(currentUser(c), id)
	if err != nil {
		slog.Error("City detail error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) createCity(c *gin.Context) {
	var req models.CityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	city, err := s.cityService.CreateCity(currentUser(c), &req)
	if err != nil {
		slog.Error("City creation error", "error", err, "name", req.Name)
		s.handleError(c, err)
		return
	}

	slog.Debug("City created", "id", city.ID, "name", city.Name)
	c.JSON(http.StatusCreated, city)
}

func (s *Server) updateCity(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req models.CityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	city, err := s.cityService.UpdateCity(currentUser(c), id, &req)
	if err != nil {
		slog.Error("City update error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}

func (s *Server) deleteCity(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.cityService.DeleteCity(currentUser(c), id); err != nil {
		slog.Error("City deletion error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "City deleted successfully"})
}

func (s *Server) listForecasts(c *gin.Context) {
	forecasts, err := s.forecastService.ListForecasts()
	if err != nil {
		slog.Error("Forecast listing error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecasts": forecasts})
}

func (s *Server) createForecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	forecast, err := s.forecastService.CreateForecast(currentUser(c), &req)
	if err != nil {
		slog.Error("Forecast creation error", "error", err, "cityID", req.CityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, forecast)
}

func (s *Server) updateForecast(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req models.ForecastRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	forecast, err := s.forecastService.UpdateForecast(currentUser(c), id, &req)
	if err != nil {
		slog.Error("Forecast update error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

func (s *Server) deleteForecast(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.forecastService.DeleteForecast(currentUser(c), id); err != nil {
		slog.Error("Forecast deletion error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Forecast deleted successfully"})
}
