// Package api exposes the application's HTTP surface
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherhub.app/config"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
	"weatherhub.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router          *gin.Engine
	config          *config.Config
	identity        IdentityProvider
	cityService     service.CityServiceInterface
	forecastService service.ForecastServiceInterface
	favoriteService service.FavoriteServiceInterface
	userService     service.UserServiceInterface
	supportService  service.SupportServiceInterface
}

// ServerOptions bundles the dependencies of the HTTP server
type ServerOptions struct {
	Config          *config.Config
	Identity        IdentityProvider
	CityService     service.CityServiceInterface
	ForecastService service.ForecastServiceInterface
	FavoriteService service.FavoriteServiceInterface
	UserService     service.UserServiceInterface
	SupportService  service.SupportServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Config == nil {
		return nil, weathererr.NewConfigurationError("server config is required", nil)
	}
	if opts.Identity == nil {
		return nil, weathererr.NewConfigurationError("identity provider is required", nil)
	}

	router := gin.Default()

	server := &Server{
		router:          router,
		config:          opts.Config,
		identity:        opts.Identity,
		cityService:     opts.CityService,
		forecastService: opts.ForecastService,
		favoriteService: opts.FavoriteService,
		userService:     opts.UserService,
		supportService:  opts.SupportService,
	}

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	api.Use(s.identityMiddleware())
	{
		api.GET("/cities", s.listCities)
		api.GET("/cities/search", s.searchCities)
		api.GET("/cities/:id", s.getCity)
		api.POST("/cities", s.createCity)
		api.PUT("/cities/:id", s.updateCity)
		api.DELETE("/cities/:id", s.deleteCity)

		api.POST("/cities/:id/favorite", s.addFavorite)
		api.DELETE("/cities/:id/favorite", s.removeFavorite)
		api.GET("/favorites", s.listFavorites)

		api.GET("/forecasts", s.listForecasts)
		api.POST("/forecasts", s.createForecast)
		api.PUT("/forecasts/:id", s.updateForecast)
		api.DELETE("/forecasts/:id", s.deleteForecast)

		api.POST("/users", s.register)
		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.PUT("/users/:id", s.updateUser)
		api.DELETE("/users/:id", s.deleteUser)
		api.GET("/profile", s.getProfile)
		api.PUT("/profile", s.updateProfile)

		api.POST("/support", s.submitSupportRequest)
		api.GET("/support", s.listSupportRequests)
		api.GET("/support/:id", s.getSupportRequest)
		api.POST("/support/:id/respond", s.respondToSupportRequest)
	}
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case weathererr.PermissionDeniedError:
			statusCode = http.StatusForbidden
			message = appErr.Message
		case weathererr.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case weathererr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case weathererr.EmailError:
			statusCode = http.StatusServiceUnavailable
			message = "Unable to send email"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
