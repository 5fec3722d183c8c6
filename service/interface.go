package service

import (
	"weatherhub.app/models"
)

// CityRepositoryInterface defines the interface for city data operations
type CityRepositoryInterface interface {
	ListActive(filter models.CityFilter) (*models.CityPage, error)
	Search(query, order string) ([]models.City, error)
	FindByID(id uint) (*models.City, error)
	Create(city *models.City) error
	Update(city *models.City) error
	Delete(city *models.City) error
}

// FavoriteRepositoryInterface defines the interface for favorite data operations
type FavoriteRepositoryInterface interface {
	Add(userID, cityID uint) (bool, error)
	Remove(userID, cityID uint) (bool, error)
	Exists(userID, cityID uint) (bool, error)
	ListCities(userID uint) ([]models.City, error)
}

// ForecastRepositoryInterface defines the interface for forecast data operations
type ForecastRepositoryInterface interface {
	ListAll() ([]models.WeatherForecast, error)
	ListByCity(cityID uint) ([]models.WeatherForecast, error)
	FindByID(id uint) (*models.WeatherForecast, error)
	Create(forecast *models.WeatherForecast) error
	Update(forecast *models.WeatherForecast) error
	Delete(forecast *models.WeatherForecast) error
}

// UserRepositoryInterface defines the interface for user data operations
type UserRepositoryInterface interface {
	CreateWithProfile(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindAll() ([]models.User, error)
	GetProfile(userID uint) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	Update(user *models.User) error
	Delete(user *models.User) error
}

// SupportRepositoryInterface defines the interface for support request data operations
type SupportRepositoryInterface interface {
	Create(request *models.SupportRequest) error
	List(status string) ([]models.SupportRequest, error)
	FindByID(id uint) (*models.SupportRequest, error)
	Update(request *models.SupportRequest) error
}

// CityServiceInterface defines the interface for city browsing and management
type CityServiceInterface interface {
	ListCities(filter models.CityFilter) (*models.CityPage, error)
	SearchCities(query, order string) ([]models.City, error)
	GetCityDetail(actor *models.User, id uint) (*models.CityDetail, error)
	CreateCity(actor *models.User, req *models.CityRequest) (*models.City, error)
	UpdateCity(actor *models.User, id uint, req *models.CityRequest) (*models.City, error)
	DeleteCity(actor *models.User, id uint) error
}

// ForecastServiceInterface defines the interface for forecast operations
type ForecastServiceInterface interface {
	ListForecasts() ([]models.WeatherForecast, error)
	CreateForecast(actor *models.User, req *models.ForecastRequest) (*models.WeatherForecast, error)
	UpdateForecast(actor *models.User, id uint, req *models.ForecastRequest) (*models.WeatherForecast, error)
	DeleteForecast(actor *models.User, id uint) error
}

// FavoriteServiceInterface defines the interface for favorite operations
type FavoriteServiceInterface interface {
	AddFavorite(actor *models.User, cityID uint) (bool, error)
	RemoveFavorite(actor *models.User, cityID uint) error
	ListFavoriteCities(actor *models.User) ([]models.City, error)
}

// UserServiceInterface defines the interface for user and profile operations
type UserServiceInterface interface {
	Register(req *models.RegisterRequest) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	GetProfile(actor *models.User) (*models.Profile, error)
	UpdateProfile(actor *models.User, req *models.ProfileRequest) (*models.Profile, error)
	UpdateUser(actor *models.User, id uint, req *models.UserUpdateRequest) (*models.User, error)
	DeleteUser(actor *models.User, id uint) error
}

// SupportServiceInterface defines the interface for the support workflow
type SupportServiceInterface interface {
	Submit(actor *models.User, input *models.SupportRequestInput) (*models.SupportRequest, error)
	List(actor *models.User, status string) ([]models.SupportRequest, error)
	Get(actor *models.User, id uint) (*models.SupportRequest, error)
	Respond(actor *models.User, id uint, input *models.SupportResponseInput) (*models.SupportRequest, error)
}

// EmailServiceInterface defines the interface for email operations
type EmailServiceInterface interface {
	SendSupportNotification(request *models.SupportRequest) error
	SendSupportResponse(request *models.SupportRequest) error
}

// Ensure implementations satisfy interfaces
var _ CityServiceInterface = (*CityService)(nil)
var _ ForecastServiceInterface = (*ForecastService)(nil)
var _ FavoriteServiceInterface = (*FavoriteService)(nil)
var _ UserServiceInterface = (*UserService)(nil)
var _ SupportServiceInterface = (*SupportService)(nil)
var _ EmailServiceInterface = (*EmailService)(nil)
