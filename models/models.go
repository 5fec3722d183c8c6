// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// User represents an account known to the identity collaborator
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email     string    `json:"email" gorm:"not null"`
	IsStaff   bool      `json:"is_staff" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	Profile   *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// Profile holds the optional personal details attached to every User
type Profile struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	AvatarURL string     `json:"avatar_url" gorm:"size:255"`
	Bio       string     `json:"bio" gorm:"size:500"`
	Location  string     `json:"location" gorm:"size:100"`
	BirthDate *time.Time `json:"birth_date"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// City represents a city users can browse and favorite
type City struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name" gorm:"size:30;not null;index"`
	Country   string            `json:"country" gorm:"size:30;not null;index"`
	Latitude  float64           `json:"latitude" gorm:"not null"`
	Longitude float64           `json:"longitude" gorm:"not null"`
	PhotoURL  string            `json:"photo_url" gorm:"size:255"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Forecasts []WeatherForecast `json:"forecasts,omitempty" gorm:"foreignKey:CityID"`
	Users     []User            `json:"users,omitempty" gorm:"many2many:favorites;joinForeignKey:CityID;joinReferences:UserID"`
}

// Favorite is the join record between a User and a City
type Favorite struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_city"`
	CityID  uint      `json:"city_id" gorm:"not null;uniqueIndex:idx_favorites_user_city"`
	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	City    *City     `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

// WeatherForecast is a single forecast entry belonging to a City
type WeatherForecast struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CityID         uint      `json:"city_id" gorm:"not null;index"`
	City           *City     `json:"city,omitempty" gorm:"foreignKey:CityID"`
	ForecastDate   time.Time `json:"forecast_date" gorm:"not null"`
	TemperatureMin float64   `json:"temperature_min"`
	TemperatureMax float64   `json:"temperature_max"`
	Condition      string    `json:"condition" gorm:"size:30"`
	Humidity       int       `json:"humidity"`
	CreatedAt      time.Time `json:"created_at" gorm:"<-:create"`
}

// Support request status values
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// SupportStatuses lists every recognized support request status
var SupportStatuses = []string{StatusNew, StatusInProgress, StatusResolved, StatusClosed}

// IsValidSupportStatus reports whether the given status is a recognized one
func IsValidSupportStatus(status string) bool {
	for _, s := range SupportStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SupportRequest tracks a support inquiry through its status lifecycle
type SupportRequest struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Reference     string     `json:"reference" gorm:"uniqueIndex;size:36;not null"`
	UserID        *uint      `json:"user_id" gorm:"index"`
	User          *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	Email         string     `json:"email" gorm:"not null"`
	Subject       string     `json:"subject" gorm:"size:200;not null"`
	Message       string     `json:"message" gorm:"not null"`
	Status        string     `json:"status" gorm:"size:20;not null;default:new;index"`
	AdminResponse string     `json:"admin_response"`
	RespondedAt   *time.Time `json:"responded_at"`
	RespondedByID *uint      `json:"responded_by_id"`
	RespondedBy   *User      `json:"responded_by,omitempty" gorm:"foreignKey:RespondedByID"`
	CreatedAt     time.Time  `json:"created_at" gorm:"<-:create;index"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CityRequest represents data required to create or update a city
type CityRequest struct {
	Name      string  `json:"name" form:"name" binding:"required,max=30"`
	Country   string  `json:"country" form:"country" binding:"required,max=30"`
	Latitude  float64 `json:"latitude" form:"latitude"`
	Longitude float64 `json:"longitude" form:"longitude"`
	PhotoURL  string  `json:"photo_url" form:"photo_url"`
}

// ForecastRequest represents data required to create or update a forecast
type ForecastRequest struct {
	CityID         uint      `json:"city_id" form:"city_id" binding:"required"`
	ForecastDate   time.Time `json:"forecast_date" form:"forecast_date" binding:"required"`
	TemperatureMin float64   `json:"temperature_min" form:"temperature_min"`
	TemperatureMax float64   `json:"temperature_max" form:"temperature_max"`
	Condition      string    `json:"condition" form:"condition" binding:"max=30"`
	Humidity       int       `json:"humidity" form:"humidity"`
}

// RegisterRequest represents data required to register a user
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"required,email"`
}

// UserUpdateRequest represents an account update (owner or staff)
type UserUpdateRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"required,email"`
}

// ProfileRequest represents a profile update submitted by its owner
type ProfileRequest struct {
	AvatarURL string     `json:"avatar_url" form:"avatar_url"`
	Bio       string     `json:"bio" form:"bio" binding:"max=500"`
	Location  string     `json:"location" form:"location" binding:"max=100"`
	BirthDate *time.Time `json:"birth_date" form:"birth_date"`
}

// SupportRequestInput represents a submitted support inquiry
type SupportRequestInput struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Subject string `json:"subject" form:"subject" binding:"required,max=200"`
	Message string `json:"message" form:"message" binding:"required"`
}

// SupportResponseInput represents a staff response to a support request
type SupportResponseInput struct {
	Response string `json:"response" form:"response" binding:"required"`
	Status   string `json:"status" form:"status" binding:"required,oneof=new in_progress resolved closed"`
}

// CityFilter holds the query parameters accepted by the city listing
type CityFilter struct {
	Name    string `form:"name"`
	Country string `form:"country"`
	Sort    string `form:"sort"`
	Page    int    `form:"page"`
}

// CityPage is one page of the city listing with pagination metadata
type CityPage struct {
	Cities      []City `json:"cities"`
	TotalCount  int64  `json:"total_count"`
	Page        int    `json:"page"`
	TotalPages  int    `json:"total_pages"`
	HasNext     bool   `json:"has_next"`
	HasPrevious bool   `json:"has_previous"`
}

// CityDetail combines a city with its forecasts and the caller's favorite flag
type CityDetail struct {
	City       City              `json:"city"`
	Forecasts  []WeatherForecast `json:"forecasts"`
	IsFavorite bool              `json:"is_favorite"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
