package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherhub.app/database"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
	"weatherhub.app/providers/cache"
	"weatherhub.app/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

// mockEmailService records notification attempts without touching SMTP
type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendSupportNotification(request *models.SupportRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *mockEmailService) SendSupportResponse(request *models.SupportRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

var _ EmailServiceInterface = (*mockEmailService)(nil)

func newTestCityService(db *gorm.DB) (*CityService, *ForecastService) {
	cityRepo := repository.NewCityRepository(db)
	forecastRepo := repository.NewForecastRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	forecastCache := cache.NewMemoryCache()
	cityService := NewCityService(cityRepo, forecastRepo, favoriteRepo, forecastCache, 10*time.Minute)
	forecastService := NewForecastService(forecastRepo, cityRepo, forecastCache)
	return cityService, forecastService
}

func seedUser(t *testing.T, db *gorm.DB, username string, staff bool) *models.User {
	user := &models.User{Username: username, Email: username + "@example.com", IsStaff: staff}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCity(t *testing.T, db *gorm.DB, name, country string) *models.City {
	city := &models.City{Name: name, Country: country, Latitude: 48.85, Longitude: 2.35}
	require.NoError(t, db.Create(city).Error)
	return city
}

func seedForecast(t *testing.T, db *gorm.DB, cityID uint) *models.WeatherForecast {
	forecast := &models.WeatherForecast{
		CityID:       cityID,
		ForecastDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Condition:    "Sunny",
		Humidity:     40,
	}
	require.NoError(t, db.Create(forecast).Error)
	return forecast
}

func TestCityService_CreateCity(t *testing.T) {
	db := setupTestDB(t)
	cityService, _ := newTestCityService(db)
	staff := seedUser(t, db, "staff", true)
	regular := seedUser(t, db, "regular", false)

	validReq := &models.CityRequest{Name: "Paris", Country: "France", Latitude: 48.85, Longitude: 2.35}

	t.Run("StaffCreates", func(t *testing.T) {
		city, err := cityService.CreateCity(staff, validReq)
		require.NoError(t, err)
		assert.NotZero(t, city.ID)
	})

	t.Run("AnonymousDenied", func(t *testing.T) {
		_, err := cityService.CreateCity(nil, validReq)
		assert.True(t, weathererr.IsPermissionDeniedError(err))
	})

	t.Run("NonStaffDenied", func(t *testing.T) {
		_, err := cityService.CreateCity(regular, validReq)
		assert.True(t, weathererr.IsPermissionDeniedError(err))
	})

	t.Run("InvalidLatitude", func(t *testing.T) {
		_, err := cityService.CreateCity(staff, &models.CityRequest{
			Name: "Nowhere", Country: "Nowhere", Latitude: 90.0001, Longitude: 0,
		})
		assert.True(t, weathererr.IsValidationError(err))
	})

	t.Run("InvalidLongitude", func(t *testing.T) {
		_, err := cityService.CreateCity(staff, &models.CityRequest{
			Name: "Nowhere", Country: "Nowhere", Latitude: 0, Longitude: 180.0001,
		})
		assert.True(t, weathererr.IsValidationError(err))
	})
}

func TestCityService_ListCities_ActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	cityService, _ := newTestCityService(db)

	paris := seedCity(t, db, "Paris", "France")
	seedCity(t, db, "Lyon", "France")
	seedForecast(t, db, paris.ID)

	page, err := cityService.ListCities(models.CityFilter{})
	require.NoError(t, err)
	require.Len(t, page.Cities, 1)
	assert.Equal(t, "Paris", page.Cities[0].Name)

	// the inactive city still turns up in search
	cities, err := cityService.SearchCities("lyon", "")
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}

func TestCityService_ListCities_InvalidSort(t *testing.T) {
	db := setupTestDB(t)
	cityService, _ := newTestCityService(db)

	_, err := cityService.ListCities(models.CityFilter{Sort: "population"})
	assert.True(t, weathererr.IsValidationError(err))
}

func TestCityService_GetCityDetail(t *testing.T) {
	db := setupTestDB(t)
	cityService, _ := newTestCityService(db)

	user := seedUser(t, db, "alice", false)
	city := seedCity(t, db, "Paris", "France")
	seedForecast(t, db, city.ID)

	t.Run("AnonymousCaller", func(t *testing.T) {
		detail, err := cityService.GetCityDetail(nil, city.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paris", detail.City.Name)
		assert.Len(t, detail.Forecasts, 1)
		assert.False(t, detail.IsFavorite)
	})

	t.Run("FavoriteFlagSet", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, CityID: city.ID}).Error)

		detail, err := cityService.GetCityDetail(user, city.ID)
		require.NoError(t, err)
		assert.True(t, detail.IsFavorite)
	})

	t.Run("UnknownCity", func(t *testing.T) {
		_, err := cityService.GetCityDetail(nil, 999)
		assert.True(t, weathererr.IsNotFoundError(err))
	})

	t.Run("ForecastsServedFromCache", func(t *testing.T) {
		// first call populated the cache; a direct table wipe must not
		// be visible until the cache entry is invalidated
		require.NoError(t, db.Exec("DELETE FROM weather_forecasts").Error)

		detail, err := cityService.GetCityDetail(nil, city.ID)
		require.NoError(t, err)
		assert.Len(t, detail.Forecasts, 1)
	})
}

func TestForecastService_StaffGate(t *testing.T) {
	db := setupTestDB(t)
	_, forecastService := newTestCityService(db)
	regular := seedUser(t, db, "regular", false)

	req := &models.ForecastRequest{CityID: 1, ForecastDate: time.Now()}
	_, err := forecastService.CreateForecast(regular, req)
	assert.True(t, weathererr.IsPermissionDeniedError(err))
}

func TestForecastService_CreateForecast(t *testing.T) {
	db := setupTestDB(t)
	_, forecastService := newTestCityService(db)
	staff := seedUser(t, db, "staff", true)

	t.Run("UnknownCity", func(t *testing.T) {
		_, err := forecastService.CreateForecast(staff, &models.ForecastRequest{
			CityID: 999, ForecastDate: time.Now(),
		})
		assert.True(t, weathererr.IsNotFoundError(err))
	})

	t.Run("MinMayExceedMax", func(t *testing.T) {
		city := seedCity(t, db, "Paris", "France")
		forecast, err := forecastService.CreateForecast(staff, &models.ForecastRequest{
			CityID:         city.ID,
			ForecastDate:   time.Now(),
			TemperatureMin: 25.0,
			TemperatureMax: 10.0,
			Humidity:       150,
		})
		require.NoError(t, err)
		assert.Equal(t, 25.0, forecast.TemperatureMin)
	})
}

func TestForecastService_ListForecasts_JoinsCityAndUsers(t *testing.T) {
	db := setupTestDB(t)
	_, forecastService := newTestCityService(db)

	user := seedUser(t, db, "alice", false)
	city := seedCity(t, db, "Paris", "France")
	seedForecast(t, db, city.ID)
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, CityID: city.ID}).Error)

	forecasts, err := forecastService.ListForecasts()
	require.NoError(t, err)
	require.Len(t, forecasts, 1)
	require.NotNil(t, forecasts[0].City)
	assert.Equal(t, "Paris", forecasts[0].City.Name)
	require.Len(t, forecasts[0].City.Users, 1)
	assert.Equal(t, "alice", forecasts[0].City.Users[0].Username)
}
