package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("RequiredFieldsMissing", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "required key EMAIL_SMTP_USERNAME missing")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("EMAIL_SMTP_USERNAME", "test-username"))
		require.NoError(t, os.Setenv("EMAIL_SMTP_PASSWORD", "test-password"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "postgres", config.Database.User)
		assert.Equal(t, "weatherhub", config.Database.Name)
		assert.Equal(t, "disable", config.Database.SSLMode)
		assert.Equal(t, "smtp.gmail.com", config.Email.SMTPHost)
		assert.Equal(t, 587, config.Email.SMTPPort)
		assert.Equal(t, "WeatherHub", config.Email.FromName)
		assert.Equal(t, "no-reply@weatherhub.app", config.Email.FromAddress)
		assert.Equal(t, "support@weatherhub.app", config.Email.SupportAddress)
		assert.Equal(t, "memory", config.Cache.Type)
		assert.Equal(t, 10, config.Cache.TTLMinutes)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("DB_HOST", "test-db-host"))
		require.NoError(t, os.Setenv("DB_PORT", "5433"))
		require.NoError(t, os.Setenv("DB_USER", "test-user"))
		require.NoError(t, os.Setenv("DB_PASSWORD", "test-db-password"))
		require.NoError(t, os.Setenv("DB_NAME", "test-db"))
		require.NoError(t, os.Setenv("DB_SSL_MODE", "require"))
		require.NoError(t, os.Setenv("EMAIL_SMTP_HOST", "smtp.test.com"))
		require.NoError(t, os.Setenv("EMAIL_SMTP_PORT", "465"))
		require.NoError(t, os.Setenv("EMAIL_SMTP_USERNAME", "custom-username"))
		require.NoError(t, os.Setenv("EMAIL_SMTP_PASSWORD", "custom-password"))
		require.NoError(t, os.Setenv("EMAIL_FROM_NAME", "Custom Name"))
		require.NoError(t, os.Setenv("EMAIL_FROM_ADDRESS", "custom@example.com"))
		require.NoError(t, os.Setenv("EMAIL_SUPPORT_ADDRESS", "help@example.com"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("CACHE_TTL_MINUTES", "30"))
		require.NoError(t, os.Setenv("CACHE_REDIS_ADDR", "redis.test:6379"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.NotNil(t, config)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "test-db-host", config.Database.Host)
		assert.Equal(t, 5433, config.Database.Port)
		assert.Equal(t, "test-user", config.Database.User)
		assert.Equal(t, "test-db-password", config.Database.Password)
		assert.Equal(t, "test-db", config.Database.Name)
		assert.Equal(t, "require", config.Database.SSLMode)
		assert.Equal(t, "smtp.test.com", config.Email.SMTPHost)
		assert.Equal(t, 465, config.Email.SMTPPort)
		assert.Equal(t, "custom-username", config.Email.SMTPUsername)
		assert.Equal(t, "custom-password", config.Email.SMTPPassword)
		assert.Equal(t, "Custom Name", config.Email.FromName)
		assert.Equal(t, "custom@example.com", config.Email.FromAddress)
		assert.Equal(t, "help@example.com", config.Email.SupportAddress)
		assert.Equal(t, "redis", config.Cache.Type)
		assert.Equal(t, 30, config.Cache.TTLMinutes)
		assert.Equal(t, "redis.test:6379", config.Cache.RedisAddr)
	})

	t.Run("GetDSN", func(t *testing.T) {
		dbConfig := DatabaseConfig{
			Host:     "test-host",
			Port:     5432,
			User:     "test-user",
			Password: "test-password",
			Name:     "test-db",
			SSLMode:  "disable",
		}

		expectedDSN := "host=test-host port=5432 user=test-user password=test-password dbname=test-db sslmode=disable"
		assert.Equal(t, expectedDSN, dbConfig.GetDSN())
	})
}

func TestConfigValidation(t *testing.T) {
	validEmail := EmailConfig{
		SMTPHost:       "smtp.test.com",
		SMTPPort:       587,
		SMTPUsername:   "user",
		SMTPPassword:   "password",
		FromName:       "WeatherHub",
		FromAddress:    "no-reply@weatherhub.app",
		SupportAddress: "support@weatherhub.app",
	}

	t.Run("InvalidServerPort", func(t *testing.T) {
		server := ServerConfig{Port: 0}
		err := server.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("InvalidSSLMode", func(t *testing.T) {
		db := DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Name: "weatherhub", SSLMode: "maybe"}
		err := db.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DB_SSL_MODE")
	})

	t.Run("ValidEmail", func(t *testing.T) {
		email := validEmail
		assert.NoError(t, email.Validate())
	})

	t.Run("InvalidSupportAddress", func(t *testing.T) {
		email := validEmail
		email.SupportAddress = "not-an-address"
		err := email.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EMAIL_SUPPORT_ADDRESS")
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		cache := CacheConfig{Type: "disk", TTLMinutes: 10}
		err := cache.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})

	t.Run("InvalidCacheTTL", func(t *testing.T) {
		cache := CacheConfig{Type: "memory", TTLMinutes: 0}
		err := cache.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_TTL_MINUTES")
	})
}
