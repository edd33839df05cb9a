package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("JWT_EXPIRY_DURATION", "90m")
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)

	t.Setenv("PGSQL_URL", "postgres://localhost:5432/desks")
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/desks", cfg.DatabaseURL)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-production-secret")
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
}
