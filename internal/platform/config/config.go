package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "desk-reservation-app"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	DatabaseMaxConns  int32
	Port              string
	IsProduction      bool
	EnableDBCheck     bool   // ping the database and apply migrations at startup
	StorageDriver     string // postgres or memory
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminPasswordHash is the bcrypt hash accepted for the Administrator login.
	// Empty disables administrator login.
	AdminPasswordHash string

	SeedFile           string
	RateLimit          string // ulule formatted rate, e.g. "60-M"
	CacheTTL           time.Duration
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PGSQL_MAX_CONNS", 10)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CACHE_TTL", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override the defaults (and anything godotenv exported).
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		DatabaseMaxConns:  viper.GetInt32("PGSQL_MAX_CONNS"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		AdminPasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		SeedFile:          viper.GetString("SEED_FILE"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %q", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", cfg.StorageDriver, StorageDriverPostgres, StorageDriverMemory)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 8*time.Hour)
	cfg.CacheTTL = durationOrDefault("CACHE_TTL", 30*time.Second)

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Administrator login is disabled.")
	}

	if cfg.DatabaseMaxConns <= 0 {
		cfg.DatabaseMaxConns = 10
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
