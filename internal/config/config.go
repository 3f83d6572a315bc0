// Package config loads the application settings from defaults, an optional
// config.yaml, and WANDER_* environment variables, in ascending precedence.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/openroam/wander/internal/models"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the places service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the JSON API server.
// - HealthPort: The port for the monitoring server (healthz, metrics).
// - ProviderType: The geocoding provider to use (nominatim, google).
// - APIKey: The API key for the geocoding provider (required for Google).
// - GeodataEndpoint: The Overpass API endpoint; empty selects the public one.
// - GeodataRate: The allowed Overpass requests per second.
// - RadiusMeters: The search radius around a resolved center.
// - ListCap: The maximum number of places in the list view.
// - MaxAttempts: Upstream attempts per request (1 disables retries).
// - RetryInterval: The pause between retry attempts.
// - CachePath: The file path for the last-search snapshot.
// - Moods: Mood presets; empty falls back to the built-in set.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string
	Port            int
	HealthPort      int
	ProviderType    string
	APIKey          string
	GeodataEndpoint string
	GeodataRate     int
	RadiusMeters    float64
	ListCap         int
	MaxAttempts     uint
	RetryInterval   time.Duration
	CachePath       string
	Moods           []models.Mood
	Database        PostgresConfig
}

// PostgresConfig struct holds the configuration details for connecting to a
// PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration and panics when a value cannot be parsed.
// A missing config.yaml is fine; WANDER_CONFIG_PATH points at its directory
// when it lives outside the working directory.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path := os.Getenv("WANDER_CONFIG_PATH"); path != "" {
		v.AddConfigPath(path)
	} else {
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read configuration file")
		}
	}

	v.SetEnvPrefix("WANDER")
	v.AutomaticEnv()
	bindDatabaseEnv(v)

	interval, err := time.ParseDuration(v.GetString("retry_interval"))
	if err != nil {
		panic("failed to parse retry interval from configuration")
	}

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("health_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	maxAttempts, err := strconv.ParseUint(v.GetString("max_attempts"), 10, 32)
	if err != nil {
		panic("failed to parse retry attempts from configuration, must be an unsigned integer")
	}

	radius, err := strconv.ParseFloat(v.GetString("radius_meters"), 64)
	if err != nil {
		panic("failed to parse search radius from configuration")
	}

	listCap, err := strconv.Atoi(v.GetString("list_cap"))
	if err != nil {
		panic("failed to parse list cap from configuration")
	}

	geodataRate, err := strconv.Atoi(v.GetString("geodata_rate"))
	if err != nil {
		panic("failed to parse geodata rate limit from configuration")
	}

	var moods []models.Mood
	if err = v.UnmarshalKey("moods", &moods); err != nil {
		panic("failed to parse mood presets from configuration")
	}

	return &Config{
		Env:             v.GetString("env"),
		Port:            port,
		HealthPort:      healthPort,
		ProviderType:    v.GetString("provider_type"),
		APIKey:          v.GetString("provider_key"),
		GeodataEndpoint: v.GetString("geodata_endpoint"),
		GeodataRate:     geodataRate,
		RadiusMeters:    radius,
		ListCap:         listCap,
		MaxAttempts:     uint(maxAttempts),
		RetryInterval:   interval,
		CachePath:       v.GetString("cache_path"),
		Moods:           moods,
		Database: PostgresConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("port", "8080")
	v.SetDefault("health_port", "9090")
	v.SetDefault("provider_type", "nominatim")
	v.SetDefault("provider_key", "")
	v.SetDefault("geodata_endpoint", "")
	v.SetDefault("geodata_rate", "2")
	v.SetDefault("radius_meters", "1500")
	v.SetDefault("list_cap", "50")
	v.SetDefault("max_attempts", "3")
	v.SetDefault("retry_interval", "2s")
	v.SetDefault("cache_path", "last_search.json")
	v.SetDefault("database.port", "5432")
}

// bindDatabaseEnv keeps the unprefixed DB_* variable names used by the
// deployment manifests.
func bindDatabaseEnv(v *viper.Viper) {
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USERNAME")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.name", "DB_NAME")
}
