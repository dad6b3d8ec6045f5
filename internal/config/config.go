package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Agmarknet (data.gov.in) mandi price configuration.
	AgmarknetAPIKey  string
	AgmarknetTimeout time.Duration
	AgmarknetLimit   int

	// OpenWeather configuration.
	OpenWeatherAPIKey  string
	OpenWeatherTimeout time.Duration

	// Nominatim reverse geocoding configuration.
	NominatimTimeout time.Duration

	// Forward geocode LRU cache size.
	GeocodeCacheSize int

	// Saved location slot.
	LocationFile  string
	SensorTimeout time.Duration
	SensorMaxAge  time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first if
// present; real environment variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	agmarknetTimeout, err := parseDuration("AGMARKNET_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	openWeatherTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	nominatimTimeout, err := parseDuration("NOMINATIM_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	sensorTimeout, err := parseDuration("SENSOR_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	sensorMaxAge, err := parseDuration("SENSOR_MAX_AGE", "5m")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		AgmarknetAPIKey:  os.Getenv("AGMARKNET_API_KEY"),
		AgmarknetTimeout: agmarknetTimeout,
		AgmarknetLimit:   parsePositiveInt("AGMARKNET_LIMIT", 500),

		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherTimeout: openWeatherTimeout,

		NominatimTimeout: nominatimTimeout,

		GeocodeCacheSize: parsePositiveInt("GEOCODE_CACHE_SIZE", 1000),

		LocationFile:  envOrDefault("LOCATION_FILE", "data/location.json"),
		SensorTimeout: sensorTimeout,
		SensorMaxAge:  sensorMaxAge,
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("LOG_FORMAT must be json or text")
	}
	if cfg.LocationFile == "" {
		return nil, errors.New("LOCATION_FILE is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
