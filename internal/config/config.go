package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	MongoURI    string
	MongoDB     string
	// Auth
	JWTSecret string
	TokenTTL  time.Duration
	// Object store
	CloudinaryURL string
	ProbeTimeout  time.Duration // per-probe cap for resource kind detection, 0 = none
	// Behavior
	CORSOrigins   string
	CascadeDelete bool // remove descendant folders/files when a folder is deleted
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:          getEnv("PORT", "4000"),
		Environment:   env,
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "drivebox"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDuration("JWT_TTL", 24*time.Hour),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		ProbeTimeout:  getDuration("PROBE_TIMEOUT", 5*time.Second),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:5173"),
		CascadeDelete: getBool("CASCADE_DELETE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
