package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	JWTSecret           string
	JWTAccessExpiry     time.Duration
	DatabaseURL         string
	FirebaseAPIKey      string
	FirebaseCredentials string
	FirebaseProjectID   string
	StateDir            string
	IdentityProvider    string // "firebase" or "local"
	FeaturedCount       int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	featuredCount := 4
	return &Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:     accessExpiry,
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=storefront port=5432 sslmode=disable"),
		FirebaseAPIKey:      getEnv("FIREBASE_API_KEY", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		StateDir:            getEnv("STATE_DIR", ".state"),
		IdentityProvider:    getEnv("IDENTITY_PROVIDER", "firebase"),
		FeaturedCount:       featuredCount,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
