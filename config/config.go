package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the collaborators need at startup. Nothing else
// in the codebase reads the process environment.
type Config struct {
	MongoURI        string
	DBName          string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	StripeSecretKey string
	LogLevel        string
}

// Load reads .env (if present) and builds the configuration. MONGO_URI and
// DB_NAME have no sensible defaults and are required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          os.Getenv("DB_NAME"),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          24 * time.Hour,
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" || cfg.DBName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment variables")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
