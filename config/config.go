package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Catalog source kinds accepted by CATALOG_SOURCE.
const (
	SourceStatic   = "static"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CatalogSource     string
	CatalogRoomsCSV   string
	CatalogReviewsCSV string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MaxRetries    int
	ExportCSVPath string
	Debug         bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		CatalogSource:     getEnv("CATALOG_SOURCE", SourceStatic),
		CatalogRoomsCSV:   getEnv("CATALOG_ROOMS_CSV", "./data/rooms.csv"),
		CatalogReviewsCSV: getEnv("CATALOG_REVIEWS_CSV", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "hotel"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "hotel123"),
		PostgresDB:       getEnv("POSTGRES_DB", "hotel_catalog"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxRetries:    getEnvInt("MAX_RETRIES", 3),
		ExportCSVPath: getEnv("EXPORT_CSV_PATH", "./output/view.csv"),
		Debug:         getEnvBool("LOG_DEBUG", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
