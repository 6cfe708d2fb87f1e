// Loads envs from .env, applies defaults, nothing positional.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	Port            string
	Debug           bool
	CORSOrigins     []string
	DefaultPageSize int
	MaxPageSize     int
	DumpPath        string
}

// Load reads the environment (with .env overrides if present) and fills in
// defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobboard port=5432 sslmode=disable"),
		Port:            getEnv("PORT", "8080"),
		Debug:           getBool("DEBUG", false),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		DefaultPageSize: getInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getInt("MAX_PAGE_SIZE", 100),
		DumpPath:        getEnv("SCRAPED_JOBS_PATH", "scraped_jobs.json"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
