package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"burger/internal/adapters/out/orderapi"
	"burger/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort    = "8080"
	defaultDBPort      = "5432"
	defaultDBSslMode   = "disable"
	defaultCatalogFile = "configs/catalog.yaml"
	defaultLogLevel    = "info"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	OrderAPIURL        string
	OrderAPITimeout    time.Duration
	CatalogRefreshSpec string
	CatalogFile        string
	LogLevel           string
}

// LoadConfig reads the configuration from the environment after loading the
// given dotenv files. Missing dotenv files are ignored; variables already set
// in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	timeout := orderapi.DefaultTimeout
	if raw := env("ORDER_API_TIMEOUT", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("ORDER_API_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	config := Config{
		HTTPPort:           env("HTTP_PORT", defaultHTTPPort),
		DBHost:             env("DB_HOST", ""),
		DBPort:             env("DB_PORT", defaultDBPort),
		DBUser:             env("DB_USER", ""),
		DBPassword:         env("DB_PASSWORD", ""),
		DBName:             env("DB_NAME", ""),
		DBSslMode:          env("DB_SSLMODE", defaultDBSslMode),
		OrderAPIURL:        env("ORDER_API_URL", ""),
		OrderAPITimeout:    timeout,
		CatalogRefreshSpec: env("CATALOG_REFRESH_SPEC", jobs.DefaultCatalogRefreshSpec),
		CatalogFile:        env("CATALOG_FILE", defaultCatalogFile),
		LogLevel:           env("LOG_LEVEL", defaultLogLevel),
	}

	return config, nil
}

// ValidateForServe reports the settings the server cannot start without.
func (c Config) ValidateForServe() error {
	var missing []string
	if c.OrderAPIURL == "" {
		missing = append(missing, "ORDER_API_URL")
	}
	if c.OrderAPITimeout <= 0 {
		missing = append(missing, "ORDER_API_TIMEOUT")
	}
	if err := c.ValidateDatabase(); err != nil {
		return errors.Join(err, missingSettings(missing))
	}
	return missingSettings(missing)
}

// ValidateDatabase reports missing database settings.
func (c Config) ValidateDatabase() error {
	var missing []string
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	return missingSettings(missing)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func missingSettings(names []string) error {
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("missing configuration: %s", strings.Join(names, ", "))
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
