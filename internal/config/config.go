package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hadirly/attendance-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App      AppConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Database DatabaseConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AdminConfig holds the shared administrator passphrase. The plaintext is
// hashed at load time and only the hash is kept around.
type AdminConfig struct {
	PassphraseHash string
}

// StorageConfig selects the session store backend. When FallbackDir is set
// for the postgres backend, a local JSON copy is layered underneath as the
// last-known-good fallback.
type StorageConfig struct {
	Type        string // "postgres", "jsonfile" or "memory"
	DataDir     string
	FallbackDir string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	passphrase := getEnv("ADMIN_PASSPHRASE", "")
	if passphrase != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash ADMIN_PASSPHRASE: %w", err)
		}
		config.Admin = AdminConfig{PassphraseHash: string(hash)}
	}

	config.Storage = StorageConfig{
		Type:        getEnv("STORAGE_TYPE", "jsonfile"),
		DataDir:     getEnv("DATA_DIR", "data"),
		FallbackDir: getEnv("FALLBACK_DATA_DIR", ""),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Admin.PassphraseHash == "" {
		return fmt.Errorf("ADMIN_PASSPHRASE is required")
	}
	if !validator.IsInSlice(c.Storage.Type, []string{"postgres", "jsonfile", "memory"}) {
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}
	if c.Storage.Type == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
	}
	if c.Storage.Type == "jsonfile" && c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required for the jsonfile backend")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
