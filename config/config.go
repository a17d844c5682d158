package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port          string
	GinMode       string
	DBDriver      string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	SQLitePath    string
	SeedOnStart   bool
	SweepInterval time.Duration
}

// Load reads configuration from the environment with sane defaults.
// godotenv has already populated the env in main.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBName:        getEnv("DB_NAME", "restaurant_qr"),
		SQLitePath:    getEnv("SQLITE_PATH", "restaurant_qr.db"),
		SeedOnStart:   getEnv("SEED_ON_START", "false") == "true",
		SweepInterval: 10 * time.Minute,
	}
	if raw := os.Getenv("SESSION_SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.SweepInterval = d
		}
	}
	return cfg
}

// InitDB opens the configured database. sqlite is meant for local
// development; production runs MySQL.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
