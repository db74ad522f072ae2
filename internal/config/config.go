package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable with STORE.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	Seed     SeedConfig
	Store    string
	LogLevel string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	APIPrefix    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SeedConfig struct {
	LockTTL time.Duration
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Enabled reports whether a Redis server was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

// Addr is the Redis host:port.
func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

// LoadConfig loads configuration from environment variables and an optional .env file.
// MONGO_URL and DB_NAME are required unless STORE=memory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8001")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("MONGO_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SEED_LOCK_TTL", 30)
	v.SetDefault("STORE", StoreMongo)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			APIPrefix:    "/" + strings.Trim(v.GetString("API_PREFIX"), "/"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGO_URL"),
			Database: v.GetString("DB_NAME"),
			Timeout:  time.Duration(v.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Seed: SeedConfig{
			LockTTL: time.Duration(v.GetInt("SEED_LOCK_TTL")) * time.Second,
		},
		Store:    strings.ToLower(strings.TrimSpace(v.GetString("STORE"))),
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.Store {
	case StoreMongo:
		if c.MongoDB.URI == "" {
			errs = append(errs, errors.New("environment variable MONGO_URL is required"))
		}
		if c.MongoDB.Database == "" {
			errs = append(errs, errors.New("environment variable DB_NAME is required"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE %q (want %s or %s)", c.Store, StoreMongo, StoreMemory))
	}
	if c.MongoDB.Timeout <= 0 {
		errs = append(errs, errors.New("MONGO_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
