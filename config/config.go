package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	MinIO    MinIOConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Cookie CookieConfig
}

// HTTPServerConfig is the configuration for the HTTP API server
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"ledgerly"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// MinIOConfig is the configuration for the receipt object store
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"ledgerly-receipts"`
}

// JWTConfig is the configuration for the session tokens
type JWTConfig struct {
	SecretKey  string        `env:"JWT_SECRET_KEY"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"1h"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
}

// CookieConfig is the configuration for HttpOnly cookie sessions
type CookieConfig struct {
	Domain string `env:"COOKIE_DOMAIN"`
	Path   string `env:"COOKIE_PATH" envDefault:"/api"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"true"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt secret key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt secret key must be at least 32 characters")
	}

	if cfg.JWT.AccessTTL <= 0 || cfg.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	if cfg.JWT.RefreshTTL <= cfg.JWT.AccessTTL {
		return fmt.Errorf("refresh token lifetime must exceed the access token lifetime")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}

	return nil
}
