// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability, upload).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix PORTFOLIO_. Keys are lowercased,
	the prefix is removed, and "." is the nesting delimiter:

	  PORTFOLIO_SERVER.PORT   -> server.port   -> Config.Server.Port
	  PORTFOLIO_DATABASE.HOST -> database.host -> Config.Database.Host

	Values of list-typed keys are comma separated:

	  PORTFOLIO_SERVER.CORS_ALLOWED_ORIGINS=http://localhost:5173,https://example.dev
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "PORTFOLIO_"

// listKeys are the koanf keys whose env value is split on commas.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Upload        UploadConfig         `koanf:"upload" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	RequestTimeout     int      `koanf:"request_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// HireRequestsPerMinute caps public hire-me submissions per client IP.
	HireRequestsPerMinute int `koanf:"hire_requests_per_minute" validate:"min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// MaxOpenConns is the hard ceiling of the shared pool. Requests beyond it
// queue inside pgxpool until a connection frees up or the request deadline
// (server.request_timeout) expires.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port". An empty address disables background notifications.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores authentication-related secrets.
//
// SecretKey is the Clerk secret. When empty, admin routes are not guarded.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds third-party service credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	NotifyEmail  string `koanf:"notify_email" validate:"omitempty,email"`
	FromEmail    string `koanf:"from_email" validate:"omitempty,email"`
}

// UploadConfig controls where uploaded images land and how they are served.
type UploadConfig struct {
	Dir             string `koanf:"dir" validate:"required"`
	PublicPrefix    string `koanf:"public_prefix" validate:"required"`
	MaxFileSize     int64  `koanf:"max_file_size" validate:"required,min=1"`
	MaxFiles        int    `koanf:"max_files" validate:"required,min=1"`
	ImageProcessing bool   `koanf:"image_processing"`
}

// Default returns a Config populated with every optional default.
// LoadConfig unmarshals the environment on top of it.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:                  "3000",
			ReadTimeout:           30,
			WriteTimeout:          30,
			IdleTimeout:           60,
			RequestTimeout:        15,
			CORSAllowedOrigins:    []string{"*"},
			HireRequestsPerMinute: 5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "portfolio",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 3600,
			ConnMaxIdleTime: 300,
		},
		Upload: UploadConfig{
			Dir:             "public/uploads/portfolio",
			PublicPrefix:    "/uploads/portfolio",
			MaxFileSize:     5 * 1024 * 1024,
			MaxFiles:        10,
			ImageProcessing: true,
		},
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// on top of Default(), validates it and applies observability defaults.
//
// Unlike a log-and-exit loader, every failure is returned so the caller
// (the CLI) decides how to report it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags, injects default observability settings when
// absent and runs the observability rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// IsLocal reports whether the process runs in the "local" environment,
// where SQL statements are traced to the console.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
