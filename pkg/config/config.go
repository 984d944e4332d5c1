package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the yield API server configuration
type APIServerConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	APY      APYConfig      `yaml:"apy"`
	Pendle   PendleConfig   `yaml:"pendle"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `yaml:"host" default:"localhost" validate:"required"`
	Port            int           `yaml:"port" default:"5432" validate:"gt=0,lte=65535"`
	User            string        `yaml:"user" validate:"required"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database" default:"harmonix" validate:"required"`
	SSLMode         string        `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns" default:"20" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" default:"30m"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// APYConfig holds the settings used by yield calculations.
// Period is the APY lookback window in days.
type APYConfig struct {
	Period int `yaml:"period" default:"15" validate:"gte=1"`
}

// PendleConfig contains settings for the Pendle market sync
type PendleConfig struct {
	Enabled        bool          `yaml:"enabled"`
	BaseURL        string        `yaml:"base_url" default:"https://api-v2.pendle.finance" validate:"url"`
	ChainIDs       []int64       `yaml:"chain_ids" validate:"required_if=Enabled true,dive,gt=0"`
	Interval       time.Duration `yaml:"interval" default:"10m"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"15s"`
	PageSize       int           `yaml:"page_size" default:"100" validate:"gt=0,lte=100"`
}

// IngestConfig controls the authenticated write endpoints used by the indexing jobs
type IngestConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwt_secret" validate:"required_if=Enabled true"`
	JWTIssuer string `yaml:"jwt_issuer"`
}

// MetricsConfig contains prometheus exporter settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
}

// LoadAPIServer loads API server configuration from file.
// ${VAR} references in the file are expanded from the environment.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(raw)
}

// ParseAPIServer builds the configuration from raw YAML bytes.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	cfg := new(APIServerConfig)
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
