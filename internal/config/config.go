package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config is the runtime configuration of the backend
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration, the remaining auth settings are loaded by auth.LoadAuthConfig
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Uploaded resources (profile pictures, group logos)
	UploadsDir       string `mapstructure:"UPLOADS_DIR"`
	UploadsURLPrefix string `mapstructure:"UPLOADS_URL_PREFIX"`
	MaxUploadSizeMB  int64  `mapstructure:"MAX_UPLOAD_SIZE_MB"`

	// GitHub configuration for repository metadata
	GitHubToken   string `mapstructure:"GITHUB_TOKEN"`
	GitHubBaseURL string `mapstructure:"GITHUB_BASE_URL"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT": "development",
	"PORT":        "8080",
	"LOG_LEVEL":   "info",
	"LOG_FILE":    "",

	"DATABASE_URL": "",
	"DB_HOST":      "localhost",
	"DB_PORT":      "5432",
	"DB_USER":      "postgres",
	"DB_PASSWORD":  "postgres",
	"DB_NAME":      "pandoro",
	"DB_SSL_MODE":  "disable",

	"JWT_SECRET": defaultJWTSecret,

	"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:8080"},

	"UPLOADS_DIR":        "./resources",
	"UPLOADS_URL_PREFIX": "/resources",
	"MAX_UPLOAD_SIZE_MB": 5,

	"GITHUB_TOKEN":    "",
	"GITHUB_BASE_URL": "",
}

// Load reads config.yaml from the working directory or ./config, then lets the
// environment override every key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DatabaseUser, cfg.DatabasePassword, cfg.DatabaseHost,
			cfg.DatabasePort, cfg.DatabaseName, cfg.DatabaseSSLMode)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.IsProduction() && c.JWTSecret == defaultJWTSecret:
		return errors.New("JWT_SECRET must be set in production")
	case c.DatabaseName == "":
		return errors.New("DB_NAME is required")
	case c.MaxUploadSizeMB <= 0:
		return errors.New("MAX_UPLOAD_SIZE_MB must be positive")
	}
	return nil
}

// MaxUploadSize returns the upload limit in bytes
func (c *Config) MaxUploadSize() int64 {
	return c.MaxUploadSizeMB << 20
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
