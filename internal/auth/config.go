package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret" yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours" yaml:"token_ttl_hours" json:"token_ttl_hours"`
	BcryptCost    int    `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost" json:"bcrypt_cost"`
	// ServerSecret, when set, must be presented on sign up
	ServerSecret string `mapstructure:"server_secret" yaml:"server_secret" json:"server_secret"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	// Environment variables win over the file
	for key, env := range authEnvironment {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// TokenTTL returns the lifetime of issued tokens
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

var authEnvironment = map[string]string{
	"jwt_secret":      "JWT_SECRET",
	"token_ttl_hours": "TOKEN_TTL_HOURS",
	"bcrypt_cost":     "BCRYPT_COST",
	"server_secret":   "SERVER_SECRET",
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("token_ttl_hours", 24*30)
	v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("server_secret", "")
	// Development only, config.Load refuses it in production
	v.SetDefault("jwt_secret", "your-secret-key-change-in-production")
}
