package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"company-directory/internal/config"

	"github.com/spf13/viper"
)

// SessionCookie holds the signed session token
const SessionCookie = "directory_session"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret" json:"-"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" json:"session_ttl"`
	SecureCookie bool          `mapstructure:"secure_cookie" json:"secure_cookie"`
	Issuer       string        `mapstructure:"issuer" json:"issuer"`

	LoginPath  string `mapstructure:"login_path" json:"login_path"`
	VerifyPath string `mapstructure:"verify_path" json:"verify_path"`
	HomePath   string `mapstructure:"home_path" json:"home_path"`
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ttl := cfg.SessionTTL()
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   ttl,
		SecureCookie: cfg.CookieSecure,
		Issuer:       "company-directory",
		LoginPath:    "/login",
		VerifyPath:   "/verify-email",
		HomePath:     "/dashboard",
	}
}

// LoadAuthConfig starts from the application config and applies overrides
// from an optional auth.yaml. A missing file is not an error.
func LoadAuthConfig(configPath string, cfg *config.Config) (*AuthConfig, error) {
	base := NewAuthConfig(cfg)

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("jwt_secret", base.JWTSecret)
	v.SetDefault("session_ttl", base.SessionTTL)
	v.SetDefault("secure_cookie", base.SecureCookie)
	v.SetDefault("issuer", base.Issuer)
	v.SetDefault("login_path", base.LoginPath)
	v.SetDefault("verify_path", base.VerifyPath)
	v.SetDefault("home_path", base.HomePath)

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("error reading auth config file: %w", err)
	}

	var authConfig AuthConfig
	if err := v.Unmarshal(&authConfig); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &authConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	if c.LoginPath == "" || c.VerifyPath == "" || c.HomePath == "" {
		return fmt.Errorf("login, verify and home paths are required")
	}

	return nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
