// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Authentication modes
const (
	AuthModeLocal = "local" // all requests act as the single local user
	AuthModeJWT   = "jwt"   // requests carry a signed token naming the user
)

var (
	ErrAPIURL       = errors.New("the environment variable API_URL must be a valid URL")
	ErrAuthMode     = errors.New("AUTH_MODE must be either 'local' or 'jwt'")
	ErrJWTSecretSet = errors.New("JWT_SECRET must be set when AUTH_MODE is 'jwt'")
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Postgres reports whether PostgreSQL is configured.
func (d Database) Postgres() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	parts := []string{fmt.Sprintf("host=%s", d.Host)}
	for _, kv := range [][2]string{{"port", d.Port}, {"user", d.User}, {"password", d.Password}, {"dbname", d.Name}} {
		if kv[1] != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", kv[0], kv[1]))
		}
	}

	return strings.Join(parts, " ")
}

type Auth struct {
	Mode   string
	Secret string
	TTL    time.Duration
}

type Config struct {
	APIURL            *url.URL
	ListenAddress     string
	GinMode           string
	LogFormat         string
	DataDir           string
	Database          Database
	CORSAllowOrigins  []string
	EnablePprof       bool
	DefaultCategories bool
	Auth              Auth
	Location          *time.Location
	ExportLocale      language.Tag
}

// StoreOptions returns the store options for the configuration.
func (c Config) StoreOptions() []store.Option {
	if !c.DefaultCategories {
		return nil
	}

	return []store.Option{store.WithDefaultCategories(models.DefaultCategories())}
}

// SQLitePath returns the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// Load reads the configuration from environment variables. Variables
// defined in a .env file in the working directory are loaded first,
// without overriding variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("LISTEN_ADDRESS", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("DEFAULT_CATEGORIES", true)
	v.SetDefault("AUTH_MODE", AuthModeLocal)
	v.SetDefault("JWT_TTL", 720*time.Hour)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("EXPORT_LOCALE", "pt-BR")

	apiURL, err := url.Parse(strings.TrimSuffix(v.GetString("API_URL"), "/"))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return nil, ErrAPIURL
	}

	c := &Config{
		APIURL:        apiURL,
		ListenAddress: v.GetString("LISTEN_ADDRESS"),
		GinMode:       v.GetString("GIN_MODE"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		DataDir:       v.GetString("DATA_DIR"),
		Database: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		CORSAllowOrigins:  strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:       v.GetBool("ENABLE_PPROF"),
		DefaultCategories: v.GetBool("DEFAULT_CATEGORIES"),
		Auth: Auth{
			Mode:   v.GetString("AUTH_MODE"),
			Secret: v.GetString("JWT_SECRET"),
			TTL:    v.GetDuration("JWT_TTL"),
		},
	}

	// Log format defaults to human readable for development
	// and JSON for release
	if c.LogFormat == "" {
		c.LogFormat = "json"
		if c.GinMode == "debug" {
			c.LogFormat = "human"
		}
	}

	switch c.Auth.Mode {
	case AuthModeLocal:
	case AuthModeJWT:
		if c.Auth.Secret == "" {
			return nil, ErrJWTSecretSet
		}
	default:
		return nil, ErrAuthMode
	}

	c.Location, err = time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	c.ExportLocale, err = language.Parse(v.GetString("EXPORT_LOCALE"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_LOCALE: %w", err)
	}

	return c, nil
}
