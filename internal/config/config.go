package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"shelfrent-backend/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	ErrorLog  ErrorLogConfig  `yaml:"error_log"`
	Fallback  FallbackConfig  `yaml:"fallback"`
	Email     EmailConfig     `yaml:"email"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Driver              string `yaml:"driver"` // "postgres" (lib/pq) or "pgx"
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	User                string `yaml:"user"`
	Password            string `yaml:"password"`
	Database            string `yaml:"database"`
	SSLMode             string `yaml:"ssl_mode"`
	QueryTimeoutSeconds int    `yaml:"query_timeout_seconds"`
	BootstrapSchema     bool   `yaml:"bootstrap_schema"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// ErrorLogConfig points at the append-only failure log
type ErrorLogConfig struct {
	Path string `yaml:"path"`
}

// FallbackConfig describes the placeholder data served while the store is offline.
// Empty lists keep the built-in dataset.
type FallbackConfig struct {
	Enabled   *bool             `yaml:"enabled"`
	Customers []domain.Customer `yaml:"customers"`
	Shelves   []FallbackShelf   `yaml:"shelves"`
}

// FallbackShelf is the YAML shape of a placeholder shelf
type FallbackShelf struct {
	ID              int  `yaml:"id"`
	Number          int  `yaml:"number"`
	HasClothingRack bool `yaml:"has_clothing_rack"`
	IsRented        bool `yaml:"is_rented"`
	CustomerID      *int `yaml:"customer_id"`
}

// EmailConfig contains SendGrid settings; an empty API key disables sending
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	MonthlyStatements string `yaml:"monthly_statements"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Pick up a local .env if one exists
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a configuration from raw YAML, applying environment overrides and defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() error {
	// Database
	if val := os.Getenv("DB_DRIVER"); val != "" {
		c.Database.Driver = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("DB_PORT: %w", err)
		}
		c.Database.Port = port
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("SERVER_PORT: %w", err)
		}
		c.Server.Port = port
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("ERROR_LOG_PATH"); val != "" {
		c.ErrorLog.Path = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.QueryTimeoutSeconds <= 0 {
		c.Database.QueryTimeoutSeconds = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.ErrorLog.Path == "" {
		c.ErrorLog.Path = "errorlog.txt"
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Shelf Rental"
	}
	if c.Scheduler.MonthlyStatements == "" {
		c.Scheduler.MonthlyStatements = "0 0 6 1 * *" // 1st of month at 6 AM UTC
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Email.SendGridAPIKey != "" && c.Email.FromEmail == "" {
		return fmt.Errorf("email from address is required when SendGrid is enabled")
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection URL with credentials escaped
func (c *Config) GetDatabaseConnectionString() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Database,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// QueryTimeout returns the per-operation store timeout
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.Database.QueryTimeoutSeconds) * time.Second
}

// FallbackEnabled reports whether reads substitute placeholder data on failure
func (c *Config) FallbackEnabled() bool {
	return c.Fallback.Enabled == nil || *c.Fallback.Enabled
}

// FallbackData returns the configured placeholder dataset, or the built-in one
func (c *Config) FallbackData() domain.Fallback {
	fb := domain.DefaultFallback()
	if len(c.Fallback.Customers) > 0 {
		fb.Customers = c.Fallback.Customers
	}
	if len(c.Fallback.Shelves) > 0 {
		shelves := make([]domain.Shelf, 0, len(c.Fallback.Shelves))
		for _, s := range c.Fallback.Shelves {
			shelves = append(shelves, domain.Shelf{
				ID:              s.ID,
				Number:          s.Number,
				HasClothingRack: s.HasClothingRack,
				IsRented:        s.IsRented,
				CustomerID:      s.CustomerID,
			})
		}
		fb.Shelves = shelves
	}
	return fb
}
