package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	AuthServiceURL string   `mapstructure:"AUTH_SERVICE_URL"`
	PatientsURL    string   `mapstructure:"PATIENT_SERVICE_URL"`
	StaffURL       string   `mapstructure:"STAFF_SERVICE_URL"`
	InventoryURL   string   `mapstructure:"INVENTORY_SERVICE_URL"`
	VisitsURL      string   `mapstructure:"VISIT_SERVICE_URL"`
	RedisURL       string   `mapstructure:"REDIS_URL"`
	SessionSecret  string   `mapstructure:"SESSION_SECRET"`
	SessionTTL     int      `mapstructure:"SESSION_TTL_HOURS"`
	BackendTimeout int      `mapstructure:"BACKEND_TIMEOUT_SECONDS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("AUTH_SERVICE_URL", "http://localhost:8000/api/auth/")
	v.SetDefault("PATIENT_SERVICE_URL", "http://localhost:8002/api/")
	v.SetDefault("STAFF_SERVICE_URL", "http://localhost:8003/api/")
	v.SetDefault("INVENTORY_SERVICE_URL", "http://localhost:8001/api/")
	v.SetDefault("VISIT_SERVICE_URL", "http://localhost:8004/api/visit/")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("AUTH_SERVICE_URL")
	v.BindEnv("PATIENT_SERVICE_URL")
	v.BindEnv("STAFF_SERVICE_URL")
	v.BindEnv("INVENTORY_SERVICE_URL")
	v.BindEnv("VISIT_SERVICE_URL")
	v.BindEnv("REDIS_URL")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("SESSION_TTL_HOURS")
	v.BindEnv("BACKEND_TIMEOUT_SECONDS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SessionTTLDuration returns the configured session lifetime.
func (c *Config) SessionTTLDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Hour
}

// BackendTimeoutDuration returns the per-request timeout for outbound calls
// to the backing services.
func (c *Config) BackendTimeoutDuration() time.Duration {
	return time.Duration(c.BackendTimeout) * time.Second
}

// Validate checks that the configuration is safe to run. Outside development
// a SESSION_SECRET must be set so that session tokens are actually signed
// with a private value.
func (c *Config) Validate() error {
	if !c.IsDev() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required when ENV=%q", c.Env)
	}
	for name, u := range map[string]string{
		"AUTH_SERVICE_URL":      c.AuthServiceURL,
		"PATIENT_SERVICE_URL":   c.PatientsURL,
		"STAFF_SERVICE_URL":     c.StaffURL,
		"INVENTORY_SERVICE_URL": c.InventoryURL,
		"VISIT_SERVICE_URL":     c.VisitsURL,
	} {
		if u == "" {
			return fmt.Errorf("%s is required", name)
		}
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("%s must be an http(s) URL, got %q", name, u)
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTL)
	}
	return nil
}
