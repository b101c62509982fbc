package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:           "8080",
		Env:            "production",
		AuthServiceURL: "http://auth:8000/api/auth/",
		PatientsURL:    "http://patients:8000/api/",
		StaffURL:       "http://staff:8000/api/",
		InventoryURL:   "http://inventory:8000/api/",
		VisitsURL:      "http://visits:8000/api/visit/",
		RedisURL:       "redis://redis:6379/0",
		SessionSecret:  "secret",
		SessionTTL:     12,
		BackendTimeout: 10,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSecretRequiredOutsideDev(t *testing.T) {
	cfg := validConfig()
	cfg.SessionSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing SESSION_SECRET in production")
	}
	cfg.Env = "development"
	if err := cfg.Validate(); err != nil {
		t.Errorf("dev mode should not require a secret: %v", err)
	}
}

func TestValidateServiceURLs(t *testing.T) {
	cfg := validConfig()
	cfg.VisitsURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing VISIT_SERVICE_URL")
	}
	cfg = validConfig()
	cfg.StaffURL = "staff:8000"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-http URL")
	}
}

func TestValidateSessionTTL(t *testing.T) {
	cfg := validConfig()
	cfg.SessionTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero TTL")
	}
}

func TestDurations(t *testing.T) {
	cfg := validConfig()
	if cfg.SessionTTLDuration() != 12*time.Hour {
		t.Errorf("unexpected session TTL: %v", cfg.SessionTTLDuration())
	}
	if cfg.BackendTimeoutDuration() != 10*time.Second {
		t.Errorf("unexpected backend timeout: %v", cfg.BackendTimeoutDuration())
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port == "" {
		t.Error("expected default port")
	}
	if cfg.SessionTTL <= 0 {
		t.Error("expected default session TTL")
	}
}
