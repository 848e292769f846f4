package config

import (
	"errors"
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBaseURL, "https://velocity.example.com")
	t.Setenv(EnvUsername, "analyst")
	t.Setenv(EnvPassword, "s3cret")
	t.Setenv(EnvPortalURL, "https://portal.example.com")
}

func TestLoad_AllFieldsPresent(t *testing.T) {
	setFullEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://velocity.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Username != "analyst" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if cfg.Password != "s3cret" {
		t.Errorf("Password = %q", cfg.Password)
	}
	if cfg.PortalURL != "https://portal.example.com" {
		t.Errorf("PortalURL = %q", cfg.PortalURL)
	}
}

func TestLoad_StripsTrailingSlashes(t *testing.T) {
	setFullEnv(t)
	t.Setenv(EnvBaseURL, "https://velocity.example.com/")
	t.Setenv(EnvPortalURL, "https://portal.example.com//")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if strings.HasSuffix(cfg.BaseURL, "/") {
		t.Errorf("BaseURL not trimmed: %q", cfg.BaseURL)
	}
	if strings.HasSuffix(cfg.PortalURL, "/") {
		t.Errorf("PortalURL not trimmed: %q", cfg.PortalURL)
	}
}

func TestLoad_MissingFields(t *testing.T) {
	setFullEnv(t)
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error")
	}

	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want *config.Error", err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Errorf("Missing = %v, want 2 entries", cfgErr.Missing)
	}
	if !strings.Contains(err.Error(), EnvUsername) {
		t.Errorf("error %q should name %s", err, EnvUsername)
	}
	if !strings.Contains(err.Error(), EnvPassword) {
		t.Errorf("error %q should name %s", err, EnvPassword)
	}
}

func TestLoad_AllMissing(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")
	t.Setenv(EnvPortalURL, "")

	_, err := Load()
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want *config.Error", err)
	}
	if len(cfgErr.Missing) != 4 {
		t.Errorf("Missing = %v, want all 4", cfgErr.Missing)
	}
}
