// Package config loads and validates the Velocity connection settings.
//
// All settings come from environment variables, supplied once at process
// startup. A missing required variable is a fatal configuration error —
// it is reported before the MCP server starts, never surfaced as an
// authentication failure at tool-call time.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvBaseURL   = "VELOCITY_BASE_URL"
	EnvUsername  = "VELOCITY_USERNAME"
	EnvPassword  = "VELOCITY_PASSWORD"
	EnvPortalURL = "VELOCITY_PORTAL_URL"
)

// Config holds the identity used to obtain credentials and the target
// Velocity instance. It is immutable for the lifetime of the process.
type Config struct {
	// BaseURL is the Velocity instance root, e.g.
	// https://us-iot.arcgis.com/usadvanced00.
	BaseURL string
	// Username and Password authenticate against the portal.
	Username string
	Password string
	// PortalURL is the token-issuing portal, e.g. https://www.arcgis.com.
	PortalURL string
}

// Error describes an invalid or incomplete configuration.
type Error struct {
	Missing []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("missing required environment variables: %s",
		strings.Join(e.Missing, ", "))
}

// Load reads the configuration from the environment and validates it.
// Trailing slashes on URLs are stripped so path joining stays predictable.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:   strings.TrimRight(os.Getenv(EnvBaseURL), "/"),
		Username:  os.Getenv(EnvUsername),
		Password:  os.Getenv(EnvPassword),
		PortalURL: strings.TrimRight(os.Getenv(EnvPortalURL), "/"),
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, EnvBaseURL)
	}
	if cfg.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if cfg.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if cfg.PortalURL == "" {
		missing = append(missing, EnvPortalURL)
	}
	if len(missing) > 0 {
		return nil, &Error{Missing: missing}
	}

	return cfg, nil
}
