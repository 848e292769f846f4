// Package resources implements MCP resource handlers.
//
// Resources provide read-only data the host can consume for context.
// They use URI-based addressing (velocity://...) following MCP
// conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/auth"
	"github.com/gisops/velocity-mcp/internal/config"
)

// Handler manages Velocity resource endpoints.
type Handler struct {
	cfg   *config.Config
	creds *auth.Manager
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(cfg *config.Config, creds *auth.Manager) *Handler {
	return &Handler{cfg: cfg, creds: creds}
}

// connectionStatus is what HandleConnection renders. The token value is
// deliberately absent; only its lifecycle state is reported.
type connectionStatus struct {
	BaseURL          string `json:"base_url"`
	PortalURL        string `json:"portal_url"`
	Username         string `json:"username"`
	CredentialCached bool   `json:"credential_cached"`
	CredentialExpiry string `json:"credential_expires_at,omitempty"`
}

// ConnectionResource returns the MCP resource definition for the
// connection status.
func (h *Handler) ConnectionResource() mcp.Resource {
	return mcp.NewResource(
		"velocity://connection/status",
		"Velocity Connection Status",
		mcp.WithResourceDescription("Configured Velocity endpoints and current credential state"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleConnection returns the connection status as JSON.
func (h *Handler) HandleConnection(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := connectionStatus{
		BaseURL:   h.cfg.BaseURL,
		PortalURL: h.cfg.PortalURL,
		Username:  h.cfg.Username,
	}
	if expiresAt, ok := h.creds.Cached(); ok {
		status.CredentialCached = true
		status.CredentialExpiry = expiresAt.UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
