package velocity

import (
	"context"
	"encoding/json"
)

// ─── Logs ────────────────────────────────────────────────────────────────────

// QueryLogs queries system logs. query is the Velocity log query document.
func (c *Client) QueryLogs(ctx context.Context, query json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/logs", query)
}

// QueryItemLogs queries logs for a single item (feed, analytic, service).
func (c *Client) QueryItemLogs(ctx context.Context, itemID string, query json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/logs/"+itemID, query)
}

// ─── Configuration ───────────────────────────────────────────────────────────

// ExportConfiguration exports a snapshot of all item configurations.
func (c *Client) ExportConfiguration(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/configuration/export", nil)
}

// ImportConfiguration imports a configuration snapshot.
func (c *Client) ImportConfiguration(ctx context.Context, snapshot json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/configuration/import", snapshot)
}

// ResetConfiguration deletes all item configurations on the site.
func (c *Client) ResetConfiguration(ctx context.Context) (json.RawMessage, error) {
	return c.del(ctx, "/iot/configuration/reset")
}

// ─── Tenant ──────────────────────────────────────────────────────────────────

// TenantSettings returns the tenant settings.
func (c *Client) TenantSettings(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/tenant/settings", nil)
}

// UpdateTenantSettings replaces the tenant settings.
func (c *Client) UpdateTenantSettings(ctx context.Context, settings json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/tenant/settings", settings)
}

// TenantMetricsSummary returns the current tenant resource usage summary.
func (c *Client) TenantMetricsSummary(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/tenant/metrics/status", nil)
}

// TenantMetricsHistory returns tenant resource usage over a time window
// (epoch milliseconds).
func (c *Client) TenantMetricsHistory(ctx context.Context, startTime, endTime int64, timeInterval string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/tenant/metrics/history", historyBody(startTime, endTime, timeInterval))
}

// ─── System ──────────────────────────────────────────────────────────────────

// Version returns the Velocity API version.
func (c *Client) Version(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/api/version", nil)
}
