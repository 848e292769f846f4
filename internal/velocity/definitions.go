package velocity

import (
	"context"
	"encoding/json"
)

// Definition endpoints are static catalogs describing what the Velocity
// instance supports. All accept an optional locale.

// FeedTypes returns every feed type definition.
func (c *Client) FeedTypes(ctx context.Context, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/types", localeQuery(locale))
}

// FeedType returns a single feed type definition by name.
func (c *Client) FeedType(ctx context.Context, name, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/type/"+name, localeQuery(locale))
}

// ToolDefinitions returns every analytic tool definition.
func (c *Client) ToolDefinitions(ctx context.Context, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/tools", localeQuery(locale))
}

// ToolDefinition returns a single analytic tool definition by name.
func (c *Client) ToolDefinition(ctx context.Context, name, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/tools/"+name, localeQuery(locale))
}

// OutputDefinitions returns every output definition.
func (c *Client) OutputDefinitions(ctx context.Context, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/outputs", localeQuery(locale))
}

// OutputDefinition returns a single output definition by name.
func (c *Client) OutputDefinition(ctx context.Context, name, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/outputs/"+name, localeQuery(locale))
}

// SourceDefinitions returns every source definition.
func (c *Client) SourceDefinitions(ctx context.Context, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/sources", localeQuery(locale))
}

// SourceDefinition returns a single source definition by name.
func (c *Client) SourceDefinition(ctx context.Context, name, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/sources/"+name, localeQuery(locale))
}

// FormatDefinitions returns every data format definition.
func (c *Client) FormatDefinitions(ctx context.Context, locale string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/formats", localeQuery(locale))
}
