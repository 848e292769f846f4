package velocity

import (
	"context"
	"encoding/json"
)

// AllServices returns every feature, map, and stream service.
func (c *Client) AllServices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services", nil)
}

// FeatureServices returns all feature services.
func (c *Client) FeatureServices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services/feature", nil)
}

// FeatureService returns a single feature service by ID.
func (c *Client) FeatureService(ctx context.Context, serviceID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services/feature/"+serviceID, nil)
}

// CreateFeatureService creates a feature service from its JSON definition.
func (c *Client) CreateFeatureService(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/services/feature", definition)
}

// UpdateFeatureService replaces a feature service's definition.
func (c *Client) UpdateFeatureService(ctx context.Context, serviceID string, definition json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/services/feature/"+serviceID, definition)
}

// DeleteFeatureService deletes a feature service.
func (c *Client) DeleteFeatureService(ctx context.Context, serviceID string) (json.RawMessage, error) {
	return c.del(ctx, "/iot/services/feature/"+serviceID)
}

// StreamServices returns all stream services.
func (c *Client) StreamServices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services/stream", nil)
}

// StreamService returns a single stream service by ID.
func (c *Client) StreamService(ctx context.Context, serviceID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services/stream/"+serviceID, nil)
}

// UpdateStreamService replaces a stream service's definition.
func (c *Client) UpdateStreamService(ctx context.Context, serviceID string, definition json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/services/stream/"+serviceID, definition)
}

// DeleteStreamService deletes a stream service.
func (c *Client) DeleteStreamService(ctx context.Context, serviceID string) (json.RawMessage, error) {
	return c.del(ctx, "/iot/services/stream/"+serviceID)
}

// ServiceDependencies returns the items that depend on a portal item.
func (c *Client) ServiceDependencies(ctx context.Context, portalItemID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/services/dependencies/"+portalItemID, nil)
}
