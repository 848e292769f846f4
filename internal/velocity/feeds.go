package velocity

import (
	"context"
	"encoding/json"
	"net/url"
)

// Feeds returns all feeds in the Velocity environment.
func (c *Client) Feeds(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed", nil)
}

// Feed returns a single feed by ID.
func (c *Client) Feed(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/"+feedID, nil)
}

// CreateFeed creates a feed from its full JSON definition.
func (c *Client) CreateFeed(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/feed", definition)
}

// UpdateFeed replaces an existing feed's definition.
func (c *Client) UpdateFeed(ctx context.Context, feedID string, definition json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/feed/"+feedID, definition)
}

// DeleteFeed deletes a feed.
func (c *Client) DeleteFeed(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.del(ctx, "/iot/feed/"+feedID)
}

// StartFeed starts a feed.
func (c *Client) StartFeed(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/"+feedID+"/start", nil)
}

// StopFeed stops a feed.
func (c *Client) StopFeed(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/"+feedID+"/stop", nil)
}

// FeedStatus returns the runtime status of a feed.
func (c *Client) FeedStatus(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/"+feedID+"/status", nil)
}

// AllFeedStatus returns the status of every feed, optionally filtered by
// a comma-separated list of item IDs.
func (c *Client) AllFeedStatus(ctx context.Context, itemIDs string) (json.RawMessage, error) {
	var query url.Values
	if itemIDs != "" {
		query = url.Values{"itemIds": {itemIDs}}
	}
	return c.get(ctx, "/iot/feed/status", query)
}

// FeedMetrics returns current metrics for a feed.
func (c *Client) FeedMetrics(ctx context.Context, feedID, timeInterval string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/feed/metrics/"+feedID, metricsBody(timeInterval))
}

// FeedHistory returns historical metrics for a feed over a time window
// (epoch milliseconds).
func (c *Client) FeedHistory(ctx context.Context, feedID string, startTime, endTime int64, timeInterval string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/feed/metrics/"+feedID+"/history", historyBody(startTime, endTime, timeInterval))
}

// CloneFeed clones a feed under a new name.
func (c *Client) CloneFeed(ctx context.Context, feedID, name, description string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/feed/"+feedID+"/clone", cloneBody(name, description))
}

// ValidateFeed validates a feed definition without creating it.
func (c *Client) ValidateFeed(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/feed/validate", definition)
}

// ValidateFeedByID validates an existing feed.
func (c *Client) ValidateFeedByID(ctx context.Context, feedID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/feed/validate/"+feedID, nil)
}

// ScaleFeed adjusts the resources of a running feed.
func (c *Client) ScaleFeed(ctx context.Context, feedID string, cpu, memory float64, instances int) (json.RawMessage, error) {
	return c.put(ctx, "/iot/feed/"+feedID+"/scale", scaleBody(cpu, memory, instances))
}
