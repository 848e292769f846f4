package velocity

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// ─── Real-time analytics ─────────────────────────────────────────────────────

// RealtimeAnalytics returns all real-time analytics.
func (c *Client) RealtimeAnalytics(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime", nil)
}

// RealtimeAnalytic returns a single real-time analytic by ID.
func (c *Client) RealtimeAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/"+analyticID, nil)
}

// CreateRealtimeAnalytic creates a real-time analytic from its JSON definition.
func (c *Client) CreateRealtimeAnalytic(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/realtime", definition)
}

// UpdateRealtimeAnalytic replaces an existing real-time analytic's definition.
func (c *Client) UpdateRealtimeAnalytic(ctx context.Context, analyticID string, definition json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/analytics/realtime/"+analyticID, definition)
}

// DeleteRealtimeAnalytic deletes a real-time analytic.
func (c *Client) DeleteRealtimeAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.del(ctx, "/iot/analytics/realtime/"+analyticID)
}

// StartRealtimeAnalytic starts a real-time analytic.
func (c *Client) StartRealtimeAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/"+analyticID+"/start", nil)
}

// StopRealtimeAnalytic stops a real-time analytic.
func (c *Client) StopRealtimeAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/"+analyticID+"/stop", nil)
}

// RealtimeAnalyticStatus returns the runtime status of a real-time analytic.
func (c *Client) RealtimeAnalyticStatus(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/"+analyticID+"/status", nil)
}

// AllRealtimeAnalyticsStatus returns the status of every real-time analytic.
func (c *Client) AllRealtimeAnalyticsStatus(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/status", nil)
}

// RealtimeAnalyticMetrics returns current metrics for a real-time analytic.
func (c *Client) RealtimeAnalyticMetrics(ctx context.Context, analyticID, timeInterval string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/realtime/metrics/"+analyticID, metricsBody(timeInterval))
}

// CloneRealtimeAnalytic clones a real-time analytic under a new name.
func (c *Client) CloneRealtimeAnalytic(ctx context.Context, analyticID, name, description string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/realtime/"+analyticID+"/clone", cloneBody(name, description))
}

// ScaleRealtimeAnalytic adjusts the resources of a running real-time analytic.
func (c *Client) ScaleRealtimeAnalytic(ctx context.Context, analyticID string, cpu, memory float64, instances int) (json.RawMessage, error) {
	return c.put(ctx, "/iot/analytics/realtime/"+analyticID+"/scale", scaleBody(cpu, memory, instances))
}

// ValidateRealtimeAnalytic validates a real-time analytic definition.
func (c *Client) ValidateRealtimeAnalytic(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/realtime/validate", definition)
}

// ValidateRealtimeAnalyticByID validates an existing real-time analytic.
func (c *Client) ValidateRealtimeAnalyticByID(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/realtime/validate/"+analyticID, nil)
}

// ─── Big data analytics ──────────────────────────────────────────────────────

// BigDataAnalytics returns all big data analytics.
func (c *Client) BigDataAnalytics(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata", nil)
}

// BigDataAnalytic returns a single big data analytic by ID.
func (c *Client) BigDataAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata/"+analyticID, nil)
}

// CreateBigDataAnalytic creates a big data analytic from its JSON definition.
func (c *Client) CreateBigDataAnalytic(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/bigdata", definition)
}

// UpdateBigDataAnalytic replaces an existing big data analytic's definition.
func (c *Client) UpdateBigDataAnalytic(ctx context.Context, analyticID string, definition json.RawMessage) (json.RawMessage, error) {
	return c.put(ctx, "/iot/analytics/bigdata/"+analyticID, definition)
}

// DeleteBigDataAnalytic deletes a big data analytic.
func (c *Client) DeleteBigDataAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.del(ctx, "/iot/analytics/bigdata/"+analyticID)
}

// StartBigDataAnalytic starts a big data analytic.
func (c *Client) StartBigDataAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/start", nil)
}

// StopBigDataAnalytic stops a big data analytic.
func (c *Client) StopBigDataAnalytic(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/stop", nil)
}

// BigDataAnalyticStatus returns the status of a big data analytic. When
// watch is true the service reports live run progress.
func (c *Client) BigDataAnalyticStatus(ctx context.Context, analyticID string, watch bool) (json.RawMessage, error) {
	var query url.Values
	if watch {
		query = url.Values{"watch": {strconv.FormatBool(watch)}}
	}
	return c.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/status", query)
}

// AllBigDataAnalyticsStatus returns the status of every big data analytic.
func (c *Client) AllBigDataAnalyticsStatus(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata/status", nil)
}

// CloneBigDataAnalytic clones a big data analytic under a new name.
func (c *Client) CloneBigDataAnalytic(ctx context.Context, analyticID, name, description string) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/bigdata/"+analyticID+"/clone", cloneBody(name, description))
}

// ScaleBigDataAnalytic adjusts the resources of a running big data analytic.
func (c *Client) ScaleBigDataAnalytic(ctx context.Context, analyticID string, cpu, memory float64, instances int) (json.RawMessage, error) {
	return c.put(ctx, "/iot/analytics/bigdata/"+analyticID+"/scale", scaleBody(cpu, memory, instances))
}

// ValidateBigDataAnalytic validates a big data analytic definition.
func (c *Client) ValidateBigDataAnalytic(ctx context.Context, definition json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/iot/analytics/bigdata/validate", definition)
}

// ValidateBigDataAnalyticByID validates an existing big data analytic.
func (c *Client) ValidateBigDataAnalyticByID(ctx context.Context, analyticID string) (json.RawMessage, error) {
	return c.get(ctx, "/iot/analytics/bigdata/validate/"+analyticID, nil)
}
