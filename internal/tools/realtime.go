package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// GetRealtimeAnalyticsTool lists all real-time analytics.
type GetRealtimeAnalyticsTool struct {
	client *velocity.Client
}

func NewGetRealtimeAnalyticsTool(client *velocity.Client) *GetRealtimeAnalyticsTool {
	return &GetRealtimeAnalyticsTool{client: client}
}

func (t *GetRealtimeAnalyticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_realtime_analytics",
		mcp.WithDescription("Get all real-time analytics in the Velocity environment"),
	)
}

func (t *GetRealtimeAnalyticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.RealtimeAnalytics(ctx))
}

// GetRealtimeAnalyticTool fetches one real-time analytic by ID.
type GetRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewGetRealtimeAnalyticTool(client *velocity.Client) *GetRealtimeAnalyticTool {
	return &GetRealtimeAnalyticTool{client: client}
}

func (t *GetRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("get_realtime_analytic",
		mcp.WithDescription("Get details of a specific real-time analytic by ID"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic"),
		),
	)
}

func (t *GetRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.RealtimeAnalytic(ctx, analyticID))
}

// CreateRealtimeAnalyticTool creates a real-time analytic.
type CreateRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewCreateRealtimeAnalyticTool(client *velocity.Client) *CreateRealtimeAnalyticTool {
	return &CreateRealtimeAnalyticTool{client: client}
}

func (t *CreateRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("create_realtime_analytic",
		mcp.WithDescription("Create a new real-time analytic from its complete JSON definition"),
		mcp.WithObject("analytic_data",
			mcp.Required(),
			mcp.Description("The complete real-time analytic configuration document"),
		),
	)
}

func (t *CreateRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := rawArg(req, "analytic_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.CreateRealtimeAnalytic(ctx, definition))
}

// UpdateRealtimeAnalyticTool replaces a real-time analytic's definition.
type UpdateRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewUpdateRealtimeAnalyticTool(client *velocity.Client) *UpdateRealtimeAnalyticTool {
	return &UpdateRealtimeAnalyticTool{client: client}
}

func (t *UpdateRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("update_realtime_analytic",
		mcp.WithDescription("Update an existing real-time analytic with a new JSON definition"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic to update"),
		),
		mcp.WithObject("analytic_data",
			mcp.Required(),
			mcp.Description("The updated analytic configuration document"),
		),
	)
}

func (t *UpdateRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	definition, err := rawArg(req, "analytic_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.UpdateRealtimeAnalytic(ctx, analyticID, definition))
}

// DeleteRealtimeAnalyticTool deletes a real-time analytic.
type DeleteRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewDeleteRealtimeAnalyticTool(client *velocity.Client) *DeleteRealtimeAnalyticTool {
	return &DeleteRealtimeAnalyticTool{client: client}
}

func (t *DeleteRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_realtime_analytic",
		mcp.WithDescription("Delete a real-time analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic to delete"),
		),
	)
}

func (t *DeleteRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.DeleteRealtimeAnalytic(ctx, analyticID))
}

// StartRealtimeAnalyticTool starts a real-time analytic.
type StartRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewStartRealtimeAnalyticTool(client *velocity.Client) *StartRealtimeAnalyticTool {
	return &StartRealtimeAnalyticTool{client: client}
}

func (t *StartRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("start_realtime_analytic",
		mcp.WithDescription("Start a real-time analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic to start"),
		),
	)
}

func (t *StartRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StartRealtimeAnalytic(ctx, analyticID))
}

// StopRealtimeAnalyticTool stops a real-time analytic.
type StopRealtimeAnalyticTool struct {
	client *velocity.Client
}

func NewStopRealtimeAnalyticTool(client *velocity.Client) *StopRealtimeAnalyticTool {
	return &StopRealtimeAnalyticTool{client: client}
}

func (t *StopRealtimeAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("stop_realtime_analytic",
		mcp.WithDescription("Stop a real-time analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic to stop"),
		),
	)
}

func (t *StopRealtimeAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StopRealtimeAnalytic(ctx, analyticID))
}

// GetRealtimeAnalyticStatusTool reports a real-time analytic's status.
type GetRealtimeAnalyticStatusTool struct {
	client *velocity.Client
}

func NewGetRealtimeAnalyticStatusTool(client *velocity.Client) *GetRealtimeAnalyticStatusTool {
	return &GetRealtimeAnalyticStatusTool{client: client}
}

func (t *GetRealtimeAnalyticStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_realtime_analytic_status",
		mcp.WithDescription("Get the current runtime status of a real-time analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic"),
		),
	)
}

func (t *GetRealtimeAnalyticStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.RealtimeAnalyticStatus(ctx, analyticID))
}

// GetRealtimeAnalyticMetricsTool reports a real-time analytic's metrics.
type GetRealtimeAnalyticMetricsTool struct {
	client *velocity.Client
}

func NewGetRealtimeAnalyticMetricsTool(client *velocity.Client) *GetRealtimeAnalyticMetricsTool {
	return &GetRealtimeAnalyticMetricsTool{client: client}
}

func (t *GetRealtimeAnalyticMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_realtime_analytic_metrics",
		mcp.WithDescription("Get metrics for a real-time analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the real-time analytic"),
		),
		mcp.WithString("time_interval",
			mcp.Description("Optional aggregation interval, e.g. '1m', '5m', '1h'"),
		),
	)
}

func (t *GetRealtimeAnalyticMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.RealtimeAnalyticMetrics(ctx, analyticID, req.GetString("time_interval", "")))
}
