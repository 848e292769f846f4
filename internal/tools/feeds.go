package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// GetFeedsTool lists all feeds.
type GetFeedsTool struct {
	client *velocity.Client
}

func NewGetFeedsTool(client *velocity.Client) *GetFeedsTool {
	return &GetFeedsTool{client: client}
}

func (t *GetFeedsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feeds",
		mcp.WithDescription("Get all feeds in the Velocity environment"),
	)
}

func (t *GetFeedsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.Feeds(ctx))
}

// GetFeedTool fetches one feed by ID.
type GetFeedTool struct {
	client *velocity.Client
}

func NewGetFeedTool(client *velocity.Client) *GetFeedTool {
	return &GetFeedTool{client: client}
}

func (t *GetFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feed",
		mcp.WithDescription("Get details of a specific feed by ID"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed"),
		),
	)
}

func (t *GetFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.Feed(ctx, feedID))
}

// CreateFeedTool creates a feed from a full JSON definition.
type CreateFeedTool struct {
	client *velocity.Client
}

func NewCreateFeedTool(client *velocity.Client) *CreateFeedTool {
	return &CreateFeedTool{client: client}
}

func (t *CreateFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("create_feed",
		mcp.WithDescription("Create a new feed from its complete JSON definition"),
		mcp.WithObject("feed_data",
			mcp.Required(),
			mcp.Description("The complete feed configuration document"),
		),
	)
}

func (t *CreateFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := rawArg(req, "feed_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.CreateFeed(ctx, definition))
}

// UpdateFeedTool replaces an existing feed's definition.
type UpdateFeedTool struct {
	client *velocity.Client
}

func NewUpdateFeedTool(client *velocity.Client) *UpdateFeedTool {
	return &UpdateFeedTool{client: client}
}

func (t *UpdateFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("update_feed",
		mcp.WithDescription("Update an existing feed with a new JSON definition"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to update"),
		),
		mcp.WithObject("feed_data",
			mcp.Required(),
			mcp.Description("The updated feed configuration document"),
		),
	)
}

func (t *UpdateFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	definition, err := rawArg(req, "feed_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.UpdateFeed(ctx, feedID, definition))
}

// DeleteFeedTool deletes a feed.
type DeleteFeedTool struct {
	client *velocity.Client
}

func NewDeleteFeedTool(client *velocity.Client) *DeleteFeedTool {
	return &DeleteFeedTool{client: client}
}

func (t *DeleteFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_feed",
		mcp.WithDescription("Delete a feed"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to delete"),
		),
	)
}

func (t *DeleteFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.DeleteFeed(ctx, feedID))
}

// StartFeedTool starts a feed.
type StartFeedTool struct {
	client *velocity.Client
}

func NewStartFeedTool(client *velocity.Client) *StartFeedTool {
	return &StartFeedTool{client: client}
}

func (t *StartFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("start_feed",
		mcp.WithDescription("Start a feed"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to start"),
		),
	)
}

func (t *StartFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StartFeed(ctx, feedID))
}

// StopFeedTool stops a feed.
type StopFeedTool struct {
	client *velocity.Client
}

func NewStopFeedTool(client *velocity.Client) *StopFeedTool {
	return &StopFeedTool{client: client}
}

func (t *StopFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("stop_feed",
		mcp.WithDescription("Stop a feed"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to stop"),
		),
	)
}

func (t *StopFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StopFeed(ctx, feedID))
}

// GetFeedStatusTool reports a feed's runtime status.
type GetFeedStatusTool struct {
	client *velocity.Client
}

func NewGetFeedStatusTool(client *velocity.Client) *GetFeedStatusTool {
	return &GetFeedStatusTool{client: client}
}

func (t *GetFeedStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feed_status",
		mcp.WithDescription("Get the current runtime status of a feed"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed"),
		),
	)
}

func (t *GetFeedStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.FeedStatus(ctx, feedID))
}

// GetFeedMetricsTool reports a feed's current metrics.
type GetFeedMetricsTool struct {
	client *velocity.Client
}

func NewGetFeedMetricsTool(client *velocity.Client) *GetFeedMetricsTool {
	return &GetFeedMetricsTool{client: client}
}

func (t *GetFeedMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feed_metrics",
		mcp.WithDescription("Get metrics for a feed (events in/out, throughput)"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed"),
		),
		mcp.WithString("time_interval",
			mcp.Description("Optional aggregation interval, e.g. '1m', '5m', '1h'"),
		),
	)
}

func (t *GetFeedMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.FeedMetrics(ctx, feedID, req.GetString("time_interval", "")))
}

// CloneFeedTool clones a feed under a new name.
type CloneFeedTool struct {
	client *velocity.Client
}

func NewCloneFeedTool(client *velocity.Client) *CloneFeedTool {
	return &CloneFeedTool{client: client}
}

func (t *CloneFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("clone_feed",
		mcp.WithDescription("Clone an existing feed under a new name"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to clone"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the cloned feed"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description for the clone"),
		),
	)
}

func (t *CloneFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(req, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.CloneFeed(ctx, feedID, name, req.GetString("description", "")))
}

// ValidateFeedTool validates a feed definition without creating it.
type ValidateFeedTool struct {
	client *velocity.Client
}

func NewValidateFeedTool(client *velocity.Client) *ValidateFeedTool {
	return &ValidateFeedTool{client: client}
}

func (t *ValidateFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_feed",
		mcp.WithDescription("Validate a feed configuration without creating it"),
		mcp.WithObject("feed_data",
			mcp.Required(),
			mcp.Description("The feed configuration document to validate"),
		),
	)
}

func (t *ValidateFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := rawArg(req, "feed_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.ValidateFeed(ctx, definition))
}

// ScaleFeedTool adjusts a running feed's resources.
type ScaleFeedTool struct {
	client *velocity.Client
}

func NewScaleFeedTool(client *velocity.Client) *ScaleFeedTool {
	return &ScaleFeedTool{client: client}
}

func (t *ScaleFeedTool) Definition() mcp.Tool {
	return mcp.NewTool("scale_feed",
		mcp.WithDescription("Scale a running feed's CPU, memory, and instance count"),
		mcp.WithString("feed_id",
			mcp.Required(),
			mcp.Description("The ID of the feed to scale"),
		),
		mcp.WithNumber("cpu",
			mcp.Required(),
			mcp.Description("CPU allocation in vCPUs"),
		),
		mcp.WithNumber("memory",
			mcp.Required(),
			mcp.Description("Memory allocation in GB"),
		),
		mcp.WithNumber("instances",
			mcp.Required(),
			mcp.Description("Number of instances"),
		),
	)
}

func (t *ScaleFeedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedID, err := requiredString(req, "feed_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cpu := floatArg(req, "cpu", 0)
	memory := floatArg(req, "memory", 0)
	instances := intArg(req, "instances", 1)
	return result(t.client.ScaleFeed(ctx, feedID, cpu, memory, instances))
}
