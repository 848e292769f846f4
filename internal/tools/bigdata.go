package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// GetBigDataAnalyticsTool lists all big data analytics.
type GetBigDataAnalyticsTool struct {
	client *velocity.Client
}

func NewGetBigDataAnalyticsTool(client *velocity.Client) *GetBigDataAnalyticsTool {
	return &GetBigDataAnalyticsTool{client: client}
}

func (t *GetBigDataAnalyticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_bigdata_analytics",
		mcp.WithDescription("Get all big data analytics in the Velocity environment"),
	)
}

func (t *GetBigDataAnalyticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.BigDataAnalytics(ctx))
}

// GetBigDataAnalyticTool fetches one big data analytic by ID.
type GetBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewGetBigDataAnalyticTool(client *velocity.Client) *GetBigDataAnalyticTool {
	return &GetBigDataAnalyticTool{client: client}
}

func (t *GetBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("get_bigdata_analytic",
		mcp.WithDescription("Get details of a specific big data analytic by ID"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic"),
		),
	)
}

func (t *GetBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.BigDataAnalytic(ctx, analyticID))
}

// CreateBigDataAnalyticTool creates a big data analytic.
type CreateBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewCreateBigDataAnalyticTool(client *velocity.Client) *CreateBigDataAnalyticTool {
	return &CreateBigDataAnalyticTool{client: client}
}

func (t *CreateBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("create_bigdata_analytic",
		mcp.WithDescription("Create a new big data analytic from its complete JSON definition"),
		mcp.WithObject("analytic_data",
			mcp.Required(),
			mcp.Description("The complete big data analytic configuration document"),
		),
	)
}

func (t *CreateBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := rawArg(req, "analytic_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.CreateBigDataAnalytic(ctx, definition))
}

// UpdateBigDataAnalyticTool replaces a big data analytic's definition.
type UpdateBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewUpdateBigDataAnalyticTool(client *velocity.Client) *UpdateBigDataAnalyticTool {
	return &UpdateBigDataAnalyticTool{client: client}
}

func (t *UpdateBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("update_bigdata_analytic",
		mcp.WithDescription("Update an existing big data analytic with a new JSON definition"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to update"),
		),
		mcp.WithObject("analytic_data",
			mcp.Required(),
			mcp.Description("The updated analytic configuration document"),
		),
	)
}

func (t *UpdateBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	definition, err := rawArg(req, "analytic_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.UpdateBigDataAnalytic(ctx, analyticID, definition))
}

// DeleteBigDataAnalyticTool deletes a big data analytic.
type DeleteBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewDeleteBigDataAnalyticTool(client *velocity.Client) *DeleteBigDataAnalyticTool {
	return &DeleteBigDataAnalyticTool{client: client}
}

func (t *DeleteBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_bigdata_analytic",
		mcp.WithDescription("Delete a big data analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to delete"),
		),
	)
}

func (t *DeleteBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.DeleteBigDataAnalytic(ctx, analyticID))
}

// StartBigDataAnalyticTool starts a big data analytic run.
type StartBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewStartBigDataAnalyticTool(client *velocity.Client) *StartBigDataAnalyticTool {
	return &StartBigDataAnalyticTool{client: client}
}

func (t *StartBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("start_bigdata_analytic",
		mcp.WithDescription("Start a big data analytic run"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to start"),
		),
	)
}

func (t *StartBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StartBigDataAnalytic(ctx, analyticID))
}

// StopBigDataAnalyticTool stops a big data analytic run.
type StopBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewStopBigDataAnalyticTool(client *velocity.Client) *StopBigDataAnalyticTool {
	return &StopBigDataAnalyticTool{client: client}
}

func (t *StopBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("stop_bigdata_analytic",
		mcp.WithDescription("Stop a running big data analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to stop"),
		),
	)
}

func (t *StopBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StopBigDataAnalytic(ctx, analyticID))
}

// GetBigDataAnalyticStatusTool reports a big data analytic's status.
type GetBigDataAnalyticStatusTool struct {
	client *velocity.Client
}

func NewGetBigDataAnalyticStatusTool(client *velocity.Client) *GetBigDataAnalyticStatusTool {
	return &GetBigDataAnalyticStatusTool{client: client}
}

func (t *GetBigDataAnalyticStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_bigdata_analytic_status",
		mcp.WithDescription("Get the current status of a big data analytic"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic"),
		),
		mcp.WithBoolean("watch",
			mcp.Description("Report live run progress"),
		),
	)
}

func (t *GetBigDataAnalyticStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.BigDataAnalyticStatus(ctx, analyticID, boolArg(req, "watch", false)))
}

// CloneBigDataAnalyticTool clones a big data analytic under a new name.
type CloneBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewCloneBigDataAnalyticTool(client *velocity.Client) *CloneBigDataAnalyticTool {
	return &CloneBigDataAnalyticTool{client: client}
}

func (t *CloneBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("clone_bigdata_analytic",
		mcp.WithDescription("Clone an existing big data analytic under a new name"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to clone"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the cloned analytic"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description for the clone"),
		),
	)
}

func (t *CloneBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(req, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.CloneBigDataAnalytic(ctx, analyticID, name, req.GetString("description", "")))
}

// ScaleBigDataAnalyticTool adjusts a running big data analytic's resources.
type ScaleBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewScaleBigDataAnalyticTool(client *velocity.Client) *ScaleBigDataAnalyticTool {
	return &ScaleBigDataAnalyticTool{client: client}
}

func (t *ScaleBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("scale_bigdata_analytic",
		mcp.WithDescription("Scale a running big data analytic's CPU, memory, and instance count"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to scale"),
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

func (t *ScaleBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cpu := floatArg(req, "cpu", 0)
	memory := floatArg(req, "memory", 0)
	instances := intArg(req, "instances", 1)
	return result(t.client.ScaleBigDataAnalytic(ctx, analyticID, cpu, memory, instances))
}

// ValidateBigDataAnalyticTool validates a big data analytic definition.
type ValidateBigDataAnalyticTool struct {
	client *velocity.Client
}

func NewValidateBigDataAnalyticTool(client *velocity.Client) *ValidateBigDataAnalyticTool {
	return &ValidateBigDataAnalyticTool{client: client}
}

func (t *ValidateBigDataAnalyticTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_bigdata_analytic",
		mcp.WithDescription("Validate a big data analytic configuration without creating it"),
		mcp.WithObject("analytic_data",
			mcp.Required(),
			mcp.Description("The analytic configuration document to validate"),
		),
	)
}

func (t *ValidateBigDataAnalyticTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := rawArg(req, "analytic_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.ValidateBigDataAnalytic(ctx, definition))
}

// ValidateBigDataAnalyticByIDTool validates an existing big data analytic.
type ValidateBigDataAnalyticByIDTool struct {
	client *velocity.Client
}

func NewValidateBigDataAnalyticByIDTool(client *velocity.Client) *ValidateBigDataAnalyticByIDTool {
	return &ValidateBigDataAnalyticByIDTool{client: client}
}

func (t *ValidateBigDataAnalyticByIDTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_bigdata_analytic_by_id",
		mcp.WithDescription("Validate an existing big data analytic by ID"),
		mcp.WithString("analytic_id",
			mcp.Required(),
			mcp.Description("The ID of the big data analytic to validate"),
		),
	)
}

func (t *ValidateBigDataAnalyticByIDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyticID, err := requiredString(req, "analytic_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.ValidateBigDataAnalyticByID(ctx, analyticID))
}
