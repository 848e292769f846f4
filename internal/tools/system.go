package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// GetVersionTool reports the Velocity API version.
type GetVersionTool struct {
	client *velocity.Client
}

func NewGetVersionTool(client *velocity.Client) *GetVersionTool {
	return &GetVersionTool{client: client}
}

func (t *GetVersionTool) Definition() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the ArcGIS Velocity API version"),
	)
}

func (t *GetVersionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.Version(ctx))
}

// QueryLogsTool queries system logs.
type QueryLogsTool struct {
	client *velocity.Client
}

func NewQueryLogsTool(client *velocity.Client) *QueryLogsTool {
	return &QueryLogsTool{client: client}
}

func (t *QueryLogsTool) Definition() mcp.Tool {
	return mcp.NewTool("query_logs",
		mcp.WithDescription("Query Velocity system logs"),
		mcp.WithObject("query_params",
			mcp.Required(),
			mcp.Description("Log query document (time range, level, item filters)"),
		),
	)
}

func (t *QueryLogsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := rawArg(req, "query_params")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.QueryLogs(ctx, query))
}

// QueryItemLogsTool queries logs for one item.
type QueryItemLogsTool struct {
	client *velocity.Client
}

func NewQueryItemLogsTool(client *velocity.Client) *QueryItemLogsTool {
	return &QueryItemLogsTool{client: client}
}

func (t *QueryItemLogsTool) Definition() mcp.Tool {
	return mcp.NewTool("query_item_logs",
		mcp.WithDescription("Query logs for a specific item (feed, analytic, or service)"),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item ID whose logs to query"),
		),
		mcp.WithObject("query_params",
			mcp.Required(),
			mcp.Description("Log query document (time range, level filters)"),
		),
	)
}

func (t *QueryItemLogsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := requiredString(req, "item_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := rawArg(req, "query_params")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.QueryItemLogs(ctx, itemID, query))
}

// ExportConfigurationTool exports a configuration snapshot.
type ExportConfigurationTool struct {
	client *velocity.Client
}

func NewExportConfigurationTool(client *velocity.Client) *ExportConfigurationTool {
	return &ExportConfigurationTool{client: client}
}

func (t *ExportConfigurationTool) Definition() mcp.Tool {
	return mcp.NewTool("export_configuration",
		mcp.WithDescription("Export a snapshot of all item configurations"),
	)
}

func (t *ExportConfigurationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.ExportConfiguration(ctx))
}

// ImportConfigurationTool imports a configuration snapshot.
type ImportConfigurationTool struct {
	client *velocity.Client
}

func NewImportConfigurationTool(client *velocity.Client) *ImportConfigurationTool {
	return &ImportConfigurationTool{client: client}
}

func (t *ImportConfigurationTool) Definition() mcp.Tool {
	return mcp.NewTool("import_configuration",
		mcp.WithDescription("Import item configurations from a previously exported snapshot"),
		mcp.WithObject("config_data",
			mcp.Required(),
			mcp.Description("The configuration snapshot to import"),
		),
	)
}

func (t *ImportConfigurationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot, err := rawArg(req, "config_data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.ImportConfiguration(ctx, snapshot))
}

// GetTenantSettingsTool reads the tenant settings.
type GetTenantSettingsTool struct {
	client *velocity.Client
}

func NewGetTenantSettingsTool(client *velocity.Client) *GetTenantSettingsTool {
	return &GetTenantSettingsTool{client: client}
}

func (t *GetTenantSettingsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tenant_settings",
		mcp.WithDescription("Get the Velocity tenant settings"),
	)
}

func (t *GetTenantSettingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.TenantSettings(ctx))
}

// GetTenantMetricsTool reports the tenant resource usage summary.
type GetTenantMetricsTool struct {
	client *velocity.Client
}

func NewGetTenantMetricsTool(client *velocity.Client) *GetTenantMetricsTool {
	return &GetTenantMetricsTool{client: client}
}

func (t *GetTenantMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tenant_metrics",
		mcp.WithDescription("Get the tenant's current resource usage summary"),
	)
}

func (t *GetTenantMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.TenantMetricsSummary(ctx))
}

// GetTenantMetricsHistoryTool reports tenant resource usage over time.
type GetTenantMetricsHistoryTool struct {
	client *velocity.Client
}

func NewGetTenantMetricsHistoryTool(client *velocity.Client) *GetTenantMetricsHistoryTool {
	return &GetTenantMetricsHistoryTool{client: client}
}

func (t *GetTenantMetricsHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tenant_metrics_history",
		mcp.WithDescription("Get tenant resource usage over a time window"),
		mcp.WithNumber("start_time",
			mcp.Required(),
			mcp.Description("Window start, epoch milliseconds"),
		),
		mcp.WithNumber("end_time",
			mcp.Required(),
			mcp.Description("Window end, epoch milliseconds"),
		),
		mcp.WithString("time_interval",
			mcp.Description("Optional aggregation interval, e.g. '1h'"),
		),
	)
}

func (t *GetTenantMetricsHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := int64Arg(req, "start_time", 0)
	end := int64Arg(req, "end_time", 0)
	if start == 0 || end == 0 {
		return mcp.NewToolResultError("\"start_time\" and \"end_time\" are required"), nil
	}
	return result(t.client.TenantMetricsHistory(ctx, start, end, req.GetString("time_interval", "")))
}
