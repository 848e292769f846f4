package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// The definition tools expose Velocity's static catalogs. They all take
// the same optional locale argument.

// GetFeedTypesTool lists feed type definitions.
type GetFeedTypesTool struct {
	client *velocity.Client
}

func NewGetFeedTypesTool(client *velocity.Client) *GetFeedTypesTool {
	return &GetFeedTypesTool{client: client}
}

func (t *GetFeedTypesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feed_types",
		mcp.WithDescription("Get all available feed type definitions"),
		mcp.WithString("locale",
			mcp.Description("Optional locale for localized labels, e.g. 'fr'"),
		),
	)
}

func (t *GetFeedTypesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.FeedTypes(ctx, req.GetString("locale", "")))
}

// GetToolDefinitionsTool lists analytic tool definitions.
type GetToolDefinitionsTool struct {
	client *velocity.Client
}

func NewGetToolDefinitionsTool(client *velocity.Client) *GetToolDefinitionsTool {
	return &GetToolDefinitionsTool{client: client}
}

func (t *GetToolDefinitionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tool_definitions",
		mcp.WithDescription("Get all available analytic tool definitions"),
		mcp.WithString("locale",
			mcp.Description("Optional locale for localized labels, e.g. 'fr'"),
		),
	)
}

func (t *GetToolDefinitionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.ToolDefinitions(ctx, req.GetString("locale", "")))
}

// GetOutputDefinitionsTool lists output definitions.
type GetOutputDefinitionsTool struct {
	client *velocity.Client
}

func NewGetOutputDefinitionsTool(client *velocity.Client) *GetOutputDefinitionsTool {
	return &GetOutputDefinitionsTool{client: client}
}

func (t *GetOutputDefinitionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_output_definitions",
		mcp.WithDescription("Get all available output definitions"),
		mcp.WithString("locale",
			mcp.Description("Optional locale for localized labels, e.g. 'fr'"),
		),
	)
}

func (t *GetOutputDefinitionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.OutputDefinitions(ctx, req.GetString("locale", "")))
}

// GetSourceDefinitionsTool lists source definitions.
type GetSourceDefinitionsTool struct {
	client *velocity.Client
}

func NewGetSourceDefinitionsTool(client *velocity.Client) *GetSourceDefinitionsTool {
	return &GetSourceDefinitionsTool{client: client}
}

func (t *GetSourceDefinitionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_source_definitions",
		mcp.WithDescription("Get all available source definitions"),
		mcp.WithString("locale",
			mcp.Description("Optional locale for localized labels, e.g. 'fr'"),
		),
	)
}

func (t *GetSourceDefinitionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.SourceDefinitions(ctx, req.GetString("locale", "")))
}

// GetFormatDefinitionsTool lists data format definitions.
type GetFormatDefinitionsTool struct {
	client *velocity.Client
}

func NewGetFormatDefinitionsTool(client *velocity.Client) *GetFormatDefinitionsTool {
	return &GetFormatDefinitionsTool{client: client}
}

func (t *GetFormatDefinitionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_format_definitions",
		mcp.WithDescription("Get all available data format definitions"),
		mcp.WithString("locale",
			mcp.Description("Optional locale for localized labels, e.g. 'fr'"),
		),
	)
}

func (t *GetFormatDefinitionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.FormatDefinitions(ctx, req.GetString("locale", "")))
}
