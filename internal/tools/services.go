package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/velocity"
)

// GetAllServicesTool lists every feature, map, and stream service.
type GetAllServicesTool struct {
	client *velocity.Client
}

func NewGetAllServicesTool(client *velocity.Client) *GetAllServicesTool {
	return &GetAllServicesTool{client: client}
}

func (t *GetAllServicesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_all_services",
		mcp.WithDescription("Get all services (feature, map, and stream) in the Velocity environment"),
	)
}

func (t *GetAllServicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.AllServices(ctx))
}

// GetFeatureServicesTool lists all feature services.
type GetFeatureServicesTool struct {
	client *velocity.Client
}

func NewGetFeatureServicesTool(client *velocity.Client) *GetFeatureServicesTool {
	return &GetFeatureServicesTool{client: client}
}

func (t *GetFeatureServicesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feature_services",
		mcp.WithDescription("Get all feature services"),
	)
}

func (t *GetFeatureServicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.FeatureServices(ctx))
}

// GetFeatureServiceTool fetches one feature service by ID.
type GetFeatureServiceTool struct {
	client *velocity.Client
}

func NewGetFeatureServiceTool(client *velocity.Client) *GetFeatureServiceTool {
	return &GetFeatureServiceTool{client: client}
}

func (t *GetFeatureServiceTool) Definition() mcp.Tool {
	return mcp.NewTool("get_feature_service",
		mcp.WithDescription("Get details of a specific feature service by ID"),
		mcp.WithString("service_id",
			mcp.Required(),
			mcp.Description("The ID of the feature service"),
		),
	)
}

func (t *GetFeatureServiceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serviceID, err := requiredString(req, "service_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.FeatureService(ctx, serviceID))
}

// GetStreamServicesTool lists all stream services.
type GetStreamServicesTool struct {
	client *velocity.Client
}

func NewGetStreamServicesTool(client *velocity.Client) *GetStreamServicesTool {
	return &GetStreamServicesTool{client: client}
}

func (t *GetStreamServicesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_stream_services",
		mcp.WithDescription("Get all stream services"),
	)
}

func (t *GetStreamServicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.client.StreamServices(ctx))
}

// GetStreamServiceTool fetches one stream service by ID.
type GetStreamServiceTool struct {
	client *velocity.Client
}

func NewGetStreamServiceTool(client *velocity.Client) *GetStreamServiceTool {
	return &GetStreamServiceTool{client: client}
}

func (t *GetStreamServiceTool) Definition() mcp.Tool {
	return mcp.NewTool("get_stream_service",
		mcp.WithDescription("Get details of a specific stream service by ID"),
		mcp.WithString("service_id",
			mcp.Required(),
			mcp.Description("The ID of the stream service"),
		),
	)
}

func (t *GetStreamServiceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serviceID, err := requiredString(req, "service_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.StreamService(ctx, serviceID))
}

// GetServiceDependenciesTool lists the items depending on a portal item.
type GetServiceDependenciesTool struct {
	client *velocity.Client
}

func NewGetServiceDependenciesTool(client *velocity.Client) *GetServiceDependenciesTool {
	return &GetServiceDependenciesTool{client: client}
}

func (t *GetServiceDependenciesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_service_dependencies",
		mcp.WithDescription("Get the list of items that depend on a portal item"),
		mcp.WithString("portal_item_id",
			mcp.Required(),
			mcp.Description("The portal item ID to inspect"),
		),
	)
}

func (t *GetServiceDependenciesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := requiredString(req, "portal_item_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(t.client.ServiceDependencies(ctx, itemID))
}
