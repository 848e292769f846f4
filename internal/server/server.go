// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it loads the configuration, creates the
// single credential manager and API client for the process, and injects
// them into every tool and resource. No business logic lives here — only
// wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gisops/velocity-mcp/internal/auth"
	"github.com/gisops/velocity-mcp/internal/config"
	"github.com/gisops/velocity-mcp/internal/resources"
	"github.com/gisops/velocity-mcp/internal/tools"
	"github.com/gisops/velocity-mcp/internal/velocity"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with every Velocity tool
// registered. The credential manager is created once here and shared by
// reference: all tools go through the same client, so the portal sees one
// token lifecycle for the whole process.
func New() (*server.MCPServer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	creds := auth.NewManager(cfg)
	client := velocity.NewClient(cfg, creds)

	s := server.NewMCPServer(
		"velocity-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerFeedTools(s, client)
	registerAnalyticTools(s, client)
	registerServiceTools(s, client)
	registerDefinitionTools(s, client)
	registerSystemTools(s, client)

	statusResource := resources.NewHandler(cfg, creds)
	s.AddResource(statusResource.ConnectionResource(), statusResource.HandleConnection)

	return s, nil
}

func registerFeedTools(s *server.MCPServer, client *velocity.Client) {
	getFeeds := tools.NewGetFeedsTool(client)
	s.AddTool(getFeeds.Definition(), getFeeds.Handle)

	getFeed := tools.NewGetFeedTool(client)
	s.AddTool(getFeed.Definition(), getFeed.Handle)

	createFeed := tools.NewCreateFeedTool(client)
	s.AddTool(createFeed.Definition(), createFeed.Handle)

	updateFeed := tools.NewUpdateFeedTool(client)
	s.AddTool(updateFeed.Definition(), updateFeed.Handle)

	deleteFeed := tools.NewDeleteFeedTool(client)
	s.AddTool(deleteFeed.Definition(), deleteFeed.Handle)

	startFeed := tools.NewStartFeedTool(client)
	s.AddTool(startFeed.Definition(), startFeed.Handle)

	stopFeed := tools.NewStopFeedTool(client)
	s.AddTool(stopFeed.Definition(), stopFeed.Handle)

	feedStatus := tools.NewGetFeedStatusTool(client)
	s.AddTool(feedStatus.Definition(), feedStatus.Handle)

	feedMetrics := tools.NewGetFeedMetricsTool(client)
	s.AddTool(feedMetrics.Definition(), feedMetrics.Handle)

	cloneFeed := tools.NewCloneFeedTool(client)
	s.AddTool(cloneFeed.Definition(), cloneFeed.Handle)

	validateFeed := tools.NewValidateFeedTool(client)
	s.AddTool(validateFeed.Definition(), validateFeed.Handle)

	scaleFeed := tools.NewScaleFeedTool(client)
	s.AddTool(scaleFeed.Definition(), scaleFeed.Handle)
}

func registerAnalyticTools(s *server.MCPServer, client *velocity.Client) {
	// Real-time analytics.
	rtList := tools.NewGetRealtimeAnalyticsTool(client)
	s.AddTool(rtList.Definition(), rtList.Handle)

	rtGet := tools.NewGetRealtimeAnalyticTool(client)
	s.AddTool(rtGet.Definition(), rtGet.Handle)

	rtCreate := tools.NewCreateRealtimeAnalyticTool(client)
	s.AddTool(rtCreate.Definition(), rtCreate.Handle)

	rtUpdate := tools.NewUpdateRealtimeAnalyticTool(client)
	s.AddTool(rtUpdate.Definition(), rtUpdate.Handle)

	rtDelete := tools.NewDeleteRealtimeAnalyticTool(client)
	s.AddTool(rtDelete.Definition(), rtDelete.Handle)

	rtStart := tools.NewStartRealtimeAnalyticTool(client)
	s.AddTool(rtStart.Definition(), rtStart.Handle)

	rtStop := tools.NewStopRealtimeAnalyticTool(client)
	s.AddTool(rtStop.Definition(), rtStop.Handle)

	rtStatus := tools.NewGetRealtimeAnalyticStatusTool(client)
	s.AddTool(rtStatus.Definition(), rtStatus.Handle)

	rtMetrics := tools.NewGetRealtimeAnalyticMetricsTool(client)
	s.AddTool(rtMetrics.Definition(), rtMetrics.Handle)

	// Big data analytics.
	bdList := tools.NewGetBigDataAnalyticsTool(client)
	s.AddTool(bdList.Definition(), bdList.Handle)

	bdGet := tools.NewGetBigDataAnalyticTool(client)
	s.AddTool(bdGet.Definition(), bdGet.Handle)

	bdCreate := tools.NewCreateBigDataAnalyticTool(client)
	s.AddTool(bdCreate.Definition(), bdCreate.Handle)

	bdUpdate := tools.NewUpdateBigDataAnalyticTool(client)
	s.AddTool(bdUpdate.Definition(), bdUpdate.Handle)

	bdDelete := tools.NewDeleteBigDataAnalyticTool(client)
	s.AddTool(bdDelete.Definition(), bdDelete.Handle)

	bdStart := tools.NewStartBigDataAnalyticTool(client)
	s.AddTool(bdStart.Definition(), bdStart.Handle)

	bdStop := tools.NewStopBigDataAnalyticTool(client)
	s.AddTool(bdStop.Definition(), bdStop.Handle)

	bdStatus := tools.NewGetBigDataAnalyticStatusTool(client)
	s.AddTool(bdStatus.Definition(), bdStatus.Handle)

	bdClone := tools.NewCloneBigDataAnalyticTool(client)
	s.AddTool(bdClone.Definition(), bdClone.Handle)

	bdScale := tools.NewScaleBigDataAnalyticTool(client)
	s.AddTool(bdScale.Definition(), bdScale.Handle)

	bdValidate := tools.NewValidateBigDataAnalyticTool(client)
	s.AddTool(bdValidate.Definition(), bdValidate.Handle)

	bdValidateByID := tools.NewValidateBigDataAnalyticByIDTool(client)
	s.AddTool(bdValidateByID.Definition(), bdValidateByID.Handle)
}

func registerServiceTools(s *server.MCPServer, client *velocity.Client) {
	allServices := tools.NewGetAllServicesTool(client)
	s.AddTool(allServices.Definition(), allServices.Handle)

	featureServices := tools.NewGetFeatureServicesTool(client)
	s.AddTool(featureServices.Definition(), featureServices.Handle)

	featureService := tools.NewGetFeatureServiceTool(client)
	s.AddTool(featureService.Definition(), featureService.Handle)

	streamServices := tools.NewGetStreamServicesTool(client)
	s.AddTool(streamServices.Definition(), streamServices.Handle)

	streamService := tools.NewGetStreamServiceTool(client)
	s.AddTool(streamService.Definition(), streamService.Handle)

	dependencies := tools.NewGetServiceDependenciesTool(client)
	s.AddTool(dependencies.Definition(), dependencies.Handle)
}

func registerDefinitionTools(s *server.MCPServer, client *velocity.Client) {
	feedTypes := tools.NewGetFeedTypesTool(client)
	s.AddTool(feedTypes.Definition(), feedTypes.Handle)

	toolDefs := tools.NewGetToolDefinitionsTool(client)
	s.AddTool(toolDefs.Definition(), toolDefs.Handle)

	outputDefs := tools.NewGetOutputDefinitionsTool(client)
	s.AddTool(outputDefs.Definition(), outputDefs.Handle)

	sourceDefs := tools.NewGetSourceDefinitionsTool(client)
	s.AddTool(sourceDefs.Definition(), sourceDefs.Handle)

	formatDefs := tools.NewGetFormatDefinitionsTool(client)
	s.AddTool(formatDefs.Definition(), formatDefs.Handle)
}

func registerSystemTools(s *server.MCPServer, client *velocity.Client) {
	version := tools.NewGetVersionTool(client)
	s.AddTool(version.Definition(), version.Handle)

	queryLogs := tools.NewQueryLogsTool(client)
	s.AddTool(queryLogs.Definition(), queryLogs.Handle)

	queryItemLogs := tools.NewQueryItemLogsTool(client)
	s.AddTool(queryItemLogs.Definition(), queryItemLogs.Handle)

	exportConfig := tools.NewExportConfigurationTool(client)
	s.AddTool(exportConfig.Definition(), exportConfig.Handle)

	importConfig := tools.NewImportConfigurationTool(client)
	s.AddTool(importConfig.Definition(), importConfig.Handle)

	tenantSettings := tools.NewGetTenantSettingsTool(client)
	s.AddTool(tenantSettings.Definition(), tenantSettings.Handle)

	tenantMetrics := tools.NewGetTenantMetricsTool(client)
	s.AddTool(tenantMetrics.Definition(), tenantMetrics.Handle)

	tenantHistory := tools.NewGetTenantMetricsHistoryTool(client)
	s.AddTool(tenantHistory.Definition(), tenantHistory.Handle)
}

// serverInstructions tells the AI how to use the Velocity tools safely.
func serverInstructions() string {
	return `You have access to the ArcGIS Velocity API through this server.

Feeds ingest real-time data; real-time analytics process it continuously;
big data analytics run on schedules or on demand. Feature and stream
services are the outputs other applications consume.

Guidelines:
- Read before you write: fetch an item with its get_* tool before calling
  update_*, and reuse the returned document as the base for changes.
- Validation tools (validate_feed, validate_bigdata_analytic) check a
  configuration without creating anything — prefer them when drafting.
- delete_* and import_configuration are destructive; confirm with the user
  before calling them.
- Definition tools (get_feed_types, get_tool_definitions, ...) describe
  what this Velocity instance supports; consult them when building new
  configurations.

Authentication is automatic: tokens are generated and refreshed by the
server. An "authentication rejected" error means the configured
credentials are wrong, not that a retry is needed.`
}
