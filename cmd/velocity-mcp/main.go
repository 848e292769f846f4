// velocity-mcp: ArcGIS Velocity MCP Server
//
// An MCP server that exposes the ArcGIS Velocity REST API (feeds,
// analytics, services, logs) as tools for AI assistants, with automatic
// portal token management.
//
// Usage:
//
//	velocity-mcp serve     # Start MCP server (stdio transport)
//	velocity-mcp version   # Print the version
//
// Configuration (environment variables, all required):
//
//	VELOCITY_BASE_URL      Velocity instance URL
//	VELOCITY_USERNAME      ArcGIS username
//	VELOCITY_PASSWORD      ArcGIS password
//	VELOCITY_PORTAL_URL    Portal URL used for token generation
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gisops/velocity-mcp/internal/server"
	"github.com/gisops/velocity-mcp/internal/updater"
)

func main() {
	// stdout carries the MCP transport; everything else goes to stderr.
	log.SetOutput(os.Stderr)
	if os.Getenv("VELOCITY_MCP_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
	case "--version", "-v", "version":
		fmt.Printf("velocity-mcp v%s\n", server.Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, err := server.New()
	if err != nil {
		return err
	}

	// Background version check — prints to stderr so it doesn't interfere
	// with the stdio transport.
	go checkForUpdates()

	log.WithField("version", server.Version).Info("starting velocity-mcp (stdio)")
	return mcpserver.ServeStdio(s)
}

// checkForUpdates runs a best-effort release check and prints a notice to
// stderr when a newer version exists.
func checkForUpdates() {
	result := updater.Check(server.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `velocity-mcp v%s — ArcGIS Velocity MCP Server

Usage:
  velocity-mcp serve     Start the MCP server (stdio transport)
  velocity-mcp version   Print the version

Environment:
  VELOCITY_BASE_URL      Velocity instance URL (required)
  VELOCITY_USERNAME      ArcGIS username (required)
  VELOCITY_PASSWORD      ArcGIS password (required)
  VELOCITY_PORTAL_URL    Portal URL for token generation (required)
  VELOCITY_MCP_DEBUG     Set to any value for debug logging

MCP configuration:

  {
    "mcpServers": {
      "velocity": {
        "command": "velocity-mcp",
        "args": ["serve"],
        "env": {
          "VELOCITY_BASE_URL": "https://us-iot.arcgis.com/yourorg",
          "VELOCITY_USERNAME": "your-username",
          "VELOCITY_PASSWORD": "your-password",
          "VELOCITY_PORTAL_URL": "https://www.arcgis.com"
        }
      }
    }
  }
`, server.Version)
}
