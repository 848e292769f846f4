// Package tools implements the MCP tool handlers that expose the Velocity
// REST API.
//
// Each tool follows the same pattern:
//   - a struct holding its dependency (*velocity.Client) injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() extracts arguments, calls the client, renders the result
//
// Token lifecycle is invisible here: the client's request helper owns
// credential attachment and the single retry on rejection, so these
// handlers are pure argument plumbing.
package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// result renders an API response (raw JSON) or error as a tool result.
// API and authentication errors become tool-level errors so the calling
// assistant sees them as data, not as protocol failures.
func result(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not valid JSON (shouldn't happen); return it verbatim.
		return mcp.NewToolResultText(string(raw)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// rawArg extracts an object argument as raw JSON for passthrough to the
// API. Velocity definitions are large free-form documents; they are not
// re-modelled here.
func rawArg(req mcp.CallToolRequest, key string) (json.RawMessage, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%q is required", key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", key, err)
	}
	return data, nil
}

// requiredString extracts a required string argument.
func requiredString(req mcp.CallToolRequest, key string) (string, error) {
	v := req.GetString(key, "")
	if v == "" {
		return "", fmt.Errorf("%q is required", key)
	}
	return v, nil
}

// intArg extracts an integer argument, returning defaultVal if the key is
// missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// floatArg extracts a float argument.
func floatArg(req mcp.CallToolRequest, key string, defaultVal float64) float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return v
}

// int64Arg extracts an epoch-milliseconds argument.
func int64Arg(req mcp.CallToolRequest, key string, defaultVal int64) int64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int64(v)
}

// boolArg extracts a boolean argument.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
