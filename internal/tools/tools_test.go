package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gisops/velocity-mcp/internal/auth"
	"github.com/gisops/velocity-mcp/internal/config"
	"github.com/gisops/velocity-mcp/internal/velocity"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

// newTestClient builds a real velocity.Client backed by a fake portal and
// a fake Velocity API served by handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *velocity.Client {
	t.Helper()

	portal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		expires := time.Now().Add(time.Hour).UnixMilli()
		fmt.Fprintf(w, `{"token":"test-token","expires":%d}`, expires)
	}))
	t.Cleanup(portal.Close)

	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)

	cfg := &config.Config{
		BaseURL:   api.URL,
		Username:  "analyst",
		Password:  "s3cret",
		PortalURL: portal.URL,
	}
	creds := auth.NewManager(cfg, auth.WithHTTPClient(portal.Client()))
	return velocity.NewClient(cfg, creds, velocity.WithHTTPClient(api.Client()))
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func requireParam(t *testing.T, def mcp.Tool, name string) {
	t.Helper()
	if _, ok := def.InputSchema.Properties[name]; !ok {
		t.Errorf("%s: missing %q parameter", def.Name, name)
	}
	for _, r := range def.InputSchema.Required {
		if r == name {
			return
		}
	}
	t.Errorf("%s: %q should be required", def.Name, name)
}

// ─── Definitions ─────────────────────────────────────────────────────────────

func TestDefinitions_NamesAndRequiredParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {})

	getFeed := NewGetFeedTool(client).Definition()
	if getFeed.Name != "get_feed" {
		t.Errorf("name = %q, want get_feed", getFeed.Name)
	}
	requireParam(t, getFeed, "feed_id")

	createFeed := NewCreateFeedTool(client).Definition()
	requireParam(t, createFeed, "feed_data")

	updateFeed := NewUpdateFeedTool(client).Definition()
	requireParam(t, updateFeed, "feed_id")
	requireParam(t, updateFeed, "feed_data")

	cloneBd := NewCloneBigDataAnalyticTool(client).Definition()
	requireParam(t, cloneBd, "analytic_id")
	requireParam(t, cloneBd, "name")

	scaleFeed := NewScaleFeedTool(client).Definition()
	requireParam(t, scaleFeed, "cpu")
	requireParam(t, scaleFeed, "memory")
	requireParam(t, scaleFeed, "instances")

	history := NewGetTenantMetricsHistoryTool(client).Definition()
	requireParam(t, history, "start_time")
	requireParam(t, history, "end_time")
}

// ─── Handlers ────────────────────────────────────────────────────────────────

func TestGetFeedsTool_RendersIndentedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/iot/feed" {
			t.Errorf("path = %q, want /iot/feed", r.URL.Path)
		}
		fmt.Fprint(w, `[{"id":"f1","label":"flights"}]`)
	})

	res, err := NewGetFeedsTool(client).Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"label": "flights"`) {
		t.Errorf("result not indented JSON: %q", text)
	}
}

func TestGetFeedTool_MissingArgument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("API should not be called without feed_id")
	})

	res, err := NewGetFeedTool(client).Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected tool-level error for missing feed_id")
	}
}

func TestStartFeedTool_HitsStartEndpoint(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"status":"starting"}`)
	})

	res, err := NewStartFeedTool(client).Handle(context.Background(),
		makeReq(map[string]interface{}{"feed_id": "f1"}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if gotPath != "/iot/feed/f1/start" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestCreateFeedTool_PassesDefinitionThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		fmt.Fprint(w, `{"id":"created"}`)
	})

	res, err := NewCreateFeedTool(client).Handle(context.Background(),
		makeReq(map[string]interface{}{
			"feed_data": map[string]interface{}{"label": "flights"},
		}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
}

func TestScaleBigDataAnalyticTool_BuildsBody(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		fmt.Fprint(w, `{"success":true}`)
	})

	res, err := NewScaleBigDataAnalyticTool(client).Handle(context.Background(),
		makeReq(map[string]interface{}{
			"analytic_id": "a1",
			"cpu":         2.0,
			"memory":      4.0,
			"instances":   3.0,
		}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	for _, want := range []string{`"cpu":2`, `"memory":4`, `"instances":3`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("body %q missing %s", gotBody, want)
		}
	}
}

func TestHandle_APIErrorBecomesToolError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"message":"feed not found"}}`)
	})

	res, err := NewGetFeedTool(client).Handle(context.Background(),
		makeReq(map[string]interface{}{"feed_id": "missing"}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool-level error")
	}
	if !strings.Contains(resultText(t, res), "feed not found") {
		t.Errorf("error text = %q", resultText(t, res))
	}
}

func TestGetTenantMetricsHistoryTool_RequiresWindow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("API should not be called without a window")
	})

	res, err := NewGetTenantMetricsHistoryTool(client).Handle(context.Background(),
		makeReq(map[string]interface{}{"start_time": float64(0)}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected tool-level error for missing end_time")
	}
}

// ─── Argument helpers ────────────────────────────────────────────────────────

func TestRawArg(t *testing.T) {
	req := makeReq(map[string]interface{}{
		"doc": map[string]interface{}{"a": 1},
	})

	raw, err := rawArg(req, "doc")
	if err != nil {
		t.Fatalf("rawArg() error = %v", err)
	}
	if string(raw) != `{"a":1}` {
		t.Errorf("raw = %s", raw)
	}

	if _, err := rawArg(req, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestNumericArgs(t *testing.T) {
	req := makeReq(map[string]interface{}{
		"n": float64(7),
		"f": 2.5,
		"b": true,
	})

	if got := intArg(req, "n", 0); got != 7 {
		t.Errorf("intArg = %d", got)
	}
	if got := intArg(req, "missing", 3); got != 3 {
		t.Errorf("intArg default = %d", got)
	}
	if got := floatArg(req, "f", 0); got != 2.5 {
		t.Errorf("floatArg = %v", got)
	}
	if got := int64Arg(req, "n", 0); got != 7 {
		t.Errorf("int64Arg = %d", got)
	}
	if got := boolArg(req, "b", false); !got {
		t.Error("boolArg = false")
	}
}
