// Package velocity is a thin client for the ArcGIS Velocity REST API.
//
// Every endpoint wrapper goes through a single request helper that owns
// the authentication-retry protocol: fetch a managed token, attach it,
// send, and on a 401 invalidate the cached credential and retry exactly
// once with a fresh one. All other HTTP failures pass through untouched.
// Response bodies are returned as raw JSON so callers (MCP tools) can
// render them without re-modelling the Velocity schema.
package velocity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/gisops/velocity-mcp/internal/auth"
	"github.com/gisops/velocity-mcp/internal/config"
)

// successBody is returned for 204 and empty responses, matching what the
// Velocity API's own empty-success endpoints imply.
var successBody = json.RawMessage(`{"success": true}`)

// APIError is a non-authentication HTTP failure from the Velocity API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("velocity api error (status %d): %s", e.StatusCode, e.Message)
}

// Option customizes Client creation.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client calls the Velocity REST API with managed credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *auth.Manager
}

// NewClient creates a Client against cfg.BaseURL using creds for tokens.
func NewClient(cfg *config.Config, creds *auth.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// request performs one logical API call under the bounded auth-retry
// protocol. body, when non-nil, is marshaled as JSON.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	reqID := uuid.NewString()[:8]
	logger := log.WithFields(log.Fields{
		"req_id": reqID,
		"method": method,
		"path":   path,
	})
	logger.Debug("velocity request")

	resp, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The service rejected a token the clock still considered valid
		// (expired early or revoked out-of-band). Force regeneration and
		// retry exactly once.
		drain(resp)
		logger.Warn("credential rejected, regenerating token and retrying")
		c.creds.Invalidate()

		resp, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			drain(resp)
			return nil, &auth.AuthError{
				Code:    http.StatusUnauthorized,
				Message: "service rejected a freshly generated credential",
			}
		}
	}

	return decode(resp)
}

// send issues a single authenticated attempt.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// decode turns the final response into raw JSON or an *APIError.
func decode(resp *http.Response) (json.RawMessage, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = gjson.GetBytes(data, "message").String()
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return successBody, nil
	}
	return data, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// get/post/put/del are shorthands used by the endpoint wrappers.

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) del(ctx context.Context, path string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}

// localeQuery builds the optional ?locale= query used by the definition
// endpoints.
func localeQuery(locale string) url.Values {
	if locale == "" {
		return nil
	}
	return url.Values{"locale": {locale}}
}

// metricsBody builds the optional timeInterval body shared by the metrics
// endpoints.
func metricsBody(timeInterval string) map[string]any {
	body := map[string]any{}
	if timeInterval != "" {
		body["timeInterval"] = timeInterval
	}
	return body
}

// historyBody builds the start/end window body shared by the history
// endpoints. Times are epoch milliseconds.
func historyBody(startTime, endTime int64, timeInterval string) map[string]any {
	body := map[string]any{
		"startTime": startTime,
		"endTime":   endTime,
	}
	if timeInterval != "" {
		body["timeInterval"] = timeInterval
	}
	return body
}

// cloneBody builds the name/description body shared by the clone
// endpoints.
func cloneBody(name, description string) map[string]any {
	body := map[string]any{"name": name}
	if description != "" {
		body["description"] = description
	}
	return body
}

// scaleBody builds the resource body shared by the scale endpoints.
func scaleBody(cpu, memory float64, instances int) map[string]any {
	return map[string]any{
		"cpu":       cpu,
		"memory":    memory,
		"instances": instances,
	}
}
