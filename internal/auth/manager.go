// Package auth maintains the bearer credential used for every outbound
// Velocity call. A single Manager owns at most one live credential per
// configured identity; it hands out the cached token while it is fresh,
// regenerates it on demand, and coalesces concurrent regenerations so the
// portal sees one token request per refresh window.
package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/gisops/velocity-mcp/internal/config"
)

const (
	// generateTokenPath is the portal's token endpoint, relative to the
	// portal URL.
	generateTokenPath = "/sharing/rest/generateToken"

	// DefaultSafetyMargin is how long before the declared expiry a
	// credential is treated as stale and proactively regenerated.
	DefaultSafetyMargin = 5 * time.Minute

	// DefaultTokenLifetime is the validity requested from the portal.
	// Also the assumed lifetime when the portal omits an expiry.
	DefaultTokenLifetime = 60 * time.Minute
)

// Option customizes Manager creation.
type Option func(*Manager)

// Manager produces currently-valid bearer credentials for the configured
// identity. All methods are safe for concurrent use.
type Manager struct {
	username  string
	password  string
	portalURL string
	referer   string

	httpClient *http.Client
	margin     time.Duration
	lifetime   time.Duration
	now        func() time.Time

	mu     sync.Mutex
	cred   *Credential
	flight singleflight.Group
}

// NewManager creates a Manager for the identity in cfg.
func NewManager(cfg *config.Config, opts ...Option) *Manager {
	m := &Manager{
		username:   cfg.Username,
		password:   cfg.Password,
		portalURL:  cfg.PortalURL,
		referer:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		margin:     DefaultSafetyMargin,
		lifetime:   DefaultTokenLifetime,
		now:        time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m
}

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		if client != nil {
			m.httpClient = client
		}
	}
}

// WithSafetyMargin overrides the proactive-refresh lead time.
func WithSafetyMargin(margin time.Duration) Option {
	return func(m *Manager) {
		if margin >= 0 {
			m.margin = margin
		}
	}
}

// WithTokenLifetime overrides the validity requested from the portal.
func WithTokenLifetime(lifetime time.Duration) Option {
	return func(m *Manager) {
		if lifetime > 0 {
			m.lifetime = lifetime
		}
	}
}

// WithNowFunc overrides the clock used for expiry decisions (testing).
func WithNowFunc(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// Token returns a bearer token that is valid for at least the safety
// margin. The cached credential is reused while fresh; otherwise a single
// regeneration runs and every concurrent caller shares its result. On
// regeneration failure the previous cache state is left untouched and the
// error is an *AuthError or *TransientError.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.cred != nil && m.cred.Fresh(m.now(), m.margin) {
		tok := m.cred.Token
		m.mu.Unlock()
		return tok, nil
	}
	m.mu.Unlock()

	ch := m.flight.DoChan("token", func() (interface{}, error) {
		// Re-check under the lock: a concurrent flight may have refreshed
		// the cache between our staleness check and this call.
		m.mu.Lock()
		if m.cred != nil && m.cred.Fresh(m.now(), m.margin) {
			cred := m.cred
			m.mu.Unlock()
			return cred, nil
		}
		m.mu.Unlock()

		cred, err := m.generate(context.Background())
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.cred = cred
		m.mu.Unlock()
		return cred, nil
	})

	select {
	case <-ctx.Done():
		// The abandoned flight keeps running and still updates the cache
		// for subsequent callers.
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(*Credential).Token, nil
	}
}

// Invalidate discards the cached credential unconditionally. Callers use
// it after the target service rejected a token that the clock still
// considered valid; the next Token call regenerates.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.cred = nil
	m.mu.Unlock()
	log.Debug("cached credential invalidated")
}

// Cached reports whether a credential is currently cached and, if so, its
// declared expiry. The token value itself is never exposed here.
func (m *Manager) Cached() (expiresAt time.Time, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cred == nil {
		return time.Time{}, false
	}
	return m.cred.ExpiresAt, true
}

// generate requests a new token from the portal. It never touches the
// cache; the caller stores the result on success.
func (m *Manager) generate(ctx context.Context) (*Credential, error) {
	tokenURL := m.portalURL + generateTokenPath

	form := url.Values{
		"username":   {m.username},
		"password":   {m.password},
		"referer":    {m.referer},
		"f":          {"json"},
		"expiration": {strconv.Itoa(int(m.lifetime / time.Minute))},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("reading token response: %w", err)}
	}

	if resp.StatusCode >= 500 {
		return nil, &TransientError{
			Err: fmt.Errorf("portal returned status %d", resp.StatusCode),
		}
	}

	token := gjson.GetBytes(body, "token")
	if !token.Exists() {
		// The portal reports failures inside a JSON error envelope, often
		// with HTTP 200.
		code := int(gjson.GetBytes(body, "error.code").Int())
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = fmt.Sprintf("unexpected token response (status %d)", resp.StatusCode)
		}
		if code >= 500 {
			return nil, &TransientError{Err: fmt.Errorf("portal error %d: %s", code, msg)}
		}
		return nil, &AuthError{Code: code, Message: msg}
	}

	now := m.now()
	cred := &Credential{
		Token:    token.String(),
		IssuedAt: now,
	}

	// expires is milliseconds since epoch; fall back to the requested
	// lifetime when the portal omits it.
	if expires := gjson.GetBytes(body, "expires").Int(); expires > 0 {
		cred.ExpiresAt = time.UnixMilli(expires)
	} else {
		cred.ExpiresAt = now.Add(m.lifetime)
	}

	log.WithField("expires_at", cred.ExpiresAt).Info("generated new portal token")
	return cred, nil
}
