package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisops/velocity-mcp/internal/config"
)

// fakeClock is a mutable clock injected via WithNowFunc.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// fakePortal is a stand-in for the ArcGIS portal's generateToken endpoint.
type fakePortal struct {
	t      *testing.T
	server *httptest.Server
	clock  *fakeClock

	requests atomic.Int64
	delay    time.Duration

	mu       sync.Mutex
	fail     string // "", "http500", "badcreds"
	lifetime time.Duration
	noExpiry bool
}

func newFakePortal(t *testing.T, clock *fakeClock) *fakePortal {
	t.Helper()

	p := &fakePortal{t: t, clock: clock, lifetime: 60 * time.Minute}
	mux := http.NewServeMux()
	mux.HandleFunc("/sharing/rest/generateToken", func(w http.ResponseWriter, r *http.Request) {
		n := p.requests.Add(1)
		if p.delay > 0 {
			time.Sleep(p.delay)
		}

		p.mu.Lock()
		fail, lifetime, noExpiry := p.fail, p.lifetime, p.noExpiry
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch fail {
		case "http500":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":"internal"}`)
		case "badcreds":
			// The portal reports credential failures with HTTP 200.
			fmt.Fprint(w, `{"error":{"code":400,"message":"Invalid username or password.","details":[]}}`)
		default:
			if noExpiry {
				fmt.Fprintf(w, `{"token":"tok-%d"}`, n)
				return
			}
			expires := p.clock.Now().Add(lifetime).UnixMilli()
			fmt.Fprintf(w, `{"token":"tok-%d","expires":%d}`, n, expires)
		}
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakePortal) setFailure(mode string) {
	p.mu.Lock()
	p.fail = mode
	p.mu.Unlock()
}

func (p *fakePortal) manager(opts ...Option) *Manager {
	cfg := &config.Config{
		BaseURL:   "https://velocity.example.com",
		Username:  "analyst",
		Password:  "s3cret",
		PortalURL: p.server.URL,
	}
	base := []Option{
		WithHTTPClient(p.server.Client()),
		WithNowFunc(p.clock.Now),
	}
	return NewManager(cfg, append(base, opts...)...)
}

func TestToken_ColdStartThenCacheHit(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	m := portal.manager()

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// Second call well inside the validity window reuses the cache.
	clock.Advance(10 * time.Minute)
	tok, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.EqualValues(t, 1, portal.requests.Load())
}

func TestToken_RegeneratesInsideSafetyMargin(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	m := portal.manager()

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// 54 minutes into a 60-minute token with a 5-minute margin: stale.
	clock.Advance(54 * time.Minute)
	tok, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.EqualValues(t, 2, portal.requests.Load())

	// The returned credential always satisfies expiry-minus-margin > now.
	expiresAt, ok := m.Cached()
	require.True(t, ok)
	assert.True(t, clock.Now().Before(expiresAt.Add(-DefaultSafetyMargin)))
}

func TestInvalidate_ForcesRegeneration(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	m := portal.manager()

	_, err := m.Token(context.Background())
	require.NoError(t, err)

	m.Invalidate()
	_, ok := m.Cached()
	assert.False(t, ok)

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.EqualValues(t, 2, portal.requests.Load())
}

func TestToken_SingleFlight(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.delay = 50 * time.Millisecond
	m := portal.manager()

	const callers = 20
	tokens := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := m.Token(context.Background())
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}
	wg.Wait()

	// Every waiter observed the same credential and the portal saw a
	// single token request for the whole window.
	for _, tok := range tokens {
		assert.Equal(t, tokens[0], tok)
	}
	assert.EqualValues(t, 1, portal.requests.Load())
}

func TestToken_TransientFailureOnColdStart(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.setFailure("http500")
	m := portal.manager()

	_, err := m.Token(context.Background())
	require.Error(t, err)

	var transient *TransientError
	assert.True(t, errors.As(err, &transient), "want *TransientError, got %T", err)

	// Nothing was cached.
	_, ok := m.Cached()
	assert.False(t, ok)

	// Once the portal recovers, the same manager succeeds.
	portal.setFailure("")
	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestToken_BadCredentialsNeverCached(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.setFailure("badcreds")
	m := portal.manager()

	for i := 0; i < 3; i++ {
		_, err := m.Token(context.Background())
		require.Error(t, err)

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr), "want *AuthError, got %T", err)
		assert.Equal(t, 400, authErr.Code)
		assert.Contains(t, authErr.Message, "Invalid username or password")

		_, ok := m.Cached()
		assert.False(t, ok)
	}
	// Each call hit the portal: a permanent rejection is surfaced, never
	// silently retried or cached.
	assert.EqualValues(t, 3, portal.requests.Load())
}

func TestToken_FailedRegenerationLeavesCacheUntouched(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	m := portal.manager()

	_, err := m.Token(context.Background())
	require.NoError(t, err)
	before, ok := m.Cached()
	require.True(t, ok)

	portal.setFailure("http500")
	clock.Advance(58 * time.Minute)

	_, err = m.Token(context.Background())
	require.Error(t, err)

	after, ok := m.Cached()
	require.True(t, ok, "transient failure must not blank out the cache")
	assert.Equal(t, before, after)
}

func TestToken_DefaultLifetimeWhenPortalOmitsExpiry(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.noExpiry = true
	m := portal.manager()

	_, err := m.Token(context.Background())
	require.NoError(t, err)

	expiresAt, ok := m.Cached()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(DefaultTokenLifetime), expiresAt)
}

func TestToken_AbandonedCallerDoesNotCancelRegeneration(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.delay = 100 * time.Millisecond
	m := portal.manager()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Token(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The in-flight regeneration completes anyway and updates the cache
	// for subsequent callers.
	assert.Eventually(t, func() bool {
		_, ok := m.Cached()
		return ok
	}, time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, portal.requests.Load())
}

func TestWithSafetyMarginAndLifetimeOptions(t *testing.T) {
	clock := newFakeClock()
	portal := newFakePortal(t, clock)
	portal.mu.Lock()
	portal.lifetime = 30 * time.Minute
	portal.mu.Unlock()

	m := portal.manager(
		WithSafetyMargin(10*time.Minute),
		WithTokenLifetime(30*time.Minute),
	)

	_, err := m.Token(context.Background())
	require.NoError(t, err)

	// 25 minutes into a 30-minute token with a 10-minute margin: stale.
	clock.Advance(25 * time.Minute)
	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}
