package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withFakeRelease(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	origEndpoint, origClient := releaseEndpoint, httpClient
	releaseEndpoint = srv.URL
	httpClient = srv.Client()
	t.Cleanup(func() {
		releaseEndpoint = origEndpoint
		httpClient = origClient
	})
}

func TestCheck_UpdateAvailable(t *testing.T) {
	withFakeRelease(t, http.StatusOK,
		`{"tag_name":"v1.2.0","html_url":"https://example.com/release"}`)

	result := Check("1.1.0")
	if !result.UpdateAvailable {
		t.Error("expected update to be available")
	}
	if result.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want 1.2.0", result.LatestVersion)
	}
	if result.ReleaseURL != "https://example.com/release" {
		t.Errorf("ReleaseURL = %q", result.ReleaseURL)
	}
}

func TestCheck_AlreadyCurrent(t *testing.T) {
	withFakeRelease(t, http.StatusOK, `{"tag_name":"v1.1.0"}`)

	result := Check("1.1.0")
	if result.UpdateAvailable {
		t.Error("expected no update")
	}
}

func TestCheck_DevBuildNeverPrompts(t *testing.T) {
	withFakeRelease(t, http.StatusOK, `{"tag_name":"v9.9.9"}`)

	if Check("dev").UpdateAvailable {
		t.Error("dev builds should not prompt updates")
	}
}

func TestCheck_ServerErrorIsSilent(t *testing.T) {
	withFakeRelease(t, http.StatusInternalServerError, "")

	result := Check("1.0.0")
	if result.UpdateAvailable {
		t.Error("expected silent failure")
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.1", "1.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.9.0", "1.10.0", true},
		{"1.0", "1.0.1", true},
		{"", "1.0.0", false},
	}
	for _, tt := range tests {
		if got := isNewer(tt.current, tt.latest); got != tt.want {
			t.Errorf("isNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}
