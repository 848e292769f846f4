// Package updater checks GitHub for newer releases of velocity-mcp.
//
// The check is best-effort: it runs in a goroutine during "serve", prints
// a notice to stderr when a newer version exists, and silently ignores
// network failures. Unlike the API clients it deliberately uses only
// net/http and encoding/json — a failed version check must never
// interfere with the server.
package updater

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	githubRepo = "gisops/velocity-mcp"

	releaseURL = "https://api.github.com/repos/" + githubRepo + "/releases/latest"

	checkTimeout = 10 * time.Second
)

// For testing: allow overriding the release URL and HTTP client.
var (
	releaseEndpoint = releaseURL
	httpClient      = &http.Client{Timeout: checkTimeout}
)

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result is returned by Check to communicate the outcome.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Check queries GitHub for the latest release and compares it against the
// running version. It never returns an error — network failures yield a
// Result with UpdateAvailable false.
func Check(currentVersion string) *Result {
	result := &Result{CurrentVersion: normalize(currentVersion)}

	req, err := http.NewRequest(http.MethodGet, releaseEndpoint, nil)
	if err != nil {
		return result
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "velocity-mcp/"+currentVersion)

	resp, err := httpClient.Do(req)
	if err != nil {
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return result
	}

	var release releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return result
	}

	result.LatestVersion = normalize(release.TagName)
	result.ReleaseURL = release.HTMLURL
	result.UpdateAvailable = isNewer(result.CurrentVersion, result.LatestVersion)
	return result
}

// normalize strips a leading "v" from a tag.
func normalize(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// isNewer compares dotted numeric versions. Non-numeric segments (such as
// "dev") compare as zero, so development builds never prompt an update
// over a malformed tag.
func isNewer(current, latest string) bool {
	if current == "" || latest == "" || current == "dev" {
		return false
	}

	cur := strings.Split(current, ".")
	lat := strings.Split(latest, ".")
	for i := 0; i < len(cur) || i < len(lat); i++ {
		c, l := 0, 0
		if i < len(cur) {
			c, _ = strconv.Atoi(cur[i])
		}
		if i < len(lat) {
			l, _ = strconv.Atoi(lat[i])
		}
		if l != c {
			return l > c
		}
	}
	return false
}
