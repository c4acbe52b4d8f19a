// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/http"
	"os"
	"strings"

	"github.com/alnah/go-html2md/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser launch errors when --render is used.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or drop --render to fetch without a browser")

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the fetch timeout.
func ForTimeout() string {
	return format("slow pages need a longer --timeout")
}

// ForHTTPStatus returns a hint for a failed page fetch.
func ForHTTPStatus(code int) string {
	switch {
	case code == http.StatusForbidden || code == http.StatusTooManyRequests:
		return format("the site may reject scripted clients; try --render")
	case code == http.StatusNotFound:
		return format("check the URL")
	case code >= 500:
		return format("the server failed; retry later")
	}
	return ""
}

// ForSelector returns a hint when a selector matched nothing.
func ForSelector() string {
	return format("inspect the page source and pass a selector that exists, or omit --selector")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "go-html2md/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
