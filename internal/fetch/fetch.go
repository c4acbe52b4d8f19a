// Package fetch retrieves HTML pages over HTTP, optionally rendering them
// in headless Chrome first so script-built content is captured.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for fetch failures.
var (
	ErrFetch          = errors.New("failed to fetch page")
	ErrStatus         = errors.New("unexpected HTTP status")
	ErrBodyTooLarge   = errors.New("response body too large")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// Defaults shared by both fetchers.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "go-html2md/1.0 (+https://github.com/alnah/go-html2md)"
	MaxBodySize      = 32 << 20
)

// Page is a fetched HTML document.
type Page struct {
	URL        string // final URL after redirects
	StatusCode int    // 0 when rendered by the browser
	HTML       string
}

// Fetcher retrieves the HTML behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Compile-time interface checks.
var (
	_ Fetcher = (*HTTPFetcher)(nil)
	_ Fetcher = (*BrowserFetcher)(nil)
)

// StatusError reports a non-2xx response. It matches ErrStatus.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d for %s", ErrStatus, e.Code, e.URL)
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error { return ErrStatus }

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
