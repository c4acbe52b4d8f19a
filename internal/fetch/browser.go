package fetch

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-html2md/internal/process"
)

// BrowserFetcher loads pages in headless Chrome and returns the DOM after
// the load event. The browser starts on first use and is shared by
// concurrent callers. Rod downloads Chromium on first run if none is found.
type BrowserFetcher struct {
	timeout time.Duration

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewBrowserFetcher creates a BrowserFetcher with the given per-page
// timeout (zero selects DefaultTimeout).
func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{timeout: timeoutOrDefault(timeout)}
}

// ensureBrowser lazily launches and connects to the browser.
func (f *BrowserFetcher) ensureBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		return f.browser, nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	f.launcher = l
	f.browser = browser
	return browser, nil
}

// Fetch opens url in a new tab, waits for the load event and returns the
// serialized document.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := f.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	loaded := page.Timeout(timeout)
	if err := loaded.WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPageLoad, url, err)
	}

	html, err := loaded.HTML()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading document: %v", ErrPageLoad, url, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &Page{URL: finalURL, HTML: html}, nil
}

// Close shuts the browser down and kills its process group so no
// renderer or helper process outlives the run. Safe to call when the
// browser never started.
func (f *BrowserFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser == nil {
		return nil
	}

	err := f.browser.Close()
	if pid := f.launcher.PID(); pid > 0 {
		_ = process.KillGroup(pid)
	}
	f.launcher.Kill()
	f.launcher.Cleanup()

	f.browser = nil
	f.launcher = nil
	return err
}
