package main

// Notes:
// - Test helpers shared across the CLI tests: an in-memory Environment
//   and fake fetchers. Not functions under test themselves.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-html2md/internal/fetch"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// testEnv is an Environment backed by buffers.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv builds an isolated environment. vars are HTML2MD_* style
// "NAME=value" pairs; fetcher serves URL inputs.
func newTestEnv(stdin string, fetcher fetch.Fetcher, vars ...string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	lookup := map[string]string{}
	for _, kv := range vars {
		name, value, _ := strings.Cut(kv, "=")
		lookup[name] = value
	}

	env := &Environment{
		Now:        func() time.Time { return fixedNow },
		Stdin:      strings.NewReader(stdin),
		Stdout:     stdout,
		Stderr:     stderr,
		StdinPiped: func() bool { return stdin != "" },
		LookupEnv: func(name string) (string, bool) {
			v, ok := lookup[name]
			return v, ok
		},
		Environ:    func() []string { return vars },
		NewFetcher: func(fetchOptions) fetch.Fetcher { return fetcher },
	}
	return &testEnv{Environment: env, stdout: stdout, stderr: stderr}
}

// stubFetcher serves pages from a map keyed by URL.
type stubFetcher struct {
	mu     sync.Mutex
	pages  map[string]string
	err    error
	calls  []string
	closed bool
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*fetch.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	html, ok := f.pages[url]
	if !ok {
		return nil, &fetch.StatusError{URL: url, Code: 404}
	}
	return &fetch.Page{URL: url, StatusCode: 200, HTML: html}, nil
}

func (f *stubFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// writeFile creates path under dir with content, making parents.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return full
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
