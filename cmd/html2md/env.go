package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-html2md/internal/fetch"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and the page fetcher factory.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinPiped reports whether stdin carries data rather than a terminal.
	StdinPiped func() bool
	// LookupEnv and Environ read the process environment.
	LookupEnv func(string) (string, bool)
	Environ   func() []string
	// NewFetcher builds the fetcher used for URL inputs. It is only called
	// when at least one input is a URL.
	NewFetcher func(opts fetchOptions) fetch.Fetcher
}

// fetchOptions selects and configures the fetcher for a run.
type fetchOptions struct {
	render    bool
	timeout   time.Duration
	userAgent string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		StdinPiped: stdinPiped,
		LookupEnv:  os.LookupEnv,
		Environ:    os.Environ,
		NewFetcher: newFetcher,
	}
}

// newFetcher returns a browser-backed fetcher when rendering is requested.
func newFetcher(opts fetchOptions) fetch.Fetcher {
	if opts.render {
		return fetch.NewBrowserFetcher(opts.timeout)
	}
	return fetch.NewHTTPFetcher(opts.timeout, opts.userAgent)
}

// stdinPiped reports whether os.Stdin is a pipe or file.
func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
