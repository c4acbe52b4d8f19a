package main

import (
	"context"
	"errors"
	"os"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/fetch"
)

// Exit codes for the html2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitNetwork = 4 // Fetch or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Network and browser errors (exit 4)
	if errors.Is(err, fetch.ErrFetch) ||
		errors.Is(err, fetch.ErrStatus) ||
		errors.Is(err, fetch.ErrBodyTooLarge) ||
		errors.Is(err, fetch.ErrBrowserConnect) ||
		errors.Is(err, fetch.ErrPageCreate) ||
		errors.Is(err, fetch.ErrPageLoad) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitNetwork
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoHTMLFiles) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, html2md.ErrEmptyHTML) ||
		errors.Is(err, html2md.ErrInvalidBullet) ||
		errors.Is(err, html2md.ErrInvalidDelimiter) ||
		errors.Is(err, html2md.ErrInvalidLinkStyle) ||
		errors.Is(err, html2md.ErrInvalidSelector) ||
		errors.Is(err, html2md.ErrSelectorNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
