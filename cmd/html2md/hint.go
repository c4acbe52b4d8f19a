package main

import (
	"context"
	"errors"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/fetch"
	"github.com/alnah/go-html2md/internal/hints"
)

// withHint returns the error message followed by an actionable hint when
// one applies.
func withHint(err error) string {
	msg := err.Error()

	var statusErr *fetch.StatusError
	var timeoutErr interface{ Timeout() bool }
	switch {
	case errors.As(err, &statusErr):
		return msg + hints.ForHTTPStatus(statusErr.Code)
	case errors.Is(err, fetch.ErrBrowserConnect):
		return msg + hints.ForBrowserConnect()
	case errors.Is(err, fetch.ErrPageLoad),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &timeoutErr) && timeoutErr.Timeout():
		return msg + hints.ForTimeout()
	case errors.Is(err, html2md.ErrSelectorNotFound):
		return msg + hints.ForSelector()
	case errors.Is(err, ErrWriteOutput):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
