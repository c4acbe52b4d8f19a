package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/fetch"
)

func TestWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"not found status", &fetch.StatusError{URL: "u", Code: 404}, "check the URL"},
		{"forbidden status", fmt.Errorf("page: %w", &fetch.StatusError{URL: "u", Code: 403}), "--render"},
		{"browser", fmt.Errorf("%w: exec failed", fetch.ErrBrowserConnect), "drop --render"},
		{"page load", fetch.ErrPageLoad, "--timeout"},
		{"selector", html2md.ErrSelectorNotFound, "--selector"},
		{"write", ErrWriteOutput, "writable"},
		{"none", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withHint(tt.err)
			if !strings.HasPrefix(got, tt.err.Error()) {
				t.Errorf("withHint() = %q, should start with the error", got)
			}
			if tt.wantHint == "" {
				if got != tt.err.Error() {
					t.Errorf("withHint() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.wantHint) {
				t.Errorf("withHint() = %q, want hint mentioning %q", got, tt.wantHint)
			}
		})
	}
}
