package main

import (
	"strings"
	"testing"

	"github.com/alnah/go-html2md/internal/extract"
)

func TestBuildFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		meta    extract.Meta
		job     Job
		want    []string
		notWant []string
	}{
		{
			name: "full metadata from a URL",
			meta: extract.Meta{Title: "Hello", Lang: "fr", Description: "Greeting"},
			job:  Job{Source: "https://example.com/", Kind: sourceURL},
			want: []string{"title: Hello\n", "lang: fr\n", "description: Greeting\n", "source: https://example.com/\n", "2026-03-14"},
		},
		{
			name:    "stdin has no source",
			meta:    extract.Meta{Title: "T"},
			job:     Job{Source: stdinArg, Kind: sourceStdin},
			want:    []string{"title: T\n"},
			notWant: []string{"source:", "lang:", "description:"},
		},
		{
			name: "title needing quotes",
			meta: extract.Meta{Title: "Q: what # now"},
			job:  Job{Source: "a.html", Kind: sourceFile},
			want: []string{"Q: what # now", "source: a.html\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildFrontMatter(tt.meta, tt.job, fixedNow)
			if err != nil {
				t.Fatalf("buildFrontMatter() unexpected error: %v", err)
			}
			if !strings.HasPrefix(got, "---\n") || !strings.HasSuffix(got, "\n---\n") {
				t.Errorf("front matter should be fenced by ---: %q", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in %q", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("unexpected %q in %q", notWant, got)
				}
			}
		})
	}
}
