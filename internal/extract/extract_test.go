package extract

// Notes:
// - Extractor output is re-serialized by goquery, so assertions check
//   for contained or missing fragments rather than exact documents
// - Metadata falls back to the first h1 when no title element exists

import (
	"errors"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html lang="fr">
<head>
<title> Release   notes </title>
<meta name="Description" content="What changed">
<script>var tracking = 1;</script>
</head>
<body>
<nav><a href="/">Home</a></nav>
<main><h1>Notes</h1><p id="first">First <b>change</b></p></main>
<footer>Footer text</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     Extractor
		want    []string
		notWant []string
	}{
		{
			name:    "passthrough keeps everything",
			ext:     Extractor{},
			want:    []string{"<nav>", "tracking", "Footer text"},
			notWant: nil,
		},
		{
			name:    "strip noise",
			ext:     Extractor{StripNoise: true},
			want:    []string{"<main>", "Footer text"},
			notWant: []string{"tracking", "<nav>"},
		},
		{
			name:    "main content",
			ext:     Extractor{MainContent: true},
			want:    []string{"<main>", "<h1>Notes</h1>"},
			notWant: []string{"Footer text", "<nav>"},
		},
		{
			name:    "selector wins over main content",
			ext:     Extractor{Selector: "p#first", MainContent: true},
			want:    []string{`<p id="first">First <b>change</b></p>`},
			notWant: []string{"<h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.ext.Extract(page)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Extract() missing %q in %q", w, got)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("Extract() should not contain %q in %q", nw, got)
				}
			}
		})
	}
}

func TestExtractor_Extract_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     Extractor
		wantErr error
	}{
		{"invalid selector", Extractor{Selector: "p[["}, ErrInvalidSelector},
		{"no match", Extractor{Selector: "article.post"}, ErrSelectorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.ext.Extract(page)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractor_Enabled(t *testing.T) {
	t.Parallel()

	if (Extractor{}).Enabled() {
		t.Error("zero Extractor should be disabled")
	}
	if !(Extractor{Selector: "main"}).Enabled() {
		t.Error("Extractor with selector should be enabled")
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want Meta
	}{
		{
			name: "full head",
			html: page,
			want: Meta{Title: "Release notes", Lang: "fr", Description: "What changed"},
		},
		{
			name: "h1 fallback",
			html: "<h1>Only <em>heading</em></h1><p>x</p>",
			want: Meta{Title: "Only heading"},
		},
		{
			name: "nothing",
			html: "<p>plain</p>",
			want: Meta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Metadata(tt.html); got != tt.want {
				t.Errorf("Metadata() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeta_IsZero(t *testing.T) {
	t.Parallel()

	if !(Meta{}).IsZero() {
		t.Error("zero Meta should report IsZero")
	}
	if (Meta{Lang: "en"}).IsZero() {
		t.Error("Meta with lang should not report IsZero")
	}
}
