package html2md

// Notes:
// - Convert is tested with a mock preview renderer to isolate it from
//   goldmark; one test renders real output through goldmark to check the
//   produced Markdown means what it should
// - Custom rules demonstrate side-channel isolation between siblings
// - The concurrency test shares one Converter across goroutines; run with
//   -race to make it meaningful

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPreviewer struct {
	called  bool
	title   string
	content string
	output  string
	err     error
}

func (m *mockPreviewer) ToHTML(ctx context.Context, title, content string) (string, error) {
	m.called = true
	m.title = title
	m.content = content
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

// withPreviewer injects a preview renderer (test only).
func withPreviewer(p previewRenderer) Option {
	return func(c *Converter) { c.previewer = p }
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewConverter_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		input   string
		want    string
		wantErr error
	}{
		{"defaults", nil, "<ul><li><b>a</b> <i>b</i></li></ul>", "* **a** *b*", nil},
		{"dash bullet", []Option{WithBulletCharacter("-")}, "<ul><li>a</li></ul>", "- a", nil},
		{"plus bullet", []Option{WithBulletCharacter("+")}, "<ul><li>a</li></ul>", "+ a", nil},
		{"underscore strong", []Option{WithStrongDelimiter("__")}, "<b>a</b>", "__a__", nil},
		{"underscore em", []Option{WithEmDelimiter("_")}, "<em>a</em>", "_a_", nil},
		{
			"whole options",
			[]Option{WithOptions(Options{BulletCharacter: "-", StrongDelimiter: "__", EmDelimiter: "_", LinkStyle: LinkStyleInline})},
			"<ul><li><b>a</b></li></ul>",
			"- __a__",
			nil,
		},
		{"invalid bullet", []Option{WithBulletCharacter("#")}, "", "", ErrInvalidBullet},
		{"invalid strong", []Option{WithStrongDelimiter("*")}, "", "", ErrInvalidDelimiter},
		{"invalid em", []Option{WithEmDelimiter("~")}, "", "", ErrInvalidDelimiter},
		{"invalid link style", []Option{WithLinkStyle("referenced")}, "", "", ErrInvalidLinkStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewConverter() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			got, err := conv.ConvertString(tt.input)
			if err != nil {
				t.Fatalf("ConvertString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewConverter_Rules(t *testing.T) {
	t.Parallel()

	mark := func(el *Element, ctx Context) string {
		return "==" + ctx.ProcessChildren(el) + "=="
	}

	tests := []struct {
		name  string
		opts  []Option
		input string
		want  string
	}{
		{"custom tag", []Option{WithRule("mark", mark)}, "<p>a <mark>b</mark></p>", "a ==b=="},
		{"override default", []Option{WithRule("B", mark)}, "<b>x</b>", "==x=="},
		{"last rule wins", []Option{WithRule("b", stubRule("1")), WithRule("b", stubRule("2"))}, "<b>x</b>", "2"},
		{"without rule", []Option{WithoutRule("strong")}, "<strong>x</strong> <b>y</b>", "x **y**"},
		{"empty registry", []Option{WithRegistry(NewRegistry())}, "<h1>a</h1><p>b</p>", "ab"},
		{
			"registry then rule",
			[]Option{WithRegistry(NewRegistry()), WithRule("p", ParagraphRule)},
			"<p>a</p><p>b</p>",
			"a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			got, err := conv.ConvertString(tt.input)
			if err != nil {
				t.Fatalf("ConvertString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithRegistry_DoesNotShareRegistry(t *testing.T) {
	t.Parallel()

	shared := NewRegistry()
	if _, err := NewConverter(WithRegistry(shared), WithRule("x", stubRule("x"))); err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	if _, ok := shared.Lookup("x"); ok {
		t.Error("WithRule() leaked into the registry passed to WithRegistry()")
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty tag", func() { WithRule(" ", stubRule("")) }},
		{"nil rule", func() { WithRule("p", nil) }},
		{"nil registry", func() { WithRegistry(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

// ---------------------------------------------------------------------------
// ConvertNode
// ---------------------------------------------------------------------------

func TestConverter_ConvertNode(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"body only", "<html><head><title>T</title></head><body><p>x</p></body></html>", "x"},
		{"no body uses whole tree", "<title>T</title><p>x</p>", "T\n\nx"},
		{"first body wins", "<body><p>a</p></body><body><p>b</p></body>", "a"},
		{"empty document", "", ""},
		{"whitespace document", " \n\t ", ""},
		{"edges trimmed", "<p>  a  </p>\n\n", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if got := conv.ConvertNode(root); got != tt.want {
				t.Errorf("ConvertNode() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := conv.ConvertNode(nil); got != "" {
		t.Errorf("ConvertNode(nil) = %q, want empty", got)
	}
}

func TestConverter_ConvertNode_BuiltTree(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	b.OpenTag("p", nil)
	b.Text("Hello ")
	b.OpenTag("b", nil)
	b.Text("World")
	b.CloseTag("b")
	b.CloseTag("p")

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	if got := conv.ConvertNode(b.Root()); got != "Hello **World**" {
		t.Errorf("ConvertNode() = %q, want %q", got, "Hello **World**")
	}
}

// ---------------------------------------------------------------------------
// Side Channel
// ---------------------------------------------------------------------------

func TestConverter_SideChannelIsolation(t *testing.T) {
	t.Parallel()

	key := NewKey[string]("label")

	box := func(el *Element, ctx Context) string {
		return "[" + WithValue(ctx, key, el.AttrOr("data-v", "")).ProcessChildren(el) + "]"
	}
	read := func(_ *Element, ctx Context) string {
		v, ok := Value(ctx, key)
		if !ok {
			return "none"
		}
		return "Value: " + v
	}
	split := func(el *Element, ctx Context) string {
		return WithValue(ctx, key, "1").ProcessChildren(el) + " | " + WithValue(ctx, key, "2").ProcessChildren(el)
	}

	conv, err := NewConverter(WithRule("x-box", box), WithRule("x-read", read), WithRule("x-split", split))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "siblings",
			input: `<x-box data-v="1"><x-read></x-read></x-box><x-box data-v="2"><x-read></x-read></x-box><x-read></x-read>`,
			want:  "[Value: 1][Value: 2]none",
		},
		{
			name:  "same element twice",
			input: "<x-split><x-read></x-read></x-split>",
			want:  "Value: 1 | Value: 2",
		},
		{
			name:  "inner shadows outer",
			input: `<x-box data-v="out"><x-box data-v="in"><x-read></x-read></x-box><x-read></x-read></x-box>`,
			want:  "[[Value: in]Value: out]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ConvertString(tt.input)
			if err != nil {
				t.Fatalf("ConvertString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Convert
// ---------------------------------------------------------------------------

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	page := `<html><body><nav><a href="/">Home</a></nav>` +
		`<article class="post"><h1>Title</h1><p>Body <em>text</em></p></article>` +
		`<script>track()</script></body></html>`

	tests := []struct {
		name    string
		input   Input
		want    string
		wantErr error
	}{
		{"full page", Input{HTML: page}, "[Home](/)\n\n# Title\n\nBody *text*\n\ntrack()", nil},
		{"selector", Input{HTML: page, Selector: "article.post"}, "# Title\n\nBody *text*", nil},
		{"strip noise", Input{HTML: page, StripNoise: true}, "# Title\n\nBody *text*", nil},
		{"main content", Input{HTML: page, MainContent: true}, "# Title\n\nBody *text*", nil},
		{"empty", Input{HTML: ""}, "", ErrEmptyHTML},
		{"blank", Input{HTML: " \n "}, "", ErrEmptyHTML},
		{"invalid selector", Input{HTML: page, Selector: "a[["}, "", ErrInvalidSelector},
		{"selector not found", Input{HTML: page, Selector: "table"}, "", ErrSelectorNotFound},
	}

	conv, err := NewConverter(withPreviewer(&mockPreviewer{}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if res != nil {
					t.Error("Convert() should return nil result on error")
				}
				return
			}
			if res.Markdown != tt.want {
				t.Errorf("Markdown = %q, want %q", res.Markdown, tt.want)
			}
			if res.PreviewHTML != nil {
				t.Error("PreviewHTML should be nil without Preview")
			}
		})
	}
}

func TestConverter_Convert_ExtractErrorsWrapped(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	_, err = conv.Convert(context.Background(), Input{HTML: "<p>x</p>", Selector: "div"})
	if !errors.Is(err, ErrExtract) {
		t.Errorf("Convert() error = %v, want ErrExtract", err)
	}
}

func TestConverter_Convert_Preview(t *testing.T) {
	t.Parallel()

	mock := &mockPreviewer{output: "<html>ok</html>"}
	conv, err := NewConverter(withPreviewer(mock))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	res, err := conv.Convert(context.Background(), Input{HTML: "<h1>T</h1>", Preview: true, Title: "Doc"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !mock.called {
		t.Fatal("previewer not called")
	}
	if mock.content != "# T" || mock.title != "Doc" {
		t.Errorf("previewer got title %q content %q", mock.title, mock.content)
	}
	if string(res.PreviewHTML) != "<html>ok</html>" {
		t.Errorf("PreviewHTML = %q", res.PreviewHTML)
	}
}

func TestConverter_Convert_PreviewError(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(withPreviewer(&mockPreviewer{err: errors.New("boom")}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	_, err = conv.Convert(context.Background(), Input{HTML: "<p>x</p>", Preview: true})
	if !errors.Is(err, ErrPreview) {
		t.Errorf("Convert() error = %v, want ErrPreview", err)
	}
}

func TestConverter_Convert_Canceled(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = conv.Convert(ctx, Input{HTML: "<p>x</p>"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConverter_Convert_RecoversRulePanic(t *testing.T) {
	t.Parallel()

	intKey := NewKey[int]("n")
	strKey := NewKey[string]("n")

	set := func(el *Element, ctx Context) string {
		return WithValue(ctx, intKey, 1).ProcessChildren(el)
	}
	get := func(_ *Element, ctx Context) string {
		v, _ := Value(ctx, strKey)
		return v
	}
	boom := func(*Element, Context) string { panic("boom") }

	conv, err := NewConverter(WithRule("x-set", set), WithRule("x-get", get), WithRule("x-boom", boom))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	tests := []struct {
		name     string
		input    string
		wantErrs []error
	}{
		{"type mismatch", "<x-set><x-get></x-get></x-set>", []error{ErrInternal, ErrValueType}},
		{"plain panic", "<x-boom></x-boom>", []error{ErrInternal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := conv.Convert(context.Background(), Input{HTML: tt.input})
			if res != nil {
				t.Error("Convert() should return nil result after a panic")
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Convert() error = %v, want %v", err, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Rendered Output
// ---------------------------------------------------------------------------

func TestConverter_OutputRendersAsIntended(t *testing.T) {
	t.Parallel()

	input := `<h2>Report</h2>
<p>Plain *stars* and <code>a_b</code>.</p>
<table><thead><tr><th>Name</th><th>Value</th></tr></thead>
<tbody><tr><td>x|y</td><td>1</td></tr></tbody></table>
<pre><code class="language-go">fmt.Println("hi")</code></pre>
<ul><li>one<ul><li>two</li></ul></li></ul>`

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	md, err := conv.ConvertString(input)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	var buf bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf); err != nil {
		t.Fatalf("goldmark Convert() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<h2>Report</h2>",
		"Plain *stars* and <code>a_b</code>.",
		"<th>Name</th>",
		"<td>x|y</td>",
		`<code class="language-go">`,
		"<li>one\n<ul>\n<li>two</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered HTML missing %q\nmarkdown:\n%s\nhtml:\n%s", want, md, out)
		}
	}
	if strings.Contains(out, "<em>") {
		t.Errorf("escaped asterisks should not render as emphasis:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

func TestConverter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	const input = "<ul><li>a<ul><li>b</li></ul></li></ul><table><tr><th>h</th></tr></table>"
	want, _ := conv.ConvertString(input)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.ConvertString(input)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent ConvertString() = %q, want %q", got, want)
	}
}

func BenchmarkConverter_ConvertString(b *testing.B) {
	conv, err := NewConverter()
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat(`<p>Some <b>bold</b> and <a href="/x">link</a> text.</p><ul><li>a</li><li>b</li></ul>`, 100)

	for b.Loop() {
		if _, err := conv.ConvertString(input); err != nil {
			b.Fatal(err)
		}
	}
}
