package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	dir     string
	workers int
	stdout  bool
}

// markdownFlags holds Markdown flavour flags.
type markdownFlags struct {
	bullet string
	strong string
	em     string
}

// extractFlags holds content narrowing flags.
type extractFlags struct {
	selector    string
	stripNoise  bool
	mainContent bool
}

// fetchFlags holds URL retrieval flags.
type fetchFlags struct {
	render    bool
	timeout   time.Duration
	userAgent string
}

// documentFlags holds flags for what is written around the Markdown.
type documentFlags struct {
	frontMatter  bool
	preview      bool
	previewStyle string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   outputFlags
	markdown markdownFlags
	extract  extractFlags
	fetch    fetchFlags
	document documentFlags
}

// flagGroup is a titled set of flags, listed together in help output.
type flagGroup struct {
	title string
	fs    *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and sizes")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.stdout, "stdout", false, "write Markdown to stdout instead of files")
}

// addMarkdownFlags adds Markdown flavour flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.StringVar(&f.bullet, "bullet", "", "unordered list marker: *, -, +")
	fs.StringVar(&f.strong, "strong", "", "strong delimiter: **, __")
	fs.StringVar(&f.em, "em", "", "emphasis delimiter: *, _")
}

// addExtractFlags adds extraction flags to a FlagSet.
func addExtractFlags(fs *flag.FlagSet, f *extractFlags) {
	fs.StringVar(&f.selector, "selector", "", "convert only the first element matching this CSS selector")
	fs.BoolVar(&f.stripNoise, "strip-noise", false, "drop scripts, styles, navigation and similar chrome")
	fs.BoolVar(&f.mainContent, "main-content", false, "convert only the first main, article or body element")
}

// addFetchFlags adds URL fetching flags to a FlagSet.
func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.BoolVar(&f.render, "render", false, "load URLs in headless Chrome before converting")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-page fetch timeout, e.g. 30s, 2m")
	fs.StringVar(&f.userAgent, "user-agent", "", "User-Agent header for plain HTTP fetches")
}

// addDocumentFlags adds document output flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.frontMatter, "front-matter", false, "prefix output with YAML front matter")
	fs.BoolVar(&f.preview, "preview", false, "also write an HTML preview of the Markdown")
	fs.StringVar(&f.previewStyle, "preview-style", "", "code highlighting style for previews")
}

// convertFlagGroups builds the convert command's flags, one FlagSet per
// help section.
func convertFlagGroups(f *convertFlags) []flagGroup {
	newSet := func(title string, add func(fs *flag.FlagSet)) flagGroup {
		fs := flag.NewFlagSet(title, flag.ContinueOnError)
		add(fs)
		return flagGroup{title: title, fs: fs}
	}
	return []flagGroup{
		newSet("Input/Output", func(fs *flag.FlagSet) {
			addOutputFlags(fs, &f.output)
			addCommonFlags(fs, &f.common)
		}),
		newSet("Markdown", func(fs *flag.FlagSet) { addMarkdownFlags(fs, &f.markdown) }),
		newSet("Extraction", func(fs *flag.FlagSet) { addExtractFlags(fs, &f.extract) }),
		newSet("Fetching", func(fs *flag.FlagSet) { addFetchFlags(fs, &f.fetch) }),
		newSet("Document", func(fs *flag.FlagSet) { addDocumentFlags(fs, &f.document) }),
	}
}
