package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alnah/go-html2md/internal/fileutil"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoHTMLFiles        = errors.New("no HTML files found")
	ErrInvalidExtension   = errors.New("file must have .html, .htm or .xhtml extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// sourceKind tells where a job's HTML comes from.
type sourceKind int

const (
	sourceFile sourceKind = iota
	sourceURL
	sourceStdin
)

// Job is one document to convert.
type Job struct {
	Source     string // file path, URL, or "-"
	Kind       sourceKind
	OutputPath string // empty: write to stdout
}

// discoverOptions controls how inputs map to outputs.
type discoverOptions struct {
	outputDir  string // file or directory; empty = next to the source
	extension  string // output extension including the dot
	toStdout   bool
	stdinPiped bool
	defaultDir string // used when args is empty and stdin is a terminal
}

// discoverJobs expands the command-line inputs into jobs. Directories are
// walked recursively for HTML files; URLs and stdin become single jobs.
func discoverJobs(args []string, opts discoverOptions) ([]Job, error) {
	if len(args) == 0 {
		switch {
		case opts.stdinPiped:
			args = []string{stdinArg}
		case opts.defaultDir != "":
			args = []string{opts.defaultDir}
		default:
			return nil, ErrNoInput
		}
	}

	// A single file may name its output file directly.
	singleOutput := len(args) == 1 && strings.HasSuffix(opts.outputDir, opts.extension)

	var jobs []Job
	for _, arg := range args {
		switch {
		case arg == stdinArg:
			job := Job{Source: stdinArg, Kind: sourceStdin}
			if singleOutput && !opts.toStdout {
				job.OutputPath = opts.outputDir
			}
			jobs = append(jobs, job)

		case fileutil.IsURL(arg):
			job := Job{Source: arg, Kind: sourceURL}
			if !opts.toStdout {
				job.OutputPath = urlOutputPath(arg, opts, singleOutput)
			}
			jobs = append(jobs, job)

		default:
			found, err := discoverFiles(arg, opts, singleOutput)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, found...)
		}
	}
	return jobs, nil
}

// discoverFiles finds the HTML files under path.
func discoverFiles(path string, opts discoverOptions, singleOutput bool) ([]Job, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	newJob := func(p, baseDir string) Job {
		job := Job{Source: p, Kind: sourceFile}
		switch {
		case opts.toStdout:
		case singleOutput && baseDir == "":
			job.OutputPath = opts.outputDir
		default:
			job.OutputPath = resolveOutputPath(p, opts.outputDir, baseDir, opts.extension)
		}
		return job
	}

	if !info.IsDir() {
		if !fileutil.IsHTMLFile(path) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
		}
		return []Job{newJob(path, "")}, nil
	}

	var jobs []Job
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if d.IsDir() || !fileutil.IsHTMLFile(p) {
			return nil
		}
		jobs = append(jobs, newJob(p, path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHTMLFiles, path)
	}
	return jobs, nil
}

// resolveOutputPath determines the Markdown path for an HTML file,
// mirroring the input tree below baseInputDir when outputDir is set.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	if outputDir == "" {
		return fileutil.ReplaceExt(inputPath, ext)
	}

	base := fileutil.ReplaceExt(filepath.Base(inputPath), ext)
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), base)
		}
	}
	return filepath.Join(outputDir, base)
}

// urlOutputPath names the Markdown file for a URL after its host and path.
func urlOutputPath(rawURL string, opts discoverOptions, singleOutput bool) string {
	if singleOutput {
		return opts.outputDir
	}
	dir := opts.outputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, urlSlug(rawURL)+opts.extension)
}

// urlSlug turns a URL into a file name: host and path, lowercased, with
// runs of other characters collapsed to "-" and any HTML extension dropped.
//
//   - "https://example.com/"              -> "example-com"
//   - "https://example.com/blog/post.html" -> "example-com-blog-post"
func urlSlug(rawURL string) string {
	name := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p := u.Path
		if fileutil.IsHTMLFile(p) {
			p = strings.TrimSuffix(p, filepath.Ext(p))
		}
		name = u.Host + p
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "index"
	}
	return slug
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n, maxWorkers int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
