package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/extract"
	"github.com/alnah/go-html2md/internal/fetch"
	"github.com/alnah/go-html2md/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxAutoWorkers caps the automatic worker count.
const maxAutoWorkers = 8

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input html2md.Input) (*html2md.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*html2md.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	Source     string
	OutputPath string // empty when written to stdout
	Markdown   string // set for stdout jobs
	Bytes      int
	Err        error
	Duration   time.Duration
}

// batchParams groups what every job in a batch shares.
type batchParams struct {
	converter CLIConverter
	fetcher   fetch.Fetcher // nil when no input is a URL
	cfg       *config.Config
	now       time.Time
	stdin     io.Reader
}

// resolveWorkers picks the worker count: an explicit value wins, otherwise
// half of GOMAXPROCS (adjusted by automaxprocs for containers), clamped to
// 1..maxAutoWorkers.
func resolveWorkers(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	n := runtime.GOMAXPROCS(0) / 2
	return max(1, min(n, maxAutoWorkers))
}

// convertBatch processes jobs concurrently. One Converter serves every
// worker. Results keep the order of jobs.
func convertBatch(ctx context.Context, workers int, jobs []Job, p *batchParams) []ConversionResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(jobs))
	results := make([]ConversionResult, len(jobs))
	queue := make(chan int, len(jobs))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{Source: jobs[idx].Source, Err: err}
					continue
				}
				results[idx] = convertJob(ctx, jobs[idx], p)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// convertJob reads, converts and writes a single job.
func convertJob(ctx context.Context, job Job, p *batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{Source: job.Source, OutputPath: job.OutputPath}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := readSource(ctx, job, p)
	if err != nil {
		return finish(err)
	}

	meta := extract.Metadata(content)
	title := meta.Title
	if title == "" {
		title = sourceTitle(job)
	}

	converted, err := p.converter.Convert(ctx, html2md.Input{
		HTML:        content,
		Selector:    p.cfg.Extract.Selector,
		StripNoise:  p.cfg.Extract.StripNoise,
		MainContent: p.cfg.Extract.MainContent,
		Preview:     p.cfg.Preview.Enabled && job.OutputPath != "",
		Title:       title,
	})
	if err != nil {
		return finish(err)
	}

	doc := converted.Markdown + "\n"
	if p.cfg.FrontMatter.Enabled {
		fm, err := buildFrontMatter(meta, job, p.now)
		if err != nil {
			return finish(err)
		}
		doc = fm + "\n" + doc
	}
	result.Bytes = len(doc)

	if job.OutputPath == "" {
		result.Markdown = doc
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
	}
	if err := fileutil.WriteFileAtomic(job.OutputPath, []byte(doc), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}
	if converted.PreviewHTML != nil {
		previewPath := fileutil.ReplaceExt(job.OutputPath, ".html")
		if err := fileutil.WriteFileAtomic(previewPath, converted.PreviewHTML, filePermissions); err != nil {
			return finish(fmt.Errorf("%w: preview: %w", ErrWriteOutput, err))
		}
	}
	return finish(nil)
}

// readSource loads the HTML for job.
func readSource(ctx context.Context, job Job, p *batchParams) (string, error) {
	switch job.Kind {
	case sourceURL:
		if p.fetcher == nil {
			return "", fmt.Errorf("%w: no fetcher for %s", ErrReadInput, job.Source)
		}
		page, err := p.fetcher.Fetch(ctx, job.Source)
		if err != nil {
			return "", err
		}
		return page.HTML, nil

	case sourceStdin:
		data, err := io.ReadAll(p.stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return string(data), nil

	default:
		data, err := os.ReadFile(job.Source) // #nosec G304 -- discovered path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return string(data), nil
	}
}

// sourceTitle derives a preview title from the job source.
func sourceTitle(job Job) string {
	switch job.Kind {
	case sourceFile:
		base := filepath.Base(job.Source)
		return strings.TrimSuffix(base, filepath.Ext(base))
	case sourceURL:
		return job.Source
	}
	return "stdin"
}

// ResultSummary holds the outcome counts of a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Bytes += r.Bytes
	}
	return summary
}

// printResults writes stdout documents and progress lines. Progress goes
// to stderr when Markdown is being written to stdout. A single failed job
// is left for the caller to report. Returns the number of failures.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	progress := env.Stdout
	for _, r := range results {
		if r.Err == nil && r.OutputPath == "" {
			progress = env.Stderr
			break
		}
	}

	first := true
	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.Source, withHint(r.Err))
			}
			continue
		}

		if r.OutputPath == "" {
			if !first {
				fmt.Fprintln(env.Stdout)
			}
			fmt.Fprint(env.Stdout, r.Markdown)
			first = false
			continue
		}

		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(progress, "%s -> %s (%v, %s)\n", r.Source, r.OutputPath,
				r.Duration.Round(time.Millisecond), humanize.Bytes(uint64(r.Bytes)))
		} else {
			fmt.Fprintf(progress, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(progress, "\n%s succeeded, %s failed, %s written\n",
			humanize.Comma(int64(summary.Succeeded)),
			humanize.Comma(int64(summary.Failed)),
			humanize.Bytes(uint64(summary.Bytes)))
	}

	return summary.Failed
}

// batchError reports failures in a multi-job batch. It unwraps to the
// first failure so exit codes follow its category.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error { return e.first }

// batchErr builds the error returned for a finished batch, or nil.
func batchErr(results []ConversionResult, failed int) error {
	if failed == 0 {
		return nil
	}
	var first error
	for _, r := range results {
		if r.Err != nil {
			first = r.Err
			break
		}
	}
	if len(results) == 1 {
		return fmt.Errorf("%s: %w", results[0].Source, first)
	}
	return &batchError{failed: failed, total: len(results), first: first}
}
