package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/fileutil"
	"github.com/alnah/go-mailicons/internal/hints"
)

// ErrInterrupted is returned when a signal stopped the batch early.
var ErrInterrupted = errors.New("interrupted")

// transformFunc rewrites one document.
type transformFunc func(text string) mailicons.RewriteResult

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	Path     string
	Changed  bool
	Replaced int
	Unknown  []string
	Err      error
	Duration time.Duration
}

// batchOptions controls a batch run.
type batchOptions struct {
	workers int
	dryRun  bool
}

// processBatch runs transform over files with a fixed set of workers.
// Results are indexed like files. Once ctx is done, files not yet
// started are reported with ctx.Err().
func processBatch(ctx context.Context, files []string, transform transformFunc, opts batchOptions) []FileResult {
	if len(files) == 0 {
		return nil
	}

	workers := resolveWorkers(opts.workers, len(files))
	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = FileResult{Path: files[idx], Err: err}
					continue
				}
				results[idx] = processFile(files[idx], transform, opts.dryRun)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile reads, rewrites and, when the content changed, replaces one file.
func processFile(path string, transform transformFunc, dryRun bool) FileResult {
	start := time.Now()
	result := FileResult{Path: path}

	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", mailicons.ErrReadDocument, err)
		result.Duration = time.Since(start)
		return result
	}

	res := transform(string(content))
	result.Changed = res.Changed
	result.Replaced = res.Replaced
	result.Unknown = res.Unknown

	if res.Changed && !dryRun {
		if err := fileutil.WriteFileAtomic(path, []byte(res.Text)); err != nil {
			result.Err = fmt.Errorf("%w: %v", mailicons.ErrWriteDocument, err)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds per-outcome file counts.
type ResultSummary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// countResults tallies changed, unchanged and failed files.
func countResults(results []FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// collectUnknown returns distinct unknown icon names across results,
// in first-seen order.
func collectUnknown(results []FileResult) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range results {
		for _, name := range r.Unknown {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// outputOptions controls result printing.
type outputOptions struct {
	quiet     bool
	verbose   bool
	dryRun    bool
	tableName string // set by commands that look up icons
}

// printResultsWithWriter outputs per-file lines and the summary on stdout,
// failures and hints on stderr. The summary ends with the unknown icon names.
func printResultsWithWriter(results []FileResult, opts outputOptions, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Path, r.Err)
			continue
		}

		if opts.quiet {
			continue
		}

		var line string
		switch {
		case r.Changed && opts.dryRun:
			line = fmt.Sprintf("Would update %s (%d replaced)", r.Path, r.Replaced)
		case r.Changed:
			line = fmt.Sprintf("Updated %s (%d replaced)", r.Path, r.Replaced)
		default:
			line = fmt.Sprintf("No changes %s", r.Path)
		}
		if opts.verbose {
			line += fmt.Sprintf(" [%v]", r.Duration.Round(time.Microsecond))
			if len(r.Unknown) > 0 {
				line += " unknown: " + strings.Join(r.Unknown, ", ")
			}
		}
		fmt.Fprintln(env.Stdout, line)
	}

	if !opts.quiet {
		fmt.Fprintf(env.Stdout, "\n%d changed, %d unchanged, %d failed\n", summary.Changed, summary.Unchanged, summary.Failed)
	}

	// The unknown list belongs to the summary and survives --quiet.
	if unknown := collectUnknown(results); len(unknown) > 0 {
		fmt.Fprintf(env.Stdout, "unknown icons: %s\n", strings.Join(unknown, ", "))
		if !opts.quiet && opts.tableName != "" {
			fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForUnknownIcons(opts.tableName), "\n"))
		}
	}

	return summary
}

// runBatch processes files, prints the results and reports interruption.
func runBatch(ctx context.Context, files []string, transform transformFunc, workers int, out outputOptions, env *Environment) error {
	start := env.Now()
	if out.verbose {
		fmt.Fprintf(env.Stderr, "Processing %d files with %d workers\n", len(files), resolveWorkers(workers, len(files)))
	}

	results := processBatch(ctx, files, transform, batchOptions{workers: workers, dryRun: out.dryRun})
	printResultsWithWriter(results, out, env)

	if out.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	return nil
}
