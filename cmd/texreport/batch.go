package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-texreport/internal/config"
	"github.com/alnah/go-texreport/internal/hints"
)

// BuildResult holds the outcome of a single manifest build.
type BuildResult struct {
	ManifestPath string
	TexPath      string
	StylePath    string
	Err          error
	Duration     time.Duration
}

// batchError reports the failed builds of a batch. It unwraps to every
// failure so exit codes follow their causes.
type batchError struct {
	failed, total int
	errs          []error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d builds failed", e.failed, e.total)
}

func (e *batchError) Unwrap() []error { return e.errs }

// buildBatch builds jobs concurrently with the given number of workers.
// Each job gets its own Document; results keep the job order. Jobs not yet
// started when ctx is canceled fail with the context error.
func buildBatch(ctx context.Context, jobs []buildJob, params *buildParams, workers int) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(jobs))
	results := make([]BuildResult, len(jobs))
	queue := make(chan int, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						ManifestPath: jobs[idx].ManifestPath,
						Err:          ctx.Err(),
					}
					continue
				}
				results[idx] = buildOne(jobs[idx], params)
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

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for
// containers), capped at config.MaxWorkers and the number of jobs.
func resolveWorkers(configured, jobs int) int {
	n := configured
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, config.MaxWorkers, jobs))
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed builds.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each build and returns a *batchError when any failed.
// A single successful build also prints how to compile it.
func printResults(results []BuildResult, flags commonFlags, env *Environment) error {
	summary := countResults(results)

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.ManifestPath, r.Err, hintFor(r.Err))
			}
			continue
		}

		if flags.quiet {
			continue
		}
		if flags.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.ManifestPath, r.TexPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.TexPath)
		}
		if len(results) == 1 {
			style, _ := os.ReadFile(r.StylePath) // #nosec G304 -- file just written
			fmt.Fprintln(env.Stdout, strings.TrimPrefix(hints.ForCompile(r.TexPath, string(style)), "\n"))
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	switch {
	case summary.Failed == 0:
		return nil
	case len(results) == 1:
		return fmt.Errorf("%s: %w", results[0].ManifestPath, errs[0])
	default:
		return &batchError{failed: summary.Failed, total: len(results), errs: errs}
	}
}
