package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-mailicons/internal/config"
	"github.com/alnah/go-mailicons/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input files matched")
	ErrInvalidPattern     = errors.New("invalid glob pattern")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// resolvePatterns returns the positional patterns, or input.patterns
// from the config when none were given.
func resolvePatterns(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Input.Patterns
}

// discoverFiles expands glob patterns into regular files.
// Files keep pattern order, sorted within each pattern, without duplicates.
func discoverFiles(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput(nil))
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			path := filepath.Clean(m)
			if seen[path] {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput(patterns))
	}
	return files, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers turns a configured worker count into the number of
// goroutines to start. 0 uses GOMAXPROCS, as set by automaxprocs.
func resolveWorkers(n, files int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > files {
		n = files
	}
	if n < 1 {
		n = 1
	}
	return n
}
