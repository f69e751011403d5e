package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// templateWatcher reprocesses template files as they are saved.
type templateWatcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	dirs     []string
}

// newTemplateWatcher watches the directories the patterns point into.
// Patterns with a glob in their directory part watch every matching directory
// that exists now.
func newTemplateWatcher(patterns []string) (*templateWatcher, error) {
	dirs, err := watchDirs(patterns)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	cleaned := make([]string, len(patterns))
	for i, p := range patterns {
		cleaned[i] = filepath.Clean(p)
	}
	return &templateWatcher{watcher: w, patterns: cleaned, dirs: dirs}, nil
}

// Close stops watching.
func (tw *templateWatcher) Close() error {
	return tw.watcher.Close()
}

// run processes each written or created file matching a pattern until ctx
// is done. Writes made by run itself produce a second event that finds
// nothing left to change.
func (tw *templateWatcher) run(ctx context.Context, transform transformFunc, out outputOptions, env *Environment) error {
	if !out.quiet {
		fmt.Fprintf(env.Stderr, "Watching %s (Ctrl+C to stop)\n", strings.Join(tw.dirs, ", "))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !tw.matches(ev.Name) {
				continue
			}
			if info, err := os.Stat(ev.Name); err != nil || !info.Mode().IsRegular() {
				continue
			}
			printWatchResult(processFile(ev.Name, transform, out.dryRun), out, env)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "warning: watcher: %v\n", err)
		}
	}
}

// matches reports whether path matches one of the watched patterns.
func (tw *templateWatcher) matches(path string) bool {
	path = filepath.Clean(path)
	for _, p := range tw.patterns {
		if ok, _ := filepath.Match(p, path); ok {
			return true
		}
	}
	return false
}

// printWatchResult reports a reprocessed file. Unchanged files are silent.
func printWatchResult(r FileResult, out outputOptions, env *Environment) {
	switch {
	case r.Err != nil:
		fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Path, r.Err)
	case !r.Changed || out.quiet:
	case out.dryRun:
		fmt.Fprintf(env.Stdout, "Would update %s (%d replaced)\n", r.Path, r.Replaced)
	default:
		fmt.Fprintf(env.Stdout, "Updated %s (%d replaced)\n", r.Path, r.Replaced)
	}
	if len(r.Unknown) > 0 {
		fmt.Fprintf(env.Stdout, "unknown icons in %s: %s\n", r.Path, strings.Join(r.Unknown, ", "))
	}
}

// watchDirs returns the distinct existing directories of patterns.
func watchDirs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range patterns {
		candidates, err := filepath.Glob(filepath.Dir(filepath.Clean(p)))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		for _, dir := range candidates {
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() || seen[dir] {
				continue
			}
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: no directory to watch for %s", ErrNoInput, strings.Join(patterns, ", "))
	}
	return dirs, nil
}
