package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
	"github.com/alnah/go-mailicons/internal/hints"
)

// Sentinel errors for the fetch command.
var (
	ErrDestination = errors.New("destination not usable")
	ErrUnknownIcon = errors.New("icon not in table")
)

// runFetch downloads the SVG asset of every table icon, or of the icons
// named as arguments.
func runFetch(ctx context.Context, args []string, env *Environment) error {
	flags, names, err := parseFetchFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFetchFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Fetch.Dest == "" {
		return fmt.Errorf("%w: --dest (or fetch.dest in config)", ErrMissingValue)
	}

	table, err := loadTable(cfg.Icons.Table, cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	if len(names) > 0 {
		if table, err = subTable(table, names); err != nil {
			return err
		}
	}

	opts := []mailicons.FetchOption{mailicons.WithSkipExisting(flags.skipExisting)}
	if env.HTTPClient != nil {
		opts = append(opts, mailicons.WithHTTPClient(env.HTTPClient))
	}
	if len(cfg.Fetch.Sources) > 0 {
		opts = append(opts, mailicons.WithSources(cfg.Fetch.Sources...))
	}
	fetcher, err := mailicons.NewFetcher(opts...)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Fetching %d icons into %s from %d sources\n", table.Len(), cfg.Fetch.Dest, len(fetcher.Sources()))
	}

	results, err := fetcher.Fetch(ctx, table, cfg.Fetch.Dest)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDestination, err)
	}
	printFetchResults(results, flags.common.quiet, flags.common.verbose, env)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	return nil
}

// subTable keeps the named icons of table, in argument order.
// Repeated names are fetched once.
func subTable(table *mailicons.IconTable, names []string) (*mailicons.IconTable, error) {
	entries := make([]mailicons.IconEntry, 0, len(names))
	var missing []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		path, ok := table.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		entries = append(entries, mailicons.IconEntry{Name: name, Path: path})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w %q: %s%s", ErrUnknownIcon, table.Name(), strings.Join(missing, ", "), hints.ForUnknownIcons(table.Name()))
	}
	return mailicons.NewIconTable(entries)
}

// printFetchResults outputs one line per icon and a summary.
func printFetchResults(results []mailicons.FetchResult, quiet, verbose bool, env *Environment) {
	var downloaded, skipped, failed int

	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Name, r.Err)
			continue
		case r.Skipped:
			skipped++
		default:
			downloaded++
		}

		if quiet {
			continue
		}
		switch {
		case r.Skipped:
			fmt.Fprintf(env.Stdout, "Skipped %s (exists)\n", r.Path)
		case verbose:
			fmt.Fprintf(env.Stdout, "Downloaded %s <- %s\n", r.Path, r.Source)
		default:
			fmt.Fprintf(env.Stdout, "Downloaded %s\n", r.Path)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d downloaded, %d skipped, %d failed\n", downloaded, skipped, failed)
	}
	if failed > 0 {
		fmt.Fprintf(env.Stderr, "warning: %d icons could not be downloaded%s\n", failed, hints.ForFetchFailure())
	}
}

// mergeFetchFlags applies CLI flags over config values. CLI wins.
// --source replaces the configured list rather than extending it.
func mergeFetchFlags(f *fetchFlags, cfg *config.Config) {
	mergeTableFlags(f.set, f.tables, cfg)
	if f.set.has("dest") {
		cfg.Fetch.Dest = f.dest
	}
	if f.set.has("source") {
		cfg.Fetch.Sources = f.sources
	}
}
