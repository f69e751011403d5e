package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
)

// ErrMissingValue is returned when a required flag has no value in
// either the command line or the config.
var ErrMissingValue = errors.New("missing required value")

// runURLs moves icon src attributes from one prefix to another.
func runURLs(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseURLsFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if err := mergeURLsFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.URLs.From == "" {
		return fmt.Errorf("%w: --from (or urls.from in config)", ErrMissingValue)
	}
	if cfg.URLs.To == "" {
		return fmt.Errorf("%w: --to (or urls.to in config)", ErrMissingValue)
	}

	files, err := discoverFiles(resolvePatterns(positional, cfg))
	if err != nil {
		return err
	}

	from, to := cfg.URLs.From, cfg.URLs.To
	transform := func(text string) mailicons.RewriteResult {
		return mailicons.RewriteSrcPrefix(text, from, to)
	}

	return runBatch(ctx, files, transform, cfg.Batch.Workers, outputOptions{
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
		dryRun:  flags.batch.dryRun,
	}, env)
}

// mergeURLsFlags applies CLI flags over config values. CLI wins.
func mergeURLsFlags(f *urlsFlags, cfg *config.Config) error {
	if f.set.has("from") {
		cfg.URLs.From = f.from
	}
	if f.set.has("to") {
		cfg.URLs.To = f.to
	}
	return mergeWorkers(f.set, f.batch, cfg)
}
