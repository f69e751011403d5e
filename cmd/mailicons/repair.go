package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
)

// runRepair cleans icon <img> tags left with stray font-size text.
func runRepair(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRepairFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if err := mergeRepairFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Repair.Prefix == "" {
		return fmt.Errorf("%w: --prefix (or repair.prefix in config)", ErrMissingValue)
	}

	files, err := discoverFiles(resolvePatterns(positional, cfg))
	if err != nil {
		return err
	}

	prefix := cfg.Repair.Prefix
	transform := func(text string) mailicons.RewriteResult {
		return mailicons.RepairIconAttributes(text, prefix)
	}

	return runBatch(ctx, files, transform, cfg.Batch.Workers, outputOptions{
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
		dryRun:  flags.batch.dryRun,
	}, env)
}

// mergeRepairFlags applies CLI flags over config values. CLI wins.
func mergeRepairFlags(f *repairFlags, cfg *config.Config) error {
	if f.set.has("prefix") {
		cfg.Repair.Prefix = f.prefix
	}
	return mergeWorkers(f.set, f.batch, cfg)
}
