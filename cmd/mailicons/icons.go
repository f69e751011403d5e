package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
)

// runIcons replaces icon font markup in the matched templates.
func runIcons(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseIconsFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if err := mergeIconsFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dialect, err := mailicons.ParseDialect(cfg.Icons.Dialect)
	if err != nil {
		return err
	}
	table, err := loadTable(cfg.Icons.Table, cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	patterns := resolvePatterns(positional, cfg)
	files, err := discoverFiles(patterns)
	if err != nil {
		return err
	}

	rw := mailicons.NewRewriter(table,
		mailicons.WithBaseURL(cfg.Icons.BaseURL),
		mailicons.WithDialect(dialect),
	)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Using table %s (%d icons, %s dialect)\n",
			rw.Table().Name(), rw.Table().Len(), rw.Dialect())
	}
	// Font directives only appear in real <head> markup, never in encoded text.
	stripFont := !cfg.Icons.KeepFont && dialect == mailicons.DialectPlain
	transform := iconTransform(rw, stripFont)
	out := outputOptions{
		quiet:     flags.common.quiet,
		verbose:   flags.common.verbose,
		dryRun:    flags.batch.dryRun,
		tableName: rw.Table().Name(),
	}

	if err := runBatch(ctx, files, transform, cfg.Batch.Workers, out, env); err != nil || !flags.watch {
		return err
	}

	tw, err := newTemplateWatcher(patterns)
	if err != nil {
		return err
	}
	defer func() { _ = tw.Close() }()
	return tw.run(ctx, transform, out, env)
}

// iconTransform rewrites placeholders, then optionally removes the font
// directives. Replaced counts both.
func iconTransform(rw *mailicons.Rewriter, stripFont bool) transformFunc {
	return func(text string) mailicons.RewriteResult {
		res := rw.Rewrite(text)
		if stripFont {
			font := mailicons.StripIconFont(res.Text)
			res.Text = font.Text
			res.Replaced += font.Replaced
			res.Changed = res.Text != text
		}
		return res
	}
}

// mergeIconsFlags applies CLI flags over config values. CLI wins.
func mergeIconsFlags(f *iconsFlags, cfg *config.Config) error {
	mergeTableFlags(f.set, f.tables, cfg)
	if f.set.has("base-url") {
		cfg.Icons.BaseURL = f.baseURL
	}
	if f.set.has("encoded") {
		cfg.Icons.Dialect = mailicons.DialectPlain.String()
		if f.encoded {
			cfg.Icons.Dialect = mailicons.DialectEncoded.String()
		}
	}
	if f.set.has("keep-font") {
		cfg.Icons.KeepFont = f.keepFont
	}
	return mergeWorkers(f.set, f.batch, cfg)
}
