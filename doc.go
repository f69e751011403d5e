// Package mailicons rewrites font-icon markup in static HTML email templates
// into inline <img> tags pointing at SVG assets.
//
// Email clients such as Gmail do not load web fonts, so icons written as
//
//	<span class="material-icons" style="font-size:24px;color:#ff0000;">favorite</span>
//
// render as their ligature text. The Rewriter replaces each such placeholder
// with
//
//	<img src="assets/images/icons/favorite.svg" alt="favorite" style="width:24px; height:24px; vertical-align:middle; color:#ff0000;">
//
// # Quick Start
//
//	table, err := mailicons.LoadIconTable(mailicons.DefaultTableName, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rw := mailicons.NewRewriter(table, mailicons.WithBaseURL("https://cdn.example.com"))
//	res := rw.Rewrite(string(content))
//	if res.Changed {
//	    os.WriteFile(path, []byte(res.Text), 0o644)
//	}
//
// # Operations
//
// Every operation is a pure text transformation returning a RewriteResult:
//
//   - Rewriter.Rewrite: placeholders become <img> tags; unknown icons are
//     reported and left untouched
//   - RewriteSrcPrefix: swaps a path prefix in src attributes, for moving
//     from local paths to a deployed site
//   - StripIconFont: removes icon font imports, links and CSS rules
//   - RepairIconAttributes: fixes <img> tags left with stray font-size text
//
// Documents are never parsed into a tree; anything that does not match a
// pattern is copied through byte-for-byte, so RewriteResult.Changed tells
// callers whether a write is needed.
//
// # Encoded Markup
//
// Pages that display template source embed it as entity-encoded text. Use
// WithDialect(DialectEncoded) to match &lt;span class=&quot;material-icons&quot;&gt;
// placeholders; replacements are encoded the same way.
//
// # Icon Tables
//
// An IconTable maps icon names to SVG paths. The built-in "material" table
// covers the icons used by the newsletter templates. Custom tables are YAML:
//
//	icons:
//	  - name: handshake
//	    path: assets/images/icons/handshake.svg
//
// # Fetching Assets
//
// Fetcher downloads the SVG for every icon of a table from a list of URL
// templates, trying each once in order:
//
//	f, _ := mailicons.NewFetcher()
//	results, err := f.Fetch(ctx, table, "assets/images/icons")
//
// # Concurrency
//
// IconTable and Rewriter are immutable after construction and safe for
// concurrent use by multiple goroutines.
package mailicons
