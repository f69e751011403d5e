package mailicons

import (
	"fmt"

	"github.com/alnah/go-mailicons/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.IconRewriter = (*pipeline.IconSubstitution)(nil)
	_ pipeline.IconLookup   = (*IconTable)(nil)
)

// Dialect selects how placeholder markup is written in a document.
type Dialect = pipeline.Dialect

// Supported dialects.
const (
	// DialectPlain matches literal markup: <span class="material-icons">.
	DialectPlain = pipeline.DialectPlain

	// DialectEncoded matches markup shown as text inside another page:
	// &lt;span class=&quot;material-icons&quot;&gt;.
	DialectEncoded = pipeline.DialectEncoded
)

// ParseDialect converts "plain" or "encoded" (case-insensitive) to a Dialect.
// An empty string selects DialectPlain.
func ParseDialect(s string) (Dialect, error) {
	d, ok := pipeline.ParseDialect(s)
	if !ok {
		return DialectPlain, fmt.Errorf("%w: %q (must be plain or encoded)", ErrInvalidDialect, s)
	}
	return d, nil
}

// RewriteResult is the outcome of one transformation over a document.
type RewriteResult struct {
	Text     string   // transformed document
	Changed  bool     // Text differs from the input
	Replaced int      // placeholders, attributes, directives or tags rewritten
	Unknown  []string // icon names absent from the table, distinct, first-seen order
}

func newResult(input, output string, replaced int) RewriteResult {
	return RewriteResult{
		Text:     output,
		Changed:  output != input,
		Replaced: replaced,
	}
}

// Rewriter replaces font-icon placeholders with inline <img> tags.
// It is immutable and safe for concurrent use.
type Rewriter struct {
	table   *IconTable
	baseURL string
	dialect Dialect
	icons   pipeline.IconRewriter
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithBaseURL prefixes every icon path with baseURL.
// A trailing slash on baseURL is not doubled.
func WithBaseURL(baseURL string) Option {
	return func(r *Rewriter) {
		r.baseURL = baseURL
	}
}

// WithDialect selects the placeholder markup dialect (default DialectPlain).
func WithDialect(d Dialect) Option {
	return func(r *Rewriter) {
		r.dialect = d
	}
}

// NewRewriter creates a Rewriter for table.
// Panics if table is nil (programmer error).
func NewRewriter(table *IconTable, opts ...Option) *Rewriter {
	if table == nil {
		panic("mailicons: NewRewriter requires a non-nil table")
	}

	r := &Rewriter{table: table, dialect: DialectPlain}
	for _, opt := range opts {
		opt(r)
	}
	r.icons = pipeline.NewIconSubstitution(table, r.baseURL, r.dialect)

	return r
}

// Table returns the icon table the rewriter was built with.
func (r *Rewriter) Table() *IconTable {
	return r.table
}

// Dialect returns the configured markup dialect.
func (r *Rewriter) Dialect() Dialect {
	return r.dialect
}

// Rewrite replaces every placeholder whose icon is in the table.
// Placeholders with unknown icons are left unchanged and listed in Unknown.
// Text outside matched placeholders is preserved byte-for-byte.
func (r *Rewriter) Rewrite(text string) RewriteResult {
	rep := r.icons.RewriteIcons(text)
	result := newResult(text, rep.Content, rep.Replaced)
	result.Unknown = rep.Unknown
	return result
}

// RewriteSrcPrefix replaces oldPrefix with newPrefix at the start of every
// src attribute value, in plain and encoded markup. An empty oldPrefix
// leaves the text unchanged.
func RewriteSrcPrefix(text, oldPrefix, newPrefix string) RewriteResult {
	out, n := pipeline.NewSrcPrefixRewrite(oldPrefix, newPrefix).RewriteSrc(text)
	return newResult(text, out, n)
}

// StripIconFont removes icon font @import directives, <link> tags and
// .material-icons CSS rules. Rules containing nested braces are cut at the
// first closing brace.
func StripIconFont(text string) RewriteResult {
	out, n := pipeline.FontCleanup{}.StripIconFont(text)
	return newResult(text, out, n)
}

// RepairIconAttributes rebuilds icon <img> tags whose src starts with
// srcPrefix and that carry stray font-size text after the style attribute.
// Each is rewritten as <img src alt style> with font-size removed from style.
func RepairIconAttributes(text, srcPrefix string) RewriteResult {
	out, n := pipeline.NewAttributeRepair(srcPrefix).Repair(text)
	return newResult(text, out, n)
}
