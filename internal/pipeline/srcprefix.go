package pipeline

import (
	"regexp"
	"strings"
)

// SrcPrefixRewrite swaps a fixed path prefix in src attributes.
type SrcPrefixRewrite struct {
	oldPrefix string
	newPrefix string
	pattern   *regexp.Regexp // nil when the rewrite is a no-op
}

// NewSrcPrefixRewrite creates a SrcPrefixRewrite replacing oldPrefix with newPrefix.
func NewSrcPrefixRewrite(oldPrefix, newPrefix string) *SrcPrefixRewrite {
	r := &SrcPrefixRewrite{oldPrefix: oldPrefix, newPrefix: newPrefix}
	if oldPrefix != "" && oldPrefix != newPrefix {
		// The attribute name must start at whitespace or a tag opening,
		// so data-src and similar names never match.
		// Captures: 1=boundary, 2=opening quote.
		r.pattern = regexp.MustCompile(`(^|[\s<])src=("|&quot;)` + regexp.QuoteMeta(oldPrefix))
	}
	return r
}

// RewriteSrc replaces oldPrefix at the start of every src attribute value,
// in both plain (src="...") and encoded (src=&quot;...) form.
// Other src values and the rest of the document are untouched.
// Returns the new content and the number of attributes rewritten.
func (r *SrcPrefixRewrite) RewriteSrc(content string) (string, int) {
	if r.pattern == nil {
		return content, 0
	}

	count := len(r.pattern.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}

	repl := "${1}src=${2}" + strings.ReplaceAll(r.newPrefix, "$", "$$")
	return r.pattern.ReplaceAllString(content, repl), count
}
