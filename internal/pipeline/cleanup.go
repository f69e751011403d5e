package pipeline

import "regexp"

// Icon font loading directives. CSS rule blocks are matched up to the first
// closing brace, so a rule containing nested braces is cut short.
var (
	fontImportPattern = regexp.MustCompile(`@import\s+url\([^)]*Material\+Icons[^)]*\)\s*;`)
	fontLinkPattern   = regexp.MustCompile(`<link[^>]*Material\+Icons[^>]*>`)
	fontRulePattern   = regexp.MustCompile(`\.material-icons[^{]*\{[^}]*\}`)
)

// FontCleanup removes icon font imports, links and CSS rules from a document.
type FontCleanup struct{}

// StripIconFont deletes every icon font directive and returns the new
// content with the number of directives removed.
func (FontCleanup) StripIconFont(content string) (string, int) {
	removed := 0
	for _, p := range []*regexp.Regexp{fontImportPattern, fontLinkPattern, fontRulePattern} {
		n := len(p.FindAllStringIndex(content, -1))
		if n == 0 {
			continue
		}
		content = p.ReplaceAllString(content, "")
		removed += n
	}
	return content, removed
}
