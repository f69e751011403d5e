package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-mailicons/internal/fileutil"
)

// Placeholder patterns. Captures: 1=attribute text after the class
// attribute, 2=icon name (untrimmed).
//
// The class value may carry extra tokens after material-icons, such as
// "material-icons md-24"; they size the font glyph only and are dropped
// from the generated image. The encoded attribute text may contain &quot;
// and &amp; but never the &gt; that closes the tag. Neither pattern
// supports nested markup.
var (
	plainPlaceholderPattern = regexp.MustCompile(
		`<span class="material-icons(?:\s[^"]*)?"([^>]*)>([^<]+)</span>`)
	encodedPlaceholderPattern = regexp.MustCompile(
		`&lt;span class=&quot;material-icons(?:\s[^&<>"]*)?&quot;((?:[^&<>]|&(?:quot|amp|#\d+);)*)&gt;([^&<>]+)&lt;/span&gt;`)
)

// IconLookup resolves an icon name to its asset path.
type IconLookup interface {
	Lookup(name string) (path string, ok bool)
}

// Placeholder is one font-icon element found in a document.
type Placeholder struct {
	Name  string // trimmed icon name
	Attrs string // raw attribute text after the class attribute, decoded to plain markup
}

// IconReplacement is the outcome of an icon substitution pass.
type IconReplacement struct {
	Content  string
	Replaced int
	Unknown  []string // distinct unknown names in first-seen order
}

// IconRewriter defines the contract for replacing font-icon placeholders.
type IconRewriter interface {
	RewriteIcons(content string) IconReplacement
}

// IconSubstitution replaces font-icon spans with inline <img> tags.
// It holds no mutable state and is safe for concurrent use.
type IconSubstitution struct {
	icons   IconLookup
	baseURL string
	dialect Dialect
}

// NewIconSubstitution creates an IconSubstitution.
// When baseURL is non-empty, it prefixes every asset path.
func NewIconSubstitution(icons IconLookup, baseURL string, dialect Dialect) *IconSubstitution {
	return &IconSubstitution{icons: icons, baseURL: baseURL, dialect: dialect}
}

// Compile-time interface check.
var _ IconRewriter = (*IconSubstitution)(nil)

// RewriteIcons replaces every placeholder whose name is known.
// Unknown names are left byte-for-byte unchanged and reported.
func (s *IconSubstitution) RewriteIcons(content string) IconReplacement {
	result := IconReplacement{}
	seen := make(map[string]bool)

	result.Content = s.pattern().ReplaceAllStringFunc(content, func(match string) string {
		ph := s.parse(match)

		path, ok := s.icons.Lookup(ph.Name)
		if !ok {
			if !seen[ph.Name] {
				seen[ph.Name] = true
				result.Unknown = append(result.Unknown, ph.Name)
			}
			return match
		}

		result.Replaced++
		return s.dialect.encode(buildImgTag(fileutil.JoinURL(s.baseURL, path), ph))
	})

	return result
}

// FindPlaceholders lists the placeholders of a document in order of appearance.
func (s *IconSubstitution) FindPlaceholders(content string) []Placeholder {
	matches := s.pattern().FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	placeholders := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		placeholders = append(placeholders, s.parse(m))
	}
	return placeholders
}

func (s *IconSubstitution) pattern() *regexp.Regexp {
	if s.dialect == DialectEncoded {
		return encodedPlaceholderPattern
	}
	return plainPlaceholderPattern
}

// parse extracts the placeholder from a full pattern match.
func (s *IconSubstitution) parse(match string) Placeholder {
	sub := s.pattern().FindStringSubmatch(match)
	return Placeholder{
		Name:  strings.TrimSpace(sub[2]),
		Attrs: s.dialect.decode(sub[1]),
	}
}

// buildImgTag renders the plain-markup replacement for a placeholder.
func buildImgTag(src string, ph Placeholder) string {
	style, residual := splitAttrs(ph.Attrs)

	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(src)
	b.WriteString(`" alt="`)
	b.WriteString(ph.Name)
	b.WriteString(`" style="`)
	b.WriteString(translateStyle(style).String())
	b.WriteString(`"`)
	if residual != "" {
		b.WriteString(" ")
		b.WriteString(residual)
	}
	b.WriteString(">")
	return b.String()
}
