package pipeline

import (
	"regexp"
	"strings"
)

// Icon size rules, checked in priority order against font-size declarations.
// A style without any of them gets defaultIconSize.
var iconSizeRules = []string{"24px", "32px", "12px"}

const (
	defaultIconSize  = "16px"
	defaultIconColor = "currentColor"
)

// styleAttrPattern matches a double- or single-quoted style attribute with
// its leading whitespace, so data-style and similar names are not mistaken
// for it. Captures: 2=double-quoted declarations, 3=single-quoted ones.
var styleAttrPattern = regexp.MustCompile(`(^|\s+)style\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// strayDeclPatterns match declarations that leaked outside a style attribute.
// They are removed from residual attribute text so they are not duplicated
// next to the generated style.
var strayDeclPatterns = []*regexp.Regexp{
	regexp.MustCompile(`font-size\s*:[^;]*;?`),
	regexp.MustCompile(`vertical-align\s*:[^;]*;?`),
	regexp.MustCompile(`margin-right\s*:[^;]*;?`),
}

// strayColorPattern matches a bare color declaration, not background-color.
// Captures: 1=boundary character kept in the output.
var strayColorPattern = regexp.MustCompile(`(^|[^-\w])color\s*:[^;]*;?`)

// whitespaceRun collapses whitespace left behind by removed attributes.
var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// declaration is one property:value pair of an inline style.
type declaration struct {
	prop  string // lowercased, trimmed
	value string // trimmed
}

// parseDeclarations splits inline style text into declarations.
// Entries without a colon are ignored.
func parseDeclarations(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, declaration{
			prop:  strings.ToLower(strings.TrimSpace(prop)),
			value: strings.TrimSpace(value),
		})
	}
	return decls
}

// iconStyle is the styling derived from a placeholder's style attribute.
type iconStyle struct {
	size        string
	color       string
	marginRight string // empty when absent
}

// translateStyle derives img styling from the font-icon style text.
func translateStyle(style string) iconStyle {
	decls := parseDeclarations(style)
	s := iconStyle{size: matchSize(decls), color: defaultIconColor}

	colorFound := false
	for _, d := range decls {
		switch d.prop {
		case "color":
			if !colorFound && d.value != "" {
				s.color = d.value
				colorFound = true
			}
		case "margin-right":
			if s.marginRight == "" {
				s.marginRight = d.value
			}
		}
	}

	return s
}

// matchSize returns the first size rule matched by a font-size declaration.
func matchSize(decls []declaration) string {
	for _, rule := range iconSizeRules {
		for _, d := range decls {
			if d.prop == "font-size" && strings.ReplaceAll(d.value, " ", "") == rule {
				return rule
			}
		}
	}
	return defaultIconSize
}

// String renders the style in its fixed declaration order:
// width, height, vertical-align, color, then margin-right when present.
func (s iconStyle) String() string {
	var b strings.Builder
	b.WriteString("width:" + s.size + "; ")
	b.WriteString("height:" + s.size + "; ")
	b.WriteString("vertical-align:middle; ")
	b.WriteString("color:" + s.color + ";")
	if s.marginRight != "" {
		b.WriteString(" margin-right:" + s.marginRight + ";")
	}
	return b.String()
}

// splitAttrs separates the style value from the remaining attribute text.
// The residual text has stray style declarations removed and whitespace
// normalized; it is empty when nothing but the style was present.
func splitAttrs(attrs string) (style, residual string) {
	if m := styleAttrPattern.FindStringSubmatch(attrs); m != nil {
		style = m[2] + m[3]
		attrs = strings.Replace(attrs, m[0], " ", 1)
	}

	for _, p := range strayDeclPatterns {
		attrs = p.ReplaceAllString(attrs, "")
	}
	attrs = strayColorPattern.ReplaceAllString(attrs, "$1")

	residual = strings.TrimSpace(whitespaceRun.ReplaceAllString(attrs, " "))
	return style, residual
}
