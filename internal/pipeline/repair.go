package pipeline

import (
	"regexp"
	"strings"
)

// Patterns for icon <img> tags that an earlier conversion left with
// font-size text after the style attribute.
var (
	imgSrcPattern   = regexp.MustCompile(`\bsrc="([^"]*)"`)
	imgAltPattern   = regexp.MustCompile(`\balt="([^"]*)"`)
	imgStylePattern = regexp.MustCompile(`\bstyle="([^"]*)"`)

	fontSizeDeclPattern = regexp.MustCompile(`font-size\s*:[^;]*;?`)
	doubleSemicolon     = regexp.MustCompile(`;\s*;+`)

	// Fallback for tags whose src does not carry the configured prefix.
	// Captures: 1=src, 2=alt, 3=style.
	strayAttrImgPattern = regexp.MustCompile(`<img src="([^"]*)" alt="([^"]*)" style="([^"]*)"[^>]*font-size:[^>]*>`)
)

// defaultRepairStyle is used when a malformed tag has no style attribute left.
const defaultRepairStyle = "width:16px; height:16px; vertical-align:middle;"

// AttributeRepair rebuilds icon <img> tags that carry stray font-size text.
type AttributeRepair struct {
	pattern *regexp.Regexp
}

// NewAttributeRepair creates an AttributeRepair for SVG icons whose src
// starts with srcPrefix.
func NewAttributeRepair(srcPrefix string) *AttributeRepair {
	return &AttributeRepair{
		pattern: regexp.MustCompile(`<img src="` + regexp.QuoteMeta(srcPrefix) +
			`[^"]*\.svg"[^>]*style="[^"]*"[^>]*font-size:[^>]*>`),
	}
}

// Repair rewrites every malformed icon tag as
// <img src="..." alt="..." style="..."> and returns the number repaired.
func (r *AttributeRepair) Repair(content string) (string, int) {
	repaired := 0

	content = r.pattern.ReplaceAllStringFunc(content, func(tag string) string {
		src := imgSrcPattern.FindStringSubmatch(tag)
		if src == nil {
			return tag
		}

		alt := ""
		if m := imgAltPattern.FindStringSubmatch(tag); m != nil {
			alt = m[1]
		}

		style := defaultRepairStyle
		if m := imgStylePattern.FindStringSubmatch(tag); m != nil {
			style = cleanRepairStyle(m[1])
		}

		repaired++
		return `<img src="` + src[1] + `" alt="` + alt + `" style="` + style + `">`
	})

	content = strayAttrImgPattern.ReplaceAllStringFunc(content, func(tag string) string {
		m := strayAttrImgPattern.FindStringSubmatch(tag)
		repaired++
		return `<img src="` + m[1] + `" alt="` + m[2] + `" style="` + m[3] + `">`
	})

	return content, repaired
}

// cleanRepairStyle removes font-size declarations and empty declarations.
func cleanRepairStyle(style string) string {
	style = fontSizeDeclPattern.ReplaceAllString(style, "")
	style = doubleSemicolon.ReplaceAllString(style, ";")
	return strings.Trim(strings.TrimSpace(style), ";")
}
