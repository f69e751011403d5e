package pipeline

import "strings"

// Dialect selects how markup is represented in a document.
type Dialect int

const (
	// DialectPlain is ordinary HTML markup.
	DialectPlain Dialect = iota

	// DialectEncoded is markup shown as readable text inside another page,
	// with <, > and " written as &lt;, &gt; and &quot;.
	DialectEncoded
)

// String returns the dialect name used in config files and flags.
func (d Dialect) String() string {
	switch d {
	case DialectPlain:
		return "plain"
	case DialectEncoded:
		return "encoded"
	default:
		return "unknown"
	}
}

// ParseDialect converts a config or flag value to a Dialect.
// The empty string selects DialectPlain.
func ParseDialect(s string) (Dialect, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "html":
		return DialectPlain, true
	case "encoded", "escaped":
		return DialectEncoded, true
	default:
		return DialectPlain, false
	}
}

// Only the three references the encoded dialect uses are translated, so
// other references such as &amp; survive a decode/encode round trip.
var (
	entityDecoder = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`)
	entityEncoder = strings.NewReplacer("<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// decode converts encoded-dialect text to plain markup.
func (d Dialect) decode(s string) string {
	if d != DialectEncoded {
		return s
	}
	return entityDecoder.Replace(s)
}

// encode converts plain markup to the dialect's representation.
func (d Dialect) encode(s string) string {
	if d != DialectEncoded {
		return s
	}
	return entityEncoder.Replace(s)
}
