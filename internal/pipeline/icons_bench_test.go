//go:build bench

package pipeline

import (
	"strings"
	"testing"
)

// BenchmarkRewriteIcons benchmarks placeholder substitution.
// Newsletters carry a few dozen icons in a few hundred KB of table markup.
func BenchmarkRewriteIcons(b *testing.B) {
	row := `<tr><td><span class="material-icons" style="font-size:24px;color:#2a9d8f;margin-right:8px;">handshake</span>Partners</td></tr>` + "\n"
	filler := strings.Repeat(`<tr><td style="padding:8px">Lorem ipsum dolor sit amet.</td></tr>`+"\n", 20)

	inputs := []struct {
		name    string
		dialect Dialect
		content string
	}{
		{"plain_small", DialectPlain, row},
		{"plain_large", DialectPlain, strings.Repeat(row+filler, 50)},
		{"encoded_large", DialectEncoded, strings.Repeat(DialectEncoded.encode(row)+filler, 50)},
		{"no_placeholders", DialectPlain, strings.Repeat(filler, 50)},
	}

	for _, input := range inputs {
		s := NewIconSubstitution(testIcons, "https://example.com", input.dialect)
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := s.RewriteIcons(input.content)
				_ = result
			}
		})
	}
}

// BenchmarkStripIconFont benchmarks font directive removal.
func BenchmarkStripIconFont(b *testing.B) {
	head := `<link href="https://fonts.googleapis.com/icon?family=Material+Icons" rel="stylesheet">` +
		`<style>.material-icons { font-size: 24px; }` + strings.Repeat(".c { color: red; }\n", 200) + `</style>`

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result, _ := FontCleanup{}.StripIconFont(head)
		_ = result
	}
}
