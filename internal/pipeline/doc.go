// Package pipeline implements the text transformations applied to HTML
// email templates.
//
// Every stage is a pure string-to-string substitution driven by regular
// expressions; documents are never parsed into a tree:
//   - Icon substitution: font-icon spans become inline <img> tags
//   - Style translation: font-size/color/margin-right become img styling
//   - Src prefix rewriting: local icon paths become absolute URLs
//   - Font cleanup: icon font imports, links and CSS rules are removed
//   - Attribute repair: stray font-size text left on icon <img> tags is dropped
//
// Stages never fail. Anything a stage does not recognize is copied through
// unchanged, so callers detect "no work" by comparing input and output.
// File discovery and I/O are handled by cmd/mailicons.
package pipeline
