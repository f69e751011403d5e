package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed tables/*.yaml
var tables embed.FS

// EmbeddedLoader loads icon tables from the embedded filesystem.
// Implements TableLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTable loads an icon table from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadTable(name string) (*Table, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := tables.ReadFile("tables/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	return parseTable(name, content)
}

// Names lists the embedded table names in sorted order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(tables, "tables")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ TableLoader = (*EmbeddedLoader)(nil)
