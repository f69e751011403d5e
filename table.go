package mailicons

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mailicons/internal/assets"
)

// DefaultTableName is the built-in icon table.
const DefaultTableName = assets.DefaultTableName

// IconEntry maps one icon name to the path of its SVG asset.
type IconEntry struct {
	Name string
	Path string
}

// IconTable is an immutable mapping from icon name to SVG asset path.
// It is safe for concurrent use.
type IconTable struct {
	name    string
	entries []IconEntry
	index   map[string]string
}

// NewIconTable builds a table from entries, keeping their order.
// Returns ErrInvalidIconTable for an empty name, a name with surrounding
// whitespace (placeholders are matched trimmed), a duplicate name, or a
// path that does not end in .svg.
func NewIconTable(entries []IconEntry) (*IconTable, error) {
	t := &IconTable{
		entries: make([]IconEntry, 0, len(entries)),
		index:   make(map[string]string, len(entries)),
	}

	for i, e := range entries {
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("%w: entry %d has an empty name", ErrInvalidIconTable, i)
		case strings.TrimSpace(e.Name) != e.Name:
			return nil, fmt.Errorf("%w: entry %d name %q has surrounding whitespace", ErrInvalidIconTable, i, e.Name)
		case strings.ContainsAny(e.Name, "<>&\""):
			return nil, fmt.Errorf("%w: entry %d name %q contains markup characters", ErrInvalidIconTable, i, e.Name)
		case !strings.HasSuffix(strings.ToLower(e.Path), ".svg"):
			return nil, fmt.Errorf("%w: icon %q path %q must end in .svg", ErrInvalidIconTable, e.Name, e.Path)
		}
		if _, dup := t.index[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate icon %q", ErrInvalidIconTable, e.Name)
		}
		t.index[e.Name] = e.Path
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// LoadIconTable loads a table by name or from a YAML file path.
// Names are looked up in assetPath/tables/ first when assetPath is set,
// then among the built-in tables. An empty nameOrPath loads DefaultTableName.
func LoadIconTable(nameOrPath, assetPath string) (*IconTable, error) {
	raw, err := assets.Resolve(nameOrPath, assetPath)
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrTableNotFound):
			return nil, fmt.Errorf("%w: %v", ErrTableNotFound, err)
		case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidIconTable, err)
		}
	}

	entries := make([]IconEntry, len(raw.Icons))
	for i, e := range raw.Icons {
		entries[i] = IconEntry{Name: e.Name, Path: e.Path}
	}

	t, err := NewIconTable(entries)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", raw.Name, err)
	}
	t.name = raw.Name
	return t, nil
}

// AvailableTables lists the built-in table names.
func AvailableTables() []string {
	return assets.AvailableTables()
}

// Name returns the table name, or "" for tables built with NewIconTable.
func (t *IconTable) Name() string {
	return t.name
}

// Lookup returns the asset path for an icon name.
func (t *IconTable) Lookup(name string) (string, bool) {
	path, ok := t.index[name]
	return path, ok
}

// Len returns the number of icons.
func (t *IconTable) Len() int {
	return len(t.entries)
}

// Names returns the icon names in table order.
func (t *IconTable) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the table entries in table order.
func (t *IconTable) Entries() []IconEntry {
	return append([]IconEntry(nil), t.entries...)
}
