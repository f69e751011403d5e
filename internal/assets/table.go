package assets

import (
	"fmt"

	"github.com/alnah/go-mailicons/internal/yamlutil"
)

// DefaultTableName is the icon table used when none is configured.
const DefaultTableName = "material"

// Table is a decoded icon table file.
type Table struct {
	Name  string  `yaml:"-"`
	Icons []Entry `yaml:"icons"`
}

// Entry maps one icon name to its SVG path.
type Entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// parseTable decodes table YAML. Entry validation is left to the caller,
// which owns the rules for names and paths.
func parseTable(name string, data []byte) (*Table, error) {
	var t Table
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTableParse, name, err)
	}
	t.Name = name
	return &t, nil
}
