package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mailicons/internal/fileutil"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTable loads an icon table by name using the default embedded loader.
// Returns ErrTableNotFound if the table does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTable(name string) (*Table, error) {
	return defaultLoader.LoadTable(name)
}

// AvailableTables lists the embedded table names.
func AvailableTables() []string {
	return defaultLoader.Names()
}

// Resolve loads a table from a name or a file path. File paths (containing a
// separator or ending in .yaml/.yml) are read directly; names go through a
// TableResolver rooted at customBasePath.
func Resolve(nameOrPath, customBasePath string) (*Table, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTableName
	}

	if fileutil.IsFilePath(nameOrPath) || hasYAMLExt(nameOrPath) {
		return LoadTableFile(nameOrPath)
	}

	resolver, err := NewTableResolver(customBasePath)
	if err != nil {
		return nil, fmt.Errorf("resolving icon table: %w", err)
	}
	return resolver.LoadTable(nameOrPath)
}

func hasYAMLExt(s string) bool {
	return strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}
