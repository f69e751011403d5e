package assets

import (
	"errors"
)

// TableResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the table is not found in the custom location.
type TableResolver struct {
	custom   TableLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewTableResolver creates a TableResolver.
// If customBasePath is empty, only embedded tables are used.
// Returns error if customBasePath is set but invalid.
func NewTableResolver(customBasePath string) (*TableResolver, error) {
	resolver := &TableResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTable loads an icon table, trying the custom loader first if available.
// Only ErrTableNotFound triggers the fallback; a malformed custom table is
// reported rather than silently replaced.
func (r *TableResolver) LoadTable(name string) (*Table, error) {
	if r.custom == nil {
		return r.embedded.LoadTable(name)
	}

	t, err := r.custom.LoadTable(name)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrTableNotFound) {
		return nil, err
	}

	return r.embedded.LoadTable(name)
}

// HasCustomLoader returns true if a custom table loader is configured.
func (r *TableResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// EmbeddedNames lists the tables compiled into the binary.
func (r *TableResolver) EmbeddedNames() []string {
	return r.embedded.Names()
}

// Compile-time interface check.
var _ TableLoader = (*TableResolver)(nil)
