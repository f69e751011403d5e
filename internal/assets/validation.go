package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects icon and table names that cannot be used as a
// bare file stem: empty names, names with slashes or dots, and NUL bytes.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
