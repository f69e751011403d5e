package assets

// TableLoader defines the contract for loading icon tables.
// Implementations may load from embedded assets, filesystem, etc.
type TableLoader interface {
	// LoadTable loads an icon table by name (without .yaml extension).
	// Returns ErrTableNotFound if the table doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	// Returns ErrTableParse if the table is malformed.
	LoadTable(name string) (*Table, error)
}
