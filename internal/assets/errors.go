package assets

import "errors"

var (
	// ErrTableNotFound is returned when no embedded or on-disk table matches.
	ErrTableNotFound = errors.New("icon table not found")

	// ErrTableParse wraps YAML syntax errors and unknown table keys.
	ErrTableParse = errors.New("failed to parse icon table")

	// ErrInvalidAssetName marks names that are not usable as a file stem.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath is returned when --asset-path is missing or not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("path traversal detected")
)
