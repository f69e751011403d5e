package mailicons

import "errors"

// Sentinel errors for library operations.
var (
	// Icon table errors.
	ErrInvalidIconTable = errors.New("invalid icon table")
	ErrTableNotFound    = errors.New("icon table not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Rewrite option errors.
	ErrInvalidDialect = errors.New("invalid markup dialect")

	// Document I/O errors, reported per file by batch callers.
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")

	// Fetch errors.
	ErrInvalidSource    = errors.New("invalid fetch source")
	ErrFetchStatus      = errors.New("unexpected HTTP status")
	ErrNotSVG           = errors.New("payload is not an SVG document")
	ErrPayloadTooLarge  = errors.New("payload exceeds maximum size")
	ErrAllSourcesFailed = errors.New("all sources failed")
)
