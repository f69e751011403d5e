// Package assets provides the icon tables that map icon names to SVG paths.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TableLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in tables)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── TableResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in "material" table compiled into the
// binary. FilesystemLoader reads tables from a user directory, with path
// traversal protection and symlink resolution. TableResolver is what the
// CLI uses: a custom table with the same name shadows the embedded one.
//
// # Directory Structure
//
//	{basePath}/
//	└── tables/
//	    └── {name}.yaml
//
// # Table Format
//
//	icons:
//	  - name: handshake
//	    path: assets/images/icons/handshake.svg
//
// Entry order is preserved. Unknown keys are rejected.
//
// # Security
//
// Table names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
