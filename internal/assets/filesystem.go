package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mailicons/internal/yamlutil"
)

// FilesystemLoader reads icon tables from {base}/tables/*.yaml.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader resolves basePath to an absolute, symlink-free
// directory. Anything else yields ErrInvalidBasePath.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Containment checks compare real paths, so the base must be resolved too.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: no such directory %s", ErrInvalidBasePath, absPath)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is a file", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved absolute base directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadTable loads an icon table from {basePath}/tables/{name}.yaml.
func (f *FilesystemLoader) LoadTable(name string) (*Table, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	filePath := filepath.Join(f.basePath, "tables", name+".yaml")
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}

	var t Table
	var pathErr *fs.PathError
	err := yamlutil.ReadFileStrict(filePath, &t)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	case errors.As(err, &pathErr):
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	default:
		return nil, fmt.Errorf("%w: %q: %v", ErrTableParse, name, err)
	}

	t.Name = name
	return &t, nil
}

// LoadTableFile loads an icon table from an explicit file path. The table is
// named after the file without its extension.
func LoadTableFile(path string) (*Table, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided table path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parseTable(name, content)
}

// verifyPathContainment ensures the resolved file path is within basePath,
// following symlinks so a link cannot point outside it.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	target, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}

	// A missing file keeps its unresolved path; the read fails later.
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	if !strings.HasPrefix(target, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is outside %s", ErrPathTraversal, filePath, f.basePath)
	}
	return nil
}

// Compile-time interface check.
var _ TableLoader = (*FilesystemLoader)(nil)
