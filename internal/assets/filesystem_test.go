package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeTable creates {dir}/tables/{name}.yaml with the given content.
func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()

	tablesDir := filepath.Join(dir, "tables")
	if err := os.MkdirAll(tablesDir, 0o755); err != nil {
		t.Fatalf("failed to create tables dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tablesDir, name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
}

const brandTable = `icons:
  - name: github
    path: brand/github.svg
  - name: mastodon
    path: brand/mastodon.svg
`

// ---------------------------------------------------------------------------
// TestNewFilesystemLoader - Base path validation
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if !filepath.IsAbs(loader.BasePath()) {
			t.Errorf("BasePath() = %q, want absolute", loader.BasePath())
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewFilesystemLoader(file)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader_LoadTable - Reads {base}/tables/{name}.yaml
// ---------------------------------------------------------------------------

func TestFilesystemLoader_LoadTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		load      string
		wantErr   error
		wantIcons int
	}{
		{name: "valid table", content: brandTable, load: "brand", wantIcons: 2},
		{name: "missing table", load: "brand", wantErr: ErrTableNotFound},
		{name: "unknown key", content: "icons: []\nsizes: [24]\n", load: "brand", wantErr: ErrTableParse},
		{name: "empty file", content: "", load: "brand", wantErr: ErrTableParse},
		{name: "invalid name", load: "../brand", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.name != "missing table" && tt.name != "invalid name" {
				writeTable(t, dir, "brand", tt.content)
			}

			loader, err := NewFilesystemLoader(dir)
			if err != nil {
				t.Fatal(err)
			}

			table, err := loader.LoadTable(tt.load)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTable(%q) error = %v, want %v", tt.load, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTable(%q) error = %v", tt.load, err)
			}
			if table.Name != tt.load {
				t.Errorf("Name = %q, want %q", table.Name, tt.load)
			}
			if len(table.Icons) != tt.wantIcons {
				t.Errorf("len(Icons) = %d, want %d", len(table.Icons), tt.wantIcons)
			}
		})
	}
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret.yaml"), []byte(brandTable), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	tablesDir := filepath.Join(base, "tables")
	if err := os.MkdirAll(tablesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.yaml"), filepath.Join(tablesDir, "escape.yaml")); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	_, err = loader.LoadTable("escape")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("error = %v, want ErrPathTraversal", err)
	}
}

func TestLoadTableFile(t *testing.T) {
	t.Parallel()

	t.Run("names table after file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "brand-icons.yaml")
		if err := os.WriteFile(path, []byte(brandTable), 0o644); err != nil {
			t.Fatal(err)
		}

		table, err := LoadTableFile(path)
		if err != nil {
			t.Fatalf("LoadTableFile() error = %v", err)
		}
		if table.Name != "brand-icons" {
			t.Errorf("Name = %q, want %q", table.Name, "brand-icons")
		}
		if table.Icons[1].Path != "brand/mastodon.svg" {
			t.Errorf("Icons[1].Path = %q", table.Icons[1].Path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTableFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrTableNotFound) {
			t.Errorf("error = %v, want ErrTableNotFound", err)
		}
	})
}
