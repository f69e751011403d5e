package mailicons

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewIconTable - Construction and validation
// ---------------------------------------------------------------------------

func TestNewIconTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []IconEntry
		wantErr error
		wantLen int
	}{
		{
			name: "valid entries",
			entries: []IconEntry{
				{Name: "person", Path: "assets/images/icons/person.svg"},
				{Name: "speed", Path: "assets/images/icons/speed.svg"},
			},
			wantLen: 2,
		},
		{name: "empty table", entries: nil, wantLen: 0},
		{name: "uppercase extension", entries: []IconEntry{{Name: "a", Path: "A.SVG"}}, wantLen: 1},
		{name: "empty name", entries: []IconEntry{{Name: "", Path: "x.svg"}}, wantErr: ErrInvalidIconTable},
		{name: "padded name", entries: []IconEntry{{Name: " person", Path: "x.svg"}}, wantErr: ErrInvalidIconTable},
		{name: "markup in name", entries: []IconEntry{{Name: "a<b", Path: "x.svg"}}, wantErr: ErrInvalidIconTable},
		{name: "png path", entries: []IconEntry{{Name: "person", Path: "person.png"}}, wantErr: ErrInvalidIconTable},
		{
			name: "duplicate name",
			entries: []IconEntry{
				{Name: "person", Path: "a/person.svg"},
				{Name: "person", Path: "b/person.svg"},
			},
			wantErr: ErrInvalidIconTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := NewIconTable(tt.entries)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewIconTable() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewIconTable() unexpected error: %v", err)
			}
			if table.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", table.Len(), tt.wantLen)
			}
		})
	}
}

func TestIconTable_Accessors(t *testing.T) {
	t.Parallel()

	entries := []IconEntry{
		{Name: "speed", Path: "icons/speed.svg"},
		{Name: "article", Path: "icons/article.svg"},
	}
	table, err := NewIconTable(entries)
	if err != nil {
		t.Fatal(err)
	}

	if path, ok := table.Lookup("article"); !ok || path != "icons/article.svg" {
		t.Errorf("Lookup(article) = %q, %v", path, ok)
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("Lookup(missing) ok = true")
	}
	if names := table.Names(); !slices.Equal(names, []string{"speed", "article"}) {
		t.Errorf("Names() = %v, want table order", names)
	}

	// Mutating the input or the returned copy must not affect the table.
	entries[0].Path = "changed.svg"
	got := table.Entries()
	got[1].Path = "changed.svg"
	if path, _ := table.Lookup("speed"); path != "icons/speed.svg" {
		t.Errorf("table changed through caller slice: %q", path)
	}
	if table.Entries()[1].Path != "icons/article.svg" {
		t.Error("table changed through Entries() copy")
	}
}

// ---------------------------------------------------------------------------
// TestLoadIconTable - Built-in, custom directory and file tables
// ---------------------------------------------------------------------------

func TestLoadIconTable(t *testing.T) {
	t.Parallel()

	t.Run("built-in material table", func(t *testing.T) {
		t.Parallel()

		table, err := LoadIconTable("", "")
		if err != nil {
			t.Fatalf("LoadIconTable() error = %v", err)
		}
		if table.Name() != DefaultTableName {
			t.Errorf("Name() = %q, want %q", table.Name(), DefaultTableName)
		}
		if table.Len() != 21 {
			t.Errorf("Len() = %d, want 21", table.Len())
		}
		if path, _ := table.Lookup("local_shipping"); path != "assets/images/icons/local_shipping.svg" {
			t.Errorf("Lookup(local_shipping) = %q", path)
		}
	})

	t.Run("custom directory shadows built-in", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		tablesDir := filepath.Join(dir, "tables")
		if err := os.MkdirAll(tablesDir, 0o755); err != nil {
			t.Fatal(err)
		}
		content := "icons:\n  - name: github\n    path: brand/github.svg\n"
		if err := os.WriteFile(filepath.Join(tablesDir, "material.yaml"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		table, err := LoadIconTable("material", dir)
		if err != nil {
			t.Fatalf("LoadIconTable() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want custom table", table.Len())
		}
	})

	t.Run("file with duplicate entries", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dup.yaml")
		content := "icons:\n  - name: a\n    path: a.svg\n  - name: a\n    path: b.svg\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadIconTable(path, "")
		if !errors.Is(err, ErrInvalidIconTable) {
			t.Errorf("error = %v, want ErrInvalidIconTable", err)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadIconTable("nonexistent", "")
		if !errors.Is(err, ErrTableNotFound) {
			t.Errorf("error = %v, want ErrTableNotFound", err)
		}
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadIconTable("material", filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("icons: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadIconTable(path, "")
		if !errors.Is(err, ErrInvalidIconTable) {
			t.Errorf("error = %v, want ErrInvalidIconTable", err)
		}
	})
}

func TestAvailableTables(t *testing.T) {
	t.Parallel()

	if !slices.Contains(AvailableTables(), DefaultTableName) {
		t.Errorf("AvailableTables() = %v, want %q", AvailableTables(), DefaultTableName)
	}
}
