package mailicons

// Notes:
// - DefaultSources are never contacted; every test serves icons from httptest.
// - The client timeout is not tested with a slow server; cancellation is
//   covered through the context instead.

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

// iconServer serves /{variant}/{name}.svg from a fixed set of payloads.
func iconServer(t *testing.T, payloads map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, ok := payloads[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func fetchTable(t *testing.T, names ...string) *IconTable {
	t.Helper()

	entries := make([]IconEntry, len(names))
	for i, n := range names {
		entries[i] = IconEntry{Name: n, Path: "assets/images/icons/" + n + ".svg"}
	}
	table, err := NewIconTable(entries)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

// ---------------------------------------------------------------------------
// TestNewFetcher - Source validation
// ---------------------------------------------------------------------------

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sources []string
		wantErr error
	}{
		{"default sources", nil, nil},
		{"custom source", []string{"https://cdn.example.com/{name}.svg"}, nil},
		{"missing placeholder", []string{"https://cdn.example.com/icon.svg"}, ErrInvalidSource},
		{"not http", []string{"file:///icons/{name}.svg"}, ErrInvalidSource},
		{"empty list", []string{}, ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []FetchOption
			if tt.sources != nil {
				opts = append(opts, WithSources(tt.sources...))
			}

			f, err := NewFetcher(opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewFetcher() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFetcher() unexpected error: %v", err)
			}
			if tt.sources == nil && len(f.Sources()) != len(DefaultSources) {
				t.Errorf("Sources() = %v, want defaults", f.Sources())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFetcher_Fetch - Downloads, fallthrough and failures
// ---------------------------------------------------------------------------

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("falls through sources in order", func(t *testing.T) {
		t.Parallel()

		srv, _ := iconServer(t, map[string]string{
			"/filled/favorite.svg":    testSVG,
			"/outlined/handshake.svg": "<?xml version=\"1.0\"?>\n<!-- outlined -->\n" + testSVG,
		})
		f, err := NewFetcher(
			WithHTTPClient(srv.Client()),
			WithSources(srv.URL+"/filled/{name}.svg", srv.URL+"/outlined/{name}.svg"),
		)
		if err != nil {
			t.Fatal(err)
		}

		dest := filepath.Join(t.TempDir(), "icons")
		results, err := f.Fetch(context.Background(), fetchTable(t, "favorite", "handshake", "missing"), dest)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("len(results) = %d, want 3", len(results))
		}

		if results[0].Err != nil || !strings.Contains(results[0].Source, "/filled/") {
			t.Errorf("favorite = %+v, want filled source", results[0])
		}
		if results[1].Err != nil || !strings.Contains(results[1].Source, "/outlined/") {
			t.Errorf("handshake = %+v, want outlined source", results[1])
		}
		if !errors.Is(results[2].Err, ErrAllSourcesFailed) || !errors.Is(results[2].Err, ErrFetchStatus) {
			t.Errorf("missing err = %v, want ErrAllSourcesFailed wrapping ErrFetchStatus", results[2].Err)
		}

		got, err := os.ReadFile(filepath.Join(dest, "favorite.svg"))
		if err != nil {
			t.Fatalf("favorite.svg not written: %v", err)
		}
		if string(got) != testSVG {
			t.Errorf("favorite.svg = %q", got)
		}
		if _, err := os.Stat(filepath.Join(dest, "missing.svg")); !os.IsNotExist(err) {
			t.Error("missing.svg should not exist")
		}
	})

	t.Run("rejects non-svg payload", func(t *testing.T) {
		t.Parallel()

		srv, _ := iconServer(t, map[string]string{
			"/a/speed.svg": "<html><body>Not found</body></html>",
			"/b/speed.svg": "plain text",
		})
		f, err := NewFetcher(
			WithHTTPClient(srv.Client()),
			WithSources(srv.URL+"/a/{name}.svg", srv.URL+"/b/{name}.svg"),
		)
		if err != nil {
			t.Fatal(err)
		}

		results, err := f.Fetch(context.Background(), fetchTable(t, "speed"), t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if !errors.Is(results[0].Err, ErrNotSVG) {
			t.Errorf("err = %v, want ErrNotSVG", results[0].Err)
		}
	})

	t.Run("skips existing files without requests", func(t *testing.T) {
		t.Parallel()

		srv, hits := iconServer(t, map[string]string{"/speed.svg": testSVG})
		f, err := NewFetcher(
			WithHTTPClient(srv.Client()),
			WithSources(srv.URL+"/{name}.svg"),
			WithSkipExisting(true),
		)
		if err != nil {
			t.Fatal(err)
		}

		dest := t.TempDir()
		if err := os.WriteFile(filepath.Join(dest, "speed.svg"), []byte("<svg/>"), 0o644); err != nil {
			t.Fatal(err)
		}

		results, err := f.Fetch(context.Background(), fetchTable(t, "speed"), dest)
		if err != nil {
			t.Fatal(err)
		}
		if !results[0].Skipped || results[0].Err != nil {
			t.Errorf("result = %+v, want skipped", results[0])
		}
		if hits.Load() != 0 {
			t.Errorf("server hits = %d, want 0", hits.Load())
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		srv, hits := iconServer(t, map[string]string{"/speed.svg": testSVG})
		f, err := NewFetcher(WithHTTPClient(srv.Client()), WithSources(srv.URL+"/{name}.svg"))
		if err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := f.Fetch(ctx, fetchTable(t, "speed", "person"), t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("%s err = %v, want context.Canceled", r.Name, r.Err)
			}
		}
		if hits.Load() != 0 {
			t.Errorf("server hits = %d, want 0", hits.Load())
		}
	})

	t.Run("unusable destination", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		f, err := NewFetcher()
		if err != nil {
			t.Fatal(err)
		}

		if _, err := f.Fetch(context.Background(), fetchTable(t, "speed"), filepath.Join(file, "icons")); err == nil {
			t.Error("Fetch() error = nil, want directory creation failure")
		}
	})
}

func TestIsSVGDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want bool
	}{
		{"bare svg", testSVG, true},
		{"xml declaration", `<?xml version="1.0" encoding="UTF-8"?>` + testSVG, true},
		{"doctype and comment", `<!DOCTYPE svg><!-- icon -->` + testSVG, true},
		{"byte order mark", "\xef\xbb\xbf" + testSVG, true},
		{"leading whitespace", "\n  " + testSVG, true},
		{"self closing", `<svg/>`, true},
		{"html page", `<!DOCTYPE html><html><body></body></html>`, false},
		{"text first", `oops<svg></svg>`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isSVGDocument([]byte(tt.data)); got != tt.want {
				t.Errorf("isSVGDocument(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
