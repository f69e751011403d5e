package mailicons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/alnah/go-mailicons/internal/fileutil"
)

// DefaultSources are the Material Icons download locations, tried in order.
var DefaultSources = []string{
	"https://fonts.gstatic.com/s/i/materialicons/{name}/v1/24px.svg",
	"https://fonts.gstatic.com/s/i/materialiconsoutlined/{name}/v1/24px.svg",
	"https://fonts.gstatic.com/s/i/materialiconsround/{name}/v1/24px.svg",
}

// Fetch limits.
const (
	// DefaultFetchTimeout bounds each HTTP request.
	DefaultFetchTimeout = 10 * time.Second

	// MaxSVGSize caps downloaded payloads. Icon SVGs are a few hundred bytes.
	MaxSVGSize = 512 << 10

	namePlaceholder = "{name}"
)

// FetchResult reports the download of one icon.
type FetchResult struct {
	Name    string // icon name
	Path    string // destination file
	Source  string // URL that succeeded, empty on failure or skip
	Skipped bool   // destination already existed and overwrite was off
	Err     error  // nil on success or skip
}

// Fetcher downloads SVG assets for the icons of a table.
// Each source is tried once per icon, in order; there is no retry.
type Fetcher struct {
	client       *http.Client
	sources      []string
	skipExisting bool
}

// FetchOption configures a Fetcher.
type FetchOption func(*Fetcher)

// WithSources replaces DefaultSources. Each source is a URL template
// containing {name}.
func WithSources(sources ...string) FetchOption {
	return func(f *Fetcher) {
		f.sources = append([]string(nil), sources...)
	}
}

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithSkipExisting leaves icons whose destination file exists untouched.
func WithSkipExisting(skip bool) FetchOption {
	return func(f *Fetcher) {
		f.skipExisting = skip
	}
}

// NewFetcher creates a Fetcher using DefaultSources and a client with
// DefaultFetchTimeout unless overridden.
// Returns ErrInvalidSource if a source is not an http(s) template with {name}.
func NewFetcher(opts ...FetchOption) (*Fetcher, error) {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		sources: DefaultSources,
	}
	for _, opt := range opts {
		opt(f)
	}

	if len(f.sources) == 0 {
		return nil, fmt.Errorf("%w: no sources", ErrInvalidSource)
	}
	for _, s := range f.sources {
		if !fileutil.IsURL(s) || !strings.Contains(s, namePlaceholder) {
			return nil, fmt.Errorf("%w: %q must be an http(s) URL containing %s", ErrInvalidSource, s, namePlaceholder)
		}
	}

	return f, nil
}

// Sources returns the URL templates in the order they are tried.
func (f *Fetcher) Sources() []string {
	return append([]string(nil), f.sources...)
}

// Fetch downloads {destDir}/{name}.svg for every icon of table, in table
// order. A failing icon does not stop the others. Once ctx is done the
// remaining icons are reported with ctx.Err().
// The returned error is only set when destDir cannot be created.
func (f *Fetcher) Fetch(ctx context.Context, table *IconTable, destDir string) ([]FetchResult, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination directory: %w", err)
	}

	results := make([]FetchResult, 0, table.Len())
	for _, name := range table.Names() {
		results = append(results, f.fetchOne(ctx, name, destDir))
	}
	return results, nil
}

// fetchOne tries each source for one icon and writes the first valid payload.
func (f *Fetcher) fetchOne(ctx context.Context, name, destDir string) FetchResult {
	result := FetchResult{Name: name, Path: filepath.Join(destDir, name+".svg")}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		result.Err = fmt.Errorf("icon name %q cannot be used as a file name", name)
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}
	if f.skipExisting && fileutil.FileExists(result.Path) {
		result.Skipped = true
		return result
	}

	var errs []error
	for _, tmpl := range f.sources {
		url := strings.ReplaceAll(tmpl, namePlaceholder, name)

		data, err := f.download(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				result.Err = ctx.Err()
				return result
			}
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			continue
		}

		if err := fileutil.WriteFileAtomic(result.Path, data); err != nil {
			result.Err = fmt.Errorf("writing %s: %w", result.Path, err)
			return result
		}
		result.Source = url
		return result
	}

	result.Err = fmt.Errorf("%w for %q: %w", ErrAllSourcesFailed, name, errors.Join(errs...))
	return result
}

// download performs a single GET and returns the body if it is an SVG document.
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrFetchStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSVGSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSVGSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, MaxSVGSize)
	}
	if !isSVGDocument(data) {
		return nil, ErrNotSVG
	}

	return data, nil
}

// isSVGDocument reports whether the first element of data is <svg>.
// A byte order mark, XML declarations, doctypes, comments and whitespace
// may precede it.
func isSVGDocument(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.CommentToken, html.DoctypeToken:
			continue
		case html.TextToken:
			if len(bytes.TrimSpace(z.Text())) > 0 {
				return false
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			tag, _ := z.TagName()
			return string(tag) == "svg"
		default:
			return false
		}
	}
}
