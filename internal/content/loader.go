package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSource is the conventional location of the content document,
// relative to the page.
const DefaultSource = "data.json"

// maxDocumentSize is the largest response body accepted as a document.
const maxDocumentSize = 4 << 20

// Loader fetches and decodes the content document. Each call performs a
// fresh read of the source; nothing is cached and nothing is retried.
type Loader interface {
	Load(ctx context.Context) (*Document, error)
	Source() string
}

// Format identifies the encoding of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// formatFor picks the decoding based on the resource name, falling back to
// JSON which is the conventional encoding.
func formatFor(name, contentType string) Format {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			if strings.Contains(mt, "yaml") {
				return FormatYAML
			}
			if strings.Contains(mt, "json") {
				return FormatJSON
			}
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses raw bytes in the given format and validates the result.
// Any failure is returned as a *ParseError.
func Decode(source string, data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &doc, nil
}

// HTTPLoader fetches the document over HTTP, the way a browser would
// request a file sitting next to the page.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// NewHTTPLoader resolves ref against base (which may be empty) and returns
// a loader for the resulting URL.
func NewHTTPLoader(base, ref string, timeout time.Duration) (*HTTPLoader, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing content url %q: %w", ref, err)
	}
	if base != "" {
		b, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base url %q: %w", base, err)
		}
		u = b.ResolveReference(u)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("content url %q is not absolute and no base url is set", u)
	}
	return &HTTPLoader{
		URL:    u.String(),
		Client: &http.Client{Timeout: timeout},
	}, nil
}

// Source returns the URL being fetched.
func (l *HTTPLoader) Source() string { return l.URL }

// Load issues a single GET request for the document.
func (l *HTTPLoader) Load(ctx context.Context) (*Document, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: l.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: l.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: l.URL, Status: resp.StatusCode, Err: fmt.Errorf("%s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, &LoadError{Source: l.URL, Err: err}
	}
	if len(body) > maxDocumentSize {
		return nil, &LoadError{Source: l.URL, Err: fmt.Errorf("document exceeds %d MiB", maxDocumentSize>>20)}
	}

	return Decode(l.URL, body, formatFor(req.URL.Path, resp.Header.Get("Content-Type")))
}

// FileLoader reads the document from a file system.
type FileLoader struct {
	FS   fs.FS
	Path string
}

// NewFileLoader returns a loader reading name from the operating system
// file system. Relative names resolve against the working directory.
func NewFileLoader(name string) *FileLoader {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	return &FileLoader{FS: os.DirFS(filepath.Dir(abs)), Path: filepath.Base(abs)}
}

// Source returns the path being read.
func (l *FileLoader) Source() string { return l.Path }

// Load reads and decodes the file.
func (l *FileLoader) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: l.Path, Err: err}
	}
	data, err := fs.ReadFile(l.FS, l.Path)
	if err != nil {
		return nil, &LoadError{Source: l.Path, Err: err}
	}
	return Decode(l.Path, data, formatFor(l.Path, ""))
}

// NewLoader selects an HTTP loader for http(s) sources and a file loader
// for everything else.
func NewLoader(source string, timeout time.Duration) (Loader, error) {
	if source == "" {
		source = DefaultSource
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPLoader("", source, timeout)
	}
	return NewFileLoader(source), nil
}
