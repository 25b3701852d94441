package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/landing/internal/page"
	"github.com/ziadkadry99/landing/internal/progress"
)

// Generator builds the static page: index.html rendered from the shell,
// the stylesheet and script, a copy of the content document and the assets.
type Generator struct {
	Pages     *page.Bootstrapper
	ShellPath string
	SourceDir string
	OutputDir string
	Assets    []string
	Exclude   []string
	Reporter  progress.Reporter
	Logger    *zap.Logger

	mu sync.Mutex
}

// Build is the outcome of one Generate call.
type Build struct {
	ID     string
	Files  []string
	Assets int
	Page   *page.Result
}

// buildSteps is the number of progress updates Generate reports.
const buildSteps = 4

// Generate renders the page and writes every output file. The page is
// rendered before anything is written, so a failed load leaves the previous
// output in place. Concurrent calls are serialized.
func (g *Generator) Generate(ctx context.Context) (*Build, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rep.Start(buildSteps)
	defer rep.Finish()

	shell, err := LoadShell(g.ShellPath)
	if err != nil {
		return nil, err
	}

	rep.Update(1, "rendering page")
	html, res, err := g.Pages.RenderPage(ctx, strings.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	data, err := json.MarshalIndent(res.Document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	b := &Build{ID: uuid.NewString(), Page: res}

	rep.Update(2, "writing page")
	files := []struct {
		name string
		data []byte
	}{
		{"index.html", html},
		{"style.css", []byte(cssContent)},
		{"script.js", []byte(jsContent)},
		{"data.json", append(data, '\n')},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		b.Files = append(b.Files, f.name)
	}

	rep.Update(3, "copying assets")
	n, err := g.copyAssets()
	if err != nil {
		return nil, err
	}
	b.Assets = n

	rep.Update(4, "done")
	logger.Info("page built",
		zap.String("build_id", b.ID),
		zap.String("output", g.OutputDir),
		zap.Int("assets", b.Assets),
	)
	return b, nil
}

func (g *Generator) copyAssets() (int, error) {
	if len(g.Assets) == 0 {
		return 0, nil
	}
	src := g.SourceDir
	if src == "" {
		src = "."
	}
	exclude := append([]string{}, g.Exclude...)
	if rel, ok := within(src, g.OutputDir); ok {
		exclude = append(exclude, rel+"/**")
	}

	root := os.DirFS(src)
	paths, err := CollectAssets(root, g.Assets, exclude)
	if err != nil {
		return 0, err
	}
	for _, p := range paths {
		if err := copyAsset(root, p, g.OutputDir); err != nil {
			return 0, fmt.Errorf("copying %s: %w", p, err)
		}
	}
	return len(paths), nil
}

// within reports whether dir lies inside root and returns its slash path
// relative to root.
func within(root, dir string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// LoadShell returns the page shell at path, or the built-in shell when path
// is empty.
func LoadShell(path string) (string, error) {
	if path == "" {
		return page.DefaultShell, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shell: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("shell %s is empty", path)
	}
	return string(data), nil
}
