package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/interact"
	"github.com/ziadkadry99/landing/internal/page"
	"github.com/ziadkadry99/landing/internal/render"
)

// setupSource creates a source directory with a content document and a few
// asset files.
func setupSource(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"images/avatar.jpg":   "jpg",
		"images/logo.png":     "png",
		"images/raw/logo.psd": "psd",
		"files/cv.pdf":        "pdf",
		"notes.txt":           "not an asset",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	require.NoError(t, content.WriteJSON(filepath.Join(dir, "data.json"), content.Starter("Minh Nguyen", "Backend Developer"), true))
	return dir
}

func newGenerator(t *testing.T, src, out string) *Generator {
	t.Helper()
	reg, err := render.New(render.Options{})
	require.NoError(t, err)
	return &Generator{
		Pages:     page.New(content.NewFileLoader(filepath.Join(src, "data.json")), reg, interact.NewBinder(), nil),
		SourceDir: src,
		OutputDir: out,
		Assets:    []string{"images/**", "files/**", "favicon.ico"},
		Exclude:   []string{"*.psd"},
	}
}

func TestGenerate(t *testing.T) {
	src := setupSource(t)
	out := filepath.Join(t.TempDir(), "public")

	b, err := newGenerator(t, src, out).Generate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, []string{"index.html", "style.css", "script.js", "data.json"}, b.Files)
	assert.Equal(t, 3, b.Assets)
	require.NotNil(t, b.Page)
	assert.Equal(t, "Minh Nguyen", b.Page.Document.Hero.Name)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	html := string(index)
	assert.Contains(t, html, `<h1 class="hero-ten">Minh Nguyen</h1>`)
	assert.Contains(t, html, `<script src="script.js"></script>`)
	assert.Equal(t, 4, strings.Count(html, "<li>"))

	for _, name := range []string{"style.css", "script.js", "images/avatar.jpg", "images/logo.png", "files/cv.pdf"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"images/raw/logo.psd", "notes.txt"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.True(t, os.IsNotExist(err), "%s should not be copied", name)
	}

	data, err := os.ReadFile(filepath.Join(out, "data.json"))
	require.NoError(t, err)
	var doc content.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Navigation.Menu, 4)
}

func TestGenerateKeepsOutputOnLoadFailure(t *testing.T) {
	src := setupSource(t)
	out := filepath.Join(t.TempDir(), "public")
	g := newGenerator(t, src, out)

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(src, "data.json"), []byte("{broken"), 0o644))
	_, err = g.Generate(context.Background())
	require.Error(t, err)

	var perr *content.ParseError
	assert.ErrorAs(t, err, &perr)

	after, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGenerateSkipsOutputInsideSource(t *testing.T) {
	src := setupSource(t)
	out := filepath.Join(src, "images", "public")
	g := newGenerator(t, src, out)

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	b, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, b.Assets)
	_, err = os.Stat(filepath.Join(out, "images", "public"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCustomShell(t *testing.T) {
	src := setupSource(t)
	out := filepath.Join(t.TempDir(), "public")
	shell := filepath.Join(src, "shell.html")
	custom := strings.Replace(page.DefaultShell, "<title>Profile</title>", "<title>Custom</title>", 1)
	require.NoError(t, os.WriteFile(shell, []byte(custom), 0o644))

	g := newGenerator(t, src, out)
	g.ShellPath = shell
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>Custom</title>")
}

func TestLoadShell(t *testing.T) {
	s, err := LoadShell("")
	require.NoError(t, err)
	assert.Equal(t, page.DefaultShell, s)

	_, err = LoadShell(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.html")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	_, err = LoadShell(empty)
	assert.Error(t, err)
}

func TestWithin(t *testing.T) {
	root := t.TempDir()

	rel, ok := within(root, filepath.Join(root, "public"))
	assert.True(t, ok)
	assert.Equal(t, "public", rel)

	_, ok = within(root, root)
	assert.False(t, ok)

	_, ok = within(filepath.Join(root, "src"), filepath.Join(root, "public"))
	assert.False(t, ok)
}

func TestScriptMirrorsBinder(t *testing.T) {
	for _, want := range []string{
		`getElementById("` + interact.ToggleID + `")`,
		`getElementById("` + interact.MenuID + `")`,
		`classList.toggle("` + interact.ActiveClass + `")`,
		`a[href^="#"]`,
		`behavior: "smooth", block: "start"`,
		`/ws/reload`,
	} {
		assert.Contains(t, jsContent, want)
	}
}
