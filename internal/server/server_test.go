package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/interact"
	"github.com/ziadkadry99/landing/internal/page"
	"github.com/ziadkadry99/landing/internal/render"
	"github.com/ziadkadry99/landing/internal/site"
)

func newPages(t *testing.T, source string) *page.Bootstrapper {
	t.Helper()
	reg, err := render.New(render.Options{})
	require.NoError(t, err)
	return page.New(content.NewFileLoader(source), reg, interact.NewBinder(), nil)
}

func writeContent(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, content.WriteJSON(path, content.Starter("Minh Nguyen", "Backend Developer"), true))
	return path
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, nil, page.DefaultShell, nil, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, nil, page.DefaultShell, nil, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexRendersLive(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir)
	srv := New(Config{Dir: dir}, newPages(t, path), page.DefaultShell, nil, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Minh Nguyen")
	assert.Contains(t, w.Body.String(), `class="skill-item"`)

	// Edits to the document show up on the next request.
	doc := content.Starter("Lan Tran", "Designer")
	require.NoError(t, content.WriteJSON(path, doc, true))

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/index.html", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lan Tran")
	assert.NotContains(t, w.Body.String(), "Minh Nguyen")
}

func TestIndexLoadFailure(t *testing.T) {
	dir := t.TempDir()
	srv := New(Config{Dir: dir}, newPages(t, filepath.Join(dir, "missing.json")), page.DefaultShell, nil, nil)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "missing.json")
}

func TestIndexCommitFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir)
	shell := `<html><body><div id="logo"></div></body></html>`
	srv := New(Config{Dir: dir}, newPages(t, path), shell, nil, nil)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))
	srv := New(Config{Dir: dir}, newPages(t, path), page.DefaultShell, nil, nil)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/style.css", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/nope.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadSocket(t *testing.T) {
	hub := site.NewHub(nil)
	hub.SetBuildID("first")
	srv := New(Config{}, nil, page.DefaultShell, hub, nil)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg site.ReloadMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, site.ReloadMessage{Type: "reload", BuildID: "first"}, msg)

	hub.Broadcast("second")
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "second", msg.BuildID)
}

func TestNoReloadRouteWithoutHub(t *testing.T) {
	srv := New(Config{}, nil, page.DefaultShell, nil, nil)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/ws/reload", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
