package site

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAssets(t *testing.T) {
	root := fstest.MapFS{
		"images/a.png":            {Data: []byte("a")},
		"images/nested/b.png":     {Data: []byte("b")},
		"images/nested/.DS_Store": {Data: []byte("x")},
		"images/src.psd":          {Data: []byte("psd")},
		"favicon.ico":             {Data: []byte("ico")},
		"data.json":               {Data: []byte("{}")},
	}

	got, err := CollectAssets(root, []string{"images/**", "favicon.ico", "images/*.png"}, []string{"**/.DS_Store", "*.psd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"favicon.ico", "images/a.png", "images/nested/b.png"}, got)
}

func TestCollectAssetsNoMatches(t *testing.T) {
	got, err := CollectAssets(fstest.MapFS{}, []string{"images/**"}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollectAssetsInvalidPattern(t *testing.T) {
	_, err := CollectAssets(fstest.MapFS{}, []string{"images/[a"}, nil)
	assert.Error(t, err)
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"images/logo.psd", []string{"*.psd"}, true},
		{"a/b/.DS_Store", []string{"**/.DS_Store"}, true},
		{"node_modules/x/y.js", []string{"node_modules/**"}, true},
		{"images/logo.png", []string{"*.psd"}, false},
		{"images/logo.png", nil, false},
	}
	for _, tt := range tests {
		if got := matchesAny(tt.path, tt.patterns); got != tt.want {
			t.Errorf("matchesAny(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}
