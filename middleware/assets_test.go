package middleware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	assert.NoError(t, os.WriteFile(path, []byte("body { margin: 0; }"), 0644))

	hash := computeFileHash(path)
	assert.Len(t, hash, 8)
	// Deterministic for identical content
	assert.Equal(t, hash, computeFileHash(path))

	assert.Empty(t, computeFileHash(filepath.Join(dir, "missing.css")))
}

func TestAssetVersionFallbacks(t *testing.T) {
	// Before initialization the getters fall back to a constant version
	assert.Equal(t, "1", GetCSSVersion())
	assert.Equal(t, "1", GetAppJSVersion())
}

func TestInitAssetVersions(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("body{}"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("void 0;"), 0644))

	InitAssetVersions(dir)
	assert.Len(t, GetCSSVersion(), 8)
	assert.Len(t, GetAppJSVersion(), 8)
}
