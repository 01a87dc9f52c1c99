package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	cssVersion        string
	appJSVersion      string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		cssVersion = computeFileHash(filepath.Join(staticDir, "css", "style.css"))
		if cssVersion == "" {
			cssVersion = "1"
		}
		log.Printf("[INFO] CSS version initialized: %s", cssVersion)

		appJSVersion = computeFileHash(filepath.Join(staticDir, "js", "app.js"))
		if appJSVersion == "" {
			appJSVersion = "1"
		}
		log.Printf("[INFO] App JS version initialized: %s", appJSVersion)
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// First 8 chars are enough for cache busting
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetCSSVersion returns the CSS file version hash for cache busting.
// The version is computed once at startup.
func GetCSSVersion() string {
	if cssVersion == "" {
		return "1"
	}
	return cssVersion
}

// GetAppJSVersion returns the app.js file version hash for cache busting
func GetAppJSVersion() string {
	if appJSVersion == "" {
		return "1"
	}
	return appJSVersion
}
