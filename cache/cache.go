package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
)

const cacheRoot = "cache"

// GetCachePath returns the cache file path for a rendered page.
func GetCachePath(page string) string {
	hash := generateHash(page)
	return filepath.Join(cacheRoot, fmt.Sprintf("%s_%s.html", page, hash[:16]))
}

// generateHash generates an xxHash hash for the given string.
func generateHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// WriteCache writes rendered HTML to the cache file.
func WriteCache(page, html string) error {
	if err := os.MkdirAll(cacheRoot, 0755); err != nil {
		return err
	}
	return os.WriteFile(GetCachePath(page), []byte(html), 0644)
}

// ReadCache reads cached HTML if it exists and is not expired.
func ReadCache(page string, maxAge time.Duration) (string, bool) {
	cachePath := GetCachePath(page)

	info, err := os.Stat(cachePath)
	if err != nil {
		return "", false
	}

	if time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return "", false
	}

	return string(content), true
}

// ClearCache removes the cache file for a page.
func ClearCache(page string) error {
	err := os.Remove(GetCachePath(page))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearAll drops every cached page. Called after any portfolio mutation so
// edits show up immediately.
func ClearAll() error {
	return os.RemoveAll(cacheRoot)
}
