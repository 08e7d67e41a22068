//go:build dev
// +build dev

package web

import (
	"net/http"
	"os"
	"path/filepath"
)

func webDir() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return filepath.Join(wd, "web")
}

// GetFileSystem serves assets from disk in development mode
func GetFileSystem() http.FileSystem {
	return http.Dir(webDir())
}

// Index returns the SPA entry page from disk
func Index() ([]byte, error) {
	return os.ReadFile(filepath.Join(webDir(), "index.html"))
}
