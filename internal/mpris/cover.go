//go:build linux

package mpris

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// coverStems lists album art base names in priority order.
var coverStems = []string{"cover", "folder", "album", "front"}

var coverExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// artURL returns a file:// URL for album art next to trackPath, or "".
// Names are matched case-insensitively.
func artURL(trackPath string) string {
	if trackPath == "" {
		return ""
	}
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	found := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		ext := filepath.Ext(name)
		if !coverExts[ext] {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		if _, ok := found[stem]; !ok {
			found[stem] = e.Name()
		}
	}

	for _, stem := range coverStems {
		if name, ok := found[stem]; ok {
			u := url.URL{Scheme: "file", Path: filepath.Join(dir, name)}
			return u.String()
		}
	}
	return ""
}
