package text

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/ggthumb/internal/fetch"
)

// Fetcher downloads the bytes behind a URL.
// Implementations must apply their own timeout.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IsURL reports whether family names a remote font rather than a family.
func IsURL(family string) bool {
	return strings.HasPrefix(family, "http://") || strings.HasPrefix(family, "https://")
}

// webFontFileName returns the cache file name for a font URL:
// "ggthumb_font_<sha256 hex>.<ext>", with ".ttf" when the URL has no
// extension.
func webFontFileName(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	ext := ".ttf"
	if u, err := url.Parse(rawURL); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = strings.ToLower(e)
		}
	}
	return "ggthumb_font_" + hex.EncodeToString(sum[:]) + ext
}

// defaultCacheDir returns the user cache directory for downloaded fonts,
// or a directory under the temp dir when there is none.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "ggthumb", "fonts")
	}
	return filepath.Join(os.TempDir(), "ggthumb", "fonts")
}

// webFonts downloads remote fonts into a cache directory. Concurrent
// requests for one URL share a single download.
type webFonts struct {
	dir     string
	fetcher Fetcher
	group   singleflight.Group
}

// file returns the cached path of the font at rawURL, downloading it when
// absent. Downloads are validated as fonts before they are persisted.
func (w *webFonts) file(ctx context.Context, rawURL string) (string, error) {
	p := filepath.Join(w.dir, webFontFileName(rawURL))
	if _, err := os.Stat(p); err == nil {
		Logger().Debug("text: web font cache hit", "url", rawURL, "path", p)
		return p, nil
	}

	v, err, _ := w.group.Do(p, func() (any, error) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		fetcher := w.fetcher
		if fetcher == nil {
			fetcher = fetch.DefaultDownloader()
		}
		Logger().Info("text: downloading web font", "url", rawURL)
		data, err := fetcher.Fetch(ctx, rawURL)
		if err != nil {
			return "", err
		}
		if _, err := NewFontSource(data); err != nil {
			return "", fmt.Errorf("text: downloaded font is unreadable: %w", err)
		}
		if err := fetch.WriteFileAtomic(p, data); err != nil {
			return "", err
		}
		return p, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
