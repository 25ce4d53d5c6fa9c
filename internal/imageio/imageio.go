// Package imageio loads banner background photos. A background reference is
// either a local file path, an http(s) URL, or a data URI; all three decode
// to the same in-memory image before entering the state store. No size or
// dimension limits are enforced.
package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"banner-studio/internal/banner"
)

// fetchTimeout bounds remote background downloads.
const fetchTimeout = 10 * time.Second

// Load reads and decodes a background photo from a local file.
func Load(path string) (*banner.Background, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load background %s: %w", filepath.Base(path), err)
	}
	return &banner.Background{Image: img, Source: path}, nil
}

// Fetch downloads and decodes a background photo from an http(s) URL.
func Fetch(url string) (*banner.Background, error) {
	client := http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch background: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch background: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch background: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode fetched background: %w", err)
	}
	return &banner.Background{Image: img, Source: url}, nil
}

// FromDataURI decodes a base64 data URI of the form
// data:image/<type>;base64,<payload>.
func FromDataURI(uri string) (*banner.Background, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 || !strings.HasPrefix(uri, "data:") {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := uri[:idx], uri[idx+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data URI encoding in %q", meta)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode data URI image: %w", err)
	}
	return &banner.Background{Image: img, Source: uri}, nil
}

// Resolve dispatches on the reference format: data URI, remote URL, or file
// path.
func Resolve(ref string) (*banner.Background, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		return FromDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return Fetch(ref)
	default:
		return Load(ref)
	}
}

// SupportedExtensions returns the file extensions offered in open dialogs.
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedExtensions() {
		if ext == format {
			return true
		}
	}
	return false
}
