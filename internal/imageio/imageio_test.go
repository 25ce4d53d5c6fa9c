package imageio

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, encodeTestPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}

	bg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bg.Source != path {
		t.Errorf("source = %q, want %q", bg.Source, path)
	}
	if b := bg.Image.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 4x3", b)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestFromDataURI(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodeTestPNG(t))

	bg, err := FromDataURI(uri)
	if err != nil {
		t.Fatalf("FromDataURI: %v", err)
	}
	if b := bg.Image.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 4x3", b)
	}
}

func TestFromDataURIRejectsMalformed(t *testing.T) {
	for _, uri := range []string{
		"",
		"data:image/png;base64",           // no comma
		"image/png;base64,AAAA",           // missing data: prefix
		"data:image/png,rawbytes",         // not base64-encoded
		"data:image/png;base64,!!not64!!", // invalid payload
	} {
		if _, err := FromDataURI(uri); err == nil {
			t.Errorf("FromDataURI(%q) should fail", uri)
		}
	}
}

func TestFetch(t *testing.T) {
	data := encodeTestPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	bg, err := Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if bg.Source != srv.URL {
		t.Errorf("source = %q, want %q", bg.Source, srv.URL)
	}
	if b := bg.Image.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 4x3", b)
	}
}

func TestFetchNon200Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL); err == nil {
		t.Error("404 response should fail")
	}
}

func TestResolveDispatch(t *testing.T) {
	// Local path branch: a real file round-trips.
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, encodeTestPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path); err != nil {
		t.Errorf("Resolve(file path): %v", err)
	}

	// Data URI branch rejects garbage without touching the filesystem.
	if _, err := Resolve("data:text/plain,hello"); err == nil {
		t.Error("Resolve(non-base64 data URI) should fail")
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"dir/photo.jpeg", true},
		{"photo.webp", false},
		{"photo", false},
	}
	for _, tt := range tests {
		if got := IsSupportedFormat(tt.path); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
