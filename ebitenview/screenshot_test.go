package ebitenview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-fade", "after-fade"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
	if pixels[4] != 64 {
		t.Error("unpremultiply modified its input")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 2x3", cfg.Width, cfg.Height)
	}
}

func TestWritePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
