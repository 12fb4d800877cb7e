package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	mandel "github.com/marben/mandeltiles"
)

func originView() mandel.Viewport {
	return mandel.NewViewport(64, 64, 0, 0, mandel.MinZoom, 50)
}

func TestPNG(t *testing.T) {
	for _, ss := range []int{1, 2} {
		var buf bytes.Buffer
		if err := PNG(&buf, originView(), 128, 96, ss); err != nil {
			t.Fatalf("ss=%d: PNG: %v", ss, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("ss=%d: png.Decode: %v", ss, err)
		}
		if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
			t.Errorf("ss=%d: expected 128x96, got %v", ss, b)
		}
		if r, g, b, _ := img.At(64, 48).RGBA(); r != 0 || g != 0 || b != 0 {
			t.Errorf("ss=%d: expected black at the origin, got %d %d %d", ss, r, g, b)
		}
	}
}

func TestRenderMatchesScaledView(t *testing.T) {
	v := originView()
	img, _, err := Render(v, 128, 128, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want, _ := mandel.NewEngine().Render(v.Scaled(128, 128))
	fb, ok := img.(*mandel.Framebuffer)
	if !ok {
		t.Fatalf("expected framebuffer without supersampling, got %T", img)
	}
	if !bytes.Equal(fb.Pix, want.Pix) {
		t.Error("expected export to match a direct render of the scaled view")
	}
}

func TestRenderWideExportKeepsRegion(t *testing.T) {
	v := mandel.NewViewport(100, 100, -50, 0, 100, 60)
	img, _, err := Render(v, 300, 100, 1, mandel.WithTileSize(16))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	view, _ := mandel.NewEngine(mandel.WithTileSize(16)).Render(v)

	// same zoom; the live view sits in the middle third of the export
	for y := range 100 {
		for x := range 100 {
			if got, want := img.At(x+100, y), view.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRenderRejectsBadArguments(t *testing.T) {
	tests := []struct {
		w, h, ss int
	}{
		{0, 10, 1},
		{10, -1, 1},
		{10, 10, 0},
		{10, 10, MaxSupersample + 1},
	}
	for _, tt := range tests {
		_, _, err := Render(originView(), tt.w, tt.h, tt.ss)
		if !errors.Is(err, mandel.ErrInvalidArgument) {
			t.Errorf("%dx%d ss=%d: expected ErrInvalidArgument, got %v", tt.w, tt.h, tt.ss, err)
		}
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := File(path, originView(), 32, 32, 1, mandel.WithTileSize(8)); err != nil {
		t.Fatalf("File: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("expected 32x32, got %dx%d", cfg.Width, cfg.Height)
	}
}
