package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-colour PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

// createGrayImage returns an in-memory grayscale image filled with v.
func createGrayImage(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestLoadGray(t *testing.T) {
	path := createTestImage(t, 40, 30, color.RGBA{255, 255, 255, 255})

	img, err := LoadGray(path)
	if err != nil {
		t.Fatalf("LoadGray failed: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("bounds: got %v, want (0,0)-(40,30)", img.Bounds())
	}
	if got := img.GrayAt(10, 10).Y; got != 255 {
		t.Errorf("white pixel: got %d, want 255", got)
	}
}

func TestLoadGray_Luminance(t *testing.T) {
	path := createTestImage(t, 10, 10, color.RGBA{255, 0, 0, 255})

	img, err := LoadGray(path)
	if err != nil {
		t.Fatalf("LoadGray failed: %v", err)
	}

	// BT.601 luma of pure red is ~76
	got := img.GrayAt(5, 5).Y
	if got < 70 || got > 82 {
		t.Errorf("red luminance: got %d, want ~76", got)
	}
}

func TestLoadGray_NonExistent(t *testing.T) {
	_, err := LoadGray(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadGray_Directory(t *testing.T) {
	_, err := LoadGray(t.TempDir())
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("expected ErrNotRegularFile, got %v", err)
	}
}

func TestLoadGray_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadGray(path); err == nil {
		t.Error("expected error for invalid image")
	}
}

func TestToGray_RebasesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 30, 40))
	src.Set(10, 20, color.White)

	gray := ToGray(src)

	if gray.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Errorf("bounds: got %v, want (0,0)-(20,20)", gray.Bounds())
	}
	if gray.GrayAt(0, 0).Y != 255 {
		t.Errorf("origin pixel: got %d, want 255", gray.GrayAt(0, 0).Y)
	}
}
