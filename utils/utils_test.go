package utils

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSortPaletteByBrightness(t *testing.T) {
	palette := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0, G: 0, B: 0},
	}
	SortPaletteByBrightness(palette)
	if palette[0].R != 0 || palette[2].R != 1 {
		t.Errorf("palette not ordered dark to bright: %v", palette)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SaveImage(img, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", loaded.Bounds(), img.Bounds())
	}
	r, g, b, _ := loaded.At(2, 3).RGBA()
	if r>>8 != 120 || g>>8 != 180 || b>>8 != 128 {
		t.Errorf("pixel (2,3) = (%d,%d,%d), want (120,180,128)", r>>8, g>>8, b>>8)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSavePaletteRejectsEmpty(t *testing.T) {
	if err := SavePalette(nil, 8, filepath.Join(t.TempDir(), "p.png")); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestExtractDominantPaletteTwoTone(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if x < 32 {
				img.SetRGBA(x, y, color.RGBA{R: 250, G: 250, B: 250, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 10, G: 10, B: 10, A: 255})
			}
		}
	}
	palette := ExtractDominantPalette(img, 2)
	if len(palette) == 0 {
		t.Fatal("empty palette")
	}
	ink, paper := DuotonePalette(img, PaletteMethodDominantColor)
	if ink.R > paper.R {
		t.Errorf("ink %v is brighter than paper %v", ink, paper)
	}
}
