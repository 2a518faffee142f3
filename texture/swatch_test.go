package texture

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/patternbuilder"
)

func countBlack(img *image.RGBA) int {
	black := 0
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == 0 && g == 0 && b == 0 {
				black++
			}
		}
	}
	return black
}

func TestBayerSwatchDensities(t *testing.T) {
	cases := []struct {
		density   float64
		wantWhite int
	}{
		{0.0, 64},
		{0.5, 32},
		// int(0.1*64) truncates to 6, leaving levels 6..63 white.
		{0.1, 58},
		{0.875, 8},
		{1.0, 0},
	}
	for _, c := range cases {
		img := BayerSwatch(c.density, false)
		if got := 64 - countBlack(img); got != c.wantWhite {
			t.Errorf("density %v: %d white pixels, want %d", c.density, got, c.wantWhite)
		}
	}
}

func TestBayerSwatchInvertIsComplement(t *testing.T) {
	straight := BayerSwatch(0.375, false)
	inverted := BayerSwatch(0.375, true)
	if got, want := countBlack(inverted), 64-countBlack(straight); got != want {
		t.Errorf("inverted swatch has %d black pixels, want %d", got, want)
	}
}

func TestMacSwatchRamp(t *testing.T) {
	if got := countBlack(MacSwatch(0.0, false)); got != 64 {
		t.Errorf("lightness 0: %d black pixels, want 64", got)
	}
	if got := countBlack(MacSwatch(1.0, false)); got != 0 {
		t.Errorf("lightness 1: %d black pixels, want 0", got)
	}
	// lightness 0.5 exceeds exactly the 32 table values below one half.
	if got := 64 - countBlack(MacSwatch(0.5, false)); got != 32 {
		t.Errorf("lightness 0.5: %d white pixels, want 32", got)
	}
	if got := 64 - countBlack(MacSwatch(0.125, false)); got != 8 {
		t.Errorf("lightness 0.125: %d white pixels, want 8", got)
	}
}

func TestShadowSwatchCounts(t *testing.T) {
	// Black where lightness < value; table levels strictly above 0.5 are
	// 33/64..63/64, 31 cells in total.
	img := ShadowSwatch(0.5)
	if got := countBlack(img); got != 31 {
		t.Errorf("shadow 0.5: %d black pixels, want 31", got)
	}
	// The rest must be the mid gray, not white.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
		t.Error("shadow swatch contains white pixels")
	}
}

func TestHyperCardSwatches(t *testing.T) {
	img, err := HyperCardSwatch("diagonal")
	if err != nil {
		t.Fatal(err)
	}
	if got := countBlack(img); got != 8 {
		t.Errorf("diagonal: %d black pixels, want 8", got)
	}
	for y := 0; y < Side; y++ {
		r, _, _, _ := img.At(y, y).RGBA()
		if r != 0 {
			t.Errorf("diagonal pixel (%d,%d) is not black", y, y)
		}
	}

	if _, err := HyperCardSwatch("plaid"); !errors.Is(err, patternbuilder.ErrUnsupportedPattern) {
		t.Errorf("unknown pattern error = %v, want ErrUnsupportedPattern", err)
	}
}

func TestDotSwatchGeometry(t *testing.T) {
	// Diameter 2 covers the center pixel and its four axis neighbors.
	if got := countBlack(DotSwatch(2)); got != 5 {
		t.Errorf("dot size 2: %d black pixels, want 5", got)
	}
	if got := countBlack(DotSwatch(1)); got != 1 {
		t.Errorf("dot size 1: %d black pixels, want 1", got)
	}
}

func TestHalftoneSwatchGeometry(t *testing.T) {
	// Density 0.2 gives radius 0.56, short of the nearest pixel center
	// at distance sqrt(0.5); density 0.4 reaches the four center pixels.
	if got := countBlack(HalftoneSwatch(0.2)); got != 0 {
		t.Errorf("density 0.2: %d black pixels, want 0", got)
	}
	if got := countBlack(HalftoneSwatch(0.4)); got != 4 {
		t.Errorf("density 0.4: %d black pixels, want 4", got)
	}
}

func TestCheckerboardSwatch(t *testing.T) {
	img := CheckerboardSwatch(colorful.Color{R: 1, G: 1, B: 1}, colorful.Color{})
	if got := countBlack(img); got != 32 {
		t.Errorf("checkerboard: %d black pixels, want 32", got)
	}
}

func TestLibraryDeterministic(t *testing.T) {
	a := Library()
	b := Library()
	if len(a) != len(b) {
		t.Fatalf("library sizes differ: %d vs %d", len(a), len(b))
	}

	seen := make(map[string]bool)
	for i, e := range a {
		path := e.Dir + "/" + e.FileName()
		if seen[path] {
			t.Errorf("duplicate asset path %s", path)
		}
		seen[path] = true

		img1 := e.Render()
		img2 := b[i].Render()
		if img1.Bounds().Dx() != Side || img1.Bounds().Dy() != Side {
			t.Errorf("%s: size %v, want %dx%d", path, img1.Bounds(), Side, Side)
		}
		rgba1, ok1 := img1.(*image.RGBA)
		rgba2, ok2 := img2.(*image.RGBA)
		if !ok1 || !ok2 {
			t.Fatalf("%s: renderer did not return *image.RGBA", path)
		}
		if diff := cmp.Diff(rgba1.Pix, rgba2.Pix); diff != "" {
			t.Errorf("%s renders differently across calls:\n%s", path, diff)
		}
	}
}

func TestSheetLayout(t *testing.T) {
	entries := Library()[:10]
	img := Sheet(entries, 4)
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Fatalf("degenerate sheet bounds %v", img.Bounds())
	}
	// Ten entries at eight per row need two rows.
	cell := Side * 4
	wantW := 8*(cell+10) + 10
	wantH := 2*(cell+16+10) + 10
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("sheet size = %v, want %dx%d", img.Bounds(), wantW, wantH)
	}
}
