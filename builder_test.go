package patternbuilder

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func uniformGrayImage(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func countWhite(img *image.Gray) int {
	white := 0
	for _, v := range img.Pix {
		if v == 255 {
			white++
		}
	}
	return white
}

func TestBuildMidGrayBayer4(t *testing.T) {
	// Gray 128 has luma 128, which is above the crop tolerance, so the
	// full 16x16 canvas survives and tiles exactly 4x4 times. Its
	// normalized value 128/255 strictly exceeds the nine thresholds
	// 0/16..8/16, giving 9 white cells per tile.
	img := uniformGrayImage(16, 16, 128)
	pb := NewPatternBuilder(img, NewSpec(Bayer4))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if pb.CropBounds != img.Bounds() {
		t.Errorf("crop bounds = %v, want full image %v", pb.CropBounds, img.Bounds())
	}
	if got := countWhite(pb.Output); got != 9*16 {
		t.Errorf("white cells = %d, want %d", got, 9*16)
	}
}

func TestBuildMidGrayMacHalftone(t *testing.T) {
	// The Macintosh table holds each level k/64 exactly once per 8x8
	// tile. Gray 128 normalizes to 128/255, which strictly exceeds the
	// 33 levels 0/64..32/64, so every tile fills 33 white cells.
	img := uniformGrayImage(16, 16, 128)
	pb := NewPatternBuilder(img, NewSpec(MacHalftone))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := countWhite(pb.Output); got != 33*4 {
		t.Errorf("white cells = %d, want %d", got, 33*4)
	}
}

func TestBuildSolidBlackPassesThroughUncropped(t *testing.T) {
	img := uniformGrayImage(8, 8, 0)
	pb := NewPatternBuilder(img, NewSpec(Bayer4))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if pb.Cropped != image.Image(img) {
		t.Error("solid black input was not passed through uncropped")
	}
	if pb.Output.Bounds().Dx() != 8 || pb.Output.Bounds().Dy() != 8 {
		t.Errorf("output size = %v, want 8x8", pb.Output.Bounds())
	}
	if got := countWhite(pb.Output); got != 0 {
		t.Errorf("white cells = %d, want 0", got)
	}
}

func TestBuildInvert(t *testing.T) {
	img := uniformGrayImage(8, 8, 0)
	spec := NewSpec(Bayer4)
	spec.Invert = true
	pb := NewPatternBuilder(img, spec)
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := countWhite(pb.Output); got != 64 {
		t.Errorf("inverted black image has %d white cells, want 64", got)
	}
}

func TestBuildNoCrop(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	img.SetGray(3, 3, color.Gray{Y: 200})
	opt := DefaultOptions()
	opt.NoCrop = true
	pb := NewPatternBuilder(img, NewSpec(Threshold))
	if err := pb.Build(opt); err != nil {
		t.Fatal(err)
	}
	if pb.CropBounds != img.Bounds() {
		t.Errorf("crop bounds = %v, want uncropped %v", pb.CropBounds, img.Bounds())
	}
}

func TestBuildFloydExtremes(t *testing.T) {
	white := uniformGrayImage(8, 8, 255)
	pb := NewPatternBuilder(white, NewSpec(Floyd))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := countWhite(pb.Output); got != 64 {
		t.Errorf("white input: %d white cells, want 64", got)
	}

	black := uniformGrayImage(8, 8, 0)
	pb = NewPatternBuilder(black, NewSpec(Floyd))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := countWhite(pb.Output); got != 0 {
		t.Errorf("black input: %d white cells, want 0", got)
	}
}

func TestBuildUnknownPattern(t *testing.T) {
	img := uniformGrayImage(4, 4, 128)
	pb := NewPatternBuilder(img, NewSpec(Pattern(99)))
	if err := pb.Build(DefaultOptions()); !errors.Is(err, ErrUnsupportedPattern) {
		t.Errorf("Build error = %v, want ErrUnsupportedPattern", err)
	}
}

func TestDuotoneOutput(t *testing.T) {
	img := uniformGrayImage(4, 4, 200)
	pb := NewPatternBuilder(img, NewSpec(Threshold))
	if err := pb.Build(DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	paper := colorful.Color{R: 1, G: 0.9, B: 0.8}
	ink := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	out := pb.DuotoneOutput(paper, ink)
	if out == nil {
		t.Fatal("nil duotone output")
	}
	// 200/255 exceeds the flat 0.5 threshold everywhere, so every pixel
	// takes the paper color.
	r, g, b, _ := out.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 229 || b>>8 != 204 {
		t.Errorf("paper pixel = (%d,%d,%d), want (255,229,204)", r>>8, g>>8, b>>8)
	}
}

func TestDuotoneOutputBeforeBuild(t *testing.T) {
	pb := NewPatternBuilder(uniformGrayImage(4, 4, 0), NewSpec(Threshold))
	if out := pb.DuotoneOutput(colorful.Color{}, colorful.Color{}); out != nil {
		t.Error("expected nil duotone output before Build")
	}
}
