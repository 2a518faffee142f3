// Package texture synthesizes small tileable 8x8 reference swatches from
// the same threshold tables the dithering pipeline uses: Bayer densities,
// the classic Macintosh halftone table, HyperCard-style bit patterns,
// solid tones, dots and halftone discs.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/patternbuilder"
)

// Side is the edge length of every swatch.
const Side = 8

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func newSwatch() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Side, Side))
}

func rgba(c colorful.Color) color.RGBA {
	return color.RGBA{
		uint8(max(0, min(255, c.R*255))),
		uint8(max(0, min(255, c.G*255))),
		uint8(max(0, min(255, c.B*255))),
		255,
	}
}

// SolidSwatch fills the swatch with a single color.
func SolidSwatch(c colorful.Color) *image.RGBA {
	img := newSwatch()
	fill := rgba(c)
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	return img
}

// CheckerboardSwatch alternates two colors per pixel.
func CheckerboardSwatch(c1, c2 colorful.Color) *image.RGBA {
	img := newSwatch()
	p1, p2 := rgba(c1), rgba(c2)
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, p1)
			} else {
				img.SetRGBA(x, y, p2)
			}
		}
	}
	return img
}

// BayerSwatch rasterizes the 8x8 Bayer matrix at a constant density. The
// cut-off is the truncated integer level density*64; cells at or above it
// are white. Invert swaps black and white.
func BayerSwatch(density float64, invert bool) *image.RGBA {
	levels, _ := patternbuilder.BayerLevels(Side)
	cut := int(density * 64)
	img := newSwatch()
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			isWhite := levels[y][x] >= cut
			if invert {
				isWhite = !isWhite
			}
			if isWhite {
				img.SetRGBA(x, y, white)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

// MacSwatch rasterizes the Macintosh halftone table at a constant
// lightness: a cell is white only where lightness strictly exceeds its
// table value.
func MacSwatch(lightness float64, invert bool) *image.RGBA {
	table := patternbuilder.MacThresholdValues()
	img := newSwatch()
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			isWhite := lightness > table[(x&7)+((y&7)<<3)]
			if invert {
				isWhite = !isWhite
			}
			if isWhite {
				img.SetRGBA(x, y, white)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

// ShadowSwatch renders a drop-shadow tile from the Macintosh table:
// black where lightness falls below the table value, mid gray elsewhere.
func ShadowSwatch(lightness float64) *image.RGBA {
	table := patternbuilder.MacThresholdValues()
	gray := color.RGBA{128, 128, 128, 255}
	img := newSwatch()
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			if lightness < table[(x&7)+((y&7)<<3)] {
				img.SetRGBA(x, y, black)
			} else {
				img.SetRGBA(x, y, gray)
			}
		}
	}
	return img
}

// DotSwatch draws a centered black dot of the given diameter on white.
func DotSwatch(dotSize int) *image.RGBA {
	img := newSwatch()
	const cx, cy = 4.0, 4.0
	radius := float64(dotSize) / 2.0
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d <= radius {
				img.SetRGBA(x, y, black)
			} else {
				img.SetRGBA(x, y, white)
			}
		}
	}
	return img
}

// HalftoneSwatch draws a density-scaled black disc centered on the tile.
// The maximum radius 2.8 keeps the disc inside an 8x8 cell.
func HalftoneSwatch(density float64) *image.RGBA {
	img := newSwatch()
	const cx, cy = 3.5, 3.5
	radius := density * 2.8
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d <= radius {
				img.SetRGBA(x, y, black)
			} else {
				img.SetRGBA(x, y, white)
			}
		}
	}
	return img
}

// hyperCardPatterns holds hand-authored classic bit patterns; 1 is black.
var hyperCardPatterns = map[string][Side][Side]uint8{
	"diagonal": {
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
	},
	"cross_hatch": {
		{1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	"dots_sparse": {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	"brick": {
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 1},
	},
	"weave": {
		{1, 1, 0, 0, 1, 1, 0, 0},
		{1, 1, 0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 1, 1, 0, 0},
		{1, 1, 0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// HyperCardNames lists the available bit patterns in a stable order.
func HyperCardNames() []string {
	return []string{"diagonal", "cross_hatch", "dots_sparse", "brick", "weave"}
}

// HyperCardSwatch rasterizes a named classic bit pattern.
func HyperCardSwatch(name string) (*image.RGBA, error) {
	pattern, ok := hyperCardPatterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: hypercard pattern %q", patternbuilder.ErrUnsupportedPattern, name)
	}
	img := newSwatch()
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			if pattern[y][x] != 0 {
				img.SetRGBA(x, y, black)
			} else {
				img.SetRGBA(x, y, white)
			}
		}
	}
	return img, nil
}
