package texture

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Entry is one asset in the texture library: the category directory it
// belongs to, its file name and a renderer for its pixels.
type Entry struct {
	Dir    string
	Name   string
	Render func() image.Image
}

// FileName is the asset's on-disk name.
func (e Entry) FileName() string {
	return e.Name + "_8x8.png"
}

func grayTone(v uint8) colorful.Color {
	f := float64(v) / 255.0
	return colorful.Color{R: f, G: f, B: f}
}

func entry(dir, name string, img *image.RGBA) Entry {
	return Entry{Dir: dir, Name: name, Render: func() image.Image { return img }}
}

func densityPercent(density float64) int {
	return int(density * 100)
}

// Library returns the full deterministic asset manifest: solid tones,
// checkerboards, Bayer densities, Macintosh halftone tiles, HyperCard bit
// patterns, background grays and shadow tiles. Rendering any entry twice
// produces identical pixels.
func Library() []Entry {
	var entries []Entry

	// Solid base tones.
	entries = append(entries,
		entry("", "white", SolidSwatch(grayTone(255))),
		entry("", "black", SolidSwatch(grayTone(0))),
		entry("", "gray", SolidSwatch(grayTone(128))),
		entry("", "light_gray", SolidSwatch(grayTone(240))),
		entry("", "dark_gray", SolidSwatch(grayTone(64))),
	)

	// Checkerboards.
	entries = append(entries,
		entry("", "checkerboard", CheckerboardSwatch(grayTone(255), grayTone(0))),
		entry("", "checkerboard_gray", CheckerboardSwatch(grayTone(240), grayTone(128))),
	)

	// Bayer densities, straight and inverted.
	for _, density := range []float64{0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875} {
		percent := densityPercent(density)
		entries = append(entries,
			entry("", fmt.Sprintf("bayer_dither_%d", percent), BayerSwatch(density, false)),
			entry("", fmt.Sprintf("bayer_dither_%d_inv", percent), BayerSwatch(density, true)),
		)
	}

	// Extra densities for smoother gradients.
	for _, density := range []float64{0.1, 0.15, 0.2, 0.3, 0.4, 0.6, 0.7, 0.8, 0.85, 0.9} {
		percent := densityPercent(density)
		entries = append(entries,
			entry("", fmt.Sprintf("bayer_dither_%d_extra", percent), BayerSwatch(density, false)),
		)
	}

	// Dots and halftone discs.
	for _, size := range []int{1, 2, 3, 4} {
		entries = append(entries, entry("", fmt.Sprintf("dot_%dpx", size), DotSwatch(size)))
	}
	for _, density := range []float64{0.2, 0.4, 0.6, 0.8} {
		entries = append(entries,
			entry("", fmt.Sprintf("halftone_%d", densityPercent(density)), HalftoneSwatch(density)),
		)
	}

	// Classic Macintosh halftone tiles across the lightness ramp.
	macRamp := []struct {
		lightness float64
		name      string
	}{
		{0.0, "black"},
		{0.125, "very_dark"},
		{0.25, "dark"},
		{0.375, "medium_dark"},
		{0.5, "medium"},
		{0.625, "medium_light"},
		{0.75, "light"},
		{0.875, "very_light"},
		{1.0, "white"},
	}
	for _, step := range macRamp {
		entries = append(entries,
			entry("classic_mac", "mac_"+step.name, MacSwatch(step.lightness, false)))
		if step.lightness != 0.0 && step.lightness != 1.0 {
			// Inverting a solid tile just yields the other solid.
			entries = append(entries,
				entry("classic_mac", "mac_"+step.name+"_inv", MacSwatch(step.lightness, true)))
		}
	}

	// HyperCard bit patterns.
	for _, name := range HyperCardNames() {
		img, err := HyperCardSwatch(name)
		if err != nil {
			continue
		}
		entries = append(entries, entry("hypercard", name, img))
	}

	// Background gray variations.
	backgrounds := []struct {
		tone uint8
		name string
	}{
		{32, "very_dark_gray"},
		{64, "dark_gray"},
		{96, "medium_dark_gray"},
		{160, "medium_gray"},
		{192, "light_gray"},
		{224, "very_light_gray"},
	}
	for _, bg := range backgrounds {
		entries = append(entries, entry("backgrounds", bg.name, SolidSwatch(grayTone(bg.tone))))
	}

	// Shadow tiles.
	shadows := []struct {
		lightness float64
		name      string
	}{
		{0.2, "light_shadow"},
		{0.35, "medium_shadow"},
		{0.5, "dark_shadow"},
		{0.65, "very_dark_shadow"},
	}
	for _, s := range shadows {
		entries = append(entries, entry("shadows", s.name, ShadowSwatch(s.lightness)))
	}

	return entries
}
