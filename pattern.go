package patternbuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPattern is returned for unknown pattern names and
	// unsupported matrix sizes.
	ErrUnsupportedPattern = errors.New("patternbuilder: unsupported pattern")
	// ErrInvalidDimensions is returned for non-positive target sizes and
	// mismatched buffer sizes.
	ErrInvalidDimensions = errors.New("patternbuilder: invalid dimensions")
)

// Pattern selects the dithering algorithm applied to an image.
type Pattern int

const (
	// Bayer2 is the 2x2 crosshatch Bayer pattern.
	Bayer2 Pattern = iota
	// Bayer4 is the classic 4x4 Bayer pattern.
	Bayer4
	// Bayer8 is the fine 8x8 Bayer pattern.
	Bayer8
	// Threshold is a flat 50% cut with no dithering.
	Threshold
	// Checkerboard alternates the threshold between 0 and 0.5.
	Checkerboard
	// Simple is a 2x2 two-level checker pattern.
	Simple
	// Diagonal is a 3x3 diagonal-stripe pattern.
	Diagonal
	// Floyd selects Floyd-Steinberg error diffusion instead of an
	// ordered pattern.
	Floyd
	// MacHalftone uses the classic Macintosh 8x8 threshold table.
	MacHalftone
)

var patternNames = map[Pattern]string{
	Bayer2:       "bayer2",
	Bayer4:       "bayer4",
	Bayer8:       "bayer8",
	Threshold:    "threshold",
	Checkerboard: "checkerboard",
	Simple:       "simple",
	Diagonal:     "diagonal",
	Floyd:        "floyd",
	MacHalftone:  "mac",
}

var patternDescriptions = map[Pattern]string{
	Bayer2:       "Simple 2x2 crosshatch pattern",
	Bayer4:       "Classic 4x4 Bayer dithering (recommended)",
	Bayer8:       "Fine 8x8 Bayer dithering",
	Threshold:    "Simple 50% threshold (no dithering)",
	Checkerboard: "Alternating checkerboard pattern",
	Simple:       "Two-level 2x2 checker pattern",
	Diagonal:     "3x3 diagonal stripe pattern",
	Floyd:        "Floyd-Steinberg error diffusion",
	MacHalftone:  "Classic Macintosh 8x8 halftone table",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// Description returns the one-line summary printed by preview mode.
func (p Pattern) Description() string {
	return patternDescriptions[p]
}

// Patterns lists every supported pattern in a stable order.
func Patterns() []Pattern {
	return []Pattern{
		Bayer2, Bayer4, Bayer8, Threshold, Checkerboard,
		Simple, Diagonal, Floyd, MacHalftone,
	}
}

// ParsePattern maps a pattern name from the CLI vocabulary to its Pattern.
func ParsePattern(name string) (Pattern, error) {
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPattern, name)
}

// Spec is a fully parameterized pattern: the algorithm plus the constant
// density used for swatch synthesis and the black/white inversion flag.
type Spec struct {
	Pattern   Pattern
	Lightness float64
	Invert    bool
}

// NewSpec returns a Spec with the default 50% lightness.
func NewSpec(p Pattern) Spec {
	return Spec{Pattern: p, Lightness: 0.5}
}
