package patternbuilder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ThresholdMatrix is an immutable grid of threshold levels in [0,1),
// tiled over an image during ordered dithering.
type ThresholdMatrix struct {
	W, H int
	M    *mat.Dense
}

// BayerLevels builds the integer Bayer matrix of the given size with
// levels in [0, size*size). Base case is [[0,2],[3,1]]; larger sizes are
// the quadrant-offset recursion [[4B, 4B+2],[4B+3, 4B+1]]. This single
// construction is used everywhere in the module. Supported sizes are
// 2, 4 and 8.
func BayerLevels(size int) ([][]int, error) {
	switch size {
	case 2:
		return [][]int{{0, 2}, {3, 1}}, nil
	case 4, 8:
		half, err := BayerLevels(size / 2)
		if err != nil {
			return nil, err
		}
		levels := make([][]int, size)
		for y := 0; y < size; y++ {
			levels[y] = make([]int, size)
		}
		n := size / 2
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				b := 4 * half[y][x]
				levels[y][x] = b
				levels[y][x+n] = b + 2
				levels[y+n][x] = b + 3
				levels[y+n][x+n] = b + 1
			}
		}
		return levels, nil
	default:
		return nil, fmt.Errorf("%w: bayer matrix size %d", ErrUnsupportedPattern, size)
	}
}

// BayerMatrix returns the normalized Bayer threshold matrix of the given
// size, each level divided by size*size.
func BayerMatrix(size int) (ThresholdMatrix, error) {
	levels, err := BayerLevels(size)
	if err != nil {
		return ThresholdMatrix{}, err
	}
	scale := 1.0 / float64(size*size)
	m := mat.NewDense(size, size, nil)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			m.Set(y, x, float64(levels[y][x])*scale)
		}
	}
	return ThresholdMatrix{W: size, H: size, M: m}, nil
}

// MacThresholdValues returns the classic Macintosh 8x8 halftone table as a
// flat 64-entry slice indexed by (x&7) + ((y&7)<<3). Each entry is the
// 6-bit interleave of p and q = p XOR (p>>3), divided by 64. The bit
// layout reproduces the historical table exactly.
func MacThresholdValues() []float64 {
	table := make([]float64, 64)
	for p := 0; p < 64; p++ {
		q := p ^ (p >> 3)
		v := ((p & 4) >> 2) | ((q & 4) >> 1) |
			((p & 2) << 1) | ((q & 2) << 2) |
			((p & 1) << 4) | ((q & 1) << 5)
		table[p] = float64(v) / 64.0
	}
	return table
}

// MacThresholdTable returns the Macintosh halftone table as an 8x8
// threshold matrix.
func MacThresholdTable() ThresholdMatrix {
	table := MacThresholdValues()
	m := mat.NewDense(8, 8, nil)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Set(y, x, table[(x&7)+((y&7)<<3)])
		}
	}
	return ThresholdMatrix{W: 8, H: 8, M: m}
}

func literalMatrix(rows [][]float64) ThresholdMatrix {
	h := len(rows)
	w := len(rows[0])
	m := mat.NewDense(h, w, nil)
	for y, row := range rows {
		for x, v := range row {
			m.Set(y, x, v)
		}
	}
	return ThresholdMatrix{W: w, H: h, M: m}
}

// MatrixFor returns the threshold matrix for an ordered pattern.
// Floyd has no matrix and is rejected with ErrUnsupportedPattern.
func MatrixFor(p Pattern) (ThresholdMatrix, error) {
	switch p {
	case Bayer2:
		return BayerMatrix(2)
	case Bayer4:
		return BayerMatrix(4)
	case Bayer8:
		return BayerMatrix(8)
	case MacHalftone:
		return MacThresholdTable(), nil
	case Threshold:
		return literalMatrix([][]float64{{0.5}}), nil
	case Checkerboard:
		// Threshold 0.5 on even-even and odd-odd cells, 0 elsewhere,
		// so any non-black sample turns white off the checker cells.
		return literalMatrix([][]float64{
			{0.5, 0},
			{0, 0.5},
		}), nil
	case Simple:
		return literalMatrix([][]float64{
			{0.25, 0.75},
			{0.75, 0.25},
		}), nil
	case Diagonal:
		return literalMatrix([][]float64{
			{0, 0.33, 0.66},
			{0.66, 0, 0.33},
			{0.33, 0.66, 0},
		}), nil
	default:
		return ThresholdMatrix{}, fmt.Errorf("%w: no threshold matrix for %v", ErrUnsupportedPattern, p)
	}
}

// Tile repeats the matrix over a w x h buffer, anchored at the buffer's
// origin, cropping partial tiles at the right and bottom edges.
func (tm ThresholdMatrix) Tile(w, h int) (GrayBuffer, error) {
	if w <= 0 || h <= 0 {
		return GrayBuffer{}, fmt.Errorf("%w: tile target %dx%d", ErrInvalidDimensions, w, h)
	}
	buf := GrayBuffer{W: w, H: h, Pix: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			buf.Pix[row+x] = tm.M.At(y%tm.H, x%tm.W)
		}
	}
	return buf, nil
}
