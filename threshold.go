package patternbuilder

import (
	"fmt"
	"image"
)

// GrayBuffer is a w x h grid of normalized samples in [0,1].
type GrayBuffer struct {
	W, H int
	Pix  []float64
}

// luminance8 converts 16-bit RGB channels to an 8-bit luma value using
// the 299/587/114 integer weighting.
func luminance8(r, g, b uint32) int {
	return int(299*(r>>8)+587*(g>>8)+114*(b>>8)) / 1000
}

// GrayBufferFromImage converts an image to a normalized luminance buffer.
// The 8-bit luma is computed first so thresholding sees exactly the same
// quantized values that bound-finding does.
func GrayBufferFromImage(img image.Image) GrayBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := GrayBuffer{W: w, H: h, Pix: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Pix[row+x] = float64(luminance8(r, g, b)) / 255.0
		}
	}
	return buf
}

// thresholdBuffers compares a grayscale buffer against a threshold buffer
// of identical dimensions. An output pixel is white (255) only where the
// sample strictly exceeds the threshold cell; samples equal to the
// threshold come out black.
func thresholdBuffers(gray, thr GrayBuffer) (*image.Gray, error) {
	if gray.W != thr.W || gray.H != thr.H {
		return nil, fmt.Errorf("%w: gray %dx%d vs threshold %dx%d",
			ErrInvalidDimensions, gray.W, gray.H, thr.W, thr.H)
	}
	out := image.NewGray(image.Rect(0, 0, gray.W, gray.H))
	for y := 0; y < gray.H; y++ {
		row := y * gray.W
		for x := 0; x < gray.W; x++ {
			if gray.Pix[row+x] > thr.Pix[row+x] {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out, nil
}

func invertGray(img *image.Gray) {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}
