package patternbuilder

import "image"

// diffuseFloydSteinberg converts a luminance buffer to black and white by
// classic error diffusion: each pixel snaps to the nearer extreme and the
// quantization error spreads to the 7/16, 3/16, 5/16, 1/16 neighbors.
// The buffer is consumed as scratch space.
func diffuseFloydSteinberg(gray GrayBuffer) *image.Gray {
	w, h := gray.W, gray.H
	out := image.NewGray(image.Rect(0, 0, w, h))

	spread := func(x, y int, err, factor float64) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		gray.Pix[y*w+x] += err * factor
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := gray.Pix[i]
			var snapped float64
			if old >= 0.5 {
				snapped = 1.0
				out.Pix[y*out.Stride+x] = 255
			}
			err := old - snapped

			spread(x+1, y, err, 7.0/16.0)
			spread(x-1, y+1, err, 3.0/16.0)
			spread(x, y+1, err, 5.0/16.0)
			spread(x+1, y+1, err, 1.0/16.0)
		}
	}
	return out
}
