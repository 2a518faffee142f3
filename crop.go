package patternbuilder

import (
	"image"
	"image/draw"
)

// DefaultCropTolerance is the luma level at or below which a pixel counts
// as background black.
const DefaultCropTolerance = 10

// FindBounds computes the bounding rectangle of all pixels whose 8-bit
// luma is strictly greater than tolerance. The second return value is
// false when every pixel is within tolerance; callers fall back to the
// uncropped image in that case.
func FindBounds(img image.Image, tolerance int) (image.Rectangle, bool) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if luminance8(r, g, b) <= tolerance {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

// CropBackground trims the black border around an image. The bounds are
// found on the grayscale derivative but applied to the original pixels,
// so color and alpha survive the crop. An image that is black everywhere
// is returned unchanged.
func CropBackground(img image.Image, tolerance int) (image.Image, image.Rectangle, bool) {
	bbox, ok := FindBounds(img, tolerance)
	if !ok {
		return img, img.Bounds(), false
	}
	if bbox == img.Bounds() {
		return img, bbox, true
	}
	if si, can := img.(subImager); can {
		return si.SubImage(bbox), bbox, true
	}
	cropped := image.NewRGBA(image.Rect(0, 0, bbox.Dx(), bbox.Dy()))
	draw.Draw(cropped, cropped.Bounds(), img, bbox.Min, draw.Src)
	return cropped, bbox, true
}
