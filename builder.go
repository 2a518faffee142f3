package patternbuilder

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Options struct {
	// Luma level at or below which a border pixel counts as black.
	// Pixels must strictly exceed this to survive the crop.
	CropTolerance int
	// Skip background cropping entirely.
	NoCrop bool
}

func DefaultOptions() Options {
	return Options{
		CropTolerance: DefaultCropTolerance,
	}
}

// PatternBuilder runs the full dithering pipeline for a single image:
// crop the black background, derive a luminance buffer, tile the pattern's
// threshold matrix over it and compare per pixel. Intermediate stages stay
// accessible on the struct after Build.
type PatternBuilder struct {
	InputImage image.Image
	Spec       Spec
	Cropped    image.Image
	CropBounds image.Rectangle
	Gray       GrayBuffer
	Threshold  GrayBuffer
	Output     *image.Gray
}

func NewPatternBuilder(input image.Image, spec Spec) *PatternBuilder {
	return &PatternBuilder{
		InputImage: input,
		Spec:       spec,
	}
}

// Build executes the pipeline. The output is a grayscale image holding
// only 0 and 255 samples.
func (pb *PatternBuilder) Build(opt Options) error {
	pb.cropInput(opt)
	pb.Gray = GrayBufferFromImage(pb.Cropped)

	if pb.Spec.Pattern == Floyd {
		pb.Output = diffuseFloydSteinberg(pb.Gray)
	} else {
		matrix, err := MatrixFor(pb.Spec.Pattern)
		if err != nil {
			return err
		}
		thr, err := matrix.Tile(pb.Gray.W, pb.Gray.H)
		if err != nil {
			return err
		}
		pb.Threshold = thr
		out, err := thresholdBuffers(pb.Gray, pb.Threshold)
		if err != nil {
			return err
		}
		pb.Output = out
	}

	if pb.Spec.Invert {
		invertGray(pb.Output)
	}
	return nil
}

func (pb *PatternBuilder) cropInput(opt Options) {
	if opt.NoCrop {
		pb.Cropped = pb.InputImage
		pb.CropBounds = pb.InputImage.Bounds()
		return
	}
	pb.Cropped, pb.CropBounds, _ = CropBackground(pb.InputImage, opt.CropTolerance)
}

// DuotoneOutput renders the binary result with an arbitrary two-color
// palette: paper where the output is white, ink where it is black.
func (pb *PatternBuilder) DuotoneOutput(paper, ink colorful.Color) *image.RGBA {
	if pb.Output == nil {
		return nil
	}
	bounds := pb.Output.Bounds()
	out := image.NewRGBA(bounds)
	paperRGBA := color.RGBA{
		uint8(max(0, min(255, paper.R*255))),
		uint8(max(0, min(255, paper.G*255))),
		uint8(max(0, min(255, paper.B*255))),
		255,
	}
	inkRGBA := color.RGBA{
		uint8(max(0, min(255, ink.R*255))),
		uint8(max(0, min(255, ink.G*255))),
		uint8(max(0, min(255, ink.B*255))),
		255,
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if pb.Output.GrayAt(x, y).Y > 127 {
				out.SetRGBA(x, y, paperRGBA)
			} else {
				out.SetRGBA(x, y, inkRGBA)
			}
		}
	}
	return out
}
