// Command compressbg converts background PNGs to 1-bit images: it crops
// the black border, applies a dithering pattern and rewrites each file as
// a maximally compressed PNG, mirroring the source tree under the target
// directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/setanarut/patternbuilder"
	"github.com/setanarut/patternbuilder/utils"
)

var (
	sourceDir string
	targetDir string
	patterns  string
	tolerance int
	invert    bool
	duotone   bool
	maxWidth  int
	testMode  bool
	preview   bool
)

func main() {
	flag.StringVar(&sourceDir, "source", "assets/backgrounds/raw", "source directory containing PNG files")
	flag.StringVar(&targetDir, "target", "assets/backgrounds/compressed", "target directory for compressed files")
	flag.StringVar(&patterns, "patterns", "bayer4", "comma-separated dithering patterns to apply")
	flag.StringVar(&patterns, "pattern", "bayer4", "alias for -patterns")
	flag.IntVar(&tolerance, "tolerance", patternbuilder.DefaultCropTolerance, "black background luma tolerance (0-255)")
	flag.BoolVar(&invert, "invert", false, "swap black and white in the output")
	flag.BoolVar(&duotone, "duotone", false, "render with the image's two dominant colors instead of black and white")
	flag.IntVar(&maxWidth, "max-width", 0, "scale images wider than this down before dithering (0 disables)")
	flag.BoolVar(&testMode, "test", false, "process only the first few files")
	flag.BoolVar(&preview, "preview", false, "print pattern descriptions and exit")
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if preview {
		printPreview()
		return 0
	}

	specs, err := parseSpecs(patterns)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	info, err := os.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		fmt.Printf("Error: Source directory '%s' does not exist\n", sourceDir)
		return 1
	}

	files, err := findPNGFiles(sourceDir)
	if err != nil {
		fmt.Printf("Error: scanning '%s': %v\n", sourceDir, err)
		return 1
	}
	if len(files) == 0 {
		fmt.Printf("No PNG files found in '%s'\n", sourceDir)
		return 1
	}

	fmt.Printf("Found %d PNG files to process\n", len(files))
	if testMode {
		limit := 5
		if len(specs) > 1 {
			limit = 3
		}
		if len(files) > limit {
			files = files[:limit]
		}
		fmt.Printf("Test mode: processing only %d files\n", len(files))
	}

	failedTotal := 0
	for _, spec := range specs {
		out := targetDir
		if len(specs) > 1 {
			out = filepath.Join(targetDir, spec.Pattern.String())
			fmt.Printf("\n%s\n", strings.Repeat("=", 50))
			fmt.Printf("Processing with %s pattern\n", strings.ToUpper(spec.Pattern.String()))
			fmt.Printf("%s\n", strings.Repeat("=", 50))
		} else {
			fmt.Printf("Using dithering pattern: %s\n", spec.Pattern)
		}

		failedTotal += runPattern(spec, files, out)
	}

	if failedTotal > 0 {
		return 1
	}
	return 0
}

func parseSpecs(arg string) ([]patternbuilder.Spec, error) {
	var specs []patternbuilder.Spec
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, err := patternbuilder.ParsePattern(name)
		if err != nil {
			return nil, err
		}
		spec := patternbuilder.NewSpec(p)
		spec.Invert = invert
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no patterns given")
	}
	return specs, nil
}

func findPNGFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".png") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func runPattern(spec patternbuilder.Spec, files []string, out string) (failed int) {
	processed := 0
	var totalOriginal, totalCompressed int64

	for _, file := range files {
		rel, err := filepath.Rel(sourceDir, file)
		if err != nil {
			rel = filepath.Base(file)
		}
		outPath := filepath.Join(out, rel)

		if info, err := os.Stat(file); err == nil {
			totalOriginal += info.Size()
		}

		if err := processFile(file, outPath, spec); err != nil {
			log.Printf("Error processing %s: %v", file, err)
			failed++
		} else {
			processed++
			if info, err := os.Stat(outPath); err == nil {
				totalCompressed += info.Size()
			}
		}
		fmt.Println()
	}

	fmt.Println("Processing complete!")
	fmt.Printf("Processed: %d files\n", processed)
	fmt.Printf("Failed: %d files\n", failed)

	if processed > 0 && totalOriginal > 0 {
		reduction := float64(totalOriginal-totalCompressed) / float64(totalOriginal) * 100
		fmt.Printf("\nOverall statistics:\n")
		fmt.Printf("Original total size: %.2f MB\n", float64(totalOriginal)/1024/1024)
		fmt.Printf("Compressed total size: %.2f MB\n", float64(totalCompressed)/1024/1024)
		fmt.Printf("Total space saved: %.1f%%\n", reduction)
	}
	return failed
}

func processFile(inPath, outPath string, spec patternbuilder.Spec) error {
	img, err := utils.LoadImage(inPath)
	if err != nil {
		return err
	}
	fmt.Printf("Processing: %s (pattern: %s)\n", filepath.Base(inPath), spec.Pattern)
	fmt.Printf("  Original size: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = scaleToWidth(img, maxWidth)
		fmt.Printf("  Scaled down to: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	}

	pb := patternbuilder.NewPatternBuilder(img, spec)
	opt := patternbuilder.DefaultOptions()
	opt.CropTolerance = tolerance
	if err := pb.Build(opt); err != nil {
		return err
	}
	fmt.Printf("  After cropping: %dx%d\n", pb.CropBounds.Dx(), pb.CropBounds.Dy())
	fmt.Printf("  Applied %s dithering\n", spec.Pattern)

	var result image.Image = pb.Output
	if duotone {
		ink, paper := utils.DuotonePalette(pb.Cropped, utils.PaletteMethodDominantColor)
		result = pb.DuotoneOutput(paper, ink)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := utils.SaveImage(result, outPath); err != nil {
		return err
	}

	if inInfo, err := os.Stat(inPath); err == nil {
		if outInfo, err := os.Stat(outPath); err == nil && inInfo.Size() > 0 {
			reduction := float64(inInfo.Size()-outInfo.Size()) / float64(inInfo.Size()) * 100
			fmt.Printf("  Size reduction: %.1f%% (%d → %d bytes)\n",
				reduction, inInfo.Size(), outInfo.Size())
		}
	}
	return nil
}

func scaleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

func printPreview() {
	fmt.Println("Dithering Pattern Preview:")
	fmt.Println("=========================")
	for _, p := range patternbuilder.Patterns() {
		fmt.Printf("%-13s %s\n", p.String()+":", p.Description())
	}
	fmt.Println("\nRun with --patterns <name>[,<name>...] to use specific patterns")
}
