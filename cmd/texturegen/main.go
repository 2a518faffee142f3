// Command texturegen writes the 8x8 texture library: Bayer densities,
// classic Macintosh halftone tiles, HyperCard bit patterns, background
// grays and shadow tiles, one PNG per asset under its category directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/setanarut/patternbuilder/texture"
	"github.com/setanarut/patternbuilder/utils"
)

var (
	outDir    = flag.String("out", "assets/textures", "output directory for texture assets")
	sheetPath = flag.String("sheet", "", "also render a labeled contact sheet to this file")
	scale     = flag.Int("scale", 8, "swatch magnification on the contact sheet")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	entries := texture.Library()
	fmt.Printf("Creating %d texture assets under %s\n", len(entries), *outDir)

	for _, e := range entries {
		dir := filepath.Join(*outDir, e.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		path := filepath.Join(dir, e.FileName())
		if err := utils.SaveImage(e.Render(), path); err != nil {
			fmt.Printf("Error: writing %s: %v\n", path, err)
			return 1
		}
		fmt.Printf("Created: %s\n", path)
	}

	if *sheetPath != "" {
		if err := utils.SaveImage(texture.Sheet(entries, *scale), *sheetPath); err != nil {
			fmt.Printf("Error: writing %s: %v\n", *sheetPath, err)
			return 1
		}
		fmt.Printf("Created contact sheet: %s\n", *sheetPath)
	}

	fmt.Printf("\nAll textures created in %s\n", *outDir)
	return 0
}
