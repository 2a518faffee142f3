package texture

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

// Sheet renders a labeled contact sheet of swatches, eight per row. The
// swatches are upscaled with nearest-neighbor so the pixel grid stays
// crisp.
func Sheet(entries []Entry, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	const cols = 8
	const pad = 10
	const labelH = 16
	cell := Side * scale
	rows := (len(entries) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	w := cols*(cell+pad) + pad
	h := rows*(cell+labelH+pad) + pad

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for i, e := range entries {
		big := image.NewRGBA(image.Rect(0, 0, cell, cell))
		src := e.Render()
		draw.NearestNeighbor.Scale(big, big.Bounds(), src, src.Bounds(), draw.Src, nil)

		cx := pad + (i%cols)*(cell+pad)
		cy := pad + (i/cols)*(cell+labelH+pad)
		dc.DrawImage(big, cx, cy)

		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawRectangle(float64(cx)-0.5, float64(cy)-0.5, float64(cell)+1, float64(cell)+1)
		dc.SetLineWidth(1)
		dc.Stroke()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.Name, float64(cx+cell/2), float64(cy+cell+labelH/2), 0.5, 0.5)
	}
	return dc.Image()
}
