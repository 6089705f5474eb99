package worldgen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// heightGradient returns the deep-ocean-to-summit color ramp used for
// map export, with the 0.42..0.52 band marking the coastline around sea
// level.
func heightGradient() (colorgrad.Gradient, error) {
	return colorgrad.NewGradient().
		HtmlColors(
			"#001a33", "#003a6b", "#0f7a8a", "#bfe9e9", "#f2e6c8",
			"#e8d7a1", "#a7c88a", "#5b7f3a", "#8c8f93", "#cdd2d8", "#ffffff",
		).
		Domain(0, 0.18, 0.32, 0.42, 0.48, 0.52, 0.62, 0.72, 0.85, 0.93, 1).
		Build()
}

// ExportPNG renders the map and writes it to the given file.
func (m *WorldMap) ExportPNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("worldgen: creating %s: %w", path, err)
	}
	defer f.Close()
	return m.WritePNG(f)
}

// WritePNG renders every bounded cell polygon filled with the height
// gradient and encodes the result as PNG.
func (m *WorldMap) WritePNG(w io.Writer) error {
	grad, err := heightGradient()
	if err != nil {
		return fmt.Errorf("worldgen: building height gradient: %w", err)
	}

	min, max := m.partition.Bounds()
	imgW := int(math.Ceil((max.X - min.X) * m.Scale))
	imgH := int(math.Ceil((max.Y - min.Y) * m.Scale))
	dest := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)

	for c := 0; c < m.NumCells(); c++ {
		id := CellID(c)
		if m.IsOnHull(id) {
			continue
		}
		verts := m.CellVertices(id)
		if len(verts) == 0 {
			continue
		}
		col := grad.At(m.Height(id))

		gc.SetStrokeColor(color.NRGBA{0, 0, 0, 255})
		gc.SetFillColor(col)
		gc.BeginPath()
		gc.MoveTo((verts[0].X-min.X)*m.Scale, (max.Y-verts[0].Y)*m.Scale)
		for _, v := range verts[1:] {
			gc.LineTo((v.X-min.X)*m.Scale, (max.Y-v.Y)*m.Scale)
		}
		gc.Close()
		gc.FillStroke()
	}

	if err := png.Encode(w, dest); err != nil {
		return fmt.Errorf("worldgen: encoding png: %w", err)
	}
	return nil
}
