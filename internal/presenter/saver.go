package presenter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// SaveFigure draws p on a w-by-h canvas and writes it to filename. The
// format follows the file extension: .png or .pdf.
func SaveFigure(p *plot.Plot, w, h vg.Length, filename string) error {
	img, err := newCanvas(w, h, filename)
	if err != nil {
		return err
	}
	p.Draw(draw.New(img))
	return writeCanvas(img, filename)
}

func newCanvas(w, h vg.Length, filename string) (vg.CanvasWriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return &vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	default:
		return nil, fmt.Errorf("presenter: unsupported figure format %q", ext)
	}
}

func writeCanvas(img vg.CanvasWriterTo, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := img.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
