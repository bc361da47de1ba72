package imaging

import (
	"fmt"
	"image"
)

// Grid is an immutable height x width matrix of greyscale intensities.
//
// Values are on the 0-255 scale where 0 is black and 255 is white, so the
// plotted line is the darkest thing in a column. Rows are indexed from the top
// of the image, matching the image coordinate system.
type Grid struct {
	width  int
	height int
	data   []float64 // row-major, len = width*height
}

// NewGrid builds a grid from row slices. The rows are copied; every row must
// have the same length.
func NewGrid(rows [][]float64) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	data := make([]float64, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d values, want %d", y, len(row), width)
		}
		data = append(data, row...)
	}

	return &Grid{width: width, height: height, data: data}, nil
}

// FromImage converts an image to a grid of BT.601 luma values.
//
// Alpha is not taken into account; use GridFromImage for images that may be
// transparent.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA channels are 16-bit; dividing by 257 maps 0xffff onto 255.
			data[y*width+x] = (lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)) / 257
		}
	}

	return &Grid{width: width, height: height, data: data}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the intensity at the given row and column. It panics if either
// index is out of range.
func (g *Grid) At(row, col int) float64 {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("grid index (%d,%d) out of range %dx%d", row, col, g.height, g.width))
	}
	return g.data[row*g.width+col]
}

// Column returns a copy of column col, one value per row from top to bottom.
func (g *Grid) Column(col int) []float64 {
	if col < 0 || col >= g.width {
		panic(fmt.Sprintf("grid column %d out of range [0,%d)", col, g.width))
	}
	out := make([]float64, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = g.data[y*g.width+col]
	}
	return out
}
