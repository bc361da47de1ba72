package detection

import (
	"fmt"

	"github.com/ironsheep/graph-reader/internal/imaging"
	"gonum.org/v1/gonum/floats"
)

// RawPoint is the pixel position of the line in one image column.
type RawPoint struct {
	// Col is the 0-based column index. Always present.
	Col int `json:"col"`

	// Row is the 0-based row of the darkest pixel. Only meaningful when Found.
	Row int `json:"row"`

	// Found is false for blank columns; Row is then missing, not zero.
	Found bool `json:"found"`
}

// ExtractLine locates the line row in every column not flagged in blank.
//
// The row reported is the first occurrence of the column minimum, so when
// several pixels share the darkest value the topmost one wins. A drawn line
// is usually a few pixels thick; taking the first minimum puts the sample on
// the upper edge of the stroke, and that bias is part of the output contract.
//
// The result has one RawPoint per column, in column order.
func ExtractLine(grid *imaging.Grid, blank []bool) ([]RawPoint, error) {
	if len(blank) != grid.Width() {
		return nil, fmt.Errorf("blank mask has %d entries, grid has %d columns", len(blank), grid.Width())
	}
	return extractRows(grid, blank), nil
}

// Extract classifies columns against threshold and extracts the line.
func Extract(grid *imaging.Grid, threshold float64) ([]RawPoint, []bool) {
	blank := BlankColumns(grid, threshold)
	return extractRows(grid, blank), blank
}

// extractRows expects len(blank) == grid.Width().
func extractRows(grid *imaging.Grid, blank []bool) []RawPoint {
	points := make([]RawPoint, grid.Width())
	for col := range points {
		points[col].Col = col
		if blank[col] {
			continue
		}
		// floats.MinIdx returns the first index among equal minima.
		points[col].Row = floats.MinIdx(grid.Column(col))
		points[col].Found = true
	}
	return points
}

// Trace converts raw points to overlay pixels.
func Trace(points []RawPoint) []imaging.TracePixel {
	out := make([]imaging.TracePixel, len(points))
	for i, p := range points {
		out[i] = imaging.TracePixel{Col: p.Col, Row: p.Row, Found: p.Found}
	}
	return out
}
