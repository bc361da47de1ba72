package detection

import (
	"github.com/ironsheep/graph-reader/internal/imaging"
	"gonum.org/v1/gonum/floats"
)

// BlankColumns flags every column of grid that holds no line.
//
// Entry i is true iff the darkest pixel of column i is strictly brighter than
// threshold. Smudges and compression noise in an otherwise white column stay
// above the threshold and are flagged too. A column with no rows is blank.
func BlankColumns(grid *imaging.Grid, threshold float64) []bool {
	blank := make([]bool, grid.Width())
	for col := range blank {
		values := grid.Column(col)
		if len(values) == 0 {
			blank[col] = true
			continue
		}
		blank[col] = floats.Min(values) > threshold
	}
	return blank
}

// CountBlank returns how many entries of mask are set.
func CountBlank(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
