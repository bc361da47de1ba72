// Package output renders coordinate series as CSV tables and line charts.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/graph-reader/internal/series"
)

// SmoothedSuffix is appended to the raw table filename to name the smoothed
// table.
const SmoothedSuffix = "_smoothed"

// SmoothedName returns the smoothed table path for a raw table path.
func SmoothedName(rawPath string) string {
	return rawPath + SmoothedSuffix
}

// WriteCSV writes s as a two column table with an "x,y" header. Every point
// gets a row; a missing y is written as an empty field.
func WriteCSV(w io.Writer, s series.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, p := range s {
		row := []string{strconv.FormatFloat(p.X, 'f', -1, 64), p.Y.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// EncodeCSV returns the table for s as bytes.
func EncodeCSV(s series.Series) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
