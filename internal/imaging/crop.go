package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region is a pixel rectangle. (X1,Y1) is inclusive, (X2,Y2) is exclusive.
// The zero Region means "the whole image".
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// IsZero reports whether r is the zero Region.
func (r Region) IsZero() bool { return r == Region{} }

// Validate checks that a non-zero region is well formed.
func (r Region) Validate() error {
	if r.IsZero() {
		return nil
	}
	if r.X1 < 0 || r.Y1 < 0 {
		return fmt.Errorf("invalid plot area %s: coordinates must not be negative", r)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid plot area %s: x1 must be < x2, y1 must be < y2", r)
	}
	return nil
}

// String formats r as "x1,y1,x2,y2", the form ParseRegion accepts.
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2)
}

// ParseRegion parses "x1,y1,x2,y2". An empty string yields the zero Region.
func ParseRegion(s string) (Region, error) {
	if strings.TrimSpace(s) == "" {
		return Region{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("plot area %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("plot area %q: %w", s, err)
		}
		v[i] = n
	}
	r := Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	return r, r.Validate()
}

// CropPlotArea cuts the plot area out of img so the axis bounds map onto its
// edges. A zero region returns img unchanged.
func CropPlotArea(img image.Image, r Region) (image.Image, error) {
	if r.IsZero() {
		return img, nil
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if r.X2 > w || r.Y2 > h {
		return nil, fmt.Errorf("plot area %s outside image bounds %dx%d", r, w, h)
	}

	// Region coordinates are relative to the image origin.
	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}
