package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultTraceColor is used when the requested trace color cannot be parsed.
var DefaultTraceColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// TracePixel is one detected line pixel in image coordinates.
type TracePixel struct {
	Col   int
	Row   int
	Found bool
}

// TraceOverlay paints the detected line pixels over a greyscale copy of src.
//
// The background is desaturated with the same luma weights the grid uses, so
// the trace colour stands out even on coloured charts. Each found pixel is drawn together with its vertical neighbours so a one
// pixel trace stays visible on large images. Columns without a detected line
// are left untouched. The colour is a hex string such as "#FF0000"; an
// unparseable value falls back to DefaultTraceColor.
func TraceOverlay(src image.Image, trace []TracePixel, hexColor string) *image.NRGBA {
	traceColor := parseTraceColor(hexColor)

	// Clone rebases the image to a (0,0) origin.
	result := imaging.Clone(effect.GrayscaleWithWeights(src, lumaR, lumaG, lumaB))
	bounds := result.Bounds()

	for _, p := range trace {
		if !p.Found {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			pt := image.Pt(p.Col, p.Row+dy)
			if pt.In(bounds) {
				result.SetNRGBA(pt.X, pt.Y, traceColor)
			}
		}
	}

	return result
}

// EncodeTrace renders the overlay as PNG bytes.
func EncodeTrace(src image.Image, trace []TracePixel, hexColor string) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, TraceOverlay(src, trace, hexColor), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode trace image: %w", err)
	}
	return buf.Bytes(), nil
}

func parseTraceColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return DefaultTraceColor
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
