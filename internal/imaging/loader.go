package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ITU-R BT.601 luma weights, the same conversion most image libraries use for
// "as greyscale" loading.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Decoded holds a loaded image together with its greyscale intensity grid.
type Decoded struct {
	// Source is the decoded image after EXIF orientation and plot area
	// cropping are applied. Grid coordinates index into Source.
	Source image.Image

	// Grid is the greyscale intensity grid derived from Source.
	Grid *Grid
}

// LoadGrid decodes the image at path and converts it to an intensity grid.
//
// Parameters:
//   - path: Path to a PNG, JPEG, GIF, TIFF or BMP file.
//   - area: Plot area to keep. The zero Region keeps the whole image.
//
// Returns:
//   - *Decoded: The source image and its greyscale grid.
//   - error: Non-nil if the file cannot be opened or decoded, or the plot
//     area does not fit inside the image.
//
// # Conversion
//
// Transparent pixels are composited over white before conversion so that an
// exported chart with a transparent background reads as blank paper rather
// than as black ink. The greyscale value of each pixel is
// 0.299*R + 0.587*G + 0.114*B on the 0-255 scale, kept fractional so the
// whiteness threshold and the darkest-pixel search see unrounded values.
func LoadGrid(path string, area Region) (*Decoded, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	src, err := CropPlotArea(img, area)
	if err != nil {
		return nil, fmt.Errorf("failed to crop %s: %w", path, err)
	}

	return &Decoded{
		Source: src,
		Grid:   GridFromImage(src),
	}, nil
}

// GridFromImage flattens img onto white and converts it to a greyscale grid.
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	paper := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat := imaging.Overlay(paper, img, image.Pt(0, 0), 1.0)
	return FromImage(flat)
}
