package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{"", Region{}, false},
		{"  ", Region{}, false},
		{"10,20,110,220", Region{10, 20, 110, 220}, false},
		{" 1, 2 ,3,4", Region{1, 2, 3, 4}, false},
		{"1,2,3", Region{}, true},
		{"a,2,3,4", Region{}, true},
		{"5,0,5,10", Region{}, true},
		{"0,9,10,3", Region{}, true},
		{"-1,0,10,10", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRegion(tt.in)
			if tt.wantErr {
				assert.Error(t, err, "got %v", got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "1,2,3,4", Region{1, 2, 3, 4}.String())
}

func TestCropPlotArea(t *testing.T) {
	img := solidImage(100, 80, color.White)
	img.Set(30, 25, color.Black)

	cropped, err := CropPlotArea(img, Region{X1: 20, Y1: 10, X2: 70, Y2: 60})
	require.NoError(t, err)

	bounds := cropped.Bounds()
	assert.Equal(t, 50, bounds.Dx())
	assert.Equal(t, 50, bounds.Dy())

	grid := GridFromImage(cropped)
	assert.InDelta(t, 0, grid.At(15, 10), 1e-9, "ink moved")
}

func TestCropPlotArea_ZeroRegion(t *testing.T) {
	img := solidImage(10, 10, color.White)
	out, err := CropPlotArea(img, Region{})
	require.NoError(t, err)
	assert.Same(t, img, out.(*image.NRGBA), "zero region should return the input image")
}

func TestCropPlotArea_OutOfBounds(t *testing.T) {
	img := solidImage(100, 100, color.White)

	tests := []struct {
		name string
		r    Region
	}{
		{"beyond right edge", Region{X1: 50, Y1: 0, X2: 150, Y2: 50}},
		{"beyond bottom edge", Region{X1: 0, Y1: 50, X2: 50, Y2: 101}},
		{"inverted", Region{X1: 60, Y1: 0, X2: 40, Y2: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CropPlotArea(img, tt.r)
			assert.Error(t, err)
		})
	}
}
