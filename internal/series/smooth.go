package series

import "fmt"

// DefaultWindow is the smoothing window used when none is configured.
const DefaultWindow = 5

// Smooth applies a centered moving average of the given window size to the
// Y values of s and returns a new series of the same length.
//
// Each output Y is the mean of the present values inside the window; missing
// values are skipped rather than counted as zero. A window needs only one
// present value to produce an output, so the ends of the series are averaged
// over however many neighbours exist. A window with no present value yields a
// missing Y. X values are copied unchanged and s is not modified.
//
// For an odd window the average covers window/2 points on each side. An even
// window has one more point before the centre than after it.
func Smooth(s Series, window int) (Series, error) {
	if window < 1 {
		return nil, fmt.Errorf("smoothing window must be at least 1, got %d", window)
	}

	before := window / 2
	after := window - 1 - before

	out := make(Series, len(s))
	for i := range s {
		lo := max(i-before, 0)
		hi := min(i+after, len(s)-1)

		var sum float64
		var n int
		for j := lo; j <= hi; j++ {
			if v, ok := s[j].Y.Get(); ok {
				sum += v
				n++
			}
		}

		out[i].X = s[i].X
		if n > 0 {
			out[i].Y = Some(sum / float64(n))
		}
	}
	return out, nil
}
