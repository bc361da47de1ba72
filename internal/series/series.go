// Package series holds calibrated coordinate sequences and the smoother that
// runs over them.
package series

import (
	"fmt"
	"strconv"
)

// Value is a float that may be missing.
//
// A missing value is kept distinct from zero and from NaN so that blank
// columns can never leak into averages or tables as a number.
type Value struct {
	v     float64
	valid bool
}

// Some returns a present value.
func Some(v float64) Value { return Value{v: v, valid: true} }

// Missing returns an absent value.
func Missing() Value { return Value{} }

// Get returns the value and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.valid }

// Valid reports whether the value is present.
func (v Value) Valid() bool { return v.valid }

// String formats the value, or returns "" when it is missing.
func (v Value) String() string {
	if !v.valid {
		return ""
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// GoString is used by %#v and test diffs.
func (v Value) GoString() string {
	if !v.valid {
		return "series.Missing()"
	}
	return fmt.Sprintf("series.Some(%v)", v.v)
}

// Point is one calibrated sample. X is always present.
type Point struct {
	X float64
	Y Value
}

// Series is an ordered run of points, one per image column. Order matters:
// smoothing works on positional neighbours.
type Series []Point

// Valid returns the number of points with a present Y.
func (s Series) Valid() int {
	n := 0
	for _, p := range s {
		if p.Y.valid {
			n++
		}
	}
	return n
}
