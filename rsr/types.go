// Package rsr defines options and the rectangle type for symmetry reduction.
package rsr

// DefaultMinSide is the default smallest kept square side.
const DefaultMinSide = 4

// Rect is one collapsed square, identified by its top-left cell and side.
type Rect struct {
	Col, Row int
	Side     int
}

// Interior returns the number of skippable cells in r.
func (r Rect) Interior() int {
	if r.Side < 2 {
		return 0
	}
	return (r.Side - 2) * (r.Side - 2)
}

// Options configures Reduce.
type Options struct {
	// MinSide is the minimum side length of a kept square.
	MinSide int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with MinSide = DefaultMinSide.
func DefaultOptions() Options {
	return Options{MinSide: DefaultMinSide}
}

// WithMinSide sets the minimum kept square side. Values below 2 are raised
// to 2.
func WithMinSide(side int) Option {
	return func(o *Options) {
		if side < 2 {
			side = 2
		}
		o.MinSide = side
	}
}
