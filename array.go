package prophoto

import "fmt"

// Array is a row-major n-dimensional array of float64 samples. A
// zero-dimensional Array holds a single scalar. The transfer functions
// preserve the shape of their input exactly: scalar in, scalar out.
type Array struct {
	shape []int
	data  []float64
}

// Scalar returns a zero-dimensional Array holding v.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}}
}

// NewArray wraps data in an Array with the given shape. The product of the
// dimensions must match len(data); with no dimensions data must hold
// exactly one element, yielding a scalar. The slice is not copied.
func NewArray(data []float64, shape ...int) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("%w: array dimension %d", ErrInvalidArgument, d)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, data has %d", ErrInvalidArgument, shape, n, len(data))
	}
	return &Array{shape: append([]int(nil), shape...), data: data}, nil
}

// Shape returns a copy of the array dimensions; nil for a scalar.
func (a *Array) Shape() []int {
	if a.shape == nil {
		return nil
	}
	return append([]int(nil), a.shape...)
}

// IsScalar reports whether the array is zero-dimensional.
func (a *Array) IsScalar() bool { return len(a.shape) == 0 }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.data) }

// Float returns the first element in row-major order; for a scalar Array
// that is its value.
func (a *Array) Float() float64 { return a.data[0] }

// Data returns the backing slice in row-major order. Mutating it mutates
// the array.
func (a *Array) Data() []float64 { return a.data }

// At returns the element at the row-major flat index i.
func (a *Array) At(i int) float64 { return a.data[i] }

// apply returns a new Array of the same shape with f applied element-wise.
func (a *Array) apply(f func(float64) float64) *Array {
	out := &Array{shape: a.shape, data: make([]float64, len(a.data))}
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}
