package prophoto

import "fmt"

// CurveOptions carries the parameters shared by the transfer functions.
// Zero values are replaced by per-curve defaults; mutate it through
// CurveOption arguments.
type CurveOptions struct {
	// BitDepth sets the code value bit depth; the integer code ceiling is
	// 2^BitDepth - 1.
	BitDepth int
	// IntCodes makes encoders return rounded integer code values and
	// decoders treat their input as integer code values. Otherwise code
	// values are floats normalized to [0, 1] by the integer ceiling.
	IntCodes bool
	// EClip is the maximum exposure level (RIMM and ERIMM curves).
	EClip float64
	// EMin is the minimum exposure limit (ERIMM curves).
	EMin float64
}

// CurveOption mutates CurveOptions.
type CurveOption func(*CurveOptions)

// WithBitDepth sets the code value bit depth.
func WithBitDepth(n int) CurveOption {
	return func(o *CurveOptions) { o.BitDepth = n }
}

// WithIntCodes switches the curve to integer code values: encoders round
// their output, decoders expect integer input.
func WithIntCodes() CurveOption {
	return func(o *CurveOptions) { o.IntCodes = true }
}

// WithEClip sets the maximum exposure level of the RIMM and ERIMM curves.
func WithEClip(v float64) CurveOption {
	return func(o *CurveOptions) { o.EClip = v }
}

// WithEMin sets the minimum exposure limit of the ERIMM curves.
func WithEMin(v float64) CurveOption {
	return func(o *CurveOptions) { o.EMin = v }
}

// iMax is the integer code value ceiling 2^BitDepth - 1 as a float.
func (o CurveOptions) iMax() float64 {
	return float64(uint64(1)<<uint(o.BitDepth) - 1)
}

func (o CurveOptions) validBitDepth() error {
	if o.BitDepth < 1 || o.BitDepth > maxBitDepth {
		return fmt.Errorf("%w: bit depth must be in [1, %d], got %d", ErrInvalidArgument, maxBitDepth, o.BitDepth)
	}
	return nil
}

func rommOptions(opts []CurveOption) (CurveOptions, error) {
	o := CurveOptions{BitDepth: defaultBitDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.validBitDepth()
}

func rimmOptions(opts []CurveOption) (CurveOptions, error) {
	o := CurveOptions{BitDepth: defaultBitDepth, EClip: defaultRIMMEClip}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validBitDepth(); err != nil {
		return o, err
	}
	if o.EClip <= 0 {
		return o, fmt.Errorf("%w: E_clip must be positive, got %v", ErrInvalidArgument, o.EClip)
	}
	return o, nil
}

func erimmOptions(opts []CurveOption) (CurveOptions, error) {
	o := CurveOptions{BitDepth: defaultBitDepth, EMin: defaultERIMMEMin, EClip: defaultERIMMEClip}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validBitDepth(); err != nil {
		return o, err
	}
	if o.EMin <= 0 {
		return o, fmt.Errorf("%w: E_min must be positive, got %v", ErrInvalidArgument, o.EMin)
	}
	if o.EClip <= o.EMin {
		return o, fmt.Errorf("%w: E_clip %v must exceed E_min %v", ErrInvalidArgument, o.EClip, o.EMin)
	}
	return o, nil
}
