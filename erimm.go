package prophoto

import "math"

// LogEncodingERIMMRGB is the ERIMM RGB log encoding curve, the
// opto-electronic transfer function of the extended-range encoding.
// Exposures up to e*E_min take a linear ramp, exposures above it the
// logarithmic segment, and exposures above E_clip the maximum code value.
func LogEncodingERIMMRGB(x float64, opts ...CurveOption) (float64, error) {
	o, err := erimmOptions(opts)
	if err != nil {
		return 0, err
	}
	return newERIMMCurve(o).encoded(x, o.IntCodes), nil
}

// LogEncodingERIMMRGBArray applies LogEncodingERIMMRGB element-wise,
// preserving shape.
func LogEncodingERIMMRGBArray(x *Array, opts ...CurveOption) (*Array, error) {
	o, err := erimmOptions(opts)
	if err != nil {
		return nil, err
	}
	c := newERIMMCurve(o)
	return x.apply(func(v float64) float64 { return c.encoded(v, o.IntCodes) }), nil
}

// LogDecodingERIMMRGB is the ERIMM RGB log decoding curve, the inverse of
// LogEncodingERIMMRGB.
func LogDecodingERIMMRGB(xp float64, opts ...CurveOption) (float64, error) {
	o, err := erimmOptions(opts)
	if err != nil {
		return 0, err
	}
	return newERIMMCurve(o).decoded(xp, o.IntCodes), nil
}

// LogDecodingERIMMRGBArray applies LogDecodingERIMMRGB element-wise,
// preserving shape.
func LogDecodingERIMMRGBArray(xp *Array, opts ...CurveOption) (*Array, error) {
	o, err := erimmOptions(opts)
	if err != nil {
		return nil, err
	}
	c := newERIMMCurve(o)
	return xp.apply(func(v float64) float64 { return c.decoded(v, o.IntCodes) }), nil
}

// erimmCurve holds the precomputed segment terms of one parameterization.
type erimmCurve struct {
	iMax  float64
	eMin  float64
	eClip float64
	eT    float64 // ramp/log boundary exposure, e * eMin
	// ramp and logRange are the log-domain extents of the ramp segment and
	// the whole encoding; ramp/logRange is the encoded ramp ceiling.
	ramp     float64
	logRange float64
}

func newERIMMCurve(o CurveOptions) erimmCurve {
	eT := math.E * o.EMin
	return erimmCurve{
		iMax:     o.iMax(),
		eMin:     o.EMin,
		eClip:    o.EClip,
		eT:       eT,
		ramp:     math.Log(eT) - math.Log(o.EMin),
		logRange: math.Log(o.EClip) - math.Log(o.EMin),
	}
}

// encoded selects the curve segment in clip-first order, so exposures
// above E_clip take the maximum code value rather than the log segment.
func (c erimmCurve) encoded(x float64, intCodes bool) float64 {
	var xp float64
	switch {
	case math.IsNaN(x):
		xp = x
	case x > c.eClip:
		xp = c.iMax
	case x > c.eT:
		xp = c.iMax * (math.Log(x) - math.Log(c.eMin)) / c.logRange
	case x >= 0:
		xp = c.iMax * (c.ramp / c.logRange) * (x / c.eT)
	default:
		xp = 0
	}
	if intCodes {
		return math.Round(xp)
	}
	return xp / c.iMax
}

func (c erimmCurve) decoded(xp float64, intCodes bool) float64 {
	if !intCodes {
		xp *= c.iMax
	}
	if xp <= c.iMax*c.ramp/c.logRange {
		return (c.logRange / c.ramp) * (xp * c.eT / c.iMax)
	}
	return math.Exp((xp/c.iMax)*c.logRange + math.Log(c.eMin))
}
