package prophoto

import "math"

// OetfRIMMRGB is the RIMM RGB encoding opto-electronic transfer function.
// The non-linearity follows Recommendation ITU-R BT.709-6; exposures above
// the E_clip level encode to the maximum code value.
func OetfRIMMRGB(x float64, opts ...CurveOption) (float64, error) {
	o, err := rimmOptions(opts)
	if err != nil {
		return 0, err
	}
	return rimmEncoded(x, o.iMax(), o.EClip, rimmVClip(o.EClip), o.IntCodes), nil
}

// OetfRIMMRGBArray applies OetfRIMMRGB element-wise, preserving shape.
func OetfRIMMRGBArray(x *Array, opts ...CurveOption) (*Array, error) {
	o, err := rimmOptions(opts)
	if err != nil {
		return nil, err
	}
	iMax, vClip := o.iMax(), rimmVClip(o.EClip)
	return x.apply(func(v float64) float64 { return rimmEncoded(v, iMax, o.EClip, vClip, o.IntCodes) }), nil
}

// EotfRIMMRGB is the RIMM RGB encoding electro-optical transfer function,
// the inverse of OetfRIMMRGB. The shadow knee is located by encoding the
// knee exposure through OetfRIMMRGB itself, keeping the pair exact at the
// segment boundary.
func EotfRIMMRGB(xp float64, opts ...CurveOption) (float64, error) {
	o, err := rimmOptions(opts)
	if err != nil {
		return 0, err
	}
	knee, err := OetfRIMMRGB(rimmKnee, WithBitDepth(o.BitDepth), WithEClip(o.EClip))
	if err != nil {
		return 0, err
	}
	return rimmDecoded(xp, o.iMax(), rimmVClip(o.EClip), knee, o.IntCodes), nil
}

// EotfRIMMRGBArray applies EotfRIMMRGB element-wise, preserving shape.
func EotfRIMMRGBArray(xp *Array, opts ...CurveOption) (*Array, error) {
	o, err := rimmOptions(opts)
	if err != nil {
		return nil, err
	}
	knee, err := OetfRIMMRGB(rimmKnee, WithBitDepth(o.BitDepth), WithEClip(o.EClip))
	if err != nil {
		return nil, err
	}
	iMax, vClip := o.iMax(), rimmVClip(o.EClip)
	return xp.apply(func(v float64) float64 { return rimmDecoded(v, iMax, vClip, knee, o.IntCodes) }), nil
}

// rimmVClip is the unscaled encoded value at the E_clip exposure; the code
// scale factor is iMax/vClip.
func rimmVClip(eClip float64) float64 {
	return 1.099*math.Pow(eClip, 0.45) - 0.099
}

// rimmEncoded selects the curve segment in clip-first order, so exposures
// above E_clip take the maximum code value rather than the power segment.
func rimmEncoded(x, iMax, eClip, vClip float64, intCodes bool) float64 {
	var xp float64
	switch {
	case math.IsNaN(x):
		xp = x
	case x > eClip:
		xp = iMax
	case x >= rimmKnee:
		xp = (1.099*math.Pow(x, 0.45) - 0.099) * iMax / vClip
	case x >= 0:
		xp = 4.5 * x * iMax / vClip
	default:
		xp = 0
	}
	if intCodes {
		return math.Round(xp)
	}
	return xp / iMax
}

// knee is the normalized encoded value of the knee exposure.
func rimmDecoded(xp, iMax, vClip, knee float64, intCodes bool) float64 {
	if !intCodes {
		xp *= iMax
	}
	m := vClip * xp / iMax
	if xp/iMax < knee {
		return m / 4.5
	}
	return math.Pow((m+0.099)/1.099, 1/0.45)
}
