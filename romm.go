package prophoto

import "math"

// rommEt is the exposure threshold between the linear and power segments
// of the ROMM RGB curve, 16^(1.8/(1-1.8)) per ANSI/I3A IT10.7666.
var rommEt = math.Pow(16, 1.8/(1-1.8))

// OetfROMMRGB is the ROMM RGB encoding opto-electronic transfer function.
// It maps linear exposure x to a code value: a float normalized to [0, 1]
// by default, or a rounded integer code value with WithIntCodes.
func OetfROMMRGB(x float64, opts ...CurveOption) (float64, error) {
	o, err := rommOptions(opts)
	if err != nil {
		return 0, err
	}
	return rommEncoded(x, o.iMax(), o.IntCodes), nil
}

// OetfROMMRGBArray applies OetfROMMRGB element-wise, preserving shape.
func OetfROMMRGBArray(x *Array, opts ...CurveOption) (*Array, error) {
	o, err := rommOptions(opts)
	if err != nil {
		return nil, err
	}
	iMax := o.iMax()
	return x.apply(func(v float64) float64 { return rommEncoded(v, iMax, o.IntCodes) }), nil
}

// EotfROMMRGB is the ROMM RGB encoding electro-optical transfer function,
// the inverse of OetfROMMRGB. With WithIntCodes xp is an integer code
// value, otherwise a float code value normalized to [0, 1].
func EotfROMMRGB(xp float64, opts ...CurveOption) (float64, error) {
	o, err := rommOptions(opts)
	if err != nil {
		return 0, err
	}
	return rommDecoded(xp, o.iMax(), o.IntCodes), nil
}

// EotfROMMRGBArray applies EotfROMMRGB element-wise, preserving shape.
func EotfROMMRGBArray(xp *Array, opts ...CurveOption) (*Array, error) {
	o, err := rommOptions(opts)
	if err != nil {
		return nil, err
	}
	iMax := o.iMax()
	return xp.apply(func(v float64) float64 { return rommDecoded(v, iMax, o.IntCodes) }), nil
}

// ProPhoto RGB is the product name of the ROMM RGB encoding; the curves
// are identical.
var (
	OetfProPhotoRGB      = OetfROMMRGB
	OetfProPhotoRGBArray = OetfROMMRGBArray
	EotfProPhotoRGB      = EotfROMMRGB
	EotfProPhotoRGBArray = EotfROMMRGBArray
)

func rommEncoded(x, iMax float64, intCodes bool) float64 {
	var xp float64
	if x < rommEt {
		xp = x * 16 * iMax
	} else {
		// NaN lands here and propagates through Pow.
		xp = math.Pow(x, 1/1.8) * iMax
	}
	if intCodes {
		return math.Round(xp)
	}
	return xp / iMax
}

func rommDecoded(xp, iMax float64, intCodes bool) float64 {
	if !intCodes {
		xp *= iMax
	}
	if xp < 16*rommEt*iMax {
		return xp / (16 * iMax)
	}
	return math.Pow(xp/iMax, 1.8)
}
