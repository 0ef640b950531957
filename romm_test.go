package prophoto

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestOetfROMMRGBReferenceValues(t *testing.T) {
	cases := []struct {
		name    string
		in      float64
		want    float64
		wantInt float64
	}{
		{name: "mid grey", in: 0.18, want: 0.385711424751138, wantInt: 98},
		{name: "black", in: 0, want: 0, wantInt: 0},
		{name: "white", in: 1, want: 1, wantInt: 255},
		{name: "linear segment", in: 0.001, want: 0.016, wantInt: 4},
	}
	for _, tc := range cases {
		got, err := OetfROMMRGB(tc.in)
		if err != nil {
			t.Fatalf("%s: oetf: %v", tc.name, err)
		}
		if !scalar.EqualWithinAbs(got, tc.want, 1e-9) {
			t.Fatalf("%s: oetf(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
		gotInt, err := OetfROMMRGB(tc.in, WithIntCodes())
		if err != nil {
			t.Fatalf("%s: oetf int: %v", tc.name, err)
		}
		if gotInt != tc.wantInt {
			t.Fatalf("%s: oetf(%v, int) = %v, want %v", tc.name, tc.in, gotInt, tc.wantInt)
		}
	}
}

func TestEotfROMMRGBIntegerCodeValue(t *testing.T) {
	got, err := EotfROMMRGB(98, WithIntCodes())
	if err != nil {
		t.Fatalf("eotf: %v", err)
	}
	if !scalar.EqualWithinAbs(got, 0.18, 5e-3) {
		t.Fatalf("eotf(98, int) = %v, want about 0.18", got)
	}
	if !scalar.EqualWithinAbs(got, math.Pow(98.0/255, 1.8), 1e-12) {
		t.Fatalf("eotf(98, int) = %v, off the power segment", got)
	}
}

func TestROMMRGBRoundTrip(t *testing.T) {
	for x := 0.0; x <= 1.0; x += 1e-3 {
		xp, err := OetfROMMRGB(x)
		if err != nil {
			t.Fatalf("oetf(%v): %v", x, err)
		}
		got, err := EotfROMMRGB(xp)
		if err != nil {
			t.Fatalf("eotf(%v): %v", xp, err)
		}
		if !scalar.EqualWithinAbs(got, x, 1e-7) {
			t.Fatalf("round trip of %v came back as %v", x, got)
		}
	}
	// Both sides of the linear/power threshold.
	for _, x := range []float64{rommEt / 2, rommEt, rommEt * 2} {
		xp, _ := OetfROMMRGB(x)
		got, _ := EotfROMMRGB(xp)
		if !scalar.EqualWithinAbs(got, x, 1e-12) {
			t.Fatalf("round trip at threshold: %v came back as %v", x, got)
		}
	}
}

func TestOetfROMMRGBIntMatchesRoundedFloat(t *testing.T) {
	for _, bd := range []int{8, 10, 12, 16} {
		iMax := float64(uint64(1)<<uint(bd) - 1)
		for x := 0.0; x <= 1.0; x += 0.01 {
			f, err := OetfROMMRGB(x, WithBitDepth(bd))
			if err != nil {
				t.Fatalf("oetf float: %v", err)
			}
			i, err := OetfROMMRGB(x, WithBitDepth(bd), WithIntCodes())
			if err != nil {
				t.Fatalf("oetf int: %v", err)
			}
			if i != math.Round(f*iMax) {
				t.Fatalf("bit depth %d: int code %v != round(%v * %v)", bd, i, f, iMax)
			}
		}
	}
}

func TestOetfROMMRGBBitDepth12(t *testing.T) {
	got, err := OetfROMMRGB(0.18, WithBitDepth(12), WithIntCodes())
	if err != nil {
		t.Fatalf("oetf: %v", err)
	}
	if got != 1579 {
		t.Fatalf("oetf(0.18, 12 bit, int) = %v, want 1579", got)
	}
}

func TestProPhotoRGBAliasesROMMRGB(t *testing.T) {
	for _, x := range []float64{0, 0.001, 0.18, 0.5, 1} {
		romm, err := OetfROMMRGB(x)
		if err != nil {
			t.Fatalf("romm: %v", err)
		}
		pp, err := OetfProPhotoRGB(x)
		if err != nil {
			t.Fatalf("prophoto: %v", err)
		}
		if romm != pp {
			t.Fatalf("OetfProPhotoRGB(%v) = %v, OetfROMMRGB = %v", x, pp, romm)
		}
		back, err := EotfProPhotoRGB(pp)
		if err != nil {
			t.Fatalf("prophoto eotf: %v", err)
		}
		if want, _ := EotfROMMRGB(romm); back != want {
			t.Fatalf("EotfProPhotoRGB(%v) = %v, EotfROMMRGB = %v", pp, back, want)
		}
	}
}

func TestROMMRGBInvalidBitDepth(t *testing.T) {
	for _, bd := range []int{0, -1, 64} {
		if _, err := OetfROMMRGB(0.18, WithBitDepth(bd)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("bit depth %d: got %v, want ErrInvalidArgument", bd, err)
		}
		if _, err := EotfROMMRGB(0.5, WithBitDepth(bd)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("eotf bit depth %d: got %v, want ErrInvalidArgument", bd, err)
		}
	}
}

func TestROMMRGBSpecialValues(t *testing.T) {
	nan, _ := OetfROMMRGB(math.NaN())
	if !math.IsNaN(nan) {
		t.Fatalf("oetf(NaN) = %v, want NaN", nan)
	}
	nan, _ = EotfROMMRGB(math.NaN())
	if !math.IsNaN(nan) {
		t.Fatalf("eotf(NaN) = %v, want NaN", nan)
	}
	// ROMM has no clip level, so infinities flow through the segments.
	if v, _ := OetfROMMRGB(math.Inf(1)); !math.IsInf(v, 1) {
		t.Fatalf("oetf(+Inf) = %v, want +Inf", v)
	}
	if v, _ := OetfROMMRGB(math.Inf(-1)); !math.IsInf(v, -1) {
		t.Fatalf("oetf(-Inf) = %v, want -Inf", v)
	}
	if v, _ := OetfROMMRGB(-1); v != -16 {
		t.Fatalf("oetf(-1) = %v, want -16", v)
	}
}
