// Package dslr provides reference RGB spectral sensitivity datasets for
// DSLR camera sensors, as measured by the National Physical Laboratory.
//
// Darrodi, Finlayson, Goodman & Mackiewicz (2015). Reference data set for
// camera spectral sensitivity estimation. Journal of the Optical Society
// of America A, 32(3), 381.
package dslr

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ErrCameraNotFound reports a lookup for a camera that has no dataset.
var ErrCameraNotFound = errors.New("dslr: camera not found")

// SpectralSensitivities is one camera's RGB spectral sensitivity record:
// three channels of normalized sensitivity over wavelength. Records are
// immutable and safe for concurrent use.
type SpectralSensitivities struct {
	Name  string
	Red   Channel
	Green Channel
	Blue  Channel
}

// Channel holds one colour channel: peak-normalized sensitivity sampled
// over a strictly increasing wavelength grid in nanometres.
type Channel struct {
	wavelengths []float64
	values      []float64
}

// Len returns the number of samples.
func (c Channel) Len() int { return len(c.wavelengths) }

// Wavelengths returns a copy of the sampled wavelengths, ascending, in
// nanometres.
func (c Channel) Wavelengths() []float64 {
	return append([]float64(nil), c.wavelengths...)
}

// Values returns a copy of the sensitivities in wavelength order.
func (c Channel) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Domain returns the first and last sampled wavelength.
func (c Channel) Domain() (min, max float64) {
	if len(c.wavelengths) == 0 {
		return 0, 0
	}
	return c.wavelengths[0], c.wavelengths[len(c.wavelengths)-1]
}

// Value returns the sensitivity sampled exactly at wavelength, and whether
// such a sample exists.
func (c Channel) Value(wavelength float64) (float64, bool) {
	i := sort.SearchFloat64s(c.wavelengths, wavelength)
	if i < len(c.wavelengths) && c.wavelengths[i] == wavelength {
		return c.values[i], true
	}
	return 0, false
}

// Peak returns the maximum sensitivity; 1 for the published peak-normalized
// data.
func (c Channel) Peak() float64 {
	if len(c.values) == 0 {
		return 0
	}
	return floats.Max(c.values)
}

// At returns the sensitivity linearly interpolated at wavelength. Outside
// the sampled domain the boundary sample is returned.
func (c Channel) At(wavelength float64) float64 {
	switch len(c.wavelengths) {
	case 0:
		return 0
	case 1:
		return c.values[0]
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(c.wavelengths, c.values); err != nil {
		// The embedded grids are strictly increasing; only a hand-built
		// malformed Channel gets here.
		return math.NaN()
	}
	return pl.Predict(wavelength)
}

// cameras maps the lower-cased display name to its dataset.
var cameras = map[string]SpectralSensitivities{
	strings.ToLower(nikon5100.Name):      nikon5100,
	strings.ToLower(sigmaSDMerrill.Name): sigmaSDMerrill,
}

// ByName returns the dataset for the given camera display name. The lookup
// is case-insensitive.
func ByName(name string) (SpectralSensitivities, error) {
	if s, ok := cameras[strings.ToLower(name)]; ok {
		return s, nil
	}
	return SpectralSensitivities{}, fmt.Errorf("%w: %q", ErrCameraNotFound, name)
}

// Names returns the canonical camera display names, sorted.
func Names() []string {
	names := make([]string, 0, len(cameras))
	for _, s := range cameras {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}
