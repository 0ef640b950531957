package prophoto

import "errors"

// ErrInvalidArgument reports a structurally invalid curve parameter, such
// as a non-positive bit depth or an empty exposure domain. Numeric edge
// cases in the data itself (NaN, infinities, out-of-range values) are not
// errors; the piecewise curves absorb them.
var ErrInvalidArgument = errors.New("prophoto: invalid argument")
