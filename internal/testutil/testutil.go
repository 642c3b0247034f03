// Package testutil holds small comparison helpers shared by this
// module's tests.
package testutil

import (
	"math"
	"reflect"
)

// IsEqualError reports whether x and y are the same error value,
// treating nil as only equal to nil.
func IsEqualError(x, y error) bool {
	if x == nil && y == nil {
		return true
	}
	if (x == nil) != (y == nil) {
		return false
	}
	return reflect.DeepEqual(x, y) && x.Error() == y.Error()
}

// ApproxEqual reports whether a and b differ by no more than eps,
// used to compare the resampler's floating-point outputs.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
