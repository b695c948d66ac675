package geo

import (
	"math"
	"strconv"
)

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return math.Abs(y1 - y2)
	} else if y1 == y2 {
		return math.Abs(x1 - x2)
	} else {
		return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	}
}

// compare a and b and consider them equal if
// difference is less than precision e (e.g. e=0.001)
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// TruncateDecimals truncates floats to keep up to 3 digits after decimal, to avoid issues with floats on different machines.
// It stays in float64 so values beyond the int range are not wrapped.
func TruncateDecimals(v float64) float64 {
	return math.Trunc(v*1000) / 1000
}

// FormatNumber renders v in its shortest form: 5, 2.5, -0.125.
// Magnitudes from 1e16 up and below 1e-4 switch to exponent form: 1e+21, 1e-05.
func FormatNumber(v float64) string {
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
