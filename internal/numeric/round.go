package numeric

import (
	"math"
	"strconv"
)

// Round rounds v to the given number of decimal places. It works on the exact
// binary value of v and sends exact ties to the even digit, so 0.625 becomes
// 0.62 and 2.675 (stored just below) becomes 2.67.
func Round(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
