package store

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt coerces a decimal string to an integer. Surrounding whitespace is
// ignored and a blank string is 0. Fractional values are truncated toward
// zero. The second result is false when s is not a finite number in range.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || x >= math.MaxInt64 || x <= math.MinInt64 {
		return 0, false
	}
	return int64(x), true
}
