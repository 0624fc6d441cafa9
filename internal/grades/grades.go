// Package grades computes a derived average from the loosely-structured
// grade field stored on student records.
package grades

import (
	"math"
	"strconv"
	"strings"
)

// Average parses a comma-delimited grade field and returns the
// arithmetic mean of its numeric tokens, rounded to two decimal places.
//
// A token is numeric-shaped when, after trimming whitespace, it
// consists only of digits and at most one decimal point. Tokens that
// are numeric-shaped but still fail conversion (a bare ".") are
// dropped. All other tokens are ignored. The second return value is
// false when no token survives.
func Average(field string) (float64, bool) {
	var sum float64
	var n int

	for _, token := range strings.Split(field, ",") {
		token = strings.TrimSpace(token)
		if !numericShaped(token) {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		sum += v
		n++
	}

	if n == 0 {
		return 0, false
	}
	return math.Round(sum/float64(n)*100) / 100, true
}

func numericShaped(token string) bool {
	if token == "" {
		return false
	}
	dots := 0
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
