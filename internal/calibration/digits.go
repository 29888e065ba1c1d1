// Package calibration extracts calibration values from lines of a calibration document.
package calibration

import "strconv"

// digitNames maps each digit value to its spelled-out English name.
// Index 0 is present so indices match digit values, but zero is never searched.
var digitNames = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

const (
	// MinDigit is the lowest digit value that participates in a search.
	MinDigit = 1
	// MaxDigit is the highest digit value that participates in a search.
	MaxDigit = 9
)

// Numeral returns the single-character numeral for d, e.g. "7".
func Numeral(d int) string {
	return strconv.Itoa(d)
}

// Name returns the English name for d, e.g. "seven".
// It returns an empty string for values outside 0-9.
func Name(d int) string {
	if d < 0 || d >= len(digitNames) {
		return ""
	}
	return digitNames[d]
}
