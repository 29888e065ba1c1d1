package calibration

import "strings"

// Occurrence locates a digit token inside a line.
type Occurrence struct {
	Digit  int // digit value 1-9
	Offset int // zero-based offset of the token's first character
}

// Result is the outcome of calibrating a single line.
// Found is false when the line contains no digit token; First and Last are
// then zero values and must not be read.
type Result struct {
	First Occurrence
	Last  Occurrence
	Found bool
}

// Value returns the two-digit calibration value.
// The boolean is false when the line had no digits.
func (r Result) Value() (int, bool) {
	if !r.Found {
		return 0, false
	}
	return r.First.Digit*10 + r.Last.Digit, true
}

// Calibrate computes the calibration result for one line.
//
// Each digit value 1-9 is searched independently for its earliest and latest
// occurrence, as either a numeral or a name. The digit whose earliest
// occurrence has the globally smallest offset becomes First; the digit whose
// latest occurrence has the globally largest offset becomes Last. Ties
// between digit values keep the lower digit, since later digits must be
// strictly earlier (or later) to replace it. Overlapping names such as
// "eightwo" therefore yield both 8 and 2.
func Calibrate(line string) Result {
	var res Result
	firstOK, lastOK := false, false

	for d := MinDigit; d <= MaxDigit; d++ {
		if off, ok := FindFirst(line, d); ok && (!firstOK || off < res.First.Offset) {
			res.First = Occurrence{Digit: d, Offset: off}
			firstOK = true
		}
		if off, ok := FindLast(line, d); ok && (!lastOK || off > res.Last.Offset) {
			res.Last = Occurrence{Digit: d, Offset: off}
			lastOK = true
		}
	}

	// Any occurrence is both a first and a last candidate, so the flags agree.
	res.Found = firstOK && lastOK
	return res
}

// FindFirst returns the lowest offset at which the numeral or the name of d
// begins in line. When both begin at the same offset the numeral wins.
func FindFirst(line string, d int) (int, bool) {
	return pick(strings.Index(line, Numeral(d)), strings.Index(line, Name(d)), func(name, numeral int) bool {
		return name < numeral
	})
}

// FindLast returns the highest offset at which the numeral or the name of d
// begins in line. When both begin at the same offset the numeral wins.
func FindLast(line string, d int) (int, bool) {
	return pick(strings.LastIndex(line, Numeral(d)), strings.LastIndex(line, Name(d)), func(name, numeral int) bool {
		return name > numeral
	})
}

// pick chooses between a numeral offset and a name offset, either of which
// may be -1 for "absent". nameWins reports whether the name beats the numeral.
func pick(numeral, name int, nameWins func(name, numeral int) bool) (int, bool) {
	switch {
	case numeral < 0 && name < 0:
		return 0, false
	case numeral < 0:
		return name, true
	case name < 0:
		return numeral, true
	case nameWins(name, numeral):
		return name, true
	default:
		return numeral, true
	}
}
