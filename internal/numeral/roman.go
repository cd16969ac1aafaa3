// Package numeral converts page counters between integers and their
// printed spellings, and provides the half-unit count used for
// recto/verso foliation.
package numeral

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRange is returned when a value has no roman spelling (n <= 0).
	ErrRange = errors.New("value out of roman numeral range")

	// ErrInvalidRoman is returned when a string is not a canonical roman numeral.
	ErrInvalidRoman = errors.New("invalid roman numeral")
)

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

var romanDigits = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

// ToRoman converts a positive integer to a roman numeral.
// Values above 3999 keep prepending M, there is no upper bound.
func ToRoman(n int, lower bool) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %d", ErrRange, n)
	}

	var result strings.Builder
	for i := 0; i < len(romanValues); i++ {
		for n >= romanValues[i] {
			n -= romanValues[i]
			result.WriteString(romanSymbols[i])
		}
	}
	if lower {
		return strings.ToLower(result.String()), nil
	}
	return result.String(), nil
}

// FromRoman parses a roman numeral written in one consistent case.
// Only the canonical spelling of a value is accepted, so "IIII" and
// "VX" are rejected.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidRoman)
	}
	upper := strings.ToUpper(s)
	if s != upper && s != strings.ToLower(s) {
		return 0, fmt.Errorf("%w: mixed case in %q", ErrInvalidRoman, s)
	}

	runes := []rune(upper)
	result := 0
	for i, r := range runes {
		val, ok := romanDigits[r]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidRoman, r, s)
		}
		if i+1 < len(runes) && romanDigits[runes[i+1]] > val {
			result -= val
		} else {
			result += val
		}
	}

	// Subtractive parsing accepts junk like "IIV"; the round trip does not.
	canonical, err := ToRoman(result, false)
	if err != nil || canonical != upper {
		return 0, fmt.Errorf("%w: %q is not canonical", ErrInvalidRoman, s)
	}
	return result, nil
}

// IsRomanRune reports whether r is a roman digit in either case.
func IsRomanRune(r rune) bool {
	switch r {
	case 'i', 'v', 'x', 'l', 'c', 'd', 'm', 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		return true
	}
	return false
}
