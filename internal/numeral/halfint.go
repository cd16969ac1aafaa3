package numeral

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidStep is returned when a step run contains a rune outside the
// step alphabet.
var ErrInvalidStep = errors.New("invalid step")

// Step alphabet runes.
const (
	HalfMarker    = '½'
	NeutralMarker = '°'
)

var superscriptDigits = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

// HalfInteger is a non-negative count that may carry one extra half unit.
// Leaf counting uses it: a recto is the half, the verso completes the unit.
type HalfInteger struct {
	whole int
	half  bool
}

var (
	Zero = HalfInteger{}
	Half = HalfInteger{half: true}
	One  = HalfInteger{whole: 1}
)

// NewHalfInteger returns whole (+½ if half). Negative wholes are clamped to 0.
func NewHalfInteger(whole int, half bool) HalfInteger {
	if whole < 0 {
		whole = 0
	}
	return HalfInteger{whole: whole, half: half}
}

// Whole returns n as a HalfInteger without a half.
func Whole(n int) HalfInteger {
	return NewHalfInteger(n, false)
}

// Add returns h+o. Two halves carry into the whole part.
func (h HalfInteger) Add(o HalfInteger) HalfInteger {
	sum := HalfInteger{whole: h.whole + o.whole}
	switch {
	case h.half && o.half:
		sum.whole++
	case h.half || o.half:
		sum.half = true
	}
	return sum
}

// Mul returns h*k for k >= 0.
func (h HalfInteger) Mul(k int) HalfInteger {
	if k <= 0 {
		return Zero
	}
	halves := (h.whole*2 + h.halfUnits()) * k
	return HalfInteger{whole: halves / 2, half: halves%2 == 1}
}

func (h HalfInteger) halfUnits() int {
	if h.half {
		return 1
	}
	return 0
}

// Int returns the whole part; the half is truncated.
func (h HalfInteger) Int() int { return h.whole }

// HasHalf reports whether h carries a half unit.
func (h HalfInteger) HasHalf() bool { return h.half }

// IsZero reports whether h is exactly zero.
func (h HalfInteger) IsZero() bool { return h.whole == 0 && !h.half }

func (h HalfInteger) String() string {
	if h.half && h.whole == 0 {
		return "½"
	}
	if h.half {
		return strconv.Itoa(h.whole) + "½"
	}
	return strconv.Itoa(h.whole)
}

// ParseHalfInteger folds a run of step runes left to right. Superscript
// digits shift the accumulator by one decimal place, the half marker
// toggles a pending half (a second one commits a whole unit) and the
// neutral marker contributes nothing.
func ParseHalfInteger(s string) (HalfInteger, error) {
	if s == "" {
		return Zero, fmt.Errorf("%w: empty", ErrInvalidStep)
	}
	var acc int
	var pending bool
	for i, r := range []rune(s) {
		if d, ok := superscriptDigits[r]; ok {
			if acc > (math.MaxInt-d)/10 {
				return Zero, fmt.Errorf("%w: %q overflows", ErrInvalidStep, s)
			}
			acc = acc*10 + d
			continue
		}
		switch r {
		case HalfMarker:
			if pending {
				if acc == math.MaxInt {
					return Zero, fmt.Errorf("%w: %q overflows", ErrInvalidStep, s)
				}
				acc++
				pending = false
			} else {
				pending = true
			}
		case NeutralMarker:
		default:
			return Zero, fmt.Errorf("%w: %q at position %d", ErrInvalidStep, r, i)
		}
	}
	return HalfInteger{whole: acc, half: pending}, nil
}

// IsStepRune reports whether r belongs to the step alphabet.
func IsStepRune(r rune) bool {
	if _, ok := superscriptDigits[r]; ok {
		return true
	}
	return r == HalfMarker || r == NeutralMarker
}

// IsStepDigit reports whether r is a superscript digit.
func IsStepDigit(r rune) bool {
	_, ok := superscriptDigits[r]
	return ok
}

// IsStepLikeRune reports superscript and vulgar fraction runes that look
// like step characters but are not part of the alphabet.
func IsStepLikeRune(r rune) bool {
	switch r {
	case '⁺', '⁻', '⁼', '⁽', '⁾', 'ⁱ', 'ⁿ', '¼', '¾':
		return true
	}
	// Vulgar fractions block (⅐ through ⅞, plus ↉).
	return (r >= '⅐' && r <= '⅟') || r == '↉'
}
