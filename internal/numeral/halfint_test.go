package numeral

import (
	"errors"
	"testing"
)

func TestHalfInteger_Add(t *testing.T) {
	tests := []struct {
		name string
		a, b HalfInteger
		want HalfInteger
	}{
		{"whole plus whole", Whole(2), Whole(3), Whole(5)},
		{"half plus half carries", Half, Half, One},
		{"whole plus half", Whole(1), Half, NewHalfInteger(1, true)},
		{"half carries into whole", NewHalfInteger(1, true), NewHalfInteger(2, true), Whole(4)},
		{"zero identity", NewHalfInteger(7, true), Zero, NewHalfInteger(7, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("%v + %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHalfInteger_Mul(t *testing.T) {
	if got := Half.Mul(3); got != NewHalfInteger(1, true) {
		t.Errorf("½*3 = %v, want 1½", got)
	}
	if got := One.Mul(2); got != Whole(2) {
		t.Errorf("1*2 = %v, want 2", got)
	}
	if got := NewHalfInteger(2, true).Mul(0); !got.IsZero() {
		t.Errorf("2½*0 = %v, want 0", got)
	}
}

func TestHalfInteger_Accessors(t *testing.T) {
	h := NewHalfInteger(3, true)
	if h.Int() != 3 {
		t.Errorf("Int() = %d, want 3", h.Int())
	}
	if !h.HasHalf() {
		t.Error("HasHalf() = false, want true")
	}
	if h.String() != "3½" {
		t.Errorf("String() = %q, want 3½", h.String())
	}
	if Half.String() != "½" {
		t.Errorf("String() = %q, want ½", Half.String())
	}
	if Zero.String() != "0" {
		t.Errorf("String() = %q, want 0", Zero.String())
	}
	if Whole(4).String() != "4" {
		t.Errorf("String() = %q, want 4", Whole(4).String())
	}
	if NewHalfInteger(-2, false) != Zero {
		t.Error("negative whole should clamp to zero")
	}
}

func TestParseHalfInteger(t *testing.T) {
	tests := []struct {
		in   string
		want HalfInteger
	}{
		{"²", Whole(2)},
		{"¹⁰", Whole(10)},
		{"½", Half},
		{"½½", One},
		{"½½½", NewHalfInteger(1, true)},
		{"¹½", NewHalfInteger(1, true)},
		{"°", Zero},
		{"°²", Whole(2)},
		{"⁰", Zero},
	}

	for _, tt := range tests {
		got, err := ParseHalfInteger(tt.in)
		if err != nil {
			t.Fatalf("ParseHalfInteger(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHalfInteger(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHalfInteger_Invalid(t *testing.T) {
	for _, in := range []string{"", "2", "²a", "¼", "⁺"} {
		if _, err := ParseHalfInteger(in); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("ParseHalfInteger(%q) error = %v, want ErrInvalidStep", in, err)
		}
	}
}

func TestParseHalfInteger_Overflow(t *testing.T) {
	// Both runs exceed MaxInt64.
	for _, in := range []string{"¹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹", "⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹⁹"} {
		if _, err := ParseHalfInteger(in); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("ParseHalfInteger(%q) error = %v, want ErrInvalidStep", in, err)
		}
	}
	if got, err := ParseHalfInteger("⁹⁹⁹⁹⁹⁹⁹⁹⁹"); err != nil || got != Whole(999999999) {
		t.Errorf("ParseHalfInteger(9 digits) = %v, %v", got, err)
	}
}

func TestStepRunes(t *testing.T) {
	for _, r := range "⁰¹²³⁴⁵⁶⁷⁸⁹½°" {
		if !IsStepRune(r) {
			t.Errorf("IsStepRune(%q) = false", r)
		}
	}
	for _, r := range "12a¿¡" {
		if IsStepRune(r) {
			t.Errorf("IsStepRune(%q) = true", r)
		}
	}
	for _, r := range "⁺⁻¼¾⅓⅛" {
		if !IsStepLikeRune(r) {
			t.Errorf("IsStepLikeRune(%q) = false", r)
		}
	}
	if IsStepLikeRune('½') {
		t.Error("IsStepLikeRune(½) = true, want false")
	}
}
