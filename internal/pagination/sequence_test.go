package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "arabic",
			pattern: "1",
			want:    []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name:    "roman lower",
			pattern: "i",
			want:    []string{"i", "ii", "iii", "iv", "v"},
		},
		{
			name:    "roman upper",
			pattern: "I",
			want:    []string{"I", "II", "III", "IV", "V"},
		},
		{
			name:    "fixed and counter",
			pattern: "[`0`-(1)]",
			want:    []string{"[0-(1)]", "[0-(2)]", "[0-(3)]", "[0-(4)]"},
		},
		{
			name:    "fixed and stepped counter",
			pattern: "[`1`-1²]",
			want:    []string{"[1-1]", "[1-3]", "[1-5]", "[1-7]"},
		},
		{
			name:    "roman letter after digit counts",
			pattern: "1v",
			want:    []string{"1v", "2vi", "3vii"},
		},
		{
			name:    "quoted roman letter is fixed",
			pattern: "`v`",
			want:    []string{"v", "v", "v"},
		},
		{
			name:    "literal roman letter from alternation",
			pattern: "1 ¡v¿v¹",
			want:    []string{"1 v", "2 v", "3 v"},
		},
		{
			name:    "step only",
			pattern: "1²",
			want:    []string{"1", "3", "5", "7", "9"},
		},
		{
			name:    "two columns",
			pattern: "1 2",
			want:    []string{"1 2", "3 4", "5 6", "7 8", "9 10"},
		},
		{
			name:    "two columns reversed",
			pattern: "2 1",
			want:    []string{"2 1", "4 3", "6 5", "8 7", "10 9"},
		},
		{
			name:    "recto verso",
			pattern: "1° ¡r¿v½",
			want:    []string{"1 r", "1 v", "2 r", "2 v"},
		},
		{
			name:    "recto verso starting on verso",
			pattern: "½1° ¡r¿v½",
			want:    []string{"1 v", "2 r", "2 v", "3 r", "3 v"},
		},
		{
			name:    "literal words keep roman letters",
			pattern: "Seite 1",
			want:    []string{"Seite 1", "Seite 2", "Seite 3"},
		},
		{
			name:    "zero padding",
			pattern: "098",
			want:    []string{"098", "099", "100", "101"},
		},
		{
			name:    "half step repeats numbers",
			pattern: "1½",
			want:    []string{"1", "1", "2", "2", "3"},
		},
		{
			name:    "recto verso in one column",
			pattern: "Bl. 1¡r¿v",
			want:    []string{"Bl. 1r", "Bl. 1v", "Bl. 2r", "Bl. 2v"},
		},
		{
			name:    "roman foliation",
			pattern: "fol. ix¡r¿v",
			want:    []string{"fol. ixr", "fol. ixv", "fol. xr", "fol. xv"},
		},
		{
			name:    "three columns",
			pattern: "1 2 3",
			want:    []string{"1 2 3", "4 5 6", "7 8 9"},
		},
		{
			name:    "explicit steps are not scaled by columns",
			pattern: "1² 2²",
			want:    []string{"1 2", "3 4", "5 6"},
		},
		{
			name:    "escaped literal",
			pattern: "`Index`-i",
			want:    []string{"Index-i", "Index-ii", "Index-iii"},
		},
		{
			name:    "fixed roman",
			pattern: "`IV`.1",
			want:    []string{"IV.1", "IV.2", "IV.3"},
		},
		{
			name:    "zero step never advances",
			pattern: "5⁰",
			want:    []string{"5", "5", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.pattern, len(tt.want))
			if err != nil {
				t.Fatalf("Generate(%q) error = %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, pattern := range []string{"1", "½1° ¡r¿v½", "[`1`-1²]", "i ii", "001 ¡a¿b"} {
		first, err := Generate(pattern, 50)
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", pattern, err)
		}
		second, err := Generate(pattern, 50)
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", pattern, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Generate(%q) not deterministic:\n%s", pattern, diff)
		}
	}
}

func TestGenerate_Counts(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := Generate("1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no labels, got %v", got)
		}
	})

	t.Run("negative", func(t *testing.T) {
		if _, err := Generate("1", -1); err != ErrNegativeCount {
			t.Errorf("expected ErrNegativeCount, got %v", err)
		}
	})
}

func TestSequence_SharedPattern(t *testing.T) {
	p := MustCompile("1")
	a := NewSequence(p)
	b := NewSequence(p)

	a.Take(3)
	if got := b.Next(); got != "1" {
		t.Errorf("independent sequence returned %q, want 1", got)
	}
	if got := a.Next(); got != "4" {
		t.Errorf("advanced sequence returned %q, want 4", got)
	}
	if a.Issued() != 4 {
		t.Errorf("Issued() = %d, want 4", a.Issued())
	}
	if a.Pattern() != p {
		t.Error("Pattern() should return the seeding pattern")
	}
}

func TestSequence_All(t *testing.T) {
	seq := NewSequence(MustCompile("i"))
	var got []string
	for label := range seq.All() {
		got = append(got, label)
		if len(got) == 4 {
			break
		}
	}
	if diff := cmp.Diff([]string{"i", "ii", "iii", "iv"}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if got := seq.Next(); got != "v" {
		t.Errorf("Next() after All = %q, want v", got)
	}
}
