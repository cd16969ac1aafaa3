package pagination

import (
	"github.com/jackzampolin/pagina/internal/numeral"
)

// NumeralSystem selects how a counter value is spelled.
type NumeralSystem int

const (
	Arabic NumeralSystem = iota
	RomanLower
	RomanUpper
)

func (s NumeralSystem) String() string {
	switch s {
	case Arabic:
		return "arabic"
	case RomanLower:
		return "roman_lower"
	case RomanUpper:
		return "roman_upper"
	default:
		return "unknown"
	}
}

// Field is one part of a column: Literal, Counter or Alternation.
// The set is closed; the generator switches over exactly these types.
type Field interface {
	isField()
}

// Literal is text that never changes.
type Literal struct {
	Text string
}

// Counter is a numbered field. Fixed counters never advance. Implicit is
// set when the pattern gave no explicit step; the generator decides the
// effective stride for those.
type Counter struct {
	System   NumeralSystem
	Start    numeral.HalfInteger
	Step     numeral.HalfInteger
	Fixed    bool
	Implicit bool
	Width    int
}

// Alternation cycles between two texts, e.g. recto and verso. Branch 0 is
// shown while the cursor is whole, branch 1 while it carries a half.
type Alternation struct {
	Branches [2]string
	Step     numeral.HalfInteger
	Phase    numeral.HalfInteger
}

func (Literal) isField()     {}
func (Counter) isField()     {}
func (Alternation) isField() {}

// Column is rendered by concatenating its fields.
type Column struct {
	Fields []Field
}

// Pattern is a compiled pagination pattern. It is immutable.
type Pattern struct {
	source  string
	columns []Column
}

// Source returns the normalized pattern string the Pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

func (p *Pattern) String() string { return p.source }

// Columns returns a copy of the compiled columns.
func (p *Pattern) Columns() []Column {
	cols := make([]Column, len(p.columns))
	for i, c := range p.columns {
		cols[i] = Column{Fields: append([]Field(nil), c.Fields...)}
	}
	return cols
}

// FieldInfo is a serializable view of a Field.
type FieldInfo struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	System   string   `json:"system,omitempty" yaml:"system,omitempty"`
	Start    string   `json:"start,omitempty" yaml:"start,omitempty"`
	Step     string   `json:"step,omitempty" yaml:"step,omitempty"`
	Fixed    bool     `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Branches []string `json:"branches,omitempty" yaml:"branches,omitempty"`
	Phase    string   `json:"phase,omitempty" yaml:"phase,omitempty"`
}

// Describe returns a serializable view of the pattern, one entry per column.
func (p *Pattern) Describe() [][]FieldInfo {
	out := make([][]FieldInfo, len(p.columns))
	for i, col := range p.columns {
		infos := make([]FieldInfo, 0, len(col.Fields))
		for _, f := range col.Fields {
			switch f := f.(type) {
			case Literal:
				infos = append(infos, FieldInfo{Kind: "literal", Text: f.Text})
			case Counter:
				info := FieldInfo{
					Kind:   "counter",
					System: f.System.String(),
					Start:  f.Start.String(),
					Fixed:  f.Fixed,
				}
				if !f.Fixed {
					info.Step = f.Step.String()
					if f.Implicit {
						info.Step = "implicit"
					}
				}
				infos = append(infos, info)
			case Alternation:
				infos = append(infos, FieldInfo{
					Kind:     "alternation",
					Branches: []string{f.Branches[0], f.Branches[1]},
					Step:     f.Step.String(),
					Phase:    f.Phase.String(),
				})
			}
		}
		out[i] = infos
	}
	return out
}
