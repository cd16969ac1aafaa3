package pagination

import (
	"iter"
	"strconv"
	"strings"

	"github.com/jackzampolin/pagina/internal/numeral"
)

type counterState struct {
	field  Counter
	value  numeral.HalfInteger
	stride numeral.HalfInteger
	driven bool
}

func (c *counterState) render(b *strings.Builder) {
	n := c.value.Int()
	switch c.field.System {
	case RomanLower, RomanUpper:
		// Roman counters start at 1 and never decrease, so n > 0.
		if s, err := numeral.ToRoman(n, c.field.System == RomanLower); err == nil {
			b.WriteString(s)
			return
		}
	}
	s := strconv.Itoa(n)
	if pad := c.field.Width - len(s); pad > 0 {
		b.WriteString(strings.Repeat("0", pad))
	}
	b.WriteString(s)
}

type alternationState struct {
	field  Alternation
	cursor numeral.HalfInteger
	drives []*counterState
}

func (a *alternationState) render(b *strings.Builder) {
	if a.cursor.HasHalf() {
		b.WriteString(a.field.Branches[1])
		return
	}
	b.WriteString(a.field.Branches[0])
}

// advance moves the cursor one step and bumps every driven counter once per
// whole unit crossed.
func (a *alternationState) advance() {
	before := a.cursor.Int()
	a.cursor = a.cursor.Add(a.field.Step)
	crossed := a.cursor.Int() - before
	if crossed == 0 {
		return
	}
	for _, c := range a.drives {
		c.value = c.value.Add(numeral.Whole(crossed))
	}
}

type slot struct {
	field Field
	count *counterState
	alt   *alternationState
}

// Sequence generates the labels of a Pattern. It holds mutable cursors and
// is not safe for concurrent use.
type Sequence struct {
	pattern      *Pattern
	columns      [][]slot
	counters     []*counterState
	alternations []*alternationState
	issued       int
}

// NewSequence creates a generator positioned at the pattern's first label.
// Cursors are copied, so several sequences can share one Pattern.
func NewSequence(p *Pattern) *Sequence {
	s := &Sequence{pattern: p, columns: make([][]slot, len(p.columns))}

	var firstAlt *alternationState
	colAlt := make([]*alternationState, len(p.columns))
	for i, col := range p.columns {
		slots := make([]slot, 0, len(col.Fields))
		for _, f := range col.Fields {
			sl := slot{field: f}
			switch f := f.(type) {
			case Counter:
				sl.count = &counterState{field: f, value: f.Start}
				s.counters = append(s.counters, sl.count)
			case Alternation:
				sl.alt = &alternationState{field: f, cursor: f.Phase}
				s.alternations = append(s.alternations, sl.alt)
				if colAlt[i] == nil {
					colAlt[i] = sl.alt
				}
				if firstAlt == nil {
					firstAlt = sl.alt
				}
			}
			slots = append(slots, sl)
		}
		s.columns[i] = slots
	}

	// Implicit counters follow an alternation when there is one: the
	// first of their own column, else the first of the pattern.
	strideColumns := 0
	for i, slots := range s.columns {
		hasFree := false
		for _, sl := range slots {
			c := sl.count
			if c == nil || c.field.Fixed || !c.field.Implicit {
				continue
			}
			alt := colAlt[i]
			if alt == nil {
				alt = firstAlt
			}
			if alt == nil {
				hasFree = true
				continue
			}
			c.driven = true
			if c.value.HasHalf() {
				c.value = numeral.Whole(c.value.Int())
				if !alt.cursor.HasHalf() {
					alt.cursor = alt.cursor.Add(numeral.Half)
				}
			}
			alt.drives = append(alt.drives, c)
		}
		if hasFree {
			strideColumns++
		}
	}
	if strideColumns == 0 {
		strideColumns = 1
	}

	for _, c := range s.counters {
		switch {
		case c.field.Fixed, c.driven:
			c.stride = numeral.Zero
		case c.field.Implicit:
			c.stride = numeral.One.Mul(strideColumns)
		default:
			c.stride = c.field.Step
		}
	}
	return s
}

// Pattern returns the pattern the sequence was created from.
func (s *Sequence) Pattern() *Pattern { return s.pattern }

// Issued returns how many labels Next has returned so far.
func (s *Sequence) Issued() int { return s.issued }

// Next returns the current label and advances every column by one page.
func (s *Sequence) Next() string {
	label := s.render()
	for _, c := range s.counters {
		if !c.stride.IsZero() {
			c.value = c.value.Add(c.stride)
		}
	}
	for _, a := range s.alternations {
		a.advance()
	}
	s.issued++
	return label
}

func (s *Sequence) render() string {
	var b strings.Builder
	for i, slots := range s.columns {
		if i > 0 {
			b.WriteByte(' ')
		}
		for _, sl := range slots {
			switch f := sl.field.(type) {
			case Literal:
				b.WriteString(f.Text)
			case Counter:
				sl.count.render(&b)
			case Alternation:
				sl.alt.render(&b)
			}
		}
	}
	return b.String()
}

// Take returns the next n labels.
func (s *Sequence) Take(n int) []string {
	if n <= 0 {
		return []string{}
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = s.Next()
	}
	return labels
}

// All returns an endless iterator over the remaining labels.
func (s *Sequence) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Generate compiles pattern and returns its first n labels.
func Generate(pattern string, n int) ([]string, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return NewSequence(p).Take(n), nil
}
