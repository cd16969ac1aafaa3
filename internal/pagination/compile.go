package pagination

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jackzampolin/pagina/internal/numeral"
)

// Alternation markers.
const (
	AlternationOpen      = '¡'
	AlternationSeparator = '¿'
	fixedQuote           = '`'
)

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile parses a pattern string into a Pattern. The input is normalized
// to NFC first. Any error is a *SyntaxError and no Pattern is returned.
func Compile(pattern string) (*Pattern, error) {
	src := norm.NFC.String(pattern)
	if strings.TrimSpace(src) == "" {
		return nil, &SyntaxError{Pattern: src, Offset: 0, Err: ErrEmptyPattern}
	}

	runes := []rune(src)
	p := &Pattern{source: src}
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != ' ' {
			continue
		}
		cp := &columnParser{pattern: src, runes: runes[start:i], base: start}
		col, err := cp.parse()
		if err != nil {
			return nil, err
		}
		p.columns = append(p.columns, col)
		start = i + 1
	}
	return p, nil
}

// columnParser scans one space-delimited column in a single pass.
type columnParser struct {
	pattern string
	runes   []rune
	base    int // offset of runes[0] in the whole pattern
	pos     int

	fields  []Field
	literal strings.Builder

	pendingHalf bool
	halfPos     int
}

func (cp *columnParser) errorf(pos int, err error, detail string) error {
	return &SyntaxError{Pattern: cp.pattern, Offset: cp.base + pos, Err: err, Detail: detail}
}

func (cp *columnParser) parse() (Column, error) {
	for cp.pos < len(cp.runes) {
		r := cp.runes[cp.pos]
		var err error
		switch {
		case r == fixedQuote:
			err = cp.parseFixed()
		case r == AlternationOpen:
			err = cp.parseAlternation()
		case r == AlternationSeparator:
			err = cp.errorf(cp.pos, ErrUnmatchedAlternation, "separator without opening ¡")
		case isDigit(r):
			err = cp.parseArabic()
		case numeral.IsRomanRune(r):
			err = cp.parseRoman()
		case numeral.IsStepRune(r):
			err = cp.parseLeadingStep()
		default:
			cp.literal.WriteRune(r)
			cp.pos++
		}
		if err != nil {
			return Column{}, err
		}
	}
	cp.flushLiteral()

	if cp.pendingHalf {
		return Column{}, cp.errorf(cp.halfPos, ErrDanglingHalf, "")
	}
	return Column{Fields: cp.fields}, nil
}

func (cp *columnParser) flushLiteral() {
	if cp.literal.Len() == 0 {
		return
	}
	cp.fields = append(cp.fields, Literal{Text: cp.literal.String()})
	cp.literal.Reset()
}

// takeHalf consumes a pending leading half marker.
func (cp *columnParser) takeHalf() numeral.HalfInteger {
	if !cp.pendingHalf {
		return numeral.Zero
	}
	cp.pendingHalf = false
	return numeral.Half
}

func (cp *columnParser) parseFixed() error {
	open := cp.pos
	end := -1
	for i := open + 1; i < len(cp.runes); i++ {
		if cp.runes[i] == fixedQuote {
			end = i
			break
		}
	}
	if end < 0 {
		return cp.errorf(open, ErrUnmatchedBacktick, "")
	}
	text := string(cp.runes[open+1 : end])
	if text == "" {
		return cp.errorf(open, ErrEmptyFixed, "")
	}
	cp.pos = end + 1

	counter, ok, err := counterFromText(text)
	if err != nil {
		return cp.errorf(open+1, err, "")
	}
	if !ok {
		// Not a number: the quotes escape literal text.
		cp.literal.WriteString(text)
		return nil
	}

	if cp.pos < len(cp.runes) && isStepCandidate(cp.runes[cp.pos]) {
		return cp.errorf(cp.pos, ErrStepOnFixed, "")
	}

	cp.flushLiteral()
	counter.Fixed = true
	counter.Step = numeral.Zero
	cp.fields = append(cp.fields, counter)
	return nil
}

// counterFromText parses the content of a fixed field. ok is false when the
// text is neither an arabic nor a roman number.
func counterFromText(text string) (Counter, bool, error) {
	allDigits, allRoman := true, true
	for _, r := range text {
		allDigits = allDigits && isDigit(r)
		allRoman = allRoman && numeral.IsRomanRune(r)
	}
	switch {
	case allDigits:
		n, err := strconv.Atoi(text)
		if err != nil {
			return Counter{}, false, ErrNumberTooLarge
		}
		return Counter{System: Arabic, Start: numeral.Whole(n), Width: padWidth(text)}, true, nil
	case allRoman:
		n, err := numeral.FromRoman(text)
		if err != nil {
			return Counter{}, false, nil
		}
		return Counter{System: romanSystem(text), Start: numeral.Whole(n)}, true, nil
	default:
		return Counter{}, false, nil
	}
}

func (cp *columnParser) parseArabic() error {
	start := cp.pos
	for cp.pos < len(cp.runes) && isDigit(cp.runes[cp.pos]) {
		cp.pos++
	}
	text := string(cp.runes[start:cp.pos])
	n, err := strconv.Atoi(text)
	if err != nil {
		return cp.errorf(start, ErrNumberTooLarge, text)
	}

	cp.flushLiteral()
	counter := Counter{
		System: Arabic,
		Start:  numeral.Whole(n).Add(cp.takeHalf()),
		Width:  padWidth(text),
	}
	return cp.appendCounter(counter)
}

func (cp *columnParser) parseRoman() error {
	start := cp.pos
	end := start
	for end < len(cp.runes) && numeral.IsRomanRune(cp.runes[end]) {
		end++
	}

	// A roman run touching another letter is part of a word.
	touchesWord := (start > 0 && unicode.IsLetter(cp.runes[start-1])) ||
		(end < len(cp.runes) && unicode.IsLetter(cp.runes[end]))
	if touchesWord {
		cp.literal.WriteString(string(cp.runes[start:end]))
		cp.pos = end
		return nil
	}

	text := string(cp.runes[start:end])
	n, err := numeral.FromRoman(text)
	if err != nil {
		return cp.errorf(start, ErrInvalidRoman, text)
	}
	cp.pos = end

	cp.flushLiteral()
	counter := Counter{
		System: romanSystem(text),
		Start:  numeral.Whole(n).Add(cp.takeHalf()),
	}
	return cp.appendCounter(counter)
}

// appendCounter reads an optional step run after a counter and records it.
func (cp *columnParser) appendCounter(counter Counter) error {
	step, explicit, err := cp.parseStep()
	if err != nil {
		return err
	}
	if explicit {
		counter.Step = step
	} else {
		counter.Step = numeral.One
		counter.Implicit = true
	}
	cp.fields = append(cp.fields, counter)
	return nil
}

// parseStep consumes a step run at the current position. explicit is false
// when there is no run or the run holds only neutral markers.
func (cp *columnParser) parseStep() (numeral.HalfInteger, bool, error) {
	start := cp.pos
	explicit := false
	for cp.pos < len(cp.runes) && isStepCandidate(cp.runes[cp.pos]) {
		r := cp.runes[cp.pos]
		if numeral.IsStepLikeRune(r) {
			return numeral.Zero, false, cp.errorf(cp.pos, ErrInvalidStep, string(r))
		}
		if r != numeral.NeutralMarker {
			explicit = true
		}
		cp.pos++
	}
	if cp.pos == start || !explicit {
		return numeral.Zero, false, nil
	}
	step, err := numeral.ParseHalfInteger(string(cp.runes[start:cp.pos]))
	if err != nil {
		return numeral.Zero, false, cp.errorf(start, ErrInvalidStep, err.Error())
	}
	return step, true, nil
}

// parseLeadingStep handles a step run that does not follow a counter. Only
// a single half marker is allowed there; it shifts the next counter or
// alternation by half a unit.
func (cp *columnParser) parseLeadingStep() error {
	start := cp.pos
	if cp.runes[start] == numeral.HalfMarker && !cp.pendingHalf &&
		(start+1 >= len(cp.runes) || !isStepCandidate(cp.runes[start+1])) {
		cp.pendingHalf = true
		cp.halfPos = start
		cp.pos++
		return nil
	}
	return cp.errorf(start, ErrStepWithoutCounter, "")
}

func (cp *columnParser) parseAlternation() error {
	open := cp.pos
	sep := -1
	for i := open + 1; i < len(cp.runes); i++ {
		r := cp.runes[i]
		if r == AlternationSeparator {
			sep = i
			break
		}
		if r == AlternationOpen {
			break
		}
	}
	if sep < 0 {
		return cp.errorf(open, ErrUnmatchedAlternation, "missing ¿")
	}

	end := sep + 1
	for end < len(cp.runes) {
		r := cp.runes[end]
		if r == AlternationSeparator {
			return cp.errorf(end, ErrUnmatchedAlternation, "second ¿ in alternation")
		}
		if r == AlternationOpen || r == fixedQuote || isStepCandidate(r) {
			break
		}
		end++
	}

	cp.flushLiteral()
	alt := Alternation{
		Branches: [2]string{string(cp.runes[open+1 : sep]), string(cp.runes[sep+1 : end])},
		Phase:    cp.takeHalf(),
	}
	cp.pos = end

	step, explicit, err := cp.parseStep()
	if err != nil {
		return err
	}
	if explicit {
		alt.Step = step
	} else {
		alt.Step = numeral.Half
	}
	cp.fields = append(cp.fields, alt)
	return nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isStepCandidate(r rune) bool {
	return numeral.IsStepRune(r) || numeral.IsStepLikeRune(r)
}

func romanSystem(text string) NumeralSystem {
	if strings.ToLower(text) == text {
		return RomanLower
	}
	return RomanUpper
}

// padWidth keeps the printed width of zero-padded numbers like "007".
func padWidth(text string) int {
	if len(text) > 1 && text[0] == '0' {
		return len(text)
	}
	return 0
}
