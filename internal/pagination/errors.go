package pagination

import (
	"errors"
	"fmt"

	"github.com/jackzampolin/pagina/internal/numeral"
)

// Sentinel errors carried by *SyntaxError.
var (
	ErrEmptyPattern         = errors.New("empty pattern")
	ErrUnmatchedBacktick    = errors.New("unmatched backtick")
	ErrEmptyFixed           = errors.New("empty fixed field")
	ErrUnmatchedAlternation = errors.New("unmatched alternation bracket")
	ErrInvalidRoman         = numeral.ErrInvalidRoman
	ErrInvalidStep          = numeral.ErrInvalidStep
	ErrStepOnFixed          = errors.New("fixed field cannot carry a step")
	ErrStepWithoutCounter   = errors.New("step without counter")
	ErrDanglingHalf         = errors.New("half marker without following counter")
	ErrNumberTooLarge       = errors.New("number too large")
)

var (
	// ErrNegativeCount is returned when a negative number of labels is requested.
	ErrNegativeCount = errors.New("label count must not be negative")

	// ErrPageOutOfRange is returned when the first labelled page is outside the page list.
	ErrPageOutOfRange = errors.New("start page out of range")
)

// SyntaxError reports an invalid pattern. Offset is the rune offset of the
// offending character in the (NFC normalized) pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Err     error
	Detail  string
}

func (e *SyntaxError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return fmt.Sprintf("pagination pattern %q: %s at offset %d", e.Pattern, msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
