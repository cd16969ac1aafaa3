// Package pagination compiles pagination patterns and generates page labels.
//
// A pattern describes how the pages of a scanned book or manuscript are
// numbered. It is written once by a cataloger and then drives an unbounded
// sequence of labels, one per page image.
//
// Pattern syntax:
//
//	1, 001         arabic counter starting at the given value (zero padding is kept)
//	i, I           roman counter, lower or upper case
//	`7`            fixed number that never changes (`…` around other text is a literal escape)
//	1²  1½  1°     counter step: superscript digits, ½ halves, ° neutral (no explicit step)
//	¡r¿v           two-state alternation, e.g. recto/verso; optional trailing step (default ½)
//	½              before a counter or alternation: start half a unit later
//	space          separates columns; all columns advance together
//
// A roman letter that does not touch another letter always opens a counter,
// even right after a digit ("1v" renders 1v, 2vi, 3vii) or inside backticks
// ("`v`" is a fixed 5). A literal lone roman letter can only come from an
// alternation branch: "1 ¡v¿v¹" yields "1 v", "2 v", "3 v".
//
// Examples:
//
//	"1"           1, 2, 3, …
//	"[`1`-1²]"    [1-1], [1-3], [1-5], …
//	"1 2"         "1 2", "3 4", "5 6", …
//	"1° ¡r¿v½"    "1 r", "1 v", "2 r", "2 v", …
//
// A compiled *Pattern is immutable. Each *Sequence owns its own cursors and
// must not be shared between goroutines without external locking.
package pagination
