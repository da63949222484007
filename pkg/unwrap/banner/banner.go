package banner

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BaseWidth is the width of the banner box in display columns when the
// header fits inside it. The box grows for longer headers and never shrinks
// below this.
const BaseWidth = 84

// headerIndent opens the content line: the left border glyph and three
// spaces.
const headerIndent = "!   "

// Site identifies the call site a diagnostic refers to. All four fields are
// display data; nothing here interprets them.
type Site struct {
	Scope  string // fully qualified enclosing function or module path
	File   string
	Line   uint32 // 1-based
	Column uint32 // 1-based
}

// String formats the site the way it appears in the banner.
func (s Site) String() string {
	return fmt.Sprintf("%s:%d,%d in %s", s.File, s.Line, s.Column, s.Scope)
}

// Op selects which extraction operation failed.
type Op uint8

const (
	// OpUnwrap is the success-extraction operation.
	OpUnwrap Op = iota
	// OpUnwrapErr is the failure-extraction operation.
	OpUnwrapErr
)

// String returns the operation name as it opens banner headers.
func (op Op) String() string {
	if op == OpUnwrapErr {
		return "unwrap_err!"
	}
	return "unwrap!"
}

// Request carries everything one diagnostic needs. It is built on the
// failure path and consumed immediately; nothing retains it.
type Request struct {
	Op    Op
	Label string // classification label, e.g. "Result::Err"
	Site  Site

	// Message is the caller-supplied pre-formatted message line. nil means
	// no message; a non-nil empty message still prints its (empty) line.
	Message *string

	// Payload is the debug rendering of the offending payload. Empty means
	// the payload block is omitted entirely.
	Payload string
}

// Header returns the composed header text. The same text doubles as the
// termination reason when the renderer aborts.
func (r Request) Header() string {
	return r.Op.String() + " called on " + r.Label
}

// Compose renders the full banner for req. It is pure: identical requests
// produce byte-identical text.
//
// The box is two borders of '!' glyphs around a single content line. Widths
// are display columns, not bytes, so labels containing wide runes keep the
// box aligned.
func Compose(req Request) string {
	header := req.Header()
	hw := runewidth.StringWidth(header)

	// Left glyph, three spaces, header, at least one space, right glyph.
	width := max(BaseWidth, hw+len(headerIndent)+2)
	border := strings.Repeat("!", width)
	padding := strings.Repeat(" ", width-hw-len(headerIndent)-1)

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString(headerIndent)
	b.WriteString(header)
	b.WriteString(padding)
	b.WriteString("!\n")
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString(req.Site.String())
	b.WriteByte('\n')
	if req.Message != nil {
		b.WriteString(*req.Message)
		b.WriteByte('\n')
	}
	if req.Payload != "" {
		b.WriteByte('\n')
		b.WriteString(req.Payload)
		if !strings.HasSuffix(req.Payload, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}
