package banner

import (
	"io"
	"os"
	"sync/atomic"
)

// Renderer writes composed banners and terminates the calling process. The
// zero value is unusable; construct with New.
type Renderer struct {
	out  io.Writer
	exit func(header string)
}

// New returns a Renderer writing to out. exit, when non-nil, runs after the
// banner is written and may terminate the process itself; Abort still panics
// with the header if it returns.
func New(out io.Writer, exit func(header string)) *Renderer {
	return &Renderer{out: out, exit: exit}
}

// Abort composes req, writes it to the renderer's sink in one Write call so
// concurrent crashes cannot interleave inside a banner, and terminates
// abnormally with the header as the reason. It never returns.
func (r *Renderer) Abort(req Request) {
	_, _ = io.WriteString(r.out, Compose(req))
	if r.exit != nil {
		r.exit(req.Header())
	}
	panic(req.Header())
}

var std atomic.Pointer[Renderer]

func init() {
	std.Store(New(os.Stderr, nil))
}

// Default returns the process-wide renderer used by the unwrap entry points.
// Success paths never touch it.
func Default() *Renderer {
	return std.Load()
}

// ReplaceDefault swaps the process-wide renderer and returns a function that
// restores the previous one. Meant for tests that capture banners.
func ReplaceDefault(r *Renderer) func() {
	prev := std.Swap(r)
	return func() { std.Store(prev) }
}
