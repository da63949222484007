package unwrap

import (
	"runtime"

	"fortio.org/safecast"

	"github.com/canndrew/unwrap/pkg/unwrap/banner"
)

// Here captures the call site of its caller, for feeding VerboseUnwrap and
// VerboseUnwrapErr from custom wrappers.
//
// Scope is the fully qualified name of the enclosing function. The Go
// runtime does not track column numbers, so Column is always 1.
func Here() banner.Site {
	return callerSite(2)
}

// callerSite resolves the stack frame skip levels above runtime.Caller into
// banner site metadata. It never fails; unresolvable frames produce a
// placeholder site.
func callerSite(skip int) banner.Site {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return banner.Site{Scope: "unknown", File: "unknown", Line: 1, Column: 1}
	}
	scope := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		scope = fn.Name()
	}
	ln, err := safecast.Conv[uint32](line)
	if err != nil {
		ln = 1
	}
	return banner.Site{Scope: scope, File: file, Line: ln, Column: 1}
}
