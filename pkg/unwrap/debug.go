package unwrap

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// debugConf keeps dumps deterministic so identical payloads always render
// byte-identically.
var debugConf = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// maxCauseDepth bounds cause traversal so a malformed Unwrap cycle cannot
// hang a crashing process.
const maxCauseDepth = 32

// DebugString renders v for a banner payload block.
//
// Errors render as their message followed by their chain of causes. Types
// implementing fmt.GoStringer render themselves. Everything else gets a
// deterministic deep dump.
func DebugString(v any) string {
	switch x := v.(type) {
	case error:
		return errorChain(x)
	case fmt.GoStringer:
		return x.GoString()
	}
	return strings.TrimSuffix(debugConf.Sdump(v), "\n")
}

// errorChain renders err as its own message followed by one "caused by:"
// line per cause, depth first.
func errorChain(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	appendCauses(&b, err, 0)
	return b.String()
}

func appendCauses(b *strings.Builder, err error, depth int) {
	if depth >= maxCauseDepth {
		return
	}
	for _, cause := range causesOf(err) {
		b.WriteString("\ncaused by: ")
		b.WriteString(cause.Error())
		appendCauses(b, cause, depth+1)
	}
}

// causesOf returns the immediate causes of err, honoring both the single and
// the multi error unwrap conventions. Nil causes are dropped.
func causesOf(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var causes []error
		for _, cause := range e.Unwrap() {
			if cause != nil {
				causes = append(causes, cause)
			}
		}
		return causes
	case interface{ Unwrap() error }:
		if cause := e.Unwrap(); cause != nil {
			return []error{cause}
		}
	}
	return nil
}
