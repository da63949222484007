package unwrap

import (
	"fmt"

	"github.com/canndrew/unwrap/pkg/unwrap/banner"
)

// Result holds either a success payload of type T or a failure payload of
// type E. Exactly one of the two is populated. E carries no constraint; the
// failure payload does not have to be an error.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok returns a successful Result carrying value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: value, isOk: true}
}

// Err returns a failed Result carrying failure.
func Err[T, E any](failure E) Result[T, E] {
	return Result[T, E]{err: failure}
}

// IsOk reports whether the Result holds a success payload.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the Result holds a failure payload.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Ok returns the success payload and reports whether it is populated.
func (r Result[T, E]) Ok() (T, bool) {
	return r.ok, r.isOk
}

// Err returns the failure payload and reports whether it is populated.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.isOk
}

// VerboseUnwrap returns the success payload. When the Result is a failure it
// renders a banner for site, with message when present, and the process
// terminates instead of returning.
func (r Result[T, E]) VerboseUnwrap(message Option[string], site banner.Site) T {
	if r.isOk {
		return r.ok
	}
	banner.Default().Abort(banner.Request{
		Op:      banner.OpUnwrap,
		Label:   labelResultErr,
		Site:    site,
		Message: message.ptr(),
		Payload: DebugString(r.err),
	})
	panic("unreachable")
}

// VerboseUnwrapErr returns the failure payload. When the Result is a success
// it renders a banner for site and the process terminates instead of
// returning.
func (r Result[T, E]) VerboseUnwrapErr(message Option[string], site banner.Site) E {
	if !r.isOk {
		return r.err
	}
	banner.Default().Abort(banner.Request{
		Op:      banner.OpUnwrapErr,
		Label:   labelResultOk,
		Site:    site,
		Message: message.ptr(),
		Payload: DebugString(r.ok),
	})
	panic("unreachable")
}

// Unwrap returns the success payload, or terminates the process with a
// banner naming this call site. The success path does no call-site capture
// and no formatting.
func (r Result[T, E]) Unwrap() T {
	if r.isOk {
		return r.ok
	}
	return r.VerboseUnwrap(None[string](), callerSite(2))
}

// Unwrapf is Unwrap with an extra message line, formatted fmt.Sprintf style
// and printed under the call-site line. The message is only formatted when
// the Result is a failure.
func (r Result[T, E]) Unwrapf(format string, args ...any) T {
	if r.isOk {
		return r.ok
	}
	return r.VerboseUnwrap(Some(fmt.Sprintf(format, args...)), callerSite(2))
}

// UnwrapErr returns the failure payload, or terminates the process with a
// banner naming this call site.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isOk {
		return r.err
	}
	return r.VerboseUnwrapErr(None[string](), callerSite(2))
}

// UnwrapErrf is UnwrapErr with an extra message line, formatted fmt.Sprintf
// style. The message is only formatted when the Result is a success.
func (r Result[T, E]) UnwrapErrf(format string, args ...any) E {
	if !r.isOk {
		return r.err
	}
	return r.VerboseUnwrapErr(Some(fmt.Sprintf(format, args...)), callerSite(2))
}
