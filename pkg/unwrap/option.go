package unwrap

import (
	"fmt"

	"github.com/canndrew/unwrap/pkg/unwrap/banner"
)

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and reports whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// ptr returns a pointer to the held value, nil for None.
func (o Option[T]) ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// VerboseUnwrap returns the held value. When the Option is None it renders a
// banner for site, with message when present, and the process terminates
// instead of returning. None carries no payload, so the banner has no
// payload block.
func (o Option[T]) VerboseUnwrap(message Option[string], site banner.Site) T {
	if o.some {
		return o.value
	}
	banner.Default().Abort(banner.Request{
		Op:      banner.OpUnwrap,
		Label:   labelOptionNone,
		Site:    site,
		Message: message.ptr(),
	})
	panic("unreachable")
}

// Unwrap returns the held value, or terminates the process with a banner
// naming this call site. The success path does no call-site capture and no
// formatting.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	return o.VerboseUnwrap(None[string](), callerSite(2))
}

// Unwrapf is Unwrap with an extra message line, formatted fmt.Sprintf style
// and printed under the call-site line. The message is only formatted when
// the Option is None.
func (o Option[T]) Unwrapf(format string, args ...any) T {
	if o.some {
		return o.value
	}
	return o.VerboseUnwrap(Some(fmt.Sprintf(format, args...)), callerSite(2))
}
