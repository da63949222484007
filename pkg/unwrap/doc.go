// Package unwrap turns a failed payload extraction into a loud, precisely
// located crash instead of a quiet zero value.
//
// Two container shapes are built in:
// - Result[T, E]: a success payload T or a failure payload E
// - Option[T]: a value that may be absent
//
// Their Unwrap/Unwrapf methods return the payload on the happy path with no
// allocation and no formatting work. On the failure path they render a
// banner to stderr naming the call site, the optional caller message and a
// debug dump of the offending payload, then panic with the banner header:
//
//	port := parsePort(raw).Unwrapf("bad listen address %q", raw)
//
// Result also carries UnwrapErr/UnwrapErrf for the mirrored extraction: the
// failure payload comes back, and an unexpected success crashes.
//
// Custom value shapes join the contract by implementing Unwrappable or
// ErrUnwrappable; Here captures caller metadata for such wrappers.
package unwrap
