package unwrap

import "github.com/canndrew/unwrap/pkg/unwrap/banner"

// Classification labels for the built-in shapes. Custom implementations
// supply their own; the banner grows to fit labels of any length.
const (
	labelResultErr  = "Result::Err"
	labelResultOk   = "Result::Ok"
	labelOptionNone = "Option::None"
)

// Unwrappable is implemented by value shapes whose success payload can be
// extracted, with a fatal banner when there is none to extract.
type Unwrappable[T any] interface {
	// VerboseUnwrap returns the payload, or renders a banner for site and
	// terminates the process. message, when present, is pre-formatted
	// opaque text printed under the call-site line.
	VerboseUnwrap(message Option[string], site banner.Site) T
}

// ErrUnwrappable is implemented by value shapes whose failure payload can be
// extracted, with a fatal banner when the value is actually a success.
type ErrUnwrappable[E any] interface {
	// VerboseUnwrapErr returns the failure payload, or renders a banner for
	// site and terminates the process.
	VerboseUnwrapErr(message Option[string], site banner.Site) E
}

var (
	_ Unwrappable[int]      = Result[int, error]{}
	_ ErrUnwrappable[error] = Result[int, error]{}
	_ Unwrappable[int]      = Option[int]{}
)
