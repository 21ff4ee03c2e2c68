package fiasco

// Error represents a WFA coefficient coding error code.
// Ported from: ~/dev/fiasco/lib/error.c (fatal error() calls become
// returned error codes).
type Error int

// Error codes.
const (
	ErrNone Error = 0

	// ErrTooManyWeights: the automaton carries more weighted transitions
	// than the bitstream header declared. The arithmetic context stream is
	// already inconsistent at this point, so the decode must abort.
	ErrTooManyWeights Error = 1

	// ErrStreamOverrun: the bit stream ran out before the arithmetic
	// decoder consumed its full payload.
	ErrStreamOverrun Error = 2

	// ErrInvalidBinary: a symbol outside the reduced-precision format's
	// alphabet was given for conversion.
	ErrInvalidBinary Error = 3

	// ErrInvalidMantissa: mantissa bit count outside the supported range.
	ErrInvalidMantissa Error = 4

	// ErrInvalidRange: unknown reduced-precision range value.
	ErrInvalidRange Error = 5

	// ErrMissingModel: the automaton lacks a quantization model required
	// by one of its transitions.
	ErrMissingModel Error = 6
)

// errMessages contains the error message per code.
var errMessages = [7]string{
	"No error",
	"Can't read more weights than declared",
	"Unexpected end of bitstream",
	"Invalid binary value given for conversion",
	"Invalid number of mantissa bits",
	"Invalid reduced precision range",
	"Missing reduced precision format model",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
