package turbo

import (
	"errors"

	"github.com/pthm/turbo/lib/encoding"
)

// Sentinel errors for the HTTP and codec layers. Building fragments never
// fails; only sending, decoding and parsing them can.
var (
	ErrNotFound         = errors.New("turbo: resource not found")
	ErrNotAcceptable    = errors.New("turbo: client does not accept turbo streams")
	ErrUnsupportedBody  = errors.New("turbo: unsupported response body type")
	ErrMalformedStream  = errors.New("turbo: malformed turbo-stream element")
	ErrDecryptFailed    = encoding.ErrDecryptFailed
	ErrSignatureInvalid = encoding.ErrSignatureInvalid
	ErrInvalidFormat    = encoding.ErrInvalidFormat
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotAcceptable checks if err reports a client that cannot take streams.
func IsNotAcceptable(err error) bool {
	return errors.Is(err, ErrNotAcceptable)
}

// IsDecodeError checks if err is a deferred stream that failed to decode,
// decrypt or verify.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat)
}
