package domain

import "errors"

// Domain errors.
var (
	// ErrNoURL is returned when a request omits the required URL.
	ErrNoURL = errors.New("no URL provided")

	// ErrRelayOriginFailed is returned when the origin connection or read
	// fails mid-stream. It is logged server-side and never surfaced to
	// the client at the protocol level.
	ErrRelayOriginFailed = errors.New("origin read failed")

	// ErrClientGone is returned when the client disconnects before the
	// relayed body completes.
	ErrClientGone = errors.New("client disconnected")
)

// ExtractionError reports that the extraction engine could not resolve a
// URL. Message carries the engine's output verbatim.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// NewExtractionError creates an ExtractionError with the engine's message.
func NewExtractionError(message string) *ExtractionError {
	return &ExtractionError{Message: message}
}
