package verify

import "fmt"

// Kind classifies a verification failure. Handlers map kinds to HTTP
// statuses; the messages are the user-visible strings.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindDeadlineExceeded
	KindNoValidSubmission
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError returns err's *Error if it is one, wrapping anything else as an
// internal failure.
func AsError(err error) *Error {
	if verr, ok := err.(*Error); ok {
		return verr
	}
	return &Error{Kind: KindInternal, Message: "Internal server error"}
}
