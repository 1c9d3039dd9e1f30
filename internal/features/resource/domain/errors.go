package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tags the three failure families so consumers can tell them apart
// without parsing messages.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindTransport         ErrorKind = "transport"
)

// GenericErrorMessage is shown when the backend gives no usable message.
const GenericErrorMessage = "Something went wrong, please try again"

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition matches every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport failure")
)

// ValidationError is raised before any network call when a request is missing
// required fields or carries malformed ones.
type ValidationError struct {
	// Fields lists the offending field names.
	Fields []string
	// Message optionally replaces the default text.
	Message string
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransitionReason says why a lifecycle transition was refused.
type TransitionReason string

const (
	// ReasonNotAllowed means the (from, to) pair is not in the transition table.
	ReasonNotAllowed TransitionReason = "not_allowed"
	// ReasonNotesRequired means the transition needs a non-empty note.
	ReasonNotesRequired TransitionReason = "notes_required"
	// ReasonUnknownStatus means the target is not a member of the status set.
	ReasonUnknownStatus TransitionReason = "unknown_status"
)

// InvalidTransitionError is raised before any network call when a lifecycle
// precondition fails.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason TransitionReason
}

func (e *InvalidTransitionError) Error() string {
	switch e.Reason {
	case ReasonNotesRequired:
		return fmt.Sprintf("a reason is required to move to %s", e.To)
	case ReasonUnknownStatus:
		return fmt.Sprintf("unknown status %q", e.To)
	default:
		from := e.From
		if from == "" {
			from = "its current status"
		}
		return fmt.Sprintf("cannot move from %s to %s", from, e.To)
	}
}

// Is reports whether target is ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TransportError is a network or server failure.
type TransportError struct {
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// Message is human readable: the server's message when present, otherwise
	// GenericErrorMessage.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Describe reduces an error to what an OperationStatus records. Errors outside
// the taxonomy are reported as transport failures with the generic message.
func Describe(err error) ErrorInfo {
	var (
		verr *ValidationError
		terr *InvalidTransitionError
		xerr *TransportError
	)
	switch {
	case errors.As(err, &verr):
		return ErrorInfo{Kind: KindValidation, Message: verr.Error(), Fields: append([]string(nil), verr.Fields...)}
	case errors.As(err, &terr):
		info := ErrorInfo{Kind: KindInvalidTransition, Message: terr.Error()}
		if terr.Reason == ReasonNotesRequired {
			info.Fields = []string{"notes"}
		}
		return info
	case errors.As(err, &xerr):
		msg := xerr.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		return ErrorInfo{Kind: KindTransport, Message: msg}
	default:
		return ErrorInfo{Kind: KindTransport, Message: GenericErrorMessage}
	}
}
