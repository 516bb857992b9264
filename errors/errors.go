package errors

import (
	stderrors "errors"
	"fmt"
	"io"
)

// Kind identifies the family an error belongs to. Wrapping keeps the kind.
type Kind string

const (
	// KindCloud is the kind of every CloudError.
	KindCloud Kind = "cloud"
	// KindPanic is the kind of errors built from non-error panic values.
	KindPanic Kind = "panic"
)

// Rebuilder is implemented by errors that can reconstruct themselves with a
// new message and an explicit stack trace. The result must have the same
// concrete type as the receiver.
type Rebuilder interface {
	error
	Rebuild(message string, stack StackTrace) error
}

// Error is a kinded error carrying the stack it was raised with.
type Error struct {
	kind    Kind
	message string
	stack   StackTrace
	cause   error
}

var _ Rebuilder = (*Error)(nil)

// New creates an Error of the given kind, capturing the caller's stack.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message, stack: callers(1)}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), stack: callers(1)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Kind, Message, StackTrace and Unwrap return zero values on a nil *Error,
// so a typed nil returned as an error can still be inspected.

func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) StackTrace() StackTrace {
	if e == nil {
		return nil
	}
	return e.stack
}

// Unwrap returns the foreign error this one stands in for, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Rebuild returns a copy with a new message and stack. The cause is kept.
func (e *Error) Rebuild(message string, stack StackTrace) error {
	if e == nil {
		return &Error{message: message, stack: stack}
	}
	return &Error{kind: e.kind, message: message, stack: stack, cause: e.cause}
}

// Format supports %+v to print the message followed by the stack.
func (e *Error) Format(s fmt.State, verb rune) {
	format(s, verb, e.Error(), e.StackTrace())
}

// CloudError is the uniform failure reported for a cloud-provider operation.
// Its message is exactly what was passed at construction.
type CloudError struct {
	id      string
	message string
	stack   StackTrace
	causes  []error
}

var _ Rebuilder = (*CloudError)(nil)

// CloudOption configures a CloudError at construction.
type CloudOption func(*CloudError)

// WithID sets the incident id used to correlate the error with log entries.
func WithID(id string) CloudOption { return func(e *CloudError) { e.id = id } }

// WithCauses records the errors the CloudError was built from. Nil entries are skipped.
func WithCauses(causes ...error) CloudOption {
	return func(e *CloudError) {
		for _, c := range causes {
			if c != nil {
				e.causes = append(e.causes, c)
			}
		}
	}
}

// NewCloudError creates a CloudError, capturing the caller's stack.
func NewCloudError(message string, opts ...CloudOption) *CloudError {
	e := &CloudError{message: message, stack: callers(1)}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *CloudError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

func (e *CloudError) Kind() Kind { return KindCloud }

func (e *CloudError) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

func (e *CloudError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *CloudError) StackTrace() StackTrace {
	if e == nil {
		return nil
	}
	return e.stack
}

// Causes returns a copy of the errors the CloudError was built from.
func (e *CloudError) Causes() []error {
	if e == nil || len(e.causes) == 0 {
		return nil
	}
	out := make([]error, len(e.causes))
	copy(out, e.causes)
	return out
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *CloudError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.causes
}

// Rebuild returns a CloudError with a new message and stack, keeping id and causes.
func (e *CloudError) Rebuild(message string, stack StackTrace) error {
	if e == nil {
		return &CloudError{message: message, stack: stack}
	}
	return &CloudError{id: e.id, message: message, stack: stack, causes: e.causes}
}

// Format supports %+v to print the message followed by the stack.
func (e *CloudError) Format(s fmt.State, verb rune) {
	format(s, verb, e.Error(), e.StackTrace())
}

// IsCloudError checks if an error is, or wraps, a CloudError.
func IsCloudError(err error) bool {
	var ce *CloudError
	return stderrors.As(err, &ce)
}

// AsCloudError returns the first CloudError in err's chain.
func AsCloudError(err error) (*CloudError, bool) {
	var ce *CloudError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// KindOf returns the kind of err: its own Kind() if it has one, otherwise its
// dynamic Go type. A nil error has an empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if k, ok := err.(interface{ Kind() Kind }); ok {
		return k.Kind()
	}
	return Kind(fmt.Sprintf("%T", err))
}

// MessageOf returns the human-readable message of err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}

func format(s fmt.State, verb rune, message string, stack StackTrace) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, message)
			stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", message)
	}
}
