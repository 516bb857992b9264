package errors

import (
	"fmt"
)

// WithPrefix returns a new error of the same kind as err whose message is
// "prefix: <message of err>" and whose stack trace is err's trace.
//
// Errors implementing Rebuilder rebuild themselves. Any other error is
// represented by an *Error that unwraps to it, so errors.Is and errors.As
// still match the original.
//
// Returns nil if err is nil. An empty prefix returns err unchanged.
func WithPrefix(err error, prefix string) error {
	if err == nil {
		return nil
	}
	if prefix == "" {
		return err
	}

	message := fmt.Sprintf("%s: %s", prefix, MessageOf(err))
	stack := StackOf(err)

	if r, ok := err.(Rebuilder); ok {
		return r.Rebuild(message, stack)
	}
	return &Error{
		kind:    KindOf(err),
		message: message,
		stack:   stack,
		cause:   err,
	}
}

// FromPanic converts a recovered panic value into an error. It is meant to
// be called from the deferred function that recovered, so the captured stack
// still contains the panicking frames.
//
//   - nil => nil
//   - an error with a stack trace => returned as-is
//   - an error without one => same kind and message, recovery-site stack, unwraps to the original
//   - anything else => a KindPanic error
func FromPanic(v any) error {
	if v == nil {
		return nil
	}

	err, ok := v.(error)
	if !ok {
		return &Error{kind: KindPanic, message: fmt.Sprint(v), stack: callers(1)}
	}
	if StackOf(err) != nil {
		return err
	}
	return &Error{
		kind:    KindOf(err),
		message: MessageOf(err),
		stack:   callers(1),
		cause:   err,
	}
}
