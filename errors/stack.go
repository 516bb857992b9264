package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// StackTrace is the call stack attached to an error.
type StackTrace = pkgerrors.StackTrace

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the first stack trace found in err's chain, or nil.
func StackOf(err error) StackTrace {
	if err == nil {
		return nil
	}
	var st stackTracer
	if stderrors.As(err, &st) {
		return st.StackTrace()
	}
	return nil
}

// FormatStack renders a stack trace one frame per line.
func FormatStack(st StackTrace) string {
	if len(st) == 0 {
		return "(no stack trace)"
	}
	return fmt.Sprintf("%+v", st)
}

// callers captures the current stack without its own frame and the skip
// frames above it.
func callers(skip int) StackTrace {
	st := pkgerrors.New("").(stackTracer).StackTrace()
	if skip+1 >= len(st) {
		return nil
	}
	return st[skip+1:]
}
