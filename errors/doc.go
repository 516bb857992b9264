// Package errors provides the error model used by cloud-provider integrations.
//
// It defines CloudError, the single failure type that orchestration code
// recognizes as "a cloud operation failed", and Error, a kinded error that
// keeps the call stack it was raised with. Stack traces come from
// github.com/pkg/errors, so any error built with that package (or with this
// one) keeps its trace when it is re-wrapped.
//
// # Kinds
//
// Every error has a kind. Errors implementing Kind() report their own; any
// other error's kind is its dynamic Go type:
//
//	errors.KindOf(errors.New("volume", "attach failed")) // "volume"
//	errors.KindOf(&fs.PathError{})                       // "*fs.PathError"
//
// # Re-wrapping
//
// WithPrefix produces a new error of the same kind with a prefixed message
// and the original stack reattached:
//
//	err = errors.WithPrefix(err, "Failed to detach volume vol-1")
//	// "Failed to detach volume vol-1: <original message>"
package errors
