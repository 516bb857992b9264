package cloud

import (
	"context"
	"sync/atomic"
)

var defaultHelpers atomic.Pointer[Helpers]

func init() {
	defaultHelpers.Store(New())
}

// Default returns the Helpers used by the package-level functions. It does
// not log unless replaced with SetDefault.
func Default() *Helpers { return defaultHelpers.Load() }

// SetDefault replaces the Helpers used by the package-level functions.
// A nil h restores a non-logging default.
func SetDefault(h *Helpers) {
	if h == nil {
		h = New()
	}
	defaultHelpers.Store(h)
}

// CloudError calls Default().CloudError.
func CloudError(message string, cause error) error {
	return Default().CloudError(message, cause)
}

// FailOnError calls Default().FailOnError.
func FailOnError(errs ...error) error {
	return Default().FailOnError(errs...)
}

// CatchError calls Default().CatchError.
func CatchError(prefix string, work func() error) error {
	return Default().CatchError(prefix, work)
}

// CatchErrorContext calls Default().CatchErrorContext.
func CatchErrorContext(ctx context.Context, prefix string, work func(context.Context) error) error {
	return Default().CatchErrorContext(ctx, prefix, work)
}
