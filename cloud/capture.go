package cloud

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	cerrors "github.com/kbukum/cpikit/errors"
	"github.com/kbukum/cpikit/observability"
)

// CatchError runs work and returns what it failed with instead of
// propagating it. A returned error and a panic both count as failures; a
// panic is recovered and converted with errors.FromPanic.
//
// With an empty prefix the failure is returned unchanged. Otherwise it is
// re-wrapped once with errors.WithPrefix: same kind, message
// "prefix: <message>", original stack trace. A nil work or a successful run
// returns nil. CatchError never logs; deciding what to do with the failure
// is left to the caller.
func (h *Helpers) CatchError(prefix string, work func() error) error {
	if work == nil {
		return nil
	}
	err := cerrors.WithPrefix(run(work), prefix)
	if err != nil {
		h.metrics.RecordCaptured(context.Background(), string(cerrors.KindOf(err)))
	}
	return err
}

// CatchErrorContext is CatchError for context-aware work. The captured error
// is also recorded on the span active in ctx.
func (h *Helpers) CatchErrorContext(ctx context.Context, prefix string, work func(context.Context) error) error {
	if work == nil {
		return nil
	}
	err := cerrors.WithPrefix(run(func() error { return work(ctx) }), prefix)
	if err != nil {
		kind := string(cerrors.KindOf(err))
		attrs := []attribute.KeyValue{
			attribute.String(observability.AttrErrorKind, kind),
			attribute.String(observability.AttrErrorMessage, cerrors.MessageOf(err)),
		}
		if prefix != "" {
			attrs = append(attrs, attribute.String(observability.AttrErrorPrefix, prefix))
		}
		observability.SetSpanError(ctx, err, attrs...)
		h.metrics.RecordCaptured(ctx, kind)
	}
	return err
}

func run(work func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = cerrors.FromPanic(r)
		}
	}()
	return work()
}
