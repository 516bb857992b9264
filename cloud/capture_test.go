package cloud

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	cerrors "github.com/kbukum/cpikit/errors"
	"github.com/kbukum/cpikit/observability"
)

func TestCatchError_NilWork(t *testing.T) {
	if err := New().CatchError("prefix", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestCatchError_Success(t *testing.T) {
	ran := false
	err := New().CatchError("prefix", func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if !ran {
		t.Error("expected work to run")
	}
}

func TestCatchError_NoPrefixReturnsOriginal(t *testing.T) {
	orig := cerrors.New("volume", "detach failed")
	err := New().CatchError("", func() error { return orig })
	if err != orig {
		t.Errorf("expected the original error value, got %v", err)
	}
}

func TestCatchError_PrefixWrapsOnce(t *testing.T) {
	orig := cerrors.New("volume", "detach failed")
	err := New().CatchError("Failed to detach vol-1", func() error { return orig })

	if err.Error() != "Failed to detach vol-1: detach failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if cerrors.KindOf(err) != "volume" {
		t.Errorf("expected kind 'volume', got %q", cerrors.KindOf(err))
	}
	if !reflect.DeepEqual(cerrors.StackOf(err), orig.StackTrace()) {
		t.Error("expected the original stack trace")
	}
	if strings.Count(err.Error(), "Failed to detach vol-1") != 1 {
		t.Errorf("expected a single prefix, got %q", err.Error())
	}
	if orig.Error() != "detach failed" {
		t.Error("the original must not be mutated")
	}
}

func TestCatchError_ForeignErrorKeepsType(t *testing.T) {
	orig := &fs.PathError{Op: "stat", Path: "/dev/vdb", Err: fs.ErrNotExist}
	err := New().CatchError("Failed to find device", func() error { return orig })

	if err.Error() != "Failed to find device: stat /dev/vdb: file does not exist" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if cerrors.KindOf(err) != cerrors.KindOf(orig) {
		t.Errorf("expected kind %q, got %q", cerrors.KindOf(orig), cerrors.KindOf(err))
	}
	var pathErr *fs.PathError
	if !stderrors.As(err, &pathErr) {
		t.Error("expected errors.As to find *fs.PathError")
	}
}

func TestCatchError_CloudErrorStaysCloudError(t *testing.T) {
	h := New()
	err := h.CatchError("server", func() error { return h.CloudError("create failed", nil) })
	if !cerrors.IsCloudError(err) {
		t.Errorf("expected a CloudError, got %T", err)
	}
	if err.Error() != "server: create failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCatchError_Panic(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		err := New().CatchError("", func() error {
			panic("unexpected nil server")
		})
		if err == nil {
			t.Fatal("expected the panic to be captured")
		}
		if cerrors.KindOf(err) != cerrors.KindPanic {
			t.Errorf("expected kind %q, got %q", cerrors.KindPanic, cerrors.KindOf(err))
		}
		if err.Error() != "unexpected nil server" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !strings.Contains(fmt.Sprintf("%+v", err), "TestCatchError_Panic") {
			t.Error("expected the panicking frames in the stack")
		}
	})

	t.Run("error with prefix", func(t *testing.T) {
		orig := cerrors.New("network", "port busy")
		err := New().CatchError("Failed to create port", func() error {
			panic(orig)
		})
		if err.Error() != "Failed to create port: port busy" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !reflect.DeepEqual(cerrors.StackOf(err), orig.StackTrace()) {
			t.Error("expected the original stack trace")
		}
	})
}

func TestCatchError_ResultsFeedFailOnError(t *testing.T) {
	rec := &recordingLogger{}
	h := New(WithLogger(rec))

	err := h.FailOnError(
		h.CatchError("detach vol-1", func() error { return stderrors.New("in use") }),
		h.CatchError("detach vol-2", func() error { return nil }),
		h.CatchError("", func() error { return stderrors.New("timeout") }),
	)
	want := MultipleErrorsBanner + "detach vol-1: in use\ntimeout"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
}

func TestCatchError_NeverLogs(t *testing.T) {
	rec := &recordingLogger{}
	_ = New(WithLogger(rec)).CatchError("p", func() error { return stderrors.New("x") })
	if len(rec.all()) != 0 {
		t.Errorf("expected nothing logged, got %v", rec.messages())
	}
}

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func TestCatchErrorContext_RecordsOnSpan(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := observability.StartSpan(context.Background(), "cpi.detach_disk")
	err := New().CatchErrorContext(ctx, "Failed to detach vol-1", func(ctx context.Context) error {
		return cerrors.New("volume", "in use")
	})
	span.End()

	if err == nil || err.Error() != "Failed to detach vol-1: in use" {
		t.Fatalf("unexpected error %v", err)
	}
	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", s.Status.Code)
	}
	if len(s.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(s.Events))
	}
	attrs := map[string]string{}
	for _, kv := range s.Events[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs[observability.AttrErrorKind] != "volume" {
		t.Errorf("expected kind attribute, got %v", attrs)
	}
	if attrs[observability.AttrErrorPrefix] != "Failed to detach vol-1" {
		t.Errorf("expected prefix attribute, got %v", attrs)
	}
	if attrs[observability.AttrErrorMessage] != "Failed to detach vol-1: in use" {
		t.Errorf("expected message attribute, got %v", attrs)
	}
}

func TestCatchError_TypedNilError(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"no prefix", "", "<nil>"},
		{"prefix", "Failed to detach vol-1", "Failed to detach vol-1: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().CatchError(tt.prefix, func() error {
				var e *cerrors.Error
				return e
			})
			if err == nil {
				t.Fatal("expected the typed nil to count as a failure")
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestCatchErrorContext_SuccessAndNil(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := observability.StartSpan(context.Background(), "cpi.noop")
	h := New()
	if err := h.CatchErrorContext(ctx, "p", nil); err != nil {
		t.Errorf("expected nil for nil work, got %v", err)
	}
	var seen context.Context
	if err := h.CatchErrorContext(ctx, "p", func(c context.Context) error {
		seen = c
		return nil
	}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	span.End()

	if seen != ctx {
		t.Error("expected work to receive the caller's context")
	}
	if got := exporter.GetSpans()[0].Status.Code; got != codes.Unset {
		t.Errorf("expected unset status, got %v", got)
	}
}

func TestCatchErrorContext_NoSpan(t *testing.T) {
	err := New().CatchErrorContext(context.Background(), "", func(context.Context) error {
		panic("boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected captured panic, got %v", err)
	}
}
