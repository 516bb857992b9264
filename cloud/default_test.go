package cloud

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/cpikit/config"
	cerrors "github.com/kbukum/cpikit/errors"
)

func TestDefault_PackageLevelFunctions(t *testing.T) {
	if err := CloudError("boom", nil); err == nil || err.Error() != "boom" {
		t.Errorf("unexpected CloudError result %v", err)
	}
	if err := FailOnError(nil, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := FailOnError(stderrors.New("a")); err == nil || err.Error() != "a" {
		t.Errorf("unexpected FailOnError result %v", err)
	}
	if err := CatchError("p", func() error { return stderrors.New("x") }); err == nil || err.Error() != "p: x" {
		t.Errorf("unexpected CatchError result %v", err)
	}
	err := CatchErrorContext(context.Background(), "p", func(context.Context) error { return stderrors.New("y") })
	if err == nil || err.Error() != "p: y" {
		t.Errorf("unexpected CatchErrorContext result %v", err)
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	rec := &recordingLogger{}
	custom := New(WithLogger(rec))
	SetDefault(custom)
	if Default() != custom {
		t.Fatal("expected the custom default")
	}

	_ = CloudError("logged through the default", nil)
	if got := rec.messages(); len(got) != 1 || got[0] != "logged through the default" {
		t.Errorf("unexpected log entries %v", got)
	}

	SetDefault(nil)
	if Default() == nil || Default() == custom {
		t.Error("expected a fresh non-logging default")
	}
}

type volumeManager struct {
	*Helpers
	detach func(id string) error
}

func (m *volumeManager) detachAll(ids ...string) error {
	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		id := id
		errs = append(errs, m.CatchError("Failed to detach "+id, func() error { return m.detach(id) }))
	}
	return m.FailOnError(errs...)
}

func TestHelpers_Embedded(t *testing.T) {
	m := &volumeManager{
		Helpers: New(),
		detach: func(id string) error {
			if id == "vol-2" {
				return cerrors.New("volume", "volume is busy")
			}
			return nil
		},
	}

	if err := m.detachAll("vol-1"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	err := m.detachAll("vol-1", "vol-2")
	if err == nil || err.Error() != "Failed to detach vol-2: volume is busy" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.ServiceConfig{Name: "openstack-cpi", Environment: "production"}
	cfg.ApplyDefaults()
	cfg.Logging.Level = "disabled"

	h := NewFromConfig(cfg, fixedID("incident-5"))
	if h.log == nil {
		t.Fatal("expected a logger")
	}
	ce, ok := cerrors.AsCloudError(h.CloudError("boom", nil))
	if !ok || ce.ID() != "incident-5" {
		t.Errorf("expected options to apply, got %v", ce)
	}
}

func TestWithIncidentIDs_NilKeepsDefault(t *testing.T) {
	h := New(WithIncidentIDs(nil))
	if h.newID == nil || h.newID() == "" {
		t.Error("expected the default id generator")
	}
}

type snapshotManager struct {
	Helpers
}

func TestHelpers_EmbeddedByValue(t *testing.T) {
	var m snapshotManager

	err := m.CloudError("snapshot failed", nil)
	ce, ok := cerrors.AsCloudError(err)
	if !ok {
		t.Fatalf("expected a cloud error, got %v", err)
	}
	if ce.ID() == "" {
		t.Error("expected an incident id from the zero value")
	}
	if got := m.CatchError("p", func() error { return nil }); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
