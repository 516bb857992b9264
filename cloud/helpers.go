package cloud

import (
	"github.com/google/uuid"

	"github.com/kbukum/cpikit/config"
	"github.com/kbukum/cpikit/logger"
	"github.com/kbukum/cpikit/observability"
)

// ErrorLogger is the sink Helpers reports to. *logger.Logger satisfies it.
type ErrorLogger interface {
	Error(msg string, fields ...map[string]interface{})
}

// Helpers implements the error reporting operations shared by provider code.
// The zero value neither logs nor counts and draws incident ids from
// google/uuid; New configures the rest. A Helpers is safe for concurrent use
// when its logger is.
type Helpers struct {
	log     ErrorLogger
	metrics *observability.Metrics
	newID   func() string
}

// Option configures Helpers.
type Option func(*Helpers)

// WithLogger sets the sink for error reports. A nil logger disables logging.
func WithLogger(l ErrorLogger) Option {
	return func(h *Helpers) { h.log = l }
}

// WithIncidentIDs sets the generator for incident ids. Each CloudError and
// FailOnError call draws one id, shared by its log entries and the returned
// error.
func WithIncidentIDs(gen func() string) Option {
	return func(h *Helpers) {
		if gen != nil {
			h.newID = gen
		}
	}
}

// WithMetrics counts reported and captured errors on m. A nil m disables
// counting.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Helpers) { h.metrics = m }
}

// New creates Helpers. Without options it does not log.
func New(opts ...Option) *Helpers {
	h := &Helpers{newID: uuid.NewString}
	for _, o := range opts {
		o(h)
	}
	return h
}

// NewFromConfig creates Helpers logging through a zerolog logger built from
// cfg.Logging and tagged with the "cloud" component.
func NewFromConfig(cfg *config.ServiceConfig, opts ...Option) *Helpers {
	log := logger.New(&cfg.Logging, cfg.Name).WithComponent("cloud")
	return New(append([]Option{WithLogger(log)}, opts...)...)
}

func (h *Helpers) incidentID() string {
	if h.newID == nil {
		return uuid.NewString()
	}
	return h.newID()
}

// logError writes one error-level entry. Logging is best effort; an absent
// logger makes it a no-op.
func (h *Helpers) logError(msg string, fields map[string]interface{}) {
	if h.log == nil {
		return
	}
	h.log.Error(msg, fields)
}
