package cloud

import (
	"sync"
)

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

// recordingLogger captures error-level entries in order.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) Error(msg string, fields ...map[string]interface{}) {
	merged := map[string]interface{}{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{msg: msg, fields: merged})
}

func (r *recordingLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.msg)
	}
	return out
}

func (r *recordingLogger) all() []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]logEntry(nil), r.entries...)
}

func fixedID(id string) Option {
	return WithIncidentIDs(func() string { return id })
}
