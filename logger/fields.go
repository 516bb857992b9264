package logger

// Standard field key constants for structured logging.
const (
	FieldService       = "service"
	FieldComponent     = "component"
	FieldTraceID       = "trace_id"
	FieldSpanID        = "span_id"
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
	FieldErrorKind     = "error_kind"
	FieldIncidentID    = "incident_id"
	FieldPosition      = "position"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Error("attach failed", logger.Fields("volume", id, "server", serverID))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
