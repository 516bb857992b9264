package cloud

import (
	"context"

	cerrors "github.com/kbukum/cpikit/errors"
	"github.com/kbukum/cpikit/logger"
)

// CloudError logs message, then cause's string form when cause is not nil,
// and returns a *errors.CloudError whose message is exactly message. The
// result is never nil.
//
// The cause is not folded into the message; it is reachable through
// errors.Is and errors.As.
func (h *Helpers) CloudError(message string, cause error) error {
	id := h.incidentID()

	h.logError(message, logger.Fields(logger.FieldIncidentID, id))
	if cause != nil {
		h.logError(cause.Error(), logger.Fields(
			logger.FieldIncidentID, id,
			logger.FieldErrorKind, string(cerrors.KindOf(cause)),
		))
	}

	h.metrics.RecordReported(context.Background(), string(cerrors.KindCloud), opCloudError)

	return cerrors.NewCloudError(message, cerrors.WithID(id), cerrors.WithCauses(cause))
}
