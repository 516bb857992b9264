package cloud

import (
	"context"
	"strings"

	cerrors "github.com/kbukum/cpikit/errors"
	"github.com/kbukum/cpikit/logger"
)

// MultipleErrorsBanner heads the message of a CloudError built from more than
// one error.
const MultipleErrorsBanner = "Multiple cloud errors occurred:\n"

// Operation names attached to the reported-errors counter.
const (
	opCloudError  = "cloud_error"
	opFailOnError = "fail_on_error"
)

// FailOnError returns nil when every err is nil. Otherwise it logs each
// non-nil error in order (its message, then its stack trace) and returns a
// *errors.CloudError whose message joins the messages with newlines, headed
// by MultipleErrorsBanner when there is more than one.
//
// Each argument counts as one error: a *errors.CloudError or an errors.Join
// result is reported as a single entry, never split into its causes.
func (h *Helpers) FailOnError(errs ...error) error {
	remaining := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			remaining = append(remaining, err)
		}
	}
	if len(remaining) == 0 {
		return nil
	}

	id := h.incidentID()
	messages := make([]string, 0, len(remaining))
	for i, err := range remaining {
		msg := cerrors.MessageOf(err)
		messages = append(messages, msg)
		kind := string(cerrors.KindOf(err))

		h.logError(msg, logger.Fields(
			logger.FieldIncidentID, id,
			logger.FieldErrorKind, kind,
			logger.FieldPosition, i,
		))
		h.logError(cerrors.FormatStack(cerrors.StackOf(err)), logger.Fields(
			logger.FieldIncidentID, id,
			logger.FieldPosition, i,
		))
		h.metrics.RecordReported(context.Background(), kind, opFailOnError)
	}

	message := strings.Join(messages, "\n")
	if len(remaining) > 1 {
		message = MultipleErrorsBanner + message
	}

	return cerrors.NewCloudError(message, cerrors.WithID(id), cerrors.WithCauses(remaining...))
}
