package jobqueue

import (
	"fmt"

	"github.com/wakapath/wakapath/internal/pkg/mail"
)

// processReviewNotificationJob emails a submitter about their review outcome.
// The payload is self-contained, so a retried job never observes a submission
// that changed after the review committed.
func (q *Queue) processReviewNotificationJob(job *Job) error {
	payload, err := ReviewNotificationJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid review notification payload: %w", err)
	}
	if payload.Recipient == "" {
		// Anonymous submission, nothing to notify.
		return nil
	}

	return mail.SendReviewResult(payload.Recipient, payload.Destination, payload.Status, payload.AdminNotes)
}

// EnqueueReviewNotification queues a review outcome email.
func EnqueueReviewNotification(payload ReviewNotificationJobPayload) (*Job, error) {
	return GetManager().GetQueue().EnqueueJob(JobTypeReviewNotification, payload.ToMap())
}
