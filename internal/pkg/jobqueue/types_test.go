package jobqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewNotificationPayloadRoundTrip(t *testing.T) {
	payload := ReviewNotificationJobPayload{
		SubmissionID: 12,
		Recipient:    "rider@example.com",
		Destination:  "Banex Plaza",
		Status:       "approved",
		AdminNotes:   "nice route",
	}

	restored, err := ReviewNotificationJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload, *restored)
}

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{Status: JobStatusPending, MaxRetries: DefaultMaxRetries}

	job.MarkAsProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	assert.NotNil(t, job.ProcessedAt)

	job.MarkAsFailed("smtp unreachable")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "smtp unreachable", job.ErrorMsg)
	assert.Equal(t, 1, job.RetryCount)
	assert.True(t, job.IsRetryable())

	job.MarkAsCompleted()
	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.Empty(t, job.ErrorMsg)
	assert.NotNil(t, job.CompletedAt)
	assert.False(t, job.IsRetryable())
}

func TestJobIsNotRetryableAfterMaxRetries(t *testing.T) {
	job := &Job{Status: JobStatusPending, MaxRetries: 2, CreatedAt: time.Now()}

	job.MarkAsFailed("one")
	job.MarkAsFailed("two")

	assert.False(t, job.IsRetryable())
}
