package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPending(t *testing.T) {
	assert.True(t, (&RouteSubmission{Status: SubmissionStatusSubmitted}).IsPending())
	assert.False(t, (&RouteSubmission{Status: SubmissionStatusApproved}).IsPending())
	assert.False(t, (&RouteSubmission{Status: SubmissionStatusRejected}).IsPending())
}

func TestAppendAdminNotes(t *testing.T) {
	sub := &RouteSubmission{}

	sub.AppendAdminNotes("not enough detail")
	assert.Equal(t, "not enough detail", sub.AdminNotes)

	sub.AppendAdminNotes("resubmit with landmarks")
	assert.Equal(t, "not enough detail\nresubmit with landmarks", sub.AdminNotes)
}

func TestAppendAdminNotesIgnoresEmpty(t *testing.T) {
	sub := &RouteSubmission{AdminNotes: "keep me"}

	sub.AppendAdminNotes("")

	assert.Equal(t, "keep me", sub.AdminNotes)
}
