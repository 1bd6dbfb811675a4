package review

import "errors"

var (
	// ErrInvalidState is returned when a review is attempted on a submission
	// that is no longer in the submitted state.
	ErrInvalidState = errors.New("submission is not in submitted state")
	// ErrEmptySubmission is returned when approval is attempted on a
	// submission without steps.
	ErrEmptySubmission = errors.New("cannot approve a submission without steps")
	// ErrNotFound is returned when the referenced submission does not exist.
	ErrNotFound = errors.New("submission not found")
)
