package mail

import (
	"fmt"
)

// SendReviewResult notifies a submitter about the outcome of their route
// submission. Callers treat failures as best-effort: a broken mail setup
// must never abort the review itself.
func SendReviewResult(to, destination, status, notes string) error {
	subject := fmt.Sprintf("Your route submission to %s was %s", destination, status)

	body := fmt.Sprintf("<p>Your submitted route to <strong>%s</strong> has been %s.</p>", destination, status)
	if notes != "" {
		body += fmt.Sprintf("<p>Reviewer notes:</p><p>%s</p>", notes)
	}

	return SendMail(to, subject, body)
}
