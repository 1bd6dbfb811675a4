package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/app/repository"
	"github.com/wakapath/wakapath/internal/pkg/database"
	"github.com/wakapath/wakapath/internal/pkg/jobqueue"
	"github.com/wakapath/wakapath/internal/pkg/review"
)

// RejectRequest carries optional reviewer notes for a rejection.
type RejectRequest struct {
	AdminNotes string `json:"admin_notes" validate:"max=2000"`
}

// HandleApproveSubmission approves a pending submission and materializes its
// route. The body selects the destination: an explicit place id, a creation
// request, or empty to auto-resolve the submitted destination text.
func HandleApproveSubmission(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var choice review.DestinationChoice
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&choice); err != nil {
			return jsonDetail(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if choice.Create != nil {
		if err := validate.Struct(choice.Create); err != nil {
			return jsonDetail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	svc := review.NewServiceFromDB(database.GetDB())
	route, err := svc.Approve(c.Context(), id, reviewerID(c), choice)
	if err != nil {
		return reviewErrorResponse(c, err)
	}

	notifySubmitter(id, models.SubmissionStatusApproved)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"route_id": route.ID})
}

// HandleRejectSubmission rejects a pending submission, appending any reviewer
// notes to the submission's admin notes.
func HandleRejectSubmission(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return jsonDetail(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if err := validate.Struct(req); err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, err.Error())
	}

	svc := review.NewServiceFromDB(database.GetDB())
	if _, err := svc.Reject(c.Context(), id, reviewerID(c), req.AdminNotes); err != nil {
		return reviewErrorResponse(c, err)
	}

	notifySubmitter(id, models.SubmissionStatusRejected)

	return c.JSON(fiber.Map{"detail": "rejected"})
}

// notifySubmitter queues the review outcome email. Failures are logged only;
// the review has already committed.
func notifySubmitter(submissionID uint, status string) {
	sub, err := repository.GetGlobalRepositories().Submission.GetByID(submissionID)
	if err != nil {
		log.Printf("failed to load submission %d for notification: %v", submissionID, err)
		return
	}
	if sub.SubmittedBy == nil || sub.SubmittedBy.Email == "" {
		return
	}
	payload := jobqueue.ReviewNotificationJobPayload{
		SubmissionID: sub.ID,
		Recipient:    sub.SubmittedBy.Email,
		Destination:  sub.Destination,
		Status:       status,
		AdminNotes:   sub.AdminNotes,
	}
	if _, err := jobqueue.EnqueueReviewNotification(payload); err != nil {
		log.Printf("failed to queue review notification for submission %d: %v", submissionID, err)
	}
}
