package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/app/repository"
	"github.com/wakapath/wakapath/internal/pkg/fares"
)

// ReportFareRequest is a single fare observation for a route step.
type ReportFareRequest struct {
	Amount uint `json:"amount" validate:"required,gt=0"`
}

// HandleListStepFares returns the recent fare observations and the resulting
// estimate band for a route step.
func HandleListStepFares(c *fiber.Ctx) error {
	stepID, err := parseIDParam(c, "step_id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid step id")
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Route.GetStep(stepID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonDetail(c, fiber.StatusNotFound, "Route step not found")
		}
		log.Printf("failed to load step %d: %v", stepID, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	samples, err := repos.Route.RecentFares(stepID, fares.MaxSamples)
	if err != nil {
		log.Printf("failed to load fares for step %d: %v", stepID, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"fares":    samples,
		"estimate": fares.FromSamples(samples),
	})
}

// HandleReportStepFare appends a fare observation for a route step. Existing
// observations are never modified; the estimate shifts as new reports arrive.
func HandleReportStepFare(c *fiber.Ctx) error {
	stepID, err := parseIDParam(c, "step_id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid step id")
	}

	var req ReportFareRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Route.GetStep(stepID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonDetail(c, fiber.StatusNotFound, "Route step not found")
		}
		log.Printf("failed to load step %d: %v", stepID, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	fare := &models.StepFare{RouteStepID: stepID, Amount: req.Amount}
	if err := repos.Route.CreateFare(fare); err != nil {
		log.Printf("failed to record fare for step %d: %v", stepID, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fare)
}
