package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/app/repository"
	"github.com/wakapath/wakapath/internal/pkg/database"
	"github.com/wakapath/wakapath/internal/pkg/places"
	"github.com/wakapath/wakapath/internal/pkg/viewmodel"
)

// SubmitStepRequest is one travel step of a submitted route.
type SubmitStepRequest struct {
	Order       uint   `json:"order" validate:"required"`
	Mode        string `json:"mode" validate:"required,oneof=walk cab bus"`
	Instruction string `json:"instruction" validate:"required"`
	DropName    string `json:"drop_name" validate:"max=200"`
	Landmark    string `json:"landmark" validate:"max=200"`
}

// SubmitRouteRequest is the payload for submitting a new commute route.
type SubmitRouteRequest struct {
	Destination       string              `json:"destination" validate:"required,min=1,max=200"`
	City              uint                `json:"city" validate:"required"`
	StartingPoint     *uint               `json:"starting_point"`
	StartingPointText string              `json:"starting_point_text" validate:"max=200"`
	Steps             []SubmitStepRequest `json:"steps" validate:"dive"`
}

// HandleSubmitRoute accepts a new route submission. The destination stays free
// text until review; the starting point is resolved against the place registry
// when it arrives as free text, and created on the fly when unknown.
func HandleSubmitRoute(c *fiber.Ctx) error {
	var req SubmitRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, err.Error())
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.City.GetByID(req.City); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonDetail(c, fiber.StatusBadRequest, "Unknown city")
		}
		log.Printf("city lookup failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	sub := &models.RouteSubmission{
		Destination:       strings.TrimSpace(req.Destination),
		CityID:            req.City,
		StartingPointText: strings.TrimSpace(req.StartingPointText),
		Status:            models.SubmissionStatusSubmitted,
		SubmittedByID:     reviewerID(c),
	}

	if req.StartingPoint != nil {
		place, err := repos.Place.GetByID(*req.StartingPoint)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonDetail(c, fiber.StatusBadRequest, "Unknown starting point")
			}
			log.Printf("starting point lookup failed: %v", err)
			return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
		}
		sub.StartingPointID = &place.ID
	} else if sub.StartingPointText != "" {
		resolver := places.NewResolverFromDB(database.GetDB())
		place, err := resolver.ResolveOrCreate(req.City, places.Selection{Name: sub.StartingPointText})
		if err != nil {
			log.Printf("starting point resolution failed: %v", err)
			return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
		}
		sub.StartingPointID = &place.ID
	}

	for _, st := range req.Steps {
		sub.Steps = append(sub.Steps, models.RouteStepSubmission{
			Order:       st.Order,
			Mode:        st.Mode,
			Instruction: strings.TrimSpace(st.Instruction),
			DropName:    strings.TrimSpace(st.DropName),
			Landmark:    strings.TrimSpace(st.Landmark),
		})
	}

	if err := repos.Submission.Create(sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonDetail(c, fiber.StatusBadRequest, "Duplicate step order")
		}
		log.Printf("failed to create submission: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	created, err := repos.Submission.GetByID(sub.ID)
	if err != nil {
		log.Printf("failed to reload submission %d: %v", sub.ID, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(viewmodel.NewSubmission(created))
}

// HandleListSubmissions returns submissions newest first.
func HandleListSubmissions(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	subs, err := repository.GetGlobalRepositories().Submission.List(offset, limit)
	if err != nil {
		log.Printf("failed to list submissions: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(viewmodel.NewSubmissions(subs))
}

// HandleGetSubmission returns a single submission with its steps.
func HandleGetSubmission(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	sub, err := repository.GetGlobalRepositories().Submission.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonDetail(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("failed to load submission %d: %v", id, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(viewmodel.NewSubmission(sub))
}
