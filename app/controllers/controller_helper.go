package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/internal/pkg/places"
	"github.com/wakapath/wakapath/internal/pkg/review"
	"github.com/wakapath/wakapath/internal/pkg/usercontext"
)

var validate = validator.New()

// jsonDetail writes the uniform error/detail envelope used by the whole API.
func jsonDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// reviewerID returns the authenticated user's id as a nullable FK value.
func reviewerID(c *fiber.Ctx) *uint {
	if !usercontext.IsLoggedIn(c) {
		return nil
	}
	id := usercontext.GetUserID(c)
	return &id
}

// reviewErrorResponse maps review and place resolution errors onto the API's
// status codes. Unknown errors are logged and hidden behind a 500.
func reviewErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, review.ErrNotFound):
		return jsonDetail(c, fiber.StatusNotFound, "Submission not found")
	case errors.Is(err, places.ErrNotFound):
		return jsonDetail(c, fiber.StatusNotFound, "Place not found")
	case errors.Is(err, review.ErrInvalidState),
		errors.Is(err, review.ErrEmptySubmission),
		errors.Is(err, places.ErrCityMismatch),
		errors.Is(err, places.ErrEmptyName):
		return jsonDetail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return jsonDetail(c, fiber.StatusNotFound, "Not found")
	default:
		log.Printf("review operation failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
