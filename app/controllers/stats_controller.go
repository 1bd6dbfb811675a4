package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wakapath/wakapath/internal/pkg/statistics"
)

// HandleStats returns the cached catalog counters.
func HandleStats(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatistics())
}
