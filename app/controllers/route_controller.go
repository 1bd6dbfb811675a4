package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/app/repository"
	"github.com/wakapath/wakapath/internal/pkg/fares"
	"github.com/wakapath/wakapath/internal/pkg/metrics/counter"
	"github.com/wakapath/wakapath/internal/pkg/viewmodel"
)

// HandleGetRoute returns a route with its steps and freshly computed fare
// estimates. Each read also counts as a view.
func HandleGetRoute(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid route id")
	}

	repos := repository.GetGlobalRepositories()
	route, err := repos.Route.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonDetail(c, fiber.StatusNotFound, "Route not found")
		}
		log.Printf("failed to load route %d: %v", id, err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := counter.AddRouteView(route.ID); err != nil {
		log.Printf("failed to count view for route %d: %v", route.ID, err)
	}

	return c.JSON(viewmodel.NewRoute(route, stepEstimates(repos.Route, route.Steps)))
}

// HandleRouteLookup finds routes from a starting place to a destination. Both
// parameters are required; a partial query yields an empty result list rather
// than an error.
func HandleRouteLookup(c *fiber.Ctx) error {
	destinationID := c.QueryInt("destination", 0)
	startID := c.QueryInt("start", 0)
	if destinationID <= 0 || startID <= 0 {
		return c.JSON([]viewmodel.Route{})
	}

	repos := repository.GetGlobalRepositories()
	routes, err := repos.Route.Lookup(uint(destinationID), uint(startID))
	if err != nil {
		log.Printf("route lookup failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	views := make([]viewmodel.Route, len(routes))
	for i := range routes {
		views[i] = viewmodel.NewRoute(&routes[i], stepEstimates(repos.Route, routes[i].Steps))
	}
	return c.JSON(views)
}

// stepEstimates computes the fare band for each step from its recent
// observations. Steps that fail to load samples simply report no estimate.
func stepEstimates(repo repository.RouteRepository, steps []models.RouteStep) map[uint]*fares.Estimate {
	estimates := make(map[uint]*fares.Estimate, len(steps))
	for _, step := range steps {
		samples, err := repo.RecentFares(step.ID, fares.MaxSamples)
		if err != nil {
			log.Printf("failed to load fares for step %d: %v", step.ID, err)
			continue
		}
		if est := fares.FromSamples(samples); est != nil {
			estimates[step.ID] = est
		}
	}
	return estimates
}
