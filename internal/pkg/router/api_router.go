package router

import (
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/wakapath/wakapath/app/controllers"
	"github.com/wakapath/wakapath/internal/pkg/cache"
	"github.com/wakapath/wakapath/internal/pkg/env"
	"github.com/wakapath/wakapath/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Storage: newLimiterStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "wakapath api",
		})
	})

	v1 := api.Group("/v1")

	submissions := v1.Group("/submissions")
	submissions.Post("/submit-route", controllers.HandleSubmitRoute)

	review := submissions.Group("", middleware.APIKeyAuthMiddleware(), middleware.RequireAdminMiddleware())
	review.Get("/", controllers.HandleListSubmissions)
	review.Get("/:id", controllers.HandleGetSubmission)
	review.Post("/:id/approve", controllers.HandleApproveSubmission)
	review.Post("/:id/reject", controllers.HandleRejectSubmission)

	routes := v1.Group("/routes")
	// Lookup must be registered before the id route so "lookup" is not
	// swallowed as a path parameter.
	routes.Get("/lookup", controllers.HandleRouteLookup)
	routes.Get("/:id", controllers.HandleGetRoute)

	search := v1.Group("/search")
	search.Get("/destinations", controllers.HandleDestinationSearch)
	search.Get("/destinations/:destination_id/starting-places", controllers.HandleStartingPlaceSearch)

	steps := v1.Group("/route-steps")
	steps.Get("/:step_id/fares", controllers.HandleListStepFares)
	steps.Post("/:step_id/fares", controllers.HandleReportStepFare)

	v1.Get("/stats", controllers.HandleStats)
}

// newLimiterStorage backs the rate limiter with Redis so limits hold across
// instances. Uses database 1, leaving database 0 to the cache.
func newLimiterStorage() *redisstorage.Storage {
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if client := cache.GetClient(); client != nil {
		addr := client.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := client.Options().Password; p != "" {
			password = p
		}
	}

	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
