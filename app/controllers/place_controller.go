package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/repository"
	"github.com/wakapath/wakapath/internal/pkg/cache"
	"github.com/wakapath/wakapath/internal/pkg/env"
	"github.com/wakapath/wakapath/internal/pkg/viewmodel"
)

const searchCacheExpiration = 60 * time.Second

// HandleDestinationSearch searches destination places in the home city by
// name or alias. An empty query returns an empty list. Results are cached
// briefly since autocomplete hammers the same prefixes.
func HandleDestinationSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.JSON([]viewmodel.PlaceSuggestion{})
	}

	repos := repository.GetGlobalRepositories()
	city, err := repos.City.GetByName(env.GetEnv("HOME_CITY", "Abuja, NG"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON([]viewmodel.PlaceSuggestion{})
		}
		log.Printf("home city lookup failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	cacheKey := fmt.Sprintf("search:destinations:%d:%s", city.ID, strings.ToLower(query))
	if cached, err := cache.Get(cacheKey); err == nil {
		c.Type("json")
		return c.SendString(cached)
	}

	matches, err := repos.Place.SearchInCity(city.ID, query)
	if err != nil {
		log.Printf("destination search failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	suggestions := viewmodel.NewPlaceSuggestions(matches)
	if payload, err := json.Marshal(suggestions); err == nil {
		if err := cache.Set(cacheKey, string(payload), searchCacheExpiration); err != nil {
			log.Printf("failed to cache destination search %q: %v", query, err)
		}
	}

	return c.JSON(suggestions)
}

// HandleStartingPlaceSearch searches the starting places of routes that lead
// to the given destination. An empty query returns an empty list.
func HandleStartingPlaceSearch(c *fiber.Ctx) error {
	destinationID, err := parseIDParam(c, "destination_id")
	if err != nil {
		return jsonDetail(c, fiber.StatusBadRequest, "Invalid destination id")
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.JSON([]viewmodel.PlaceSuggestion{})
	}

	matches, err := repository.GetGlobalRepositories().Place.SearchStartingPlaces(destinationID, query)
	if err != nil {
		log.Printf("starting place search failed: %v", err)
		return jsonDetail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(viewmodel.NewPlaceSuggestions(matches))
}
