package places

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
)

// Resolver implements deterministic case-insensitive place resolution with
// idempotent creation. It is used both at submission time (starting point)
// and at approval time (destination), bound either to the root DB handle or
// to an in-flight review transaction.
type Resolver struct {
	repo Repository
}

// NewResolver creates a resolver from an injected repository.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// NewResolverFromDB creates a resolver bound to a GORM DB handle.
func NewResolverFromDB(db *gorm.DB) *Resolver {
	return NewResolver(NewRepository(db))
}

// ResolveOrCreate resolves a Selection to a Place within the given city.
// Resolution order, first match wins, name comparisons case-insensitive:
// explicit id (city-checked), creation request (find-or-create by canonical
// name), canonical name match, alias match, create. No row is ever created
// when an existing place or alias already satisfies the name.
func (r *Resolver) ResolveOrCreate(cityID uint, sel Selection) (*models.Place, error) {
	if sel.PlaceID != nil {
		place, err := r.repo.GetByID(*sel.PlaceID)
		if err != nil {
			return nil, err
		}
		if place.CityID != cityID {
			return nil, ErrCityMismatch
		}
		return place, nil
	}

	if sel.Create != nil {
		name := strings.TrimSpace(sel.Create.CanonicalName)
		if name == "" {
			name = strings.TrimSpace(sel.Name)
		}
		if name == "" {
			return nil, ErrEmptyName
		}
		return r.findOrCreate(cityID, name, strings.TrimSpace(sel.Create.Area), false)
	}

	name := strings.TrimSpace(sel.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return r.findOrCreate(cityID, name, "", true)
}

// findOrCreate returns an existing place matching name within the city, or
// creates one. A uniqueness conflict at the storage layer means a concurrent
// caller won the insert; the lookup is re-run and the winner's row returned
// instead of surfacing the conflict.
func (r *Resolver) findOrCreate(cityID uint, name, area string, matchAliases bool) (*models.Place, error) {
	place, err := r.lookup(cityID, name, matchAliases)
	if err != nil {
		return nil, err
	}
	if place != nil {
		return place, nil
	}

	place = &models.Place{CityID: cityID, CanonicalName: name, Area: area}
	err = r.repo.Create(place)
	if err == nil {
		return place, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	place, lerr := r.lookup(cityID, name, matchAliases)
	if lerr != nil {
		return nil, lerr
	}
	if place == nil {
		// Conflict without a visible winner, e.g. the winner was removed in
		// between. Surface the original error.
		return nil, err
	}
	return place, nil
}

func (r *Resolver) lookup(cityID uint, name string, matchAliases bool) (*models.Place, error) {
	place, err := r.repo.FindByCanonicalName(cityID, name)
	if err != nil {
		return nil, err
	}
	if place != nil || !matchAliases {
		return place, nil
	}
	return r.repo.FindAliasOwner(cityID, name)
}
