package places

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
)

// fakeRepository is an in-memory Repository with the same uniqueness and
// case-insensitivity semantics as the real storage layer.
type fakeRepository struct {
	places  []*models.Place
	aliases []models.PlaceAlias
	nextID  uint
	created int

	failNextCreateWith error
	onCreateFail       func()
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) addPlace(cityID uint, name, area string) *models.Place {
	p := &models.Place{ID: f.nextID, CityID: cityID, CanonicalName: name, Area: area}
	f.nextID++
	f.places = append(f.places, p)
	return p
}

func (f *fakeRepository) addAlias(placeID uint, name string) {
	f.aliases = append(f.aliases, models.PlaceAlias{PlaceID: placeID, Name: name})
}

func (f *fakeRepository) GetByID(id uint) (*models.Place, error) {
	for _, p := range f.places {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) FindByCanonicalName(cityID uint, name string) (*models.Place, error) {
	for _, p := range f.places {
		if p.CityID == cityID && strings.EqualFold(p.CanonicalName, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) FindAliasOwner(cityID uint, name string) (*models.Place, error) {
	for _, a := range f.aliases {
		if !strings.EqualFold(a.Name, name) {
			continue
		}
		owner, err := f.GetByID(a.PlaceID)
		if err != nil {
			return nil, err
		}
		if owner.CityID == cityID {
			return owner, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Create(place *models.Place) error {
	if f.failNextCreateWith != nil {
		err := f.failNextCreateWith
		f.failNextCreateWith = nil
		if f.onCreateFail != nil {
			f.onCreateFail()
		}
		return err
	}
	for _, p := range f.places {
		if p.CityID == place.CityID && strings.EqualFold(p.CanonicalName, place.CanonicalName) {
			return gorm.ErrDuplicatedKey
		}
	}
	place.ID = f.nextID
	f.nextID++
	f.places = append(f.places, place)
	f.created++
	return nil
}

func TestResolveOrCreateExplicitID(t *testing.T) {
	repo := newFakeRepository()
	existing := repo.addPlace(1, "Berger Junction", "")

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{PlaceID: &existing.ID})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Zero(t, repo.created)
}

func TestResolveOrCreateExplicitIDWrongCity(t *testing.T) {
	repo := newFakeRepository()
	other := repo.addPlace(2, "Ikeja City Mall", "")

	resolver := NewResolver(repo)
	_, err := resolver.ResolveOrCreate(1, Selection{PlaceID: &other.ID})

	assert.ErrorIs(t, err, ErrCityMismatch)
}

func TestResolveOrCreateExplicitIDNotFound(t *testing.T) {
	repo := newFakeRepository()
	missing := uint(99)

	resolver := NewResolver(repo)
	_, err := resolver.ResolveOrCreate(1, Selection{PlaceID: &missing})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveOrCreateCreationIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	existing := repo.addPlace(1, "Wuse Market", "Wuse")

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Create: &Creation{CanonicalName: "wuse market"}})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Zero(t, repo.created)
}

func TestResolveOrCreateCreationFallsBackToName(t *testing.T) {
	repo := newFakeRepository()

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Create: &Creation{}, Name: "Area 1 Roundabout"})

	require.NoError(t, err)
	assert.Equal(t, "Area 1 Roundabout", got.CanonicalName)
	assert.Equal(t, 1, repo.created)
}

func TestResolveOrCreateCanonicalMatchCaseInsensitive(t *testing.T) {
	repo := newFakeRepository()
	existing := repo.addPlace(1, "Nyanya Bridge", "")

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Name: "  NYANYA bridge "})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Zero(t, repo.created)
}

func TestResolveOrCreateAliasMatch(t *testing.T) {
	repo := newFakeRepository()
	existing := repo.addPlace(1, "Jabi Lake Mall", "Jabi")
	repo.addAlias(existing.ID, "jabi mall")

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Name: "Jabi Mall"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Zero(t, repo.created)
}

func TestResolveOrCreateCreationSkipsAliases(t *testing.T) {
	repo := newFakeRepository()
	existing := repo.addPlace(1, "Jabi Lake Mall", "Jabi")
	repo.addAlias(existing.ID, "jabi mall")

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Create: &Creation{CanonicalName: "Jabi Mall"}})

	require.NoError(t, err)
	assert.NotEqual(t, existing.ID, got.ID)
	assert.Equal(t, "Jabi Mall", got.CanonicalName)
	assert.Equal(t, 1, repo.created)
}

func TestResolveOrCreateAutoCreates(t *testing.T) {
	repo := newFakeRepository()

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Name: "Gwarinpa First Avenue"})

	require.NoError(t, err)
	assert.Equal(t, "Gwarinpa First Avenue", got.CanonicalName)
	assert.Equal(t, uint(1), got.CityID)
	assert.Equal(t, 1, repo.created)
}

func TestResolveOrCreateEmptyName(t *testing.T) {
	resolver := NewResolver(newFakeRepository())

	_, err := resolver.ResolveOrCreate(1, Selection{Name: "   "})

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestResolveOrCreateRecoversFromInsertRace(t *testing.T) {
	repo := newFakeRepository()
	// Simulate a concurrent insert winning between lookup and create: the
	// create fails with a duplicate key and the winner's row appears just
	// before the retry lookup.
	var winner *models.Place
	repo.failNextCreateWith = gorm.ErrDuplicatedKey
	repo.onCreateFail = func() {
		winner = repo.addPlace(1, "Utako Market", "")
	}

	resolver := NewResolver(repo)
	got, err := resolver.ResolveOrCreate(1, Selection{Name: "Utako Market"})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
	assert.Zero(t, repo.created)
}
