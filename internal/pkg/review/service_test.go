package review

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/places"
)

// memoryRepository implements Repository with a per-submission mutex standing
// in for the row lock, so concurrent reviews serialize exactly like they do
// against the real storage layer.
type memoryRepository struct {
	mu          sync.Mutex
	locks       map[uint]*sync.Mutex
	submissions map[uint]*models.RouteSubmission
	steps       map[uint][]models.RouteStepSubmission
	places      *memoryPlaces

	routes      []*models.Route
	routeSteps  []*models.RouteStep
	startLinks  map[uint][]uint
	nextRouteID uint
	nextStepID  uint
}

type memoryPlaces struct {
	mu     sync.Mutex
	places []*models.Place
	nextID uint
}

func (m *memoryPlaces) GetByID(id uint) (*models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.places {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, places.ErrNotFound
}

func (m *memoryPlaces) FindByCanonicalName(cityID uint, name string) (*models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.places {
		if p.CityID == cityID && strings.EqualFold(p.CanonicalName, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memoryPlaces) FindAliasOwner(cityID uint, name string) (*models.Place, error) {
	return nil, nil
}

func (m *memoryPlaces) Create(place *models.Place) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	place.ID = m.nextID
	m.nextID++
	m.places = append(m.places, place)
	return nil
}

func (m *memoryPlaces) add(cityID uint, name string) *models.Place {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &models.Place{ID: m.nextID, CityID: cityID, CanonicalName: name}
	m.nextID++
	m.places = append(m.places, p)
	return p
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		locks:       make(map[uint]*sync.Mutex),
		submissions: make(map[uint]*models.RouteSubmission),
		steps:       make(map[uint][]models.RouteStepSubmission),
		places:      &memoryPlaces{nextID: 1},
		startLinks:  make(map[uint][]uint),
		nextRouteID: 1,
		nextStepID:  1,
	}
}

func (m *memoryRepository) addSubmission(sub *models.RouteSubmission, steps ...models.RouteStepSubmission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions[sub.ID] = sub
	m.steps[sub.ID] = steps
	m.locks[sub.ID] = &sync.Mutex{}
}

func (m *memoryRepository) ReviewSubmission(id uint, fn func(tx Tx, sub *models.RouteSubmission) error) error {
	m.mu.Lock()
	lock, ok := m.locks[id]
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	stored := m.submissions[id]
	copied := *stored
	m.mu.Unlock()

	tx := &memoryTx{repo: m, staged: &txState{}}
	if err := fn(tx, &copied); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type txState struct {
	routes     []*models.Route
	steps      []*models.RouteStep
	links      map[uint][]uint
	submission *models.RouteSubmission
}

type memoryTx struct {
	repo   *memoryRepository
	staged *txState
}

func (t *memoryTx) Steps(submissionID uint) ([]models.RouteStepSubmission, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	return t.repo.steps[submissionID], nil
}

func (t *memoryTx) CreateRoute(route *models.Route) error {
	t.repo.mu.Lock()
	route.ID = t.repo.nextRouteID
	t.repo.nextRouteID++
	t.repo.mu.Unlock()
	t.staged.routes = append(t.staged.routes, route)
	return nil
}

func (t *memoryTx) CreateStep(step *models.RouteStep) error {
	t.repo.mu.Lock()
	step.ID = t.repo.nextStepID
	t.repo.nextStepID++
	t.repo.mu.Unlock()
	t.staged.steps = append(t.staged.steps, step)
	return nil
}

func (t *memoryTx) LinkStartingPlace(route *models.Route, placeID uint) error {
	if t.staged.links == nil {
		t.staged.links = make(map[uint][]uint)
	}
	t.staged.links[route.ID] = append(t.staged.links[route.ID], placeID)
	return nil
}

func (t *memoryTx) SaveSubmission(sub *models.RouteSubmission) error {
	t.staged.submission = sub
	return nil
}

func (t *memoryTx) Places() *places.Resolver {
	return places.NewResolver(t.repo.places)
}

func (t *memoryTx) commit() {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.routes = append(t.repo.routes, t.staged.routes...)
	t.repo.routeSteps = append(t.repo.routeSteps, t.staged.steps...)
	for routeID, placeIDs := range t.staged.links {
		t.repo.startLinks[routeID] = append(t.repo.startLinks[routeID], placeIDs...)
	}
	if t.staged.submission != nil {
		copied := *t.staged.submission
		t.repo.submissions[copied.ID] = &copied
	}
}

func pendingSubmission(id uint, cityID uint) *models.RouteSubmission {
	return &models.RouteSubmission{
		ID:          id,
		Destination: "Banex Plaza",
		CityID:      cityID,
		Status:      models.SubmissionStatusSubmitted,
	}
}

func steps(n int) []models.RouteStepSubmission {
	out := make([]models.RouteStepSubmission, n)
	for i := range out {
		out[i] = models.RouteStepSubmission{
			Order:       uint(i + 1),
			Mode:        models.StepModeBus,
			Instruction: "Take a bus",
		}
	}
	return out
}

func TestApproveCreatesRouteWithStepsInOrder(t *testing.T) {
	repo := newMemoryRepository()
	sub := pendingSubmission(1, 1)
	st := steps(3)
	st[0].Mode = models.StepModeWalk
	repo.addSubmission(sub, st...)

	reviewer := uint(7)
	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, &reviewer, DestinationChoice{})

	require.NoError(t, err)
	require.NotNil(t, route)
	assert.False(t, route.Recommended)
	assert.Equal(t, models.DifficultyEasy, route.Difficulty)

	require.Len(t, repo.routeSteps, 3)
	for i, step := range repo.routeSteps {
		assert.Equal(t, route.ID, step.RouteID)
		assert.Equal(t, uint(i+1), step.Order)
	}
	assert.Equal(t, models.StepModeWalk, repo.routeSteps[0].Mode)

	saved := repo.submissions[1]
	assert.Equal(t, models.SubmissionStatusApproved, saved.Status)
	require.NotNil(t, saved.ApprovedRouteID)
	assert.Equal(t, route.ID, *saved.ApprovedRouteID)
	require.NotNil(t, saved.ReviewedByID)
	assert.Equal(t, reviewer, *saved.ReviewedByID)
	assert.NotNil(t, saved.ReviewedAt)
}

func TestApproveAutoResolvesDestinationText(t *testing.T) {
	repo := newMemoryRepository()
	existing := repo.places.add(1, "banex plaza")
	repo.addSubmission(pendingSubmission(1, 1), steps(1)...)

	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, route.DestinationID)
}

func TestApproveExplicitPlace(t *testing.T) {
	repo := newMemoryRepository()
	dest := repo.places.add(1, "Garki Model Market")
	repo.addSubmission(pendingSubmission(1, 1), steps(2)...)

	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{PlaceID: &dest.ID})

	require.NoError(t, err)
	assert.Equal(t, dest.ID, route.DestinationID)
}

func TestApproveCreatePlace(t *testing.T) {
	repo := newMemoryRepository()
	repo.addSubmission(pendingSubmission(1, 1), steps(1)...)

	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{
		Create: &PlaceCreation{CanonicalName: "Banex Plaza", Area: "Wuse 2"},
	})

	require.NoError(t, err)
	created, gerr := repo.places.GetByID(route.DestinationID)
	require.NoError(t, gerr)
	assert.Equal(t, "Banex Plaza", created.CanonicalName)
	assert.Equal(t, "Wuse 2", created.Area)
}

func TestApproveEmptySubmission(t *testing.T) {
	repo := newMemoryRepository()
	repo.addSubmission(pendingSubmission(1, 1))

	svc := NewService(repo)
	_, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{})

	assert.ErrorIs(t, err, ErrEmptySubmission)
	assert.Equal(t, models.SubmissionStatusSubmitted, repo.submissions[1].Status)
	assert.Empty(t, repo.routes)
}

func TestApproveCityMismatchLeavesSubmissionPending(t *testing.T) {
	repo := newMemoryRepository()
	foreign := repo.places.add(2, "Computer Village")
	repo.addSubmission(pendingSubmission(1, 1), steps(1)...)

	svc := NewService(repo)
	_, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{PlaceID: &foreign.ID})

	assert.ErrorIs(t, err, places.ErrCityMismatch)
	assert.Equal(t, models.SubmissionStatusSubmitted, repo.submissions[1].Status)
	assert.Empty(t, repo.routes)
}

func TestApproveNotFound(t *testing.T) {
	svc := NewService(newMemoryRepository())

	_, err := svc.Approve(context.Background(), 42, nil, DestinationChoice{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveLinksResolvedStartingPoint(t *testing.T) {
	repo := newMemoryRepository()
	start := repo.places.add(1, "Kubwa Gate")
	sub := pendingSubmission(1, 1)
	sub.StartingPointID = &start.ID
	repo.addSubmission(sub, steps(1)...)

	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{})

	require.NoError(t, err)
	assert.Equal(t, []uint{start.ID}, repo.startLinks[route.ID])
}

func TestApproveResolvesStartingPointText(t *testing.T) {
	repo := newMemoryRepository()
	sub := pendingSubmission(1, 1)
	sub.StartingPointText = "Lugbe Junction"
	repo.addSubmission(sub, steps(1)...)

	svc := NewService(repo)
	route, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{})

	require.NoError(t, err)
	require.Len(t, repo.startLinks[route.ID], 1)
	sp, gerr := repo.places.GetByID(repo.startLinks[route.ID][0])
	require.NoError(t, gerr)
	assert.Equal(t, "Lugbe Junction", sp.CanonicalName)
}

func TestRejectAppendsNotes(t *testing.T) {
	repo := newMemoryRepository()
	sub := pendingSubmission(1, 1)
	sub.AdminNotes = "needs clearer steps"
	repo.addSubmission(sub, steps(1)...)

	reviewer := uint(3)
	svc := NewService(repo)
	out, err := svc.Reject(context.Background(), 1, &reviewer, "duplicate of an existing route")

	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusRejected, out.Status)
	assert.Equal(t, "needs clearer steps\nduplicate of an existing route", out.AdminNotes)
	require.NotNil(t, out.ReviewedByID)
	assert.Equal(t, reviewer, *out.ReviewedByID)
}

func TestRejectAlreadyReviewed(t *testing.T) {
	repo := newMemoryRepository()
	repo.addSubmission(pendingSubmission(1, 1), steps(1)...)

	svc := NewService(repo)
	_, err := svc.Reject(context.Background(), 1, nil, "first")
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), 1, nil, "second")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, "first", repo.submissions[1].AdminNotes)
}

func TestApproveAfterRejectFails(t *testing.T) {
	repo := newMemoryRepository()
	repo.addSubmission(pendingSubmission(1, 1), steps(1)...)

	svc := NewService(repo)
	_, err := svc.Reject(context.Background(), 1, nil, "")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), 1, nil, DestinationChoice{})
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, repo.routes)
}

func TestConcurrentApprovalsCreateExactlyOneRoute(t *testing.T) {
	repo := newMemoryRepository()
	repo.addSubmission(pendingSubmission(1, 1), steps(2)...)

	svc := NewService(repo)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(context.Background(), 1, nil, DestinationChoice{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, invalid int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrInvalidState):
			invalid++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, invalid)
	assert.Len(t, repo.routes, 1)
	assert.Len(t, repo.routeSteps, 2)
}
