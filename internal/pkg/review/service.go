package review

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/places"
)

// Service is the submission review engine: it owns the
// submitted -> approved/rejected state machine and materializes routes from
// approved submissions. Every operation runs under an exclusive lock on the
// submission row; the status is re-checked after the lock is acquired, so
// concurrent reviews of the same submission serialize and at most one
// succeeds.
type Service struct {
	repo Repository
}

// NewService creates a review service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a review service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Approve transitions a submission to approved and creates the resulting
// route as one atomic unit: the destination is resolved per the choice, the
// submission steps are copied in order, the starting place is attached and
// the submission is marked approved with audit fields. Fails with
// ErrInvalidState when the submission is no longer pending,
// ErrEmptySubmission when it has no steps and places.ErrCityMismatch when the
// resolved destination belongs to another city.
func (s *Service) Approve(ctx context.Context, submissionID uint, reviewerID *uint, choice DestinationChoice) (*models.Route, error) {
	_ = ctx
	var route *models.Route

	err := s.repo.ReviewSubmission(submissionID, func(tx Tx, sub *models.RouteSubmission) error {
		if !sub.IsPending() {
			return ErrInvalidState
		}

		steps, err := tx.Steps(sub.ID)
		if err != nil {
			return err
		}
		if len(steps) == 0 {
			return ErrEmptySubmission
		}

		dest, err := tx.Places().ResolveOrCreate(sub.CityID, destinationSelection(sub, choice))
		if err != nil {
			return err
		}
		if dest.CityID != sub.CityID {
			return places.ErrCityMismatch
		}

		r := &models.Route{
			DestinationID: dest.ID,
			Recommended:   false,
			Difficulty:    models.DifficultyEasy,
		}
		if err := tx.CreateRoute(r); err != nil {
			return err
		}
		for _, st := range steps {
			step := &models.RouteStep{
				RouteID:     r.ID,
				Order:       st.Order,
				Mode:        st.Mode,
				Instruction: st.Instruction,
				DropName:    st.DropName,
				Landmark:    st.Landmark,
			}
			if err := tx.CreateStep(step); err != nil {
				return err
			}
		}

		if err := s.attachStartingPlace(tx, sub, r); err != nil {
			return err
		}

		now := time.Now()
		sub.Status = models.SubmissionStatusApproved
		sub.ApprovedRouteID = &r.ID
		sub.ReviewedByID = reviewerID
		sub.ReviewedAt = &now
		if err := tx.SaveSubmission(sub); err != nil {
			return err
		}

		route = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return route, nil
}

// Reject transitions a submission to rejected, recording the reviewer and
// appending notes to any existing admin notes. Fails with ErrInvalidState
// when the submission is no longer pending.
func (s *Service) Reject(ctx context.Context, submissionID uint, reviewerID *uint, notes string) (*models.RouteSubmission, error) {
	_ = ctx
	var out *models.RouteSubmission

	err := s.repo.ReviewSubmission(submissionID, func(tx Tx, sub *models.RouteSubmission) error {
		if !sub.IsPending() {
			return ErrInvalidState
		}

		now := time.Now()
		sub.Status = models.SubmissionStatusRejected
		sub.ReviewedByID = reviewerID
		sub.ReviewedAt = &now
		sub.AppendAdminNotes(strings.TrimSpace(notes))
		if err := tx.SaveSubmission(sub); err != nil {
			return err
		}

		out = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// attachStartingPlace links the route to the submission's starting place.
// A pre-resolved FK wins; otherwise the retained free text is re-resolved
// through the auto-resolve+create path. Submissions without any starting
// point produce a route without starting places.
func (s *Service) attachStartingPlace(tx Tx, sub *models.RouteSubmission, route *models.Route) error {
	if sub.StartingPointID != nil {
		return tx.LinkStartingPlace(route, *sub.StartingPointID)
	}

	text := strings.TrimSpace(sub.StartingPointText)
	if text == "" {
		return nil
	}
	sp, err := tx.Places().ResolveOrCreate(sub.CityID, places.Selection{Name: text})
	if err != nil {
		return err
	}
	return tx.LinkStartingPlace(route, sp.ID)
}

func destinationSelection(sub *models.RouteSubmission, choice DestinationChoice) places.Selection {
	sel := places.Selection{Name: sub.Destination}
	if choice.PlaceID != nil {
		sel.PlaceID = choice.PlaceID
		return sel
	}
	if choice.Create != nil {
		sel.Create = &places.Creation{
			CanonicalName: choice.Create.CanonicalName,
			Area:          choice.Create.Area,
		}
	}
	return sel
}
