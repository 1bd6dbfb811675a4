package viewmodel

import (
	"time"

	"github.com/wakapath/wakapath/app/models"
)

// SubmissionStep mirrors one submitted travel step.
type SubmissionStep struct {
	ID          uint   `json:"id"`
	Order       uint   `json:"order"`
	Mode        string `json:"mode"`
	Instruction string `json:"instruction"`
	DropName    string `json:"drop_name"`
	Landmark    string `json:"landmark"`
}

// Submission is the read-side representation of a route submission.
type Submission struct {
	ID                uint             `json:"id"`
	SubmittedBy       string           `json:"submitted_by,omitempty"`
	Destination       string           `json:"destination"`
	StartingPoint     *PlaceRef        `json:"starting_point"`
	StartingPointText string           `json:"starting_point_text"`
	City              uint             `json:"city"`
	Status            string           `json:"status"`
	AdminNotes        string           `json:"admin_notes"`
	CreatedAt         time.Time        `json:"created_at"`
	ReviewedBy        string           `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time       `json:"reviewed_at"`
	ApprovedRoute     *uint            `json:"approved_route"`
	Steps             []SubmissionStep `json:"steps"`
}

// NewSubmission builds a submission view
func NewSubmission(sub *models.RouteSubmission) Submission {
	view := Submission{
		ID:                sub.ID,
		Destination:       sub.Destination,
		StartingPointText: sub.StartingPointText,
		City:              sub.CityID,
		Status:            sub.Status,
		AdminNotes:        sub.AdminNotes,
		CreatedAt:         sub.CreatedAt,
		ReviewedAt:        sub.ReviewedAt,
		ApprovedRoute:     sub.ApprovedRouteID,
		Steps:             make([]SubmissionStep, len(sub.Steps)),
	}
	if sub.SubmittedBy != nil {
		view.SubmittedBy = sub.SubmittedBy.Name
	}
	if sub.ReviewedBy != nil {
		view.ReviewedBy = sub.ReviewedBy.Name
	}
	if sub.StartingPoint != nil {
		ref := NewPlaceRef(sub.StartingPoint)
		view.StartingPoint = &ref
	}
	for i, step := range sub.Steps {
		view.Steps[i] = SubmissionStep{
			ID:          step.ID,
			Order:       step.Order,
			Mode:        step.Mode,
			Instruction: step.Instruction,
			DropName:    step.DropName,
			Landmark:    step.Landmark,
		}
	}
	return view
}

// NewSubmissions builds views for a list of submissions
func NewSubmissions(subs []models.RouteSubmission) []Submission {
	out := make([]Submission, len(subs))
	for i := range subs {
		out[i] = NewSubmission(&subs[i])
	}
	return out
}
