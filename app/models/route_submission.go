package models

import (
	"strings"
	"time"
)

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusApproved  = "approved"
	SubmissionStatusRejected  = "rejected"
)

// RouteSubmission is a user-proposed commute route pending review. The
// destination is kept as free text until a reviewer resolves it against the
// place registry; the starting point may arrive pre-resolved or as free text.
type RouteSubmission struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	SubmittedByID *uint `gorm:"index" json:"submitted_by_id,omitempty"`
	SubmittedBy   *User `gorm:"foreignKey:SubmittedByID" json:"submitted_by,omitempty"`

	Destination string `gorm:"type:varchar(200);not null" json:"destination" validate:"required,min=1,max=200"`

	StartingPointID *uint  `gorm:"index" json:"starting_point_id,omitempty"`
	StartingPoint   *Place `gorm:"foreignKey:StartingPointID" json:"starting_point,omitempty"`
	// Original free-text starting point, retained for audit even after the
	// FK has been resolved.
	StartingPointText string `gorm:"type:varchar(200)" json:"starting_point_text"`

	CityID uint  `gorm:"index;not null" json:"city_id" validate:"required"`
	City   *City `gorm:"foreignKey:CityID" json:"city,omitempty"`

	Status     string `gorm:"type:varchar(20);default:'submitted';index" json:"status"`
	AdminNotes string `gorm:"type:text" json:"admin_notes"`

	ReviewedByID *uint      `gorm:"index" json:"reviewed_by_id,omitempty"`
	ReviewedBy   *User      `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	// Set exactly once, when the submission is approved.
	ApprovedRouteID *uint  `gorm:"uniqueIndex" json:"approved_route_id,omitempty"`
	ApprovedRoute   *Route `gorm:"foreignKey:ApprovedRouteID" json:"approved_route,omitempty"`

	Steps []RouteStepSubmission `gorm:"foreignKey:RouteSubmissionID" json:"steps,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the RouteSubmission model
func (RouteSubmission) TableName() string {
	return "route_submissions"
}

// IsPending reports whether the submission can still be reviewed.
func (s *RouteSubmission) IsPending() bool {
	return s.Status == SubmissionStatusSubmitted
}

// AppendAdminNotes appends notes to any existing admin notes separated by a
// newline. Existing notes are never overwritten.
func (s *RouteSubmission) AppendAdminNotes(notes string) {
	if notes == "" {
		return
	}
	s.AdminNotes = strings.TrimSpace(s.AdminNotes + "\n" + notes)
}
