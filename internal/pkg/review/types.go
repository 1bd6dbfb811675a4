package review

// PlaceCreation asks the engine to create (or idempotently reuse) a
// destination place during approval.
type PlaceCreation struct {
	CanonicalName string `json:"canonical_name" validate:"required,min=1,max=200"`
	Area          string `json:"area" validate:"max=100"`
}

// DestinationChoice selects how the destination place is resolved on
// approval: an explicit place id, a creation request, or neither, which
// auto-resolves against the submission's own destination text.
type DestinationChoice struct {
	PlaceID *uint          `json:"place_id"`
	Create  *PlaceCreation `json:"create_place"`
}
