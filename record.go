package gojmap

import "github.com/google/uuid"

// PartialRecord is the patch/projection form of a record: every property,
// the id included, is wrapped in a Presence.
type PartialRecord[P any] interface {
	// RecordID returns the id slot of the partial.
	RecordID() Presence[string]
	ToJSON() any
	FromJSON(v any) (P, error)
}

// Record is a full record R paired with its partial form P.
//
// UpdatedWith returns a new value: properties Present in the patch replace
// the receiver's, everything else is carried over. The receiver is never
// modified. ToPartial marks every property Present; ToFilteredPartial marks
// only the id and the listed wire names, ignoring unknown names.
type Record[R any, P PartialRecord[P]] interface {
	ID() string
	ToJSON() any
	FromJSON(v any) (R, error)
	UpdatedWith(p P) R
	ToPartial() P
	ToFilteredPartial(properties []string) P
}

// NewID returns a fresh record id: a random (version 4) UUID in its
// canonical 8-4-4-4-12 hex form.
func NewID() string { return uuid.New().String() }
