package contacts

import (
	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// ContactGroup is a named set of contacts.
type ContactGroup struct {
	id         string
	Name       string `validate:"required"`
	ContactIDs []string
}

// PartialContactGroup is a ContactGroup patch or projection.
type PartialContactGroup struct {
	ID         gojmap.Presence[string]
	Name       gojmap.Presence[string]
	ContactIDs gojmap.Presence[[]string]
}

var groupSchema = gojmap.NewSchema("ContactGroup",
	func(r *ContactGroup) *string { return &r.id },
	func(r *PartialContactGroup) *gojmap.Presence[string] { return &r.ID },
	gojmap.Prop("name", gojmap.String(),
		func(r *ContactGroup) *string { return &r.Name },
		func(r *PartialContactGroup) *gojmap.Presence[string] { return &r.Name }),
	gojmap.Prop("contactIds", gojmap.Slice(gojmap.String()),
		func(r *ContactGroup) *[]string { return &r.ContactIDs },
		func(r *PartialContactGroup) *gojmap.Presence[[]string] { return &r.ContactIDs }),
)

// NewContactGroup returns an empty group with a fresh id.
func NewContactGroup() ContactGroup { return groupSchema.New() }

func (r ContactGroup) ID() string                         { return r.id }
func (r ContactGroup) ToJSON() any                        { return groupSchema.Encode(r) }
func (ContactGroup) FromJSON(v any) (ContactGroup, error) { return groupSchema.Decode(v) }
func (ContactGroup) JSONSchema() *js.Schema               { return groupSchema.JSONSchema() }

func (r ContactGroup) UpdatedWith(p PartialContactGroup) ContactGroup {
	return groupSchema.UpdatedWith(r, p)
}

func (r ContactGroup) ToPartial() PartialContactGroup { return groupSchema.ToPartial(r) }

func (r ContactGroup) ToFilteredPartial(properties []string) PartialContactGroup {
	return groupSchema.ToFilteredPartial(r, properties)
}

func (p PartialContactGroup) RecordID() gojmap.Presence[string] { return p.ID }
func (p PartialContactGroup) ToJSON() any                       { return groupSchema.EncodePartial(p) }

func (PartialContactGroup) FromJSON(v any) (PartialContactGroup, error) {
	return groupSchema.DecodePartial(v)
}

func (PartialContactGroup) JSONSchema() *js.Schema { return groupSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[ContactGroup, PartialContactGroup] = ContactGroup{}
	_ gojmap.PartialRecord[PartialContactGroup]        = PartialContactGroup{}
)
