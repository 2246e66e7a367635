// Package calendars defines the Calendar and CalendarEvent record kinds.
package calendars

import (
	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// Calendar is a named collection of events together with the access rights
// the user has on it.
type Calendar struct {
	id              string
	Name            string `validate:"required"`
	Color           string `validate:"omitempty,hexcolor"`
	SortOrder       uint64
	IsVisible       bool
	MayReadFreeBusy bool
	MayReadItems    bool
	MayAddItems     bool
	MayModifyItems  bool
	MayRemoveItems  bool
	MayRename       bool
	MayDelete       bool
}

// PartialCalendar is a Calendar patch or projection.
type PartialCalendar struct {
	ID              gojmap.Presence[string]
	Name            gojmap.Presence[string]
	Color           gojmap.Presence[string]
	SortOrder       gojmap.Presence[uint64]
	IsVisible       gojmap.Presence[bool]
	MayReadFreeBusy gojmap.Presence[bool]
	MayReadItems    gojmap.Presence[bool]
	MayAddItems     gojmap.Presence[bool]
	MayModifyItems  gojmap.Presence[bool]
	MayRemoveItems  gojmap.Presence[bool]
	MayRename       gojmap.Presence[bool]
	MayDelete       gojmap.Presence[bool]
}

func calendarFlag(name string, full func(*Calendar) *bool, part func(*PartialCalendar) *gojmap.Presence[bool]) gojmap.Field[Calendar, PartialCalendar] {
	return gojmap.Prop(name, gojmap.Bool(), full, part)
}

var calendarSchema = gojmap.NewSchema("Calendar",
	func(r *Calendar) *string { return &r.id },
	func(r *PartialCalendar) *gojmap.Presence[string] { return &r.ID },
	gojmap.Prop("name", gojmap.String(),
		func(r *Calendar) *string { return &r.Name },
		func(r *PartialCalendar) *gojmap.Presence[string] { return &r.Name }),
	gojmap.Prop("color", gojmap.String(),
		func(r *Calendar) *string { return &r.Color },
		func(r *PartialCalendar) *gojmap.Presence[string] { return &r.Color }),
	gojmap.Prop("sortOrder", gojmap.Uint64(),
		func(r *Calendar) *uint64 { return &r.SortOrder },
		func(r *PartialCalendar) *gojmap.Presence[uint64] { return &r.SortOrder }),
	calendarFlag("isVisible", func(r *Calendar) *bool { return &r.IsVisible }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.IsVisible }),
	calendarFlag("mayReadFreeBusy", func(r *Calendar) *bool { return &r.MayReadFreeBusy }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayReadFreeBusy }),
	calendarFlag("mayReadItems", func(r *Calendar) *bool { return &r.MayReadItems }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayReadItems }),
	calendarFlag("mayAddItems", func(r *Calendar) *bool { return &r.MayAddItems }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayAddItems }),
	calendarFlag("mayModifyItems", func(r *Calendar) *bool { return &r.MayModifyItems }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayModifyItems }),
	calendarFlag("mayRemoveItems", func(r *Calendar) *bool { return &r.MayRemoveItems }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayRemoveItems }),
	calendarFlag("mayRename", func(r *Calendar) *bool { return &r.MayRename }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayRename }),
	calendarFlag("mayDelete", func(r *Calendar) *bool { return &r.MayDelete }, func(r *PartialCalendar) *gojmap.Presence[bool] { return &r.MayDelete }),
)

// NewCalendar returns an empty calendar with a fresh id.
func NewCalendar() Calendar { return calendarSchema.New() }

func (r Calendar) ID() string                     { return r.id }
func (r Calendar) ToJSON() any                    { return calendarSchema.Encode(r) }
func (Calendar) FromJSON(v any) (Calendar, error) { return calendarSchema.Decode(v) }
func (Calendar) JSONSchema() *js.Schema           { return calendarSchema.JSONSchema() }

func (r Calendar) UpdatedWith(p PartialCalendar) Calendar { return calendarSchema.UpdatedWith(r, p) }
func (r Calendar) ToPartial() PartialCalendar             { return calendarSchema.ToPartial(r) }

func (r Calendar) ToFilteredPartial(properties []string) PartialCalendar {
	return calendarSchema.ToFilteredPartial(r, properties)
}

func (p PartialCalendar) RecordID() gojmap.Presence[string] { return p.ID }
func (p PartialCalendar) ToJSON() any                       { return calendarSchema.EncodePartial(p) }
func (PartialCalendar) FromJSON(v any) (PartialCalendar, error) {
	return calendarSchema.DecodePartial(v)
}
func (PartialCalendar) JSONSchema() *js.Schema { return calendarSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[Calendar, PartialCalendar] = Calendar{}
	_ gojmap.PartialRecord[PartialCalendar]    = PartialCalendar{}
)
