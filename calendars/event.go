package calendars

import (
	"slices"
	"time"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
	"github.com/reoring/gojmap/values"
)

// CalendarEvent is one entry of a calendar. Start and End are UTC instants;
// recurrence data uses zone-less local times.
type CalendarEvent struct {
	id            string
	CalendarID    string `validate:"required"`
	Summary       string
	Description   string
	Location      string
	ShowAsFree    bool
	IsAllDay      bool
	Start         time.Time
	End           time.Time `validate:"gtefield=Start"`
	StartTimeZone *string   `validate:"omitempty,timezone"`
	EndTimeZone   *string   `validate:"omitempty,timezone"`
	Recurrence    *Recurrence
	Inclusions    []time.Time
	Exceptions    ExceptionMap
	Alerts        []Alert `validate:"dive"`
	Organizer     *Participant
	Attendees     []Participant `validate:"dive"`
	Attachments   []values.File
}

// PartialCalendarEvent is a CalendarEvent patch or projection.
type PartialCalendarEvent struct {
	ID            gojmap.Presence[string]
	CalendarID    gojmap.Presence[string]
	Summary       gojmap.Presence[string]
	Description   gojmap.Presence[string]
	Location      gojmap.Presence[string]
	ShowAsFree    gojmap.Presence[bool]
	IsAllDay      gojmap.Presence[bool]
	Start         gojmap.Presence[time.Time]
	End           gojmap.Presence[time.Time]
	StartTimeZone gojmap.Presence[*string]
	EndTimeZone   gojmap.Presence[*string]
	Recurrence    gojmap.Presence[*Recurrence]
	Inclusions    gojmap.Presence[[]time.Time]
	Exceptions    gojmap.Presence[ExceptionMap]
	Alerts        gojmap.Presence[[]Alert]
	Organizer     gojmap.Presence[*Participant]
	Attendees     gojmap.Presence[[]Participant]
	Attachments   gojmap.Presence[[]values.File]
}

// ExceptionMap overrides single occurrences of a recurring event. Keys are
// occurrence start times in LocalDateTime form; a nil value removes that
// occurrence.
type ExceptionMap map[string]*PartialCalendarEvent

// calendarEventSchema is assigned in init: the exceptions property refers
// back to the partial event codec.
var calendarEventSchema *gojmap.Schema[CalendarEvent, PartialCalendarEvent]

func init() {
	type (
		r = CalendarEvent
		p = PartialCalendarEvent
	)
	exceptions := exceptionsCodec{
		event: gojmap.Nullable(gojmap.Lazy(func() gojmap.Codec[PartialCalendarEvent] {
			return calendarEventSchema.PartialCodec()
		})),
	}
	calendarEventSchema = gojmap.NewSchema("CalendarEvent",
		func(e *r) *string { return &e.id },
		func(e *p) *gojmap.Presence[string] { return &e.ID },
		gojmap.Prop("calendarId", gojmap.String(), func(e *r) *string { return &e.CalendarID }, func(e *p) *gojmap.Presence[string] { return &e.CalendarID }),
		gojmap.Prop("summary", gojmap.String(), func(e *r) *string { return &e.Summary }, func(e *p) *gojmap.Presence[string] { return &e.Summary }),
		gojmap.Prop("description", gojmap.String(), func(e *r) *string { return &e.Description }, func(e *p) *gojmap.Presence[string] { return &e.Description }),
		gojmap.Prop("location", gojmap.String(), func(e *r) *string { return &e.Location }, func(e *p) *gojmap.Presence[string] { return &e.Location }),
		gojmap.Prop("showAsFree", gojmap.Bool(), func(e *r) *bool { return &e.ShowAsFree }, func(e *p) *gojmap.Presence[bool] { return &e.ShowAsFree }),
		gojmap.Prop("isAllDay", gojmap.Bool(), func(e *r) *bool { return &e.IsAllDay }, func(e *p) *gojmap.Presence[bool] { return &e.IsAllDay }),
		gojmap.Prop("start", values.DateTime(), func(e *r) *time.Time { return &e.Start }, func(e *p) *gojmap.Presence[time.Time] { return &e.Start }),
		gojmap.Prop("end", values.DateTime(), func(e *r) *time.Time { return &e.End }, func(e *p) *gojmap.Presence[time.Time] { return &e.End }),
		gojmap.NullableProp("startTimeZone", gojmap.String(), func(e *r) **string { return &e.StartTimeZone }, func(e *p) *gojmap.Presence[*string] { return &e.StartTimeZone }),
		gojmap.NullableProp("endTimeZone", gojmap.String(), func(e *r) **string { return &e.EndTimeZone }, func(e *p) *gojmap.Presence[*string] { return &e.EndTimeZone }),
		gojmap.NullableProp("recurrence", recurrenceCodec, func(e *r) **Recurrence { return &e.Recurrence }, func(e *p) *gojmap.Presence[*Recurrence] { return &e.Recurrence }),
		gojmap.NilableProp("inclusions", gojmap.NullableSlice(values.LocalDateTime()), func(e *r) *[]time.Time { return &e.Inclusions }, func(e *p) *gojmap.Presence[[]time.Time] { return &e.Inclusions }),
		gojmap.NilableProp[r, p, ExceptionMap]("exceptions", exceptions, func(e *r) *ExceptionMap { return &e.Exceptions }, func(e *p) *gojmap.Presence[ExceptionMap] { return &e.Exceptions }),
		gojmap.NilableProp("alerts", gojmap.NullableSlice(alertCodec), func(e *r) *[]Alert { return &e.Alerts }, func(e *p) *gojmap.Presence[[]Alert] { return &e.Alerts }),
		gojmap.NullableProp("organizer", participantCodec, func(e *r) **Participant { return &e.Organizer }, func(e *p) *gojmap.Presence[*Participant] { return &e.Organizer }),
		gojmap.NilableProp("attendees", gojmap.NullableSlice(participantCodec), func(e *r) *[]Participant { return &e.Attendees }, func(e *p) *gojmap.Presence[[]Participant] { return &e.Attendees }),
		gojmap.NilableProp("attachments", gojmap.NullableSlice(values.FileCodec()), func(e *r) *[]values.File { return &e.Attachments }, func(e *p) *gojmap.Presence[[]values.File] { return &e.Attachments }),
	)
}

// exceptionsCodec reads an ExceptionMap. Keys must parse as LocalDateTime
// and are stored in canonical form; null maps to nil.
type exceptionsCodec struct {
	event gojmap.Codec[*PartialCalendarEvent]
}

func (c exceptionsCodec) Decode(v any) (ExceptionMap, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, gojmap.InvalidJSONType("ExceptionMap")
	}
	if len(obj) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make(ExceptionMap, len(obj))
	for _, k := range keys {
		at, err := values.ParseLocalDateTime(k)
		if err != nil {
			return nil, gojmap.Rebase(&gojmap.ParseError{Code: gojmap.CodeInvalidStructure, Target: "LocalDateTime", Cause: err}, k)
		}
		ev, err := c.event.Decode(obj[k])
		if err != nil {
			return nil, gojmap.Rebase(err, k)
		}
		out[values.FormatLocalDateTime(at)] = ev
	}
	return out, nil
}

func (c exceptionsCodec) Encode(m ExceptionMap) any {
	if len(m) == 0 {
		return nil
	}
	obj := make(map[string]any, len(m))
	for k, ev := range m {
		obj[k] = c.event.Encode(ev)
	}
	return obj
}

func (exceptionsCodec) JSONSchema() *js.Schema {
	return js.Nullable(&js.Schema{
		Type:                 "object",
		Title:                "ExceptionMap",
		AdditionalProperties: js.Nullable(&js.Schema{Type: "object", Title: "PartialCalendarEvent"}),
	})
}

// NewCalendarEvent returns an empty event with a fresh id.
func NewCalendarEvent() CalendarEvent { return calendarEventSchema.New() }

func (r CalendarEvent) ID() string                          { return r.id }
func (r CalendarEvent) ToJSON() any                         { return calendarEventSchema.Encode(r) }
func (CalendarEvent) FromJSON(v any) (CalendarEvent, error) { return calendarEventSchema.Decode(v) }
func (CalendarEvent) JSONSchema() *js.Schema                { return calendarEventSchema.JSONSchema() }

func (r CalendarEvent) UpdatedWith(p PartialCalendarEvent) CalendarEvent {
	return calendarEventSchema.UpdatedWith(r, p)
}

func (r CalendarEvent) ToPartial() PartialCalendarEvent { return calendarEventSchema.ToPartial(r) }

func (r CalendarEvent) ToFilteredPartial(properties []string) PartialCalendarEvent {
	return calendarEventSchema.ToFilteredPartial(r, properties)
}

func (p PartialCalendarEvent) RecordID() gojmap.Presence[string] { return p.ID }
func (p PartialCalendarEvent) ToJSON() any                       { return calendarEventSchema.EncodePartial(p) }

func (PartialCalendarEvent) FromJSON(v any) (PartialCalendarEvent, error) {
	return calendarEventSchema.DecodePartial(v)
}

func (PartialCalendarEvent) JSONSchema() *js.Schema { return calendarEventSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[CalendarEvent, PartialCalendarEvent] = CalendarEvent{}
	_ gojmap.PartialRecord[PartialCalendarEvent]         = PartialCalendarEvent{}
)
