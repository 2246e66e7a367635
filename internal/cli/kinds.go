package cli

import (
	"slices"
	"strings"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/contacts"
	js "github.com/reoring/gojmap/jsonschema"
	"github.com/reoring/gojmap/mail"
)

type schemaRecord[R any, P gojmap.PartialRecord[P]] interface {
	gojmap.Record[R, P]
	JSONSchema() *js.Schema
}

type schemaPartial[P any] interface {
	gojmap.PartialRecord[P]
	JSONSchema() *js.Schema
}

// kind is the type-erased view of one record type.
type kind struct {
	decode        func(any) (gojmap.Encoder, error)
	decodePartial func(any) (gojmap.Encoder, error)
	schema        func() *js.Schema
	partialSchema func() *js.Schema
}

func recordKind[R schemaRecord[R, P], P schemaPartial[P]]() kind {
	var (
		r R
		p P
	)
	return kind{
		decode: func(v any) (gojmap.Encoder, error) {
			out, err := r.FromJSON(v)
			return out, err
		},
		decodePartial: func(v any) (gojmap.Encoder, error) {
			out, err := p.FromJSON(v)
			return out, err
		},
		schema:        r.JSONSchema,
		partialSchema: p.JSONSchema,
	}
}

var kinds = map[string]kind{
	"Calendar":      recordKind[calendars.Calendar, calendars.PartialCalendar](),
	"CalendarEvent": recordKind[calendars.CalendarEvent, calendars.PartialCalendarEvent](),
	"Contact":       recordKind[contacts.Contact, contacts.PartialContact](),
	"ContactGroup":  recordKind[contacts.ContactGroup, contacts.PartialContactGroup](),
	"Mailbox":       recordKind[mail.Mailbox, mail.PartialMailbox](),
	"Message":       recordKind[mail.Message, mail.PartialMessage](),
}

func kindNames() string {
	names := make([]string, 0, len(kinds))
	for n := range kinds {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return kind{}, usageError("unknown kind %q: want one of %s", name, kindNames())
	}
	return k, nil
}
