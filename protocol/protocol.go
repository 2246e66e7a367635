// Package protocol assembles the method registry covering every record kind
// and the mail-only calls.
package protocol

import (
	"sync"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/contacts"
	"github.com/reoring/gojmap/mail"
	"github.com/reoring/gojmap/method"
)

// Record call names.
var (
	CalendarNames      = method.RecordNames("Calendar", "Calendars")
	CalendarEventNames = method.RecordNames("CalendarEvent", "CalendarEvents")
	ContactNames       = method.RecordNames("Contact", "Contacts")
	ContactGroupNames  = method.RecordNames("ContactGroup", "ContactGroups")
	MailboxNames       = method.RecordNames("Mailbox", "Mailboxes")
	MessageNames       = method.RecordNames("Message", "Messages")
)

// NewRegistry returns a registry with every call of this module.
func NewRegistry() *method.Registry {
	r := method.NewRegistry()
	method.RegisterRecord[calendars.PartialCalendar](r, CalendarNames)
	method.RegisterRecord[calendars.PartialCalendarEvent](r, CalendarEventNames)
	method.RegisterRecord[contacts.PartialContact](r, ContactNames)
	method.RegisterRecord[contacts.PartialContactGroup](r, ContactGroupNames)
	mail.RegisterCalls(r)
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *method.Registry
)

// Default returns the shared registry built by NewRegistry.
func Default() *method.Registry {
	defaultOnce.Do(func() { defaultReg = NewRegistry() })
	return defaultReg
}

// ParseRequestBatch streams a request batch from src with the default
// registry.
func ParseRequestBatch(src gojmap.Source, opts ...gojmap.ParseOpt) (method.RequestBatch, error) {
	return Default().ParseRequestBatch(src, opts...)
}

// ParseResponseBatch streams a response batch from src with the default
// registry.
func ParseResponseBatch(src gojmap.Source, opts ...gojmap.ParseOpt) (method.ResponseBatch, error) {
	return Default().ParseResponseBatch(src, opts...)
}
