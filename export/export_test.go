package export_test

import (
	"bytes"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/contacts"
	"github.com/reoring/gojmap/export"
)

const aliceJSON = `{
	"id": "c1", "name": "Alice", "isFlagged": false, "avatar": null,
	"prefix": "", "firstName": "Alice", "lastName": "Liddell", "suffix": "", "nickname": "Al",
	"birthday": "1852-05-04", "anniversary": "0000-12-25",
	"company": "Wonderland Ltd", "department": "", "jobTitle": "Explorer",
	"emails": [
		{"type": "work", "value": "alice@work.example", "label": null},
		{"type": "personal", "value": "alice@example.com", "label": null}
	],
	"defaultEmailIndex": 1,
	"phones": [{"type": "mobile", "value": "+44 1234", "label": null}],
	"online": [{"type": "uri", "value": "https://alice.example", "label": null}],
	"addresses": [{"type": "home", "street": "1 Rabbit Hole", "locality": "Oxford", "region": "", "postcode": "OX1", "country": "UK", "label": null}],
	"notes": "Curious"
}`

const standupJSON = `{
	"id": "e1", "calendarId": "cal1",
	"summary": "Standup", "description": "", "location": "Room 4",
	"showAsFree": false, "isAllDay": false,
	"start": "2024-01-01T00:00:00Z", "end": "2024-01-01T00:15:00Z",
	"startTimeZone": "Asia/Tokyo", "endTimeZone": null,
	"recurrence": {"frequency": "weekly", "byDay": [1, 3, 5], "until": "2024-03-01T00:00:00"},
	"inclusions": ["2024-01-06T09:00:00"],
	"exceptions": {
		"2024-01-08T09:00:00": null,
		"2024-01-10T09:00:00": {"location": "Room 7"}
	},
	"alerts": [{"minutesBefore": 10, "type": "alert"}],
	"organizer": {"name": "Ann", "email": "ann@example.com", "isYou": true, "rsvp": ""},
	"attendees": [{"name": "Bob", "email": "bob@example.com", "isYou": false, "rsvp": "maybe"}],
	"attachments": null
}`

func decode[T gojmap.SelfCodec[T]](t *testing.T, src string) T {
	t.Helper()
	v, err := gojmap.Unmarshal([]byte(src), gojmap.CodecOf[T]())
	require.NoError(t, err)
	return v
}

func TestContactCard(t *testing.T) {
	card := export.ContactCard(decode[contacts.Contact](t, aliceJSON))

	assert.Equal(t, "4.0", card.Value(vcard.FieldVersion))
	assert.Equal(t, "urn:uuid:c1", card.Value(vcard.FieldUID))
	assert.Equal(t, "Alice", card.Value(vcard.FieldFormattedName))
	assert.Equal(t, "18520504", card.Value(vcard.FieldBirthday))
	assert.Equal(t, "--1225", card.Value(vcard.FieldAnniversary))
	assert.Equal(t, "Wonderland Ltd", card.Value(vcard.FieldOrganization))

	name := card.Name()
	require.NotNil(t, name)
	assert.Equal(t, "Liddell", name.FamilyName)
	assert.Equal(t, "Alice", name.GivenName)

	emails := card[vcard.FieldEmail]
	require.Len(t, emails, 2)
	assert.Equal(t, vcard.TypeWork, emails[0].Params.Get(vcard.ParamType))
	assert.Empty(t, emails[0].Params.Get(vcard.ParamPreferred))
	assert.Equal(t, "1", emails[1].Params.Get(vcard.ParamPreferred))

	tel := card.Get(vcard.FieldTelephone)
	require.NotNil(t, tel)
	assert.Equal(t, vcard.TypeCell, tel.Params.Get(vcard.ParamType))
	assert.Equal(t, "https://alice.example", card.Value(vcard.FieldURL))

	addr := card.Address()
	require.NotNil(t, addr)
	assert.Equal(t, "Oxford", addr.Locality)
	assert.Equal(t, "OX1", addr.PostalCode)
}

func TestContactCard_FormattedNameFallback(t *testing.T) {
	c := contacts.NewContact()
	c.FirstName = "Bob"
	c.LastName = "Builder"
	assert.Equal(t, "Bob Builder", export.ContactCard(c).Value(vcard.FieldFormattedName))

	c = contacts.NewContact()
	c.Company = "ACME"
	assert.Equal(t, "ACME", export.ContactCard(c).Value(vcard.FieldFormattedName))
}

func TestWriteVCards_RoundTrip(t *testing.T) {
	alice := decode[contacts.Contact](t, aliceJSON)
	group := decode[contacts.ContactGroup](t, `{"id": "g1", "name": "Friends", "contactIds": ["c1", "urn:x:c2"]}`)

	var buf bytes.Buffer
	require.NoError(t, export.WriteVCards(&buf, export.ContactCard(alice), export.GroupCard(group)))

	dec := vcard.NewDecoder(&buf)
	first, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Alice", first.Value(vcard.FieldFormattedName))
	assert.Equal(t, "Curious", first.Value(vcard.FieldNote))

	second, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, "group", second.Value(vcard.FieldKind))
	assert.Equal(t, "Friends", second.Value(vcard.FieldFormattedName))
	assert.Equal(t, []string{"urn:uuid:c1", "urn:x:c2"}, second.Values(vcard.FieldMember))
	assert.Equal(t, first.Value(vcard.FieldUID), second.Values(vcard.FieldMember)[0])
}

func TestRecurrenceRule(t *testing.T) {
	count := uint64(4)
	first := int32(1)
	opt := export.RecurrenceRule(calendars.Recurrence{
		Frequency:      calendars.Monthly,
		FirstDayOfWeek: &first,
		ByDay:          []int32{-6, 12},
		Count:          &count,
	})
	assert.Equal(t, rrule.MONTHLY, opt.Freq)
	assert.Equal(t, 4, opt.Count)
	assert.Equal(t, rrule.MO, opt.Wkst)
	require.Len(t, opt.Byweekday, 2)
	assert.Equal(t, rrule.MO.Nth(-1), opt.Byweekday[0])
	assert.Equal(t, rrule.FR.Nth(1), opt.Byweekday[1])
}

func TestWriteICalendar(t *testing.T) {
	ev := decode[calendars.CalendarEvent](t, standupJSON)
	cal := calendars.NewCalendar()
	cal.Name = "Work"
	cal.Color = "#3a87ad"

	var buf bytes.Buffer
	require.NoError(t, export.WriteICalendar(&buf, export.Calendar(cal, []calendars.CalendarEvent{ev})))

	back, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	name, err := back.Props.Text("X-WR-CALNAME")
	require.NoError(t, err)
	assert.Equal(t, "Work", name)

	events := back.Events()
	require.Len(t, events, 2)

	master := events[0]
	uid, err := master.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "e1", uid)
	summary, err := master.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Standup", summary)

	start := master.Props.Get(ical.PropDateTimeStart)
	require.NotNil(t, start)
	assert.Equal(t, "20240101T090000", start.Value)
	assert.Equal(t, "Asia/Tokyo", start.Params.Get(ical.ParamTimezoneID))

	rule := master.Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rule)
	assert.True(t, strings.Contains(rule.Value, "FREQ=WEEKLY"), rule.Value)
	assert.True(t, strings.Contains(rule.Value, "BYDAY=MO,WE,FR"), rule.Value)
	assert.True(t, strings.Contains(rule.Value, "UNTIL=20240301T"), rule.Value)

	assert.Equal(t, "20240108T090000", master.Props.Get(ical.PropExceptionDates).Value)
	assert.Equal(t, "20240106T090000", master.Props.Get(ical.PropRecurrenceDates).Value)

	organizer := master.Props.Get(ical.PropOrganizer)
	require.NotNil(t, organizer)
	assert.Equal(t, "mailto:ann@example.com", organizer.Value)
	assert.Equal(t, "Ann", organizer.Params.Get(ical.ParamCommonName))
	attendee := master.Props.Get(ical.PropAttendee)
	require.NotNil(t, attendee)
	assert.Equal(t, "TENTATIVE", attendee.Params.Get(ical.ParamParticipationStatus))

	require.Len(t, master.Children, 1)
	alarm := master.Children[0]
	assert.Equal(t, ical.CompAlarm, alarm.Name)
	assert.Equal(t, "-PT10M", alarm.Props.Get(ical.PropTrigger).Value)

	override := events[1]
	assert.Equal(t, "20240110T090000", override.Props.Get(ical.PropRecurrenceID).Value)
	location, err := override.Props.Text(ical.PropLocation)
	require.NoError(t, err)
	assert.Equal(t, "Room 7", location)
}

func TestEventComponent_AllDay(t *testing.T) {
	ev := decode[calendars.CalendarEvent](t, standupJSON)
	ev.IsAllDay = true
	ev.ShowAsFree = true
	comp := export.EventComponent(ev)

	start := comp.Props.Get(ical.PropDateTimeStart)
	require.NotNil(t, start)
	assert.Equal(t, "20240101", start.Value)
	assert.Equal(t, ical.ValueDate, start.ValueType())
	transp, err := comp.Props.Text(ical.PropTransparency)
	require.NoError(t, err)
	assert.Equal(t, "TRANSPARENT", transp)
}
