package calendars_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
)

const standupJSON = `{
	"id": "e1", "calendarId": "cal1",
	"summary": "Standup", "description": "", "location": "Room 4",
	"showAsFree": false, "isAllDay": false,
	"start": "2024-01-01T09:00:00+09:00", "end": "2024-01-01T00:15:00Z",
	"startTimeZone": "Asia/Tokyo", "endTimeZone": null,
	"recurrence": {"frequency": "weekly", "interval": 1, "byDay": [1, 3, 5], "until": "2024-03-01T00:00:00"},
	"inclusions": ["2024-01-06T09:00:00"],
	"exceptions": {
		"2024-01-08T09:00:00": null,
		"2024-01-10T09:00:00": {"location": "Room 7"}
	},
	"alerts": [{"minutesBefore": 10, "type": "alert"}],
	"organizer": {"name": "Ann", "email": "ann@example.com", "isYou": true, "rsvp": ""},
	"attendees": null,
	"attachments": []
}`

func decodeStandup(t *testing.T) calendars.CalendarEvent {
	t.Helper()
	ev, err := gojmap.Unmarshal([]byte(standupJSON), gojmap.CodecOf[calendars.CalendarEvent]())
	require.NoError(t, err)
	return ev
}

func TestCalendarEvent_Decode(t *testing.T) {
	ev := decodeStandup(t)
	assert.Equal(t, "e1", ev.ID())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ev.Start)
	require.NotNil(t, ev.StartTimeZone)
	assert.Equal(t, "Asia/Tokyo", *ev.StartTimeZone)
	assert.Nil(t, ev.EndTimeZone)

	require.NotNil(t, ev.Recurrence)
	assert.Equal(t, calendars.Weekly, ev.Recurrence.Frequency)
	assert.Equal(t, []int32{1, 3, 5}, ev.Recurrence.ByDay)
	assert.Nil(t, ev.Recurrence.ByMonth)
	assert.Nil(t, ev.Recurrence.Count)

	require.Len(t, ev.Exceptions, 2)
	removed, ok := ev.Exceptions["2024-01-08T09:00:00"]
	assert.True(t, ok)
	assert.Nil(t, removed)
	moved := ev.Exceptions["2024-01-10T09:00:00"]
	require.NotNil(t, moved)
	assert.Equal(t, gojmap.Present("Room 7"), moved.Location)
	assert.False(t, moved.Summary.IsPresent())

	assert.Nil(t, ev.Attendees)
	assert.Nil(t, ev.Attachments)
	require.NotNil(t, ev.Organizer)
	assert.Equal(t, calendars.RsvpNone, ev.Organizer.Rsvp)
}

func TestCalendarEvent_RoundTrip(t *testing.T) {
	ev := decodeStandup(t)
	back, err := calendars.CalendarEvent{}.FromJSON(ev.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, ev, back)

	b, err := gojmap.Marshal(ev.ToFilteredPartial([]string{"start", "exceptions", "attendees"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "e1",
		"start": "2024-01-01T00:00:00Z",
		"exceptions": {"2024-01-08T09:00:00": null, "2024-01-10T09:00:00": {"location": "Room 7"}},
		"attendees": null
	}`, string(b))
}

func TestCalendarEvent_BadExceptionKey(t *testing.T) {
	_, err := calendars.PartialCalendarEvent{}.FromJSON(map[string]any{
		"exceptions": map[string]any{"next tuesday": nil},
	})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeInvalidStructure, pe.Code)
	assert.Equal(t, "LocalDateTime", pe.Target)
	assert.Equal(t, "/exceptions/next tuesday", pe.Path)
}

func TestCalendarEvent_FractionalExceptionKeyRejected(t *testing.T) {
	_, err := calendars.PartialCalendarEvent{}.FromJSON(map[string]any{
		"exceptions": map[string]any{
			"2024-01-01T10:00:00":   nil,
			"2024-01-01T10:00:00.5": map[string]any{"summary": "moved"},
		},
	})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeInvalidStructure, pe.Code)
	assert.Equal(t, "LocalDateTime", pe.Target)
	assert.Equal(t, "/exceptions/2024-01-01T10:00:00.5", pe.Path)

	_, err = calendars.PartialCalendarEvent{}.FromJSON(map[string]any{
		"inclusions": []any{"2024-01-01T10:00:00", "2024-01-02T10:00:00.250"},
	})
	pe, ok = gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "/inclusions/1", pe.Path)
}

func TestCalendarEvent_NestedExceptionError(t *testing.T) {
	_, err := calendars.PartialCalendarEvent{}.FromJSON(map[string]any{
		"exceptions": map[string]any{"2024-01-10T09:00:00": map[string]any{"isAllDay": "yes"}},
	})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeInvalidJSONType, pe.Code)
	assert.Equal(t, "/exceptions/2024-01-10T09:00:00/isAllDay", pe.Path)
}

func TestRecurrence_UntilRequired(t *testing.T) {
	_, err := calendars.PartialCalendarEvent{}.FromJSON(map[string]any{
		"recurrence": map[string]any{"frequency": "daily"},
	})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeMissingField, pe.Code)
	assert.Equal(t, "until", pe.Target)
	assert.Equal(t, "/recurrence", pe.Path)
}

func TestCalendarEvent_ClearRecurrence(t *testing.T) {
	ev := decodeStandup(t)
	patch, err := gojmap.Unmarshal([]byte(`{"recurrence":null,"exceptions":null}`), gojmap.CodecOf[calendars.PartialCalendarEvent]())
	require.NoError(t, err)
	assert.True(t, patch.Recurrence.IsPresent())

	out := ev.UpdatedWith(patch)
	assert.Nil(t, out.Recurrence)
	assert.Nil(t, out.Exceptions)
	assert.Equal(t, ev.Summary, out.Summary)
	assert.NotNil(t, ev.Recurrence)
}

func TestCalendar_Defaults(t *testing.T) {
	c := calendars.NewCalendar()
	assert.NotEmpty(t, c.ID())

	c = c.UpdatedWith(calendars.PartialCalendar{Name: gojmap.Present("Work"), MayRename: gojmap.Present(true)})
	b, err := gojmap.Marshal(c.ToFilteredPartial([]string{"name", "mayRename", "mayDelete"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+c.ID()+`","name":"Work","mayRename":true,"mayDelete":false}`, string(b))

	back, err := calendars.Calendar{}.FromJSON(c.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestCalendar_ErrorTargetsNameTheShape(t *testing.T) {
	_, err := calendars.Calendar{}.FromJSON([]any{})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "Calendar", pe.Target)

	_, err = calendars.PartialCalendar{}.FromJSON([]any{})
	pe, ok = gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeInvalidJSONType, pe.Code)
	assert.Equal(t, "PartialCalendar", pe.Target)
}
