package export

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/values"
)

// ProductID is the PRODID written on exported calendars.
const ProductID = "-//gojmap//jmapctl//EN"

const (
	icalDateLayout     = "20060102"
	icalLocalLayout    = "20060102T150405"
	icalDateTimeLayout = "20060102T150405Z"
)

var now = time.Now

// Calendar wraps events in a VCALENDAR named after cal. Events are
// included as given; the caller picks which belong to cal.
func Calendar(cal calendars.Calendar, events []calendars.CalendarEvent) *ical.Calendar {
	out := ical.NewCalendar()
	out.Props.SetText(ical.PropVersion, "2.0")
	out.Props.SetText(ical.PropProductID, ProductID)
	if cal.Name != "" {
		out.Props.SetText("NAME", cal.Name)
		out.Props.SetText("X-WR-CALNAME", cal.Name)
	}
	if cal.Color != "" {
		out.Props.SetText("COLOR", cal.Color)
	}
	for _, ev := range events {
		out.Children = append(out.Children, EventComponents(ev)...)
	}
	return out
}

// EventComponent converts an event into a VEVENT. Overridden occurrences
// from the event's exceptions are not included; see EventComponents.
func EventComponent(ev calendars.CalendarEvent) *ical.Component {
	uid := ev.ID()
	if uid == "" {
		uid = gojmap.NewID()
	}
	comp := ical.NewEvent()
	comp.Props.SetText(ical.PropUID, uid)
	comp.Props.SetDateTime(ical.PropDateTimeStamp, now().UTC())
	if ev.Summary != "" {
		comp.Props.SetText(ical.PropSummary, ev.Summary)
	}
	if ev.Description != "" {
		comp.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		comp.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.ShowAsFree {
		comp.Props.SetText(ical.PropTransparency, "TRANSPARENT")
	} else {
		comp.Props.SetText(ical.PropTransparency, "OPAQUE")
	}
	comp.Props.Set(timeProp(ical.PropDateTimeStart, ev.Start, ev.StartTimeZone, ev.IsAllDay))
	comp.Props.Set(timeProp(ical.PropDateTimeEnd, ev.End, endZone(ev), ev.IsAllDay))

	if ev.Recurrence != nil {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = RecurrenceRule(*ev.Recurrence).RRuleString()
		comp.Props.Set(prop)
	}
	for _, t := range ev.Inclusions {
		comp.Props.Add(localProp(ical.PropRecurrenceDates, t, ev.StartTimeZone))
	}
	for _, key := range sortedKeys(ev.Exceptions) {
		if ev.Exceptions[key] != nil {
			continue
		}
		if t, err := values.ParseLocalDateTime(key); err == nil {
			comp.Props.Add(localProp(ical.PropExceptionDates, t, ev.StartTimeZone))
		}
	}
	if ev.Organizer != nil {
		comp.Props.Set(participantProp(ical.PropOrganizer, *ev.Organizer))
	}
	for _, p := range ev.Attendees {
		comp.Props.Add(participantProp(ical.PropAttendee, p))
	}
	for _, a := range ev.Alerts {
		comp.Children = append(comp.Children, alarm(a, ev.Summary))
	}
	return comp.Component
}

// EventComponents returns the master VEVENT followed by one VEVENT per
// overridden occurrence, each carrying a RECURRENCE-ID.
func EventComponents(ev calendars.CalendarEvent) []*ical.Component {
	master := EventComponent(ev)
	out := []*ical.Component{master}
	uid, _ := master.Props.Text(ical.PropUID)
	for _, key := range sortedKeys(ev.Exceptions) {
		patch := ev.Exceptions[key]
		if patch == nil {
			continue
		}
		rid, err := values.ParseLocalDateTime(key)
		if err != nil {
			continue
		}
		comp := ical.NewEvent()
		comp.Props.SetText(ical.PropUID, uid)
		comp.Props.SetDateTime(ical.PropDateTimeStamp, now().UTC())
		comp.Props.Set(localProp(ical.PropRecurrenceID, rid, ev.StartTimeZone))
		summary := ev.Summary
		if v, ok := patch.Summary.Get(); ok {
			summary = v
		}
		if summary != "" {
			comp.Props.SetText(ical.PropSummary, summary)
		}
		if v, ok := patch.Description.Get(); ok && v != "" {
			comp.Props.SetText(ical.PropDescription, v)
		}
		if v, ok := patch.Location.Get(); ok && v != "" {
			comp.Props.SetText(ical.PropLocation, v)
		}
		allDay := ev.IsAllDay
		if v, ok := patch.IsAllDay.Get(); ok {
			allDay = v
		}
		if v, ok := patch.Start.Get(); ok {
			comp.Props.Set(timeProp(ical.PropDateTimeStart, v, ev.StartTimeZone, allDay))
		} else {
			comp.Props.Set(localProp(ical.PropDateTimeStart, rid, ev.StartTimeZone))
		}
		if v, ok := patch.End.Get(); ok {
			comp.Props.Set(timeProp(ical.PropDateTimeEnd, v, endZone(ev), allDay))
		}
		out = append(out, comp.Component)
	}
	return out
}

// WriteICalendar encodes cal to w.
func WriteICalendar(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("export: icalendar: %w", err)
	}
	return nil
}

var frequencies = map[calendars.Frequency]rrule.Frequency{
	calendars.Yearly:   rrule.YEARLY,
	calendars.Monthly:  rrule.MONTHLY,
	calendars.Weekly:   rrule.WEEKLY,
	calendars.Daily:    rrule.DAILY,
	calendars.Hourly:   rrule.HOURLY,
	calendars.Minutely: rrule.MINUTELY,
	calendars.Secondly: rrule.SECONDLY,
}

// weekdays is indexed by day number, 0 being Sunday.
var weekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RecurrenceRule converts a recurrence into RRULE options. A byDay entry
// is day + 7*n where day is 0 (Sunday) to 6 and n, when non-zero, selects
// the nth occurrence within the period (negative counts from the end).
func RecurrenceRule(r calendars.Recurrence) *rrule.ROption {
	opt := &rrule.ROption{
		Freq:       frequencies[r.Frequency],
		Bymonthday: ints(r.ByDate),
		Bymonth:    ints(r.ByMonth),
		Byyearday:  ints(r.ByYearDay),
		Byweekno:   ints(r.ByWeekNo),
		Byhour:     ints(r.ByHour),
		Byminute:   ints(r.ByMinute),
		Bysecond:   ints(r.BySecond),
		Bysetpos:   ints(r.BySetPosition),
		Until:      r.Until,
	}
	if r.Interval != nil {
		opt.Interval = int(*r.Interval)
	}
	if r.FirstDayOfWeek != nil {
		opt.Wkst = weekdays[mod7(int(*r.FirstDayOfWeek))]
	}
	if r.Count != nil {
		opt.Count = int(*r.Count)
	}
	for _, v := range r.ByDay {
		day := mod7(int(v))
		nth := (int(v) - day) / 7
		wd := weekdays[day]
		if nth != 0 {
			wd = wd.Nth(nth)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	return opt
}

func mod7(n int) int { return ((n % 7) + 7) % 7 }

func ints(in []int32) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func endZone(ev calendars.CalendarEvent) *string {
	if ev.EndTimeZone != nil {
		return ev.EndTimeZone
	}
	return ev.StartTimeZone
}

// timeProp renders a UTC instant. With a loadable zone the local wall time
// is written with TZID, otherwise the UTC form.
func timeProp(name string, t time.Time, zone *string, allDay bool) *ical.Prop {
	prop := ical.NewProp(name)
	if allDay {
		prop.SetValueType(ical.ValueDate)
		prop.Value = t.UTC().Format(icalDateLayout)
		return prop
	}
	if zone != nil {
		if loc, err := time.LoadLocation(*zone); err == nil {
			prop.Params.Set(ical.ParamTimezoneID, *zone)
			prop.Value = t.In(loc).Format(icalLocalLayout)
			return prop
		}
	}
	prop.Value = t.UTC().Format(icalDateTimeLayout)
	return prop
}

// localProp renders a wall-clock time in the event's start zone, or as a
// floating time when the event has none.
func localProp(name string, t time.Time, zone *string) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = t.Format(icalLocalLayout)
	if zone != nil {
		prop.Params.Set(ical.ParamTimezoneID, *zone)
	}
	return prop
}

var partStat = map[calendars.Rsvp]string{
	calendars.RsvpNone:  "NEEDS-ACTION",
	calendars.RsvpYes:   "ACCEPTED",
	calendars.RsvpMaybe: "TENTATIVE",
	calendars.RsvpNo:    "DECLINED",
}

func participantProp(name string, p calendars.Participant) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = "mailto:" + p.Email
	if p.Name != "" {
		prop.Params.Set(ical.ParamCommonName, p.Name)
	}
	if name == ical.PropAttendee {
		prop.Params.Set(ical.ParamParticipationStatus, partStat[p.Rsvp])
	}
	return prop
}

func alarm(a calendars.Alert, summary string) *ical.Component {
	comp := ical.NewComponent(ical.CompAlarm)
	action := "DISPLAY"
	if a.Type == calendars.AlertEmail {
		action = "EMAIL"
	}
	comp.Props.SetText(ical.PropAction, action)
	trigger := ical.NewProp(ical.PropTrigger)
	minutes := int(a.MinutesBefore)
	if minutes >= 0 {
		trigger.Value = "-PT" + strconv.Itoa(minutes) + "M"
	} else {
		trigger.Value = "PT" + strconv.Itoa(-minutes) + "M"
	}
	comp.Props.Set(trigger)
	comp.Props.SetText(ical.PropDescription, summary)
	if a.Type == calendars.AlertEmail {
		comp.Props.SetText(ical.PropSummary, summary)
	}
	return comp
}

func sortedKeys(m calendars.ExceptionMap) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
