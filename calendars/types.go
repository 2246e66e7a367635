package calendars

import (
	"time"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/values"
)

// Frequency is the base unit of a recurrence rule.
type Frequency string

const (
	Yearly   Frequency = "yearly"
	Monthly  Frequency = "monthly"
	Weekly   Frequency = "weekly"
	Daily    Frequency = "daily"
	Hourly   Frequency = "hourly"
	Minutely Frequency = "minutely"
	Secondly Frequency = "secondly"
)

// Recurrence describes how an event repeats. Nil lists and pointers mean
// the rule part is not set.
type Recurrence struct {
	Frequency      Frequency `validate:"required"`
	Interval       *int32
	FirstDayOfWeek *int32
	ByDay          []int32
	ByDate         []int32
	ByMonth        []int32
	ByYearDay      []int32
	ByWeekNo       []int32
	ByHour         []int32
	ByMinute       []int32
	BySecond       []int32
	BySetPosition  []int32
	Count          *uint64
	Until          time.Time
}

func ruleList(name string, sel func(*Recurrence) *[]int32) gojmap.Member[Recurrence] {
	return gojmap.Nilable(name, gojmap.NullableSlice(gojmap.Int32()), sel)
}

var recurrenceCodec gojmap.Codec[Recurrence] = gojmap.Object("Recurrence",
	gojmap.Required("frequency", gojmap.Enum("Frequency", Yearly, Monthly, Weekly, Daily, Hourly, Minutely, Secondly),
		func(r *Recurrence) *Frequency { return &r.Frequency }),
	gojmap.Optional("interval", gojmap.Int32(), func(r *Recurrence) **int32 { return &r.Interval }),
	gojmap.Optional("firstDayOfWeek", gojmap.Int32(), func(r *Recurrence) **int32 { return &r.FirstDayOfWeek }),
	ruleList("byDay", func(r *Recurrence) *[]int32 { return &r.ByDay }),
	ruleList("byDate", func(r *Recurrence) *[]int32 { return &r.ByDate }),
	ruleList("byMonth", func(r *Recurrence) *[]int32 { return &r.ByMonth }),
	ruleList("byYearDay", func(r *Recurrence) *[]int32 { return &r.ByYearDay }),
	ruleList("byWeekNo", func(r *Recurrence) *[]int32 { return &r.ByWeekNo }),
	ruleList("byHour", func(r *Recurrence) *[]int32 { return &r.ByHour }),
	ruleList("byMinute", func(r *Recurrence) *[]int32 { return &r.ByMinute }),
	ruleList("bySecond", func(r *Recurrence) *[]int32 { return &r.BySecond }),
	ruleList("bySetPosition", func(r *Recurrence) *[]int32 { return &r.BySetPosition }),
	gojmap.Optional("count", gojmap.Uint64(), func(r *Recurrence) **uint64 { return &r.Count }),
	gojmap.Required("until", values.LocalDateTime(), func(r *Recurrence) *time.Time { return &r.Until }),
)

// AlertType selects how an alert is delivered.
type AlertType string

const (
	AlertEmail AlertType = "email"
	AlertAlert AlertType = "alert"
)

// Alert fires a number of minutes before the event starts.
type Alert struct {
	MinutesBefore int32
	Type          AlertType `validate:"required"`
}

var alertCodec gojmap.Codec[Alert] = gojmap.Object("Alert",
	gojmap.Required("minutesBefore", gojmap.Int32(), func(a *Alert) *int32 { return &a.MinutesBefore }),
	gojmap.Required("type", gojmap.Enum("AlertType", AlertEmail, AlertAlert), func(a *Alert) *AlertType { return &a.Type }),
)

// Rsvp is a participant's reply. RsvpNone ("") means no reply yet.
type Rsvp string

const (
	RsvpNone  Rsvp = ""
	RsvpYes   Rsvp = "yes"
	RsvpMaybe Rsvp = "maybe"
	RsvpNo    Rsvp = "no"
)

// Participant is the organizer or an attendee of an event.
type Participant struct {
	Name  string
	Email string `validate:"omitempty,email"`
	IsYou bool
	Rsvp  Rsvp
}

var participantCodec gojmap.Codec[Participant] = gojmap.Object("Participant",
	gojmap.Required("name", gojmap.String(), func(p *Participant) *string { return &p.Name }),
	gojmap.Required("email", gojmap.String(), func(p *Participant) *string { return &p.Email }),
	gojmap.Required("isYou", gojmap.Bool(), func(p *Participant) *bool { return &p.IsYou }),
	gojmap.Required("rsvp", gojmap.Enum("Rsvp", RsvpNone, RsvpYes, RsvpMaybe, RsvpNo), func(p *Participant) *Rsvp { return &p.Rsvp }),
)
