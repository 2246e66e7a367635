package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// Date is a calendar date whose parts may each be unknown (zero), as in a
// birthday without a year: "0000-12-25".
type Date struct {
	Year  uint16
	Month uint16
	Day   uint16
}

// HasYear reports whether the year is known.
func (d Date) HasYear() bool { return d.Year != 0 }

// IsZero reports whether every part is unknown.
func (d Date) IsZero() bool { return d == Date{} }

// String returns the YYYY-MM-DD wire form; unknown parts are zero-filled.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day) }

// ParseDate parses YYYY-MM-DD. There must be exactly three numeric parts,
// the month at most 12 and the day at most 31.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q: want 3 parts, got %d", s, len(parts))
	}
	var n [3]uint16
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %w", s, err)
		}
		n[i] = uint16(v)
	}
	d := Date{Year: n[0], Month: n[1], Day: n[2]}
	if d.Month > 12 || d.Day > 31 {
		return Date{}, fmt.Errorf("date %q: month or day out of range", s)
	}
	return d, nil
}

// DateCodec returns the codec for Date.
func DateCodec() gojmap.Codec[Date] { return dateCodec{} }

type dateCodec struct{}

func (dateCodec) Decode(v any) (Date, error) {
	s, ok := v.(string)
	if !ok {
		return Date{}, gojmap.InvalidJSONType("Date")
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, &gojmap.ParseError{Code: gojmap.CodeInvalidStructure, Target: "Date", Cause: err}
	}
	return d, nil
}

func (dateCodec) Encode(d Date) any { return d.String() }

func (dateCodec) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Pattern: `^\d{4}-\d{2}-\d{2}$`}
}
