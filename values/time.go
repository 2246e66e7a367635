// Package values holds the value types shared by several record kinds: the
// wire date formats and file references.
package values

import (
	"fmt"
	"time"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// Wire layouts.
const (
	// DateTimeLayout is a UTC instant, always written with a Z suffix.
	DateTimeLayout = "2006-01-02T15:04:05Z"
	// LocalDateTimeLayout is a wall-clock time with no zone.
	LocalDateTimeLayout = "2006-01-02T15:04:05"
)

// DateTime returns the codec for UTC instants. Input may carry any RFC 3339
// offset; it is normalized to UTC and truncated to whole seconds, matching
// what the wire form can hold.
func DateTime() gojmap.Codec[time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

func (dateTimeCodec) Decode(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, gojmap.InvalidJSONType("DateTime")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &gojmap.ParseError{Code: gojmap.CodeInvalidStructure, Target: "DateTime", Cause: err}
	}
	return t.UTC().Truncate(time.Second), nil
}

func (dateTimeCodec) Encode(t time.Time) any { return t.UTC().Format(DateTimeLayout) }

func (dateTimeCodec) JSONSchema() *js.Schema { return &js.Schema{Type: "string", Format: "date-time"} }

// LocalDateTime returns the codec for zone-less wall-clock times. Decoded
// values carry time.UTC as a placeholder location.
func LocalDateTime() gojmap.Codec[time.Time] { return localDateTimeCodec{} }

type localDateTimeCodec struct{}

func (localDateTimeCodec) Decode(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, gojmap.InvalidJSONType("LocalDateTime")
	}
	t, err := ParseLocalDateTime(s)
	if err != nil {
		return time.Time{}, &gojmap.ParseError{Code: gojmap.CodeInvalidStructure, Target: "LocalDateTime", Cause: err}
	}
	return t, nil
}

func (localDateTimeCodec) Encode(t time.Time) any { return FormatLocalDateTime(t) }

func (localDateTimeCodec) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`}
}

// ParseLocalDateTime parses the zone-less wire form. Only the exact layout
// is accepted; fractional seconds are rejected since they cannot be written
// back.
func ParseLocalDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	if FormatLocalDateTime(t) != s {
		return time.Time{}, fmt.Errorf("local date-time %q: extra precision or padding", s)
	}
	return t, nil
}

// FormatLocalDateTime writes the wall-clock fields of t, ignoring its zone.
func FormatLocalDateTime(t time.Time) string { return t.Format(LocalDateTimeLayout) }
