// Package check validates decoded records against constraints the wire
// codecs do not enforce, such as cross-field ordering or address syntax.
package check

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/contacts"
	eng "github.com/reoring/gojmap/internal/engine"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string { return WireName(f.Name) })
	validate.RegisterStructValidation(contactRules, contacts.Contact{})
	validate.RegisterStructValidation(recurrenceRules, calendars.Recurrence{})
}

// Violation is one failed rule.
type Violation struct {
	// Path is a JSON Pointer to the offending member.
	Path  string
	Rule  string
	Param string
}

func (v Violation) String() string {
	if v.Param != "" {
		return fmt.Sprintf("%s: %s=%s", v.Path, v.Rule, v.Param)
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Rule)
}

// Error lists every violation found in one record.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "check: " + strings.Join(parts, "; ")
}

// Record validates a record or any other struct value. It returns nil or
// an *Error.
func Record(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Violations: make([]Violation, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, Violation{
			Path:  pointer(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// WireName derives the JSON member name from a Go field name:
// CalendarID becomes calendarId, HTMLBody htmlBody and CC cc.
func WireName(field string) string {
	r := []rune(field)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	s := string(r)
	s = strings.ReplaceAll(s, "IDs", "Ids")
	if strings.HasSuffix(s, "ID") {
		s = s[:len(s)-2] + "Id"
	}
	return s
}

// pointer converts a validator namespace such as
// "Contact.emails[0].value" into "/emails/0/value".
func pointer(ns string) string {
	i := strings.IndexByte(ns, '.')
	if i < 0 {
		return ""
	}
	ns = ns[i+1:]
	var (
		out string
		tok strings.Builder
	)
	flush := func() {
		if tok.Len() > 0 {
			out = eng.JoinPointer(out, tok.String())
			tok.Reset()
		}
	}
	for _, c := range ns {
		switch c {
		case '.', '[', ']':
			flush()
		default:
			tok.WriteRune(c)
		}
	}
	flush()
	return out
}

func contactRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(contacts.Contact)
	if len(c.Emails) > 0 && c.DefaultEmailIndex >= uint64(len(c.Emails)) {
		sl.ReportError(c.DefaultEmailIndex, "defaultEmailIndex", "DefaultEmailIndex", "emailindex", fmt.Sprint(len(c.Emails)))
	}
}

// recurrenceRules rejects rules that bound the series by both count and
// end date.
func recurrenceRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(calendars.Recurrence)
	if r.Count != nil && !r.Until.IsZero() {
		sl.ReportError(r.Count, "count", "Count", "excluded_with", "until")
	}
	if r.Interval != nil && *r.Interval < 1 {
		sl.ReportError(r.Interval, "interval", "Interval", "min", "1")
	}
}
