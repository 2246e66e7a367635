package cli

import (
	"fmt"

	"github.com/emersion/go-vcard"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/calendars"
	"github.com/reoring/gojmap/check"
	"github.com/reoring/gojmap/contacts"
	"github.com/reoring/gojmap/export"
	"github.com/reoring/gojmap/method"
	"github.com/reoring/gojmap/protocol"
)

func runBatch(e *env, args []string) error {
	fs := subcommandFlags(e, "batch")
	response := fs.Bool("response", false, "decode a response batch instead of a request batch")
	if err := parseSubcommand(fs, args); err != nil {
		return err
	}
	in, err := e.openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	if *response {
		batch, err := protocol.ParseResponseBatch(e.source(in), e.parse)
		if err != nil {
			return err
		}
		for i, call := range batch {
			e.logDegraded(i, call.ClientID, call.MethodError)
		}
		e.log.Debug().Int("calls", len(batch)).Msg("response batch decoded")
		return e.write(batch)
	}

	batch, err := protocol.ParseRequestBatch(e.source(in), e.parse)
	if err != nil {
		return err
	}
	for i, call := range batch {
		e.logDegraded(i, call.ClientID, call.MethodError)
	}
	e.log.Debug().Int("calls", len(batch)).Msg("request batch decoded")
	return e.write(batch)
}

func (e *env) logDegraded(index int, clientID string, get func() (method.MethodError, bool)) {
	me, ok := get()
	if !ok {
		return
	}
	ev := e.log.Warn().Int("index", index).Str("client_id", clientID).Str("error_type", string(me.Type))
	if d, ok := me.Description.Get(); ok {
		ev = ev.Str("description", d)
	}
	ev.Msg("degraded method call")
}

func runRecord(e *env, args []string) error {
	fs := subcommandFlags(e, "record")
	kindName := fs.StringP("kind", "k", "", "record kind, e.g. Contact or CalendarEvent")
	partial := fs.Bool("partial", false, "decode a patch instead of a full record")
	skipCheck := fs.Bool("no-check", false, "skip constraint validation of full records")
	if err := parseSubcommand(fs, args); err != nil {
		return err
	}
	k, err := lookupKind(*kindName)
	if err != nil {
		return err
	}
	v, err := e.readValue(fs.Arg(0))
	if err != nil {
		return err
	}
	if *partial {
		p, err := k.decodePartial(v)
		if err != nil {
			return err
		}
		return e.write(p)
	}
	rec, err := k.decode(v)
	if err != nil {
		return err
	}
	if !*skipCheck {
		if err := check.Record(rec); err != nil {
			return err
		}
	}
	return e.write(rec)
}

func runSchema(e *env, args []string) error {
	fs := subcommandFlags(e, "schema")
	partial := fs.Bool("partial", false, "print the patch schema")
	if err := fs.Parse(args); err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	if fs.NArg() != 1 {
		return usageError("schema: want exactly one kind (%s)", kindNames())
	}
	k, err := lookupKind(fs.Arg(0))
	if err != nil {
		return err
	}
	s := k.schema()
	if *partial {
		s = k.partialSchema()
	}
	tree, err := toTree(s)
	if err != nil {
		return err
	}
	return e.write(tree)
}

// runExport reads an array of records. For vcard the elements are
// contacts, or groups when they carry "contactIds"; for ical they are
// events.
func runExport(e *env, args []string) error {
	fs := subcommandFlags(e, "export")
	name := fs.String("name", "", "calendar name (ical)")
	color := fs.String("color", "", "calendar color (ical)")
	if err := fs.Parse(args); err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return usageError("export: want vcard or ical and at most one input file")
	}
	format := fs.Arg(0)
	if format != "vcard" && format != "ical" {
		return usageError("export: unknown format %q", format)
	}

	v, err := e.readValue(fs.Arg(1))
	if err != nil {
		return err
	}
	items, ok := v.([]any)
	if !ok {
		return gojmap.InvalidJSONType("Array")
	}

	if format == "vcard" {
		cards := make([]vcard.Card, 0, len(items))
		for i, item := range items {
			card, err := decodeCard(item)
			if err != nil {
				return gojmap.RebaseIndex(err, i)
			}
			cards = append(cards, card)
		}
		return export.WriteVCards(e.stdio.Out, cards...)
	}

	events := make([]calendars.CalendarEvent, 0, len(items))
	for i, item := range items {
		ev, err := calendars.CalendarEvent{}.FromJSON(item)
		if err != nil {
			return gojmap.RebaseIndex(err, i)
		}
		events = append(events, ev)
	}
	cal := calendars.NewCalendar()
	cal.Name = *name
	cal.Color = *color
	e.log.Debug().Int("events", len(events)).Msg("exporting calendar")
	return export.WriteICalendar(e.stdio.Out, export.Calendar(cal, events))
}

func decodeCard(item any) (vcard.Card, error) {
	if obj, ok := item.(map[string]any); ok {
		if _, isGroup := obj["contactIds"]; isGroup {
			g, err := contacts.ContactGroup{}.FromJSON(obj)
			if err != nil {
				return nil, err
			}
			return export.GroupCard(g), nil
		}
	}
	c, err := contacts.Contact{}.FromJSON(item)
	if err != nil {
		return nil, err
	}
	if err := check.Record(c); err != nil {
		return nil, fmt.Errorf("contact %q: %w", c.ID(), err)
	}
	return export.ContactCard(c), nil
}
