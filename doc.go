// Package gojmap provides the typed client data model for a JMAP-style
// mail, calendar and contacts protocol:
//
//   - Presence[T], the "was this property supplied?" marker behind partial records
//   - Codec[T], a bidirectional conversion between typed values and JSON value trees
//   - Record schemas: full records, their partial (patch) form, UpdatedWith and
//     the filtered projections, declared once per record kind as a field table
//   - A stable error model via *ParseError (code, target, JSON Pointer path)
//   - Streaming input via Source with duplicate-key/depth/size enforcement
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Record kinds live under calendars/, contacts/ and mail/; method envelopes
//     and the dispatch union under method/ and protocol/; the CLI under cmd/jmapctl.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c, err := gojmap.Unmarshal(data, gojmap.CodecOf[contacts.Contact]())
//	patch := contacts.PartialContact{Name: gojmap.Present("Bob")}
//	c2 := c.UpdatedWith(patch)
//	wire, err := gojmap.Marshal(c2.ToFilteredPartial([]string{"name"}))
package gojmap
