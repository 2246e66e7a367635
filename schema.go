package gojmap

import (
	js "github.com/reoring/gojmap/jsonschema"
)

// Field is one declared property of a record schema. It binds a wire name
// and codec to the slot in the full record R and the slot in its partial P.
type Field[R, P any] struct {
	name    string
	full    Member[R]
	partial Member[P]
	apply   func(dst *R, src *P)
	project func(src *R, dst *P)
}

// Name returns the wire name.
func (f Field[R, P]) Name() string { return f.name }

// Prop declares a non-nullable property: required in the full record,
// omittable in the partial.
func Prop[R, P, T any](name string, c Codec[T], full func(*R) *T, partial func(*P) *Presence[T]) Field[R, P] {
	return Field[R, P]{
		name:    name,
		full:    Required(name, c, full),
		partial: Omittable(name, c, partial),
		apply: func(dst *R, src *P) {
			if v, ok := partial(src).Get(); ok {
				*full(dst) = v
			}
		},
		project: func(src *R, dst *P) { *partial(dst) = Present(*full(src)) },
	}
}

// NullableProp declares a nullable property. In the full record it is a
// pointer (absent or null decode to nil, nil encodes as null); in the
// partial it is a Presence[*T] so that a patch can set it to null.
func NullableProp[R, P, T any](name string, c Codec[T], full func(*R) **T, partial func(*P) *Presence[*T]) Field[R, P] {
	return Field[R, P]{
		name:    name,
		full:    Optional(name, c, full),
		partial: OmittableNullable(name, c, partial),
		apply: func(dst *R, src *P) {
			if v, ok := partial(src).Get(); ok {
				*full(dst) = v
			}
		},
		project: func(src *R, dst *P) { *partial(dst) = Present(*full(src)) },
	}
}

// NilableProp declares a property whose codec maps null to the zero value,
// typically NullableSlice or NullableMap. The full record holds the plain
// value (nil meaning "none"); the partial holds a Presence of it.
func NilableProp[R, P, T any](name string, c Codec[T], full func(*R) *T, partial func(*P) *Presence[T]) Field[R, P] {
	return Field[R, P]{
		name:    name,
		full:    Nilable(name, c, full),
		partial: Omittable(name, c, partial),
		apply: func(dst *R, src *P) {
			if v, ok := partial(src).Get(); ok {
				*full(dst) = v
			}
		},
		project: func(src *R, dst *P) { *partial(dst) = Present(*full(src)) },
	}
}

// Schema is the field table of one record kind. It implements the full and
// partial conversions plus the patch/projection operations once for every
// record type.
type Schema[R, P any] struct {
	name    string
	id      func(*R) *string
	pid     func(*P) *Presence[string]
	fields  []Field[R, P]
	index   map[string]int
	record  *ObjectCodec[R]
	partial *ObjectCodec[P]
}

// NewSchema builds the schema for record kind name. id and pid select the
// id slot of the full and partial forms; fields lists the remaining
// properties in wire order.
func NewSchema[R, P any](name string, id func(*R) *string, pid func(*P) *Presence[string], fields ...Field[R, P]) *Schema[R, P] {
	s := &Schema[R, P]{name: name, id: id, pid: pid, fields: fields, index: make(map[string]int, len(fields))}
	fullMembers := []Member[R]{Required("id", String(), id)}
	partMembers := []Member[P]{Omittable("id", String(), pid)}
	for i, f := range fields {
		s.index[f.name] = i
		fullMembers = append(fullMembers, f.full)
		partMembers = append(partMembers, f.partial)
	}
	s.record = Object(name, fullMembers...)
	s.partial = Object("Partial"+name, partMembers...)
	return s
}

// Name returns the record kind name.
func (s *Schema[R, P]) Name() string { return s.name }

// Properties lists every wire name, id first.
func (s *Schema[R, P]) Properties() []string {
	out := make([]string, 0, len(s.fields)+1)
	out = append(out, "id")
	for _, f := range s.fields {
		out = append(out, f.name)
	}
	return out
}

// New returns a record with default property values and a fresh id.
func (s *Schema[R, P]) New() R {
	var r R
	*s.id(&r) = NewID()
	return r
}

// Decode converts a JSON object into a full record. Every property is
// required except nullable ones.
func (s *Schema[R, P]) Decode(v any) (R, error) { return s.record.Decode(v) }

// Encode writes every property of r.
func (s *Schema[R, P]) Encode(r R) any { return s.record.Encode(r) }

// DecodePartial converts a JSON object into a partial record; missing keys
// stay Absent.
func (s *Schema[R, P]) DecodePartial(v any) (P, error) { return s.partial.Decode(v) }

// EncodePartial writes only the Present properties of p.
func (s *Schema[R, P]) EncodePartial(p P) any { return s.partial.Encode(p) }

// RecordCodec returns the full-record codec.
func (s *Schema[R, P]) RecordCodec() Codec[R] { return s.record }

// PartialCodec returns the partial-record codec.
func (s *Schema[R, P]) PartialCodec() Codec[P] { return s.partial }

// UpdatedWith returns a copy of r with every Present property of p applied.
func (s *Schema[R, P]) UpdatedWith(r R, p P) R {
	out := r
	if id, ok := s.pid(&p).Get(); ok {
		*s.id(&out) = id
	}
	for _, f := range s.fields {
		f.apply(&out, &p)
	}
	return out
}

// ToPartial projects every property of r.
func (s *Schema[R, P]) ToPartial(r R) P {
	var p P
	*s.pid(&p) = Present(*s.id(&r))
	for _, f := range s.fields {
		f.project(&r, &p)
	}
	return p
}

// ToFilteredPartial projects the id plus the listed properties of r.
func (s *Schema[R, P]) ToFilteredPartial(r R, properties []string) P {
	var p P
	*s.pid(&p) = Present(*s.id(&r))
	for _, name := range properties {
		if i, ok := s.index[name]; ok {
			s.fields[i].project(&r, &p)
		}
	}
	return p
}

// JSONSchema describes the full record.
func (s *Schema[R, P]) JSONSchema() *js.Schema { return s.record.JSONSchema() }

// PartialJSONSchema describes the partial record.
func (s *Schema[R, P]) PartialJSONSchema() *js.Schema { return s.partial.JSONSchema() }
