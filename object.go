package gojmap

import (
	js "github.com/reoring/gojmap/jsonschema"
)

// Member describes one property of an object codec: its wire name and how
// it is read from and written to the Go struct T.
type Member[T any] struct {
	name     string
	required bool
	decode   func(obj map[string]any, dst *T) error
	encode   func(src *T, obj map[string]any)
	schema   func() *js.Schema
}

// Name returns the wire name.
func (m Member[T]) Name() string { return m.name }

// Required declares a property that must be present on decode and is always
// written on encode.
func Required[T, F any](name string, c Codec[F], sel func(*T) *F) Member[T] {
	return Member[T]{
		name:     name,
		required: true,
		decode: func(obj map[string]any, dst *T) error {
			x, err := DecodeField(obj, name, c)
			if err != nil {
				return err
			}
			*sel(dst) = x
			return nil
		},
		encode: func(src *T, obj map[string]any) { PutField(obj, name, c, *sel(src)) },
		schema: func() *js.Schema { return SchemaOf(c) },
	}
}

// Optional declares a nullable property held as a pointer: absent or null
// decode to nil, and nil is written as null.
func Optional[T, F any](name string, c Codec[F], sel func(*T) **F) Member[T] {
	return Member[T]{
		name: name,
		decode: func(obj map[string]any, dst *T) error {
			x, err := DecodeOptionalField(obj, name, c)
			if err != nil {
				return err
			}
			*sel(dst) = x
			return nil
		},
		encode: func(src *T, obj map[string]any) { PutOptionalField(obj, name, c, *sel(src)) },
		schema: func() *js.Schema { return js.Nullable(SchemaOf(c)) },
	}
}

// Nilable declares a property whose absence decodes to the zero value of F.
// Present values, null included, are handled by c; pair it with
// NullableSlice or NullableMap for optional lists and maps.
func Nilable[T, F any](name string, c Codec[F], sel func(*T) *F) Member[T] {
	return Member[T]{
		name: name,
		decode: func(obj map[string]any, dst *T) error {
			v, ok := obj[name]
			if !ok {
				var zero F
				*sel(dst) = zero
				return nil
			}
			x, err := c.Decode(v)
			if err != nil {
				return Rebase(err, name)
			}
			*sel(dst) = x
			return nil
		},
		encode: func(src *T, obj map[string]any) { PutField(obj, name, c, *sel(src)) },
		schema: func() *js.Schema { return SchemaOf(c) },
	}
}

// Omittable declares a property held as a Presence: absent decodes to
// Absent, and Absent is not written.
func Omittable[T, F any](name string, c Codec[F], sel func(*T) *Presence[F]) Member[T] {
	return Member[T]{
		name: name,
		decode: func(obj map[string]any, dst *T) error {
			p, err := DecodePresenceField(obj, name, c)
			if err != nil {
				return err
			}
			*sel(dst) = p
			return nil
		},
		encode: func(src *T, obj map[string]any) { PutPresenceField(obj, name, c, *sel(src)) },
		schema: func() *js.Schema { return SchemaOf(c) },
	}
}

// OmittableNullable declares a property that may be absent, null or a value.
func OmittableNullable[T, F any](name string, c Codec[F], sel func(*T) *Presence[*F]) Member[T] {
	return Omittable(name, Nullable(c), sel)
}

// ObjectCodec converts a Go struct to and from a JSON object using a fixed
// member list. Members are decoded in declaration order and the first
// failure is returned. Unknown keys are ignored.
type ObjectCodec[T any] struct {
	name    string
	members []Member[T]
}

// Object builds an ObjectCodec named typeName.
func Object[T any](typeName string, members ...Member[T]) *ObjectCodec[T] {
	return &ObjectCodec[T]{name: typeName, members: members}
}

// Name returns the type name used in errors.
func (c *ObjectCodec[T]) Name() string { return c.name }

func (c *ObjectCodec[T]) Decode(v any) (T, error) {
	var out T
	obj, err := asObject(v, c.name)
	if err != nil {
		return out, err
	}
	for _, m := range c.members {
		if err := m.decode(obj, &out); err != nil {
			var zero T
			return zero, err
		}
	}
	return out, nil
}

func (c *ObjectCodec[T]) Encode(v T) any {
	obj := make(map[string]any, len(c.members))
	for _, m := range c.members {
		m.encode(&v, obj)
	}
	return obj
}

func (c *ObjectCodec[T]) JSONSchema() *js.Schema {
	return objectSchema(c.name, c.members)
}

func objectSchema[T any](title string, members []Member[T]) *js.Schema {
	s := &js.Schema{Type: "object", Title: title, Properties: make(map[string]*js.Schema, len(members))}
	for _, m := range members {
		s.Properties[m.name] = m.schema()
		if m.required {
			s.Required = append(s.Required, m.name)
		}
	}
	return s
}
