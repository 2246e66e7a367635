package gojmap

import (
	"sort"
	"sync"

	js "github.com/reoring/gojmap/jsonschema"
)

// Slice returns a codec for JSON arrays whose elements use elem. Decoding
// stops at the first element that fails; the error path carries its index.
// An empty array decodes to a nil slice and a nil slice encodes as [].
func Slice[T any](elem Codec[T]) Codec[[]T] { return sliceCodec[T]{elem: elem} }

type sliceCodec[T any] struct{ elem Codec[T] }

func (c sliceCodec[T]) Decode(v any) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, InvalidJSONType("array")
	}
	if len(arr) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(arr))
	for i, e := range arr {
		x, err := c.elem.Decode(e)
		if err != nil {
			return nil, RebaseIndex(err, i)
		}
		out = append(out, x)
	}
	return out, nil
}

func (c sliceCodec[T]) Encode(v []T) any {
	out := make([]any, 0, len(v))
	for _, e := range v {
		out = append(out, c.elem.Encode(e))
	}
	return out
}

func (c sliceCodec[T]) JSONSchema() *js.Schema { return js.ArrayOf(SchemaOf(c.elem)) }

// Map returns a codec for string-keyed JSON objects whose values use elem.
// Entries are decoded in ascending key order and decoding stops at the first
// failing entry, so the reported error is deterministic.
// An empty object decodes to a nil map and a nil map encodes as {}.
func Map[T any](elem Codec[T]) Codec[map[string]T] { return mapCodec[T]{elem: elem} }

type mapCodec[T any] struct{ elem Codec[T] }

func (c mapCodec[T]) Decode(v any) (map[string]T, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, InvalidJSONType("object")
	}
	if len(obj) == 0 {
		return nil, nil
	}
	out := make(map[string]T, len(obj))
	for _, k := range sortedKeys(obj) {
		x, err := c.elem.Decode(obj[k])
		if err != nil {
			return nil, Rebase(err, k)
		}
		out[k] = x
	}
	return out, nil
}

func (c mapCodec[T]) Encode(v map[string]T) any {
	out := make(map[string]any, len(v))
	for k, e := range v {
		out[k] = c.elem.Encode(e)
	}
	return out
}

func (c mapCodec[T]) JSONSchema() *js.Schema { return js.MapOf(SchemaOf(c.elem)) }

// Nullable returns a codec where JSON null maps to nil and any other value is
// decoded by inner.
func Nullable[T any](inner Codec[T]) Codec[*T] { return nullableCodec[T]{inner: inner} }

type nullableCodec[T any] struct{ inner Codec[T] }

func (c nullableCodec[T]) Decode(v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	x, err := c.inner.Decode(v)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

func (c nullableCodec[T]) Encode(v *T) any {
	if v == nil {
		return nil
	}
	return c.inner.Encode(*v)
}

func (c nullableCodec[T]) JSONSchema() *js.Schema { return js.Nullable(SchemaOf(c.inner)) }

// NullableSlice is Slice for properties where null stands for "no list":
// null decodes to nil and an empty or nil slice encodes as null.
func NullableSlice[T any](elem Codec[T]) Codec[[]T] {
	return orNull[[]T]{inner: Slice(elem), empty: func(v []T) bool { return len(v) == 0 }}
}

// NullableMap is the Map counterpart of NullableSlice.
func NullableMap[T any](elem Codec[T]) Codec[map[string]T] {
	return orNull[map[string]T]{inner: Map(elem), empty: func(v map[string]T) bool { return len(v) == 0 }}
}

type orNull[T any] struct {
	inner Codec[T]
	empty func(T) bool
}

func (c orNull[T]) Decode(v any) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	return c.inner.Decode(v)
}

func (c orNull[T]) Encode(v T) any {
	if c.empty(v) {
		return nil
	}
	return c.inner.Encode(v)
}

func (c orNull[T]) JSONSchema() *js.Schema { return js.Nullable(SchemaOf(c.inner)) }

// Lazy defers building a codec until first use. Recursive types (a record
// whose field holds partial records of the same kind) use it to break the
// initialization cycle.
func Lazy[T any](build func() Codec[T]) Codec[T] { return &lazyCodec[T]{build: build} }

type lazyCodec[T any] struct {
	build func() Codec[T]
	once  sync.Once
	c     Codec[T]
}

func (l *lazyCodec[T]) get() Codec[T] {
	l.once.Do(func() { l.c = l.build() })
	return l.c
}

func (l *lazyCodec[T]) Decode(v any) (T, error) { return l.get().Decode(v) }
func (l *lazyCodec[T]) Encode(v T) any          { return l.get().Encode(v) }

// JSONSchema does not expand the inner codec, which may refer back to the
// type being described.
func (l *lazyCodec[T]) JSONSchema() *js.Schema { return &js.Schema{Type: "object"} }

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
