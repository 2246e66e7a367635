package gojmap

import (
	"encoding/json"
	"strconv"
	"strings"

	js "github.com/reoring/gojmap/jsonschema"
)

// Codec converts between a typed value and its JSON value tree.
//
// A value tree is built from map[string]any, []any, string, bool, nil and
// numbers. Sources produced by this package yield json.Number; Decode also
// accepts Go integer and float64 values produced by other decoders.
//
// Decode is fallible and must not retain v. Encode is total.
//
// Round trips are exact except for empty collections: a nil and an empty
// slice (or map) share the wire form [] ({}), and both decode to nil.
type Codec[T any] interface {
	Decode(v any) (T, error)
	Encode(v T) any
}

// SchemaProvider is implemented by codecs that can describe their wire
// shape as JSON Schema.
type SchemaProvider interface {
	JSONSchema() *js.Schema
}

// SchemaOf returns the JSON Schema of c, or an empty schema when c does not
// describe itself.
func SchemaOf[T any](c Codec[T]) *js.Schema {
	if sp, ok := c.(SchemaProvider); ok {
		return sp.JSONSchema()
	}
	return &js.Schema{}
}

// SelfCodec is implemented by types that carry their own conversion pair.
// FromJSON ignores its receiver and returns a freshly decoded value.
type SelfCodec[T any] interface {
	ToJSON() any
	FromJSON(v any) (T, error)
}

// CodecOf adapts a self-converting type to a Codec.
func CodecOf[T SelfCodec[T]]() Codec[T] { return selfCodec[T]{} }

type selfCodec[T SelfCodec[T]] struct{}

func (selfCodec[T]) Decode(v any) (T, error) {
	var zero T
	return zero.FromJSON(v)
}

func (selfCodec[T]) Encode(v T) any { return v.ToJSON() }

func (selfCodec[T]) JSONSchema() *js.Schema {
	var zero T
	if sp, ok := any(zero).(SchemaProvider); ok {
		return sp.JSONSchema()
	}
	return &js.Schema{Type: "object"}
}

// ---- primitives ----

// String returns the codec for JSON strings.
func String() Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Decode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", InvalidJSONType("string")
	}
	return s, nil
}

func (stringCodec) Encode(v string) any    { return v }
func (stringCodec) JSONSchema() *js.Schema { return &js.Schema{Type: "string"} }

// Bool returns the codec for JSON booleans.
func Bool() Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Decode(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, InvalidJSONType("bool")
	}
	return b, nil
}

func (boolCodec) Encode(v bool) any      { return v }
func (boolCodec) JSONSchema() *js.Schema { return &js.Schema{Type: "boolean"} }

// Uint64 returns the codec for unsigned integers. Any integer representation
// is accepted; negative values are rejected as invalid structure.
func Uint64() Codec[uint64] { return uint64Codec{} }

type uint64Codec struct{}

func (uint64Codec) Decode(v any) (uint64, error) {
	const name = "uint64"
	n, ok := toNumber(v)
	if !ok || !isIntegerText(n) {
		return 0, InvalidJSONType(name)
	}
	u, err := strconv.ParseUint(n, 10, 64)
	if err != nil {
		// negative or out of range
		return 0, InvalidStructure(name)
	}
	return u, nil
}

func (uint64Codec) Encode(v uint64) any { return v }
func (uint64Codec) JSONSchema() *js.Schema {
	min := 0.0
	return &js.Schema{Type: "integer", Minimum: &min}
}

// Int64 returns the codec for signed 64-bit integers.
func Int64() Codec[int64] { return intCodec[int64]{name: "int64", bits: 64} }

// Int32 returns the codec for signed 32-bit integers.
func Int32() Codec[int32] { return intCodec[int32]{name: "int32", bits: 32} }

type intCodec[T int32 | int64] struct {
	name string
	bits int
}

func (c intCodec[T]) Decode(v any) (T, error) {
	n, ok := toNumber(v)
	if !ok || !isIntegerText(n) {
		return 0, InvalidJSONType(c.name)
	}
	i, err := strconv.ParseInt(n, 10, c.bits)
	if err != nil {
		return 0, InvalidStructure(c.name)
	}
	return T(i), nil
}

func (c intCodec[T]) Encode(v T) any         { return int64(v) }
func (c intCodec[T]) JSONSchema() *js.Schema { return &js.Schema{Type: "integer"} }

// toNumber returns the decimal text of a numeric tree value.
func toNumber(v any) (string, bool) {
	switch n := v.(type) {
	case json.Number:
		return string(n), true
	case int:
		return strconv.Itoa(n), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	default:
		return "", false
	}
}

// isIntegerText reports whether n is an integer literal. Text with a
// decimal point or exponent is a float on the wire.
func isIntegerText(n string) bool {
	return n != "" && !strings.ContainsAny(n, ".eE")
}
