package gojmap

import (
	"slices"

	js "github.com/reoring/gojmap/jsonschema"
)

// Enum returns a codec for a closed vocabulary of string tokens. Unknown
// tokens are invalid structure for typeName; non-strings are an invalid
// JSON type.
func Enum[T ~string](typeName string, tokens ...T) Codec[T] {
	return enumCodec[T]{name: typeName, tokens: tokens}
}

type enumCodec[T ~string] struct {
	name   string
	tokens []T
}

func (c enumCodec[T]) Decode(v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", InvalidJSONType(c.name)
	}
	if !slices.Contains(c.tokens, T(s)) {
		return "", InvalidStructure(c.name)
	}
	return T(s), nil
}

func (c enumCodec[T]) Encode(v T) any { return string(v) }

func (c enumCodec[T]) JSONSchema() *js.Schema {
	vals := make([]any, 0, len(c.tokens))
	for _, t := range c.tokens {
		vals = append(vals, string(t))
	}
	return &js.Schema{Type: "string", Title: c.name, Enum: vals}
}
