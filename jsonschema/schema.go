// Package jsonschema holds the subset of JSON Schema that record schemas
// are described with.
package jsonschema

// Schema is one JSON Schema node.
type Schema struct {
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Pattern     string `json:"pattern,omitempty"`

	Minimum *float64 `json:"minimum,omitempty"`

	// objects
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// arrays
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Nullable returns a schema accepting null or anything s accepts.
func Nullable(s *Schema) *Schema {
	return &Schema{OneOf: []*Schema{{Type: "null"}, s}}
}

// ArrayOf returns an array schema whose items follow s.
func ArrayOf(s *Schema) *Schema { return &Schema{Type: "array", Items: s} }

// MapOf returns an object schema whose values follow s.
func MapOf(s *Schema) *Schema { return &Schema{Type: "object", AdditionalProperties: s} }
