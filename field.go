package gojmap

// Field-level helpers used by object codecs. obj is a decoded JSON object;
// errors from nested values come back rebased under the field name.

// DecodeField decodes a required key. An absent key is a missing-field
// error; a present key is decoded by c.
func DecodeField[T any](obj map[string]any, key string, c Codec[T]) (T, error) {
	v, ok := obj[key]
	if !ok {
		var zero T
		return zero, MissingField(key)
	}
	x, err := c.Decode(v)
	if err != nil {
		var zero T
		return zero, Rebase(err, key)
	}
	return x, nil
}

// DecodeOptionalField decodes a nullable key: absent and null both yield nil.
func DecodeOptionalField[T any](obj map[string]any, key string, c Codec[T]) (*T, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	x, err := c.Decode(v)
	if err != nil {
		return nil, Rebase(err, key)
	}
	return &x, nil
}

// DecodePresenceField decodes an omittable key: absent yields Absent, any
// present value (null included) must decode with c.
func DecodePresenceField[T any](obj map[string]any, key string, c Codec[T]) (Presence[T], error) {
	v, ok := obj[key]
	if !ok {
		return Absent[T](), nil
	}
	x, err := c.Decode(v)
	if err != nil {
		return Absent[T](), Rebase(err, key)
	}
	return Present(x), nil
}

// DecodePresenceNullableField decodes an omittable, nullable key: absent
// yields Absent, null yields Present(nil).
func DecodePresenceNullableField[T any](obj map[string]any, key string, c Codec[T]) (Presence[*T], error) {
	return DecodePresenceField(obj, key, Nullable(c))
}

// PutField writes key unconditionally.
func PutField[T any](obj map[string]any, key string, c Codec[T], v T) {
	obj[key] = c.Encode(v)
}

// PutOptionalField writes key, as null when v is nil.
func PutOptionalField[T any](obj map[string]any, key string, c Codec[T], v *T) {
	obj[key] = Nullable(c).Encode(v)
}

// PutPresenceField writes key only when p is Present.
func PutPresenceField[T any](obj map[string]any, key string, c Codec[T], p Presence[T]) {
	if v, ok := p.Get(); ok {
		obj[key] = c.Encode(v)
	}
}

// asObject is the common object type check for codecs of typeName.
func asObject(v any, typeName string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, InvalidJSONType(typeName)
	}
	return obj, nil
}
