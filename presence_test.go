package gojmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gojmap"
)

func TestPresence_ZeroIsAbsent(t *testing.T) {
	var p gojmap.Presence[string]
	assert.False(t, p.IsPresent())
	assert.Equal(t, gojmap.Absent[string](), p)
	assert.Equal(t, "fallback", p.OrElse("fallback"))
}

func TestPresence_FieldHelpers(t *testing.T) {
	obj := map[string]any{"name": "Bob", "nickname": nil}

	name, err := gojmap.DecodePresenceField(obj, "name", gojmap.String())
	require.NoError(t, err)
	assert.Equal(t, gojmap.Present("Bob"), name)

	missing, err := gojmap.DecodePresenceField(obj, "company", gojmap.String())
	require.NoError(t, err)
	assert.False(t, missing.IsPresent())

	// null is not a string: a plain Presence field rejects it
	_, err = gojmap.DecodePresenceField(obj, "nickname", gojmap.String())
	require.Error(t, err)

	nick, err := gojmap.DecodePresenceNullableField(obj, "nickname", gojmap.String())
	require.NoError(t, err)
	v, ok := nick.Get()
	assert.True(t, ok)
	assert.Nil(t, v)

	out := map[string]any{}
	gojmap.PutPresenceField(out, "name", gojmap.String(), name)
	gojmap.PutPresenceField(out, "company", gojmap.String(), missing)
	assert.Equal(t, map[string]any{"name": "Bob"}, out)
}

func TestPresence_NullableEncodesNull(t *testing.T) {
	out := map[string]any{}
	gojmap.PutPresenceField(out, "role", gojmap.Nullable(gojmap.String()), gojmap.Present[*string](nil))
	v, ok := out["role"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
