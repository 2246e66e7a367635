package values_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/values"
)

func TestDate_Parse(t *testing.T) {
	d, err := values.ParseDate("1985-04-12")
	require.NoError(t, err)
	assert.Equal(t, values.Date{Year: 1985, Month: 4, Day: 12}, d)
	assert.Equal(t, "1985-04-12", d.String())

	d, err = values.ParseDate("0000-12-25")
	require.NoError(t, err)
	assert.False(t, d.HasYear())
	assert.Equal(t, "0000-12-25", d.String())

	for _, bad := range []string{"1985-13-01", "1985-01-32", "1985-01", "1985-01-01-01", "19x5-01-01"} {
		_, err := values.DateCodec().Decode(bad)
		pe, ok := gojmap.AsParseError(err)
		require.True(t, ok, bad)
		assert.Equal(t, gojmap.CodeInvalidStructure, pe.Code, bad)
		assert.Equal(t, "Date", pe.Target)
	}

	_, err = values.DateCodec().Decode(19850412)
	pe, _ := gojmap.AsParseError(err)
	require.NotNil(t, pe)
	assert.Equal(t, gojmap.CodeInvalidJSONType, pe.Code)
}

func TestDateTime_NormalizesToUTC(t *testing.T) {
	c := values.DateTime()
	got, err := c.Decode("2014-10-30T14:12:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, "2014-10-30T05:12:00Z", c.Encode(got))

	back, err := c.Decode(c.Encode(got))
	require.NoError(t, err)
	assert.Equal(t, got, back)

	_, err = c.Decode("yesterday")
	require.Error(t, err)
}

func TestLocalDateTime_RoundTrip(t *testing.T) {
	c := values.LocalDateTime()
	got, err := c.Decode("2016-03-01T09:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 3, 1, 9, 30, 0, 0, time.UTC), got)
	assert.Equal(t, "2016-03-01T09:30:00", c.Encode(got))

	for _, bad := range []string{"2016-03-01T09:30:00Z", "2016-03-01T09:30:00.5", "2016-03-01T09:30:00.000"} {
		_, err = c.Decode(bad)
		pe, ok := gojmap.AsParseError(err)
		require.True(t, ok, bad)
		assert.Equal(t, gojmap.CodeInvalidStructure, pe.Code, bad)
		assert.Equal(t, "LocalDateTime", pe.Target, bad)
	}
}

func TestFile_OptionalMembers(t *testing.T) {
	f, err := values.FileCodec().Decode(map[string]any{"blobId": "b1", "name": "cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "b1", f.BlobID)
	require.NotNil(t, f.Name)
	assert.Nil(t, f.Type)
	assert.Equal(t, map[string]any{"blobId": "b1", "type": nil, "name": "cv.pdf", "size": nil}, values.FileCodec().Encode(f))

	_, err = values.FileCodec().Decode(map[string]any{"name": "x"})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeMissingField, pe.Code)
	assert.Equal(t, "blobId", pe.Target)
}
