package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/check"
)

const contactJSON = `{
	"id": "c1", "name": "Alice", "isFlagged": false, "avatar": null,
	"prefix": "", "firstName": "Alice", "lastName": "Liddell", "suffix": "", "nickname": "",
	"birthday": "0000-00-00", "anniversary": "0000-00-00",
	"company": "", "department": "", "jobTitle": "",
	"emails": [{"type": "personal", "value": "alice@example.com", "label": null}],
	"defaultEmailIndex": 0, "phones": [], "online": [], "addresses": [], "notes": ""
}`

const eventJSON = `{
	"id": "e1", "calendarId": "cal1",
	"summary": "Review", "description": "", "location": "",
	"showAsFree": false, "isAllDay": false,
	"start": "2024-05-01T10:00:00Z", "end": "2024-05-01T11:00:00Z",
	"startTimeZone": null, "endTimeZone": null, "recurrence": null,
	"inclusions": null, "exceptions": null, "alerts": null,
	"organizer": null, "attendees": null, "attachments": null
}`

type result struct {
	out    string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	for _, k := range []string{
		"JMAPCTL_LOG_LEVEL", "JMAPCTL_INPUT_FORMAT", "JMAPCTL_OUTPUT_FORMAT",
		"JMAPCTL_DUPLICATE_KEYS", "JMAPCTL_MAX_DEPTH", "JMAPCTL_MAX_BYTES", "JMAPCTL_LANGUAGE",
	} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	err := Run(args, Streams{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	return result{out: out.String(), stderr: errOut.String(), err: err}
}

func exitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

func TestRun_Usage(t *testing.T) {
	res := run(t, "")
	assert.Equal(t, 2, exitCode(res.err))
	assert.Contains(t, res.out, "Commands:")

	res = run(t, "", "frobnicate")
	assert.Equal(t, 2, exitCode(res.err))

	res = run(t, "", "--help")
	assert.NoError(t, res.err)
	assert.Contains(t, res.out, "export")
}

func TestRun_BatchLogsDegradedCalls(t *testing.T) {
	res := run(t, `[["getContacts", {}, "c1"], ["frobnicate", {}, "c2"]]`, "batch")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[["getContacts",{},"c1"],["error",{"type":"unknownMethod","description":"frobnicate"},"c2"]]`, res.out)
	assert.Contains(t, res.stderr, `"client_id":"c2"`)
	assert.Contains(t, res.stderr, `"error_type":"unknownMethod"`)
	assert.Contains(t, res.stderr, `"service":"jmapctl"`)
}

func TestRun_BatchResponse(t *testing.T) {
	res := run(t, `[["contacts", {"state": "s1", "list": [], "notFound": null}, "r1"], ["error", {"type": "accountNotFound"}, "r2"]]`,
		"batch", "--response")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[["contacts",{"state":"s1","list":null,"notFound":null},"r1"],["error",{"type":"accountNotFound"},"r2"]]`, res.out)
	assert.Contains(t, res.stderr, `"error_type":"accountNotFound"`)
}

func TestRun_BatchDuplicateKeys(t *testing.T) {
	input := `[["getContacts", {"ids": ["a"], "ids": ["b"]}, "c1"]]`

	res := run(t, input, "batch")
	pe, ok := gojmap.AsParseError(res.err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeDuplicateKey, pe.Code)

	t.Setenv("JMAPCTL_DUPLICATE_KEYS", "warn")
	var out, errOut bytes.Buffer
	err := Run([]string{"batch"}, Streams{In: strings.NewReader(input), Out: &out, Err: &errOut})
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "duplicate key")
}

func TestRun_BatchYAMLToCBOR(t *testing.T) {
	input := "- [getContacts, {ids: [a]}, c1]\n"
	res := run(t, input, "-i", "yaml", "-o", "cbor", "batch")
	require.NoError(t, res.err)

	var decoded []any
	require.NoError(t, cbor.Unmarshal([]byte(res.out), &decoded))
	require.Len(t, decoded, 1)
	call, ok := decoded[0].([]any)
	require.True(t, ok)
	assert.Equal(t, "getContacts", call[0])
	assert.Equal(t, "c1", call[2])
}

func TestRun_RecordCheck(t *testing.T) {
	input := `{"id": "k1", "name": "", "color": "not-a-color", "sortOrder": 0,
		"isVisible": true, "mayReadFreeBusy": true, "mayReadItems": true, "mayAddItems": true,
		"mayModifyItems": true, "mayRemoveItems": true, "mayRename": true, "mayDelete": true}`

	res := run(t, input, "record", "-k", "Calendar")
	var cerr *check.Error
	require.ErrorAs(t, res.err, &cerr)
	assert.Len(t, cerr.Violations, 2)

	res = run(t, input, "record", "-k", "Calendar", "--no-check")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"color": "not-a-color"`)
}

func TestRun_RecordPartialYAML(t *testing.T) {
	res := run(t, `{"name": "Bob", "isFlagged": true}`, "-o", "yaml", "record", "--kind", "Contact", "--partial")
	require.NoError(t, res.err)
	assert.Equal(t, "isFlagged: true\nname: Bob\n", res.out)
}

func TestRun_RecordErrors(t *testing.T) {
	res := run(t, `{}`, "record", "-k", "Widget")
	assert.Equal(t, 2, exitCode(res.err))

	res = run(t, `{"id": "c1"}`, "record", "-k", "ContactGroup")
	pe, ok := gojmap.AsParseError(res.err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeMissingField, pe.Code)
}

func TestRun_Schema(t *testing.T) {
	res := run(t, "", "schema", "Mailbox")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"role"`)
	assert.Contains(t, res.out, `"required"`)

	res = run(t, "", "schema")
	assert.Equal(t, 2, exitCode(res.err))
}

func TestRun_ExportVCard(t *testing.T) {
	input := `[` + contactJSON + `, {"id": "g1", "name": "Friends", "contactIds": ["c1"]}]`
	res := run(t, input, "export", "vcard")
	require.NoError(t, res.err)
	assert.Equal(t, 2, strings.Count(res.out, "BEGIN:VCARD"))
	assert.Contains(t, res.out, "FN:Alice")
	assert.Contains(t, res.out, "MEMBER:urn:uuid:c1")
}

func TestRun_ExportICal(t *testing.T) {
	res := run(t, `[`+eventJSON+`]`, "export", "--name", "Work", "ical")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "BEGIN:VCALENDAR")
	assert.Contains(t, res.out, "X-WR-CALNAME:Work")
	assert.Contains(t, res.out, "SUMMARY:Review")
	assert.Contains(t, res.out, "DTSTART:20240501T100000Z")

	res = run(t, `[{"id": "e2"}]`, "export", "ical")
	pe, ok := gojmap.AsParseError(res.err)
	require.True(t, ok)
	assert.Equal(t, "/0", pe.Path)
}
