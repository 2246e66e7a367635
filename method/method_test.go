package method_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/contacts"
	"github.com/reoring/gojmap/method"
)

func newRegistry() *method.Registry {
	r := method.NewRegistry()
	method.RegisterRecord[contacts.PartialContact](r, method.RecordNames("Contact", "Contacts"))
	return r
}

func decodeJSON(t *testing.T, s string) any {
	t.Helper()
	v, err := gojmap.ReadValue(gojmap.JSONBytes([]byte(s)))
	require.NoError(t, err)
	return v
}

func TestRecordNames(t *testing.T) {
	n := method.RecordNames("Mailbox", "Mailboxes")
	assert.Equal(t, method.Names{
		Get:                "getMailboxes",
		GetUpdates:         "getMailboxUpdates",
		Set:                "setMailboxes",
		GetResponse:        "mailboxes",
		GetUpdatesResponse: "mailboxUpdates",
		SetResponse:        "mailboxesSet",
	}, n)
}

func TestGetRequestArgs_RoundTrip(t *testing.T) {
	args, err := method.GetRequestArgs{}.FromJSON(decodeJSON(t, `{"ids":["a","b"],"sinceState":"s1"}`))
	require.NoError(t, err)
	assert.Equal(t, gojmap.Present([]string{"a", "b"}), args.IDs)
	assert.False(t, args.Properties.IsPresent())
	assert.Equal(t, gojmap.Present("s1"), args.SinceState)

	b, err := gojmap.Marshal(args)
	require.NoError(t, err)
	assert.Equal(t, `{"ids":["a","b"],"sinceState":"s1"}`, string(b))
}

func TestSetRequestArgs_Create(t *testing.T) {
	args, err := method.SetRequestArgs[contacts.PartialContact]{}.FromJSON(decodeJSON(t, `{"create":{"tmp1":{"name":"Bob"}}}`))
	require.NoError(t, err)
	assert.False(t, args.IfInState.IsPresent())
	assert.False(t, args.Update.IsPresent())
	assert.False(t, args.Destroy.IsPresent())

	create, ok := args.Create.Get()
	require.True(t, ok)
	require.Contains(t, create, "tmp1")
	assert.Equal(t, contacts.PartialContact{Name: gojmap.Present("Bob")}, create["tmp1"])
}

func TestGetRequestArgs_EmptyIDsNormalizeToNil(t *testing.T) {
	in := method.GetRequestArgs{IDs: gojmap.Present([]string{})}
	assert.Equal(t, map[string]any{"ids": []any{}}, in.ToJSON())

	out, err := method.GetRequestArgs{}.FromJSON(in.ToJSON())
	require.NoError(t, err)
	ids, ok := out.IDs.Get()
	require.True(t, ok)
	assert.Nil(t, ids)
	assert.Equal(t, in.ToJSON(), out.ToJSON())
}

func TestGetUpdatesRequestArgs_RoundTrip(t *testing.T) {
	in := method.GetUpdatesRequestArgs{
		SinceState:   "s7",
		MaxChanges:   gojmap.Present(uint64(50)),
		FetchRecords: gojmap.Present(true),
	}
	out, err := method.GetUpdatesRequestArgs{}.FromJSON(in.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = method.GetUpdatesRequestArgs{}.FromJSON(map[string]any{})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeMissingField, pe.Code)
	assert.Equal(t, "sinceState", pe.Target)
}

func TestGetResponseArgs_NullList(t *testing.T) {
	args, err := method.GetResponseArgs[contacts.PartialContact]{}.FromJSON(decodeJSON(t, `{"state":"s2","list":null}`))
	require.NoError(t, err)
	assert.Nil(t, args.List)
	assert.Nil(t, args.NotFound)

	b, err := gojmap.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"s2","list":null,"notFound":null}`, string(b))
}

func TestSetResponseArgs_RoundTrip(t *testing.T) {
	desc := "name is required"
	in := method.SetResponseArgs[contacts.PartialContact]{
		NewState:   "s3",
		Created:    map[string]contacts.PartialContact{"tmp1": {ID: gojmap.Present("c9")}},
		Updated:    []string{"c1"},
		NotCreated: map[string]method.SetError{"tmp2": {Type: "invalidProperties", Description: &desc}},
	}
	b, err := gojmap.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"oldState": null, "newState": "s3",
		"created": {"tmp1": {"id": "c9"}},
		"updated": ["c1"], "destroyed": [],
		"notCreated": {"tmp2": {"type": "invalidProperties", "description": "name is required"}},
		"notUpdated": {}, "notDestroyed": {}
	}`, string(b))

	out, err := method.SetResponseArgs[contacts.PartialContact]{}.FromJSON(in.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMethodError_Descriptions(t *testing.T) {
	e, err := method.MethodError{}.FromJSON(map[string]any{"type": "stateMismatch", "description": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, method.MethodError{Type: method.StateMismatch}, e)
	assert.Equal(t, map[string]any{"type": "stateMismatch"}, e.ToJSON())

	e, err = method.MethodError{}.FromJSON(map[string]any{"type": "invalidArguments", "description": "bad ids"})
	require.NoError(t, err)
	assert.Equal(t, gojmap.Present("bad ids"), e.Description)
	assert.EqualError(t, e, "invalidArguments: bad ids")

	_, err = method.MethodError{}.FromJSON(map[string]any{"type": "somethingElse"})
	assert.True(t, errors.Is(err, gojmap.InvalidStructure("MethodError")))
}

func TestDecodeRequest_UnknownMethod(t *testing.T) {
	m, err := newRegistry().DecodeRequest(decodeJSON(t, `["bogusMethodName", {}, "client-42"]`))
	require.NoError(t, err)
	assert.True(t, m.IsError())
	assert.Equal(t, "client-42", m.ClientID)
	me, ok := m.MethodError()
	require.True(t, ok)
	assert.Equal(t, method.MethodError{Type: method.UnknownMethod, Description: gojmap.Present("bogusMethodName")}, me)
}

func TestDecodeRequest_HardFailures(t *testing.T) {
	r := newRegistry()

	_, err := r.DecodeRequest(decodeJSON(t, `["getContacts", {}]`))
	assert.True(t, errors.Is(err, gojmap.InvalidStructure("RequestMethod")))

	_, err = r.DecodeRequest(decodeJSON(t, `{"name": "getContacts"}`))
	assert.True(t, errors.Is(err, gojmap.InvalidJSONType("RequestMethod")))

	_, err = r.DecodeRequest(decodeJSON(t, `[1, {}, "c1"]`))
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeInvalidJSONType, pe.Code)
	assert.Equal(t, "/0", pe.Path)

	_, err = r.DecodeRequest(decodeJSON(t, `["getContacts", {}, 7]`))
	pe, ok = gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "/2", pe.Path)
}

func TestRequestBatch_MixedValidity(t *testing.T) {
	r := newRegistry()
	batch, err := r.DecodeRequestBatch(decodeJSON(t, `[["getContacts", {}, "c1"], ["frobnicate", {}, "c2"]]`))
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.Equal(t, "getContacts", batch[0].Name)
	assert.Equal(t, method.GetRequestArgs{}, batch[0].Args)
	assert.True(t, batch[1].IsError())
	assert.Equal(t, "c2", batch[1].ClientID)

	b, err := gojmap.Marshal(batch)
	require.NoError(t, err)
	assert.JSONEq(t, `[["getContacts",{},"c1"],["error",{"type":"unknownMethod","description":"frobnicate"},"c2"]]`, string(b))
}

func TestRequestBatch_FirstErrorWins(t *testing.T) {
	r := newRegistry()
	bad := `["getContacts", {"ids": 5}, "c2"]`
	_, alone := r.DecodeRequest(decodeJSON(t, bad))
	require.Error(t, alone)

	_, err := r.DecodeRequestBatch(decodeJSON(t, `[["getContacts", {}, "c1"], `+bad+`, ["getContacts", {"ids": "x"}, "c3"]]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, alone))
	pe, _ := gojmap.AsParseError(err)
	assert.Equal(t, "/1/1/ids", pe.Path)
}

func TestParseResponseBatch_Streams(t *testing.T) {
	r := newRegistry()
	src := gojmap.JSONBytes([]byte(`[
		["contacts", {"state": "s1", "list": [{"id": "c1", "name": "Ann"}], "notFound": ["c404"]}, "r1"],
		["contactUpdates", {"oldState": "s0", "newState": "s1", "changed": ["c1"], "removed": []}, "r2"],
		["error", {"type": "accountNotFound"}, "r3"]
	]`))
	batch, err := r.ParseResponseBatch(src)
	require.NoError(t, err)
	require.Len(t, batch, 3)

	get, ok := batch[0].Args.(method.GetResponseArgs[contacts.PartialContact])
	require.True(t, ok)
	require.Len(t, get.List, 1)
	assert.Equal(t, gojmap.Present("Ann"), get.List[0].Name)

	upd, ok := batch[1].Args.(method.GetUpdatesResponseArgs)
	require.True(t, ok)
	assert.NoError(t, method.CheckUpdates(method.GetUpdatesRequestArgs{SinceState: "s0"}, upd))
	assert.Error(t, method.CheckUpdates(method.GetUpdatesRequestArgs{SinceState: "s5"}, upd))

	me, ok := batch[2].MethodError()
	require.True(t, ok)
	assert.Equal(t, method.AccountNotFound, me.Type)
	assert.Len(t, batch.ForClient("r2"), 1)
}

func TestParseRequestBatch_Enforcement(t *testing.T) {
	r := newRegistry()
	src := gojmap.JSONBytes([]byte(`[["getContacts", {"ids": ["a"], "ids": ["b"]}, "c1"]]`))
	_, err := r.ParseRequestBatch(src, gojmap.ParseOpt{Strictness: gojmap.Strictness{OnDuplicateKey: gojmap.Error}})
	pe, ok := gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, gojmap.CodeDuplicateKey, pe.Code)

	_, err = r.ParseRequestBatch(gojmap.JSONBytes([]byte(`{"not": "a batch"}`)))
	assert.True(t, errors.Is(err, gojmap.InvalidJSONType("RequestBatch")))

	_, err = r.ParseRequestBatch(gojmap.JSONBytes([]byte(`[["getContacts", {}, "c1"], ["getContacts", 3, "c2"]]`)))
	pe, ok = gojmap.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "/1/1", pe.Path)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := newRegistry()
	assert.Panics(t, func() {
		method.RegisterRecord[contacts.PartialContact](r, method.RecordNames("Contact", "Contacts"))
	})
	assert.Contains(t, r.RequestNames(), "getContactUpdates")
	assert.Contains(t, r.ResponseNames(), "contactsSet")
}
