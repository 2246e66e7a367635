// Package method implements the argument bundles of the get, getUpdates and
// set calls, the method error vocabulary, and the [name, args, clientId]
// call union with its batches.
//
// The bundles are generic over a record's partial type P; P is the only
// record-specific type that appears in them.
package method

import (
	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// GetRequestArgs asks for records by id. Every property may be omitted.
type GetRequestArgs struct {
	AccountID  gojmap.Presence[string]
	IDs        gojmap.Presence[[]string]
	Properties gojmap.Presence[[]string]
	SinceState gojmap.Presence[string]
}

var getRequestCodec = gojmap.Object("GetRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *GetRequestArgs) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Omittable("ids", gojmap.Slice(gojmap.String()), func(a *GetRequestArgs) *gojmap.Presence[[]string] { return &a.IDs }),
	gojmap.Omittable("properties", gojmap.Slice(gojmap.String()), func(a *GetRequestArgs) *gojmap.Presence[[]string] { return &a.Properties }),
	gojmap.Omittable("sinceState", gojmap.String(), func(a *GetRequestArgs) *gojmap.Presence[string] { return &a.SinceState }),
)

func (a GetRequestArgs) ToJSON() any                          { return getRequestCodec.Encode(a) }
func (GetRequestArgs) FromJSON(v any) (GetRequestArgs, error) { return getRequestCodec.Decode(v) }
func (GetRequestArgs) JSONSchema() *js.Schema                 { return getRequestCodec.JSONSchema() }

// GetResponseArgs returns records as partials. A nil List or NotFound is
// written as null.
type GetResponseArgs[P gojmap.PartialRecord[P]] struct {
	AccountID gojmap.Presence[string]
	State     string
	List      []P
	NotFound  []string
}

func getResponseCodec[P gojmap.PartialRecord[P]]() *gojmap.ObjectCodec[GetResponseArgs[P]] {
	return gojmap.Object("GetResponseArgs",
		gojmap.Omittable("accountId", gojmap.String(), func(x *GetResponseArgs[P]) *gojmap.Presence[string] { return &x.AccountID }),
		gojmap.Required("state", gojmap.String(), func(x *GetResponseArgs[P]) *string { return &x.State }),
		gojmap.Nilable("list", gojmap.NullableSlice(gojmap.CodecOf[P]()), func(x *GetResponseArgs[P]) *[]P { return &x.List }),
		gojmap.Nilable("notFound", gojmap.NullableSlice(gojmap.String()), func(x *GetResponseArgs[P]) *[]string { return &x.NotFound }),
	)
}

func (a GetResponseArgs[P]) ToJSON() any { return getResponseCodec[P]().Encode(a) }

func (GetResponseArgs[P]) FromJSON(v any) (GetResponseArgs[P], error) {
	return getResponseCodec[P]().Decode(v)
}

func (GetResponseArgs[P]) JSONSchema() *js.Schema { return getResponseCodec[P]().JSONSchema() }

// GetUpdatesRequestArgs asks for the ids changed since SinceState.
type GetUpdatesRequestArgs struct {
	AccountID             gojmap.Presence[string]
	SinceState            string
	MaxChanges            gojmap.Presence[uint64]
	FetchRecords          gojmap.Presence[bool]
	FetchRecordProperties gojmap.Presence[[]string]
}

var getUpdatesRequestCodec = gojmap.Object("GetUpdatesRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *GetUpdatesRequestArgs) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Required("sinceState", gojmap.String(), func(a *GetUpdatesRequestArgs) *string { return &a.SinceState }),
	gojmap.Omittable("maxChanges", gojmap.Uint64(), func(a *GetUpdatesRequestArgs) *gojmap.Presence[uint64] { return &a.MaxChanges }),
	gojmap.Omittable("fetchRecords", gojmap.Bool(), func(a *GetUpdatesRequestArgs) *gojmap.Presence[bool] { return &a.FetchRecords }),
	gojmap.Omittable("fetchRecordProperties", gojmap.Slice(gojmap.String()), func(a *GetUpdatesRequestArgs) *gojmap.Presence[[]string] { return &a.FetchRecordProperties }),
)

func (a GetUpdatesRequestArgs) ToJSON() any { return getUpdatesRequestCodec.Encode(a) }

func (GetUpdatesRequestArgs) FromJSON(v any) (GetUpdatesRequestArgs, error) {
	return getUpdatesRequestCodec.Decode(v)
}

func (GetUpdatesRequestArgs) JSONSchema() *js.Schema { return getUpdatesRequestCodec.JSONSchema() }

// GetUpdatesResponseArgs lists the ids changed or removed between OldState
// and NewState.
type GetUpdatesResponseArgs struct {
	AccountID gojmap.Presence[string]
	OldState  string
	NewState  string
	Changed   []string
	Removed   []string
}

var getUpdatesResponseCodec = gojmap.Object("GetUpdatesResponseArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *GetUpdatesResponseArgs) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Required("oldState", gojmap.String(), func(a *GetUpdatesResponseArgs) *string { return &a.OldState }),
	gojmap.Required("newState", gojmap.String(), func(a *GetUpdatesResponseArgs) *string { return &a.NewState }),
	gojmap.Required("changed", gojmap.Slice(gojmap.String()), func(a *GetUpdatesResponseArgs) *[]string { return &a.Changed }),
	gojmap.Required("removed", gojmap.Slice(gojmap.String()), func(a *GetUpdatesResponseArgs) *[]string { return &a.Removed }),
)

func (a GetUpdatesResponseArgs) ToJSON() any { return getUpdatesResponseCodec.Encode(a) }

func (GetUpdatesResponseArgs) FromJSON(v any) (GetUpdatesResponseArgs, error) {
	return getUpdatesResponseCodec.Decode(v)
}

func (GetUpdatesResponseArgs) JSONSchema() *js.Schema { return getUpdatesResponseCodec.JSONSchema() }

// SetRequestArgs creates, updates and destroys records in one call. Create
// is keyed by client temporary ids; Update by real ids.
type SetRequestArgs[P gojmap.PartialRecord[P]] struct {
	AccountID gojmap.Presence[string]
	IfInState gojmap.Presence[string]
	Create    gojmap.Presence[map[string]P]
	Update    gojmap.Presence[map[string]P]
	Destroy   gojmap.Presence[[]string]
}

func setRequestCodec[P gojmap.PartialRecord[P]]() *gojmap.ObjectCodec[SetRequestArgs[P]] {
	partials := gojmap.Map(gojmap.CodecOf[P]())
	return gojmap.Object("SetRequestArgs",
		gojmap.Omittable("accountId", gojmap.String(), func(x *SetRequestArgs[P]) *gojmap.Presence[string] { return &x.AccountID }),
		gojmap.Omittable("ifInState", gojmap.String(), func(x *SetRequestArgs[P]) *gojmap.Presence[string] { return &x.IfInState }),
		gojmap.Omittable("create", partials, func(x *SetRequestArgs[P]) *gojmap.Presence[map[string]P] { return &x.Create }),
		gojmap.Omittable("update", partials, func(x *SetRequestArgs[P]) *gojmap.Presence[map[string]P] { return &x.Update }),
		gojmap.Omittable("destroy", gojmap.Slice(gojmap.String()), func(x *SetRequestArgs[P]) *gojmap.Presence[[]string] { return &x.Destroy }),
	)
}

func (a SetRequestArgs[P]) ToJSON() any { return setRequestCodec[P]().Encode(a) }

func (SetRequestArgs[P]) FromJSON(v any) (SetRequestArgs[P], error) {
	return setRequestCodec[P]().Decode(v)
}

func (SetRequestArgs[P]) JSONSchema() *js.Schema { return setRequestCodec[P]().JSONSchema() }

// SetResponseArgs reports the outcome of a set call. Created echoes the
// client temporary ids mapped to the server-assigned properties.
type SetResponseArgs[P gojmap.PartialRecord[P]] struct {
	AccountID    gojmap.Presence[string]
	OldState     *string
	NewState     string
	Created      map[string]P
	Updated      []string
	Destroyed    []string
	NotCreated   map[string]SetError
	NotUpdated   map[string]SetError
	NotDestroyed map[string]SetError
}

func setResponseCodec[P gojmap.PartialRecord[P]]() *gojmap.ObjectCodec[SetResponseArgs[P]] {
	ids := gojmap.Slice(gojmap.String())
	failures := gojmap.Map(setErrorCodec)
	return gojmap.Object("SetResponseArgs",
		gojmap.Omittable("accountId", gojmap.String(), func(x *SetResponseArgs[P]) *gojmap.Presence[string] { return &x.AccountID }),
		gojmap.Optional("oldState", gojmap.String(), func(x *SetResponseArgs[P]) **string { return &x.OldState }),
		gojmap.Required("newState", gojmap.String(), func(x *SetResponseArgs[P]) *string { return &x.NewState }),
		gojmap.Required("created", gojmap.Map(gojmap.CodecOf[P]()), func(x *SetResponseArgs[P]) *map[string]P { return &x.Created }),
		gojmap.Required("updated", ids, func(x *SetResponseArgs[P]) *[]string { return &x.Updated }),
		gojmap.Required("destroyed", ids, func(x *SetResponseArgs[P]) *[]string { return &x.Destroyed }),
		gojmap.Required("notCreated", failures, func(x *SetResponseArgs[P]) *map[string]SetError { return &x.NotCreated }),
		gojmap.Required("notUpdated", failures, func(x *SetResponseArgs[P]) *map[string]SetError { return &x.NotUpdated }),
		gojmap.Required("notDestroyed", failures, func(x *SetResponseArgs[P]) *map[string]SetError { return &x.NotDestroyed }),
	)
}

func (a SetResponseArgs[P]) ToJSON() any { return setResponseCodec[P]().Encode(a) }

func (SetResponseArgs[P]) FromJSON(v any) (SetResponseArgs[P], error) {
	return setResponseCodec[P]().Decode(v)
}

func (SetResponseArgs[P]) JSONSchema() *js.Schema { return setResponseCodec[P]().JSONSchema() }

// CheckUpdates reports a stateMismatch MethodError when a getUpdates
// response does not start at the state the request asked from.
func CheckUpdates(req GetUpdatesRequestArgs, resp GetUpdatesResponseArgs) error {
	if req.SinceState != resp.OldState {
		return NewMethodError(StateMismatch, "")
	}
	return nil
}
