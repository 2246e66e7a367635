package mail

import (
	"time"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
	"github.com/reoring/gojmap/values"
)

// Filter selects messages for a message list. It is either a
// FilterOperator combining other filters or a FilterCondition.
type Filter interface {
	isFilter()
}

// Operator joins the conditions of a FilterOperator.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
	OperatorNot Operator = "NOT"
)

// FilterOperator combines nested filters.
type FilterOperator struct {
	Operator   Operator
	Conditions []Filter
}

// FilterCondition matches messages on every Present property.
type FilterCondition struct {
	InMailboxes     gojmap.Presence[[]string]
	NotInMailboxes  gojmap.Presence[[]string]
	Before          gojmap.Presence[time.Time]
	After           gojmap.Presence[time.Time]
	MinSize         gojmap.Presence[uint64]
	MaxSize         gojmap.Presence[uint64]
	ThreadIsFlagged gojmap.Presence[bool]
	ThreadIsUnread  gojmap.Presence[bool]
	IsFlagged       gojmap.Presence[bool]
	IsUnread        gojmap.Presence[bool]
	IsAnswered      gojmap.Presence[bool]
	IsDraft         gojmap.Presence[bool]
	HasAttachment   gojmap.Presence[bool]
	Text            gojmap.Presence[string]
	From            gojmap.Presence[string]
	To              gojmap.Presence[string]
	CC              gojmap.Presence[string]
	BCC             gojmap.Presence[string]
	Subject         gojmap.Presence[string]
	Body            gojmap.Presence[string]
	Header          gojmap.Presence[[]string]
}

func (FilterOperator) isFilter()  {}
func (FilterCondition) isFilter() {}

var filterOperatorCodec = gojmap.Object("FilterOperator",
	gojmap.Required("operator", gojmap.Enum("FilterOperator", OperatorAnd, OperatorOr, OperatorNot), func(f *FilterOperator) *Operator { return &f.Operator }),
	gojmap.Required("conditions", gojmap.Slice[Filter](filterCodec{}), func(f *FilterOperator) *[]Filter { return &f.Conditions }),
)

func condBool(name string, sel func(*FilterCondition) *gojmap.Presence[bool]) gojmap.Member[FilterCondition] {
	return gojmap.Omittable(name, gojmap.Bool(), sel)
}

func condText(name string, sel func(*FilterCondition) *gojmap.Presence[string]) gojmap.Member[FilterCondition] {
	return gojmap.Omittable(name, gojmap.String(), sel)
}

var filterConditionCodec = gojmap.Object("FilterCondition",
	gojmap.Omittable("inMailboxes", gojmap.Slice(gojmap.String()), func(f *FilterCondition) *gojmap.Presence[[]string] { return &f.InMailboxes }),
	gojmap.Omittable("notInMailboxes", gojmap.Slice(gojmap.String()), func(f *FilterCondition) *gojmap.Presence[[]string] { return &f.NotInMailboxes }),
	gojmap.Omittable("before", values.DateTime(), func(f *FilterCondition) *gojmap.Presence[time.Time] { return &f.Before }),
	gojmap.Omittable("after", values.DateTime(), func(f *FilterCondition) *gojmap.Presence[time.Time] { return &f.After }),
	gojmap.Omittable("minSize", gojmap.Uint64(), func(f *FilterCondition) *gojmap.Presence[uint64] { return &f.MinSize }),
	gojmap.Omittable("maxSize", gojmap.Uint64(), func(f *FilterCondition) *gojmap.Presence[uint64] { return &f.MaxSize }),
	condBool("threadIsFlagged", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.ThreadIsFlagged }),
	condBool("threadIsUnread", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.ThreadIsUnread }),
	condBool("isFlagged", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.IsFlagged }),
	condBool("isUnread", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.IsUnread }),
	condBool("isAnswered", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.IsAnswered }),
	condBool("isDraft", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.IsDraft }),
	condBool("hasAttachment", func(f *FilterCondition) *gojmap.Presence[bool] { return &f.HasAttachment }),
	condText("text", func(f *FilterCondition) *gojmap.Presence[string] { return &f.Text }),
	condText("from", func(f *FilterCondition) *gojmap.Presence[string] { return &f.From }),
	condText("to", func(f *FilterCondition) *gojmap.Presence[string] { return &f.To }),
	condText("cc", func(f *FilterCondition) *gojmap.Presence[string] { return &f.CC }),
	condText("bcc", func(f *FilterCondition) *gojmap.Presence[string] { return &f.BCC }),
	condText("subject", func(f *FilterCondition) *gojmap.Presence[string] { return &f.Subject }),
	condText("body", func(f *FilterCondition) *gojmap.Presence[string] { return &f.Body }),
	gojmap.Omittable("header", gojmap.Slice(gojmap.String()), func(f *FilterCondition) *gojmap.Presence[[]string] { return &f.Header }),
)

// filterCodec picks the variant by the presence of an "operator" key.
type filterCodec struct{}

// FilterCodec returns the codec for Filter.
func FilterCodec() gojmap.Codec[Filter] { return filterCodec{} }

func (filterCodec) Decode(v any) (Filter, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, gojmap.InvalidJSONType("Filter")
	}
	if _, isOp := obj["operator"]; isOp {
		op, err := filterOperatorCodec.Decode(v)
		if err != nil {
			return nil, err
		}
		return op, nil
	}
	cond, err := filterConditionCodec.Decode(v)
	if err != nil {
		return nil, err
	}
	return cond, nil
}

func (filterCodec) Encode(f Filter) any {
	switch t := f.(type) {
	case FilterOperator:
		return filterOperatorCodec.Encode(t)
	case FilterCondition:
		return filterConditionCodec.Encode(t)
	default:
		return map[string]any{}
	}
}

func (filterCodec) JSONSchema() *js.Schema {
	return &js.Schema{Title: "Filter", OneOf: []*js.Schema{
		{Type: "object", Title: "FilterOperator", Required: []string{"operator", "conditions"}},
		filterConditionCodec.JSONSchema(),
	}}
}

// RemovedItem is a message that left a message list.
type RemovedItem struct {
	MessageID string
	ThreadID  string
}

// AddedItem is a message that entered a message list at Index.
type AddedItem struct {
	MessageID string
	ThreadID  string
	Index     uint64
}

var removedItemCodec gojmap.Codec[RemovedItem] = gojmap.Object("RemovedItem",
	gojmap.Required("messageId", gojmap.String(), func(i *RemovedItem) *string { return &i.MessageID }),
	gojmap.Required("threadId", gojmap.String(), func(i *RemovedItem) *string { return &i.ThreadID }),
)

var addedItemCodec gojmap.Codec[AddedItem] = gojmap.Object("AddedItem",
	gojmap.Required("messageId", gojmap.String(), func(i *AddedItem) *string { return &i.MessageID }),
	gojmap.Required("threadId", gojmap.String(), func(i *AddedItem) *string { return &i.ThreadID }),
	gojmap.Required("index", gojmap.Uint64(), func(i *AddedItem) *uint64 { return &i.Index }),
)

// GetMessageListRequestArgs asks for a sorted, filtered window of message
// and thread ids.
type GetMessageListRequestArgs struct {
	AccountID              gojmap.Presence[string]
	Filter                 gojmap.Presence[Filter]
	Sort                   gojmap.Presence[[]string]
	CollapseThreads        gojmap.Presence[bool]
	Position               gojmap.Presence[uint64]
	Anchor                 gojmap.Presence[string]
	AnchorOffset           gojmap.Presence[int64]
	Limit                  gojmap.Presence[uint64]
	FetchThreads           gojmap.Presence[bool]
	FetchMessages          gojmap.Presence[bool]
	FetchMessageProperties gojmap.Presence[[]string]
	FetchSearchSnippets    gojmap.Presence[bool]
}

type listReq = GetMessageListRequestArgs

var getMessageListRequestCodec = gojmap.Object("GetMessageListRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *listReq) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Omittable("filter", FilterCodec(), func(a *listReq) *gojmap.Presence[Filter] { return &a.Filter }),
	gojmap.Omittable("sort", gojmap.Slice(gojmap.String()), func(a *listReq) *gojmap.Presence[[]string] { return &a.Sort }),
	gojmap.Omittable("collapseThreads", gojmap.Bool(), func(a *listReq) *gojmap.Presence[bool] { return &a.CollapseThreads }),
	gojmap.Omittable("position", gojmap.Uint64(), func(a *listReq) *gojmap.Presence[uint64] { return &a.Position }),
	gojmap.Omittable("anchor", gojmap.String(), func(a *listReq) *gojmap.Presence[string] { return &a.Anchor }),
	gojmap.Omittable("anchorOffset", gojmap.Int64(), func(a *listReq) *gojmap.Presence[int64] { return &a.AnchorOffset }),
	gojmap.Omittable("limit", gojmap.Uint64(), func(a *listReq) *gojmap.Presence[uint64] { return &a.Limit }),
	gojmap.Omittable("fetchThreads", gojmap.Bool(), func(a *listReq) *gojmap.Presence[bool] { return &a.FetchThreads }),
	gojmap.Omittable("fetchMessages", gojmap.Bool(), func(a *listReq) *gojmap.Presence[bool] { return &a.FetchMessages }),
	gojmap.Omittable("fetchMessageProperties", gojmap.Slice(gojmap.String()), func(a *listReq) *gojmap.Presence[[]string] { return &a.FetchMessageProperties }),
	gojmap.Omittable("fetchSearchSnippets", gojmap.Bool(), func(a *listReq) *gojmap.Presence[bool] { return &a.FetchSearchSnippets }),
)

func (a GetMessageListRequestArgs) ToJSON() any { return getMessageListRequestCodec.Encode(a) }

func (GetMessageListRequestArgs) FromJSON(v any) (GetMessageListRequestArgs, error) {
	return getMessageListRequestCodec.Decode(v)
}

// GetMessageListResponseArgs is one window of a message list.
type GetMessageListResponseArgs struct {
	AccountID           string
	Filter              gojmap.Presence[Filter]
	Sort                []string
	CollapseThreads     bool
	State               string
	CanCalculateUpdates bool
	Position            uint64
	Total               uint64
	ThreadIDs           []string
	MessageIDs          []string
}

type listResp = GetMessageListResponseArgs

var getMessageListResponseCodec = gojmap.Object("GetMessageListResponseArgs",
	gojmap.Required("accountId", gojmap.String(), func(a *listResp) *string { return &a.AccountID }),
	gojmap.Omittable("filter", FilterCodec(), func(a *listResp) *gojmap.Presence[Filter] { return &a.Filter }),
	gojmap.Required("sort", gojmap.Slice(gojmap.String()), func(a *listResp) *[]string { return &a.Sort }),
	gojmap.Required("collapseThreads", gojmap.Bool(), func(a *listResp) *bool { return &a.CollapseThreads }),
	gojmap.Required("state", gojmap.String(), func(a *listResp) *string { return &a.State }),
	gojmap.Required("canCalculateUpdates", gojmap.Bool(), func(a *listResp) *bool { return &a.CanCalculateUpdates }),
	gojmap.Required("position", gojmap.Uint64(), func(a *listResp) *uint64 { return &a.Position }),
	gojmap.Required("total", gojmap.Uint64(), func(a *listResp) *uint64 { return &a.Total }),
	gojmap.Required("threadIds", gojmap.Slice(gojmap.String()), func(a *listResp) *[]string { return &a.ThreadIDs }),
	gojmap.Required("messageIds", gojmap.Slice(gojmap.String()), func(a *listResp) *[]string { return &a.MessageIDs }),
)

func (a GetMessageListResponseArgs) ToJSON() any { return getMessageListResponseCodec.Encode(a) }

func (GetMessageListResponseArgs) FromJSON(v any) (GetMessageListResponseArgs, error) {
	return getMessageListResponseCodec.Decode(v)
}

// GetMessageListUpdatesRequestArgs asks how a message list changed since
// SinceState.
type GetMessageListUpdatesRequestArgs struct {
	AccountID       gojmap.Presence[string]
	Filter          gojmap.Presence[Filter]
	Sort            gojmap.Presence[[]string]
	CollapseThreads gojmap.Presence[bool]
	SinceState      string
	UptoMessageID   gojmap.Presence[string]
	MaxChanges      gojmap.Presence[uint64]
}

type listUpdReq = GetMessageListUpdatesRequestArgs

var getMessageListUpdatesRequestCodec = gojmap.Object("GetMessageListUpdatesRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *listUpdReq) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Omittable("filter", FilterCodec(), func(a *listUpdReq) *gojmap.Presence[Filter] { return &a.Filter }),
	gojmap.Omittable("sort", gojmap.Slice(gojmap.String()), func(a *listUpdReq) *gojmap.Presence[[]string] { return &a.Sort }),
	gojmap.Omittable("collapseThreads", gojmap.Bool(), func(a *listUpdReq) *gojmap.Presence[bool] { return &a.CollapseThreads }),
	gojmap.Required("sinceState", gojmap.String(), func(a *listUpdReq) *string { return &a.SinceState }),
	gojmap.Omittable("uptoMessageId", gojmap.String(), func(a *listUpdReq) *gojmap.Presence[string] { return &a.UptoMessageID }),
	gojmap.Omittable("maxChanges", gojmap.Uint64(), func(a *listUpdReq) *gojmap.Presence[uint64] { return &a.MaxChanges }),
)

func (a GetMessageListUpdatesRequestArgs) ToJSON() any {
	return getMessageListUpdatesRequestCodec.Encode(a)
}

func (GetMessageListUpdatesRequestArgs) FromJSON(v any) (GetMessageListUpdatesRequestArgs, error) {
	return getMessageListUpdatesRequestCodec.Decode(v)
}

// GetMessageListUpdatesResponseArgs lists the removals and insertions that
// turn the list at OldState into the list at NewState.
type GetMessageListUpdatesResponseArgs struct {
	AccountID       string
	Filter          gojmap.Presence[Filter]
	Sort            []string
	CollapseThreads bool
	OldState        string
	NewState        string
	UptoMessageID   gojmap.Presence[string]
	Total           uint64
	Removed         []RemovedItem
	Added           []AddedItem
}

type listUpdResp = GetMessageListUpdatesResponseArgs

var getMessageListUpdatesResponseCodec = gojmap.Object("GetMessageListUpdatesResponseArgs",
	gojmap.Required("accountId", gojmap.String(), func(a *listUpdResp) *string { return &a.AccountID }),
	gojmap.Omittable("filter", FilterCodec(), func(a *listUpdResp) *gojmap.Presence[Filter] { return &a.Filter }),
	gojmap.Required("sort", gojmap.Slice(gojmap.String()), func(a *listUpdResp) *[]string { return &a.Sort }),
	gojmap.Required("collapseThreads", gojmap.Bool(), func(a *listUpdResp) *bool { return &a.CollapseThreads }),
	gojmap.Required("oldState", gojmap.String(), func(a *listUpdResp) *string { return &a.OldState }),
	gojmap.Required("newState", gojmap.String(), func(a *listUpdResp) *string { return &a.NewState }),
	gojmap.Omittable("uptoMessageId", gojmap.String(), func(a *listUpdResp) *gojmap.Presence[string] { return &a.UptoMessageID }),
	gojmap.Required("total", gojmap.Uint64(), func(a *listUpdResp) *uint64 { return &a.Total }),
	gojmap.Required("removed", gojmap.Slice(removedItemCodec), func(a *listUpdResp) *[]RemovedItem { return &a.Removed }),
	gojmap.Required("added", gojmap.Slice(addedItemCodec), func(a *listUpdResp) *[]AddedItem { return &a.Added }),
)

func (a GetMessageListUpdatesResponseArgs) ToJSON() any {
	return getMessageListUpdatesResponseCodec.Encode(a)
}

func (GetMessageListUpdatesResponseArgs) FromJSON(v any) (GetMessageListUpdatesResponseArgs, error) {
	return getMessageListUpdatesResponseCodec.Decode(v)
}
