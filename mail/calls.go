package mail

import (
	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/method"
)

// Wire names of the mail-only calls.
const (
	GetMessageList        = "getMessageList"
	MessageList           = "messageList"
	GetMessageListUpdates = "getMessageListUpdates"
	MessageListUpdates    = "messageListUpdates"
	ImportMessages        = "importMessages"
	MessagesImported      = "messagesImported"
	CopyMessages          = "copyMessages"
	MessagesCopied        = "messagesCopied"
	ReportMessages        = "reportMessages"
	MessagesReported      = "messagesReported"
)

// RegisterCalls adds the Mailbox and Message record calls and the
// mail-only calls to r.
func RegisterCalls(r *method.Registry) {
	method.RegisterRecord[PartialMailbox](r, method.RecordNames("Mailbox", "Mailboxes"))
	method.RegisterRecord[PartialMessage](r, method.RecordNames("Message", "Messages"))

	r.RegisterRequest(GetMessageList, method.DecoderOf[GetMessageListRequestArgs]())
	r.RegisterResponse(MessageList, method.DecoderOf[GetMessageListResponseArgs]())
	r.RegisterRequest(GetMessageListUpdates, method.DecoderOf[GetMessageListUpdatesRequestArgs]())
	r.RegisterResponse(MessageListUpdates, method.DecoderOf[GetMessageListUpdatesResponseArgs]())
	r.RegisterRequest(ImportMessages, method.DecoderOf[ImportMessagesRequestArgs]())
	r.RegisterResponse(MessagesImported, method.DecoderOf[ImportMessagesResponseArgs]())
	r.RegisterRequest(CopyMessages, method.DecoderOf[CopyMessagesRequestArgs]())
	r.RegisterResponse(MessagesCopied, method.DecoderOf[CopyMessagesResponseArgs]())
	r.RegisterRequest(ReportMessages, method.DecoderOf[ReportMessagesRequestArgs]())
	r.RegisterResponse(MessagesReported, method.DecoderOf[ReportMessagesResponseArgs]())
}

// MessageImport places an uploaded RFC 5322 blob into mailboxes.
type MessageImport struct {
	BlobID     string   `validate:"required"`
	MailboxIDs []string `validate:"min=1"`
	IsUnread   bool
	IsFlagged  bool
	IsAnswered bool
	IsDraft    bool
}

var messageImportCodec gojmap.Codec[MessageImport] = gojmap.Object("MessageImport",
	gojmap.Required("blobId", gojmap.String(), func(m *MessageImport) *string { return &m.BlobID }),
	gojmap.Required("mailboxIds", gojmap.Slice(gojmap.String()), func(m *MessageImport) *[]string { return &m.MailboxIDs }),
	gojmap.Required("isUnread", gojmap.Bool(), func(m *MessageImport) *bool { return &m.IsUnread }),
	gojmap.Required("isFlagged", gojmap.Bool(), func(m *MessageImport) *bool { return &m.IsFlagged }),
	gojmap.Required("isAnswered", gojmap.Bool(), func(m *MessageImport) *bool { return &m.IsAnswered }),
	gojmap.Required("isDraft", gojmap.Bool(), func(m *MessageImport) *bool { return &m.IsDraft }),
)

// ImportMessagesRequestArgs imports messages keyed by client temporary id.
type ImportMessagesRequestArgs struct {
	AccountID gojmap.Presence[string]
	Messages  map[string]MessageImport
}

var importRequestCodec = gojmap.Object("ImportMessagesRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *ImportMessagesRequestArgs) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Required("messages", gojmap.Map(messageImportCodec), func(a *ImportMessagesRequestArgs) *map[string]MessageImport { return &a.Messages }),
)

func (a ImportMessagesRequestArgs) ToJSON() any { return importRequestCodec.Encode(a) }

func (ImportMessagesRequestArgs) FromJSON(v any) (ImportMessagesRequestArgs, error) {
	return importRequestCodec.Decode(v)
}

// ImportMessagesResponseArgs maps each temporary id to the created message
// or to the reason it was not created.
type ImportMessagesResponseArgs struct {
	AccountID  string
	Created    map[string]PartialMessage
	NotCreated map[string]method.SetError
}

var importResponseCodec = gojmap.Object("ImportMessagesResponseArgs",
	gojmap.Required("accountId", gojmap.String(), func(a *ImportMessagesResponseArgs) *string { return &a.AccountID }),
	gojmap.Required("created", gojmap.Map(gojmap.CodecOf[PartialMessage]()), func(a *ImportMessagesResponseArgs) *map[string]PartialMessage { return &a.Created }),
	gojmap.Required("notCreated", gojmap.Map(method.SetErrorCodec()), func(a *ImportMessagesResponseArgs) *map[string]method.SetError { return &a.NotCreated }),
)

func (a ImportMessagesResponseArgs) ToJSON() any { return importResponseCodec.Encode(a) }

func (ImportMessagesResponseArgs) FromJSON(v any) (ImportMessagesResponseArgs, error) {
	return importResponseCodec.Decode(v)
}

// MessageCopy copies an existing message into mailboxes of another account.
type MessageCopy struct {
	MessageID  string   `validate:"required"`
	MailboxIDs []string `validate:"min=1"`
	IsUnread   bool
	IsFlagged  bool
	IsAnswered bool
	IsDraft    bool
}

var messageCopyCodec gojmap.Codec[MessageCopy] = gojmap.Object("MessageCopy",
	gojmap.Required("messageId", gojmap.String(), func(m *MessageCopy) *string { return &m.MessageID }),
	gojmap.Required("mailboxIds", gojmap.Slice(gojmap.String()), func(m *MessageCopy) *[]string { return &m.MailboxIDs }),
	gojmap.Required("isUnread", gojmap.Bool(), func(m *MessageCopy) *bool { return &m.IsUnread }),
	gojmap.Required("isFlagged", gojmap.Bool(), func(m *MessageCopy) *bool { return &m.IsFlagged }),
	gojmap.Required("isAnswered", gojmap.Bool(), func(m *MessageCopy) *bool { return &m.IsAnswered }),
	gojmap.Required("isDraft", gojmap.Bool(), func(m *MessageCopy) *bool { return &m.IsDraft }),
)

// CopyMessagesRequestArgs copies messages between accounts.
type CopyMessagesRequestArgs struct {
	FromAccountID gojmap.Presence[string]
	ToAccountID   gojmap.Presence[string]
	Messages      map[string]MessageCopy
}

var copyRequestCodec = gojmap.Object("CopyMessagesRequestArgs",
	gojmap.Omittable("fromAccountId", gojmap.String(), func(a *CopyMessagesRequestArgs) *gojmap.Presence[string] { return &a.FromAccountID }),
	gojmap.Omittable("toAccountId", gojmap.String(), func(a *CopyMessagesRequestArgs) *gojmap.Presence[string] { return &a.ToAccountID }),
	gojmap.Required("messages", gojmap.Map(messageCopyCodec), func(a *CopyMessagesRequestArgs) *map[string]MessageCopy { return &a.Messages }),
)

func (a CopyMessagesRequestArgs) ToJSON() any { return copyRequestCodec.Encode(a) }

func (CopyMessagesRequestArgs) FromJSON(v any) (CopyMessagesRequestArgs, error) {
	return copyRequestCodec.Decode(v)
}

// CopyMessagesResponseArgs reports the copies made.
type CopyMessagesResponseArgs struct {
	FromAccountID string
	ToAccountID   string
	Created       map[string]PartialMessage
	NotCreated    map[string]method.SetError
}

var copyResponseCodec = gojmap.Object("CopyMessagesResponseArgs",
	gojmap.Required("fromAccountId", gojmap.String(), func(a *CopyMessagesResponseArgs) *string { return &a.FromAccountID }),
	gojmap.Required("toAccountId", gojmap.String(), func(a *CopyMessagesResponseArgs) *string { return &a.ToAccountID }),
	gojmap.Required("created", gojmap.Map(gojmap.CodecOf[PartialMessage]()), func(a *CopyMessagesResponseArgs) *map[string]PartialMessage { return &a.Created }),
	gojmap.Required("notCreated", gojmap.Map(method.SetErrorCodec()), func(a *CopyMessagesResponseArgs) *map[string]method.SetError { return &a.NotCreated }),
)

func (a CopyMessagesResponseArgs) ToJSON() any { return copyResponseCodec.Encode(a) }

func (CopyMessagesResponseArgs) FromJSON(v any) (CopyMessagesResponseArgs, error) {
	return copyResponseCodec.Decode(v)
}

// ReportMessagesRequestArgs reports messages as spam, or as not spam.
type ReportMessagesRequestArgs struct {
	AccountID  gojmap.Presence[string]
	MessageIDs []string `validate:"min=1"`
	AsSpam     bool
}

var reportRequestCodec = gojmap.Object("ReportMessagesRequestArgs",
	gojmap.Omittable("accountId", gojmap.String(), func(a *ReportMessagesRequestArgs) *gojmap.Presence[string] { return &a.AccountID }),
	gojmap.Required("messageIds", gojmap.Slice(gojmap.String()), func(a *ReportMessagesRequestArgs) *[]string { return &a.MessageIDs }),
	gojmap.Required("asSpam", gojmap.Bool(), func(a *ReportMessagesRequestArgs) *bool { return &a.AsSpam }),
)

func (a ReportMessagesRequestArgs) ToJSON() any { return reportRequestCodec.Encode(a) }

func (ReportMessagesRequestArgs) FromJSON(v any) (ReportMessagesRequestArgs, error) {
	return reportRequestCodec.Decode(v)
}

// ReportMessagesResponseArgs lists the reported ids. A nil NotFound is
// written as null.
type ReportMessagesResponseArgs struct {
	AccountID string
	AsSpam    bool
	Reported  []string
	NotFound  []string
}

var reportResponseCodec = gojmap.Object("ReportMessagesResponseArgs",
	gojmap.Required("accountId", gojmap.String(), func(a *ReportMessagesResponseArgs) *string { return &a.AccountID }),
	gojmap.Required("asSpam", gojmap.Bool(), func(a *ReportMessagesResponseArgs) *bool { return &a.AsSpam }),
	gojmap.Required("reported", gojmap.Slice(gojmap.String()), func(a *ReportMessagesResponseArgs) *[]string { return &a.Reported }),
	gojmap.Nilable("notFound", gojmap.NullableSlice(gojmap.String()), func(a *ReportMessagesResponseArgs) *[]string { return &a.NotFound }),
)

func (a ReportMessagesResponseArgs) ToJSON() any { return reportResponseCodec.Encode(a) }

func (ReportMessagesResponseArgs) FromJSON(v any) (ReportMessagesResponseArgs, error) {
	return reportResponseCodec.Decode(v)
}
