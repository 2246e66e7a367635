package mail

import (
	"time"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
	"github.com/reoring/gojmap/values"
)

// Emailer is a display name and address pair.
type Emailer struct {
	Name  string
	Email string `validate:"omitempty,email"`
}

var emailerCodec gojmap.Codec[Emailer] = gojmap.Object("Emailer",
	gojmap.Required("name", gojmap.String(), func(e *Emailer) *string { return &e.Name }),
	gojmap.Required("email", gojmap.String(), func(e *Emailer) *string { return &e.Email }),
)

// Attachment describes one attached body part.
type Attachment struct {
	BlobID   string `validate:"required"`
	Type     string
	Name     string
	Size     uint64
	CID      *string
	IsInline bool
	Width    *uint64
	Height   *uint64
}

var attachmentCodec gojmap.Codec[Attachment] = gojmap.Object("Attachment",
	gojmap.Required("blobId", gojmap.String(), func(a *Attachment) *string { return &a.BlobID }),
	gojmap.Required("type", gojmap.String(), func(a *Attachment) *string { return &a.Type }),
	gojmap.Required("name", gojmap.String(), func(a *Attachment) *string { return &a.Name }),
	gojmap.Required("size", gojmap.Uint64(), func(a *Attachment) *uint64 { return &a.Size }),
	gojmap.Optional("cid", gojmap.String(), func(a *Attachment) **string { return &a.CID }),
	gojmap.Required("isInline", gojmap.Bool(), func(a *Attachment) *bool { return &a.IsInline }),
	gojmap.Optional("width", gojmap.Uint64(), func(a *Attachment) **uint64 { return &a.Width }),
	gojmap.Optional("height", gojmap.Uint64(), func(a *Attachment) **uint64 { return &a.Height }),
)

// Message is one email. Nil address lists and bodies are written as null.
type Message struct {
	id                 string
	BlobID             string
	ThreadID           string
	MailboxIDs         []string `validate:"min=1"`
	InReplyToMessageID *string
	IsUnread           bool
	IsFlagged          bool
	IsAnswered         bool
	IsDraft            bool
	HasAttachment      bool
	Headers            map[string]string
	Sender             *Emailer
	From               []Emailer `validate:"dive"`
	To                 []Emailer `validate:"dive"`
	CC                 []Emailer `validate:"dive"`
	BCC                []Emailer `validate:"dive"`
	ReplyTo            []Emailer `validate:"dive"`
	Subject            string
	Date               time.Time
	Size               uint64
	Preview            string `validate:"max=256"`
	TextBody           *string
	HTMLBody           *string
	Attachments        []Attachment       `validate:"dive"`
	AttachedMessages   map[string]Message `validate:"dive"`
}

// PartialMessage is a Message patch or projection.
type PartialMessage struct {
	ID                 gojmap.Presence[string]
	BlobID             gojmap.Presence[string]
	ThreadID           gojmap.Presence[string]
	MailboxIDs         gojmap.Presence[[]string]
	InReplyToMessageID gojmap.Presence[*string]
	IsUnread           gojmap.Presence[bool]
	IsFlagged          gojmap.Presence[bool]
	IsAnswered         gojmap.Presence[bool]
	IsDraft            gojmap.Presence[bool]
	HasAttachment      gojmap.Presence[bool]
	Headers            gojmap.Presence[map[string]string]
	Sender             gojmap.Presence[*Emailer]
	From               gojmap.Presence[[]Emailer]
	To                 gojmap.Presence[[]Emailer]
	CC                 gojmap.Presence[[]Emailer]
	BCC                gojmap.Presence[[]Emailer]
	ReplyTo            gojmap.Presence[[]Emailer]
	Subject            gojmap.Presence[string]
	Date               gojmap.Presence[time.Time]
	Size               gojmap.Presence[uint64]
	Preview            gojmap.Presence[string]
	TextBody           gojmap.Presence[*string]
	HTMLBody           gojmap.Presence[*string]
	Attachments        gojmap.Presence[[]Attachment]
	AttachedMessages   gojmap.Presence[map[string]Message]
}

// messageSchema is assigned in init: attachedMessages holds full messages.
var messageSchema *gojmap.Schema[Message, PartialMessage]

func addressList(name string, full func(*Message) *[]Emailer, part func(*PartialMessage) *gojmap.Presence[[]Emailer]) gojmap.Field[Message, PartialMessage] {
	return gojmap.NilableProp(name, gojmap.NullableSlice(emailerCodec), full, part)
}

func messageFlag(name string, full func(*Message) *bool, part func(*PartialMessage) *gojmap.Presence[bool]) gojmap.Field[Message, PartialMessage] {
	return gojmap.Prop(name, gojmap.Bool(), full, part)
}

func init() {
	attached := gojmap.NullableMap(gojmap.Lazy(func() gojmap.Codec[Message] { return messageSchema.RecordCodec() }))
	messageSchema = gojmap.NewSchema("Message",
		func(r *Message) *string { return &r.id },
		func(r *PartialMessage) *gojmap.Presence[string] { return &r.ID },
		gojmap.Prop("blobId", gojmap.String(), func(r *Message) *string { return &r.BlobID }, func(r *PartialMessage) *gojmap.Presence[string] { return &r.BlobID }),
		gojmap.Prop("threadId", gojmap.String(), func(r *Message) *string { return &r.ThreadID }, func(r *PartialMessage) *gojmap.Presence[string] { return &r.ThreadID }),
		gojmap.Prop("mailboxIds", gojmap.Slice(gojmap.String()), func(r *Message) *[]string { return &r.MailboxIDs }, func(r *PartialMessage) *gojmap.Presence[[]string] { return &r.MailboxIDs }),
		gojmap.NullableProp("inReplyToMessageId", gojmap.String(), func(r *Message) **string { return &r.InReplyToMessageID }, func(r *PartialMessage) *gojmap.Presence[*string] { return &r.InReplyToMessageID }),
		messageFlag("isUnread", func(r *Message) *bool { return &r.IsUnread }, func(r *PartialMessage) *gojmap.Presence[bool] { return &r.IsUnread }),
		messageFlag("isFlagged", func(r *Message) *bool { return &r.IsFlagged }, func(r *PartialMessage) *gojmap.Presence[bool] { return &r.IsFlagged }),
		messageFlag("isAnswered", func(r *Message) *bool { return &r.IsAnswered }, func(r *PartialMessage) *gojmap.Presence[bool] { return &r.IsAnswered }),
		messageFlag("isDraft", func(r *Message) *bool { return &r.IsDraft }, func(r *PartialMessage) *gojmap.Presence[bool] { return &r.IsDraft }),
		messageFlag("hasAttachment", func(r *Message) *bool { return &r.HasAttachment }, func(r *PartialMessage) *gojmap.Presence[bool] { return &r.HasAttachment }),
		gojmap.Prop("headers", gojmap.Map(gojmap.String()), func(r *Message) *map[string]string { return &r.Headers }, func(r *PartialMessage) *gojmap.Presence[map[string]string] { return &r.Headers }),
		gojmap.NullableProp("sender", emailerCodec, func(r *Message) **Emailer { return &r.Sender }, func(r *PartialMessage) *gojmap.Presence[*Emailer] { return &r.Sender }),
		addressList("from", func(r *Message) *[]Emailer { return &r.From }, func(r *PartialMessage) *gojmap.Presence[[]Emailer] { return &r.From }),
		addressList("to", func(r *Message) *[]Emailer { return &r.To }, func(r *PartialMessage) *gojmap.Presence[[]Emailer] { return &r.To }),
		addressList("cc", func(r *Message) *[]Emailer { return &r.CC }, func(r *PartialMessage) *gojmap.Presence[[]Emailer] { return &r.CC }),
		addressList("bcc", func(r *Message) *[]Emailer { return &r.BCC }, func(r *PartialMessage) *gojmap.Presence[[]Emailer] { return &r.BCC }),
		addressList("replyTo", func(r *Message) *[]Emailer { return &r.ReplyTo }, func(r *PartialMessage) *gojmap.Presence[[]Emailer] { return &r.ReplyTo }),
		gojmap.Prop("subject", gojmap.String(), func(r *Message) *string { return &r.Subject }, func(r *PartialMessage) *gojmap.Presence[string] { return &r.Subject }),
		gojmap.Prop("date", values.DateTime(), func(r *Message) *time.Time { return &r.Date }, func(r *PartialMessage) *gojmap.Presence[time.Time] { return &r.Date }),
		gojmap.Prop("size", gojmap.Uint64(), func(r *Message) *uint64 { return &r.Size }, func(r *PartialMessage) *gojmap.Presence[uint64] { return &r.Size }),
		gojmap.Prop("preview", gojmap.String(), func(r *Message) *string { return &r.Preview }, func(r *PartialMessage) *gojmap.Presence[string] { return &r.Preview }),
		gojmap.NullableProp("textBody", gojmap.String(), func(r *Message) **string { return &r.TextBody }, func(r *PartialMessage) *gojmap.Presence[*string] { return &r.TextBody }),
		gojmap.NullableProp("htmlBody", gojmap.String(), func(r *Message) **string { return &r.HTMLBody }, func(r *PartialMessage) *gojmap.Presence[*string] { return &r.HTMLBody }),
		gojmap.NilableProp("attachments", gojmap.NullableSlice(attachmentCodec), func(r *Message) *[]Attachment { return &r.Attachments }, func(r *PartialMessage) *gojmap.Presence[[]Attachment] { return &r.Attachments }),
		gojmap.NilableProp("attachedMessages", attached, func(r *Message) *map[string]Message { return &r.AttachedMessages }, func(r *PartialMessage) *gojmap.Presence[map[string]Message] { return &r.AttachedMessages }),
	)
}

// NewMessage returns an empty message with a fresh id.
func NewMessage() Message { return messageSchema.New() }

func (r Message) ID() string                    { return r.id }
func (r Message) ToJSON() any                   { return messageSchema.Encode(r) }
func (Message) FromJSON(v any) (Message, error) { return messageSchema.Decode(v) }
func (Message) JSONSchema() *js.Schema          { return messageSchema.JSONSchema() }

func (r Message) UpdatedWith(p PartialMessage) Message { return messageSchema.UpdatedWith(r, p) }
func (r Message) ToPartial() PartialMessage            { return messageSchema.ToPartial(r) }

func (r Message) ToFilteredPartial(properties []string) PartialMessage {
	return messageSchema.ToFilteredPartial(r, properties)
}

func (p PartialMessage) RecordID() gojmap.Presence[string]    { return p.ID }
func (p PartialMessage) ToJSON() any                          { return messageSchema.EncodePartial(p) }
func (PartialMessage) FromJSON(v any) (PartialMessage, error) { return messageSchema.DecodePartial(v) }
func (PartialMessage) JSONSchema() *js.Schema                 { return messageSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[Message, PartialMessage] = Message{}
	_ gojmap.PartialRecord[PartialMessage]   = PartialMessage{}
)
