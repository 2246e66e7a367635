// Package mail defines the Mailbox and Message record kinds, the arguments
// of the message list, import, copy and report calls, and conversions from
// IMAP data.
package mail

import (
	"strings"

	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// MailboxRole identifies a mailbox with a special purpose. Besides the
// predefined roles any token starting with "x-" is accepted as a custom
// role and kept verbatim.
type MailboxRole string

const (
	RoleInbox     MailboxRole = "inbox"
	RoleArchive   MailboxRole = "archive"
	RoleDrafts    MailboxRole = "drafts"
	RoleOutbox    MailboxRole = "outbox"
	RoleSent      MailboxRole = "sent"
	RoleTrash     MailboxRole = "trash"
	RoleSpam      MailboxRole = "spam"
	RoleTemplates MailboxRole = "templates"
)

var knownRoles = []MailboxRole{RoleInbox, RoleArchive, RoleDrafts, RoleOutbox, RoleSent, RoleTrash, RoleSpam, RoleTemplates}

// IsCustom reports whether r is an "x-" role.
func (r MailboxRole) IsCustom() bool { return strings.HasPrefix(string(r), "x-") }

type roleCodec struct{}

func (roleCodec) Decode(v any) (MailboxRole, error) {
	s, ok := v.(string)
	if !ok {
		return "", gojmap.InvalidJSONType("MailboxRole")
	}
	r := MailboxRole(s)
	for _, k := range knownRoles {
		if r == k {
			return r, nil
		}
	}
	if r.IsCustom() {
		return r, nil
	}
	return "", gojmap.InvalidStructure("MailboxRole")
}

func (roleCodec) Encode(r MailboxRole) any { return string(r) }

func (roleCodec) JSONSchema() *js.Schema {
	vals := make([]any, 0, len(knownRoles))
	for _, k := range knownRoles {
		vals = append(vals, string(k))
	}
	return &js.Schema{
		Title: "MailboxRole",
		OneOf: []*js.Schema{
			{Type: "string", Enum: vals},
			{Type: "string", Pattern: "^x-"},
		},
	}
}

// Mailbox is a folder of messages.
type Mailbox struct {
	id                string
	Name              string `validate:"required"`
	ParentID          *string
	Role              *MailboxRole
	SortOrder         uint64
	MustBeOnlyMailbox bool
	MayReadItems      bool
	MayAddItems       bool
	MayRemoveItems    bool
	MayCreateChild    bool
	MayRename         bool
	MayDelete         bool
	TotalMessages     uint64
	UnreadMessages    uint64 `validate:"ltefield=TotalMessages"`
	TotalThreads      uint64
	UnreadThreads     uint64 `validate:"ltefield=TotalThreads"`
}

// PartialMailbox is a Mailbox patch or projection.
type PartialMailbox struct {
	ID                gojmap.Presence[string]
	Name              gojmap.Presence[string]
	ParentID          gojmap.Presence[*string]
	Role              gojmap.Presence[*MailboxRole]
	SortOrder         gojmap.Presence[uint64]
	MustBeOnlyMailbox gojmap.Presence[bool]
	MayReadItems      gojmap.Presence[bool]
	MayAddItems       gojmap.Presence[bool]
	MayRemoveItems    gojmap.Presence[bool]
	MayCreateChild    gojmap.Presence[bool]
	MayRename         gojmap.Presence[bool]
	MayDelete         gojmap.Presence[bool]
	TotalMessages     gojmap.Presence[uint64]
	UnreadMessages    gojmap.Presence[uint64]
	TotalThreads      gojmap.Presence[uint64]
	UnreadThreads     gojmap.Presence[uint64]
}

func mailboxFlag(name string, full func(*Mailbox) *bool, part func(*PartialMailbox) *gojmap.Presence[bool]) gojmap.Field[Mailbox, PartialMailbox] {
	return gojmap.Prop(name, gojmap.Bool(), full, part)
}

func mailboxCount(name string, full func(*Mailbox) *uint64, part func(*PartialMailbox) *gojmap.Presence[uint64]) gojmap.Field[Mailbox, PartialMailbox] {
	return gojmap.Prop(name, gojmap.Uint64(), full, part)
}

var mailboxSchema = gojmap.NewSchema("Mailbox",
	func(r *Mailbox) *string { return &r.id },
	func(r *PartialMailbox) *gojmap.Presence[string] { return &r.ID },
	gojmap.Prop("name", gojmap.String(), func(r *Mailbox) *string { return &r.Name }, func(r *PartialMailbox) *gojmap.Presence[string] { return &r.Name }),
	gojmap.NullableProp("parentId", gojmap.String(), func(r *Mailbox) **string { return &r.ParentID }, func(r *PartialMailbox) *gojmap.Presence[*string] { return &r.ParentID }),
	gojmap.NullableProp[Mailbox, PartialMailbox, MailboxRole]("role", roleCodec{}, func(r *Mailbox) **MailboxRole { return &r.Role }, func(r *PartialMailbox) *gojmap.Presence[*MailboxRole] { return &r.Role }),
	mailboxCount("sortOrder", func(r *Mailbox) *uint64 { return &r.SortOrder }, func(r *PartialMailbox) *gojmap.Presence[uint64] { return &r.SortOrder }),
	mailboxFlag("mustBeOnlyMailbox", func(r *Mailbox) *bool { return &r.MustBeOnlyMailbox }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MustBeOnlyMailbox }),
	mailboxFlag("mayReadItems", func(r *Mailbox) *bool { return &r.MayReadItems }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayReadItems }),
	mailboxFlag("mayAddItems", func(r *Mailbox) *bool { return &r.MayAddItems }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayAddItems }),
	mailboxFlag("mayRemoveItems", func(r *Mailbox) *bool { return &r.MayRemoveItems }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayRemoveItems }),
	mailboxFlag("mayCreateChild", func(r *Mailbox) *bool { return &r.MayCreateChild }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayCreateChild }),
	mailboxFlag("mayRename", func(r *Mailbox) *bool { return &r.MayRename }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayRename }),
	mailboxFlag("mayDelete", func(r *Mailbox) *bool { return &r.MayDelete }, func(r *PartialMailbox) *gojmap.Presence[bool] { return &r.MayDelete }),
	mailboxCount("totalMessages", func(r *Mailbox) *uint64 { return &r.TotalMessages }, func(r *PartialMailbox) *gojmap.Presence[uint64] { return &r.TotalMessages }),
	mailboxCount("unreadMessages", func(r *Mailbox) *uint64 { return &r.UnreadMessages }, func(r *PartialMailbox) *gojmap.Presence[uint64] { return &r.UnreadMessages }),
	mailboxCount("totalThreads", func(r *Mailbox) *uint64 { return &r.TotalThreads }, func(r *PartialMailbox) *gojmap.Presence[uint64] { return &r.TotalThreads }),
	mailboxCount("unreadThreads", func(r *Mailbox) *uint64 { return &r.UnreadThreads }, func(r *PartialMailbox) *gojmap.Presence[uint64] { return &r.UnreadThreads }),
)

// NewMailbox returns an empty mailbox with a fresh id.
func NewMailbox() Mailbox { return mailboxSchema.New() }

func (r Mailbox) ID() string                    { return r.id }
func (r Mailbox) ToJSON() any                   { return mailboxSchema.Encode(r) }
func (Mailbox) FromJSON(v any) (Mailbox, error) { return mailboxSchema.Decode(v) }
func (Mailbox) JSONSchema() *js.Schema          { return mailboxSchema.JSONSchema() }

func (r Mailbox) UpdatedWith(p PartialMailbox) Mailbox { return mailboxSchema.UpdatedWith(r, p) }
func (r Mailbox) ToPartial() PartialMailbox            { return mailboxSchema.ToPartial(r) }

func (r Mailbox) ToFilteredPartial(properties []string) PartialMailbox {
	return mailboxSchema.ToFilteredPartial(r, properties)
}

func (p PartialMailbox) RecordID() gojmap.Presence[string]    { return p.ID }
func (p PartialMailbox) ToJSON() any                          { return mailboxSchema.EncodePartial(p) }
func (PartialMailbox) FromJSON(v any) (PartialMailbox, error) { return mailboxSchema.DecodePartial(v) }
func (PartialMailbox) JSONSchema() *js.Schema                 { return mailboxSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[Mailbox, PartialMailbox] = Mailbox{}
	_ gojmap.PartialRecord[PartialMailbox]   = PartialMailbox{}
)
