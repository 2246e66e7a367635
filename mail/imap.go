package mail

import (
	"strings"

	"github.com/emersion/go-imap"

	"github.com/reoring/gojmap"
)

var roleAttributes = []struct {
	role MailboxRole
	attr string
}{
	{RoleArchive, imap.ArchiveAttr},
	{RoleDrafts, imap.DraftsAttr},
	{RoleSent, imap.SentAttr},
	{RoleTrash, imap.TrashAttr},
	{RoleSpam, imap.JunkAttr},
}

// RoleFromAttributes maps an IMAP mailbox name and its special-use
// attributes to a role. It returns nil for an ordinary mailbox.
func RoleFromAttributes(name string, attrs []string) *MailboxRole {
	if strings.EqualFold(name, imap.InboxName) {
		r := RoleInbox
		return &r
	}
	for _, ra := range roleAttributes {
		if hasAttr(attrs, ra.attr) {
			r := ra.role
			return &r
		}
	}
	return nil
}

// IMAPAttribute returns the special-use attribute for r, or "" when IMAP
// has none.
func (r MailboxRole) IMAPAttribute() string {
	for _, ra := range roleAttributes {
		if ra.role == r {
			return ra.attr
		}
	}
	return ""
}

// MailboxFromInfo converts a LIST response entry. Name is the last
// hierarchy level; the parent id is left to the caller, which knows the
// ids of the other mailboxes.
func MailboxFromInfo(info *imap.MailboxInfo) PartialMailbox {
	name := info.Name
	if info.Delimiter != "" {
		if i := strings.LastIndex(name, info.Delimiter); i >= 0 {
			name = name[i+len(info.Delimiter):]
		}
	}
	return PartialMailbox{
		Name:           gojmap.Present(name),
		Role:           gojmap.Present(RoleFromAttributes(info.Name, info.Attributes)),
		MayReadItems:   gojmap.Present(!hasAttr(info.Attributes, imap.NoSelectAttr)),
		MayCreateChild: gojmap.Present(!hasAttr(info.Attributes, imap.NoInferiorsAttr)),
	}
}

// MailboxCounts converts a STATUS response into a counter patch.
func MailboxCounts(status *imap.MailboxStatus) PartialMailbox {
	return PartialMailbox{
		TotalMessages:  gojmap.Present(uint64(status.Messages)),
		UnreadMessages: gojmap.Present(uint64(status.Unseen)),
	}
}

func hasAttr(attrs []string, want string) bool {
	for _, a := range attrs {
		if strings.EqualFold(a, want) {
			return true
		}
	}
	return false
}

// Flags returns the IMAP system flags matching the keyword properties of the message.
func (r Message) Flags() []string {
	var flags []string
	if !r.IsUnread {
		flags = append(flags, imap.SeenFlag)
	}
	if r.IsFlagged {
		flags = append(flags, imap.FlaggedFlag)
	}
	if r.IsAnswered {
		flags = append(flags, imap.AnsweredFlag)
	}
	if r.IsDraft {
		flags = append(flags, imap.DraftFlag)
	}
	return flags
}

// FlagsPatch sets the four keyword properties from an IMAP flag list.
func FlagsPatch(flags []string) PartialMessage {
	return PartialMessage{
		IsUnread:   gojmap.Present(!hasAttr(flags, imap.SeenFlag)),
		IsFlagged:  gojmap.Present(hasAttr(flags, imap.FlaggedFlag)),
		IsAnswered: gojmap.Present(hasAttr(flags, imap.AnsweredFlag)),
		IsDraft:    gojmap.Present(hasAttr(flags, imap.DraftFlag)),
	}
}

// MessageFromIMAP converts a FETCH result. Only the items that were
// fetched become Present.
func MessageFromIMAP(msg *imap.Message) PartialMessage {
	var p PartialMessage
	if msg.Flags != nil {
		p = FlagsPatch(msg.Flags)
	}
	if msg.Size > 0 {
		p.Size = gojmap.Present(uint64(msg.Size))
	}
	if !msg.InternalDate.IsZero() {
		p.Date = gojmap.Present(msg.InternalDate.UTC())
	}
	env := msg.Envelope
	if env == nil {
		return p
	}
	p.Subject = gojmap.Present(strings.TrimSpace(env.Subject))
	if !env.Date.IsZero() {
		p.Date = gojmap.Present(env.Date.UTC())
	}
	if s := emailers(env.Sender); len(s) > 0 {
		p.Sender = gojmap.Present(&s[0])
	} else {
		p.Sender = gojmap.Present[*Emailer](nil)
	}
	p.From = gojmap.Present(emailers(env.From))
	p.To = gojmap.Present(emailers(env.To))
	p.CC = gojmap.Present(emailers(env.Cc))
	p.BCC = gojmap.Present(emailers(env.Bcc))
	p.ReplyTo = gojmap.Present(emailers(env.ReplyTo))

	headers := map[string]string{}
	if id := strings.TrimSpace(env.MessageId); id != "" {
		headers["Message-ID"] = id
	}
	if id := strings.TrimSpace(env.InReplyTo); id != "" {
		headers["In-Reply-To"] = id
	}
	if len(headers) > 0 {
		p.Headers = gojmap.Present(headers)
	}
	return p
}

func emailers(addrs []*imap.Address) []Emailer {
	var out []Emailer
	for _, a := range addrs {
		if a == nil {
			continue
		}
		out = append(out, Emailer{
			Name:  strings.TrimSpace(a.PersonalName),
			Email: strings.TrimSpace(a.Address()),
		})
	}
	return out
}
