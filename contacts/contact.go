// Package contacts defines the Contact and ContactGroup record kinds.
package contacts

import (
	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
	"github.com/reoring/gojmap/values"
)

// Contact is a full address-book entry.
type Contact struct {
	id                string
	Name              string
	IsFlagged         bool
	Avatar            *values.File
	Prefix            string
	FirstName         string
	LastName          string
	Suffix            string
	Nickname          string
	Birthday          values.Date
	Anniversary       values.Date
	Company           string
	Department        string
	JobTitle          string
	Emails            []ContactInformation[EmailType] `validate:"dive"`
	DefaultEmailIndex uint64
	Phones            []ContactInformation[PhoneType]  `validate:"dive"`
	Online            []ContactInformation[OnlineType] `validate:"dive"`
	Addresses         []Address
	Notes             string
}

// PartialContact is a Contact patch or projection.
type PartialContact struct {
	ID                gojmap.Presence[string]
	Name              gojmap.Presence[string]
	IsFlagged         gojmap.Presence[bool]
	Avatar            gojmap.Presence[*values.File]
	Prefix            gojmap.Presence[string]
	FirstName         gojmap.Presence[string]
	LastName          gojmap.Presence[string]
	Suffix            gojmap.Presence[string]
	Nickname          gojmap.Presence[string]
	Birthday          gojmap.Presence[values.Date]
	Anniversary       gojmap.Presence[values.Date]
	Company           gojmap.Presence[string]
	Department        gojmap.Presence[string]
	JobTitle          gojmap.Presence[string]
	Emails            gojmap.Presence[[]ContactInformation[EmailType]]
	DefaultEmailIndex gojmap.Presence[uint64]
	Phones            gojmap.Presence[[]ContactInformation[PhoneType]]
	Online            gojmap.Presence[[]ContactInformation[OnlineType]]
	Addresses         gojmap.Presence[[]Address]
	Notes             gojmap.Presence[string]
}

func text(name string, full func(*Contact) *string, part func(*PartialContact) *gojmap.Presence[string]) gojmap.Field[Contact, PartialContact] {
	return gojmap.Prop(name, gojmap.String(), full, part)
}

var contactSchema = gojmap.NewSchema("Contact",
	func(r *Contact) *string { return &r.id },
	func(r *PartialContact) *gojmap.Presence[string] { return &r.ID },
	text("name", func(r *Contact) *string { return &r.Name }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Name }),
	gojmap.Prop("isFlagged", gojmap.Bool(), func(r *Contact) *bool { return &r.IsFlagged }, func(r *PartialContact) *gojmap.Presence[bool] { return &r.IsFlagged }),
	gojmap.NullableProp("avatar", values.FileCodec(), func(r *Contact) **values.File { return &r.Avatar }, func(r *PartialContact) *gojmap.Presence[*values.File] { return &r.Avatar }),
	text("prefix", func(r *Contact) *string { return &r.Prefix }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Prefix }),
	text("firstName", func(r *Contact) *string { return &r.FirstName }, func(r *PartialContact) *gojmap.Presence[string] { return &r.FirstName }),
	text("lastName", func(r *Contact) *string { return &r.LastName }, func(r *PartialContact) *gojmap.Presence[string] { return &r.LastName }),
	text("suffix", func(r *Contact) *string { return &r.Suffix }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Suffix }),
	text("nickname", func(r *Contact) *string { return &r.Nickname }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Nickname }),
	gojmap.Prop("birthday", values.DateCodec(), func(r *Contact) *values.Date { return &r.Birthday }, func(r *PartialContact) *gojmap.Presence[values.Date] { return &r.Birthday }),
	gojmap.Prop("anniversary", values.DateCodec(), func(r *Contact) *values.Date { return &r.Anniversary }, func(r *PartialContact) *gojmap.Presence[values.Date] { return &r.Anniversary }),
	text("company", func(r *Contact) *string { return &r.Company }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Company }),
	text("department", func(r *Contact) *string { return &r.Department }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Department }),
	text("jobTitle", func(r *Contact) *string { return &r.JobTitle }, func(r *PartialContact) *gojmap.Presence[string] { return &r.JobTitle }),
	gojmap.Prop("emails", emailsCodec, func(r *Contact) *[]ContactInformation[EmailType] { return &r.Emails }, func(r *PartialContact) *gojmap.Presence[[]ContactInformation[EmailType]] { return &r.Emails }),
	gojmap.Prop("defaultEmailIndex", gojmap.Uint64(), func(r *Contact) *uint64 { return &r.DefaultEmailIndex }, func(r *PartialContact) *gojmap.Presence[uint64] { return &r.DefaultEmailIndex }),
	gojmap.Prop("phones", phonesCodec, func(r *Contact) *[]ContactInformation[PhoneType] { return &r.Phones }, func(r *PartialContact) *gojmap.Presence[[]ContactInformation[PhoneType]] { return &r.Phones }),
	gojmap.Prop("online", onlineCodec, func(r *Contact) *[]ContactInformation[OnlineType] { return &r.Online }, func(r *PartialContact) *gojmap.Presence[[]ContactInformation[OnlineType]] { return &r.Online }),
	gojmap.Prop("addresses", addressesCodec, func(r *Contact) *[]Address { return &r.Addresses }, func(r *PartialContact) *gojmap.Presence[[]Address] { return &r.Addresses }),
	text("notes", func(r *Contact) *string { return &r.Notes }, func(r *PartialContact) *gojmap.Presence[string] { return &r.Notes }),
)

// NewContact returns an empty contact with a fresh id.
func NewContact() Contact { return contactSchema.New() }

// ContactProperties lists the Contact wire property names.
func ContactProperties() []string { return contactSchema.Properties() }

func (r Contact) ID() string                           { return r.id }
func (r Contact) ToJSON() any                          { return contactSchema.Encode(r) }
func (Contact) FromJSON(v any) (Contact, error)        { return contactSchema.Decode(v) }
func (Contact) JSONSchema() *js.Schema                 { return contactSchema.JSONSchema() }
func (r Contact) UpdatedWith(p PartialContact) Contact { return contactSchema.UpdatedWith(r, p) }
func (r Contact) ToPartial() PartialContact            { return contactSchema.ToPartial(r) }

func (r Contact) ToFilteredPartial(properties []string) PartialContact {
	return contactSchema.ToFilteredPartial(r, properties)
}

func (p PartialContact) RecordID() gojmap.Presence[string]    { return p.ID }
func (p PartialContact) ToJSON() any                          { return contactSchema.EncodePartial(p) }
func (PartialContact) FromJSON(v any) (PartialContact, error) { return contactSchema.DecodePartial(v) }
func (PartialContact) JSONSchema() *js.Schema                 { return contactSchema.PartialJSONSchema() }

var (
	_ gojmap.Record[Contact, PartialContact] = Contact{}
	_ gojmap.PartialRecord[PartialContact]   = PartialContact{}
)
