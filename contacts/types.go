package contacts

import "github.com/reoring/gojmap"

// EmailType classifies an email address.
type EmailType string

const (
	EmailPersonal EmailType = "personal"
	EmailWork     EmailType = "work"
	EmailOther    EmailType = "other"
)

// PhoneType classifies a phone number.
type PhoneType string

const (
	PhoneHome   PhoneType = "home"
	PhoneWork   PhoneType = "work"
	PhoneMobile PhoneType = "mobile"
	PhoneFax    PhoneType = "fax"
	PhonePager  PhoneType = "pager"
	PhoneOther  PhoneType = "other"
)

// OnlineType classifies an online presence.
type OnlineType string

const (
	OnlineURI      OnlineType = "uri"
	OnlineUsername OnlineType = "username"
	OnlineOther    OnlineType = "other"
)

// AddressType classifies a postal address.
type AddressType string

const (
	AddressHome    AddressType = "home"
	AddressWork    AddressType = "work"
	AddressBilling AddressType = "billing"
	AddressPostal  AddressType = "postal"
	AddressOther   AddressType = "other"
)

var (
	emailTypeCodec   = gojmap.Enum("EmailType", EmailPersonal, EmailWork, EmailOther)
	phoneTypeCodec   = gojmap.Enum("PhoneType", PhoneHome, PhoneWork, PhoneMobile, PhoneFax, PhonePager, PhoneOther)
	onlineTypeCodec  = gojmap.Enum("OnlineType", OnlineURI, OnlineUsername, OnlineOther)
	addressTypeCodec = gojmap.Enum("AddressType", AddressHome, AddressWork, AddressBilling, AddressPostal, AddressOther)
)

// ContactInformation is one typed email address, phone number or online
// handle of a contact.
type ContactInformation[T ~string] struct {
	Type  T
	Value string `validate:"required"`
	Label *string
}

func contactInformationCodec[T ~string](typ gojmap.Codec[T]) gojmap.Codec[ContactInformation[T]] {
	return gojmap.Object("ContactInformation",
		gojmap.Required("type", typ, func(ci *ContactInformation[T]) *T { return &ci.Type }),
		gojmap.Required("value", gojmap.String(), func(ci *ContactInformation[T]) *string { return &ci.Value }),
		gojmap.Optional("label", gojmap.String(), func(ci *ContactInformation[T]) **string { return &ci.Label }),
	)
}

var (
	emailsCodec = gojmap.Slice(contactInformationCodec(emailTypeCodec))
	phonesCodec = gojmap.Slice(contactInformationCodec(phoneTypeCodec))
	onlineCodec = gojmap.Slice(contactInformationCodec(onlineTypeCodec))
)

// Address is a postal address.
type Address struct {
	Type     AddressType
	Label    *string
	Street   string
	Locality string
	Region   string
	Postcode string
	Country  string
}

var addressesCodec = gojmap.Slice[Address](gojmap.Object("Address",
	gojmap.Required("type", addressTypeCodec, func(a *Address) *AddressType { return &a.Type }),
	gojmap.Required("street", gojmap.String(), func(a *Address) *string { return &a.Street }),
	gojmap.Required("locality", gojmap.String(), func(a *Address) *string { return &a.Locality }),
	gojmap.Required("region", gojmap.String(), func(a *Address) *string { return &a.Region }),
	gojmap.Required("postcode", gojmap.String(), func(a *Address) *string { return &a.Postcode }),
	gojmap.Required("country", gojmap.String(), func(a *Address) *string { return &a.Country }),
	gojmap.Optional("label", gojmap.String(), func(a *Address) **string { return &a.Label }),
))
