// Package export renders contacts, groups, calendars and events in the
// interchange formats other clients understand: vCard 4.0 and iCalendar.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/reoring/gojmap/contacts"
	"github.com/reoring/gojmap/values"
)

const vcardVersion = "4.0"

// memberURI is the value used for UID and MEMBER so group membership
// resolves against the exported contact cards.
func memberURI(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return "urn:uuid:" + id
}

// ContactCard converts a contact into a vCard.
func ContactCard(c contacts.Contact) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, vcardVersion)
	card.SetValue(vcard.FieldKind, string(vcard.KindIndividual))
	if c.ID() != "" {
		card.SetValue(vcard.FieldUID, memberURI(c.ID()))
	}
	card.SetValue(vcard.FieldFormattedName, formattedName(c))
	if c.FirstName != "" || c.LastName != "" || c.Prefix != "" || c.Suffix != "" {
		card.AddName(&vcard.Name{
			FamilyName:      c.LastName,
			GivenName:       c.FirstName,
			HonorificPrefix: c.Prefix,
			HonorificSuffix: c.Suffix,
		})
	}
	if c.Nickname != "" {
		card.SetValue(vcard.FieldNickname, c.Nickname)
	}
	if v := cardDate(c.Birthday); v != "" {
		card.SetValue(vcard.FieldBirthday, v)
	}
	if v := cardDate(c.Anniversary); v != "" {
		card.SetValue(vcard.FieldAnniversary, v)
	}
	if c.Company != "" || c.Department != "" {
		org := c.Company
		if c.Department != "" {
			org += ";" + c.Department
		}
		card.SetValue(vcard.FieldOrganization, org)
	}
	if c.JobTitle != "" {
		card.SetValue(vcard.FieldTitle, c.JobTitle)
	}
	for i, e := range c.Emails {
		f := &vcard.Field{Value: e.Value, Params: make(vcard.Params)}
		switch e.Type {
		case contacts.EmailPersonal:
			f.Params.Add(vcard.ParamType, vcard.TypeHome)
		case contacts.EmailWork:
			f.Params.Add(vcard.ParamType, vcard.TypeWork)
		}
		if uint64(i) == c.DefaultEmailIndex {
			f.Params.Set(vcard.ParamPreferred, "1")
		}
		card.Add(vcard.FieldEmail, f)
	}
	for _, p := range c.Phones {
		f := &vcard.Field{Value: p.Value, Params: make(vcard.Params)}
		if t := phoneCardType(p.Type); t != "" {
			f.Params.Add(vcard.ParamType, t)
		}
		card.Add(vcard.FieldTelephone, f)
	}
	for _, o := range c.Online {
		name := vcard.FieldURL
		if o.Type == contacts.OnlineUsername {
			name = vcard.FieldIMPP
		}
		card.Add(name, &vcard.Field{Value: o.Value})
	}
	for _, a := range c.Addresses {
		addr := &vcard.Address{
			Field:         &vcard.Field{Params: make(vcard.Params)},
			StreetAddress: a.Street,
			Locality:      a.Locality,
			Region:        a.Region,
			PostalCode:    a.Postcode,
			Country:       a.Country,
		}
		switch a.Type {
		case contacts.AddressHome:
			addr.Params.Add(vcard.ParamType, vcard.TypeHome)
		case contacts.AddressWork:
			addr.Params.Add(vcard.ParamType, vcard.TypeWork)
		}
		card.AddAddress(addr)
	}
	if c.Notes != "" {
		card.SetValue(vcard.FieldNote, c.Notes)
	}
	return card
}

// GroupCard converts a contact group into a vCard of kind group whose
// members reference the contact cards by UID.
func GroupCard(g contacts.ContactGroup) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, vcardVersion)
	card.SetValue(vcard.FieldKind, string(vcard.KindGroup))
	if g.ID() != "" {
		card.SetValue(vcard.FieldUID, memberURI(g.ID()))
	}
	card.SetValue(vcard.FieldFormattedName, g.Name)
	for _, id := range g.ContactIDs {
		card.AddValue(vcard.FieldMember, memberURI(id))
	}
	return card
}

// WriteVCards encodes cards one after another to w.
func WriteVCards(w io.Writer, cards ...vcard.Card) error {
	enc := vcard.NewEncoder(w)
	for i, card := range cards {
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("export: vcard %d: %w", i, err)
		}
	}
	return nil
}

func formattedName(c contacts.Contact) string {
	if c.Name != "" {
		return c.Name
	}
	parts := make([]string, 0, 4)
	for _, s := range []string{c.Prefix, c.FirstName, c.LastName, c.Suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if c.Company != "" {
		return c.Company
	}
	if len(c.Emails) > 0 {
		return c.Emails[0].Value
	}
	return ""
}

func phoneCardType(t contacts.PhoneType) string {
	switch t {
	case contacts.PhoneHome:
		return vcard.TypeHome
	case contacts.PhoneWork:
		return vcard.TypeWork
	case contacts.PhoneMobile:
		return vcard.TypeCell
	case contacts.PhoneFax:
		return vcard.TypeFax
	case contacts.PhonePager:
		return vcard.TypePager
	}
	return ""
}

// cardDate renders a date in the RFC 6350 basic form. An unknown year
// uses the truncated "--MMDD" form.
func cardDate(d values.Date) string {
	if d.IsZero() || d.Month == 0 || d.Day == 0 {
		return ""
	}
	if !d.HasYear() {
		return "--" + pad2(int(d.Month)) + pad2(int(d.Day))
	}
	return fmt.Sprintf("%04d", d.Year) + pad2(int(d.Month)) + pad2(int(d.Day))
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
