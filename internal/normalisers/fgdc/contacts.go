package fgdc

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

var mailAddressType = regexp.MustCompile(`(?i)mail`)

// contacts gathers every party in catalog order: point of contact,
// process contact, originators, metadata contact, publishers, distributor.
func contacts(doc *xmltree.Document, emails driven.EmailValidator) []domain.Contact {
	var out []domain.Contact
	out = append(out, parties(doc, xpathContactPoint, domain.RolePointOfContact, emails)...)
	out = append(out, parties(doc, xpathContactProcess, domain.RoleProcessContact, emails)...)
	out = append(out, nameOnly(doc, xpathOrigin, domain.RoleOriginator)...)
	out = append(out, parties(doc, xpathContactMetadata, domain.RoleMetadataContact, emails)...)
	out = append(out, nameOnly(doc, xpathPublisher, domain.RolePublisher)...)
	out = append(out, nameOnly(doc, xpathPublish, domain.RolePublisher)...)
	out = append(out, parties(doc, xpathContactDistrib, domain.RoleDistributor, emails)...)
	return out
}

// parties loads each cntinfo at path, followed by its mirror if any.
func parties(doc *xmltree.Document, path, role string, emails driven.EmailValidator) []domain.Contact {
	var out []domain.Contact
	for _, cntinfo := range doc.ElementsAt(path) {
		party := loadParty(role, cntinfo, emails)
		out = append(out, party)
		if m, ok := mirror(party); ok {
			out = append(out, m)
		}
	}
	return out
}

// nameOnly builds minimal {name, type} contacts. They are never mirrored.
func nameOnly(doc *xmltree.Document, path, role string) []domain.Contact {
	var out []domain.Contact
	for _, name := range doc.TextAt(path) {
		if name == "" {
			continue
		}
		out = append(out, domain.Contact{Name: name, Type: role})
	}
	return out
}

// loadParty reads one cntinfo block. A cntperp block makes a person, else
// a cntorgp block makes an organization; with neither the contact type is
// left unset.
func loadParty(role string, cntinfo *xmltree.Element, emails driven.EmailValidator) domain.Contact {
	c := domain.Contact{Type: role}

	if cntperp := xmltree.FirstDescendant(cntinfo, "cntperp"); cntperp != nil {
		c.ContactType = domain.ContactPerson
		c.Name, _ = xmltree.DescendantText(cntperp, "cntper")
		if org, _ := xmltree.DescendantText(cntperp, "cntorg"); org != "" {
			c.Organization = &domain.Organization{DisplayText: org}
		}
	} else if cntorgp := xmltree.FirstDescendant(cntinfo, "cntorgp"); cntorgp != nil {
		c.ContactType = domain.ContactOrganization
		c.Name, _ = xmltree.DescendantText(cntorgp, "cntorg")
		c.OrganizationsPerson, _ = xmltree.DescendantText(cntorgp, "cntper")
	}

	c.JobTitle, _ = xmltree.DescendantText(cntinfo, "cntpos")
	c.PrimaryLocation = primaryLocation(cntinfo)

	if email, ok := xmltree.DescendantText(cntinfo, "cntemail"); ok && email != "" {
		if emails != nil && emails.Valid(email) {
			c.Email = email
		} else {
			logger.Debug("dropping invalid email %q for %s", email, role)
		}
	}

	c.TTYPhone, _ = xmltree.DescendantText(cntinfo, "cnttdd")
	c.Hours, _ = xmltree.DescendantText(cntinfo, "hours")
	c.Instructions, _ = xmltree.DescendantText(cntinfo, "cntinst")
	return c
}

// mirror synthesizes the complementary record of a conflated contact: the
// person named inside an organization, or the organization a person
// belongs to. Location, email and job title are shared.
func mirror(c domain.Contact) (domain.Contact, bool) {
	m := domain.Contact{
		Type:            c.Type,
		Email:           c.Email,
		JobTitle:        c.JobTitle,
		PrimaryLocation: c.PrimaryLocation,
	}

	switch {
	case c.ContactType == domain.ContactOrganization && c.OrganizationsPerson != "":
		m.ContactType = domain.ContactPerson
		m.Name = c.OrganizationsPerson
		if c.Name != "" {
			m.Organization = &domain.Organization{DisplayText: c.Name}
		}
	case c.ContactType == domain.ContactPerson && c.Organization != nil:
		m.ContactType = domain.ContactOrganization
		m.Name = c.Organization.DisplayText
	default:
		return domain.Contact{}, false
	}
	return m, true
}

// primaryLocation reads the address block and phone numbers of a cntinfo.
func primaryLocation(cntinfo *xmltree.Element) *domain.PrimaryLocation {
	loc := &domain.PrimaryLocation{}

	if cntaddr := xmltree.FirstDescendant(cntinfo, "cntaddr"); cntaddr != nil {
		addr, isMail := address(cntaddr)
		if !addr.IsEmpty() {
			if isMail {
				loc.MailAddress = addr
			} else {
				loc.StreetAddress = addr
			}
		}
	}
	loc.OfficePhone, _ = xmltree.DescendantText(cntinfo, "cntvoice")
	loc.FaxPhone, _ = xmltree.DescendantText(cntinfo, "cntfax")

	if loc.IsEmpty() {
		return nil
	}
	return loc
}

// address reads a cntaddr block and reports whether it is a mailing
// address. Exactly two address lines map to line1 and line2; any other
// count is newline-joined into line1.
func address(cntaddr *xmltree.Element) (*domain.Address, bool) {
	addrType, _ := xmltree.DescendantText(cntaddr, "addrtype")
	isMail := mailAddressType.MatchString(addrType)

	addr := &domain.Address{}
	var lines []string
	for _, line := range xmltree.Descendants(cntaddr, "address") {
		if text := xmltree.Text(line); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 2 {
		addr.Line1, addr.Line2 = lines[0], lines[1]
	} else {
		addr.Line1 = strings.Join(lines, "\n")
	}

	addr.City, _ = xmltree.DescendantText(cntaddr, "city")
	addr.State, _ = xmltree.DescendantText(cntaddr, "state")
	addr.Zip, _ = xmltree.DescendantText(cntaddr, "postal")
	addr.Country, _ = xmltree.DescendantText(cntaddr, "country")
	return addr, isMail
}
