package domain

// ContactType distinguishes people from organizations.
type ContactType string

// Contact types.
const (
	ContactPerson       ContactType = "person"
	ContactOrganization ContactType = "organization"
)

// Contact roles.
const (
	RolePointOfContact  = "Point of Contact"
	RoleProcessContact  = "Process Contact"
	RoleMetadataContact = "Metadata Contact"
	RoleDistributor     = "Distributor"
	RoleOriginator      = "Originator"
	RolePublisher       = "Publisher"
)

// Contact is a party associated with the item in a specific role.
//
// Name-only contacts (originators, publishers) carry just Name and Type.
type Contact struct {
	Name                string           `json:"name,omitempty"`
	Type                string           `json:"type"`
	ContactType         ContactType      `json:"contactType,omitempty"`
	OrganizationsPerson string           `json:"organizationsPerson,omitempty"`
	TTYPhone            string           `json:"ttyPhone,omitempty"`
	Hours               string           `json:"hours,omitempty"`
	Instructions        string           `json:"instructions,omitempty"`
	Email               string           `json:"email,omitempty"`
	JobTitle            string           `json:"jobTitle,omitempty"`
	Organization        *Organization    `json:"organization,omitempty"`
	PrimaryLocation     *PrimaryLocation `json:"primaryLocation,omitempty"`
}

// Organization names the organization a person belongs to.
type Organization struct {
	DisplayText string `json:"displayText"`
}

// PrimaryLocation holds phone numbers and one address.
type PrimaryLocation struct {
	OfficePhone   string   `json:"officePhone,omitempty"`
	FaxPhone      string   `json:"faxPhone,omitempty"`
	StreetAddress *Address `json:"streetAddress,omitempty"`
	MailAddress   *Address `json:"mailAddress,omitempty"`
}

// IsEmpty reports whether no location detail was found.
func (l *PrimaryLocation) IsEmpty() bool {
	return l.OfficePhone == "" && l.FaxPhone == "" && l.StreetAddress == nil && l.MailAddress == nil
}

// Address is a postal address.
type Address struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsEmpty reports whether the address has no lines or parts.
func (a *Address) IsEmpty() bool {
	return *a == Address{}
}
