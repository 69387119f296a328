// Package email provides the email syntax predicate used for contacts.
package email

import (
	"net/mail"
	"strings"

	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.EmailValidator = (*Validator)(nil)

// Validator checks RFC 5322 address syntax. It performs no DNS or
// mailbox lookups.
type Validator struct{}

// NewValidator creates a new syntax validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Valid reports whether address is a bare addr-spec with a dotted domain.
// Display names ("Jane <jane@usgs.gov>") are rejected.
func (v *Validator) Valid(address string) bool {
	if address == "" || strings.TrimSpace(address) != address {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Name != "" || parsed.Address != address {
		return false
	}
	at := strings.LastIndexByte(address, '@')
	domain := address[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
