package driven

// EmailValidator decides whether an address is syntactically valid.
// Contacts keep an email only when Valid returns true.
type EmailValidator interface {
	Valid(address string) bool
}
