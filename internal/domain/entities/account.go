package entities

import "strings"

const (
	maskVisibleChars = 4
	maskChar         = "*"
	maskMinLength    = 8
)

// Account is a named credential for one remote hosting account.
type Account struct {
	Name  string
	Token string
}

// MaskedAccount is the display form of an Account: the token is never exposed.
type MaskedAccount struct {
	Name        string
	MaskedToken string
}

// Masked returns the display form of the account.
func (a Account) Masked() MaskedAccount {
	return MaskedAccount{Name: a.Name, MaskedToken: MaskToken(a.Token)}
}

// MaskToken hides every character of a token except the last four.
// Tokens shorter than eight characters are fully masked.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) < maskMinLength {
		return strings.Repeat(maskChar, len(token))
	}
	hidden := len(token) - maskVisibleChars
	return strings.Repeat(maskChar, hidden) + token[hidden:]
}
