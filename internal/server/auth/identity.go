// Package auth verifies user credentials against the credential store.
package auth

import "strings"

// Identity is the minimal authenticated-user record exposed beyond the store
// boundary. It never carries the password hash.
type Identity struct {
	ID    string
	Email string
}

// NormalizeEmail trims whitespace and lower-cases an email. Applied before
// every storage write and lookup so case/whitespace variants collapse to one
// account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
