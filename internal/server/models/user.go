// Package models holds the server-side record types persisted in PostgreSQL.
package models

import "time"

// User is one registered account. Email is stored normalized (trimmed,
// lower-cased) and is globally unique. PasswordHash is the bcrypt output;
// the plaintext secret never reaches this struct.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
