// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account represents a registered shopper. The email is unique across all
// accounts; PasswordHash holds the salted bcrypt secret, never the plaintext.
type Account struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountPatch describes a partial update to an account. A nil field means
// "leave unchanged"; a non-nil field is applied even when it points at the
// zero value.
type AccountPatch struct {
	Email    *string
	FullName *string
}

// IsEmpty reports whether the patch carries no changes at all.
func (p *AccountPatch) IsEmpty() bool {
	return p == nil || (p.Email == nil && p.FullName == nil)
}
