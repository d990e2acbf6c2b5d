package models

import "time"

// Role is the closed set of account roles persisted as a plain tag.
// No authorization decisions are made from it inside this service; it is
// stored and returned as-is.
type Role string

const (
	// RoleAdmin marks platform administrators.
	RoleAdmin Role = "ADMIN"

	// RoleRecruteur marks recruiter accounts.
	RoleRecruteur Role = "RECRUTEUR"

	// RoleCandidat marks candidate accounts.
	RoleCandidat Role = "CANDIDAT"
)

// Roles lists every valid Role value. Validators iterate over it instead of
// hard-coding the set in several places.
var Roles = []Role{RoleAdmin, RoleRecruteur, RoleCandidat}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User represents a persisted user account.
// Sensitive fields must never be exposed outside trusted boundaries:
// PasswordHash is excluded from every outward representation, and Nom/Prenom
// hold ciphertext produced by the field cipher, never plaintext.
type User struct {
	// ID is the internal unique identifier, assigned by the store on
	// creation and immutable thereafter.
	ID int64 `json:"-"`

	// Username is the globally unique login identifier (3-50 characters).
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is the account's role tag.
	Role Role `json:"role"`

	// Nom is the encrypted family name (base64 AES-GCM blob at rest).
	Nom string `json:"-"`

	// Prenom is the encrypted given name (base64 AES-GCM blob at rest).
	Prenom string `json:"-"`

	// CreatedAt is set once by the store when the row is inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the store on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
