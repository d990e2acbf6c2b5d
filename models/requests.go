package models

// CreateUserRequest is the inbound shape for creating a user account.
// Every field is required; the validation wrapper rejects blank values
// before the core service is reached.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// UpdateUserRequest is the inbound shape for a partial-merge patch.
// A nil field means "leave unchanged". A present-but-blank field is a
// validation error: username, password, role, nom and prenom are required
// attributes of an account and may never become empty, and silently
// treating "" as absent would make the two cases indistinguishable.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	Nom      *string `json:"nom,omitempty"`
	Prenom   *string `json:"prenom,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (r UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Password == nil && r.Role == nil &&
		r.Nom == nil && r.Prenom == nil
}

// UserUpdate is the store-level descriptor of a partial UPDATE.
// Only non-nil fields become SET clauses; Nom and Prenom hold ciphertext,
// Password holds the new bcrypt digest. The store refreshes updated_at
// unconditionally.
type UserUpdate struct {
	ID           int64
	Username     *string
	PasswordHash *string
	Role         *Role
	Nom          *string
	Prenom       *string
}
