package models

import "time"

// UserResponse is the outward projection of a user account.
// Nom and Prenom are plaintext here: the service decrypts them at the moment
// the response is built and never before. The password hash is not part of
// this shape at all.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
