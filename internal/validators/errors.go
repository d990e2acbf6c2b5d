package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
	ErrInvalidRole     = errors.New("unknown role")
	ErrEmptyNom        = errors.New("nom is required")
	ErrEmptyPrenom     = errors.New("prenom is required")

	// ErrBlankPatchField is returned when an update patch carries a field
	// that is present but blank. Required attributes may never become
	// empty, and treating "" as "absent" would make a clearing request
	// indistinguishable from a no-op, so the shape is rejected outright.
	ErrBlankPatchField = errors.New("patch field present but blank")
)
