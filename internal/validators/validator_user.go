package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alternajob/user-service/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldNom      = "nom"
	FieldPrenom   = "prenom"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
)

// UserValidator validates the user-management request shapes: every field of
// a [models.CreateUserRequest] is required; a [models.UpdateUserRequest] may
// omit any field, but a present field must satisfy the same rules as on
// creation and may never be blank.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreateRequest(_ context.Context, req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole, FieldNom, FieldPrenom}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if !isValidUsername(req.Username) {
				return fmt.Errorf("%w: %q", ErrInvalidUsername, req.Username)
			}
		case FieldPassword:
			if !isValidPassword(req.Password) {
				return ErrInvalidPassword
			}
		case FieldRole:
			if !req.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
			}
		case FieldNom:
			if isBlank(req.Nom) {
				return ErrEmptyNom
			}
		case FieldPrenom:
			if isBlank(req.Prenom) {
				return ErrEmptyPrenom
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateRequest(_ context.Context, req models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole, FieldNom, FieldPrenom}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if req.Username == nil {
				continue
			}
			if isBlank(*req.Username) {
				return fmt.Errorf("%w: %s", ErrBlankPatchField, FieldUsername)
			}
			if !isValidUsername(*req.Username) {
				return fmt.Errorf("%w: %q", ErrInvalidUsername, *req.Username)
			}
		case FieldPassword:
			if req.Password == nil {
				continue
			}
			if isBlank(*req.Password) {
				return fmt.Errorf("%w: %s", ErrBlankPatchField, FieldPassword)
			}
			if !isValidPassword(*req.Password) {
				return ErrInvalidPassword
			}
		case FieldRole:
			if req.Role == nil {
				continue
			}
			if !req.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, *req.Role)
			}
		case FieldNom:
			if req.Nom == nil {
				continue
			}
			if isBlank(*req.Nom) {
				return fmt.Errorf("%w: %s", ErrBlankPatchField, FieldNom)
			}
		case FieldPrenom:
			if req.Prenom == nil {
				continue
			}
			if isBlank(*req.Prenom) {
				return fmt.Errorf("%w: %s", ErrBlankPatchField, FieldPrenom)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func isValidUsername(username string) bool {
	if isBlank(username) {
		return false
	}
	length := utf8.RuneCountInString(username)
	return length >= usernameMinLen && length <= usernameMaxLen
}

func isValidPassword(password string) bool {
	return !isBlank(password) && utf8.RuneCountInString(password) >= passwordMinLen
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
