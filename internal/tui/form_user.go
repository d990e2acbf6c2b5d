package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/alternajob/user-service/models"
)

// Focus positions of the user form. posRole is a selector cycled with
// left/right rather than a text input.
const (
	posUsername = iota
	posPassword
	posRole
	posNom
	posPrenom
	posCount
)

type formUserModel struct {
	inputs     []textinput.Model
	focus      int
	roleIdx    int
	editing    bool
	userID     int64
	original   models.UserResponse
	submitting bool
}

// inputIndex maps a focus position to its index in inputs, reporting false
// for the role selector position.
func inputIndex(pos int) (int, bool) {
	switch pos {
	case posUsername:
		return 0, true
	case posPassword:
		return 1, true
	case posNom:
		return 2, true
	case posPrenom:
		return 3, true
	default:
		return 0, false
	}
}

func newFormUserModel(user *models.UserResponse) formUserModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[0].Focus()

	m := formUserModel{inputs: inputs}
	if user == nil {
		return m
	}

	m.editing = true
	m.userID = user.ID
	m.original = *user
	m.inputs[0].SetValue(user.Username)
	m.inputs[2].SetValue(user.Nom)
	m.inputs[3].SetValue(user.Prenom)
	for i, role := range models.Roles {
		if role == user.Role {
			m.roleIdx = i
		}
	}
	return m
}

func (m formUserModel) role() models.Role {
	return models.Roles[m.roleIdx]
}

func (m formUserModel) toCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
		Role:     m.role(),
		Nom:      strings.TrimSpace(m.inputs[2].Value()),
		Prenom:   strings.TrimSpace(m.inputs[3].Value()),
	}
}

// toUpdateRequest builds a patch carrying only the fields that changed.
// An untouched password field means "keep the current password".
func (m formUserModel) toUpdateRequest() models.UpdateUserRequest {
	var req models.UpdateUserRequest

	if username := strings.TrimSpace(m.inputs[0].Value()); username != m.original.Username {
		req.Username = &username
	}
	if password := m.inputs[1].Value(); password != "" {
		req.Password = &password
	}
	if role := m.role(); role != m.original.Role {
		req.Role = &role
	}
	if nom := strings.TrimSpace(m.inputs[2].Value()); nom != m.original.Nom {
		req.Nom = &nom
	}
	if prenom := strings.TrimSpace(m.inputs[3].Value()); prenom != m.original.Prenom {
		req.Prenom = &prenom
	}

	return req
}

func (m formUserModel) View() string {
	title := "New user"
	if m.editing {
		title = "Editing: " + m.original.Username
	}

	passwordHint := ""
	if m.editing {
		passwordHint = " (blank = unchanged)"
	}

	roleMarker := "  "
	if m.focus == posRole {
		roleMarker = "> "
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Username:   [" + m.inputs[0].View() + "]\n"
	out += "Password:   [" + m.inputs[1].View() + "]" + passwordHint + "\n"
	out += "Role:       " + roleMarker + "< " + roleName(m.role()) + " >\n"
	out += "Last name:  [" + m.inputs[2].View() + "]\n"
	out += "First name: [" + m.inputs[3].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  left/right role  enter save")
	return out
}
