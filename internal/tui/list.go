package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/alternajob/user-service/models"
)

type listModel struct {
	users   []models.UserResponse
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.UserResponse, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.UserResponse{}, false
	}
	return m.users[m.idx], true
}

func roleIcon(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return "[A]"
	case models.RoleRecruteur:
		return "[R]"
	case models.RoleCandidat:
		return "[C]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("User Directory")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.users) == 0 {
		out += "No users\n"
	} else {
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s (%s %s)\n", cursor, roleIcon(user.Role), user.Username, user.Prenom, user.Nom)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  r refresh  enter open  q quit")
	return out
}
