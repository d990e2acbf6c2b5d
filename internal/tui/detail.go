package tui

import (
	"fmt"
	"time"

	"github.com/alternajob/user-service/models"
)

type detailModel struct {
	user   models.UserResponse
	status string
}

func roleName(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return "Administrator"
	case models.RoleRecruteur:
		return "Recruiter"
	case models.RoleCandidat:
		return "Candidate"
	default:
		return string(r)
	}
}

func (m detailModel) View() string {
	out := fmt.Sprintf("%s  [%s]\n\n", titleStyle.Render(m.user.Username), roleName(m.user.Role))

	out += fmt.Sprintf("ID:         %d\n", m.user.ID)
	out += fmt.Sprintf("Last name:  %s\n", m.user.Nom)
	out += fmt.Sprintf("First name: %s\n", m.user.Prenom)
	out += fmt.Sprintf("Created:    %s\n", m.user.CreatedAt.Format(time.RFC3339))
	out += fmt.Sprintf("Updated:    %s\n", m.user.UpdatedAt.Format(time.RFC3339))

	out += "\n"
	out += helpStyle.Render("e edit  d delete  c copy username  esc back")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
