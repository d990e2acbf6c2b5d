package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alternajob/user-service/internal/adapter"
	"github.com/alternajob/user-service/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type appModel struct {
	ctx           context.Context
	directory     adapter.UserDirectory
	currentScreen screen

	list   listModel
	detail detailModel
	form   formUserModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
}

func newAppModel(ctx context.Context, directory adapter.UserDirectory) appModel {
	return appModel{
		ctx:           ctx,
		directory:     directory,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteUser(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case usersLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.users = msg.users
		if m.list.idx >= len(m.list.users) {
			m.list.idx = len(m.list.users) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case userSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
	case userDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.users)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		user, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail.user = user
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newUser):
		m.form = newFormUserModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		user := m.detail.user
		m.form = newFormUserModel(&user)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.user.Username
		m.pendingDelete = m.detail.user.ID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.user.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.user.Username)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.left) && m.form.focus == posRole:
			m.form.roleIdx = (m.form.roleIdx - 1 + len(models.Roles)) % len(models.Roles)
			return m, nil
		case key.Matches(keyMsg, keys.right) && m.form.focus == posRole:
			m.form.roleIdx = (m.form.roleIdx + 1) % len(models.Roles)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if !m.form.editing {
				req := m.form.toCreateRequest()
				if req.Username == "" || req.Password == "" || req.Nom == "" || req.Prenom == "" {
					m.showErrorf("All fields are required")
					return m, nil
				}
				m.form.submitting = true
				return m, m.cmdCreateUser(req)
			}
			req := m.form.toUpdateRequest()
			if req.Username != nil && strings.TrimSpace(*req.Username) == "" {
				m.showErrorf("Username cannot be blank")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdUpdateUser(m.form.userID, req)
		}
	}

	idx, isInput := inputIndex(m.form.focus)
	if !isInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[idx], cmd = m.form.inputs[idx].Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		users, err := directory.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m appModel) cmdCreateUser(req models.CreateUserRequest) tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		_, err := directory.CreateUser(ctx, req)
		return userSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateUser(id int64, req models.UpdateUserRequest) tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		_, err := directory.UpdateUser(ctx, id, req)
		return userSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteUser(id int64) tea.Cmd {
	ctx := m.ctx
	directory := m.directory
	return func() tea.Msg {
		err := directory.DeleteUser(ctx, id)
		return userDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return userSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextForm(m formUserModel) formUserModel {
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus + 1) % posCount
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
	return m
}

func focusPrevForm(m formUserModel) formUserModel {
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus - 1 + posCount) % posCount
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
	return m
}
