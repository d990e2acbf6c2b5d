package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alternajob/user-service/internal/adapter"
	"github.com/alternajob/user-service/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	directory adapter.UserDirectory
}

func New(directory adapter.UserDirectory, _ *logger.Logger) (*TUI, error) {
	return &TUI{directory: directory}, nil
}

func (t *TUI) MainLoop(ctx context.Context) error {
	model := newAppModel(ctx, t.directory)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
