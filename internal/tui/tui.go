// Package tui implements the interactive terminal front end of the API
// client: a sign-in menu, login and registration forms, and a profile screen.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user left the program")

// Page names used with [NavigateTo].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
)

// Tokens persists the bearer token between sessions.
type Tokens interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type TUI struct {
	server    adapter.ServerAdapter
	tokens    Tokens
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(server adapter.ServerAdapter, tokens Tokens, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		server:    server,
		tokens:    tokens,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. A previously saved token opens the
// profile screen directly.
func (t *TUI) Run(ctx context.Context) error {
	root, err := t.newRoot(ctx)
	if err != nil {
		return err
	}

	t.logger.Debug().Bool("signed_in", t.server.Token() != "").Msg("starting terminal ui")

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) (RootModel, error) {
	token, err := t.tokens.Load()
	if err != nil {
		return RootModel{}, err
	}

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewAuthFormModel(ctx, t.server, t.tokens, false),
		pageRegister: NewAuthFormModel(ctx, t.server, t.tokens, true),
		pageProfile:  NewProfileModel(ctx, t.server, t.tokens),
	}

	start := pageMenu
	if token != "" {
		t.server.SetToken(token)
		start = pageProfile
	}

	return NewRootModel(pages, start, t.buildInfo), nil
}
