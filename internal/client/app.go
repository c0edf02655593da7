package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/models"
)

// Usage lists the supported sub-commands.
const Usage = `usage: habit-tracker-client [flags] <command>

commands:
  register <email> <password> [full name]
  login <email> <password>
  me
  health
  logout
  tui`

type App struct {
	server adapter.ServerAdapter
	tokens TokenStore
	ui     UI
	out    io.Writer

	logger *logger.Logger
}

// NewApp returns the command-line client. ui may be nil, in which case the
// "tui" command fails with ErrNoUI.
func NewApp(server adapter.ServerAdapter, tokens TokenStore, ui UI, out io.Writer, logger *logger.Logger) Client {
	return &App{
		server: server,
		tokens: tokens,
		ui:     ui,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, Usage)
	}

	command, params := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "register":
		if len(params) < 2 {
			return fmt.Errorf("%w: register <email> <password> [full name]", ErrUsage)
		}
		return a.register(ctx, models.Credentials{
			Email:    params[0],
			Password: params[1],
			FullName: strings.Join(params[2:], " "),
		})
	case "login":
		if len(params) != 2 {
			return fmt.Errorf("%w: login <email> <password>", ErrUsage)
		}
		return a.login(ctx, models.Credentials{Email: params[0], Password: params[1]})
	case "me":
		return a.me(ctx)
	case "health":
		return a.health(ctx)
	case "logout":
		return a.tokens.Clear()
	case "tui":
		if a.ui == nil {
			return ErrNoUI
		}
		return a.ui.Run(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) register(ctx context.Context, credentials models.Credentials) error {
	if _, err := a.server.Register(ctx, credentials); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := a.tokens.Save(a.server.Token()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "registered %s\n", credentials.Email)
	return err
}

func (a *App) login(ctx context.Context, credentials models.Credentials) error {
	if _, err := a.server.Login(ctx, credentials); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.tokens.Save(a.server.Token()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "logged in as %s\n", credentials.Email)
	return err
}

// me prints the current account. A rejected token is forgotten.
func (a *App) me(ctx context.Context) error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNotLoggedIn
	}
	a.server.SetToken(token)

	user, err := a.server.CurrentUser(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		if clearErr := a.tokens.Clear(); clearErr != nil {
			a.logger.Err(clearErr).Msg("cannot clear rejected token")
		}
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}

	return a.printJSON(user)
}

func (a *App) health(ctx context.Context) error {
	status, err := a.server.Health(ctx)
	if err != nil && status.Status == "" {
		return fmt.Errorf("health: %w", err)
	}

	if printErr := a.printJSON(status); printErr != nil {
		return printErr
	}
	return err
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
