package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input limits mirror the server-side validation.
const (
	emailCharLimit    = 255
	passwordCharLimit = 72
	fullNameCharLimit = 100
)

// AuthFormModel is the login form, or the registration form when register
// is set. Submitting runs the request asynchronously and saves the issued
// token before the profile page opens.
type AuthFormModel struct {
	ctx      context.Context
	server   adapter.ServerAdapter
	tokens   Tokens
	register bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewAuthFormModel(ctx context.Context, server adapter.ServerAdapter, tokens Tokens, register bool) *AuthFormModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = emailCharLimit
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = passwordCharLimit
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	inputs := []textinput.Model{email, password}
	if register {
		fullName := textinput.New()
		fullName.Placeholder = "full name (optional)"
		fullName.CharLimit = fullNameCharLimit
		fullName.Width = 40
		inputs = append(inputs, fullName)
	}

	return &AuthFormModel{
		ctx:      ctx,
		server:   server,
		tokens:   tokens,
		register: register,
		inputs:   inputs,
	}
}

func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile, Payload: loadProfileMsg{}} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthFormModel) View() string {
	rows := [][2]string{
		{"Email", "[" + m.inputs[0].View() + "]"},
		{"Password", "[" + m.inputs[1].View() + "]"},
	}
	if m.register {
		rows = append(rows, [2]string{"Full name", "[" + m.inputs[2].View() + "]"})
	}

	var b strings.Builder
	b.WriteString(renderTable(rows))

	action := "Sign in"
	if m.register {
		action = "Create account"
	}
	if m.submitting {
		action += "..."
	}
	b.WriteString("\n\n[" + action + "]")

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(m.title(), b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *AuthFormModel) title() string {
	if m.register {
		return "CREATE ACCOUNT"
	}
	return "SIGN IN"
}

func (m *AuthFormModel) credentials() models.Credentials {
	credentials := models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if m.register {
		credentials.FullName = strings.TrimSpace(m.inputs[2].Value())
	}
	return credentials
}

func (m *AuthFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	credentials := m.credentials()
	if credentials.Email == "" || credentials.Password == "" {
		m.errMsg = "Email and password are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, server, tokens, register := m.ctx, m.server, m.tokens, m.register
	return func() tea.Msg {
		var err error
		if register {
			_, err = server.Register(ctx, credentials)
		} else {
			_, err = server.Login(ctx, credentials)
		}
		if err == nil {
			err = tokens.Save(server.Token())
		}
		return authResultMsg{email: credentials.Email, err: err}
	}
}

func (m *AuthFormModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
	m.submitting = false
}
