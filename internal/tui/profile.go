package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// ProfileModel shows the signed-in account.
type ProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	tokens Tokens

	user    models.UserOut
	loading bool
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, server adapter.ServerAdapter, tokens Tokens) *ProfileModel {
	return &ProfileModel{ctx: ctx, server: server, tokens: tokens}
}

func (m *ProfileModel) Init() tea.Cmd {
	return m.load()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProfileMsg:
		return m, m.load()
	case profileLoadedMsg:
		m.loading = false
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			// the saved token was rejected, start over
			m.forget()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "Token copied to clipboard"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		case key.Matches(msg, keys.copy):
			token := m.server.Token()
			return m, func() tea.Msg { return copiedMsg{err: copyToClipboard(token)} }
		case key.Matches(msg, keys.logout):
			m.forget()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.quit):
			return m, func() tea.Msg { return quitMsg{} }
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...")
	} else {
		createdAt := "-"
		if !m.user.CreatedAt.IsZero() {
			createdAt = m.user.CreatedAt.Local().Format(time.DateTime)
		}
		active := "no"
		if m.user.IsActive {
			active = "yes"
		}

		b.WriteString(renderTable([][2]string{
			{"ID", valueOrDash(m.user.ID)},
			{"Email", valueOrDash(m.user.Email)},
			{"Full name", valueOrDash(m.user.FullName)},
			{"Timezone", valueOrDash(m.user.Timezone)},
			{"Created", createdAt},
			{"Active", active},
		}))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("PROFILE", b.String(), "r: refresh │ c: copy token │ l: logout │ q: quit")
}

func (m *ProfileModel) load() tea.Cmd {
	m.loading = true
	m.status = ""

	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		user, err := server.CurrentUser(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) forget() {
	if err := m.tokens.Clear(); err != nil {
		m.errMsg = err.Error()
	}
	m.server.SetToken("")
	m.user = models.UserOut{}
	m.status = ""
}
