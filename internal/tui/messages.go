package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/habit-tracker/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type authResultMsg struct {
	email string
	err   error
}

// loadProfileMsg asks the profile page to fetch the current user.
type loadProfileMsg struct{}

type profileLoadedMsg struct {
	user models.UserOut
	err  error
}

type copiedMsg struct {
	err error
}

type quitMsg struct{}
