package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question and runs onYes when accepted.
type confirmModal struct {
	question string
	onYes    tea.Cmd
}

func newConfirmModal(question string, onYes tea.Cmd) confirmModal {
	return confirmModal{question: question, onYes: onYes}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case k.String() == "y", key.Matches(k, keys.Confirm):
		return c, c.onYes, true
	case k.String() == "n", key.Matches(k, keys.Escape), k.String() == "ctrl+c":
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.Text.Render(c.question) + "\n\n" +
		styles.AccentText.Render("y/enter") + styles.MutedText.Render(" confirm   ") +
		styles.AccentText.Render("n/esc") + styles.MutedText.Render(" cancel")
	return placeModal(styles.Modal.Render(body), width, height)
}

// promptModal reads one line of text and hands it to submit.
type promptModal struct {
	title  string
	input  textinput.Model
	submit func(string) tea.Cmd
}

func newPromptModal(title, placeholder, value string, submit func(string) tea.Cmd) promptModal {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 80
	in.Width = 40
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return promptModal{title: title, input: in, submit: submit}
}

func (p promptModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Confirm):
			return p, p.submit(strings.TrimSpace(p.input.Value())), true
		case key.Matches(k, keys.Escape), k.String() == "ctrl+c":
			return p, nil, true
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, false
}

func (p promptModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.AccentText.Render(p.title) + "\n\n" + p.input.View() + "\n\n" +
		styles.MutedText.Render("enter to save, esc to cancel")
	return placeModal(styles.Modal.Render(body), width, height)
}

func placeModal(box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
