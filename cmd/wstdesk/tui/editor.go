package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wstdesk/wstdesk/internal/profile"
)

// Editor field indices, in display order.
const (
	fieldName = iota
	fieldListen
	fieldServer
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Listen address", "Server address"}

// Editor is the profile edit form. It is keyed by the name of the profile
// it was opened for: opening a different profile always constructs a new
// Editor, so no form state survives a selection switch.
type Editor struct {
	key    string // name the editor was opened for; "" when creating
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
	width  int
}

// NewEditor builds a fresh form pre-filled from p. An empty key means the
// editor creates a new profile from a blank template.
func NewEditor(key string, p profile.Profile) Editor {
	e := Editor{key: key}

	name := textinput.New()
	name.Placeholder = "e.g. home, office"
	name.CharLimit = 64
	name.SetValue(p.Name)

	listen := textinput.New()
	listen.Placeholder = "127.0.0.1:8080"
	listen.CharLimit = 128
	listen.SetValue(p.ListenAddr)

	server := textinput.New()
	server.Placeholder = "wss://tunnel.example.com"
	server.CharLimit = 256
	server.SetValue(p.ServerAddr.String())

	e.inputs = [fieldCount]textinput.Model{name, listen, server}
	e.inputs[fieldName].Focus()
	return e
}

// Key returns the name this editor was opened for ("" when creating).
func (e Editor) Key() string {
	return e.key
}

// Creating reports whether the editor builds a new profile.
func (e Editor) Creating() bool {
	return e.key == ""
}

// SetError shows an error line inside the form. Used by the root model
// when the controller rejects a submit (duplicate name, store failure).
func (e *Editor) SetError(msg string) {
	e.errMsg = msg
}

// SetWidth sets the input widths.
func (e *Editor) SetWidth(w int) {
	e.width = w
	inputWidth := w - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range e.inputs {
		e.inputs[i].Width = inputWidth
	}
}

// Update handles form navigation and delegates typing to the focused input.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			done := EditorDoneMsg{Key: e.key}
			return e, func() tea.Msg { return done }
		case "tab", "down":
			e.setFocus((e.focus + 1) % fieldCount)
			return e, nil
		case "shift+tab", "up":
			e.setFocus((e.focus + fieldCount - 1) % fieldCount)
			return e, nil
		case "enter":
			return e.submit()
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return e, cmd
}

func (e *Editor) setFocus(i int) {
	e.inputs[e.focus].Blur()
	e.focus = i
	e.inputs[e.focus].Focus()
}

// submit validates the form. Invalid input keeps the editor open with an
// error line; valid input emits EditorDoneMsg for the root model.
func (e Editor) submit() (Editor, tea.Cmd) {
	p, err := e.buildProfile()
	if err != nil {
		e.errMsg = err.Error()
		return e, nil
	}
	e.errMsg = ""
	done := EditorDoneMsg{Key: e.key, Profile: p, Confirmed: true}
	return e, func() tea.Msg { return done }
}

// buildProfile converts the flattened form fields into the structured
// profile, reusing the model validation.
func (e Editor) buildProfile() (profile.Profile, error) {
	addr, err := profile.ParseServerAddr(e.inputs[fieldServer].Value())
	if err != nil {
		return profile.Profile{}, err
	}
	p := profile.Profile{
		Name:       strings.TrimSpace(e.inputs[fieldName].Value()),
		ListenAddr: strings.TrimSpace(e.inputs[fieldListen].Value()),
		ServerAddr: addr,
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// View renders the form with labeled fields, an optional error line and
// keyboard hints.
func (e Editor) View() string {
	var b strings.Builder

	title := "New profile"
	if !e.Creating() {
		title = fmt.Sprintf("Edit profile %q", e.key)
	}
	b.WriteString(TitleStyle.Render(" " + title))
	b.WriteString("\n\n")

	for i := range e.inputs {
		label := fieldLabels[i]
		if i == e.focus {
			b.WriteString(LabelFocusedStyle.Render(fmt.Sprintf(" %-16s", label)))
		} else {
			b.WriteString(LabelStyle.Render(fmt.Sprintf(" %-16s", label)))
		}
		b.WriteString(e.inputs[i].View())
		b.WriteString("\n")
	}

	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(" " + e.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(" Tab: next field · Enter: save · Esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
