package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wstdesk/wstdesk/internal/controller"
	"github.com/wstdesk/wstdesk/internal/profile"
)

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone          overlayContext = iota
	overlayDeleteConfirm                // delete profile confirmation
	overlayQuitConfirm                  // quit confirmation from Esc
)

// Model is the root bubbletea model. It mirrors the controller's mode:
// idle shows the profile list, editing shows the form.
type Model struct {
	ctl *controller.Controller

	list    List
	editor  Editor
	overlay Overlay
	status  StatusBar

	overlayCtx    overlayContext
	pendingDelete string // profile name awaiting delete confirmation

	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
}

// NewModel creates the root model over a hydrated controller.
func NewModel(ctl *controller.Controller) Model {
	m := Model{ctl: ctl}
	m.list = NewList(ctl.Profiles())
	m.status = NewStatusBar()
	m.syncStatus()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. Routes messages to the active component.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.ready = true
		m.distributeSize()
		return m, nil
	}

	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	if m.ctl.Mode() == controller.ModeEditing {
		return m.updateEditor(msg)
	}

	return m.updateList(msg)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	contentHeight := m.height - 1 // status bar takes the last row

	var content string
	if m.ctl.Mode() == controller.ModeEditing {
		content = m.editor.View()
	} else {
		content = m.list.View()
	}

	frame := padHeight(clampHeight(content, contentHeight), contentHeight) +
		"\n" + m.status.View()

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// --- Update helpers ---

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		// Any keypress clears a stale error from the status bar.
		m.status.ClearError()

		switch key.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			m.overlay = NewConfirmOverlay("Quit", "Exit the profile manager?")
			m.overlayCtx = overlayQuitConfirm
			return m, nil

		case "n":
			m.ctl.OpenForCreate()
			m.editor = NewEditor("", profile.Profile{})
			m.distributeSize()
			m.syncStatus()
			return m, nil

		case "enter", "e":
			cur, ok := m.list.Current()
			if !ok {
				return m, nil
			}
			p, err := m.ctl.OpenForEdit(cur.Name)
			if err != nil {
				// The row vanished under us; resync from the controller.
				m.status.SetError(err.Error())
				m.refresh()
				return m, nil
			}
			m.editor = NewEditor(p.Name, p)
			m.distributeSize()
			m.syncStatus()
			return m, nil

		case "d":
			cur, ok := m.list.Current()
			if !ok {
				return m, nil
			}
			m.pendingDelete = cur.Name
			m.overlay = NewConfirmOverlay("Delete profile",
				fmt.Sprintf("Delete profile %q?", cur.Name))
			m.overlayCtx = overlayDeleteConfirm
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if done := extractEditorDone(cmd); done != nil {
		return m.handleEditorDone(*done)
	}
	return m, cmd
}

func (m Model) handleEditorDone(msg EditorDoneMsg) (tea.Model, tea.Cmd) {
	if !msg.Confirmed {
		m.ctl.Cancel()
		m.refresh()
		return m, nil
	}

	var err error
	if msg.Key == "" {
		err = m.ctl.Commit(msg.Profile)
	} else {
		err = m.ctl.UpdateInPlace(msg.Key, msg.Profile)
	}
	if err != nil {
		if m.ctl.Mode() == controller.ModeEditing {
			// Rejected input (duplicate name, stale entry): keep editing.
			m.editor.SetError(err.Error())
			return m, nil
		}
		// The write itself failed; back to the list with the error visible.
		m.refresh()
		m.status.SetError(err.Error())
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg := extractOverlayClose(cmd); closeMsg != nil {
			return m.handleOverlayClose(*closeMsg)
		}
	}
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone

	switch ctx {
	case overlayDeleteConfirm:
		name := m.pendingDelete
		m.pendingDelete = ""
		if msg.Confirmed && name != "" {
			if err := m.ctl.Remove(name); err != nil {
				m.refresh()
				m.status.SetError(err.Error())
				return m, nil
			}
			m.refresh()
		}

	case overlayQuitConfirm:
		if msg.Confirmed {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// --- Sync helpers ---

// refresh pulls the controller state back into the view components.
func (m *Model) refresh() {
	m.list.SetProfiles(m.ctl.Profiles())
	m.syncStatus()
}

func (m *Model) syncStatus() {
	editing := m.ctl.Mode() == controller.ModeEditing
	mode := "browse"
	if editing {
		mode = "edit"
	}
	m.status.SetState(mode, m.list.Len(), editing)
}

func (m *Model) distributeSize() {
	contentHeight := m.height - 1
	m.list.SetSize(m.width, contentHeight)
	m.editor.SetWidth(m.width)
	m.status.SetWidth(m.width)
}

// clampHeight truncates s to at most maxLines lines.
func clampHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// padHeight pads s with blank lines up to exactly lines rows.
func padHeight(s string, lines int) string {
	have := strings.Count(s, "\n") + 1
	if have >= lines {
		return s
	}
	return s + strings.Repeat("\n", lines-have)
}

// --- Message extraction helpers ---
// These run a tea.Cmd synchronously to extract the message it produces.
// Safe because the editor and overlay commands are simple closures.

func extractEditorDone(cmd tea.Cmd) *EditorDoneMsg {
	if cmd == nil {
		return nil
	}
	if m, ok := cmd().(EditorDoneMsg); ok {
		return &m
	}
	return nil
}

func extractOverlayClose(cmd tea.Cmd) *OverlayCloseMsg {
	if cmd == nil {
		return nil
	}
	if m, ok := cmd().(OverlayCloseMsg); ok {
		return &m
	}
	return nil
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
