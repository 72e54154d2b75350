package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row: mode, profile count and keyboard
// shortcuts, or a transient error when one is set.
type StatusBar struct {
	mode    string
	count   int
	editing bool
	errMsg  string
	width   int
}

// NewStatusBar creates a status bar in browse mode.
func NewStatusBar() StatusBar {
	return StatusBar{mode: "browse"}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetState refreshes the mode label and profile count.
func (s *StatusBar) SetState(mode string, count int, editing bool) {
	s.mode = mode
	s.count = count
	s.editing = editing
}

// SetError shows an error until ClearError is called.
func (s *StatusBar) SetError(msg string) {
	s.errMsg = msg
}

// ClearError removes the error, restoring the normal bar.
func (s *StatusBar) ClearError() {
	s.errMsg = ""
}

// View renders the status bar.
func (s StatusBar) View() string {
	if s.errMsg != "" {
		return StatusBarErrorStyle.Width(s.width).Render("✗ " + s.errMsg)
	}

	left := fmt.Sprintf("%s · %d profile(s)", s.mode, s.count)

	var shortcuts []string
	if s.editing {
		shortcuts = []string{
			StatusBarKeyStyle.Render("Enter") + ": save",
			StatusBarKeyStyle.Render("Esc") + ": cancel",
		}
	} else {
		shortcuts = []string{
			StatusBarKeyStyle.Render("n") + ": new",
			StatusBarKeyStyle.Render("Enter") + ": edit",
			StatusBarKeyStyle.Render("d") + ": delete",
			StatusBarKeyStyle.Render("q") + ": quit",
		}
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + rightPart)
}
