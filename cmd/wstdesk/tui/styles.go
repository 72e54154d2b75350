package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// List pane styles.
var (
	// TitleStyle is used for the pane heading.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// CursorRowStyle is used for the row under the cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Background(colorSurface1).
			Bold(true)

	// RowStyle is used for non-selected rows.
	RowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// AddrStyle renders the listen/server address column.
	AddrStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// EmptyStyle is used for the empty-list hint.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)
)

// Editor styles.
var (
	// LabelStyle is used for unfocused field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// LabelFocusedStyle highlights the label of the focused field.
	LabelFocusedStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	// ErrorStyle renders validation and store errors inside the editor.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	// HelpStyle renders keyboard hints below the form.
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusBarErrorStyle replaces the whole bar while an error is shown.
	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0).
				Padding(0, 1)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for the confirm modal.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle renders the modal title.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayButtonActiveStyle is the button under the cursor.
	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2).
					Bold(true)

	// OverlayButtonInactiveStyle is the other button.
	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface0).
					Padding(0, 2)
)
