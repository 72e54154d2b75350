package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Overlay is a centered Yes/No confirmation modal rendered on top of the
// current frame.
type Overlay struct {
	title   string
	message string
	cursor  int // 0 = Cancel, 1 = OK
	active  bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
// The cursor defaults to OK.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		title:   title,
		message: message,
		cursor:  1,
		active:  true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key.String() {
	case "esc":
		o.active = false
		return o, func() tea.Msg {
			return OverlayCloseMsg{Confirmed: false}
		}
	case "tab", "left", "right", "h", "l":
		o.cursor = 1 - o.cursor
	case "enter":
		o.active = false
		confirmed := o.cursor == 1
		return o, func() tea.Msg {
			return OverlayCloseMsg{Confirmed: confirmed}
		}
	}
	return o, nil
}

// View renders the overlay box. Compositing over the background frame is
// the caller's responsibility via Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")

	var cancelBtn, okBtn string
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render("Cancel")
		okBtn = OverlayButtonInactiveStyle.Render("OK")
	} else {
		cancelBtn = OverlayButtonInactiveStyle.Render("Cancel")
		okBtn = OverlayButtonActiveStyle.Render("OK")
	}
	b.WriteString(cancelBtn + "  " + okBtn)

	return OverlayStyle.Render(b.String())
}

// Composite places the overlay box centered on top of the background
// string. The background is expected to be a fully rendered frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayHeight := len(overlayLines)
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - overlayHeight) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgRunes := []rune(bgLines[row])

		leftPad := ""
		if startCol > 0 {
			if startCol <= len(bgRunes) {
				leftPad = string(bgRunes[:startCol])
			} else {
				leftPad = string(bgRunes) + strings.Repeat(" ", startCol-len(bgRunes))
			}
		}

		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		rightPad := ""
		if overlayEnd < len(bgRunes) {
			rightPad = string(bgRunes[overlayEnd:])
		}

		bgLines[row] = leftPad + overlayLine + rightPad
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}
