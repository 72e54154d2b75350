package tui

import "github.com/wstdesk/wstdesk/internal/profile"

// EditorDoneMsg is emitted when the editor is submitted or cancelled.
type EditorDoneMsg struct {
	Key       string          // name the editor was opened for; "" when creating
	Profile   profile.Profile // parsed result, meaningful only when Confirmed
	Confirmed bool            // true = save, false = cancel
}

// OverlayCloseMsg is emitted when the confirm overlay is dismissed.
type OverlayCloseMsg struct {
	Confirmed bool // true = OK, false = Cancel/Esc
}
