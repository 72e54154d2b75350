package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wstdesk/wstdesk/internal/profile"
)

// List is the profile list pane: a cursor over the ordered profile list.
type List struct {
	profiles []profile.Profile
	cursor   int
	width    int
	height   int
}

// NewList creates a list pane over the given profiles.
func NewList(profiles []profile.Profile) List {
	return List{profiles: profiles}
}

// SetProfiles replaces the rows, clamping the cursor to the new length.
func (l *List) SetProfiles(profiles []profile.Profile) {
	l.profiles = profiles
	if l.cursor >= len(profiles) {
		l.cursor = len(profiles) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// SetSize sets the render dimensions.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Len returns the number of rows.
func (l List) Len() int {
	return len(l.profiles)
}

// Current returns the profile under the cursor, if any.
func (l List) Current() (profile.Profile, bool) {
	if len(l.profiles) == 0 {
		return profile.Profile{}, false
	}
	return l.profiles[l.cursor], true
}

// Update handles cursor movement keys.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.profiles)-1 {
			l.cursor++
		}
	case "home", "g":
		l.cursor = 0
	case "end", "G":
		if len(l.profiles) > 0 {
			l.cursor = len(l.profiles) - 1
		}
	}
	return l, nil
}

// View renders the pane: a heading, then one row per profile with the
// cursor row highlighted. Rows outside the visible window are scrolled.
func (l List) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf(" Profiles (%d)", len(l.profiles))))
	b.WriteString("\n\n")

	if len(l.profiles) == 0 {
		b.WriteString(EmptyStyle.Render("  No profiles yet. Press n to create one."))
		b.WriteString("\n")
		return b.String()
	}

	visible := l.height - 3 // heading + blank line + trailing newline
	if visible < 1 {
		visible = len(l.profiles)
	}
	start := 0
	if l.cursor >= visible {
		start = l.cursor - visible + 1
	}
	end := start + visible
	if end > len(l.profiles) {
		end = len(l.profiles)
	}

	for i := start; i < end; i++ {
		p := l.profiles[i]
		row := fmt.Sprintf(" %-16s %s", p.Name,
			AddrStyle.Render(fmt.Sprintf("%s → %s", p.ListenAddr, p.ServerAddr)))
		if i == l.cursor {
			b.WriteString(CursorRowStyle.Render(">" + row))
		} else {
			b.WriteString(RowStyle.Render(" " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
