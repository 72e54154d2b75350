package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wstdesk/wstdesk/internal/profile"
)

func editorKeys(e Editor, msgs ...tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		for _, k := range typedKeys(msg) {
			e, cmd = e.Update(k)
		}
	}
	return e, cmd
}

func TestNewEditorPrefill(t *testing.T) {
	p := prof("home")
	e := NewEditor("home", p)

	assert.Equal(t, "home", e.Key())
	assert.False(t, e.Creating())
	view := e.View()
	assert.Contains(t, view, `Edit profile "home"`)
	assert.Contains(t, view, "127.0.0.1:8080")
	assert.Contains(t, view, "wss://tunnel.example.com")
}

func TestNewEditorBlank(t *testing.T) {
	e := NewEditor("", profile.Profile{})
	assert.True(t, e.Creating())
	assert.Contains(t, e.View(), "New profile")
}

func TestEditorSubmitValid(t *testing.T) {
	e := NewEditor("", profile.Profile{})
	e, cmd := editorKeys(e,
		keyRunes("home"),
		keyType(tea.KeyTab),
		keyRunes("127.0.0.1:8080"),
		keyType(tea.KeyTab),
		keyRunes("wss://tunnel.example.com"),
		keyType(tea.KeyEnter),
	)

	require.NotNil(t, cmd)
	done, ok := cmd().(EditorDoneMsg)
	require.True(t, ok)
	assert.True(t, done.Confirmed)
	assert.Empty(t, done.Key)
	assert.Equal(t, "home", done.Profile.Name)
	assert.Equal(t, "wss", done.Profile.ServerAddr.Scheme)
	assert.Equal(t, "tunnel.example.com", done.Profile.ServerAddr.Host)
}

func TestEditorSubmitInvalidStaysOpen(t *testing.T) {
	e := NewEditor("", profile.Profile{})
	e, cmd := editorKeys(e,
		keyRunes("home"),
		keyType(tea.KeyEnter),
	)

	assert.Nil(t, cmd)
	assert.Contains(t, e.View(), "server address")
}

func TestEditorRejectsBadScheme(t *testing.T) {
	e := NewEditor("", profile.Profile{})
	e, cmd := editorKeys(e,
		keyRunes("home"),
		keyType(tea.KeyTab),
		keyRunes("127.0.0.1:8080"),
		keyType(tea.KeyTab),
		keyRunes("ftp://tunnel.example.com"),
		keyType(tea.KeyEnter),
	)

	assert.Nil(t, cmd)
	assert.Contains(t, e.View(), "ftp")
}

func TestEditorEscCancels(t *testing.T) {
	e := NewEditor("home", prof("home"))
	_, cmd := editorKeys(e, keyRunes("-edited"), keyType(tea.KeyEsc))

	require.NotNil(t, cmd)
	done, ok := cmd().(EditorDoneMsg)
	require.True(t, ok)
	assert.False(t, done.Confirmed)
	assert.Equal(t, "home", done.Key)
}

func TestEditorFocusCycles(t *testing.T) {
	e := NewEditor("", profile.Profile{})
	assert.Equal(t, fieldName, e.focus)

	e, _ = editorKeys(e, keyType(tea.KeyTab))
	assert.Equal(t, fieldListen, e.focus)

	e, _ = editorKeys(e, keyType(tea.KeyTab), keyType(tea.KeyTab))
	assert.Equal(t, fieldName, e.focus)

	e, _ = editorKeys(e, keyType(tea.KeyShiftTab))
	assert.Equal(t, fieldServer, e.focus)
}

func TestEditorSetError(t *testing.T) {
	e := NewEditor("home", prof("home"))
	e.SetError("a profile with this name already exists")
	assert.Contains(t, e.View(), "already exists")
}
