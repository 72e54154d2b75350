package controller

import (
	"errors"
	"fmt"

	"github.com/wstdesk/wstdesk/internal/profile"
)

// Mode is the controller's view-mode flag.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
)

var (
	// ErrNotFound is returned when an operation names a profile that is no
	// longer in the list.
	ErrNotFound = errors.New("profile not found")

	// ErrDuplicateName is returned when a commit or rename would produce
	// two profiles with the same name.
	ErrDuplicateName = errors.New("a profile with this name already exists")
)

// ListStore is the persistence contract the controller drives: read the
// whole list, write the whole list.
type ListStore interface {
	LoadAll() ([]profile.Profile, error)
	SaveAll([]profile.Profile) error
}

// Controller owns the in-memory profile list, the current selection and
// the view mode, and mediates every mutation to the store. It is the only
// mutator; the store it wraps is injected, never reached globally.
type Controller struct {
	store    ListStore
	list     []profile.Profile
	selected *profile.Profile
	mode     Mode
}

// New creates an idle controller with an empty list. Call Load to hydrate.
func New(store ListStore) *Controller {
	return &Controller{store: store, list: []profile.Profile{}}
}

// Load hydrates the list from the store. Called once at startup.
func (c *Controller) Load() error {
	list, err := c.store.LoadAll()
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	c.list = list
	return nil
}

// Profiles returns a copy of the current list in insertion order.
func (c *Controller) Profiles() []profile.Profile {
	out := make([]profile.Profile, len(c.list))
	copy(out, c.list)
	return out
}

// Mode returns the current view mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Selected returns a copy of the profile loaded into the editor, if any.
func (c *Controller) Selected() (profile.Profile, bool) {
	if c.selected == nil {
		return profile.Profile{}, false
	}
	return *c.selected, true
}

// OpenForCreate enters editing mode with no selection; the edit surface
// starts from a blank template.
func (c *Controller) OpenForCreate() {
	c.mode = ModeEditing
	c.selected = nil
}

// OpenForEdit enters editing mode with a copy of the named profile as the
// selection. Edits happen on the copy and reach the list only through
// Commit or UpdateInPlace. A name matching nothing returns ErrNotFound.
func (c *Controller) OpenForEdit(name string) (profile.Profile, error) {
	for _, p := range c.list {
		if p.Name == name {
			cp := p
			c.selected = &cp
			c.mode = ModeEditing
			return cp, nil
		}
	}
	return profile.Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Commit validates and appends a new profile, rewrites the store, and
// returns to idle. Prior entries keep their order; names must be unique.
func (c *Controller) Commit(p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, existing := range c.list {
		if existing.Name == p.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
	}
	c.list = append(c.list, p)
	c.selected = nil
	c.mode = ModeIdle
	return c.store.SaveAll(c.list)
}

// UpdateInPlace replaces the first profile named oldName with p, keeping
// its position in the list. Renaming onto another existing profile is
// rejected with ErrDuplicateName.
func (c *Controller) UpdateInPlace(oldName string, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	idx := -1
	for i, existing := range c.list {
		if existing.Name == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	for i, existing := range c.list {
		if i != idx && existing.Name == p.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
	}
	c.list[idx] = p
	c.selected = nil
	c.mode = ModeIdle
	return c.store.SaveAll(c.list)
}

// Remove filters out every profile sharing the given name, preserving the
// relative order of the rest, and rewrites the store even when nothing
// matched (an idempotent no-op write). Removing the current selection
// returns the controller to idle.
func (c *Controller) Remove(name string) error {
	kept := make([]profile.Profile, 0, len(c.list))
	for _, p := range c.list {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	c.list = kept
	if c.selected != nil && c.selected.Name == name {
		c.selected = nil
		c.mode = ModeIdle
	}
	return c.store.SaveAll(c.list)
}

// Cancel leaves editing mode without touching the list.
func (c *Controller) Cancel() {
	c.mode = ModeIdle
	c.selected = nil
}
