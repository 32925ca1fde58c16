// Package theme reconciles the user's light/dark choice with the OS
// appearance.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the visual mode
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default applies when neither a preference nor an OS signal exists
	Default = Dark
)

// StorageKey is the single persisted key holding the theme
const StorageKey = "theme"

// Parse converts stored text into a Theme. Anything but "light" or "dark"
// reports false.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t == Dark
}

// Store is a synchronous key-value slot for the persisted preference
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Hook reflects the active theme onto the rendering layer
type Hook func(Theme)

// State holds the active theme and the tracked OS preference
type State struct {
	store    Store
	hook     Hook
	current  Theme
	system   Theme
	explicit bool
}

// New reconciles the stored preference with the OS preference. A valid
// stored value wins and marks the preference as explicit; otherwise the
// OS preference is adopted and written to the store.
func New(store Store, system Theme, hook Hook) (*State, error) {
	if _, ok := Parse(string(system)); !ok {
		system = Default
	}
	s := &State{
		store:  store,
		hook:   hook,
		system: system,
	}

	raw, found, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme preference: %w", err)
	}
	if stored, ok := Parse(raw); found && ok {
		s.current = stored
		s.explicit = true
		s.apply()
		return s, nil
	}

	if err := s.commit(system); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active theme
func (s *State) Current() Theme {
	return s.current
}

// System returns the tracked OS preference
func (s *State) System() Theme {
	return s.system
}

// Explicit reports whether the user's choice overrides the OS signal
func (s *State) Explicit() bool {
	return s.explicit
}

// CanRestore reports whether restoring the OS preference would change
// the active theme
func (s *State) CanRestore() bool {
	return s.current != s.system
}

// Toggle flips the active theme and persists it as the user's choice
func (s *State) Toggle() error {
	return s.set(s.current.Opposite())
}

// RestoreSystem makes the tracked OS preference the active theme and
// persists it
func (s *State) RestoreSystem() error {
	return s.set(s.system)
}

// SystemChanged records a new OS preference. It becomes active, and is
// persisted, only when no explicit preference exists. It reports whether
// the active theme changed.
func (s *State) SystemChanged(t Theme) (bool, error) {
	if _, ok := Parse(string(t)); !ok {
		return false, nil
	}
	s.system = t
	if s.explicit || s.current == t {
		return false, nil
	}
	if err := s.commit(t); err != nil {
		return false, err
	}
	return true, nil
}

func (s *State) set(t Theme) error {
	if err := s.commit(t); err != nil {
		return err
	}
	s.explicit = true
	return nil
}

// commit persists t and makes it the active theme. The stored key always
// mirrors the active theme.
func (s *State) commit(t Theme) error {
	if err := s.store.Set(StorageKey, string(t)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.current = t
	s.apply()
	return nil
}

func (s *State) apply() {
	if s.hook != nil {
		s.hook(s.current)
	}
}
