package bramble

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Chord is a key plus the exact set of modifiers that must be held.
type Chord struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// String returns a human-readable form such as "CTRL+SHIFT+A".
func (c Chord) String() string {
	var parts []string
	if c.Modifiers&ModShift != 0 {
		parts = append(parts, "SHIFT")
	}
	if c.Modifiers&ModCtrl != 0 {
		parts = append(parts, "CTRL")
	}
	if c.Modifiers&ModAlt != 0 {
		parts = append(parts, "ALT")
	}
	if c.Modifiers&ModMeta != 0 {
		parts = append(parts, "META")
	}
	parts = append(parts, strings.ToUpper(c.Key.String()))
	return strings.Join(parts, "+")
}

// KeyMap routes key-down events that no focused box consumed to scene-level
// handlers. Bindings match the chord's modifiers exactly.
type KeyMap struct {
	bindings map[Chord]func(KeyEvent) bool
}

// NewKeyMap creates an empty key map.
func NewKeyMap() *KeyMap {
	return &KeyMap{bindings: make(map[Chord]func(KeyEvent) bool)}
}

// Bind registers a handler for the chord, replacing any existing binding.
// The handler returns true to consume the event.
func (m *KeyMap) Bind(c Chord, fn func(KeyEvent) bool) {
	m.bindings[c] = fn
}

// Unbind removes the binding for the chord, if any.
func (m *KeyMap) Unbind(c Chord) {
	delete(m.bindings, c)
}

// dispatch fires the binding matching a key-down event. Key-up events and
// unbound chords report unhandled.
func (m *KeyMap) dispatch(ke KeyEvent) bool {
	if !ke.Pressed {
		return false
	}
	fn, ok := m.bindings[Chord{Key: ke.Key, Modifiers: ke.Modifiers}]
	if !ok {
		return false
	}
	return fn(ke)
}
