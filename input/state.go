// Package input folds terminal events into one per-frame State
package input

// Events is a bitmask of what happened since the last Clear
type Events uint8

const (
	PointerMove Events = 1 << iota // Pointer row changed
	Click                          // Primary button pressed, or Enter/Space
	Escape                         // Escape key
	Close                          // Ctrl+C or Ctrl+Q
	Key                            // State.Key holds a character code
	Resize                         // Terminal size changed
)

// Character codes carried in State.Key for non-printable keys
const (
	CodeBackspace = 8
	CodeEnter     = 13
)

// State is the input seen by one frame
type State struct {
	PointerY int  // Field Y, pixels
	Events   Events
	Key      rune // Last printable rune, CodeBackspace or CodeEnter; valid with Key
}

// Has reports whether every bit in e is set
func (s State) Has(e Events) bool {
	return s.Events&e == e
}
