package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/vmath"
)

// NudgeStep is how far one arrow press moves the pointer, in field pixels
const NudgeStep = 8

// keyBinding describes what a special key contributes to the frame state
type keyBinding struct {
	events Events
	code   rune
	nudge  int
}

// specialKeys maps non-rune keys; anything absent is ignored
var specialKeys = map[tcell.Key]keyBinding{
	tcell.KeyEscape:     {events: Escape},
	tcell.KeyCtrlC:      {events: Close},
	tcell.KeyCtrlQ:      {events: Close},
	tcell.KeyEnter:      {events: Key | Click, code: CodeEnter},
	tcell.KeyBackspace:  {events: Key, code: CodeBackspace},
	tcell.KeyBackspace2: {events: Key, code: CodeBackspace},
	tcell.KeyUp:         {events: PointerMove, nudge: -NudgeStep},
	tcell.KeyDown:       {events: PointerMove, nudge: NudgeStep},
}

// Translator accumulates tcell events between frames
// Not safe for concurrent use: feed it from the frame loop
type Translator struct {
	fieldHeight int

	// Viewport rows occupied by the field on screen
	top, rows int

	state      State
	buttonDown bool
}

// NewTranslator starts with the pointer centred and a one-to-one viewport
func NewTranslator(fieldHeight int) *Translator {
	if fieldHeight < 1 {
		fieldHeight = 1
	}
	return &Translator{
		fieldHeight: fieldHeight,
		rows:        fieldHeight,
		state:       State{PointerY: fieldHeight / 2},
	}
}

// SetViewport tells the translator which terminal rows show the field
func (t *Translator) SetViewport(top, rows int) {
	if rows < 1 {
		rows = 1
	}
	t.top = top
	t.rows = rows
}

// Handle folds one terminal event into the pending state
func (t *Translator) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		_, row := ev.Position()
		t.HandleMouse(row, ev.Buttons())
	case *tcell.EventResize:
		t.state.Events |= Resize
	}
}

// HandleKey applies a key press; r is only read for tcell.KeyRune
func (t *Translator) HandleKey(k tcell.Key, r rune) {
	if k == tcell.KeyRune {
		t.state.Events |= Key
		t.state.Key = r
		if r == ' ' {
			t.state.Events |= Click
		}
		return
	}

	b, ok := specialKeys[k]
	if !ok {
		return
	}
	t.state.Events |= b.events
	if b.events&Key != 0 {
		t.state.Key = b.code
	}
	if b.nudge != 0 {
		t.state.PointerY = vmath.Clamp(t.state.PointerY+b.nudge, 0, t.fieldHeight-1)
	}
}

// HandleMouse moves the pointer to row and reports a click on the button-down edge
func (t *Translator) HandleMouse(row int, buttons tcell.ButtonMask) {
	y := t.RowToField(row)
	if y != t.state.PointerY {
		t.state.PointerY = y
		t.state.Events |= PointerMove
	}

	down := buttons&tcell.Button1 != 0
	if down && !t.buttonDown {
		t.state.Events |= Click
	}
	t.buttonDown = down
}

// RowToField maps a terminal row to the field Y at the centre of that row
func (t *Translator) RowToField(row int) int {
	rel := row - t.top
	y := (2*rel + 1) * t.fieldHeight / (2 * t.rows)
	return vmath.Clamp(y, 0, t.fieldHeight-1)
}

// State returns the accumulated input
func (t *Translator) State() State {
	return t.state
}

// Clear drops per-frame events, the pointer position is kept
func (t *Translator) Clear() {
	t.state.Events = 0
	t.state.Key = 0
}
