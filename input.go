package glcube

// Key names reported by hosts. They follow the DOM KeyboardEvent.key values, so printable keys are their own
// lowercase character ("a", "1", " ").
const (
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
)

// KeyState tracks which keys are currently held down. A host feeds it from its input events and the frame loop
// passes it to Game.Update; nothing about it is global.
type KeyState struct {
	// held maps a key name to the physical key codes holding it down.
	held map[string]map[int]bool
}

// anyCode stands for the physical key behind a Press or Release without a code.
const anyCode = -1

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{held: map[string]map[int]bool{}}
}

// Press marks the named key as held down.
func (keys *KeyState) Press(key string) {
	keys.PressCode(key, anyCode)
}

// Release marks the named key as no longer held down, however many physical keys were holding it.
func (keys *KeyState) Release(key string) {
	delete(keys.held, key)
}

// PressCode marks the named key as held down by the physical key code given. Several physical keys can share a
// name, like the left and right Shift keys.
func (keys *KeyState) PressCode(key string, code int) {
	if keys.held == nil {
		keys.held = map[string]map[int]bool{}
	}
	codes, ok := keys.held[key]
	if !ok {
		codes = map[int]bool{}
		keys.held[key] = codes
	}
	codes[code] = true
}

// ReleaseCode releases the physical key code given; the named key stays down while another code still holds it.
func (keys *KeyState) ReleaseCode(key string, code int) {
	codes := keys.held[key]
	delete(codes, code)
	if len(codes) == 0 {
		delete(keys.held, key)
	}
}

// Down returns whether the named key is held down. A nil KeyState has no keys down.
func (keys *KeyState) Down(key string) bool {
	if keys == nil {
		return false
	}
	return len(keys.held[key]) > 0
}

// Any returns whether at least one of the named keys is held down.
func (keys *KeyState) Any(names ...string) bool {
	for _, key := range names {
		if keys.Down(key) {
			return true
		}
	}
	return false
}

// Axis returns -1, 0 or 1 depending on which of the negative and positive keys are held down; holding both cancels out.
func (keys *KeyState) Axis(negative, positive string) float32 {
	var axis float32
	if keys.Down(negative) {
		axis--
	}
	if keys.Down(positive) {
		axis++
	}
	return axis
}

// Reset releases every key, such as when the window loses focus.
func (keys *KeyState) Reset() {
	clear(keys.held)
}
