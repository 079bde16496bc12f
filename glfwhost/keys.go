package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/solarlune/glcube"
)

// Left and right modifiers share a name; Host passes the glfw key as the code so that KeyState keeps the name down
// until both sides are released.
var namedKeys = map[glfw.Key]string{
	glfw.KeyEscape:       glcube.KeyEscape,
	glfw.KeyEnter:        glcube.KeyEnter,
	glfw.KeyKPEnter:      glcube.KeyEnter,
	glfw.KeySpace:        glcube.KeySpace,
	glfw.KeyLeft:         glcube.KeyArrowLeft,
	glfw.KeyRight:        glcube.KeyArrowRight,
	glfw.KeyUp:           glcube.KeyArrowUp,
	glfw.KeyDown:         glcube.KeyArrowDown,
	glfw.KeyTab:          "Tab",
	glfw.KeyBackspace:    "Backspace",
	glfw.KeyLeftShift:    "Shift",
	glfw.KeyRightShift:   "Shift",
	glfw.KeyLeftControl:  "Control",
	glfw.KeyRightControl: "Control",
}

// keyName maps a glfw key to the name KeyState uses for it. Printable keys use the character the active keyboard
// layout produces; unknown keys map to "".
func keyName(key glfw.Key, scancode int) string {

	if name, ok := namedKeys[key]; ok {
		return name
	}

	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}

	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + int(key-glfw.KeyA)))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + int(key-glfw.Key0)))
	}

	return ""

}
