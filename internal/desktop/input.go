package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/game"
)

// keyDown reports whether a key is currently pressed.
type keyDown func(glfw.Key) bool

func windowKeys(w *glfw.Window) keyDown {
	return func(k glfw.Key) bool { return w.GetKey(k) == glfw.Press }
}

// Keys turns polled key levels into the held/pressed input of a tick.
type Keys struct {
	prevKeys map[glfw.Key]bool
}

func NewKeys() *Keys {
	return &Keys{prevKeys: make(map[glfw.Key]bool)}
}

func (k *Keys) JustPressed(down keyDown, key glfw.Key) bool {
	d := down(key)
	jp := d && !k.prevKeys[key]
	k.prevKeys[key] = d
	return jp
}

// Read samples the keyboard once for a tick. Arrows or A/D move, Space
// fires and G throws a grenade.
func (k *Keys) Read(down keyDown) game.Input {
	in := game.Input{
		Left:     down(glfw.KeyLeft) || down(glfw.KeyA),
		Right:    down(glfw.KeyRight) || down(glfw.KeyD),
		FireHeld: down(glfw.KeySpace),
	}
	if k.JustPressed(down, glfw.KeySpace) {
		in.FirePresses = 1
	}
	if k.JustPressed(down, glfw.KeyG) {
		in.GrenadePresses = 1
	}
	return in
}

// Restart reports an R or Enter press on the game over screen.
func (k *Keys) Restart(down keyDown) bool {
	r := k.JustPressed(down, glfw.KeyR)
	enter := k.JustPressed(down, glfw.KeyEnter)
	return r || enter
}
