package sdl

import "github.com/veandco/go-sdl2/sdl"

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// Below we have a mapping QWERTY keyboard to the CHIP-8 keypad
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
var keypadScancodes = [16]sdl.Scancode{
	0x0: sdl.SCANCODE_X,
	0x1: sdl.SCANCODE_1,
	0x2: sdl.SCANCODE_2,
	0x3: sdl.SCANCODE_3,
	0x4: sdl.SCANCODE_Q,
	0x5: sdl.SCANCODE_W,
	0x6: sdl.SCANCODE_E,
	0x7: sdl.SCANCODE_A,
	0x8: sdl.SCANCODE_S,
	0x9: sdl.SCANCODE_D,
	0xA: sdl.SCANCODE_Z,
	0xB: sdl.SCANCODE_C,
	0xC: sdl.SCANCODE_4,
	0xD: sdl.SCANCODE_R,
	0xE: sdl.SCANCODE_F,
	0xF: sdl.SCANCODE_V,
}

// quitScancode ends emulation and is never mapped to a keypad key.
const quitScancode = sdl.SCANCODE_ESCAPE

var scancodeKeys = func() map[sdl.Scancode]uint8 {
	m := make(map[sdl.Scancode]uint8, len(keypadScancodes))
	for key, code := range keypadScancodes {
		m[code] = uint8(key)
	}
	return m
}()

// keymap returns the keypad key of a scancode.
func keymap(code sdl.Scancode) (uint8, bool) {
	key, ok := scancodeKeys[code]
	return key, ok
}

// scancode returns the keyboard scancode of keypad key 0-F.
func scancode(key uint8) sdl.Scancode {
	return keypadScancodes[key&0xF]
}
