package internal

// KeyState reports the state of the 16-key hex keypad.
type KeyState interface {
	// IsPressed returns whether key 0-F is held down.
	IsPressed(key uint8) bool
	// PressedKey returns the lowest key currently held down.
	PressedKey() (uint8, bool)
}

// Keypad is a KeyState backed by a 16-bit mask, bit n set while key n is down.
type Keypad struct {
	key uint16
}

// SetKeymask sets the respective bit in the key
func (k *Keypad) SetKeymask(code uint8) {
	k.key |= 1 << (code & 0xF)
}

// UnsetKeymask unsets the respective bit in the key
func (k *Keypad) UnsetKeymask(code uint8) {
	k.key &^= 1 << (code & 0xF)
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.key = 0
}

// IsPressed implements KeyState.
func (k *Keypad) IsPressed(code uint8) bool {
	mask := uint16(1) << (code & 0xF)
	return k.key&mask == mask
}

// PressedKey implements KeyState.
func (k *Keypad) PressedKey() (uint8, bool) {
	for code := uint8(0); code <= 0xF; code++ {
		if k.IsPressed(code) {
			return code, true
		}
	}
	return 0, false
}

// keyWait tracks an outstanding LD Vx, K. A key is captured only once it
// has been seen down and then released.
type keyWait struct {
	active   bool
	register uint8
	pressed  bool  // a key was seen down since the wait began
	key      uint8 // the key seen down, valid while pressed is set
}

func (vm *C8VM) beginKeyWait(register uint8) {
	vm.wait = keyWait{active: true, register: register}
}

// pollKeyWait advances the key wait by one tick.
func (vm *C8VM) pollKeyWait(keys KeyState) {
	w := &vm.wait
	if !w.pressed {
		if key, ok := keys.PressedKey(); ok {
			w.pressed = true
			w.key = key
		}
		return
	}

	if keys.IsPressed(w.key) {
		return
	}
	vm.regV[w.register] = w.key
	vm.wait = keyWait{}
}
