package internal

// State is a point in time copy of the machine registers, used for tracing
// and state dumps.
type State struct {
	V           [registerCount]uint8
	I           uint16
	PC          uint16
	Stack       []uint16
	DelayTimer  uint8
	SoundTimer  uint8
	AwaitingKey bool
	KeyRegister uint8
}

// Snapshot returns a copy of the current register state.
func (vm *C8VM) Snapshot() State {
	return State{
		V:           vm.regV,
		I:           vm.regI,
		PC:          vm.pc,
		Stack:       append([]uint16(nil), vm.stack...),
		DelayTimer:  vm.delayTimer,
		SoundTimer:  vm.soundTimer,
		AwaitingKey: vm.wait.active,
		KeyRegister: vm.wait.register,
	}
}
