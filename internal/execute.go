package internal

// Execute applies a decoded operation to the VM state. Skip instructions
// evaluate their condition here and the skip is applied once the operation
// has run.
func (vm *C8VM) Execute(op Operation, keys KeyState) error {
	skip, err := vm.apply(op, keys)
	if err != nil {
		return err
	}
	if skip {
		vm.pc += 2
	}
	return nil
}

func (vm *C8VM) apply(op Operation, keys KeyState) (bool, error) {
	x, y := op.X&0xF, op.Y&0xF

	switch op.Kind {
	case OpNone:

	case OpClearScreen: // CLS
		vm.pixels.clear()
		vm.drawFlag = true

	case OpReturn: // RET
		depth := len(vm.stack)
		if depth == 0 {
			return false, ErrStackUnderflow
		}
		vm.pc = vm.stack[depth-1]
		vm.stack = vm.stack[:depth-1]

	case OpJump: // JP nnn
		vm.pc = op.NNN

	case OpCall: // CALL nnn
		vm.stack = append(vm.stack, vm.pc)
		vm.pc = op.NNN

	case OpSkipEqual: // SE Vx, nn
		return vm.regV[x] == op.NN, nil

	case OpSkipNotEqual: // SNE Vx, nn
		return vm.regV[x] != op.NN, nil

	case OpSkipEqualRegister: // SE Vx, Vy
		return vm.regV[x] == vm.regV[y], nil

	case OpSkipNotEqualRegister: // SNE Vx, Vy
		return vm.regV[x] != vm.regV[y], nil

	case OpSetRegister: // LD Vx, nn
		vm.regV[x] = op.NN

	case OpAddToRegister: // ADD Vx, nn
		vm.regV[x] += op.NN

	case OpCopyRegister: // LD Vx, Vy
		vm.regV[x] = vm.regV[y]

	case OpOr: // OR Vx, Vy
		vm.regV[x] |= vm.regV[y]

	case OpAnd: // AND Vx, Vy
		vm.regV[x] &= vm.regV[y]

	case OpXor: // XOR Vx, Vy
		vm.regV[x] ^= vm.regV[y]

	case OpAddRegisters: // ADD Vx, Vy
		sum := uint16(vm.regV[x]) + uint16(vm.regV[y])
		vm.regV[x] = uint8(sum)
		vm.setFlag(sum > 0xFF)

	case OpSubtract: // SUB Vx, Vy
		noBorrow := vm.regV[x] > vm.regV[y]
		vm.regV[x] -= vm.regV[y]
		vm.setFlag(noBorrow)

	case OpSubtractReverse: // SUBN Vx, Vy
		noBorrow := vm.regV[y] > vm.regV[x]
		vm.regV[x] = vm.regV[y] - vm.regV[x]
		vm.setFlag(noBorrow)

	case OpShiftRight: // SHR Vx
		out := vm.regV[x] & 0x01
		vm.regV[x] >>= 1
		vm.regV[flagRegister] = out

	case OpShiftLeft: // SHL Vx
		out := vm.regV[x] >> 7
		vm.regV[x] <<= 1
		vm.regV[flagRegister] = out

	case OpSetIndex: // LD I, nnn
		vm.regI = op.NNN

	case OpJumpOffset: // JP V0, nnn
		vm.pc = op.NNN + uint16(vm.regV[0])

	case OpRandom: // RND Vx, nn
		vm.regV[x] = uint8(vm.rand.Intn(256)) & op.NN

	case OpDraw: // DRW Vx, Vy, n
		vm.drawSprite(vm.regV[x], vm.regV[y], op.N)
		vm.drawFlag = true

	case OpSkipKeyPressed: // SKP Vx
		return keys.IsPressed(vm.regV[x] & 0xF), nil

	case OpSkipKeyNotPressed: // SKNP Vx
		return !keys.IsPressed(vm.regV[x] & 0xF), nil

	case OpLoadDelayTimer: // LD Vx, DT
		vm.regV[x] = vm.delayTimer

	case OpGetKey: // LD Vx, K
		vm.beginKeyWait(x)

	case OpSetDelayTimer: // LD DT, Vx
		vm.delayTimer = vm.regV[x]

	case OpSetSoundTimer: // LD ST, Vx
		vm.soundTimer = vm.regV[x]

	case OpAddToIndex: // ADD I, Vx
		vm.regI += uint16(vm.regV[x])

	case OpFontCharacter: // LD F, Vx
		vm.regI = glyphAddress(vm.regV[x])

	case OpBinaryCodedDecimal: // LD B, Vx
		v := vm.regV[x]
		vm.writeMemory(vm.regI, v/100)
		vm.writeMemory(vm.regI+1, (v/10)%10)
		vm.writeMemory(vm.regI+2, v%10)

	case OpStoreRegisters: // LD [I], Vx
		for i := uint16(0); i <= uint16(x); i++ {
			vm.writeMemory(vm.regI+i, vm.regV[i])
		}

	case OpLoadRegisters: // LD Vx, [I]
		for i := uint16(0); i <= uint16(x); i++ {
			vm.regV[i] = vm.memory[(vm.regI+i)&addressMask]
		}
	}

	return false, nil
}

// setFlag writes the carry/borrow flag to VF. Callers write it after the
// result, VF as a destination ends up holding the flag.
func (vm *C8VM) setFlag(set bool) {
	if set {
		vm.regV[flagRegister] = 1
	} else {
		vm.regV[flagRegister] = 0
	}
}

func (vm *C8VM) writeMemory(addr uint16, value uint8) {
	vm.memory[addr&addressMask] = value
}
