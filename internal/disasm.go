package internal

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble renders an instruction word in assembler notation, for
// example "LD VA, $12" or "DRW V1, V2, $5". Words that are not
// instructions, or that the opcode table has no name for, render as a
// data word.
func Disassemble(word uint16) string {
	op := Decode(word)
	name := mnemonic(word)
	if op.Kind == OpNone || name == "" {
		return fmt.Sprintf("DW $%04X", word)
	}

	if params := formatOperands(op); params != "" {
		return name + " " + params
	}
	return name
}

// mnemonic looks up the instruction name in the CHIP-8 opcode table.
func mnemonic(word uint16) string {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return strings.ToUpper(op.Instruction.Name)
		}
	}
	return ""
}

func formatOperands(op Operation) string {
	switch op.Kind {
	case OpJump, OpCall:
		return fmt.Sprintf("$%03X", op.NNN)
	case OpJumpOffset:
		return fmt.Sprintf("V0, $%03X", op.NNN)
	case OpSetIndex:
		return fmt.Sprintf("I, $%03X", op.NNN)
	case OpSkipEqual, OpSkipNotEqual, OpSetRegister, OpAddToRegister, OpRandom:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
	case OpSkipEqualRegister, OpSkipNotEqualRegister, OpCopyRegister, OpOr, OpAnd, OpXor,
		OpAddRegisters, OpSubtract, OpSubtractReverse:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case OpShiftRight, OpShiftLeft, OpSkipKeyPressed, OpSkipKeyNotPressed:
		return fmt.Sprintf("V%X", op.X)
	case OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)
	case OpLoadDelayTimer:
		return fmt.Sprintf("V%X, DT", op.X)
	case OpGetKey:
		return fmt.Sprintf("V%X, K", op.X)
	case OpSetDelayTimer:
		return fmt.Sprintf("DT, V%X", op.X)
	case OpSetSoundTimer:
		return fmt.Sprintf("ST, V%X", op.X)
	case OpAddToIndex:
		return fmt.Sprintf("I, V%X", op.X)
	case OpFontCharacter:
		return fmt.Sprintf("F, V%X", op.X)
	case OpBinaryCodedDecimal:
		return fmt.Sprintf("B, V%X", op.X)
	case OpStoreRegisters:
		return fmt.Sprintf("[I], V%X", op.X)
	case OpLoadRegisters:
		return fmt.Sprintf("V%X, [I]", op.X)
	}
	return ""
}
