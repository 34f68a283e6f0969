package internal

// Kind identifies a decoded CHIP-8 operation.
type Kind uint8

// Operation kinds, one per instruction of the CHIP-8 instruction set.
const (
	OpNone                 Kind = iota // unknown word, executes as a no-op
	OpClearScreen                      // 00E0 CLS
	OpReturn                           // 00EE RET
	OpJump                             // 1nnn JP nnn
	OpCall                             // 2nnn CALL nnn
	OpSkipEqual                        // 3xnn SE Vx, nn
	OpSkipNotEqual                     // 4xnn SNE Vx, nn
	OpSkipEqualRegister                // 5xy0 SE Vx, Vy
	OpSetRegister                      // 6xnn LD Vx, nn
	OpAddToRegister                    // 7xnn ADD Vx, nn
	OpCopyRegister                     // 8xy0 LD Vx, Vy
	OpOr                               // 8xy1 OR Vx, Vy
	OpAnd                              // 8xy2 AND Vx, Vy
	OpXor                              // 8xy3 XOR Vx, Vy
	OpAddRegisters                     // 8xy4 ADD Vx, Vy
	OpSubtract                         // 8xy5 SUB Vx, Vy
	OpShiftRight                       // 8xy6 SHR Vx
	OpSubtractReverse                  // 8xy7 SUBN Vx, Vy
	OpShiftLeft                        // 8xyE SHL Vx
	OpSkipNotEqualRegister             // 9xy0 SNE Vx, Vy
	OpSetIndex                         // Annn LD I, nnn
	OpJumpOffset                       // Bnnn JP V0, nnn
	OpRandom                           // Cxnn RND Vx, nn
	OpDraw                             // Dxyn DRW Vx, Vy, n
	OpSkipKeyPressed                   // Ex9E SKP Vx
	OpSkipKeyNotPressed                // ExA1 SKNP Vx
	OpLoadDelayTimer                   // Fx07 LD Vx, DT
	OpGetKey                           // Fx0A LD Vx, K
	OpSetDelayTimer                    // Fx15 LD DT, Vx
	OpSetSoundTimer                    // Fx18 LD ST, Vx
	OpAddToIndex                       // Fx1E ADD I, Vx
	OpFontCharacter                    // Fx29 LD F, Vx
	OpBinaryCodedDecimal               // Fx33 LD B, Vx
	OpStoreRegisters                   // Fx55 LD [I], Vx
	OpLoadRegisters                    // Fx65 LD Vx, [I]

	kindCount
)

var kindNames = [kindCount]string{
	OpNone:                 "None",
	OpClearScreen:          "ClearScreen",
	OpReturn:               "ReturnFromSubroutine",
	OpJump:                 "Jump",
	OpCall:                 "CallSubroutine",
	OpSkipEqual:            "SkipEqual",
	OpSkipNotEqual:         "SkipNotEqual",
	OpSkipEqualRegister:    "SkipEqualRegister",
	OpSetRegister:          "SetRegister",
	OpAddToRegister:        "AddToRegister",
	OpCopyRegister:         "CopyRegister",
	OpOr:                   "Or",
	OpAnd:                  "And",
	OpXor:                  "Xor",
	OpAddRegisters:         "AddRegisters",
	OpSubtract:             "Subtract",
	OpShiftRight:           "ShiftRight",
	OpSubtractReverse:      "SubtractReverse",
	OpShiftLeft:            "ShiftLeft",
	OpSkipNotEqualRegister: "SkipNotEqualRegister",
	OpSetIndex:             "SetIndex",
	OpJumpOffset:           "JumpOffset",
	OpRandom:               "Random",
	OpDraw:                 "Draw",
	OpSkipKeyPressed:       "SkipKeyPressed",
	OpSkipKeyNotPressed:    "SkipKeyNotPressed",
	OpLoadDelayTimer:       "LoadDelayTimer",
	OpGetKey:               "GetKey",
	OpSetDelayTimer:        "SetDelayTimer",
	OpSetSoundTimer:        "SetSoundTimer",
	OpAddToIndex:           "AddToIndex",
	OpFontCharacter:        "FontCharacter",
	OpBinaryCodedDecimal:   "BinaryCodedDecimal",
	OpStoreRegisters:       "StoreRegisters",
	OpLoadRegisters:        "LoadRegisters",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Invalid"
	}
	return kindNames[k]
}

// Operation is a decoded instruction. Only the operand fields used by Kind
// are populated, the others stay zero.
type Operation struct {
	Kind Kind
	X    uint8  // second nibble, register index
	Y    uint8  // third nibble, register index
	N    uint8  // fourth nibble
	NN   uint8  // low byte
	NNN  uint16 // low 12 bits, address
}

// Decode maps a 16-bit instruction word to its operation. Words that match
// no instruction decode to OpNone.
func Decode(word uint16) Operation {
	x := uint8(word>>8) & 0xF // the lower 4 bits of the high byte of the instruction
	y := uint8(word>>4) & 0xF // the upper 4 bits of the low byte of the instruction
	n := uint8(word) & 0xF    // the lowest 4 bits of the instruction
	nn := uint8(word)         // the lowest 8 bits of the instruction
	nnn := word & 0x0FFF      // the lowest 12 bits of the instruction

	switch word >> 12 { // Compare against the first 4 bits of the instruction only
	case 0x0:
		switch word {
		case 0x00E0:
			return Operation{Kind: OpClearScreen}
		case 0x00EE:
			return Operation{Kind: OpReturn}
		}
	case 0x1:
		return Operation{Kind: OpJump, NNN: nnn}
	case 0x2:
		return Operation{Kind: OpCall, NNN: nnn}
	case 0x3:
		return Operation{Kind: OpSkipEqual, X: x, NN: nn}
	case 0x4:
		return Operation{Kind: OpSkipNotEqual, X: x, NN: nn}
	case 0x5:
		if n == 0x0 {
			return Operation{Kind: OpSkipEqualRegister, X: x, Y: y}
		}
	case 0x6:
		return Operation{Kind: OpSetRegister, X: x, NN: nn}
	case 0x7:
		return Operation{Kind: OpAddToRegister, X: x, NN: nn}
	case 0x8:
		if kind, ok := aluKinds[n]; ok {
			return Operation{Kind: kind, X: x, Y: y}
		}
	case 0x9:
		if n == 0x0 {
			return Operation{Kind: OpSkipNotEqualRegister, X: x, Y: y}
		}
	case 0xA:
		return Operation{Kind: OpSetIndex, NNN: nnn}
	case 0xB:
		return Operation{Kind: OpJumpOffset, NNN: nnn}
	case 0xC:
		return Operation{Kind: OpRandom, X: x, NN: nn}
	case 0xD:
		return Operation{Kind: OpDraw, X: x, Y: y, N: n}
	case 0xE:
		switch nn {
		case 0x9E:
			return Operation{Kind: OpSkipKeyPressed, X: x}
		case 0xA1:
			return Operation{Kind: OpSkipKeyNotPressed, X: x}
		}
	case 0xF:
		if kind, ok := miscKinds[nn]; ok {
			return Operation{Kind: kind, X: x}
		}
	}
	return Operation{Kind: OpNone}
}

// aluKinds maps the fourth nibble of 8xyn words.
var aluKinds = map[uint8]Kind{
	0x0: OpCopyRegister,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAddRegisters,
	0x5: OpSubtract,
	0x6: OpShiftRight,
	0x7: OpSubtractReverse,
	0xE: OpShiftLeft,
}

// miscKinds maps the low byte of Fxnn words.
var miscKinds = map[uint8]Kind{
	0x07: OpLoadDelayTimer,
	0x0A: OpGetKey,
	0x15: OpSetDelayTimer,
	0x18: OpSetSoundTimer,
	0x1E: OpAddToIndex,
	0x29: OpFontCharacter,
	0x33: OpBinaryCodedDecimal,
	0x55: OpStoreRegisters,
	0x65: OpLoadRegisters,
}
