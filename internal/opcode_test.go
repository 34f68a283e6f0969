package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected Operation
	}{
		{"CLS", 0x00E0, Operation{Kind: OpClearScreen}},
		{"RET", 0x00EE, Operation{Kind: OpReturn}},
		{"JP", 0x1234, Operation{Kind: OpJump, NNN: 0x234}},
		{"CALL", 0x2ABC, Operation{Kind: OpCall, NNN: 0xABC}},
		{"SE Vx, nn", 0x3A42, Operation{Kind: OpSkipEqual, X: 0xA, NN: 0x42}},
		{"SNE Vx, nn", 0x4B07, Operation{Kind: OpSkipNotEqual, X: 0xB, NN: 0x07}},
		{"SE Vx, Vy", 0x5120, Operation{Kind: OpSkipEqualRegister, X: 1, Y: 2}},
		{"LD Vx, nn", 0x6A12, Operation{Kind: OpSetRegister, X: 0xA, NN: 0x12}},
		{"ADD Vx, nn", 0x7CFF, Operation{Kind: OpAddToRegister, X: 0xC, NN: 0xFF}},
		{"LD Vx, Vy", 0x8120, Operation{Kind: OpCopyRegister, X: 1, Y: 2}},
		{"OR", 0x8121, Operation{Kind: OpOr, X: 1, Y: 2}},
		{"AND", 0x8122, Operation{Kind: OpAnd, X: 1, Y: 2}},
		{"XOR", 0x8123, Operation{Kind: OpXor, X: 1, Y: 2}},
		{"ADD Vx, Vy", 0x8124, Operation{Kind: OpAddRegisters, X: 1, Y: 2}},
		{"SUB", 0x8125, Operation{Kind: OpSubtract, X: 1, Y: 2}},
		{"SHR", 0x8126, Operation{Kind: OpShiftRight, X: 1, Y: 2}},
		{"SUBN", 0x8127, Operation{Kind: OpSubtractReverse, X: 1, Y: 2}},
		{"SHL", 0x812E, Operation{Kind: OpShiftLeft, X: 1, Y: 2}},
		{"SNE Vx, Vy", 0x9340, Operation{Kind: OpSkipNotEqualRegister, X: 3, Y: 4}},
		{"LD I", 0xA2F0, Operation{Kind: OpSetIndex, NNN: 0x2F0}},
		{"JP V0", 0xB300, Operation{Kind: OpJumpOffset, NNN: 0x300}},
		{"RND", 0xC50F, Operation{Kind: OpRandom, X: 5, NN: 0x0F}},
		{"DRW", 0xD125, Operation{Kind: OpDraw, X: 1, Y: 2, N: 5}},
		{"SKP", 0xE79E, Operation{Kind: OpSkipKeyPressed, X: 7}},
		{"SKNP", 0xE8A1, Operation{Kind: OpSkipKeyNotPressed, X: 8}},
		{"LD Vx, DT", 0xF107, Operation{Kind: OpLoadDelayTimer, X: 1}},
		{"LD Vx, K", 0xF20A, Operation{Kind: OpGetKey, X: 2}},
		{"LD DT, Vx", 0xF315, Operation{Kind: OpSetDelayTimer, X: 3}},
		{"LD ST, Vx", 0xF418, Operation{Kind: OpSetSoundTimer, X: 4}},
		{"ADD I, Vx", 0xF51E, Operation{Kind: OpAddToIndex, X: 5}},
		{"LD F, Vx", 0xF629, Operation{Kind: OpFontCharacter, X: 6}},
		{"LD B, Vx", 0xF733, Operation{Kind: OpBinaryCodedDecimal, X: 7}},
		{"LD [I], Vx", 0xF855, Operation{Kind: OpStoreRegisters, X: 8}},
		{"LD Vx, [I]", 0xF965, Operation{Kind: OpLoadRegisters, X: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word))
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	words := []uint16{
		0x0000, // SYS 000, machine code routines are not supported
		0x0123,
		0x00E1,
		0x00FF, // SCHIP high resolution
		0x5121,
		0x800F,
		0x8128,
		0x9341,
		0xE000,
		0xE79F,
		0xF000,
		0xF130, // SCHIP large font
		0xF175,
		0xFFFF,
	}

	for _, word := range words {
		assert.Equal(t, Operation{Kind: OpNone}, Decode(word), "word %04X", word)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	counts := map[Kind]int{}
	for word := 0; word <= 0xFFFF; word++ {
		op := Decode(uint16(word))
		assert.True(t, op.Kind < kindCount)
		counts[op.Kind]++
	}

	// every instruction of the set is reachable
	assert.Equal(t, int(kindCount), len(counts))
	assert.Equal(t, 1, counts[OpClearScreen])
	assert.Equal(t, 1, counts[OpReturn])
	assert.Equal(t, 0x1000, counts[OpJump])
	assert.Equal(t, 0x1000, counts[OpDraw])
	assert.Equal(t, 0x100, counts[OpSkipEqualRegister])
	assert.Equal(t, 0x10, counts[OpGetKey])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ClearScreen", OpClearScreen.String())
	assert.Equal(t, "Draw", OpDraw.String())
	assert.Equal(t, "None", OpNone.String())
	assert.Equal(t, "Invalid", kindCount.String())

	for k := OpNone; k < kindCount; k++ {
		assert.NotEmpty(t, k.String())
	}
}
