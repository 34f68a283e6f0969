package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $234"},
		{0x2ABC, "CALL $ABC"},
		{0x3A42, "SE VA, $42"},
		{0x4B07, "SNE VB, $07"},
		{0x5120, "SE V1, V2"},
		{0x6A12, "LD VA, $12"},
		{0x7CFF, "ADD VC, $FF"},
		{0x8120, "LD V1, V2"},
		{0x8121, "OR V1, V2"},
		{0x8122, "AND V1, V2"},
		{0x8123, "XOR V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8125, "SUB V1, V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBN V1, V2"},
		{0x812E, "SHL V1"},
		{0x9340, "SNE V3, V4"},
		{0xA2F0, "LD I, $2F0"},
		{0xB300, "JP V0, $300"},
		{0xC50F, "RND V5, $0F"},
		{0xD125, "DRW V1, V2, $5"},
		{0xE79E, "SKP V7"},
		{0xE8A1, "SKNP V8"},
		{0xF107, "LD V1, DT"},
		{0xF20A, "LD V2, K"},
		{0xF315, "LD DT, V3"},
		{0xF418, "LD ST, V4"},
		{0xF51E, "ADD I, V5"},
		{0xF629, "LD F, V6"},
		{0xF733, "LD B, V7"},
		{0xF855, "LD [I], V8"},
		{0xF965, "LD V9, [I]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Disassemble(tt.word), "word %04X", tt.word)
	}
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP"},
		{0x2ABC, "CALL"},
		{0x3A42, "SE"},
		{0x4B07, "SNE"},
		{0x6A12, "LD"},
		{0x7CFF, "ADD"},
		{0x8121, "OR"},
		{0x8122, "AND"},
		{0x8123, "XOR"},
		{0x8125, "SUB"},
		{0x8126, "SHR"},
		{0x8127, "SUBN"},
		{0x812E, "SHL"},
		{0xB300, "JP"},
		{0xC50F, "RND"},
		{0xD125, "DRW"},
		{0xE79E, "SKP"},
		{0xE8A1, "SKNP"},
		{0xF51E, "ADD"},
		{0x0123, ""},
		{0x5121, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mnemonic(tt.word), "word %04X", tt.word)
	}
}

// Every word Decode accepts has a name in the opcode table, so Disassemble
// only falls back to a data word for OpNone.
func TestMnemonicCoversDecode(t *testing.T) {
	for word := 0; word <= 0xFFFF; word++ {
		if Decode(uint16(word)).Kind == OpNone {
			continue
		}
		assert.NotEmpty(t, mnemonic(uint16(word)), "word %04X", word)
	}
}

func TestDisassembleData(t *testing.T) {
	assert.Equal(t, "DW $0123", Disassemble(0x0123))
	assert.Equal(t, "DW $FFFF", Disassemble(0xFFFF))
	assert.Equal(t, "DW $5121", Disassemble(0x5121))
}
