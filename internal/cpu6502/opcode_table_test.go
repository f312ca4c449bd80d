// Code generated for testing purposes by cross-checking every opcode value
// against the reference 6502 disassembler this decoder was ported from. Do
// not hand-edit; regenerate from that reference if the priority table in
// opcode.go changes.
package cpu6502

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type opcodeCase struct {
	op       byte
	ok       bool
	mnemonic string
	mode     AddressingMode
	indexing Indexing
	length   int
}

var allOpcodeCases = []opcodeCase{
		{op: 0x00, ok: true, mnemonic: "brk", mode: Implied, indexing: NoIndex, length: 2},
		{op: 0x01, ok: true, mnemonic: "ora", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0x02, ok: false},
		{op: 0x03, ok: false},
		{op: 0x04, ok: false},
		{op: 0x05, ok: true, mnemonic: "ora", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x06, ok: true, mnemonic: "asl", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x07, ok: false},
		{op: 0x08, ok: true, mnemonic: "php", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x09, ok: true, mnemonic: "ora", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0x0A, ok: true, mnemonic: "asl", mode: Accumulator, indexing: NoIndex, length: 1},
		{op: 0x0B, ok: false},
		{op: 0x0C, ok: false},
		{op: 0x0D, ok: true, mnemonic: "ora", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x0E, ok: true, mnemonic: "asl", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x0F, ok: false},
		{op: 0x10, ok: true, mnemonic: "bpl", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0x11, ok: true, mnemonic: "ora", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0x12, ok: false},
		{op: 0x13, ok: false},
		{op: 0x14, ok: false},
		{op: 0x15, ok: true, mnemonic: "ora", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x16, ok: true, mnemonic: "asl", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x17, ok: false},
		{op: 0x18, ok: true, mnemonic: "clc", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x19, ok: true, mnemonic: "ora", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0x1A, ok: false},
		{op: 0x1B, ok: false},
		{op: 0x1C, ok: false},
		{op: 0x1D, ok: true, mnemonic: "ora", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x1E, ok: true, mnemonic: "asl", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x1F, ok: false},
		{op: 0x20, ok: true, mnemonic: "jsr", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x21, ok: true, mnemonic: "and", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0x22, ok: false},
		{op: 0x23, ok: false},
		{op: 0x24, ok: true, mnemonic: "bit", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x25, ok: true, mnemonic: "and", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x26, ok: true, mnemonic: "rol", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x27, ok: false},
		{op: 0x28, ok: true, mnemonic: "plp", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x29, ok: true, mnemonic: "and", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0x2A, ok: true, mnemonic: "rol", mode: Accumulator, indexing: NoIndex, length: 1},
		{op: 0x2B, ok: false},
		{op: 0x2C, ok: true, mnemonic: "bit", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x2D, ok: true, mnemonic: "and", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x2E, ok: true, mnemonic: "rol", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x2F, ok: false},
		{op: 0x30, ok: true, mnemonic: "bmi", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0x31, ok: true, mnemonic: "and", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0x32, ok: false},
		{op: 0x33, ok: false},
		{op: 0x34, ok: false},
		{op: 0x35, ok: true, mnemonic: "and", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x36, ok: true, mnemonic: "rol", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x37, ok: false},
		{op: 0x38, ok: true, mnemonic: "sec", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x39, ok: true, mnemonic: "and", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0x3A, ok: false},
		{op: 0x3B, ok: false},
		{op: 0x3C, ok: false},
		{op: 0x3D, ok: true, mnemonic: "and", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x3E, ok: true, mnemonic: "rol", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x3F, ok: false},
		{op: 0x40, ok: true, mnemonic: "rti", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x41, ok: true, mnemonic: "eor", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0x42, ok: false},
		{op: 0x43, ok: false},
		{op: 0x44, ok: false},
		{op: 0x45, ok: true, mnemonic: "eor", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x46, ok: true, mnemonic: "lsr", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x47, ok: false},
		{op: 0x48, ok: true, mnemonic: "pha", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x49, ok: true, mnemonic: "eor", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0x4A, ok: true, mnemonic: "lsr", mode: Accumulator, indexing: NoIndex, length: 1},
		{op: 0x4B, ok: false},
		{op: 0x4C, ok: true, mnemonic: "jmp", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x4D, ok: true, mnemonic: "eor", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x4E, ok: true, mnemonic: "lsr", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x4F, ok: false},
		{op: 0x50, ok: true, mnemonic: "bvc", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0x51, ok: true, mnemonic: "eor", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0x52, ok: false},
		{op: 0x53, ok: false},
		{op: 0x54, ok: false},
		{op: 0x55, ok: true, mnemonic: "eor", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x56, ok: true, mnemonic: "lsr", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x57, ok: false},
		{op: 0x58, ok: true, mnemonic: "cli", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x59, ok: true, mnemonic: "eor", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0x5A, ok: false},
		{op: 0x5B, ok: false},
		{op: 0x5C, ok: false},
		{op: 0x5D, ok: true, mnemonic: "eor", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x5E, ok: true, mnemonic: "lsr", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x5F, ok: false},
		{op: 0x60, ok: true, mnemonic: "rts", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x61, ok: true, mnemonic: "adc", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0x62, ok: false},
		{op: 0x63, ok: false},
		{op: 0x64, ok: false},
		{op: 0x65, ok: true, mnemonic: "adc", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x66, ok: true, mnemonic: "ror", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x67, ok: false},
		{op: 0x68, ok: true, mnemonic: "pla", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x69, ok: true, mnemonic: "adc", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0x6A, ok: true, mnemonic: "ror", mode: Accumulator, indexing: NoIndex, length: 1},
		{op: 0x6B, ok: false},
		{op: 0x6C, ok: true, mnemonic: "jmp", mode: Indirect, indexing: NoIndex, length: 3},
		{op: 0x6D, ok: true, mnemonic: "adc", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x6E, ok: true, mnemonic: "ror", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x6F, ok: false},
		{op: 0x70, ok: true, mnemonic: "bvs", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0x71, ok: true, mnemonic: "adc", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0x72, ok: false},
		{op: 0x73, ok: false},
		{op: 0x74, ok: false},
		{op: 0x75, ok: true, mnemonic: "adc", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x76, ok: true, mnemonic: "ror", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x77, ok: false},
		{op: 0x78, ok: true, mnemonic: "sei", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x79, ok: true, mnemonic: "adc", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0x7A, ok: false},
		{op: 0x7B, ok: false},
		{op: 0x7C, ok: false},
		{op: 0x7D, ok: true, mnemonic: "adc", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x7E, ok: true, mnemonic: "ror", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x7F, ok: false},
		{op: 0x80, ok: false},
		{op: 0x81, ok: true, mnemonic: "sta", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0x82, ok: false},
		{op: 0x83, ok: false},
		{op: 0x84, ok: true, mnemonic: "sty", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x85, ok: true, mnemonic: "sta", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x86, ok: true, mnemonic: "stx", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0x87, ok: false},
		{op: 0x88, ok: true, mnemonic: "dey", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x89, ok: false},
		{op: 0x8A, ok: true, mnemonic: "txa", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x8B, ok: false},
		{op: 0x8C, ok: true, mnemonic: "sty", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x8D, ok: true, mnemonic: "sta", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x8E, ok: true, mnemonic: "stx", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0x8F, ok: false},
		{op: 0x90, ok: true, mnemonic: "bcc", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0x91, ok: true, mnemonic: "sta", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0x92, ok: false},
		{op: 0x93, ok: false},
		{op: 0x94, ok: true, mnemonic: "sty", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x95, ok: true, mnemonic: "sta", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0x96, ok: true, mnemonic: "stx", mode: ZeroPage, indexing: IndexY, length: 2},
		{op: 0x97, ok: false},
		{op: 0x98, ok: true, mnemonic: "tya", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x99, ok: true, mnemonic: "sta", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0x9A, ok: true, mnemonic: "txs", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0x9B, ok: false},
		{op: 0x9C, ok: false},
		{op: 0x9D, ok: true, mnemonic: "sta", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0x9E, ok: false},
		{op: 0x9F, ok: false},
		{op: 0xA0, ok: true, mnemonic: "ldy", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xA1, ok: true, mnemonic: "lda", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0xA2, ok: true, mnemonic: "ldx", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xA3, ok: false},
		{op: 0xA4, ok: true, mnemonic: "ldy", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xA5, ok: true, mnemonic: "lda", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xA6, ok: true, mnemonic: "ldx", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xA7, ok: false},
		{op: 0xA8, ok: true, mnemonic: "tay", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xA9, ok: true, mnemonic: "lda", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xAA, ok: true, mnemonic: "tax", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xAB, ok: false},
		{op: 0xAC, ok: true, mnemonic: "ldy", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xAD, ok: true, mnemonic: "lda", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xAE, ok: true, mnemonic: "ldx", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xAF, ok: false},
		{op: 0xB0, ok: true, mnemonic: "bcs", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0xB1, ok: true, mnemonic: "lda", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0xB2, ok: false},
		{op: 0xB3, ok: false},
		{op: 0xB4, ok: true, mnemonic: "ldy", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xB5, ok: true, mnemonic: "lda", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xB6, ok: true, mnemonic: "ldx", mode: ZeroPage, indexing: IndexY, length: 2},
		{op: 0xB7, ok: false},
		{op: 0xB8, ok: true, mnemonic: "clv", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xB9, ok: true, mnemonic: "lda", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0xBA, ok: true, mnemonic: "tsx", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xBB, ok: false},
		{op: 0xBC, ok: true, mnemonic: "ldy", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xBD, ok: true, mnemonic: "lda", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xBE, ok: true, mnemonic: "ldx", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0xBF, ok: false},
		{op: 0xC0, ok: true, mnemonic: "cpy", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xC1, ok: true, mnemonic: "cmp", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0xC2, ok: false},
		{op: 0xC3, ok: false},
		{op: 0xC4, ok: true, mnemonic: "cpy", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xC5, ok: true, mnemonic: "cmp", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xC6, ok: true, mnemonic: "dec", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xC7, ok: false},
		{op: 0xC8, ok: true, mnemonic: "iny", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xC9, ok: true, mnemonic: "cmp", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xCA, ok: true, mnemonic: "dex", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xCB, ok: false},
		{op: 0xCC, ok: true, mnemonic: "cpy", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xCD, ok: true, mnemonic: "cmp", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xCE, ok: true, mnemonic: "dec", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xCF, ok: false},
		{op: 0xD0, ok: true, mnemonic: "bne", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0xD1, ok: true, mnemonic: "cmp", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0xD2, ok: false},
		{op: 0xD3, ok: false},
		{op: 0xD4, ok: false},
		{op: 0xD5, ok: true, mnemonic: "cmp", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xD6, ok: true, mnemonic: "dec", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xD7, ok: false},
		{op: 0xD8, ok: true, mnemonic: "cld", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xD9, ok: true, mnemonic: "cmp", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0xDA, ok: false},
		{op: 0xDB, ok: false},
		{op: 0xDC, ok: false},
		{op: 0xDD, ok: true, mnemonic: "cmp", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xDE, ok: true, mnemonic: "dec", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xDF, ok: false},
		{op: 0xE0, ok: true, mnemonic: "cpx", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xE1, ok: true, mnemonic: "sbc", mode: Indirect, indexing: IndexX, length: 2},
		{op: 0xE2, ok: false},
		{op: 0xE3, ok: false},
		{op: 0xE4, ok: true, mnemonic: "cpx", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xE5, ok: true, mnemonic: "sbc", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xE6, ok: true, mnemonic: "inc", mode: ZeroPage, indexing: NoIndex, length: 2},
		{op: 0xE7, ok: false},
		{op: 0xE8, ok: true, mnemonic: "inx", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xE9, ok: true, mnemonic: "sbc", mode: Immediate, indexing: NoIndex, length: 2},
		{op: 0xEA, ok: true, mnemonic: "nop", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xEB, ok: false},
		{op: 0xEC, ok: true, mnemonic: "cpx", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xED, ok: true, mnemonic: "sbc", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xEE, ok: true, mnemonic: "inc", mode: Absolute, indexing: NoIndex, length: 3},
		{op: 0xEF, ok: false},
		{op: 0xF0, ok: true, mnemonic: "beq", mode: Branch, indexing: NoIndex, length: 2},
		{op: 0xF1, ok: true, mnemonic: "sbc", mode: Indirect, indexing: IndexY, length: 2},
		{op: 0xF2, ok: false},
		{op: 0xF3, ok: false},
		{op: 0xF4, ok: false},
		{op: 0xF5, ok: true, mnemonic: "sbc", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xF6, ok: true, mnemonic: "inc", mode: ZeroPage, indexing: IndexX, length: 2},
		{op: 0xF7, ok: false},
		{op: 0xF8, ok: true, mnemonic: "sed", mode: Implied, indexing: NoIndex, length: 1},
		{op: 0xF9, ok: true, mnemonic: "sbc", mode: Absolute, indexing: IndexY, length: 3},
		{op: 0xFA, ok: false},
		{op: 0xFB, ok: false},
		{op: 0xFC, ok: false},
		{op: 0xFD, ok: true, mnemonic: "sbc", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xFE, ok: true, mnemonic: "inc", mode: Absolute, indexing: IndexX, length: 3},
		{op: 0xFF, ok: false},
}

func TestDecodeAllOpcodes(t *testing.T) {
	for _, tc := range allOpcodeCases {
		tc := tc
		t.Run(fmt.Sprintf("%02X", tc.op), func(t *testing.T) {
			data := []byte{tc.op, 0x00, 0x00}
			inst, ok := Decode(data, false)
			if !tc.ok {
				assert.False(t, ok, "expected opcode 0x%02X to be undecodable", tc.op)
				return
			}
			require_ := assert.New(t)
			require_.True(ok, "expected opcode 0x%02X to decode", tc.op)
			require_.Equal(tc.mnemonic, inst.Mnemonic)
			require_.Equal(tc.mode, inst.Mode)
			require_.Equal(tc.indexing, inst.Indexing)
			require_.Equal(tc.length, inst.Length)
		})
	}
}
