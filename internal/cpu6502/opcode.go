// Package cpu6502 decodes single 6502 instructions from raw bytes.
//
// The decoder is a pure function: given up to three bytes it returns the
// mnemonic, addressing mode, indexing register and instruction length, or
// reports that the byte is not decodable as an instruction. It holds no
// state and makes no reference to surrounding bytes, position, or any
// owning bank — callers are responsible for everything above the single
// instruction.
package cpu6502

import "fmt"

// AddressingMode enumerates the different address modes of 6502
// instructions.
type AddressingMode int

const (
	// Implied instructions take no operand, e.g. CLC, RTS.
	Implied AddressingMode = iota
	// Accumulator instructions operate directly on A, e.g. ASL A.
	Accumulator
	// Immediate instructions use a literal operand, e.g. LDA #$FF.
	Immediate
	// ZeroPage instructions address the first 256 bytes, e.g. LDA $12.
	ZeroPage
	// Absolute instructions use a full 16-bit address, e.g. LDA $1234.
	Absolute
	// Branch instructions use a signed relative offset, e.g. BEQ.
	Branch
	// Indirect instructions fetch the effective address from memory.
	Indirect
)

// Indexing enumerates the index register, if any, applied to an operand.
type Indexing int

const (
	NoIndex Indexing = iota
	IndexX
	IndexY
)

func (x Indexing) String() string {
	switch x {
	case IndexX:
		return "x"
	case IndexY:
		return "y"
	default:
		return ""
	}
}

// Instruction is the pure result of decoding one opcode.
type Instruction struct {
	Mnemonic string
	Mode     AddressingMode
	Indexing Indexing
	Length   int // 1, 2 or 3
}

// Opcodes that the decoder matches by exact value rather than by bit
// pattern.
const (
	OpBRK         = 0x00
	OpJSRAbsolute = 0x20
	OpJMPAbsolute = 0x4C
	OpJMPIndirect = 0x6C
)

var impliedDigit8 = [16]string{
	"php", "clc", "plp", "sec", "pha", "cli", "pla", "sei",
	"dey", "tya", "tay", "clv", "iny", "cld", "inx", "sed",
}

var implied8A = [8]string{
	"txa", "txs", "tax", "tsx", "dex", "", "nop", "",
}

var accumulatorFamily = [4]string{"asl", "rol", "lsr", "ror"}

var aluFamily = [8]string{"ora", "and", "eor", "adc", "sta", "lda", "cmp", "sbc"}

var immediateALUFamily = [8]string{"ora", "and", "eor", "adc", "", "lda", "cmp", "sbc"}

var rmwFamily = [8]string{"asl", "rol", "lsr", "ror", "stx", "ldx", "dec", "inc"}

var styLdyFamily = [4]string{"sty", "ldy", "cpy", "cpx"}

var immediateStyLdyFamily = [4]string{"", "ldy", "cpy", "cpx"}

var branchFamily = [8]string{"bpl", "bmi", "bvc", "bvs", "bcc", "bcs", "bne", "beq"}

// Decode decodes a single instruction at the given bytes. bytes must have
// at least one element; elements beyond the instruction's length are
// ignored and may be absent. dqBrk lengthens BRK to 3 bytes, matching the
// Dragon Quest cartridges' nonstandard use of the trailing signature byte.
//
// Decode never panics and never inspects anything beyond bytes[0..2]; it
// has no notion of a "position" and is safe to call speculatively.
func Decode(data []byte, dqBrk bool) (Instruction, bool) {
	if len(data) == 0 {
		return Instruction{}, false
	}
	op := data[0]
	_, hasB1 := byteAt(data, 1)
	_, hasB2 := byteAt(data, 2)

	// Priority 1: JMP (indirect)
	if op == OpJMPIndirect {
		if !hasB2 {
			return Instruction{}, false
		}
		return Instruction{Mnemonic: "jmp", Mode: Indirect, Length: 3}, true
	}

	// Priority 2: BRK
	if op == OpBRK {
		if !hasB1 {
			return Instruction{}, false
		}
		length := 2
		if dqBrk {
			if !hasB2 {
				return Instruction{}, false
			}
			length = 3
		}
		return Instruction{Mnemonic: "brk", Mode: Implied, Length: length}, true
	}

	// Priority 3: implied
	if mnem, ok := impliedMnemonic(op); ok {
		return Instruction{Mnemonic: mnem, Mode: Implied, Length: 1}, true
	}

	// Priority 4: accumulator
	if op&0x9F == 0x0A {
		return Instruction{Mnemonic: accumulatorFamily[op>>5], Mode: Accumulator, Length: 1}, true
	}

	// Priority 5: immediate
	if mnem, ok := immediateMnemonic(op); ok {
		if !hasB1 {
			return Instruction{}, false
		}
		return Instruction{Mnemonic: mnem, Mode: Immediate, Length: 2}, true
	}

	// Priority 6: zero page
	if mnem, idx, ok := zeroPageMnemonic(op); ok {
		if !hasB1 {
			return Instruction{}, false
		}
		return Instruction{Mnemonic: mnem, Mode: ZeroPage, Indexing: idx, Length: 2}, true
	}

	// Priority 7: indirect
	if op&0xF == 1 {
		if !hasB1 {
			return Instruction{}, false
		}
		idx := IndexX
		if op&0x10 != 0 {
			idx = IndexY
		}
		return Instruction{Mnemonic: aluFamily[op>>5], Mode: Indirect, Indexing: idx, Length: 2}, true
	}

	// Priority 8: branch
	if op&0x1F == 0x10 {
		if !hasB1 {
			return Instruction{}, false
		}
		return Instruction{Mnemonic: branchFamily[op>>5], Mode: Branch, Length: 2}, true
	}

	// Priority 9: absolute (0x9C, 0x9E are explicitly excluded)
	if op != 0x9C && op != 0x9E {
		if mnem, idx, ok := absoluteMnemonic(op); ok {
			if !hasB2 {
				return Instruction{}, false
			}
			return Instruction{Mnemonic: mnem, Mode: Absolute, Indexing: idx, Length: 3}, true
		}
	}

	return Instruction{}, false
}

func byteAt(data []byte, i int) (byte, bool) {
	if i < len(data) {
		return data[i], true
	}
	return 0, false
}

func impliedMnemonic(op byte) (string, bool) {
	if op&0xF == 0x8 {
		return impliedDigit8[op>>4], true
	}
	if op == 0x40 {
		return "rti", true
	}
	if op == 0x60 {
		return "rts", true
	}
	if op&0x8F == 0x8A {
		m := implied8A[(op>>4)-8]
		if m != "" {
			return m, true
		}
	}
	return "", false
}

func immediateMnemonic(op byte) (string, bool) {
	if op&0x1F == 0x09 {
		if m := immediateALUFamily[op>>5]; m != "" {
			return m, true
		}
	}
	if op&0x9F == 0x80 {
		if m := immediateStyLdyFamily[(op>>5)-4]; m != "" {
			return m, true
		}
	}
	if op == 0xA2 {
		return "ldx", true
	}
	return "", false
}

func zeroPageMnemonic(op byte) (string, Indexing, bool) {
	var mnem string
	switch {
	case op&0xF == 5:
		mnem = aluFamily[op>>5]
	case op&0xF == 6:
		mnem = rmwFamily[op>>5]
	case op == 0x24:
		mnem = "bit"
	case op == 0x84, op == 0x94, op == 0xA4, op == 0xB4, op == 0xC4, op == 0xE4:
		mnem = styLdyFamily[(op>>5)-4]
	default:
		return "", NoIndex, false
	}

	idx := NoIndex
	if op&0x10 == 0x10 {
		idx = IndexX
	}
	if op == 0x96 || op == 0xB6 {
		idx = IndexY
	}
	return mnem, idx, true
}

func absoluteMnemonic(op byte) (string, Indexing, bool) {
	var mnem string
	switch {
	case op == OpJSRAbsolute:
		mnem = "jsr"
	case op == OpJMPAbsolute:
		mnem = "jmp"
	case op&0x1F == 0x19:
		mnem = aluFamily[op>>5]
	case op&0xF == 0xD:
		mnem = aluFamily[op>>5]
	case op&0xF == 0xE:
		mnem = rmwFamily[op>>5]
	case op == 0x2C:
		mnem = "bit"
	case op == 0x8C, op == 0xAC, op == 0xBC, op == 0xCC, op == 0xEC:
		mnem = styLdyFamily[(op>>5)-4]
	default:
		return "", NoIndex, false
	}

	idx := NoIndex
	if op&0x10 == 0x10 {
		idx = IndexX
	}
	if op == 0xBE || op&0x1F == 0x19 {
		idx = IndexY
	}
	return mnem, idx, true
}

// IsBranchOrJump reports whether mnemonic is a branch or a jump/jsr
// instruction, used by base-address inference and label resolution.
func IsBranchOrJump(mnemonic string) (isBranch, isJump bool) {
	switch mnemonic {
	case "bpl", "bmi", "bvc", "bvs", "bcc", "bcs", "bne", "beq":
		return true, false
	case "jmp", "jsr":
		return false, true
	default:
		return false, false
	}
}

// String renders the addressing mode for diagnostics.
func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case ZeroPage:
		return "zeropage"
	case Absolute:
		return "absolute"
	case Branch:
		return "branch"
	case Indirect:
		return "indirect"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
