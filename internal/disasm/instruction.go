package disasm

import (
	"fmt"
	"strings"

	"github.com/mcgrew/nesdisasm/internal/cpu6502"
	"github.com/mcgrew/nesdisasm/internal/rom"
)

// storeMnemonics never receive a code label or MMIO substitution on their
// operand: they write to RAM or registers, not to code.
var storeMnemonics = map[string]bool{
	"sta": true, "stx": true, "sty": true, "dec": true, "inc": true,
}

// Instruction is a decoded opcode positioned at a CPU address inside a
// bank. Label is filled in lazily, the first time something asks for it.
type Instruction struct {
	Position int
	Decoded  cpu6502.Instruction
	Raw      []byte
	Label    string
}

// NewInstruction decodes up to three bytes at position. ok is false if the
// bytes don't form a valid instruction.
func NewInstruction(position int, data []byte, dqBrk bool) (*Instruction, bool) {
	dec, ok := cpu6502.Decode(data, dqBrk)
	if !ok {
		return nil, false
	}
	raw := make([]byte, dec.Length)
	copy(raw, data[:dec.Length])
	return &Instruction{Position: position, Decoded: dec, Raw: raw}, true
}

// Len returns the instruction's byte length.
func (ins *Instruction) Len() int { return len(ins.Raw) }

// LabelAt returns (creating if necessary) this instruction's label for a
// target address that falls within it. addr must satisfy
// Position <= addr < Position+Len().
func (ins *Instruction) LabelAt(bank *Bank, addr int) string {
	ins.Label = fmt.Sprintf("b%d_%04x", bank.Number, ins.Position)
	if addr == ins.Position {
		return ins.Label
	}
	return fmt.Sprintf("%s+%d", ins.Label, addr-ins.Position)
}

// IsTerminator reports whether this instruction ends a subroutine: a
// natural terminator (rts, rti, jmp) or one of the user-configured
// extra-terminator substrings found in the rendered instruction line.
func (ins *Instruction) IsTerminator(bank *Bank, extra []string) bool {
	switch ins.Decoded.Mnemonic {
	case "rts", "rti", "jmp":
		return true
	}
	if len(extra) == 0 {
		return false
	}
	rendered := ins.Render(bank)
	for _, v := range extra {
		if strings.Contains(rendered, v) {
			return true
		}
	}
	return false
}

// operandBytes returns the operand bytes following the opcode, with hasB1
// and hasB2 reporting which of them the instruction has; an absent byte is
// returned as 0.
func (ins *Instruction) operandBytes() (b1, b2 int, hasB1, hasB2 bool) {
	if len(ins.Raw) > 1 {
		b1, hasB1 = int(ins.Raw[1]), true
	}
	if len(ins.Raw) > 2 {
		b2, hasB2 = int(ins.Raw[2]), true
	}
	return
}

// Render renders this instruction as one assembler source line, including
// the source-trace comment. sourcePos is the linear offset within the
// full ROM image (bank_number*bank_size + intra-bank offset).
func (ins *Instruction) Render(bank *Bank) string {
	sourcePos := (ins.Position%bank.Len() + bank.Len()*bank.Number)
	var buf strings.Builder

	if ins.Label != "" {
		buf.WriteString(padRight(ins.Label+":", 12))
	} else {
		buf.WriteString(strings.Repeat(" ", 12))
	}

	op := ins.Decoded.Mnemonic
	b1, b2, hasB1, hasB2 := ins.operandBytes()

	if op == "brk" {
		// brk always renders its operand byte(s) as raw hex, since its
		// trailing byte(s) are a signature, not a real operand.
		buf.WriteString(op)
		buf.WriteString(strings.Repeat(" ", 25))
		buf.WriteString(fmt.Sprintf("; %05X:  00\n", sourcePos))
		buf.WriteString(strings.Repeat(" ", 12))
		if ins.Len() == 2 {
			buf.WriteString(fmt.Sprintf("hex %02x", b1))
			buf.WriteString(strings.Repeat(" ", 22))
			buf.WriteString(fmt.Sprintf("; %05X:  %02x\n", sourcePos+1, b1))
		} else {
			buf.WriteString(fmt.Sprintf("hex %02x %02x", b1, b2))
			buf.WriteString(strings.Repeat(" ", 19))
			buf.WriteString(fmt.Sprintf("; %05X:  %02x %02x\n", sourcePos+1, b1, b2))
		}
		return buf.String()
	}

	lineLen := buf.Len()

	switch ins.Decoded.Mode {
	case cpu6502.Implied:
		buf.WriteString(op)
	case cpu6502.Accumulator:
		buf.WriteString(op + " a")
	case cpu6502.Immediate:
		buf.WriteString(fmt.Sprintf("%s #$%02x", op, b1))
	case cpu6502.Branch:
		off := b1
		if off >= 128 {
			off -= 256
		}
		dest := ins.Position + 2 + off
		buf.WriteString(fmt.Sprintf("%s %s", op, bank.FindLabel(dest)))
	case cpu6502.ZeroPage:
		if ins.Decoded.Indexing == cpu6502.NoIndex {
			buf.WriteString(fmt.Sprintf("%s $%02x", op, b1))
		} else {
			buf.WriteString(fmt.Sprintf("%s $%02x,%s", op, b1, ins.Decoded.Indexing))
		}
	case cpu6502.Absolute:
		addr := b2<<8 | b1
		if storeMnemonics[op] {
			// Store mnemonics always render the raw address, never an MMIO
			// name or code label: they write data, not control flow.
			buf.WriteString(fmt.Sprintf("%s $%04x", op, addr))
		} else if name, ok := rom.MMIO[addr]; ok {
			buf.WriteString(fmt.Sprintf("%s %s", op, name))
		} else {
			buf.WriteString(fmt.Sprintf("%s %s", op, bank.FindLabel(addr)))
		}
		if ins.Decoded.Indexing != cpu6502.NoIndex {
			buf.WriteString(fmt.Sprintf(",%s", ins.Decoded.Indexing))
		}
		if b2 == 0 && op != "jmp" && op != "jsr" {
			// Absolute operands with a zero high byte would otherwise
			// assemble to the cheaper zero-page form, changing the byte
			// stream; force raw hex emission instead, keeping the
			// original mnemonic text as a trailing comment.
			opComment := buf.String()[12:]
			head := buf.String()[:12]
			buf.Reset()
			buf.WriteString(head)
			buf.WriteString(fmt.Sprintf("hex %02x %02x %02x ; %s", ins.Raw[0], b1, b2, opComment))
		}
	case cpu6502.Indirect:
		if !hasB1 {
			break
		}
		switch {
		case op == "jmp":
			buf.WriteString(fmt.Sprintf("%s ($%02x%02x)", op, b2, b1))
		case ins.Decoded.Indexing == cpu6502.NoIndex:
			buf.WriteString(fmt.Sprintf("%s $%02x", op, b1))
		case ins.Decoded.Indexing == cpu6502.IndexX:
			buf.WriteString(fmt.Sprintf("%s ($%02x,x)", op, b1))
		case ins.Decoded.Indexing == cpu6502.IndexY:
			buf.WriteString(fmt.Sprintf("%s ($%02x),y", op, b1))
		}
	}

	pad := 40 + lineLen - buf.Len()
	if pad < 1 {
		pad = 1
	}
	buf.WriteString(strings.Repeat(" ", pad))
	buf.WriteString(fmt.Sprintf("; %05X:  ", sourcePos))
	for i, b := range ins.Raw {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(fmt.Sprintf("%02x", b))
	}
	buf.WriteString("\n")
	return buf.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
