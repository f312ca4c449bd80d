package disasm

import (
	"fmt"
	"strings"

	"github.com/mcgrew/nesdisasm/internal/cpu6502"
)

// vectorTrailerSize is the length in bytes of the NMI/RESET/IRQ triple
// that trails the last PRG bank.
const vectorTrailerSize = 6

// Bank classifies a single PRG bank's raw bytes into a sequence of
// Subroutine/Table/Word components, infers the CPU base address it was
// compiled for when not supplied, and resolves label text for every
// branch/jump target inside it.
type Bank struct {
	Number     int
	Base       int
	Fixed      int // fixed-bank count for this bank's mapper
	Options    Options
	raw        []byte
	Components []Component
}

// NewBank classifies raw into components. base of 0 means "unknown,
// infer it"; the bank is disassembled once at a default base, and again
// at the inferred base if that differs.
func NewBank(number, base int, raw []byte, fixed int, opts Options) *Bank {
	b := &Bank{
		Number:  number,
		Base:    base,
		Fixed:   fixed,
		Options: opts,
		raw:     raw,
	}
	if b.Base == 0 {
		b.Base = 0x8000
	}

	body, trailer := splitTrailer(raw)
	b.disassemble(body, trailer)

	if base == 0 {
		oldBase := b.Base
		newBase := b.FindBase()
		if newBase != oldBase {
			b.Base = newBase
			b.disassemble(body, trailer)
		}
	}
	// Force label generation on every branch/jump target, as the
	// reference implementation does by rendering once at construction
	// time and discarding the text.
	b.Render()
	return b
}

func splitTrailer(raw []byte) (body, trailer []byte) {
	if len(raw) < vectorTrailerSize {
		return raw, nil
	}
	return raw[:len(raw)-vectorTrailerSize], raw[len(raw)-vectorTrailerSize:]
}

// Len returns the bank's raw byte length.
func (b *Bank) Len() int { return len(b.raw) }

// Bytes returns the bank's raw bytes.
func (b *Bank) Bytes() []byte { return b.raw }

func (b *Bank) disassemble(body, interrupts []byte) {
	b.Components = b.Components[:0]
	i := 0
	for i < len(body) {
		ins, ok := NewInstruction(i+b.Base, body[i:min(i+3, len(body))], b.Options.DQBrk)
		if ok {
			b.appendInstruction(ins)
			i += ins.Len()
		} else {
			b.appendDataByte(i+b.Base, body[i])
			i++
		}
	}

	if len(interrupts) == 0 {
		return
	}
	prefix := ""
	if b.Fixed == 0 {
		prefix = fmt.Sprintf("b%d_", b.Number)
	}
	nmi := NewWord(b.Base+b.Len()-6, interrupts[0], interrupts[1], prefix+"NMI")
	reset := NewWord(b.Base+b.Len()-4, interrupts[2], interrupts[3], prefix+"RESET")
	irq := NewWord(b.Base+b.Len()-2, interrupts[4], interrupts[5], prefix+"IRQ")

	if b.Base == 0x10000-b.Len() {
		b.Components = append(b.Components, nmi, reset, irq)
		return
	}

	var tail *Table
	if len(b.Components) > 0 {
		if t, ok := b.Components[len(b.Components)-1].(*Table); ok {
			tail = t
		}
	}
	if tail == nil {
		tail = NewTable(b.Base + len(body))
		b.Components = append(b.Components, tail)
	}
	tail.Extend(nmi.Bytes())
	tail.Extend(reset.Bytes())
	tail.Extend(irq.Bytes())
}

func (b *Bank) appendInstruction(ins *Instruction) {
	switch {
	case len(b.Components) == 0:
		b.Components = append(b.Components, NewSubroutine(ins.Position))
	default:
		last, isSub := b.Components[len(b.Components)-1].(*Subroutine)
		switch {
		case !isSub:
			b.Components = append(b.Components, NewSubroutine(ins.Position))
		case last.IsComplete(b, b.Options):
			b.mergeInvalid()
			b.Components = append(b.Components, NewSubroutine(ins.Position))
		}
	}
	sub := b.Components[len(b.Components)-1].(*Subroutine)
	sub.Append(ins)
}

func (b *Bank) appendDataByte(position int, by byte) {
	if len(b.Components) == 0 {
		b.Components = append(b.Components, NewTable(position))
	} else if _, isSub := b.Components[len(b.Components)-1].(*Subroutine); isSub {
		b.mergeInvalid()
	}
	if _, isTable := b.Components[len(b.Components)-1].(*Table); !isTable {
		b.Components = append(b.Components, NewTable(position))
	}
	b.Components[len(b.Components)-1].(*Table).AppendByte(by)
}

// mergeInvalid demotes the trailing Subroutine to a Table if it isn't
// valid, then merges it into an immediately preceding Table.
func (b *Bank) mergeInvalid() {
	if len(b.Components) == 0 {
		return
	}
	c := b.Components[len(b.Components)-1]
	sub, isSub := c.(*Subroutine)
	if !isSub || sub.IsValid(b, b.Options) {
		return
	}
	t := NewTable(sub.Position())
	t.Extend(sub.Bytes())
	b.Components[len(b.Components)-1] = t

	for len(b.Components) > 1 {
		prev, ok := b.Components[len(b.Components)-2].(*Table)
		if !ok {
			break
		}
		prev.Extend(t.Bytes())
		b.Components = b.Components[:len(b.Components)-1]
		t = prev
	}
}

// FindComponent returns the component containing addr, or nil.
func (b *Bank) FindComponent(addr int) Component {
	for _, c := range b.Components {
		if addr >= c.Position() && addr < c.Position()+c.Len() {
			return c
		}
	}
	return nil
}

// FindLabel returns the label for addr if a component owns it, or a raw
// hex address otherwise.
func (b *Bank) FindLabel(addr int) string {
	if c := b.FindComponent(addr); c != nil {
		return c.LabelAt(b, addr)
	}
	return fmt.Sprintf("$%04x", addr)
}

// FindBase scores every candidate base address by counting jmp/jsr
// absolute targets that land strictly between it and the next candidate,
// and returns the highest-scoring one.
func (b *Bank) FindBase() int {
	size := b.Len()
	var bases []int
	for base := 0x8000; base <= 0x10000-size*b.Fixed; base += size {
		bases = append(bases, base)
	}
	if _, lastIsWord := b.Components[len(b.Components)-1].(*Word); !lastIsWord {
		if len(bases) > 0 {
			bases = bases[:len(bases)-1]
		}
	}
	if len(bases) < 2 {
		if len(bases) == 1 {
			return bases[0]
		}
		return b.Base
	}

	bins := make([]int, len(bases)-1)
	for _, c := range b.Components {
		sub, ok := c.(*Subroutine)
		if !ok {
			continue
		}
		for _, ins := range sub.Instructions {
			mnem := ins.Decoded.Mnemonic
			if ins.Decoded.Mode != cpu6502.Absolute || (mnem != "jmp" && mnem != "jsr") {
				continue
			}
			b1, b2, _, _ := ins.operandBytes()
			target := b2<<8 | b1
			for i := 0; i < len(bins); i++ {
				if target > bases[i] && target < bases[i+1] {
					bins[i]++
				}
			}
		}
	}

	best := 0
	for i, count := range bins {
		if count > bins[best] {
			best = i
		}
	}
	return bases[best]
}

// Render produces the bank's full assembler source, including the
// `.base $XXXX` directive and every component in order.
func (b *Bank) Render() string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf(".base $%04x\n\n", b.Base))
	for _, c := range b.Components {
		buf.WriteString(c.Render(b))
	}
	return buf.String()
}
