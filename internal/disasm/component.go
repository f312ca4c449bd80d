package disasm

import (
	"fmt"
	"strings"
)

// Component is the tagged-union member a Bank holds: a Subroutine, Table,
// or Word. Each knows its own position, length, raw bytes, how to produce
// a label for an address inside itself, and how to render itself as
// assembler source. Bank is passed explicitly wherever a component needs
// to resolve a label elsewhere in the bank, rather than stored as a
// back-reference.
type Component interface {
	Position() int
	Len() int
	Bytes() []byte
	LabelAt(bank *Bank, addr int) string
	Render(bank *Bank) string
}

// Subroutine is an ordered, contiguous run of Instructions.
type Subroutine struct {
	position     int
	Instructions []*Instruction
}

// NewSubroutine starts an empty subroutine at position.
func NewSubroutine(position int) *Subroutine {
	return &Subroutine{position: position}
}

func (s *Subroutine) Position() int { return s.position }

func (s *Subroutine) Len() int {
	n := 0
	for _, i := range s.Instructions {
		n += i.Len()
	}
	return n
}

func (s *Subroutine) Bytes() []byte {
	out := make([]byte, 0, s.Len())
	for _, i := range s.Instructions {
		out = append(out, i.Raw...)
	}
	return out
}

// Append adds an instruction to the end of this subroutine.
func (s *Subroutine) Append(ins *Instruction) {
	s.Instructions = append(s.Instructions, ins)
}

// IsComplete reports whether this subroutine's last instruction is a
// terminator: rts, rti, jmp, or a configured extra terminator substring.
func (s *Subroutine) IsComplete(bank *Bank, opts Options) bool {
	if len(s.Instructions) == 0 {
		return false
	}
	last := s.Instructions[len(s.Instructions)-1]
	return last.IsTerminator(bank, opts.ValidEnd)
}

// IsValid reports whether this subroutine should be kept as code rather
// than demoted to a Table.
func (s *Subroutine) IsValid(bank *Bank, opts Options) bool {
	if opts.NoSubCheck {
		return true
	}
	return s.IsComplete(bank, opts) && len(s.Instructions) >= opts.MinSubSize
}

func (s *Subroutine) LabelAt(bank *Bank, addr int) string {
	for _, i := range s.Instructions {
		if addr >= i.Position && addr < i.Position+i.Len() {
			return i.LabelAt(bank, addr)
		}
	}
	return fmt.Sprintf("$%04x", addr)
}

func (s *Subroutine) Render(bank *Bank) string {
	var buf strings.Builder
	for _, i := range s.Instructions {
		buf.WriteString(i.Render(bank))
	}
	buf.WriteString("\n")
	return buf.String()
}

// Table is a byte run representing data.
type Table struct {
	position int
	raw      []byte
	Label    string
}

// NewTable starts an empty table at position.
func NewTable(position int) *Table {
	return &Table{position: position}
}

func (t *Table) Position() int { return t.position }
func (t *Table) Len() int      { return len(t.raw) }
func (t *Table) Bytes() []byte { return t.raw }

// AppendByte adds a single byte to this table.
func (t *Table) AppendByte(b byte) { t.raw = append(t.raw, b) }

// Extend appends the given bytes to this table.
func (t *Table) Extend(b []byte) { t.raw = append(t.raw, b...) }

func (t *Table) LabelAt(bank *Bank, addr int) string {
	t.Label = fmt.Sprintf("tab_b%d_%04x", bank.Number, t.position)
	if addr == t.position {
		return t.Label
	}
	return fmt.Sprintf("%s+%d", t.Label, addr-t.position)
}

func (t *Table) Render(bank *Bank) string {
	sourcePos := t.position%bank.Len() + bank.Len()*bank.Number
	var buf strings.Builder
	lastLine := 0
	if t.Label != "" {
		buf.WriteString(fmt.Sprintf("%s: ", t.Label))
		buf.WriteString(fmt.Sprintf("; %d bytes\n", t.Len()))
		lastLine = buf.Len()
	}
	for i := 0; i < len(t.raw); i += 8 {
		end := i + 8
		if end > len(t.raw) {
			end = len(t.raw)
		}
		byteString := hexJoin(t.raw[i:end])
		buf.WriteString(strings.Repeat(" ", 12))
		buf.WriteString("hex ")
		buf.WriteString(byteString)
		pad := 40 + lastLine - buf.Len()
		if pad < 1 {
			pad = 1
		}
		buf.WriteString(strings.Repeat(" ", pad))
		buf.WriteString(fmt.Sprintf("; %05X:  ", sourcePos+i))
		buf.WriteString(byteString)
		buf.WriteString("\n")
		lastLine = buf.Len()
	}
	buf.WriteString("\n")
	return buf.String()
}

func hexJoin(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}

// Word is a 16-bit little-endian pointer, used for the NMI/RESET/IRQ
// interrupt vectors.
type Word struct {
	position int
	B1, B2   byte
	Addr     int
	Label    string
	Comment  string
}

// NewWord builds a vector word at position pointing at the little-endian
// address formed by b1 (low byte) and b2 (high byte).
func NewWord(position int, b1, b2 byte, label string) *Word {
	return &Word{position: position, B1: b1, B2: b2, Addr: int(b2)<<8 | int(b1), Label: label}
}

func (w *Word) Position() int { return w.position }
func (w *Word) Len() int      { return 2 }
func (w *Word) Bytes() []byte { return []byte{w.B1, w.B2} }

func (w *Word) LabelAt(bank *Bank, addr int) string {
	if w.Label == "" {
		return fmt.Sprintf("$%04x", addr)
	}
	if addr == w.position {
		return w.Label
	}
	return fmt.Sprintf("%s+%d", w.Label, addr-w.position)
}

func (w *Word) Render(bank *Bank) string {
	sourcePos := w.position%bank.Len() + bank.Len()*bank.Number
	var buf strings.Builder
	if w.Label != "" {
		buf.WriteString(padRight(w.Label+":", 12))
	} else {
		buf.WriteString(strings.Repeat(" ", 12))
	}
	buf.WriteString(padRight(fmt.Sprintf("word %s", bank.FindLabel(w.Addr)), 28))
	buf.WriteString(fmt.Sprintf("; %05X: %02x %02x", sourcePos, w.B1, w.B2))
	if w.Comment != "" {
		buf.WriteString("     " + w.Comment)
	}
	buf.WriteString("\n")
	return buf.String()
}
