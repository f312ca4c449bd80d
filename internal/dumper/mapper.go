package dumper

import "fmt"

// BankSelector is the minimal interface the driver needs from a mapper: how
// big its switchable banks are, how to select one, and a one-time chip
// init. Implemented as a tagged variant per mapper family rather than a
// class hierarchy, dispatched through this interface.
type BankSelector interface {
	// Banks returns (prgBankKB, chrBankKB).
	Banks() (int, int)
	PostInit(d Device) error
	SetPRGBank(d Device, bank int) error
	SetCHRBank(d Device, bank int) error
}

func doNES(d Device, value, index uint16) error {
	resp, err := d.ControlTransfer(OpNES, value, index, 1)
	if err != nil {
		return err
	}
	if resp[0] != 0 {
		return &TransportError{Code: resp[0]}
	}
	return nil
}

// NROM (mapper 0) has no bank-select registers at all; PRG and CHR are
// each a single fixed bank.
type NROM struct{}

func (NROM) Banks() (int, int)                  { return 32, 8 }
func (NROM) PostInit(Device) error               { return nil }
func (NROM) SetPRGBank(Device, int) error        { return nil }
func (NROM) SetCHRBank(Device, int) error        { return nil }

// SxROM covers MMC1-family boards (mappers 1, 105).
type SxROM struct{}

func (SxROM) Banks() (int, int) { return 16, 4 }

func (SxROM) PostInit(d Device) error {
	return doNES(d, op(nesMMC1Wr, 0x1c), 0x9fff)
}

func (SxROM) SetPRGBank(d Device, bank int) error {
	return doNES(d, op(nesMMC1Wr, uint8(bank)), 0xffff)
}

func (SxROM) SetCHRBank(d Device, bank int) error {
	return doNES(d, op(nesMMC1Wr, uint8(bank)), 0xbfff)
}

// UxROM covers mappers 2, 94, 180: PRG-only bank select, CHR is fixed.
type UxROM struct{}

func (UxROM) Banks() (int, int)           { return 16, 8 }
func (UxROM) PostInit(Device) error        { return nil }
func (UxROM) SetCHRBank(Device, int) error { return nil }

func (UxROM) SetPRGBank(d Device, bank int) error {
	return doNES(d, op(nesCPUWr, uint8(bank)), 0xffff)
}

// CNROM covers mappers 3, 185: CHR-only bank select, PRG is fixed.
type CNROM struct{}

func (CNROM) Banks() (int, int)           { return 32, 8 }
func (CNROM) PostInit(Device) error        { return nil }
func (CNROM) SetPRGBank(Device, int) error { return nil }

func (CNROM) SetCHRBank(d Device, bank int) error {
	return doNES(d, op(nesCPUWr, uint8(bank)), 0xffff)
}

// TxROM covers MMC3-family boards (mappers 4, 64, 118, 119).
type TxROM struct{}

func (TxROM) Banks() (int, int)    { return 8, 1 }
func (TxROM) PostInit(Device) error { return nil }

func (TxROM) SetPRGBank(d Device, bank int) error {
	if err := doNES(d, op(nesCPUWr, 0b10000110), 0x9ffe); err != nil {
		return err
	}
	return doNES(d, op(nesCPUWr, uint8(bank)), 0x9fff)
}

func (TxROM) SetCHRBank(d Device, bank int) error {
	if err := doNES(d, op(nesCPUWr, 0b10000010), 0x9ffe); err != nil {
		return err
	}
	return doNES(d, op(nesCPUWr, uint8(bank)), 0x9fff)
}

// ExROM covers MMC5 boards (mapper 5).
type ExROM struct{}

func (ExROM) Banks() (int, int)    { return 8, 1 }
func (ExROM) PostInit(Device) error { return nil }

func (ExROM) SetPRGBank(d Device, bank int) error {
	if err := doNES(d, op(nesCPUWr, 3), 0x5100); err != nil {
		return err
	}
	return doNES(d, op(nesCPUWr, 0x80|uint8(bank)), 0x5114)
}

func (ExROM) SetCHRBank(d Device, bank int) error {
	if err := doNES(d, op(nesCPUWr, 3), 0x5101); err != nil {
		return err
	}
	if err := doNES(d, op(nesCPUWr, uint8(bank>>8)), 0x5130); err != nil {
		return err
	}
	return doNES(d, op(nesCPUWr, uint8(bank&0xff)), 0x5120)
}

// mapperTable mirrors the dumper firmware's supported-board list; it is
// deliberately smaller than internal/rom's full mapper table since only
// these families have a bank-select driver implemented.
var mapperTable = map[int]func() BankSelector{
	0:   func() BankSelector { return NROM{} },
	1:   func() BankSelector { return SxROM{} },
	2:   func() BankSelector { return UxROM{} },
	3:   func() BankSelector { return CNROM{} },
	4:   func() BankSelector { return TxROM{} },
	5:   func() BankSelector { return ExROM{} },
	64:  func() BankSelector { return TxROM{} },
	94:  func() BankSelector { return UxROM{} },
	105: func() BankSelector { return SxROM{} },
	118: func() BankSelector { return TxROM{} },
	119: func() BankSelector { return TxROM{} },
	180: func() BankSelector { return UxROM{} },
	185: func() BankSelector { return CNROM{} },
}

// NewBankSelector looks up the bank-select driver for a mapper number,
// failing construction for mappers the dumper firmware doesn't support.
func NewBankSelector(mapper int) (BankSelector, error) {
	ctor, ok := mapperTable[mapper]
	if !ok {
		return nil, fmt.Errorf("dumper: mapper %d has no bank-select driver", mapper)
	}
	return ctor(), nil
}
