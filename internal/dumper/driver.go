package dumper

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// TransportError wraps a non-zero status byte from a control-transfer.
type TransportError struct{ Code byte }

func (e *TransportError) Error() string {
	return fmt.Sprintf("dumper: device responded with error code %#02x", e.Code)
}

// HashMismatchError means two independent full dumps disagreed.
type HashMismatchError struct{ First, Second string }

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("dumper: second read (%s) did not match the first (%s); reseat the cartridge and try again", e.Second, e.First)
}

// UnknownHashError means two independent dumps agreed but the digest isn't
// in the known set; the caller may choose to proceed anyway.
type UnknownHashError struct{ Digest string }

func (e *UnknownHashError) Error() string {
	return fmt.Sprintf("dumper: hash %s matches previous read but is not a known digest; cartridge may be miscatalogued", e.Digest)
}

// maxPRGBanks/maxCHRBanks bound an auto-detecting dump: real cartridges
// never exceed these, so they serve as a hard ceiling rather than a guess.
const (
	maxPRGBanks = 256
	maxCHRBanks = 1024
)

// KnownDigests is the set of recognized full-ROM MD5 hashes. The original
// treats this as an opaque external database; here it's a caller-supplied
// set so the driver has no hidden dependency on a hash service.
type KnownDigests map[string]bool

// Driver drives one dump session against a Device for a specific mapper.
// It holds no process-wide state: the Device and mapper are supplied at
// construction and kept as fields of the Driver.
type Driver struct {
	Device  Device
	Mapper  BankSelector
	PRGSize int // KB; 0 means "auto-detect"
	CHRSize int // KB; 0 means "auto-detect", -1 means "skip CHR"
	Known   KnownDigests
}

// NewDriver builds a Driver for mapper, failing if the mapper has no
// bank-select driver.
func NewDriver(d Device, mapper, prgSizeKB, chrSizeKB int, known KnownDigests) (*Driver, error) {
	sel, err := NewBankSelector(mapper)
	if err != nil {
		return nil, err
	}
	drv := &Driver{Device: d, Mapper: sel, PRGSize: prgSizeKB, CHRSize: chrSizeKB, Known: known}
	if err := drv.init(); err != nil {
		return nil, err
	}
	return drv, nil
}

func (d *Driver) init() error {
	if err := d.ioDo(op(ioReset, 0), 0); err != nil {
		return err
	}
	if err := d.ioDo(op(ioNESInit, 0), 0); err != nil {
		return err
	}
	return d.Mapper.PostInit(d.Device)
}

// do issues a status-only control transfer (length 1, no payload) and
// turns a nonzero status byte into a TransportError.
func (d *Driver) do(category OpType, value, index uint16) error {
	resp, err := d.Device.ControlTransfer(category, value, index, 1)
	if err != nil {
		return err
	}
	if resp[0] != 0 {
		return &TransportError{Code: resp[0]}
	}
	return nil
}

func (d *Driver) ioDo(value, index uint16) error     { return d.do(OpIO, value, index) }
func (d *Driver) bufferDo(value, index uint16) error { return d.do(OpBuffer, value, index) }
func (d *Driver) operDo(value, index uint16) error   { return d.do(OpOper, value, index) }

// initDump runs the fixed macro-sequence (§4.8 step 2) that primes the
// device's double-buffered streaming state before bytes can be read.
func (d *Driver) initDump(partitionAddr, mapVarAddr uint16) error {
	if err := d.operDo(0x0000, 0x0001); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufRawReset, 0), 0); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufAllocateBuffer0, 4), 0); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufAllocateBuffer1, 4), 0x8004); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufReloadPageNum0, 1), 0); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufReloadPageNum1, 1), 0); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufSetMemNPart, 0), partitionAddr); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufSetMemNPart, 1), partitionAddr); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufSetMapNMapVar, 0), mapVarAddr); err != nil {
		return err
	}
	if err := d.bufferDo(op(bufSetMapNMapVar, 1), mapVarAddr); err != nil {
		return err
	}
	return d.operDo(0x0000, initDumpOperation)
}

// stream reads bankKB*8 pages of 128 bytes each off the buffer endpoint.
func (d *Driver) stream(bankKB int) ([]byte, error) {
	var out bytes.Buffer
	for i := 0; i < bankKB*8; i++ {
		if _, err := d.Device.ControlTransfer(OpBuffer, op(bufGetBuffStatus, 0), 0, 3); err != nil {
			return nil, err
		}
		payload, err := d.Device.ControlTransfer(OpBuffer, op(bufPayload, 0), 0, 128)
		if err != nil {
			return nil, err
		}
		out.Write(payload)
	}
	return out.Bytes(), nil
}

// DumpPRGBank selects and streams one PRG bank.
func (d *Driver) DumpPRGBank(bank int) ([]byte, error) {
	if err := d.Mapper.SetPRGBank(d.Device, bank); err != nil {
		return nil, err
	}
	if err := d.initDump(prgPartitionAddr, prgMapVarAddr); err != nil {
		return nil, err
	}
	prgKB, _ := d.Mapper.Banks()
	return d.stream(prgKB)
}

// DumpCHRBank selects and streams one CHR bank.
func (d *Driver) DumpCHRBank(bank int) ([]byte, error) {
	if err := d.Mapper.SetCHRBank(d.Device, bank); err != nil {
		return nil, err
	}
	if err := d.initDump(chrPartitionAddr, chrMapVarAddr); err != nil {
		return nil, err
	}
	_, chrKB := d.Mapper.Banks()
	return d.stream(chrKB)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func bankHash(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// DumpFull dumps the whole cartridge: all PRG banks, then all CHR banks
// unless CHRSize is -1. When a size is unknown it dumps up to the
// hardware-possible ceiling, watching for the address space to wrap: real
// bank counts are always a power of two, so the first repeated bank hash
// at a power-of-two index means every select bit above that has aliased,
// and the true size is `index * bank_KB`.
func (d *Driver) DumpFull() ([]byte, error) {
	var out bytes.Buffer
	prgKB, chrKB := d.Mapper.Banks()

	prgBankCount := maxPRGBanks
	if d.PRGSize > 0 {
		prgBankCount = d.PRGSize / prgKB
	}
	seen := map[string]bool{}
	for i := 0; i < prgBankCount; i++ {
		buf, err := d.DumpPRGBank(i)
		if err != nil {
			return nil, err
		}
		h := bankHash(buf)
		if d.PRGSize == 0 && isPowerOfTwo(i) && seen[h] {
			d.PRGSize = i * prgKB
			break
		}
		seen[h] = true
		out.Write(buf)
	}

	if d.CHRSize < 0 {
		return out.Bytes(), nil
	}
	chrBankCount := maxCHRBanks
	if d.CHRSize > 0 {
		chrBankCount = d.CHRSize / chrKB
	}
	seen = map[string]bool{}
	for i := 0; i < chrBankCount; i++ {
		buf, err := d.DumpCHRBank(i)
		if err != nil {
			return nil, err
		}
		h := bankHash(buf)
		if d.CHRSize == 0 && isPowerOfTwo(i) && seen[h] {
			d.CHRSize = i * chrKB
			break
		}
		seen[h] = true
		out.Write(buf)
	}
	return out.Bytes(), nil
}

// DumpAndVerify dumps the cartridge and checks the result's MD5 against
// Known. If it isn't recognized, it re-dumps once: two agreeing reads with
// an unrecognized digest yield UnknownHashError (caller may proceed); two
// disagreeing reads yield HashMismatchError.
func (d *Driver) DumpAndVerify() ([]byte, error) {
	data, err := d.DumpFull()
	if err != nil {
		return nil, err
	}
	digest := bankHash(data)
	if d.Known[digest] {
		return data, nil
	}

	again, err := d.DumpFull()
	if err != nil {
		return nil, err
	}
	secondDigest := bankHash(again)
	if secondDigest == digest {
		return data, &UnknownHashError{Digest: digest}
	}
	return nil, &HashMismatchError{First: digest, Second: secondDigest}
}
