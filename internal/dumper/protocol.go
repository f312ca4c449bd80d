// Package dumper speaks the INLRetro-style cartridge dumper's USB control
// protocol: select a bank on the target mapper, prime the device's internal
// streaming buffer, and read raw bytes back 128 at a time.
package dumper

// OpType selects which category of sub-operation a control-transfer
// addresses; it is carried in bRequest.
type OpType uint8

const (
	OpIO     OpType = 2
	OpNES    OpType = 3
	OpBuffer OpType = 5
	OpOper   OpType = 7
)

// op packs a sub-operation id and an optional 8-bit data byte into the
// 16-bit wValue field the device expects: id in the low byte, data
// piggy-backed in the high byte.
func op(id uint8, data uint8) uint16 {
	return uint16(id) | uint16(data)<<8
}

// IO sub-operations (OpType IO).
const (
	ioReset   uint8 = 0x00
	ioNESInit uint8 = 0x01
)

// NES sub-operations (OpType NES).
const (
	nesCPUWr  uint8 = 0x02
	nesMMC1Wr uint8 = 0x04
)

// Buffer sub-operations (OpType Buffer).
const (
	bufRawReset       uint8 = 0x00
	bufSetMemNPart    uint8 = 0x30
	bufSetMapNMapVar  uint8 = 0x32
	bufGetBuffStatus  uint8 = 0x61
	bufPayload        uint8 = 0x70
	bufAllocateBuffer0 uint8 = 0x80
	bufAllocateBuffer1 uint8 = 0x81
	bufReloadPageNum0  uint8 = 0x90
	bufReloadPageNum1  uint8 = 0x91
)

// Partition addresses used by the init-dump sequence (§4.8): PRG streams
// out of partition 0x20DD with mapper-variable data at 0x0800, CHR out of
// 0x21DD with no mapper-variable offset.
const (
	prgPartitionAddr uint16 = 0x20dd
	chrPartitionAddr uint16 = 0x21dd
	prgMapVarAddr    uint16 = 0x0800
	chrMapVarAddr    uint16 = 0x0000
)

const initDumpOperation uint16 = 0x00d2

// reqControlIn is the bmRequestType for the device's single control-transfer
// primitive: device-to-host, vendor-defined, addressed to the device.
const reqControlIn uint8 = 0xc0
