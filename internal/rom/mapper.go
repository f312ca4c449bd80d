package rom

// MapperInfo describes a cartridge mapper variant: its display name, the
// size in KB of its switchable PRG bank, and how many banks at the top of
// PRG space are fixed (non-swappable). BankKB of -1 means the variant has
// too many sub-configurations to pick one bank size automatically; the
// caller must supply --bank-size explicitly.
type MapperInfo struct {
	Name       string
	BankKB     int
	FixedBanks int
}

// Mappers is the static iNES mapper table, grounded directly on the known
// mapper list used by the reference disassembler this package generalizes.
var Mappers = map[int]MapperInfo{
	0:   {"NROM", 16, 2},
	1:   {"SxROM, MMC1", 16, 1},
	2:   {"UxROM", 16, 1},
	3:   {"CNROM", 16, 2},
	4:   {"TxROM, MMC3, MMC6", 8, 2},
	5:   {"ExROM, MMC5", 8, 0},
	7:   {"AxROM", 32, 0},
	9:   {"PxROM, MMC2", 8, 3},
	10:  {"FxROM, MMC4", 16, 1},
	11:  {"Color Dreams", 32, 0},
	13:  {"CPROM", 16, 2},
	15:  {"100-in-1 Contra Function 16 Multicart", 8, 0},
	16:  {"Bandai EPROM (24C02)", -1, 0},
	18:  {"Jaleco SS8806", 8, 1},
	19:  {"Namco 163", 8, 1},
	21:  {"VRC4a, VRC4c", 8, 2},
	22:  {"VRC2a", 8, 2},
	23:  {"VRC2b, VRC4e", 8, 2},
	24:  {"VRC6a", 8, 1},
	25:  {"VRC4b, VRC4d", 8, 2},
	26:  {"VRC6b", 8, 1},
	34:  {"BNROM, NINA-001", 32, 0},
	64:  {"RAMBO-1 (MMC3 clone with extra features)", 8, 1},
	66:  {"GxROM, MxROM", 32, 0},
	68:  {"After Burner", 16, 1},
	69:  {"FME-7, Sunsoft 5B", 8, 1},
	71:  {"Camerica/Codemasters (similar to UNROM)", 16, 1},
	73:  {"VRC3", 16, 1},
	74:  {"Pirate MMC3 derivative", 8, 2},
	75:  {"VRC1", 8, 1},
	76:  {"Namco 109 variant", 8, 2},
	79:  {"NINA-03/NINA-06", 32, 0},
	85:  {"VRC7", 8, 1},
	86:  {"JALECO-JF-13", 32, 0},
	94:  {"Senjou no Ookami", 16, 1},
	105: {"NES-EVENT (similar to MMC1)", 16, 0},
	113: {"NINA-03/NINA-06 (multicart variant)", 32, 0},
	118: {"TxSROM, MMC3 (independent mirroring control)", 8, 2},
	119: {"TQROM, MMC3 (has both CHR ROM and CHR RAM)", 8, 2},
	159: {"Bandai EPROM (24C01)", -1, -1},
	166: {"SUBOR", 8, 0},
	167: {"SUBOR", 8, 0},
	180: {"Crazy Climber", 16, 1},
	185: {"CNROM with protection diodes", 16, 2},
	192: {"Pirate MMC3 derivative", 8, 2},
	206: {"DxROM, Namco 118 / MIMIC-1", 8, 2},
	210: {"Namco 175 and 340 (Namco 163 with different mirroring)", 8, 1},
	228: {"Action 52", 16, 0},
	232: {"Camerica/Codemasters Quattro (multicart)", 16, 0},
}

// Lookup returns the mapper table entry for number, or false if none is
// registered.
func Lookup(number int) (MapperInfo, bool) {
	m, ok := Mappers[number]
	return m, ok
}
