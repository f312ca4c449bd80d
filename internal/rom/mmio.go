package rom

// MMIO maps well-known PPU/APU register addresses to their canonical
// assembler names, substituted in place of a raw hex address when an
// instruction's operand (other than a store) targets one of them.
var MMIO = map[int]string{
	0x2000: "PPUCTRL",
	0x2001: "PPUMASK",
	0x2002: "PPUSTATUS",
	0x2003: "OAMADDR",
	0x2004: "OAMDATA",
	0x2005: "PPUSCROLL",
	0x2006: "PPUADDR",
	0x2007: "PPUDATA",
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400A: "TRI_LO",
	0x400B: "TRI_HI",
	0x400C: "NOISE_VOL",
	0x400E: "NOISE_PER",
	0x400F: "NOISE_LEN",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",
	0x4014: "OAMDMA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",
}

// MMIOOrdered lists the MMIO addresses in ascending order, for rendering
// the EQU block at the top of the disassembled output deterministically.
var MMIOOrdered = []int{
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007,
	0x4000, 0x4001, 0x4002, 0x4003, 0x4004, 0x4005, 0x4006, 0x4007,
	0x4008, 0x400A, 0x400B, 0x400C, 0x400E, 0x400F,
	0x4010, 0x4011, 0x4012, 0x4013, 0x4014, 0x4015, 0x4016, 0x4017,
}
