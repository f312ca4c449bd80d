package disasm

// Options carries the tunables that affect classification and rendering.
// These were command-line flags and mutable class attributes in the
// reference implementation; here they're an explicit struct threaded
// through Bank construction instead of module-level globals.
type Options struct {
	// MinSubSize is the minimum instruction count for a complete
	// subroutine to be considered valid. Shorter complete runs are
	// demoted to a Table.
	MinSubSize int
	// NoSubCheck, when true, accepts every complete subroutine as valid
	// regardless of MinSubSize.
	NoSubCheck bool
	// ValidEnd lists extra substrings that, if found in a subroutine's
	// final rendered instruction, mark it complete in addition to rts,
	// rti, and jmp.
	ValidEnd []string
	// DQBrk lengthens brk to a 3-byte instruction, matching the
	// Dragon Quest cartridges' nonstandard use of the byte after brk.
	DQBrk bool
}

// DefaultOptions matches the reference implementation's defaults.
func DefaultOptions() Options {
	return Options{MinSubSize: 2}
}
