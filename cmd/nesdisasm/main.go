// Command nesdisasm disassembles an iNES ROM image into labeled 6502
// assembly source, one file per PRG bank plus a main file that includes
// them all.
package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/mcgrew/nesdisasm/internal/disasm"
	"github.com/mcgrew/nesdisasm/internal/dumper"
	"github.com/mcgrew/nesdisasm/internal/rom"
)

func main() {
	app := cli.NewApp()
	app.Name = "nesdisasm"
	app.Usage = "Disassemble an NES ROM image into labeled 6502 assembly"
	app.ArgsUsage = "filename"
	app.Flags = []cli.Flag{
		&cli.IntFlag{Name: "bank-size", Usage: "switchable PRG bank size in KB, overriding the mapper table"},
		&cli.IntFlag{Name: "fixed-banks", Usage: "number of fixed PRG banks, overriding the mapper table"},
		&cli.IntFlag{Name: "min-sub-size", Value: 2, Usage: "minimum instruction count for a valid subroutine"},
		&cli.StringFlag{Name: "sub-valid-end", Usage: "comma-separated list of extra subroutine-terminator mnemonics"},
		&cli.BoolFlag{Name: "no-sub-check", Usage: "accept every complete subroutine regardless of min-sub-size"},
		&cli.BoolFlag{Name: "no-header", Usage: "treat the input as headerless, using --mapper/--prg-size/--chr-size"},
		&cli.IntFlag{Name: "prg-size", Usage: "PRG ROM size in KB, overriding the header"},
		&cli.IntFlag{Name: "chr-size", Usage: "CHR ROM size in KB, overriding the header"},
		&cli.IntFlag{Name: "mapper", Value: -1, Usage: "mapper number, overriding the header"},
		&cli.BoolFlag{Name: "no-chr", Usage: "don't emit chr_rom.bin"},
		&cli.BoolFlag{Name: "stdout", Usage: "write the full disassembly to stdout instead of files"},
		&cli.BoolFlag{Name: "dq-brk", Usage: "treat brk as a 3-byte instruction (Dragon Quest cartridges)"},
		&cli.IntFlag{Name: "bank", Value: -1, Usage: "disassemble only this PRG bank number"},
		&cli.BoolFlag{Name: "info", Usage: "print the header and mapper info, then exit"},
		&cli.BoolFlag{Name: "inlretro", Usage: "read the ROM from a connected INLRetro dumper instead of a file"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nesdisasm:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	data, fromDumper, err := loadROM(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var header *rom.Header
	if c.Bool("no-header") || fromDumper {
		header = rom.NewBlankHeader()
	} else {
		header, err = rom.NewHeader(data)
		if err != nil {
			return cli.Exit(err, 1)
		}
		data = data[rom.HeaderSize:]
	}

	mapperNumber := header.Mapper()
	if m := c.Int("mapper"); m >= 0 {
		mapperNumber = m
		header.SetMapper(m)
	}
	info, ok := rom.Lookup(mapperNumber)
	if !ok && (!c.IsSet("bank-size") || !c.IsSet("fixed-banks")) {
		return cli.Exit(fmt.Errorf("%w %d; pass --bank-size and --fixed-banks explicitly", rom.ErrUnknownMapper, mapperNumber), 1)
	}

	bankKB := info.BankKB
	if v := c.Int("bank-size"); v > 0 {
		bankKB = v
	}
	if bankKB <= 0 {
		return cli.Exit(fmt.Errorf("mapper %d needs an explicit --bank-size", mapperNumber), 1)
	}
	fixedBanks := info.FixedBanks
	if c.IsSet("fixed-banks") {
		fixedBanks = c.Int("fixed-banks")
	}

	prgSizeKB := header.PRGSize()
	if v := c.Int("prg-size"); v > 0 {
		prgSizeKB = v
		header.SetPRGSize(v)
	}
	chrSizeKB := header.CHRSize()
	if v := c.Int("chr-size"); v > 0 {
		chrSizeKB = v
		header.SetCHRSize(v)
	}

	if c.Bool("info") {
		fmt.Print(header.Comment())
		return nil
	}

	opts := disasm.DefaultOptions()
	if v := c.Int("min-sub-size"); v > 0 {
		opts.MinSubSize = v
	}
	opts.NoSubCheck = c.Bool("no-sub-check")
	opts.DQBrk = c.Bool("dq-brk")
	if v := c.String("sub-valid-end"); v != "" {
		opts.ValidEnd = strings.Split(v, ",")
	}

	prgSize := prgSizeKB * 1024
	if prgSize <= 0 || prgSize > len(data) {
		prgSize = len(data)
	}
	prgData := data[:prgSize]
	chrData := data[prgSize:]

	bankSize := bankKB * 1024
	if bankSize <= 0 || len(prgData)%bankSize != 0 {
		return cli.Exit(fmt.Errorf("PRG size %d is not a multiple of bank size %d", len(prgData), bankSize), 1)
	}
	numBanks := len(prgData) / bankSize

	var banks []*disasm.Bank
	only := c.Int("bank")
	for i := 0; i < numBanks; i++ {
		if only >= 0 && i != only {
			banks = append(banks, nil)
			continue
		}
		raw := prgData[i*bankSize : (i+1)*bankSize]
		base := 0
		if i >= numBanks-fixedBanks {
			base = 0x10000 - (numBanks-i)*bankSize
		}
		banks = append(banks, disasm.NewBank(i, base, raw, fixedBanks, opts))
	}

	if c.Bool("stdout") {
		fmt.Print(header.Comment())
		fmt.Print(mmioEquBlock())
		for _, b := range banks {
			if b != nil {
				fmt.Print(b.Render())
			}
		}
		return nil
	}

	return writeOutput(c.Args().First(), header, banks, chrData, c.Bool("no-chr"))
}

// loadROM returns the raw ROM bytes either from the positional filename or,
// with --inlretro, from a connected dumper device.
func loadROM(c *cli.Context) (data []byte, fromDumper bool, err error) {
	if c.Bool("inlretro") {
		dev, err := dumper.OpenDevice()
		if err != nil {
			return nil, false, err
		}
		defer dev.Close()
		mapper := c.Int("mapper")
		if mapper < 0 {
			mapper = 0
		}
		drv, err := dumper.NewDriver(dev, mapper, c.Int("prg-size"), negOneIfZero(c.Int("chr-size")), dumper.KnownDigests{})
		if err != nil {
			return nil, false, err
		}
		data, err = drv.DumpAndVerify()
		return data, true, err
	}

	filename := c.Args().First()
	if filename == "" {
		return nil, false, fmt.Errorf("no filename provided")
	}
	data, err = os.ReadFile(filename)
	return data, false, err
}

func negOneIfZero(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

func mmioEquBlock() string {
	var buf strings.Builder
	for _, addr := range rom.MMIOOrdered {
		buf.WriteString(fmt.Sprintf("%-12s equ $%04x\n", rom.MMIO[addr], addr))
	}
	buf.WriteString("\n")
	return buf.String()
}

func writeOutput(filename string, header *rom.Header, banks []*disasm.Bank, chrData []byte, noChr bool) error {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		base = "rom"
	}
	dir := filepath.Dir(filename)

	mainPath := filepath.Join(dir, base+".asm")
	var main strings.Builder
	main.WriteString(header.Comment())
	main.WriteString(mmioEquBlock())
	for i, b := range banks {
		if b == nil {
			continue
		}
		bankFile := fmt.Sprintf("bank_%02d.asm", i)
		main.WriteString(fmt.Sprintf(".include \"%s\"\n", bankFile))
		if err := os.WriteFile(filepath.Join(dir, bankFile), []byte(b.Render()), 0644); err != nil {
			return err
		}
	}
	if err := os.WriteFile(mainPath, []byte(main.String()), 0644); err != nil {
		return err
	}

	if !noChr && len(chrData) > 0 {
		if err := os.WriteFile(path.Join(dir, "chr_rom.bin"), chrData, 0644); err != nil {
			return err
		}
	}
	return nil
}
