// Command nesdump reads a cartridge through a connected INLRetro-style USB
// dumper and writes it out as an iNES ROM image.
package main

import (
	"bufio"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/mcgrew/nesdisasm/internal/dumper"
	"github.com/mcgrew/nesdisasm/internal/rom"
)

func main() {
	app := cli.NewApp()
	app.Name = "nesdump"
	app.Usage = "Dump a cartridge through a connected USB dumper into an iNES ROM file"
	app.Flags = []cli.Flag{
		&cli.IntFlag{Name: "mapper", Value: 0, Usage: "mapper number, selects the bank-select driver"},
		&cli.IntFlag{Name: "prg-size", Usage: "PRG ROM size in KB; 0 auto-detects"},
		&cli.IntFlag{Name: "chr-size", Usage: "CHR ROM size in KB; 0 auto-detects, -1 skips CHR"},
		&cli.StringFlag{Name: "out", Value: "dump.nes", Usage: "output filename"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nesdump:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	dev, err := dumper.OpenDevice()
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer dev.Close()

	mapper := c.Int("mapper")
	drv, err := dumper.NewDriver(dev, mapper, c.Int("prg-size"), c.Int("chr-size"), dumper.KnownDigests{})
	if err != nil {
		return cli.Exit(err, 1)
	}

	data, err := drv.DumpAndVerify()
	switch err.(type) {
	case nil:
		fmt.Fprintln(os.Stderr, "Dump verified against known hash database.")
	case *dumper.UnknownHashError:
		fmt.Fprintln(os.Stderr, err.Error())
		if !confirm("Proceed anyway? (y/n) ") {
			return nil
		}
	default:
		return cli.Exit(err, 1)
	}

	header := rom.NewBlankHeader()
	header.SetPRGSize(drv.PRGSize)
	if drv.CHRSize > 0 {
		header.SetCHRSize(drv.CHRSize)
	}
	header.SetMapper(mapper)

	out, err := os.Create(c.String("out"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer out.Close()

	if _, err := out.Write(header.Bytes()); err != nil {
		return cli.Exit(err, 1)
	}
	if _, err := out.Write(data); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return len(line) > 0 && (line[0] == 'y' || line[0] == 'Y')
}
