package ines

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintInfos writes a human readable summary of the rom header to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "PRG ROM:\t%d x 16KB\t(%d bytes)\n", rom.raw[4], len(rom.PRG))
	fmt.Fprintf(tw, "CHR ROM:\t%d x 8KB\t(%d bytes)\n", rom.raw[5], len(rom.CHR))
	fmt.Fprintf(tw, "PRG RAM:\t%d bytes\t\n", rom.PRGRAMSize())
	fmt.Fprintf(tw, "Mapper:\t%d\t\n", rom.Mapper())
	fmt.Fprintf(tw, "Mirroring:\t%s\t\n", rom.Mirroring())
	fmt.Fprintf(tw, "Trainer:\t%t\t\n", rom.HasTrainer())
	fmt.Fprintf(tw, "Battery:\t%t\t\n", rom.HasPersistent())
}
