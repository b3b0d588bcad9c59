// Command opcodes reports which opcodes of the primary and CB-prefixed
// tables are modeled.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

func main() {
	list := flag.Bool("list", false, "list every modeled opcode instead of the grid")
	flag.Parse()

	if *list {
		writeList(os.Stdout, "", cpu.Modeled())
		writeList(os.Stdout, "CB ", cpu.ModeledPrefixed())
		return
	}
	writeGrid(os.Stdout, "primary", cpu.Lookup)
	fmt.Fprintln(os.Stdout)
	writeGrid(os.Stdout, "prefixed", cpu.LookupPrefixed)
}

// writeGrid prints a 16x16 map of the table behind lookup, marking
// modeled opcodes with '#' and unmodeled ones with '.'.
func writeGrid(w io.Writer, name string, lookup func(uint8) cpu.Descriptor) {
	fmt.Fprintf(w, "%s\n   ", name)
	for lo := 0; lo < 16; lo++ {
		fmt.Fprintf(w, " %X", lo)
	}
	fmt.Fprintln(w)

	modeled := 0
	for hi := 0; hi < 16; hi++ {
		fmt.Fprintf(w, "%X_ ", hi)
		for lo := 0; lo < 16; lo++ {
			mark := '.'
			if lookup(uint8(hi<<4 | lo)).Known() {
				mark = '#'
				modeled++
			}
			fmt.Fprintf(w, " %c", mark)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d/256 modeled, %d unmodeled\n", modeled, 256-modeled)
}

func writeList(w io.Writer, prefix string, descriptors []cpu.Descriptor) {
	for _, d := range descriptors {
		fmt.Fprintf(w, "%s%02X  %-16s  %s\n", prefix, d.Opcode, d.Mnemonic, d.Tag)
	}
}
