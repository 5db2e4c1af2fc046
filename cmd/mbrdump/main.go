package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgrewell/mbr-kit/pkg/consts"
	"github.com/bgrewell/mbr-kit/pkg/mbr/sector"
	"github.com/bgrewell/mbr-kit/pkg/mbr/table"
	"github.com/bgrewell/usage"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const bytesPerRow = 16

// annotation returns the margin note for the row starting at offset, marking
// where the partition table slots and the boot signature live.
func annotation(offset int) string {
	switch {
	case offset == consts.MBR_PARTITION_TABLE_OFFSET-consts.MBR_PARTITION_TABLE_OFFSET%bytesPerRow:
		return "<- partition table begins at 0x1BE"
	case offset == consts.MBR_BOOT_SIGNATURE_OFFSET-consts.MBR_BOOT_SIGNATURE_OFFSET%bytesPerRow:
		return "<- boot signature at 0x1FE"
	default:
		return ""
	}
}

// dumpRow renders one hex+ASCII row of the sector.
func dumpRow(offset int, row []byte) string {
	var hexPart strings.Builder
	var asciiPart strings.Builder
	for i, b := range row {
		if i == 8 {
			hexPart.WriteByte(' ')
		}
		fmt.Fprintf(&hexPart, "%02X ", b)
		if b >= 0x20 && b <= 0x7E {
			asciiPart.WriteByte(b)
		} else {
			asciiPart.WriteByte('.')
		}
	}
	return fmt.Sprintf("%08X  %-49s |%s|  %s", offset, hexPart.String(), asciiPart.String(), annotation(offset))
}

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	tableOnly := u.AddBooleanOption("t", "table", false, "Dump only the partition table region", "", nil)
	path := u.AddArgument(1, "image-path", "Path to the raw disk image", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("location of the disk image <image-path> must be provided"))
		os.Exit(1)
	}

	bs, err := sector.Read(*path)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	// Colored margin notes only make sense on a terminal.
	highlight := fmt.Sprint
	if term.IsTerminal(int(os.Stdout.Fd())) {
		highlight = color.New(color.FgHiYellow).Sprint
	}

	start := 0
	if *tableOnly {
		start = consts.MBR_PARTITION_TABLE_OFFSET - consts.MBR_PARTITION_TABLE_OFFSET%bytesPerRow
	}

	fmt.Printf("Boot sector of %s (%d bytes total)\n\n", bs.Path, bs.ImageSize)
	for offset := start; offset < consts.MBR_SECTOR_SIZE; offset += bytesPerRow {
		line := dumpRow(offset, bs.Contents[offset:offset+bytesPerRow])
		if annotation(offset) != "" {
			line = highlight(line)
		}
		fmt.Println(line)
	}

	t, err := table.Decode(bs.Contents[:])
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	fmt.Printf("\nBoot signature: %02X %02X (valid: %t)\n",
		bs.Contents[consts.MBR_BOOT_SIGNATURE_OFFSET],
		bs.Contents[consts.MBR_BOOT_SIGNATURE_OFFSET+1],
		t.SignatureValid)
}
