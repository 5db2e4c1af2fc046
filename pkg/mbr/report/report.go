package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bgrewell/mbr-kit/pkg/mbr/sector"
	"github.com/bgrewell/mbr-kit/pkg/mbr/table"
)

// Render produces the human-readable analysis of a decoded partition table:
// the raw entry dump, the per-slot breakdown, the second-real-partition
// highlight and the summary. An image with zero real partitions still
// renders a full report; that is a finding, not a failure.
func Render(bs *sector.BootSector, t *table.PartitionTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Opened image: %s (%d bytes)\n\n", bs.Path, bs.ImageSize)

	b.WriteString("--- MBR Partition Entries (Raw) ---\n")
	for i := range t.Entries {
		e := &t.Entries[i]
		fmt.Fprintf(&b, "Entry %d: type=0x%02X, lba=%d, sectors=%d\n", e.TableIndex, uint8(e.Type), e.StartLBA, e.SectorCount)
	}
	b.WriteString("-----------------------------------\n\n")

	if !t.SignatureValid {
		b.WriteString("Warning: boot signature 0x55AA missing or invalid; decoding anyway\n\n")
	}

	b.WriteString("=== Partition Table Analysis ===\n")
	for i := range t.Entries {
		e := &t.Entries[i]
		fmt.Fprintf(&b, "\nPartition #%d\n", i+1)
		fmt.Fprintf(&b, "  Type        : 0x%02X\n", uint8(e.Type))
		fmt.Fprintf(&b, "  Start LBA   : %d\n", e.StartLBA)
		fmt.Fprintf(&b, "  Sectors     : %d\n", e.SectorCount)
		if e.IsEmpty() {
			b.WriteString("  Status      : Empty / Corrupt\n")
			b.WriteString("  Size (GiB)  : 0.00\n")
			continue
		}
		status := "Normal"
		if e.Bootable() {
			status = "Bootable"
		}
		fmt.Fprintf(&b, "  Status      : %s\n", status)
		fmt.Fprintf(&b, "  Type Name   : %s\n", e.TypeName())
		fmt.Fprintf(&b, "  Size (GiB)  : %.2f\n", e.SizeGiB())
	}

	b.WriteString("\n=== Second Real Partition ===\n")
	if second, ok := t.SecondRealPartition(); ok {
		fmt.Fprintf(&b, "  MBR Index   : %d\n", second.TableIndex)
		fmt.Fprintf(&b, "  Type        : %s\n", second.TypeName())
		fmt.Fprintf(&b, "  Start LBA   : %d\n", second.StartLBA)
		fmt.Fprintf(&b, "  Size (GiB)  : %.2f\n", second.SizeGiB())
	} else {
		b.WriteString("  Fewer than two real partitions found.\n")
	}

	b.WriteString("\n=== Summary ===\n")
	real := t.RealPartitions()
	fmt.Fprintf(&b, "  Real partitions: %d\n", len(real))
	if largest, ok := t.LargestPartition(); ok {
		fmt.Fprintf(&b, "  Largest        : %s at index %d (%.2f GiB)\n",
			largest.TypeName(), largest.TableIndex, largest.SizeGiB())
	} else {
		b.WriteString("  No real partitions found.\n")
	}

	return b.String()
}

// Write renders the analysis to w.
func Write(w io.Writer, bs *sector.BootSector, t *table.PartitionTable) error {
	_, err := io.WriteString(w, Render(bs, t))
	return err
}
