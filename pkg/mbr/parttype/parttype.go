package parttype

import "fmt"

// PartitionType is the single-byte partition type code recorded at offset 4
// of an MBR partition entry.
type PartitionType uint8

// Partition type codes this library classifies by name. Any other non-zero
// code is still decoded and reported, just with an "Unknown" label carrying
// the raw value.
const (
	TYPE_EMPTY          PartitionType = 0x00
	TYPE_NTFS           PartitionType = 0x07
	TYPE_FAT32          PartitionType = 0x0B
	TYPE_FAT32_LBA      PartitionType = 0x0C
	TYPE_FAT16_LBA      PartitionType = 0x0E
	TYPE_LINUX_SWAP     PartitionType = 0x82
	TYPE_LINUX          PartitionType = 0x83
	TYPE_GPT_PROTECTIVE PartitionType = 0xEE
)

// typeNames is the single classification table. Per-call maps are not used
// anywhere else in the library; classification goes through String().
var typeNames = map[PartitionType]string{
	TYPE_NTFS:           "NTFS/exFAT/HPFS",
	TYPE_FAT32:          "FAT32",
	TYPE_FAT32_LBA:      "FAT32 LBA",
	TYPE_FAT16_LBA:      "FAT16 LBA",
	TYPE_LINUX_SWAP:     "Linux Swap",
	TYPE_LINUX:          "Linux",
	TYPE_GPT_PROTECTIVE: "GPT Protective MBR",
}

// Known reports whether the type code has a name in the classification
// table. TYPE_EMPTY is not a classifiable type; it marks an unused slot.
func (t PartitionType) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// String returns the human-readable label for the type code. Unrecognized
// non-zero codes embed the raw value so the original byte is never lost in
// a report.
func (t PartitionType) String() string {
	if t == TYPE_EMPTY {
		return "Empty"
	}
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", uint8(t))
}
