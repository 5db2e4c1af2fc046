package table

import (
	"encoding/binary"

	"github.com/bgrewell/mbr-kit/pkg/consts"
	"github.com/bgrewell/mbr-kit/pkg/mbr/parttype"
)

// PartitionEntry is one decoded 16-byte slot of the MBR partition table.
// The raw on-disk layout of a slot is:
//
//	| 0       | status byte (0x80 = bootable/active)
//	| 1 - 3   | CHS address of first sector (not decoded)
//	| 4       | partition type code
//	| 5 - 7   | CHS address of last sector (not decoded)
//	| 8 - 11  | LBA of first sector, little-endian uint32
//	| 12 - 15 | number of sectors, little-endian uint32
//
// Fields are fixed once decoded; everything derived (emptiness, sizes) is
// computed from them on demand rather than stored alongside.
type PartitionEntry struct {
	// Table Index is the slot position within the MBR, 0 through 3.
	TableIndex int `json:"table_index"`
	// Status is the raw status byte at offset 0 of the slot.
	Status uint8 `json:"status"`
	// Type is the partition type code at offset 4 of the slot.
	Type parttype.PartitionType `json:"type_code"`
	// Start LBA is the logical block address of the partition's first sector.
	//  | Encoding: little-endian uint32
	StartLBA uint32 `json:"start_lba"`
	// Sector Count is the number of 512-byte sectors in the partition.
	//  | Encoding: little-endian uint32
	SectorCount uint32 `json:"sector_count"`
}

// Unmarshal decodes one raw partition table slot. The CHS fields are read
// past and discarded; LBA addressing is authoritative for every image this
// library targets.
func (e *PartitionEntry) Unmarshal(data [consts.MBR_PARTITION_ENTRY_SIZE]byte) {
	e.Status = data[consts.MBR_ENTRY_STATUS_OFFSET]
	e.Type = parttype.PartitionType(data[consts.MBR_ENTRY_TYPE_OFFSET])
	e.StartLBA = binary.LittleEndian.Uint32(data[consts.MBR_ENTRY_START_LBA_OFFSET:])
	e.SectorCount = binary.LittleEndian.Uint32(data[consts.MBR_ENTRY_SECTOR_COUNT_OFFSET:])
}

// Marshal re-encodes the entry into its on-disk slot layout. The CHS bytes,
// never having been decoded, are written as zero.
func (e *PartitionEntry) Marshal() ([consts.MBR_PARTITION_ENTRY_SIZE]byte, error) {
	var buf [consts.MBR_PARTITION_ENTRY_SIZE]byte
	buf[consts.MBR_ENTRY_STATUS_OFFSET] = e.Status
	buf[consts.MBR_ENTRY_TYPE_OFFSET] = uint8(e.Type)
	binary.LittleEndian.PutUint32(buf[consts.MBR_ENTRY_START_LBA_OFFSET:], e.StartLBA)
	binary.LittleEndian.PutUint32(buf[consts.MBR_ENTRY_SECTOR_COUNT_OFFSET:], e.SectorCount)
	return buf, nil
}

// Bootable reports whether the status byte marks the partition active.
func (e *PartitionEntry) Bootable() bool {
	return e.Status == consts.MBR_STATUS_BOOTABLE
}

// IsEmpty reports whether the slot holds no partition. A zero type code or a
// zero sector count both mark the slot unused (or corrupt enough to treat as
// unused).
func (e *PartitionEntry) IsEmpty() bool {
	return e.Type == parttype.TYPE_EMPTY || e.SectorCount == 0
}

// SizeBytes returns the partition size in bytes, zero for empty slots. The
// arithmetic is unsigned throughout; a full 32-bit sector count stays well
// inside uint64.
func (e *PartitionEntry) SizeBytes() uint64 {
	if e.IsEmpty() {
		return 0
	}
	return uint64(e.SectorCount) * consts.MBR_SECTOR_SIZE
}

// SizeGiB returns the partition size in GiB.
func (e *PartitionEntry) SizeGiB() float64 {
	return float64(e.SizeBytes()) / (1 << 30)
}

// TypeName returns the classification label for the entry's type code.
func (e *PartitionEntry) TypeName() string {
	return e.Type.String()
}
