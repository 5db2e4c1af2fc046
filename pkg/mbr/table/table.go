package table

import (
	"fmt"

	"github.com/bgrewell/mbr-kit/pkg/consts"
)

// ErrInvalidBufferLength is returned by Decode when the buffer is not
// exactly one sector. Reaching it means the caller bypassed the sector
// reader's contract; it is a wiring bug, not an image problem.
var ErrInvalidBufferLength = fmt.Errorf("buffer must be exactly %d bytes", consts.MBR_SECTOR_SIZE)

// PartitionTable is the decoded partition table of one boot sector. It is
// constructed once by Decode and read-only afterwards; the summary queries
// (RealPartitions, SecondRealPartition, LargestPartition) are derived views
// over it, not separate state.
type PartitionTable struct {
	// Signature Valid records whether bytes 510-511 held the 0x55 0xAA boot
	// signature. The flag is advisory: damaged and non-standard forensic
	// images are expected inputs, so an invalid signature never aborts the
	// decode.
	SignatureValid bool `json:"signature_valid"`
	// Entries holds the four partition slots in table order. Empty slots are
	// kept in place so TableIndex always matches the on-disk position.
	Entries [consts.MBR_PARTITION_ENTRY_COUNT]PartitionEntry `json:"entries"`
}

// Decode parses a 512-byte boot sector into a PartitionTable. The buffer
// length is the only hard precondition; all four slots are decoded even when
// the boot signature is missing or wrong.
func Decode(buffer []byte) (*PartitionTable, error) {
	if len(buffer) != consts.MBR_SECTOR_SIZE {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBufferLength, len(buffer))
	}

	t := &PartitionTable{
		SignatureValid: buffer[consts.MBR_BOOT_SIGNATURE_OFFSET] == consts.MBR_BOOT_SIGNATURE_BYTE_1 &&
			buffer[consts.MBR_BOOT_SIGNATURE_OFFSET+1] == consts.MBR_BOOT_SIGNATURE_BYTE_2,
	}

	for i := 0; i < consts.MBR_PARTITION_ENTRY_COUNT; i++ {
		offset := consts.MBR_PARTITION_TABLE_OFFSET + i*consts.MBR_PARTITION_ENTRY_SIZE
		t.Entries[i].TableIndex = i
		t.Entries[i].Unmarshal([consts.MBR_PARTITION_ENTRY_SIZE]byte(buffer[offset : offset+consts.MBR_PARTITION_ENTRY_SIZE]))
	}

	return t, nil
}

// RealPartitions returns the non-empty entries in table order. Position in
// this slice, not TableIndex, is what defines the "first" and "second" real
// partition.
func (t *PartitionTable) RealPartitions() []*PartitionEntry {
	real := make([]*PartitionEntry, 0, consts.MBR_PARTITION_ENTRY_COUNT)
	for i := range t.Entries {
		if !t.Entries[i].IsEmpty() {
			real = append(real, &t.Entries[i])
		}
	}
	return real
}

// SecondRealPartition returns the second non-empty entry in table order.
// Having fewer than two real partitions is a normal outcome for simple
// images, reported as (nil, false) rather than an error.
func (t *PartitionTable) SecondRealPartition() (*PartitionEntry, bool) {
	real := t.RealPartitions()
	if len(real) < 2 {
		return nil, false
	}
	return real[1], true
}

// LargestPartition returns the real partition with the greatest size in
// bytes. Ties go to the entry encountered first in table order. Returns
// (nil, false) when the table has no real partitions.
func (t *PartitionTable) LargestPartition() (*PartitionEntry, bool) {
	var largest *PartitionEntry
	for _, e := range t.RealPartitions() {
		if largest == nil || e.SizeBytes() > largest.SizeBytes() {
			largest = e
		}
	}
	if largest == nil {
		return nil, false
	}
	return largest, true
}
