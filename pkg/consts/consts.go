package consts

const (
	// MBR boot sector size. Only the first sector of an image is ever read.
	MBR_SECTOR_SIZE = 512

	// Byte offset of the partition table within the boot sector.
	MBR_PARTITION_TABLE_OFFSET = 446

	// Size of a single partition table entry.
	MBR_PARTITION_ENTRY_SIZE = 16

	// Number of primary partition slots in a classic MBR.
	MBR_PARTITION_ENTRY_COUNT = 4

	// Byte offset of the two-byte boot signature.
	MBR_BOOT_SIGNATURE_OFFSET = 510

	// Boot signature bytes expected at offsets 510 and 511.
	MBR_BOOT_SIGNATURE_BYTE_1 = 0x55
	MBR_BOOT_SIGNATURE_BYTE_2 = 0xAA

	// Status byte value marking a partition as bootable (active).
	MBR_STATUS_BOOTABLE = 0x80

	// Offsets of the decoded fields within a 16-byte partition entry. The
	// three-byte CHS address fields at offsets 1-3 and 5-7 are obsolete on
	// LBA-addressed media and are intentionally not decoded.
	MBR_ENTRY_STATUS_OFFSET       = 0
	MBR_ENTRY_TYPE_OFFSET         = 4
	MBR_ENTRY_START_LBA_OFFSET    = 8
	MBR_ENTRY_SECTOR_COUNT_OFFSET = 12
)
