package report

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bgrewell/mbr-kit/pkg/consts"
	"github.com/bgrewell/mbr-kit/pkg/mbr/sector"
	"github.com/bgrewell/mbr-kit/pkg/mbr/table"
	"github.com/stretchr/testify/require"
)

func buildBootSector(t *testing.T, signed bool, entries ...[4]uint32) (*sector.BootSector, *table.PartitionTable) {
	t.Helper()
	buf := make([]byte, consts.MBR_SECTOR_SIZE)
	if signed {
		buf[consts.MBR_BOOT_SIGNATURE_OFFSET] = consts.MBR_BOOT_SIGNATURE_BYTE_1
		buf[consts.MBR_BOOT_SIGNATURE_OFFSET+1] = consts.MBR_BOOT_SIGNATURE_BYTE_2
	}
	for i, e := range entries {
		off := consts.MBR_PARTITION_TABLE_OFFSET + i*consts.MBR_PARTITION_ENTRY_SIZE
		buf[off] = uint8(e[0])         // status
		buf[off+4] = uint8(e[1])       // type
		binary.LittleEndian.PutUint32(buf[off+8:], e[2])  // start LBA
		binary.LittleEndian.PutUint32(buf[off+12:], e[3]) // sectors
	}

	bs := &sector.BootSector{Path: "/evidence/disk.dd", ImageSize: 64 * 1024 * 1024}
	copy(bs.Contents[:], buf)

	tbl, err := table.Decode(buf)
	require.NoError(t, err)
	return bs, tbl
}

func TestRender(t *testing.T) {
	t.Run("full report for a two partition image", func(t *testing.T) {
		bs, tbl := buildBootSector(t, true,
			[4]uint32{0x80, 0x07, 2048, 1024000},
			[4]uint32{0x00, 0x83, 1026048, 204800},
		)

		out := Render(bs, tbl)
		require.Contains(t, out, "Opened image: /evidence/disk.dd (67108864 bytes)")
		require.Contains(t, out, "Entry 0: type=0x07, lba=2048, sectors=1024000")
		require.Contains(t, out, "Entry 3: type=0x00, lba=0, sectors=0")
		require.Contains(t, out, "Partition #1")
		require.Contains(t, out, "Status      : Bootable")
		require.Contains(t, out, "Type Name   : NTFS/exFAT/HPFS")
		require.Contains(t, out, "Status      : Empty / Corrupt")
		require.Contains(t, out, "=== Second Real Partition ===")
		require.Contains(t, out, "MBR Index   : 1")
		require.Contains(t, out, "Type        : Linux")
		require.Contains(t, out, "Real partitions: 2")
		require.Contains(t, out, "Largest        : NTFS/exFAT/HPFS at index 0 (0.49 GiB)")
		require.NotContains(t, out, "Warning: boot signature")
	})

	t.Run("empty table is a reportable outcome", func(t *testing.T) {
		bs, tbl := buildBootSector(t, true)

		out := Render(bs, tbl)
		require.Contains(t, out, "Real partitions: 0")
		require.Contains(t, out, "No real partitions found.")
		require.Contains(t, out, "Fewer than two real partitions found.")
	})

	t.Run("invalid signature renders an advisory, not a failure", func(t *testing.T) {
		bs, tbl := buildBootSector(t, false,
			[4]uint32{0x00, 0xEE, 1, 8388607},
		)

		out := Render(bs, tbl)
		require.Contains(t, out, "Warning: boot signature 0x55AA missing or invalid")
		require.Contains(t, out, "Type Name   : GPT Protective MBR")
		require.Contains(t, out, "Real partitions: 1")
	})

	t.Run("write copies the rendering to the writer", func(t *testing.T) {
		bs, tbl := buildBootSector(t, true)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, bs, tbl))
		require.Equal(t, Render(bs, tbl), buf.String())
	})
}
