package mbr_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	mbr "github.com/bgrewell/mbr-kit"
	"github.com/bgrewell/mbr-kit/pkg/consts"
	"github.com/bgrewell/mbr-kit/pkg/logging"
	"github.com/bgrewell/mbr-kit/pkg/mbr/sector"
	"github.com/bgrewell/mbr-kit/pkg/mbr/table"
	"github.com/bgrewell/mbr-kit/pkg/options"
	"github.com/stretchr/testify/require"
)

// writeTestImage creates a 1 MiB image whose boot sector holds a valid
// signature and a single bootable Linux partition.
func writeTestImage(t *testing.T) string {
	t.Helper()
	img := make([]byte, 1024*1024)
	img[consts.MBR_BOOT_SIGNATURE_OFFSET] = consts.MBR_BOOT_SIGNATURE_BYTE_1
	img[consts.MBR_BOOT_SIGNATURE_OFFSET+1] = consts.MBR_BOOT_SIGNATURE_BYTE_2

	off := consts.MBR_PARTITION_TABLE_OFFSET
	img[off] = 0x80
	img[off+4] = 0x83
	binary.LittleEndian.PutUint32(img[off+8:], 2048)
	binary.LittleEndian.PutUint32(img[off+12:], 204800)

	path := filepath.Join(t.TempDir(), "disk.dd")
	require.NoError(t, os.WriteFile(path, img, 0o644))
	return path
}

func TestAnalyze(t *testing.T) {
	t.Run("decodes a simple linux image", func(t *testing.T) {
		analysis, err := mbr.Analyze(writeTestImage(t))
		require.NoError(t, err)

		tbl := analysis.Table()
		require.True(t, tbl.SignatureValid)
		require.Len(t, tbl.RealPartitions(), 1)

		largest, ok := tbl.LargestPartition()
		require.True(t, ok)
		require.Equal(t, 0, largest.TableIndex)
		require.True(t, largest.Bootable())
		require.Equal(t, "Linux", largest.TypeName())

		_, ok = tbl.SecondRealPartition()
		require.False(t, ok)

		require.Equal(t, int64(1024*1024), analysis.BootSector().ImageSize)
		require.Contains(t, analysis.String(), "Type Name   : Linux")
	})

	t.Run("missing image", func(t *testing.T) {
		_, err := mbr.Analyze(filepath.Join(t.TempDir(), "missing.dd"))
		require.Error(t, err)
		require.ErrorIs(t, err, sector.ErrImageNotFound)
	})

	t.Run("image too small", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.dd")
		require.NoError(t, os.WriteFile(path, make([]byte, 511), 0o644))

		_, err := mbr.Analyze(path)
		require.Error(t, err)
		require.ErrorIs(t, err, sector.ErrImageTooSmall)
	})

	t.Run("logs through the configured logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := logging.NewSimpleLogger(&buf, logging.LEVEL_TRACE, false)

		_, err := mbr.Analyze(writeTestImage(t), options.WithLogger(log))
		require.NoError(t, err)
		require.Contains(t, buf.String(), "read boot sector")
		require.Contains(t, buf.String(), "decoded partition table")
	})

	t.Run("decode contract error is not reachable through analyze", func(t *testing.T) {
		// Analyze always hands Decode a full sector, so the only way to see
		// ErrInvalidBufferLength is to call Decode directly.
		_, err := table.Decode(make([]byte, 100))
		require.ErrorIs(t, err, table.ErrInvalidBufferLength)
	})
}
