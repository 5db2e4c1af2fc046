package mbr

import (
	"github.com/bgrewell/mbr-kit/pkg/logging"
	"github.com/bgrewell/mbr-kit/pkg/mbr/report"
	"github.com/bgrewell/mbr-kit/pkg/mbr/sector"
	"github.com/bgrewell/mbr-kit/pkg/mbr/table"
	"github.com/bgrewell/mbr-kit/pkg/options"
	"github.com/go-logr/logr"
)

// Analyze reads the boot sector of the disk image at location and decodes
// its MBR partition table. Exactly one sector is read regardless of image
// size; the file handle is released before Analyze returns. An invalid boot
// signature does not fail the analysis, it is surfaced through the decoded
// table's SignatureValid flag.
func Analyze(location string, opts ...options.Option) (*Analysis, error) {
	// Set default options
	o := options.Options{
		Logger: logr.Discard(),
	}

	// Apply options
	for _, opt := range opts {
		opt(&o)
	}

	log := logging.NewLogger(o.Logger)

	bs, err := sector.Read(location)
	if err != nil {
		log.Error(err, "failed to read boot sector", "image", location)
		return nil, err
	}
	log.Debug("read boot sector", "image", bs.Path, "image_size", bs.ImageSize)

	t, err := table.Decode(bs.Contents[:])
	if err != nil {
		log.Error(err, "failed to decode partition table", "image", location)
		return nil, err
	}
	if !t.SignatureValid {
		log.Info("boot signature missing or invalid, continuing", "image", location)
	}
	log.Debug("decoded partition table",
		"signature_valid", t.SignatureValid,
		"real_partitions", len(t.RealPartitions()))

	return &Analysis{bootSector: bs, table: t}, nil
}

// Analysis is the decoded result for one disk image. It is read-only; the
// partition summaries are derived views over the table it holds.
type Analysis struct {
	bootSector *sector.BootSector
	table      *table.PartitionTable
}

// BootSector returns the raw sector and image metadata the analysis was
// built from.
func (a *Analysis) BootSector() *sector.BootSector {
	return a.bootSector
}

// Table returns the decoded partition table.
func (a *Analysis) Table() *table.PartitionTable {
	return a.table
}

// String renders the full human-readable report.
func (a *Analysis) String() string {
	return report.Render(a.bootSector, a.table)
}
