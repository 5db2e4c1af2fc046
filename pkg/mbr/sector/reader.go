package sector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/mbr-kit/pkg/consts"
)

var (
	// ErrImageNotFound indicates the location does not resolve to a readable
	// regular file.
	ErrImageNotFound = errors.New("image not found")
	// ErrImageTooSmall indicates the image holds fewer bytes than one boot
	// sector.
	ErrImageTooSmall = errors.New("image smaller than one sector")
)

// BootSector is the raw first sector of a disk image plus the image metadata
// used for reporting. Contents are never modified after Read returns.
type BootSector struct {
	// Path the image was read from.
	Path string `json:"path"`
	// Image Size is the total size of the image file in bytes. It is reported
	// but plays no part in decoding; only the first sector is ever consulted.
	ImageSize int64 `json:"image_size"`
	// Contents of the boot sector.
	Contents [consts.MBR_SECTOR_SIZE]byte
}

// Read opens the disk image at location and returns its first sector. The
// file handle only lives for the duration of the call and is closed whether
// or not the read succeeds. Fails with ErrImageNotFound when location is not
// a readable regular file and ErrImageTooSmall when fewer than 512 bytes are
// available; no partial sector is ever returned.
func Read(location string) (*BootSector, error) {
	fi, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, location)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrImageNotFound, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, location)
	}
	defer f.Close()

	bs := &BootSector{
		Path:      location,
		ImageSize: fi.Size(),
	}
	if _, err := io.ReadFull(f, bs.Contents[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s is %d bytes, need %d",
				ErrImageTooSmall, location, fi.Size(), consts.MBR_SECTOR_SIZE)
		}
		return nil, fmt.Errorf("failed to read boot sector of %s: %w", location, err)
	}

	return bs, nil
}
