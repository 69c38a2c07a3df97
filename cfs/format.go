package cfs

import "fmt"

// Format initializes CFS1 metadata on an empty or previously unformatted
// device: it writes a fresh superblock and zero-fills the directory region.
// The directory gets defaultDirectoryBlocks blocks, clamped to what the
// device can spare while keeping at least one data block.
//
// Format never runs implicitly. A caller seeing ErrBadSuperblock from Open
// must opt in to formatting; silently reinitializing an image could destroy
// data that a different tool still references.
func Format(dev Device) (*Image, error) {
	total := dev.Blocks()
	if total <= directoryStart+1 {
		return nil, fmt.Errorf("%w: image has only %d blocks", ErrNoSpace, total)
	}

	dirBlocks := uint32(defaultDirectoryBlocks)
	if most := total - directoryStart - 1; dirBlocks > most {
		dirBlocks = most
	}

	img := &Image{
		dev: dev,
		sb: Superblock{
			DirectoryBlocks: uint16(dirBlocks),
			TotalBlocks:     total,
			NextFree:        directoryStart + dirBlocks,
			FileCount:       0,
		},
	}

	if err := img.writeSuperblock(); err != nil {
		return nil, err
	}

	zero := make([]byte, BlockSize)
	for i := uint32(0); i < dirBlocks; i++ {
		if err := dev.WriteBlock(directoryStart+i, zero); err != nil {
			return nil, err
		}
	}

	return img, nil
}
