package cfs

import "fmt"

// Image is a mounted CFS1 filesystem. It caches the superblock in memory
// and assumes exclusive single-writer access to the device for its
// lifetime; nothing else may mutate the image while it is open.
type Image struct {
	dev Device
	sb  Superblock
}

// Open reads and validates the superblock at block 0.
// It fails with ErrBadSuperblock if the image is not a CFS1 filesystem;
// callers that want to initialize a fresh image must call Format
// explicitly.
func Open(dev Device) (*Image, error) {
	buf := make([]byte, BlockSize)
	if err := dev.ReadBlock(superblockBlock, buf); err != nil {
		return nil, err
	}
	sb, err := decodeSuperblock(buf)
	if err != nil {
		return nil, err
	}
	if sb.TotalBlocks > dev.Blocks() {
		return nil, fmt.Errorf("%w: superblock claims %d blocks, device has %d",
			ErrBadSuperblock, sb.TotalBlocks, dev.Blocks())
	}
	return &Image{dev: dev, sb: sb}, nil
}

// Superblock returns a copy of the cached superblock.
func (img *Image) Superblock() Superblock { return img.sb }

func (img *Image) writeSuperblock() error {
	return img.dev.WriteBlock(superblockBlock, encodeSuperblock(img.sb))
}

// entryLoc records where a used directory entry lives on disk.
type entryLoc struct {
	block uint32
	slot  int
	entry entry
}

// slotLoc records a free directory slot.
type slotLoc struct {
	block uint32
	slot  int
}

// scanDirectory walks the directory region once, in block order and slot
// order, and returns the first entry whose name matches and the first free
// slot. Both results are independent: the free slot is remembered even when
// a match ends the scan early, so one pass serves both insert and update.
func (img *Image) scanDirectory(name []byte) (match *entryLoc, free *slotLoc, err error) {
	buf := make([]byte, BlockSize)

	for i := uint32(0); i < uint32(img.sb.DirectoryBlocks); i++ {
		block := directoryStart + i
		if err := img.dev.ReadBlock(block, buf); err != nil {
			return nil, nil, err
		}

		for slot := 0; slot < entriesPerBlock; slot++ {
			e := decodeEntry(buf[slot*entrySize : (slot+1)*entrySize])
			if e.used {
				if e.nameEquals(name) {
					// Names are unique; the first hit is authoritative.
					return &entryLoc{block: block, slot: slot, entry: e}, free, nil
				}
			} else if free == nil {
				free = &slotLoc{block: block, slot: slot}
			}
		}
	}

	return nil, free, nil
}

// writeEntry rewrites a single directory slot, leaving the other slots in
// the same block untouched.
func (img *Image) writeEntry(block uint32, slot int, e entry) error {
	buf := make([]byte, BlockSize)
	if err := img.dev.ReadBlock(block, buf); err != nil {
		return err
	}
	copy(buf[slot*entrySize:(slot+1)*entrySize], encodeEntry(e))
	return img.dev.WriteBlock(block, buf)
}

// FileInfo describes one stored file.
type FileInfo struct {
	Name            string
	Size            uint32
	StartBlock      uint32
	AllocatedBlocks uint32
}

// List returns every used directory entry in scan order.
func (img *Image) List() ([]FileInfo, error) {
	var files []FileInfo
	buf := make([]byte, BlockSize)

	for i := uint32(0); i < uint32(img.sb.DirectoryBlocks); i++ {
		if err := img.dev.ReadBlock(directoryStart+i, buf); err != nil {
			return nil, err
		}
		for slot := 0; slot < entriesPerBlock; slot++ {
			e := decodeEntry(buf[slot*entrySize : (slot+1)*entrySize])
			if !e.used {
				continue
			}
			files = append(files, FileInfo{
				Name:            e.Name(),
				Size:            e.sizeBytes,
				StartBlock:      e.startBlock,
				AllocatedBlocks: e.allocatedBlocks,
			})
		}
	}

	return files, nil
}

// ReadFile returns the content of the named file, truncated to its logical
// size. It fails with ErrNotFound if no entry matches.
func (img *Image) ReadFile(name string) ([]byte, error) {
	nameBytes, err := validateName(name)
	if err != nil {
		return nil, err
	}

	match, _, err := img.scanDirectory(nameBytes)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	size := int(match.entry.sizeBytes)
	if size == 0 {
		return []byte{}, nil
	}
	if match.entry.allocatedBlocks == 0 {
		return nil, fmt.Errorf("%w: %s claims %d bytes but has no extent", ErrCorrupt, name, size)
	}

	out := make([]byte, 0, size)
	buf := make([]byte, BlockSize)
	remaining := size

	for i := uint32(0); remaining > 0 && i < match.entry.allocatedBlocks; i++ {
		if err := img.dev.ReadBlock(match.entry.startBlock+i, buf); err != nil {
			return nil, err
		}
		n := min(remaining, BlockSize)
		out = append(out, buf[:n]...)
		remaining -= n
	}

	return out, nil
}

// Stats summarizes the geometry and allocation state of an image.
type Stats struct {
	TotalBlocks     uint32
	DirectoryBlocks uint16
	DirectorySlots  int
	DataStart       uint32
	NextFree        uint32
	FileCount       uint32
	FreeBlocks      uint32
}

// Info returns the current geometry and allocation state.
func (img *Image) Info() Stats {
	return Stats{
		TotalBlocks:     img.sb.TotalBlocks,
		DirectoryBlocks: img.sb.DirectoryBlocks,
		DirectorySlots:  int(img.sb.DirectoryBlocks) * entriesPerBlock,
		DataStart:       img.sb.DataStart(),
		NextFree:        img.sb.NextFree,
		FileCount:       img.sb.FileCount,
		FreeBlocks:      img.sb.FreeBlocks(),
	}
}
