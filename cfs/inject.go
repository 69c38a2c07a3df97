package cfs

// InjectResult describes a completed injection.
type InjectResult struct {
	Name    string
	Bytes   int
	Blocks  uint32
	Start   uint32
	Created bool
}

// Inject creates or updates the named file with the given content.
//
// An existing entry is updated in place. Its extent is reused when the new
// content fits the previously allocated block count; otherwise a fresh
// extent is bump-allocated and the old one is abandoned, never reclaimed.
// A new name consumes the first free directory slot and increments the
// stored file count.
//
// Every mutation path leaves the on-disk superblock consistent with the
// directory and content before Inject returns.
func (img *Image) Inject(name string, data []byte) (InjectResult, error) {
	nameBytes, err := validateName(name)
	if err != nil {
		return InjectResult{}, err
	}
	if len(data) == 0 {
		return InjectResult{}, ErrEmptyInput
	}

	required := blocksForBytes(len(data))

	match, free, err := img.scanDirectory(nameBytes)
	if err != nil {
		return InjectResult{}, err
	}

	if match != nil {
		return img.updateFile(nameBytes, data, required, match)
	}
	if free == nil {
		return InjectResult{}, ErrDirectoryFull
	}
	return img.createFile(nameBytes, data, required, free)
}

func (img *Image) updateFile(name, data []byte, required uint32, loc *entryLoc) (InjectResult, error) {
	start := loc.entry.startBlock
	allocated := loc.entry.allocatedBlocks

	// A start block of 0 would alias the superblock; no valid extent can
	// live there, so treat it as unallocated and place the content fresh.
	moved := required > allocated || start == 0
	if moved {
		var err error
		start, err = img.allocateExtent(required)
		if err != nil {
			return InjectResult{}, err
		}
		allocated = required
	}

	if err := img.writeExtent(start, data); err != nil {
		return InjectResult{}, err
	}
	if err := img.writeEntry(loc.block, loc.slot, newEntry(name, start, uint32(len(data)), allocated)); err != nil {
		return InjectResult{}, err
	}
	if moved {
		if err := img.writeSuperblock(); err != nil {
			return InjectResult{}, err
		}
	}

	return InjectResult{
		Name:   string(name),
		Bytes:  len(data),
		Blocks: required,
		Start:  start,
	}, nil
}

func (img *Image) createFile(name, data []byte, required uint32, free *slotLoc) (InjectResult, error) {
	start, err := img.allocateExtent(required)
	if err != nil {
		return InjectResult{}, err
	}

	if err := img.writeExtent(start, data); err != nil {
		return InjectResult{}, err
	}
	if err := img.writeEntry(free.block, free.slot, newEntry(name, start, uint32(len(data)), required)); err != nil {
		return InjectResult{}, err
	}

	img.sb.FileCount++
	if err := img.writeSuperblock(); err != nil {
		return InjectResult{}, err
	}

	return InjectResult{
		Name:    string(name),
		Bytes:   len(data),
		Blocks:  required,
		Start:   start,
		Created: true,
	}, nil
}
