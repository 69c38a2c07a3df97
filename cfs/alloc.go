package cfs

import "fmt"

// blocksForBytes returns how many blocks are needed to hold n bytes.
func blocksForBytes(n int) uint32 {
	return uint32((n + BlockSize - 1) / BlockSize)
}

// allocateExtent advances the bump cursor by the given number of blocks and
// returns the start of the new extent. The cursor is only moved on success,
// so a failed allocation leaves the superblock untouched.
func (img *Image) allocateExtent(blocks uint32) (uint32, error) {
	start := img.sb.NextFree
	end := start + blocks
	if end < start || end > img.sb.TotalBlocks {
		return 0, fmt.Errorf("%w: need %d blocks, %d free", ErrNoSpace, blocks, img.sb.FreeBlocks())
	}
	img.sb.NextFree = end
	return start, nil
}

// writeExtent writes data to consecutive blocks beginning at start, zero
// padding the final block.
func (img *Image) writeExtent(start uint32, data []byte) error {
	blocks := blocksForBytes(len(data))
	buf := make([]byte, BlockSize)

	for i := uint32(0); i < blocks; i++ {
		clear(buf)
		off := int(i) * BlockSize
		n := min(len(data)-off, BlockSize)
		copy(buf, data[off:off+n])
		if err := img.dev.WriteBlock(start+i, buf); err != nil {
			return err
		}
	}

	return nil
}
