package cfs

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Superblock is the filesystem-wide metadata stored in block 0. It is the
// single source of truth for allocation state and is rewritten as a whole
// block after every allocation-affecting change.
type Superblock struct {
	DirectoryBlocks uint16
	TotalBlocks     uint32
	NextFree        uint32
	FileCount       uint32
}

// DataStart returns the first block of the data region.
func (sb Superblock) DataStart() uint32 {
	return directoryStart + uint32(sb.DirectoryBlocks)
}

// FreeBlocks returns how many blocks remain past the allocation cursor.
func (sb Superblock) FreeBlocks() uint32 {
	if sb.TotalBlocks < sb.NextFree {
		return 0
	}
	return sb.TotalBlocks - sb.NextFree
}

func decodeSuperblock(raw []byte) (Superblock, error) {
	var sb Superblock

	if !bytes.Equal(raw[0:4], fsMagic[:]) {
		return sb, fmt.Errorf("%w: bad magic", ErrBadSuperblock)
	}
	if version := binary.LittleEndian.Uint16(raw[4:6]); version != fsVersion {
		return sb, fmt.Errorf("%w: unsupported version %d", ErrBadSuperblock, version)
	}

	sb.DirectoryBlocks = binary.LittleEndian.Uint16(raw[6:8])
	sb.TotalBlocks = binary.LittleEndian.Uint32(raw[8:12])
	sb.NextFree = binary.LittleEndian.Uint32(raw[12:16])
	sb.FileCount = binary.LittleEndian.Uint32(raw[16:20])

	if sb.DirectoryBlocks == 0 {
		return Superblock{}, fmt.Errorf("%w: directory size is zero", ErrBadSuperblock)
	}
	if sb.TotalBlocks <= sb.DataStart() {
		return Superblock{}, fmt.Errorf("%w: total size %d blocks does not fit metadata", ErrBadSuperblock, sb.TotalBlocks)
	}
	if sb.NextFree < sb.DataStart() || sb.NextFree > sb.TotalBlocks {
		return Superblock{}, fmt.Errorf("%w: allocation cursor %d out of range", ErrBadSuperblock, sb.NextFree)
	}

	return sb, nil
}

func encodeSuperblock(sb Superblock) []byte {
	raw := make([]byte, BlockSize)
	copy(raw[0:4], fsMagic[:])
	binary.LittleEndian.PutUint16(raw[4:6], fsVersion)
	binary.LittleEndian.PutUint16(raw[6:8], sb.DirectoryBlocks)
	binary.LittleEndian.PutUint32(raw[8:12], sb.TotalBlocks)
	binary.LittleEndian.PutUint32(raw[12:16], sb.NextFree)
	binary.LittleEndian.PutUint32(raw[16:20], sb.FileCount)
	return raw
}
