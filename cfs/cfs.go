package cfs

// Geometry constants for the CFS1 format. These are fixed by the on-disk
// layout and shared with the codexOS kernel driver.
const (
	// BlockSize is the fixed size of one addressable block.
	BlockSize = 512

	// MaxNameLen is the longest file name a directory entry can hold.
	MaxNameLen = 48

	superblockBlock        = 0
	directoryStart         = 1
	defaultDirectoryBlocks = 16
	entrySize              = 64
	entriesPerBlock        = BlockSize / entrySize
)

// fsMagic identifies block 0 of a CFS1 image.
var fsMagic = [4]byte{'C', 'F', 'S', '1'}

const fsVersion uint16 = 1
