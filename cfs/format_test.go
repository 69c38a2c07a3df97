package cfs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatGeometry(t *testing.T) {
	dev := NewMemDevice(64)

	img, err := Format(dev)
	require.NoError(t, err)

	sb := img.Superblock()
	require.Equal(t, uint16(16), sb.DirectoryBlocks)
	require.Equal(t, uint32(64), sb.TotalBlocks)
	require.Equal(t, sb.DataStart(), sb.NextFree)
	require.Equal(t, uint32(0), sb.FileCount)

	// A formatted image must decode immediately.
	reopened, err := Open(dev)
	require.NoError(t, err)
	require.Equal(t, sb, reopened.Superblock())
}

func TestFormatClampsDirectoryToAvailableSpace(t *testing.T) {
	// 10 blocks: superblock + at most 8 directory blocks + 1 data block.
	dev := NewMemDevice(10)

	img, err := Format(dev)
	require.NoError(t, err)

	sb := img.Superblock()
	require.Equal(t, uint16(8), sb.DirectoryBlocks)
	require.Equal(t, uint32(9), sb.NextFree)
	require.Equal(t, uint32(1), sb.FreeBlocks())
}

func TestFormatRejectsTinyImages(t *testing.T) {
	for _, blocks := range []uint32{0, 1, 2} {
		_, err := Format(NewMemDevice(blocks))
		require.ErrorIs(t, err, ErrNoSpace, "blocks=%d", blocks)
	}
}

func TestFormatZeroesDirectory(t *testing.T) {
	dev := NewMemDevice(32)

	// Scribble over the directory region first.
	junk := make([]byte, BlockSize)
	for i := range junk {
		junk[i] = 0xFF
	}
	for i := uint32(1); i < 17; i++ {
		require.NoError(t, dev.WriteBlock(i, junk))
	}

	img, err := Format(dev)
	require.NoError(t, err)

	files, err := img.List()
	require.NoError(t, err)
	require.Empty(t, files)
}
