package cfs

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuperblockRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sb   Superblock
	}{
		{
			name: "freshly formatted",
			sb:   Superblock{DirectoryBlocks: 16, TotalBlocks: 64, NextFree: 17, FileCount: 0},
		},
		{
			name: "partially filled",
			sb:   Superblock{DirectoryBlocks: 16, TotalBlocks: 2048, NextFree: 900, FileCount: 12},
		},
		{
			name: "cursor at end",
			sb:   Superblock{DirectoryBlocks: 1, TotalBlocks: 8, NextFree: 8, FileCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := encodeSuperblock(tt.sb)
			require.Len(t, raw, BlockSize)

			decoded, err := decodeSuperblock(raw)
			require.NoError(t, err)
			require.Equal(t, tt.sb, decoded)

			// Encoding is deterministic.
			require.Equal(t, raw, encodeSuperblock(decoded))
		})
	}
}

func TestDecodeSuperblockRejectsBadImages(t *testing.T) {
	valid := func() []byte {
		return encodeSuperblock(Superblock{DirectoryBlocks: 16, TotalBlocks: 64, NextFree: 17, FileCount: 2})
	}

	tests := []struct {
		name   string
		tamper func(raw []byte)
	}{
		{
			name:   "bad magic",
			tamper: func(raw []byte) { copy(raw[0:4], "EXT4") },
		},
		{
			name:   "unsupported version",
			tamper: func(raw []byte) { binary.LittleEndian.PutUint16(raw[4:6], 2) },
		},
		{
			name:   "zero directory size",
			tamper: func(raw []byte) { binary.LittleEndian.PutUint16(raw[6:8], 0) },
		},
		{
			name:   "total size inside metadata",
			tamper: func(raw []byte) { binary.LittleEndian.PutUint32(raw[8:12], 17) },
		},
		{
			name:   "cursor inside directory",
			tamper: func(raw []byte) { binary.LittleEndian.PutUint32(raw[12:16], 5) },
		},
		{
			name:   "cursor past image end",
			tamper: func(raw []byte) { binary.LittleEndian.PutUint32(raw[12:16], 65) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := valid()
			tt.tamper(raw)
			_, err := decodeSuperblock(raw)
			require.ErrorIs(t, err, ErrBadSuperblock)
		})
	}
}
