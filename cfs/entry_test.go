package cfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryRoundTrip(t *testing.T) {
	e := newEntry([]byte("kernel.elf"), 17, 31337, 62)
	raw := encodeEntry(e)
	require.Len(t, raw, entrySize)

	decoded := decodeEntry(raw)
	require.Equal(t, e, decoded)
	require.Equal(t, "kernel.elf", decoded.Name())
}

func TestEncodeEntryZerosPadding(t *testing.T) {
	e := newEntry([]byte("a"), 20, 1, 1)
	raw := encodeEntry(e)

	// Everything past the one-byte name must be zero.
	for i := 17; i < entrySize; i++ {
		require.Zerof(t, raw[i], "byte %d not zeroed", i)
	}
}

func TestDecodeEntryToleratesGarbageInFreeSlots(t *testing.T) {
	raw := make([]byte, entrySize)
	for i := range raw {
		raw[i] = 0xA5
	}
	raw[0] = 0xFE // every bit set except the used flag

	e := decodeEntry(raw)
	require.False(t, e.used)
	require.Equal(t, entry{}, e)
}

func TestDecodeEntryClampsNameLength(t *testing.T) {
	raw := make([]byte, entrySize)
	raw[0] = 0x01
	raw[1] = 0xFF

	e := decodeEntry(raw)
	require.Equal(t, uint8(MaxNameLen), e.nameLen)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "simple name",
			input: "note_v2.txt",
		},
		{
			name:  "all allowed character classes",
			input: "AZaz09._-",
		},
		{
			name:  "maximum length",
			input: strings.Repeat("x", 48),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrNameEmpty,
		},
		{
			name:    "one byte over the limit",
			input:   strings.Repeat("x", 49),
			wantErr: ErrNameTooLong,
		},
		{
			name:    "path traversal",
			input:   "../etc",
			wantErr: ErrNameInvalid,
		},
		{
			name:    "embedded space",
			input:   "hello world",
			wantErr: ErrNameInvalid,
		},
		{
			name:    "non-ascii",
			input:   "dateiä.txt",
			wantErr: ErrNameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateName(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []byte(tt.input), got)
		})
	}
}
