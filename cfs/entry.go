package cfs

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// entry is one 64-byte directory slot. Unused slots decode to the zero
// value regardless of leftover bytes; only the used flag and, for used
// slots, the name and extent fields are interpreted.
type entry struct {
	used            bool
	nameLen         uint8
	startBlock      uint32
	sizeBytes       uint32
	allocatedBlocks uint32
	name            [MaxNameLen]byte
}

func newEntry(name []byte, start, sizeBytes, allocated uint32) entry {
	e := entry{
		used:            true,
		nameLen:         uint8(len(name)),
		startBlock:      start,
		sizeBytes:       sizeBytes,
		allocatedBlocks: allocated,
	}
	copy(e.name[:], name)
	return e
}

func decodeEntry(raw []byte) entry {
	if raw[0]&0x01 == 0 {
		return entry{}
	}

	var e entry
	e.used = true
	e.nameLen = min(raw[1], MaxNameLen)
	e.startBlock = binary.LittleEndian.Uint32(raw[4:8])
	e.sizeBytes = binary.LittleEndian.Uint32(raw[8:12])
	e.allocatedBlocks = binary.LittleEndian.Uint32(raw[12:16])
	copy(e.name[:], raw[16:16+MaxNameLen])
	return e
}

func encodeEntry(e entry) []byte {
	raw := make([]byte, entrySize)
	if !e.used {
		return raw
	}

	raw[0] = 0x01
	raw[1] = min(e.nameLen, MaxNameLen)
	binary.LittleEndian.PutUint32(raw[4:8], e.startBlock)
	binary.LittleEndian.PutUint32(raw[8:12], e.sizeBytes)
	binary.LittleEndian.PutUint32(raw[12:16], e.allocatedBlocks)
	copy(raw[16:], e.name[:raw[1]])
	return raw
}

func (e entry) nameEquals(name []byte) bool {
	if int(e.nameLen) != len(name) {
		return false
	}
	return bytes.Equal(e.name[:e.nameLen], name)
}

// Name returns the stored file name as a string.
func (e entry) Name() string {
	return string(e.name[:min(e.nameLen, MaxNameLen)])
}

// validateName checks a requested file name against the CFS1 restrictions
// and returns its raw bytes.
func validateName(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrNameTooLong, len(name), MaxNameLen)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		valid := c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			c == '.' || c == '_' || c == '-'
		if !valid {
			return nil, fmt.Errorf("%w: %q", ErrNameInvalid, name)
		}
	}
	return []byte(name), nil
}
