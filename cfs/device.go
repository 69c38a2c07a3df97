package cfs

import (
	"fmt"
	"os"
)

// Device is a block-addressed view of a backing store. All reads and writes
// operate on whole blocks; callers always supply or receive exactly
// BlockSize bytes.
type Device interface {
	// ReadBlock fills buf with the block at index. buf must be exactly
	// BlockSize bytes long.
	ReadBlock(index uint32, buf []byte) error

	// WriteBlock writes buf to the block at index. buf must be exactly
	// BlockSize bytes long.
	WriteBlock(index uint32, buf []byte) error

	// Blocks returns the device capacity in blocks.
	Blocks() uint32

	Close() error
}

// FileDevice is a Device backed by a flat image file on the host.
type FileDevice struct {
	file   *os.File
	blocks uint32
}

// OpenFileDevice opens the image file at path for reading and writing.
// The file length must be an exact multiple of BlockSize.
func OpenFileDevice(path string) (*FileDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size()%BlockSize != 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrBadImageSize, path, info.Size())
	}
	return &FileDevice{file: f, blocks: uint32(info.Size() / BlockSize)}, nil
}

func (d *FileDevice) ReadBlock(index uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("%w: read buffer is %d bytes, want %d", ErrIO, len(buf), BlockSize)
	}
	if _, err := d.file.ReadAt(buf, int64(index)*BlockSize); err != nil {
		return fmt.Errorf("%w: reading block %d: %v", ErrIO, index, err)
	}
	return nil
}

func (d *FileDevice) WriteBlock(index uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("%w: write buffer is %d bytes, want %d", ErrIO, len(buf), BlockSize)
	}
	if _, err := d.file.WriteAt(buf, int64(index)*BlockSize); err != nil {
		return fmt.Errorf("%w: writing block %d: %v", ErrIO, index, err)
	}
	return nil
}

func (d *FileDevice) Blocks() uint32 { return d.blocks }

func (d *FileDevice) Close() error { return d.file.Close() }

// MemDevice is an in-memory Device. It is used by tests and by callers that
// assemble an image before writing it out in one piece.
type MemDevice struct {
	data []byte
}

// NewMemDevice creates a zero-filled in-memory device with the given
// capacity in blocks.
func NewMemDevice(blocks uint32) *MemDevice {
	return &MemDevice{data: make([]byte, int64(blocks)*BlockSize)}
}

func (d *MemDevice) ReadBlock(index uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("%w: read buffer is %d bytes, want %d", ErrIO, len(buf), BlockSize)
	}
	off := int64(index) * BlockSize
	if off+BlockSize > int64(len(d.data)) {
		return fmt.Errorf("%w: reading block %d: past end of device", ErrIO, index)
	}
	copy(buf, d.data[off:off+BlockSize])
	return nil
}

func (d *MemDevice) WriteBlock(index uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("%w: write buffer is %d bytes, want %d", ErrIO, len(buf), BlockSize)
	}
	off := int64(index) * BlockSize
	if off+BlockSize > int64(len(d.data)) {
		return fmt.Errorf("%w: writing block %d: past end of device", ErrIO, index)
	}
	copy(d.data[off:off+BlockSize], buf)
	return nil
}

func (d *MemDevice) Blocks() uint32 { return uint32(len(d.data) / BlockSize) }

func (d *MemDevice) Close() error { return nil }

// Bytes returns the raw image contents.
func (d *MemDevice) Bytes() []byte { return d.data }
