package cfs

import "errors"

// Sentinel errors for package cfs.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Image and superblock errors
	ErrBadSuperblock = errors.New("invalid CFS1 superblock")
	ErrBadImageSize  = errors.New("image size is not a multiple of the block size")
	ErrIO            = errors.New("image I/O failed")

	// Name validation errors
	ErrNameEmpty   = errors.New("file name is empty")
	ErrNameTooLong = errors.New("file name too long")
	ErrNameInvalid = errors.New("file name has invalid characters; use [A-Za-z0-9._-]")

	// Injection errors
	ErrEmptyInput    = errors.New("refusing to store empty content")
	ErrDirectoryFull = errors.New("directory is full")
	ErrNoSpace       = errors.New("not enough free blocks")

	// Read path errors
	ErrNotFound = errors.New("file not found in image")
	ErrCorrupt  = errors.New("directory entry is corrupt")
)
