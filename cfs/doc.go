// Package cfs implements the CFS1 on-disk filesystem format used by codexOS
// data images.
//
// CFS1 is a deliberately small format: a flat namespace, a single fixed
// directory region, and an append-only data region. An image is a plain file
// whose length is an exact multiple of the 512-byte block size. Block 0 holds
// the superblock, blocks [1, 1+directoryBlocks) hold 64-byte directory
// entries, and everything after that is file content.
//
// Layout (all integers little-endian):
//
//	Superblock (block 0):
//	  [0:4]   magic "CFS1"
//	  [4:6]   format version (u16)
//	  [6:8]   directory region size in blocks (u16)
//	  [8:12]  total image size in blocks (u32)
//	  [12:16] next free block cursor (u32)
//	  [16:20] stored file count (u32)
//
//	Directory entry (64 bytes, 8 per block):
//	  byte 0 bit 0 = used flag
//	  byte 1       = name length
//	  [4:8]   extent start block (u32)
//	  [8:12]  logical size in bytes (u32)
//	  [12:16] allocated extent length in blocks (u32)
//	  [16:64] name bytes, zero padded
//
// Allocation is a bump cursor that only ever moves forward. Updating a file
// reuses its extent in place when the new content fits; otherwise a new
// extent is allocated and the old one is abandoned. There is no deletion and
// no reclamation. That trade keeps the format free of any free-list or
// fragmentation bookkeeping, which is acceptable for a provisioning tool that
// writes a small, mostly static set of files once.
//
// The main entry points are OpenFileDevice to attach an image file, Open to
// mount its superblock, Format to initialize an empty image, and
// (*Image).Inject to create or update a named file.
package cfs
