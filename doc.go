// Package main provides the cfsimg command-line interface.
//
// cfsimg injects, extracts, and inspects files in codexOS CFS1 disk images.
// CFS1 is a flat, block-addressed filesystem with a single fixed directory
// region and append-only data allocation; cfsimg operates directly on the
// image file without mounting anything.
//
// The main binary supports multiple subcommands:
//   - inject: Create or update a file inside an image
//   - format: Initialize CFS1 metadata on an image
//   - ls: List files stored in an image
//   - cat: Print a stored file's content
//   - info: Show superblock and allocation state
//   - seed: Fill an image with generated test files
package main
