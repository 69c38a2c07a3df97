// Package cmd provides the command-line interface implementation for cfsimg.
//
// This package contains all the subcommand implementations for the cfsimg CLI
// tool. It uses the Cobra library for command structure and Fang for beautiful
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - inject: Create or update a file inside a CFS1 image
//   - format: Initialize CFS1 metadata on an image
//   - ls: List files stored in an image
//   - cat: Print a stored file's content
//   - info: Show superblock and allocation state
//   - seed: Fill an image with generated test files
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands. The commands are thin wrappers over the cfs package, which
// owns the on-disk format and all image mutation logic.
package cmd
