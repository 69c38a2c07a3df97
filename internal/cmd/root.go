package cmd

import (
	"github.com/codex-os/cfsimg/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the cfsimg CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfsimg",
		Short: "cfsimg - inject and inspect files in codexOS CFS1 disk images",
		Long: `cfsimg manipulates CFS1 filesystem images used by codexOS.

CFS1 is a flat, block-addressed filesystem: one superblock, a fixed
directory region of 64-byte entries, and an append-only data region.
cfsimg works directly on a plain image file without mounting anything,
which makes it suitable for provisioning images from build scripts.

Use subcommands to perform different operations:
  - inject: Create or update a file inside an image
  - format: Initialize CFS1 metadata on an image
  - ls: List files stored in an image
  - cat: Print a stored file's content
  - info: Show superblock and allocation state
  - seed: Fill an image with generated test files`,
		Version: version.GetFullVersion(),
	}

	groupImage := "image"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupImage,
		Title: "Image Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	injectCmd := NewInjectCmd()
	formatCmd := NewFormatCmd()
	lsCmd := NewLsCmd()
	catCmd := NewCatCmd()
	infoCmd := NewInfoCmd()
	seedCmd := NewSeedCmd()

	injectCmd.GroupID = groupImage
	formatCmd.GroupID = groupImage
	lsCmd.GroupID = groupImage
	catCmd.GroupID = groupImage
	infoCmd.GroupID = groupImage
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
