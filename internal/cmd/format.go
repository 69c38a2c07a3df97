package cmd

import (
	"fmt"
	"log"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/spf13/cobra"
)

// NewFormatCmd creates and returns the format subcommand for the cfsimg CLI.
// It initializes CFS1 metadata on an image file.
func NewFormatCmd() *cobra.Command {
	var (
		imagePath string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Initialize CFS1 metadata on an image",
		Long: `Initialize CFS1 metadata on an image file.

Writes a fresh superblock and zero-fills the directory region. The image
file must already exist and its length must be a multiple of 512 bytes.
If the image already contains a valid CFS1 filesystem the command refuses
to run unless --force is given, since reformatting abandons every stored
file.`,
		Run: func(cmd *cobra.Command, args []string) {
			runFormat(imagePath, force)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")
	cmd.Flags().BoolVar(&force, "force", false, "Reinitialize even if the image already holds a CFS1 filesystem")

	cmd.MarkFlagRequired("image")

	return cmd
}

func runFormat(imagePath string, force bool) {
	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	if _, err := cfs.Open(dev); err == nil && !force {
		log.Fatalf("Image already contains a CFS1 filesystem; use --force to reinitialize")
	}

	img, err := cfs.Format(dev)
	if err != nil {
		log.Fatalf("Format failed: %v", err)
	}

	sb := img.Superblock()
	fmt.Printf("Formatted %s: %d blocks total, %d directory blocks, data region starts at block %d\n",
		imagePath, sb.TotalBlocks, sb.DirectoryBlocks, sb.DataStart())
}
