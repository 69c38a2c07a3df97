package cmd

import (
	"fmt"
	"log"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates and returns the info subcommand for the cfsimg CLI.
// It reports superblock geometry and allocation state.
func NewInfoCmd() *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show superblock and allocation state",
		Long: `Show the superblock geometry and allocation state of a CFS1 image.

Reports the image size, directory capacity, allocation cursor, and how
many blocks remain for new content.`,
		Run: func(cmd *cobra.Command, args []string) {
			runInfo(imagePath)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")

	cmd.MarkFlagRequired("image")

	return cmd
}

func runInfo(imagePath string) {
	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	img, err := cfs.Open(dev)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}

	stats := img.Info()
	fmt.Printf("CFS1 image: %s\n", imagePath)
	fmt.Printf("  Total blocks:     %d (%d bytes)\n", stats.TotalBlocks, int64(stats.TotalBlocks)*cfs.BlockSize)
	fmt.Printf("  Directory blocks: %d (%d slots)\n", stats.DirectoryBlocks, stats.DirectorySlots)
	fmt.Printf("  Data region:      blocks %d..%d\n", stats.DataStart, stats.TotalBlocks-1)
	fmt.Printf("  Next free block:  %d\n", stats.NextFree)
	fmt.Printf("  Files stored:     %d\n", stats.FileCount)
	fmt.Printf("  Free blocks:      %d (%d bytes)\n", stats.FreeBlocks, int64(stats.FreeBlocks)*cfs.BlockSize)
}
