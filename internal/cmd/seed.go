package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the cfsimg CLI.
// It fills an image with generated test files.
func NewSeedCmd() *cobra.Command {
	var (
		imagePath      string
		fileCount      int
		formatIfNeeded bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a CFS1 image with generated test files",
		Long: `Fill a CFS1 image with generated test files.

Each file is named after a fresh UUID and contains a few lines of
UUID-derived content. Seeding stops early when the directory fills up or
the data region runs out of blocks, which makes this useful for
exercising the allocator against small images.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(imagePath, fileCount, formatIfNeeded, verbose)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 16, "Number of files to generate")
	cmd.Flags().BoolVar(&formatIfNeeded, "format-if-needed", false, "Initialize CFS1 metadata if the image is unformatted")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print one line per injected file")

	cmd.MarkFlagRequired("image")

	return cmd
}

func runSeed(imagePath string, fileCount int, formatIfNeeded, verbose bool) {
	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	img := openOrFormat(dev, imagePath, formatIfNeeded)

	created := 0
	for created < fileCount {
		id := uuid.New().String()
		name := fmt.Sprintf("seed-%s.txt", id[:8])
		content := strings.Repeat(id+"\n", 4)

		result, err := img.Inject(name, []byte(content))
		if errors.Is(err, cfs.ErrDirectoryFull) || errors.Is(err, cfs.ErrNoSpace) {
			fmt.Printf("Stopped after %d files: %v\n", created, err)
			return
		}
		if err != nil {
			log.Fatalf("Inject failed: %v", err)
		}

		created++
		if verbose {
			fmt.Printf("Injected %s: %d bytes at block %d\n", result.Name, result.Bytes, result.Start)
		}
	}

	stats := img.Info()
	fmt.Printf("Seeded %d files (%d stored, %d free blocks)\n", created, stats.FileCount, stats.FreeBlocks)
}
