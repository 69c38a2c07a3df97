package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/spf13/cobra"
)

// NewCatCmd creates and returns the cat subcommand for the cfsimg CLI.
// It extracts a stored file's content from a CFS1 image.
func NewCatCmd() *cobra.Command {
	var (
		imagePath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "cat NAME",
		Short: "Print a stored file's content",
		Long: `Print the content of a file stored in a CFS1 image.

The content is written to stdout, or to --output if given. Only the
logical size is emitted; the zero padding of the final block is not.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCat(imagePath, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write content to this file instead of stdout")

	cmd.MarkFlagRequired("image")

	return cmd
}

func runCat(imagePath, name, outputPath string) {
	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	img, err := cfs.Open(dev)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}

	data, err := img.ReadFile(name)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", name, err)
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Extracted %s: %d bytes to %s\n", name, len(data), outputPath)
}
