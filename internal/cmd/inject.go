package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/spf13/cobra"
)

// NewInjectCmd creates and returns the inject subcommand for the cfsimg CLI.
// It creates or replaces a single file inside a CFS1 image.
func NewInjectCmd() *cobra.Command {
	var (
		imagePath      string
		hostPath       string
		name           string
		formatIfNeeded bool
	)

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Inject or replace a file in a CFS1 image",
		Long: `Inject or replace a file in a CFS1 image.

Reads the host file and writes its content into the image under the given
name. If the name already exists its content is replaced, reusing the old
extent when the new content fits. New extents are always appended; old
ones are never reclaimed.`,
		Run: func(cmd *cobra.Command, args []string) {
			runInject(imagePath, hostPath, name, formatIfNeeded)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")
	cmd.Flags().StringVarP(&hostPath, "host", "f", "", "Host file to inject (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name inside the image (default: basename of --host)")
	cmd.Flags().BoolVar(&formatIfNeeded, "format-if-needed", false, "Initialize CFS1 metadata if the image is unformatted")

	cmd.MarkFlagRequired("image")
	cmd.MarkFlagRequired("host")

	return cmd
}

func runInject(imagePath, hostPath, name string, formatIfNeeded bool) {
	payload, err := os.ReadFile(hostPath)
	if err != nil {
		log.Fatalf("Failed to read host file: %v", err)
	}

	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	img := openOrFormat(dev, imagePath, formatIfNeeded)

	result, err := img.Inject(destName(hostPath, name), payload)
	if err != nil {
		log.Fatalf("Inject failed: %v", err)
	}

	verb := "Updated"
	if result.Created {
		verb = "Injected"
	}
	fmt.Printf("%s %s: %d bytes, %d blocks (start block %d)\n",
		verb, result.Name, result.Bytes, result.Blocks, result.Start)
}

// destName returns the name to use inside the image, defaulting to the host
// file's base name.
func destName(hostPath, name string) string {
	if name != "" {
		return name
	}
	return filepath.Base(hostPath)
}

// openOrFormat opens a CFS1 image, formatting it first if the caller opted
// in and the superblock does not validate. Any other failure is fatal.
func openOrFormat(dev cfs.Device, imagePath string, formatIfNeeded bool) *cfs.Image {
	img, err := cfs.Open(dev)
	if err == nil {
		return img
	}
	if !formatIfNeeded || !errors.Is(err, cfs.ErrBadSuperblock) {
		log.Fatalf("Failed to open image: %v", err)
	}

	img, err = cfs.Format(dev)
	if err != nil {
		log.Fatalf("Format failed: %v", err)
	}
	fmt.Printf("Initialized CFS1 filesystem in %s (%d blocks)\n", imagePath, img.Superblock().TotalBlocks)
	return img
}
