package cmd

import (
	"fmt"
	"log"

	"github.com/codex-os/cfsimg/cfs"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// NewLsCmd creates and returns the ls subcommand for the cfsimg CLI.
// It lists the files stored in a CFS1 image.
func NewLsCmd() *cobra.Command {
	var (
		imagePath string
		long      bool
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List files stored in a CFS1 image",
		Long: `List files stored in a CFS1 image, in directory scan order.

With --long, also shows each file's logical size, allocated extent length,
and extent start block.`,
		Run: func(cmd *cobra.Command, args []string) {
			runLs(imagePath, long, plain)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the CFS1 image file (required)")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show sizes and extent details")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")

	cmd.MarkFlagRequired("image")

	return cmd
}

func runLs(imagePath string, long, plain bool) {
	dev, err := cfs.OpenFileDevice(imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer dev.Close()

	img, err := cfs.Open(dev)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}

	files, err := img.List()
	if err != nil {
		log.Fatalf("Failed to list files: %v", err)
	}

	if long && len(files) > 0 {
		fmt.Printf("%10s %7s %7s  %s\n", "SIZE", "BLOCKS", "START", "NAME")
	}

	for _, f := range files {
		name := f.Name
		if !plain {
			name = colorizeName(name)
		}
		if long {
			fmt.Printf("%10d %7d %7d  %s\n", f.Size, f.AllocatedBlocks, f.StartBlock, name)
		} else {
			fmt.Println(name)
		}
	}

	if long {
		fmt.Printf("%d files\n", len(files))
	}
}

// colorizeName wraps a file name in a stable ANSI color derived from the
// name itself, so the same file keeps its color across invocations.
func colorizeName(name string) string {
	colors := []int{31, 32, 33, 34, 35, 36}
	c := colors[int(colorhash.HashString(name))%len(colors)]
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, name)
}
