package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slideshow/scanner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the images the configured folder currently yields",
	Run: func(cmd *cobra.Command, args []string) {
		listImages()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listImages scans the configured folder and prints the resulting image set
// without starting the GUI
func listImages() {
	store := newStorageManager()

	config, err := store.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	if config.Folder == "" {
		fmt.Printf("No image folder configured. Set \"folder\" in %s\n", store.Path())
		return
	}

	images := scanner.NewScanner().Scan(config.Folder, config.Extensions, config.Recursive)
	if len(images) == 0 {
		fmt.Printf("No images found in %s\n", config.Folder)
		return
	}

	fmt.Printf("Found %d images in %s:\n", len(images), config.Folder)
	fmt.Println("================")
	for i, path := range images {
		fmt.Printf("%d. %s\n", i+1, path)
	}
}
