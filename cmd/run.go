package cmd

import (
	"log"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"slideshow/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the slideshow viewer",
	Run: func(cmd *cobra.Command, args []string) {
		RunSlideshow()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// RunSlideshow is the entry point for the long-running viewer process
func RunSlideshow() {
	if service.Interactive() {
		log.Println("Starting slideshow...")
	} else {
		log.Println("Starting slideshow as service...")
	}

	window := ui.NewSlideshowWindow(newStorageManager())
	window.ShowAndRun()
}
