package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slideshow/storage"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slideshow",
	Short: "Fullscreen image slideshow viewer",
	Long: `Slideshow scans a folder for images and displays them fullscreen on
a timer. All behavior is driven by a JSON configuration file which is created
with defaults on first run.`,
	Run: func(cmd *cobra.Command, args []string) {
		RunSlideshow()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.slideshow/config.json)")
}

// newStorageManager honors the --config flag
func newStorageManager() *storage.Manager {
	if cfgFile != "" {
		return storage.NewManagerAt(cfgFile)
	}
	return storage.NewManager()
}
