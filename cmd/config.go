package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the viewer would run with, creating the
config file with defaults when it does not exist yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig() {
	store := newStorageManager()

	config, err := store.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		fmt.Printf("Error rendering config: %v\n", err)
		return
	}

	fmt.Printf("Config file: %s\n", store.Path())
	fmt.Println(string(data))
}
