package cmd

import (
	"fmt"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"
)

// program implements the service.Interface
type program struct{}

func (p *program) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *program) Stop(s service.Service) error {
	return nil
}

func (p *program) run() {
	RunSlideshow()
}

func getService() (service.Service, error) {
	args := []string{"run"}
	if cfgFile != "" {
		args = append(args, "--config", cfgFile)
	}

	svcConfig := &service.Config{
		Name:        "Slideshow",
		DisplayName: "Image Slideshow Viewer",
		Description: "Displays a folder of images fullscreen on a timer.",
		Arguments:   args,
	}

	prg := &program{}
	return service.New(prg, svcConfig)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the slideshow as a system service",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := getService()
		if err != nil {
			fmt.Printf("Setup failed: %v\n", err)
			return
		}

		// Check if already installed
		status, err := s.Status()
		if err == nil {
			fmt.Println("Slideshow is already installed.")
			if status == service.StatusRunning {
				fmt.Println("Service is currently RUNNING.")
			} else {
				fmt.Println("Service is currently STOPPED.")
			}
			fmt.Println("Use 'slideshow uninstall' to remove it.")
			return
		}

		fmt.Println("Installing slideshow service...")
		if err := s.Install(); err != nil {
			fmt.Printf("Failed to install: %v\n", err)
			fmt.Println("Hint: Ensure you are running with sufficient privileges.")
			return
		}
		fmt.Println("Service installed successfully.")

		fmt.Println("Starting service...")
		if err := s.Start(); err != nil {
			fmt.Printf("Failed to start: %v\n", err)
			return
		}
		fmt.Println("Service started.")
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the slideshow service",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := getService()
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println("Stopping service...")
		if err := s.Stop(); err != nil {
			fmt.Printf("Could not stop service (may not be running): %v\n", err)
		}

		fmt.Println("Uninstalling service...")
		if err := s.Uninstall(); err != nil {
			fmt.Printf("Failed to uninstall: %v\n", err)
			return
		}
		fmt.Println("Service removed.")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the slideshow service status",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := getService()
		if err != nil {
			fmt.Println(err)
			return
		}

		status, err := s.Status()
		if err != nil {
			fmt.Println("Service is not installed.")
			return
		}

		switch status {
		case service.StatusRunning:
			fmt.Println("Service is RUNNING.")
		case service.StatusStopped:
			fmt.Println("Service is STOPPED.")
		default:
			fmt.Println("Service status is unknown.")
		}
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(statusCmd)
}
