package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hahealth",
	Short: "hahealth is a terminal dashboard for your health tracker",
	Long:  "hahealth drives a personal health-tracking server from the terminal: medications, blood pressure, exercise, nutrition, vaccination and allergy records, reports, and admin backups.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Tracker server base URL (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log request details to stderr")
}
