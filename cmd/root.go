package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/krishi-officer/krishicli/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "krishicli",
	Short: "Terminal client for the Digital Krishi Officer service",
	Long: `krishicli is a terminal client for the Digital Krishi Officer,
a multi-agent agricultural support service for Malayalam-speaking farmers.
Ask a question, optionally with your farm location, and get a translation,
detected intent and practical recommendations back.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the interactive query form
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
