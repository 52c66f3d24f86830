package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/krishi-officer/krishicli/internal/api"
	"github.com/krishi-officer/krishicli/internal/config"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate Malayalam text without running the full agent pipeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		client := api.NewClient(cfg.GetBaseURL(), cfg.GetFarmerID())

		result, err := client.Translate(context.Background(), args[0])
		if err != nil {
			log.Fatalf("Translation failed: %v", err)
		}

		if !result.Success {
			log.Fatalf("Translation failed: %s", result.Error)
		}

		fmt.Printf("Original:   %s\n", result.OriginalText)
		fmt.Printf("Translated: %s\n", result.TranslatedText)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
