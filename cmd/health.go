package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/krishi-officer/krishicli/internal/api"
	"github.com/krishi-officer/krishicli/internal/config"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend service health and agent availability",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		client := api.NewClient(cfg.GetBaseURL(), cfg.GetFarmerID())

		status, err := client.Health(context.Background())
		if err != nil {
			log.Fatalf("Health check failed: %v", err)
		}

		fmt.Printf("Service: %s\n", status.Service)
		fmt.Printf("Status:  %s\n", status.Status)
		for agent, state := range status.Agents {
			fmt.Printf("  %s: %s\n", agent, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
