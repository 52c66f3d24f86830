package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/krishi-officer/krishicli/internal/api"
	"github.com/krishi-officer/krishicli/internal/config"
	"github.com/krishi-officer/krishicli/internal/models"
	"github.com/krishi-officer/krishicli/ui/components"
)

var (
	askLocation string
	askQueryID  string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Submit one question without the interactive form",
	Long: `Submit a single question to the Krishi Officer backend and print the
structured result. With --id, re-fetch a previously processed query instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		client := api.NewClient(cfg.GetBaseURL(), cfg.GetFarmerID())
		ctx := context.Background()

		var response *models.QueryResponse
		switch {
		case askQueryID != "":
			response, err = client.GetQuery(ctx, askQueryID)
		case len(args) == 1:
			location := askLocation
			if location == "" {
				location = cfg.GetLocation()
			}
			response, err = client.SubmitQuery(ctx, args[0], location)
		default:
			log.Fatalf("Provide a question or --id")
		}

		if err != nil {
			log.Fatalf("Query failed: %v", err)
		}

		fmt.Println(components.RenderResponse(response))
		fmt.Printf("Query ID: %s\n", response.ID)
	},
}

func init() {
	askCmd.Flags().StringVarP(&askLocation, "location", "l", "", "farm location sent with the question")
	askCmd.Flags().StringVar(&askQueryID, "id", "", "re-fetch a processed query by id instead of asking")
	rootCmd.AddCommand(askCmd)
}
