package cmd

import (
	"context"
	"fmt"

	"github.com/floork/mensa-cli-backend/pkg/config"
	"github.com/floork/mensa-cli-backend/pkg/openmensa"
	"github.com/floork/mensa-cli-backend/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mensa-cli configuration",
	Long:  "View or edit your local configuration settings (like your default canteen or city).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setCanteen, _ := cmd.Flags().GetString("set-canteen")
		if setCanteen != "" {
			fmt.Printf("Searching openmensa.org for canteen: '%s'...\n", setCanteen)

			client := openmensa.NewClient()
			match, err := client.FetchCanteenByName(context.Background(), setCanteen)
			if err != nil {
				return fmt.Errorf("could not look up canteen: %w", err)
			}
			if match == nil {
				return fmt.Errorf("no canteen named '%s' found", setCanteen)
			}

			cfg.DefaultCanteenID = match.ID
			cfg.DefaultCanteenName = match.Name

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default canteen successfully saved as: %s (ID: %d)\n", match.Name, match.ID)
			return nil
		}

		setCity, _ := cmd.Flags().GetString("set-city")
		if setCity != "" {
			client := openmensa.NewClient()
			matches, err := client.FetchCanteensByCity(context.Background(), setCity)
			if err != nil {
				return fmt.Errorf("could not look up city: %w", err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no canteens found in '%s' (city names are case sensitive)", setCity)
			}

			cfg.DefaultCity = setCity
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default city successfully saved as: %s (%d canteens)\n", setCity, len(matches))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-canteen", "", "Set your default canteen by name")
	configCmd.Flags().String("set-city", "", "Set your default city for canteen browsing")
}
