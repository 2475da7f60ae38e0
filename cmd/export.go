package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/floork/mensa-cli-backend/pkg/exporter"
	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export menus to an ICS file",
	Long:  `Export the upcoming menus of a canteen to an ICS calendar file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		days, _ := cmd.Flags().GetInt("days")
		startStr, _ := cmd.Flags().GetString("date")

		if days < 1 {
			return fmt.Errorf("days must be at least 1, got %d", days)
		}

		client := openmensa.NewClient()
		ctx := context.Background()

		canteen, err := resolveCanteen(ctx, client, cmd)
		if err != nil {
			return err
		}

		start := time.Now()
		if startStr != "" {
			start, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD: %w", startStr, err)
			}
		}

		var menuDays []exporter.MenuDay
		var fetchErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %d days of %s to %s...", days, canteen.Name, output)).
			Action(func() {
				for i := 0; i < days; i++ {
					date := start.AddDate(0, 0, i).Format("2006-01-02")

					meals, err := client.FetchMeals(ctx, *canteen, date)
					if err != nil {
						var statusErr *openmensa.StatusError
						if errors.As(err, &statusErr) && statusErr.NotFound() {
							continue // closed day, skip it
						}
						fetchErr = fmt.Errorf("failed to fetch menu for %s: %w", date, err)
						return
					}

					menuDays = append(menuDays, exporter.MenuDay{Date: date, Meals: meals})
				}
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		total := 0
		for _, day := range menuDays {
			total += len(day.Meals)
		}
		if total == 0 {
			return fmt.Errorf("no meals found for %s in the requested period", canteen.Name)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(*canteen, menuDays, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d meals to %s\n", total, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Uint32P("id", "i", 0, "Canteen ID (overrides name flag)")
	exportCmd.Flags().StringP("name", "n", "", "Canteen name (exact match, falls back to substring search)")
	exportCmd.Flags().StringP("date", "d", "", "First date to export (format: YYYY-MM-DD), defaults to today")
	exportCmd.Flags().Int("days", 7, "Number of days to export")
	exportCmd.Flags().StringP("output", "o", "menu.ics", "Output file path")
}
