package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var canteensCmd = &cobra.Command{
	Use:   "canteens",
	Short: "List and search canteens",
	Long:  `Browse the openmensa.org canteen catalogue by city, name or id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		name, _ := cmd.Flags().GetString("name")
		search, _ := cmd.Flags().GetString("search")
		idsFlag, _ := cmd.Flags().GetString("ids")

		client := openmensa.NewClient()
		ctx := context.Background()

		if idsFlag != "" {
			ids, err := parseIDList(idsFlag)
			if err != nil {
				return err
			}

			var canteens []openmensa.Canteen
			_ = spinner.New().
				Title("Fetching canteens...").
				Action(func() {
					canteens, err = client.FetchCanteensByIDs(ctx, ids)
				}).
				Run()
			if err != nil {
				return fmt.Errorf("could not fetch canteens: %w", err)
			}

			printCanteens(canteens)
			return nil
		}

		if name != "" {
			var canteen *openmensa.Canteen
			var err error
			_ = spinner.New().
				Title(fmt.Sprintf("Searching for canteen '%s'...", name)).
				Action(func() {
					canteen, err = client.FetchCanteenByName(ctx, name)
				}).
				Run()
			if err != nil {
				return fmt.Errorf("could not fetch canteens: %w", err)
			}
			if canteen == nil {
				return fmt.Errorf("no canteen named '%s' found", name)
			}

			printCanteens([]openmensa.Canteen{*canteen})
			return nil
		}

		if city != "" {
			var canteens []openmensa.Canteen
			var err error
			_ = spinner.New().
				Title(fmt.Sprintf("Fetching canteens in %s...", city)).
				Action(func() {
					canteens, err = client.FetchCanteensByCity(ctx, city)
				}).
				Run()
			if err != nil {
				return fmt.Errorf("could not fetch canteens: %w", err)
			}
			if len(canteens) == 0 {
				return fmt.Errorf("no canteens found in '%s' (city names are case sensitive)", city)
			}

			header := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
			fmt.Println(header.Render(fmt.Sprintf("Canteens in %s", cases.Title(language.German).String(city))))
			printCanteens(canteens)
			return nil
		}

		// No direct filter: pull the full catalogue, optionally narrowed by --search
		var canteens []openmensa.Canteen
		var err error
		_ = spinner.New().
			Title("Fetching the canteen catalogue...").
			Action(func() {
				canteens, err = client.FetchCanteens(ctx)
			}).
			Run()
		if err != nil {
			return fmt.Errorf("could not fetch canteens: %w", err)
		}

		if search != "" {
			needle := strings.ToLower(search)
			var matches []openmensa.Canteen
			for _, c := range canteens {
				if strings.Contains(strings.ToLower(c.Name), needle) ||
					strings.Contains(strings.ToLower(c.City), needle) {
					matches = append(matches, c)
				}
			}
			if len(matches) == 0 {
				return fmt.Errorf("no canteens found matching '%s'", search)
			}
			canteens = matches
		}

		printCanteens(canteens)
		return nil
	},
}

// parseIDList splits a comma separated flag value like "1,5,1719" into ids.
func parseIDList(raw string) ([]uint32, error) {
	var ids []uint32
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid canteen id %q: %w", part, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

func printCanteens(canteens []openmensa.Canteen) {
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cityStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	addrStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	for _, c := range canteens {
		fmt.Printf("• %s %s\n", c.Name, idStyle.Render(fmt.Sprintf("(#%d)", c.ID)))

		line := cityStyle.Render(c.City)
		if c.Address != "" {
			line += addrStyle.Render(fmt.Sprintf(" | %s", c.Address))
		}
		if c.Coordinates != nil {
			line += idStyle.Render(fmt.Sprintf(" | %.4f, %.4f", c.Coordinates.Latitude(), c.Coordinates.Longitude()))
		}
		fmt.Printf("  %s\n\n", line)
	}
}

func init() {
	rootCmd.AddCommand(canteensCmd)
	canteensCmd.Flags().StringP("city", "c", "", "List canteens in a city (exact, case sensitive)")
	canteensCmd.Flags().StringP("name", "n", "", "Look up a single canteen by its exact name")
	canteensCmd.Flags().StringP("search", "s", "", "Filter the catalogue by substring (name or city)")
	canteensCmd.Flags().String("ids", "", "Comma separated canteen ids (e.g. 1,5,1719)")
}
