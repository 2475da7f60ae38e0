package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/floork/mensa-cli-backend/pkg/config"
	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "View the menu of a canteen",
	Long:  `Fetch and display the daily menu of a canteen listed on openmensa.org.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := openmensa.NewClient()
		ctx := context.Background()

		canteen, err := resolveCanteen(ctx, client, cmd)
		if err != nil {
			return err
		}

		// Default to today if no date provided
		fetchDate, _ := cmd.Flags().GetString("date")
		if fetchDate == "" {
			fetchDate = time.Now().Format("2006-01-02")
		}

		var meals []openmensa.Meal
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching menu for %s...", fetchDate)).
			Action(func() {
				meals, err = client.FetchMeals(ctx, *canteen, fetchDate)
			}).
			Run()

		if err != nil {
			var statusErr *openmensa.StatusError
			if errors.As(err, &statusErr) && statusErr.NotFound() {
				warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
				fmt.Println(warnStyle.Render(fmt.Sprintf("%s has no menu for %s. The canteen is probably closed.", canteen.Name, fetchDate)))
				return nil
			}
			return fmt.Errorf("could not fetch menu: %w", err)
		}

		printMenu(canteen, meals, fetchDate)
		return nil
	},
}

// resolveCanteen figures out which canteen the user means: the --id flag wins,
// then --name, then the default saved in the local config.
func resolveCanteen(ctx context.Context, client *openmensa.Client, cmd *cobra.Command) (*openmensa.Canteen, error) {
	id, _ := cmd.Flags().GetUint32("id")
	name, _ := cmd.Flags().GetString("name")

	if id != 0 {
		var canteen *openmensa.Canteen
		var err error
		_ = spinner.New().
			Title(fmt.Sprintf("Looking up canteen #%d...", id)).
			Action(func() {
				canteen, err = client.FetchCanteen(ctx, id)
			}).
			Run()
		if err != nil {
			return nil, fmt.Errorf("could not look up canteen: %w", err)
		}
		if canteen == nil {
			return nil, fmt.Errorf("no canteen with id %d", id)
		}
		return canteen, nil
	}

	if name != "" {
		var canteen *openmensa.Canteen
		var err error
		_ = spinner.New().
			Title(fmt.Sprintf("Searching for canteen '%s'...", name)).
			Action(func() {
				canteen, err = client.FetchCanteenByName(ctx, name)
				if err != nil || canteen != nil {
					return
				}
				// Fallback: substring match over the catalogue
				var canteens []openmensa.Canteen
				canteens, err = client.FetchCanteens(ctx)
				if err != nil {
					return
				}
				for _, c := range canteens {
					if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
						canteen = &c
						break
					}
				}
			}).
			Run()
		if err != nil {
			return nil, fmt.Errorf("could not look up canteen: %w", err)
		}
		if canteen == nil {
			return nil, fmt.Errorf("could not find a matching canteen for: %s", name)
		}
		return canteen, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DefaultCanteenID != 0 {
		var canteen *openmensa.Canteen
		_ = spinner.New().
			Title(fmt.Sprintf("Checking default canteen: %s...", cfg.DefaultCanteenName)).
			Action(func() {
				canteen, err = client.FetchCanteen(ctx, cfg.DefaultCanteenID)
			}).
			Run()
		if err != nil {
			return nil, fmt.Errorf("could not look up canteen: %w", err)
		}
		if canteen == nil {
			return nil, fmt.Errorf("saved default canteen %d no longer exists, run 'mensa-cli config'", cfg.DefaultCanteenID)
		}
		return canteen, nil
	}

	return nil, fmt.Errorf("no canteen given: pass --id or --name, or set a default via 'mensa-cli config'")
}

func printMenu(canteen *openmensa.Canteen, meals []openmensa.Meal, date string) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	categoryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: menu for %s", canteen.Name, date)))

	if len(meals) == 0 {
		fmt.Println("No meals available for this date.")
		return
	}

	for _, group := range openmensa.GroupMealsByCategory(meals) {
		fmt.Println(categoryStyle.Render(fmt.Sprintf("-- %s --", group.Category)))

		for _, meal := range group.Meals {
			fmt.Printf("• %s\n", meal.Name)

			if prices := formatPrices(meal.Prices, priceStyle); prices != "" {
				fmt.Printf("  %s\n", prices)
			}

			if len(meal.Notes) > 0 {
				noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
				fmt.Println(noteStyle.Render(fmt.Sprintf("  Info: %s", strings.Join(meal.Notes, ", "))))
			}
			fmt.Println()
		}
	}
}

// formatPrices renders only the price tiers the canteen actually publishes.
func formatPrices(p openmensa.Prices, style lipgloss.Style) string {
	var parts []string
	add := func(label string, value *float64) {
		if value != nil {
			parts = append(parts, fmt.Sprintf("%s: %s €", label, style.Render(fmt.Sprintf("%.2f", *value))))
		}
	}
	add("Stud", p.Students)
	add("Emp", p.Employees)
	add("Pupil", p.Pupils)
	add("Guest", p.Others)
	return strings.Join(parts, " | ")
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().Uint32P("id", "i", 0, "Canteen ID (overrides name flag)")
	menuCmd.Flags().StringP("name", "n", "", "Canteen name (exact match, falls back to substring search)")
	menuCmd.Flags().StringP("date", "d", "", "Date to fetch (format: YYYY-MM-DD), defaults to today")
}
