package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/floork/mensa-cli-backend/pkg/config"
	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Canteen", "canteen"),
						huh.NewOption("Set Default City", "city"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "canteen" {
			err = runSetDefaultCanteenTUI(cfg)
		} else if action == "city" {
			err = runSetDefaultCityTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.mensa-cli.json) ---"))
			if cfg.DefaultCanteenName == "" {
				fmt.Println("Default Canteen: Not set")
			} else {
				fmt.Printf("Default Canteen: %s (ID: %d)\n", cfg.DefaultCanteenName, cfg.DefaultCanteenID)
			}

			if cfg.DefaultCity == "" {
				fmt.Println("Default City: Not set")
			} else {
				fmt.Printf("Default City: %s\n", cfg.DefaultCity)
			}

			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetDefaultCanteenTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the name of your usual canteen").
				Description("This will be saved to your local config for fast menu lookups.").
				Placeholder("e.g. Mensa am Park...").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No canteen provided.")
		return nil
	}

	client := openmensa.NewClient()
	var canteens []openmensa.Canteen
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching openmensa.org for '%s'...", input)).
		Action(func() {
			canteens, fetchErr = client.FetchCanteens(context.Background())
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not lookup canteen: %w", fetchErr)
	}

	needle := strings.ToLower(input)
	var matches []openmensa.Canteen
	for _, c := range canteens {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matches = append(matches, c)
		}
	}

	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No matching canteens found for '%s'", input)))
		return nil
	}

	match := matches[0]
	if len(matches) > 1 {
		var options []huh.Option[uint32]
		for _, c := range matches {
			options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.City), c.ID))
		}

		var selectedID uint32
		pickForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[uint32]().
					Title(fmt.Sprintf("%d canteens match, pick one", len(matches))).
					Options(options...).
					Value(&selectedID).
					Height(12),
			),
		).WithTheme(GetTheme())

		if err := pickForm.Run(); err != nil {
			return err
		}

		for _, c := range matches {
			if c.ID == selectedID {
				match = c
			}
		}
	}

	cfg.DefaultCanteenID = match.ID
	cfg.DefaultCanteenName = match.Name

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved default canteen: %s (ID: %d)\n", match.Name, match.ID)))
	return nil
}

func runSetDefaultCityTUI(cfg *config.AppConfig) error {
	client := openmensa.NewClient()
	var canteens []openmensa.Canteen
	var fetchErr error

	_ = spinner.New().
		Title("Fetching the canteen catalogue...").
		Action(func() {
			canteens, fetchErr = client.FetchCanteens(context.Background())
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch canteens: %w", fetchErr)
	}

	var cities []string
	seen := make(map[string]bool)
	for _, c := range canteens {
		if !seen[c.City] {
			seen[c.City] = true
			cities = append(cities, c.City)
		}
	}
	sort.Strings(cities)

	var cityOptions []huh.Option[string]
	for _, city := range cities {
		cityOptions = append(cityOptions, huh.NewOption(city, city))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default city for the canteen browser").
				Options(cityOptions...).
				Value(&selected).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultCity = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default city changed to: %s\n", selected)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for mensa-cli").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Mensa Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
