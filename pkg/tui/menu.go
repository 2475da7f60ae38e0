package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/floork/mensa-cli-backend/pkg/config"
	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunMenuTUI runs the interactive flow for selecting a canteen and displaying the menu
func RunMenuTUI() error {
	var selectedCanteenID uint32
	var selectedCanteenName string
	var selectedDate string

	client := openmensa.NewClient()
	ctx := context.Background()

	cfg, _ := config.Load()
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)

	if cfg != nil && cfg.DefaultCanteenID != 0 {
		selectedCanteenID = cfg.DefaultCanteenID
		selectedCanteenName = cfg.DefaultCanteenName
		fmt.Println(accent.Render(fmt.Sprintf("\nChecking default canteen: %s...", selectedCanteenName)))
	} else {
		var canteens []openmensa.Canteen
		var err error

		_ = spinner.New().
			Title("Fetching the canteen catalogue...").
			Action(func() {
				canteens, err = client.FetchCanteens(ctx)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch canteens: %w", err)
		}

		var selectedCity string
		if cfg != nil && cfg.DefaultCity != "" {
			selectedCity = cfg.DefaultCity
			fmt.Println(accent.Render(fmt.Sprintf("\nUsing default city: %s", selectedCity)))
		} else {
			var cities []string
			seenCities := make(map[string]bool)
			for _, c := range canteens {
				if !seenCities[c.City] {
					seenCities[c.City] = true
					cities = append(cities, c.City)
				}
			}
			sort.Strings(cities)

			var cityOptions []huh.Option[string]
			for _, city := range cities {
				cityOptions = append(cityOptions, huh.NewOption(city, city))
			}

			cityForm := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Select a city").
						Options(cityOptions...).
						Value(&selectedCity).
						Height(12),
				),
			).WithTheme(GetTheme())

			if err := cityForm.Run(); err != nil {
				return err
			}
		}

		var cityCanteens []openmensa.Canteen
		for _, c := range canteens {
			if strings.EqualFold(c.City, selectedCity) {
				cityCanteens = append(cityCanteens, c)
			}
		}

		if len(cityCanteens) == 0 {
			return fmt.Errorf("no canteens found for city: %s", selectedCity)
		}

		var canteenOptions []huh.Option[uint32]
		seenNames := make(map[string]bool)
		for _, c := range cityCanteens {
			if !seenNames[c.Name] {
				seenNames[c.Name] = true
				canteenOptions = append(canteenOptions, huh.NewOption(c.Name, c.ID))
			}
		}

		// If only one canteen in the city, select it automatically
		if len(canteenOptions) == 1 {
			selectedCanteenID = canteenOptions[0].Value
			selectedCanteenName = canteenOptions[0].Key
			fmt.Println(accent.Render(fmt.Sprintf("Automatically selected canteen: %s", selectedCanteenName)))
		} else {
			canteenForm := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[uint32]().
						Title(fmt.Sprintf("Select a canteen in %s", cases.Title(language.German).String(selectedCity))).
						Options(canteenOptions...).
						Value(&selectedCanteenID).
						Height(12),
				),
			).WithTheme(GetTheme())

			if err := canteenForm.Run(); err != nil {
				return err
			}

			for _, opt := range canteenOptions {
				if opt.Value == selectedCanteenID {
					selectedCanteenName = opt.Key
				}
			}
		}
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	dateOptions := []huh.Option[string]{
		huh.NewOption(fmt.Sprintf("Today (%s)", today), today),
		huh.NewOption(fmt.Sprintf("Tomorrow (%s)", tomorrow), tomorrow),
	}

	dateForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Date").
				Options(dateOptions...).
				Value(&selectedDate),
		),
	).WithTheme(GetTheme())

	if err := dateForm.Run(); err != nil {
		return err
	}

	var meals []openmensa.Meal
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching menu for %s...", selectedDate)).
		Action(func() {
			meals, err = client.FetchMeals(ctx, openmensa.Canteen{ID: selectedCanteenID}, selectedDate)
		}).
		Run()

	if err != nil {
		var statusErr *openmensa.StatusError
		if errors.As(err, &statusErr) && statusErr.NotFound() {
			warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			fmt.Println(warnStyle.Render(fmt.Sprintf("\n%s has no menu for %s. The canteen is probably closed.", selectedCanteenName, selectedDate)))
			return nil
		}
		return fmt.Errorf("failed to fetch menu: %w", err)
	}

	// Reusing same styles as the CLI version
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	categoryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: menu for %s", selectedCanteenName, selectedDate)))

	if len(meals) == 0 {
		fmt.Println("No meals available for this date.")
		return nil
	}

	for _, group := range openmensa.GroupMealsByCategory(meals) {
		fmt.Println(categoryStyle.Render(fmt.Sprintf("-- %s --", group.Category)))

		for _, meal := range group.Meals {
			fmt.Printf("• %s\n", meal.Name)

			var parts []string
			addPrice := func(label string, value *float64) {
				if value != nil {
					parts = append(parts, fmt.Sprintf("%s: %s €", label, priceStyle.Render(fmt.Sprintf("%.2f", *value))))
				}
			}
			addPrice("Stud", meal.Prices.Students)
			addPrice("Emp", meal.Prices.Employees)
			addPrice("Pupil", meal.Prices.Pupils)
			addPrice("Guest", meal.Prices.Others)
			if len(parts) > 0 {
				fmt.Printf("  %s\n", strings.Join(parts, " | "))
			}

			if len(meal.Notes) > 0 {
				noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
				fmt.Println(noteStyle.Render(fmt.Sprintf("  Info: %s", strings.Join(meal.Notes, ", "))))
			}
			fmt.Println()
		}
	}

	return nil
}
