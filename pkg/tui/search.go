package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunSearchTUI prompts for a search term and lists all matching canteens.
func RunSearchTUI() error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for a canteen").
				Description("Matches canteen names and cities.").
				Placeholder("e.g. Leipzig or Mensa am Park...").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No search term provided.")
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
		return fmt.Errorf("could not fetch the canteen catalogue: %w", fetchErr)
	}

	needle := strings.ToLower(input)
	var matches []openmensa.Canteen
	for _, c := range canteens {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.City), needle) {
			matches = append(matches, c)
		}
	}

	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No canteens found matching '%s'", input)))
		return nil
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cityStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nFound %d canteens:", len(matches))))
	for _, c := range matches {
		fmt.Printf("• %s %s\n  %s\n", c.Name, idStyle.Render(fmt.Sprintf("(#%d)", c.ID)), cityStyle.Render(c.City))
	}
	fmt.Println()

	return nil
}
