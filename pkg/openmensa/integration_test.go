package openmensa

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestIntegration_FetchCanteens actually connects to openmensa.org.
// If this fails, the API might be down or changed its JSON structure.
func TestIntegration_FetchCanteens(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	canteens, err := client.FetchCanteens(context.Background())
	if err != nil {
		t.Fatalf("Failed to fetch canteens: %v", err)
	}

	if len(canteens) == 0 {
		t.Fatalf("Expected canteens from API, got 0")
	}

	// Every catalogue entry should at least carry an id and a name.
	for _, c := range canteens[:min(len(canteens), 5)] {
		if c.ID == 0 {
			t.Errorf("Canteen %q has no id", c.Name)
		}
		if c.Name == "" {
			t.Errorf("Canteen %d has no name", c.ID)
		}
	}
}

// TestIntegration_FetchCanteensByCity cross-checks the city filter against
// the live catalogue.
func TestIntegration_FetchCanteensByCity(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	canteens, err := client.FetchCanteensByCity(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("Failed to fetch canteens for Berlin: %v", err)
	}

	for _, c := range canteens {
		if c.City != "Berlin" {
			t.Errorf("Expected only Berlin canteens, got %q in %q", c.Name, c.City)
		}
	}
}

// TestIntegration_FetchCanteen pulls a single well-known canteen by id.
func TestIntegration_FetchCanteen(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	// ID 1 has been a stable canteen on openmensa.org for years.
	canteen, err := client.FetchCanteen(context.Background(), 1)
	if err != nil {
		t.Fatalf("Failed to fetch canteen 1: %v", err)
	}
	if canteen == nil {
		t.Fatalf("Canteen 1 disappeared from the API")
	}
	if canteen.Name == "" {
		t.Errorf("Canteen 1 has no name")
	}
}

// TestIntegration_FetchMeals connects to the API to pull a specific day's menu.
func TestIntegration_FetchMeals(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	// Grab today's menu for canteen 1.
	// Some days (like Sunday) it might be closed, so we mostly check for no HTTP/JSON errors.
	today := time.Now().Format("2006-01-02")
	meals, err := client.FetchMeals(context.Background(), Canteen{ID: 1}, today)

	if err != nil {
		// A 404 is technically valid if the canteen is legitimately closed today
		// (e.g. Sunday/Holiday), but decoding shouldn't fail on a 200.
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || !statusErr.NotFound() {
			t.Fatalf("Failed to fetch meals with unexpected error: %v", err)
		}
	} else {
		// An open day may still publish an empty list, that is fine. Spot-check
		// whatever came back.
		for _, meal := range meals {
			if meal.Name == "" {
				t.Errorf("Meal %d has no name", meal.ID)
			}
		}
	}
}
