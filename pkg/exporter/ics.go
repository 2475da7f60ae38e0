package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/floork/mensa-cli-backend/pkg/openmensa"

	ics "github.com/arran4/golang-ical"
)

// MenuDay pairs a date (YYYY-MM-DD, as the API uses it) with the meals
// offered on that day.
type MenuDay struct {
	Date  string
	Meals []openmensa.Meal
}

// GenerateICS creates an ICS file with one all-day event per menu day and
// writes it to the provided writer
func GenerateICS(canteen openmensa.Canteen, days []MenuDay, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, day := range days {
		if len(day.Meals) == 0 {
			continue // Nothing served, nothing to export
		}

		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue // Skip malformed dates
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", date.Format("20060102"), canteen.ID))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Menu: %s", canteen.Name))
		if canteen.Address != "" {
			event.SetLocation(canteen.Address)
		}

		event.SetDescription(describeMenu(day.Meals))
	}

	return cal.SerializeTo(w)
}

// describeMenu renders the day's meals grouped by category, one meal per line.
func describeMenu(meals []openmensa.Meal) string {
	var sb strings.Builder
	for _, group := range openmensa.GroupMealsByCategory(meals) {
		sb.WriteString(group.Category + ":\n")
		for _, meal := range group.Meals {
			if meal.Prices.Students != nil {
				sb.WriteString(fmt.Sprintf("- %s (%.2f €)\n", meal.Name, *meal.Prices.Students))
			} else {
				sb.WriteString(fmt.Sprintf("- %s\n", meal.Name))
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
