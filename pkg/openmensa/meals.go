package openmensa

import (
	"context"
	"fmt"
)

// FetchMeals retrieves the meals a canteen serves on a given date, in the
// order the service returns them. Only the canteen's id goes into the
// request; callers may construct the Canteen by hand when they already
// know the id. The date must be in YYYY-MM-DD form and travels to the API
// as-is, so a malformed date surfaces as whatever failure the server
// answers with, not as a client-side validation error. An empty result is
// a valid outcome (canteen closed, or nothing published yet).
func (c *Client) FetchMeals(ctx context.Context, canteen Canteen, date string) ([]Meal, error) {
	url := fmt.Sprintf("%s/canteens/%d/days/%s/meals", c.baseURL(), canteen.ID, date)
	return fetchJSON[[]Meal](ctx, c, url)
}
