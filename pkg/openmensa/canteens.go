package openmensa

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FetchCanteens retrieves the complete canteen catalogue in the order the
// service returns it. The catalogue arrives in a single response; there is
// no pagination loop.
func (c *Client) FetchCanteens(ctx context.Context) ([]Canteen, error) {
	url := fmt.Sprintf("%s/canteens", c.baseURL())
	return fetchJSON[[]Canteen](ctx, c, url)
}

// FetchCanteen retrieves a single canteen by its id. A 404 from the API
// means the id is unknown and yields (nil, nil): absence is an expected
// outcome, distinct from transport or decode failures.
func (c *Client) FetchCanteen(ctx context.Context, id uint32) (*Canteen, error) {
	url := fmt.Sprintf("%s/canteens/%d", c.baseURL(), id)

	canteen, err := fetchJSON[Canteen](ctx, c, url)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.NotFound() {
			return nil, nil
		}
		return nil, err
	}

	return &canteen, nil
}

// FetchCanteensByIDs looks up one canteen per id. The lookups run
// concurrently, but the result keeps the order of ids; ids the API does
// not know are simply omitted. The call fails fast: the first transport,
// status, or decode failure cancels the remaining lookups and discards any
// partial results. An empty id list returns without a network call.
func (c *Client) FetchCanteensByIDs(ctx context.Context, ids []uint32) ([]Canteen, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// Joined by index so completion order never leaks into the result order
	found := make([]*Canteen, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id // per-iteration copies: required while go.mod targets go < 1.22
		g.Go(func() error {
			canteen, err := c.FetchCanteen(ctx, id)
			if err != nil {
				return err
			}
			found[i] = canteen
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	canteens := make([]Canteen, 0, len(ids))
	for _, canteen := range found {
		if canteen != nil {
			canteens = append(canteens, *canteen)
		}
	}
	return canteens, nil
}

// FetchCanteenByName retrieves the first canteen whose name matches
// exactly, in catalogue order; duplicate names resolve to the earliest
// entry. No match yields (nil, nil). The API has no name-search endpoint,
// so this fetches the catalogue and filters client-side.
func (c *Client) FetchCanteenByName(ctx context.Context, name string) (*Canteen, error) {
	canteens, err := c.FetchCanteens(ctx)
	if err != nil {
		return nil, err
	}

	for _, canteen := range canteens {
		if canteen.Name == name {
			return &canteen, nil
		}
	}
	return nil, nil
}

// FetchCanteensByNames retrieves the first matching canteen per requested
// name, in the order the names were given; names without a match are
// omitted. One catalogue fetch serves all names.
func (c *Client) FetchCanteensByNames(ctx context.Context, names []string) ([]Canteen, error) {
	if len(names) == 0 {
		return nil, nil
	}

	canteens, err := c.FetchCanteens(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Canteen
	for _, name := range names {
		for _, canteen := range canteens {
			if canteen.Name == name {
				matches = append(matches, canteen)
				break
			}
		}
	}
	return matches, nil
}

// FetchCanteensByCity retrieves every canteen whose city matches exactly,
// in catalogue order. Matching is case-sensitive and client-side.
func (c *Client) FetchCanteensByCity(ctx context.Context, city string) ([]Canteen, error) {
	canteens, err := c.FetchCanteens(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Canteen
	for _, canteen := range canteens {
		if canteen.City == city {
			matches = append(matches, canteen)
		}
	}
	return matches, nil
}

// FetchCanteensByCities retrieves the union of matches across all
// requested cities, in catalogue order. A canteen has exactly one city, so
// no deduplication happens.
func (c *Client) FetchCanteensByCities(ctx context.Context, cities []string) ([]Canteen, error) {
	if len(cities) == 0 {
		return nil, nil
	}

	canteens, err := c.FetchCanteens(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(cities))
	for _, city := range cities {
		wanted[city] = true
	}

	var matches []Canteen
	for _, canteen := range canteens {
		if wanted[canteen.City] {
			matches = append(matches, canteen)
		}
	}
	return matches, nil
}
