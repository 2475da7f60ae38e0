package openmensa

import "fmt"

// Canteen represents a dining facility tracked by OpenMensa
type Canteen struct {
	ID          uint32       `json:"id"`
	Name        string       `json:"name"`
	City        string       `json:"city"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// String renders the canteen the way list output shows it
func (c Canteen) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.City)
}

// Coordinates is the latitude/longitude pair the API serves as a
// two-element array. It is nil on Canteen when no geo-data exists.
type Coordinates [2]float64

// Latitude returns the first element of the pair
func (c Coordinates) Latitude() float64 { return c[0] }

// Longitude returns the second element of the pair
func (c Coordinates) Longitude() float64 { return c[1] }

// Prices holds the cost of a meal per price tier. Any tier the canteen
// does not publish stays nil; no tier depends on another.
type Prices struct {
	Students  *float64 `json:"students,omitempty"`
	Employees *float64 `json:"employees,omitempty"`
	Pupils    *float64 `json:"pupils,omitempty"`
	Others    *float64 `json:"others,omitempty"`
}

// Meal represents a single menu item served by a canteen on one date
type Meal struct {
	ID       uint64   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Prices   Prices   `json:"prices"`
	Notes    []string `json:"notes"`
}

// String renders the meal the way list output shows it
func (m Meal) String() string {
	return fmt.Sprintf("%s [%s]", m.Name, m.Category)
}
