package openmensa

// CategoryMenu holds the meals of one category, in API order.
type CategoryMenu struct {
	Category string
	Meals    []Meal
}

// GroupMealsByCategory groups meals by their category for display layers.
// Categories keep the order of their first appearance and meals keep the
// API order within each category, so the grouped view never reorders what
// the canteen published. Purely local, no network involved.
func GroupMealsByCategory(meals []Meal) []CategoryMenu {
	groups := make(map[string]*CategoryMenu)
	var order []string // to maintain order of first appearance

	for _, meal := range meals {
		if _, exists := groups[meal.Category]; !exists {
			groups[meal.Category] = &CategoryMenu{Category: meal.Category}
			order = append(order, meal.Category)
		}
		groups[meal.Category].Meals = append(groups[meal.Category].Meals, meal)
	}

	var result []CategoryMenu
	for _, category := range order {
		result = append(result, *groups[category])
	}
	return result
}
