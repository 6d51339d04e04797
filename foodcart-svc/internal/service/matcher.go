package service

import (
	"sort"

	"foodcart/foodcart-svc/internal/domain"
)

// MatchRestaurants returns the restaurants whose menu rows cover every
// distinct product in productIDs, ordered by name and then id.
func MatchRestaurants(menu []domain.MenuEntry, productIDs []int) []domain.Restaurant {
	wanted := make(map[int]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	if len(wanted) == 0 {
		return []domain.Restaurant{}
	}

	type coverage struct {
		restaurant domain.Restaurant
		products   map[int]struct{}
	}
	byRestaurant := map[int]*coverage{}
	for _, entry := range menu {
		if _, ok := wanted[entry.ProductID]; !ok {
			continue
		}
		c, ok := byRestaurant[entry.Restaurant.ID]
		if !ok {
			c = &coverage{restaurant: entry.Restaurant, products: map[int]struct{}{}}
			byRestaurant[entry.Restaurant.ID] = c
		}
		c.products[entry.ProductID] = struct{}{}
	}

	matched := []domain.Restaurant{}
	for _, c := range byRestaurant {
		if len(c.products) == len(wanted) {
			matched = append(matched, c.restaurant)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}
