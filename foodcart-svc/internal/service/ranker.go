package service

import (
	"context"
	"math"
	"sort"

	"foodcart/foodcart-svc/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two points in kilometers.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// RankByDistance orders restaurants by distance from customerAddress. Unknown
// distances come last and keep their input order, as do ties.
func RankByDistance(ctx context.Context, resolver Resolver, customerAddress string, restaurants []domain.Restaurant) []domain.RestaurantDistance {
	ranked := make([]domain.RestaurantDistance, 0, len(restaurants))
	if len(restaurants) == 0 {
		return ranked
	}

	customer, customerKnown := resolver.Resolve(ctx, customerAddress)
	for _, rest := range restaurants {
		entry := domain.RestaurantDistance{Name: rest.Name}
		if coords, ok := resolver.Resolve(ctx, rest.Address); ok && customerKnown {
			km := math.Round(HaversineKm(customer, coords)*100) / 100
			entry.DistanceKm = &km
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].DistanceKm, ranked[j].DistanceKm
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})
	return ranked
}
