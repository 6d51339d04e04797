package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"
)

type Store interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	CreateProduct(ctx context.Context, product *domain.Product) error
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	SetMenuItem(ctx context.Context, item domain.MenuItem) error
}

type Options struct {
	Restaurants int
	Products    int
	Seed        int64
}

type Summary struct {
	Categories  int
	Products    int
	Restaurants int
	MenuItems   int
}

var categoryNames = []string{"Burgers", "Pizza", "Soups", "Salads", "Desserts", "Drinks"}

// Run fills the store with demo categories, products, restaurants and
// menus drawn from a faker seeded with opts.Seed.
func Run(ctx context.Context, store Store, opts Options) (Summary, error) {
	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))
	var summary Summary

	categories := make([]domain.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := domain.Category{Name: name}
		if err := store.CreateCategory(ctx, &category); err != nil {
			return summary, fmt.Errorf("create category %s: %w", name, err)
		}
		categories = append(categories, category)
		summary.Categories++
	}

	products := make([]domain.Product, 0, opts.Products)
	for i := 0; i < opts.Products; i++ {
		category := categories[i%len(categories)]
		product := domain.Product{
			Name:          productName(fake.Lorem().Word(), category.Name),
			Price:         decimal.NewFromFloat(fake.Float64(2, 90, 990)).Round(2),
			SpecialStatus: fake.Bool(),
			Description:   fake.Lorem().Sentence(10),
			Category:      &category,
			Image:         strings.ToLower(category.Name) + ".jpg",
		}
		if err := store.CreateProduct(ctx, &product); err != nil {
			return summary, fmt.Errorf("create product %s: %w", product.Name, err)
		}
		products = append(products, product)
		summary.Products++
	}

	for i := 0; i < opts.Restaurants; i++ {
		rest := domain.Restaurant{
			Name:         fake.Company().Name(),
			Address:      fake.Address().Address(),
			ContactPhone: fake.Phone().Number(),
		}
		if err := store.CreateRestaurant(ctx, &rest); err != nil {
			return summary, fmt.Errorf("create restaurant %s: %w", rest.Name, err)
		}
		summary.Restaurants++

		for _, product := range products {
			item := domain.MenuItem{RestaurantID: rest.ID, ProductID: product.ID, Availability: fake.Bool()}
			if err := store.SetMenuItem(ctx, item); err != nil {
				return summary, fmt.Errorf("set menu item: %w", err)
			}
			summary.MenuItems++
		}
	}
	return summary, nil
}

func productName(word, category string) string {
	if word == "" {
		return category
	}
	name := strings.ToUpper(word[:1]) + word[1:] + " " + strings.TrimSuffix(strings.ToLower(category), "s")
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}
