package service

import (
	"context"
	"fmt"

	"foodcart/foodcart-svc/internal/domain"
)

type ProductView struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Price         string           `json:"price"`
	SpecialStatus bool             `json:"special_status"`
	Description   string           `json:"description"`
	Category      *domain.Category `json:"category"`
	Image         string           `json:"image"`
}

type MatrixRestaurant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MatrixProduct struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Price        string           `json:"price"`
	Category     *domain.Category `json:"category"`
	Availability []bool           `json:"availability"`
}

// AvailabilityMatrix holds one availability flag per restaurant for every
// product, in the order of Restaurants.
type AvailabilityMatrix struct {
	Restaurants []MatrixRestaurant `json:"restaurants"`
	Products    []MatrixProduct    `json:"products"`
}

type CatalogService struct {
	products    ProductRepository
	restaurants RestaurantRepository
	mediaURL    string
	staticURL   string
}

func NewCatalogService(products ProductRepository, restaurants RestaurantRepository, mediaURL, staticURL string) *CatalogService {
	return &CatalogService{
		products:    products,
		restaurants: restaurants,
		mediaURL:    mediaURL,
		staticURL:   staticURL,
	}
}

func (s *CatalogService) AvailableProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.products.ListAvailableProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price.StringFixed(2),
			SpecialStatus: p.SpecialStatus,
			Description:   p.Description,
			Category:      p.Category,
			Image:         s.mediaURL + p.Image,
		})
	}
	return views, nil
}

func (s *CatalogService) Banners() []domain.Banner {
	return []domain.Banner{
		{Title: "Burger", Src: s.staticURL + "burger.jpg", Text: "Tasty Burger at your door step"},
		{Title: "Spices", Src: s.staticURL + "food.jpg", Text: "All Cuisines"},
		{Title: "New York", Src: s.staticURL + "tasty.jpg", Text: "Food is incomplete without a tasty dessert"},
	}
}

func (s *CatalogService) AvailabilityMatrix(ctx context.Context) (*AvailabilityMatrix, error) {
	restaurants, err := s.restaurants.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	items, err := s.restaurants.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	type key struct{ restaurant, product int }
	availability := make(map[key]bool, len(items))
	for _, item := range items {
		availability[key{item.RestaurantID, item.ProductID}] = item.Availability
	}

	matrix := &AvailabilityMatrix{
		Restaurants: make([]MatrixRestaurant, 0, len(restaurants)),
		Products:    make([]MatrixProduct, 0, len(products)),
	}
	for _, rest := range restaurants {
		matrix.Restaurants = append(matrix.Restaurants, MatrixRestaurant{ID: rest.ID, Name: rest.Name})
	}
	for _, p := range products {
		row := MatrixProduct{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price.StringFixed(2),
			Category:     p.Category,
			Availability: make([]bool, len(restaurants)),
		}
		for i, rest := range restaurants {
			row.Availability[i] = availability[key{rest.ID, p.ID}]
		}
		matrix.Products = append(matrix.Products, row)
	}
	return matrix, nil
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurants(ctx)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
