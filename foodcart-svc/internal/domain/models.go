package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	SpecialStatus bool            `json:"special_status"`
	Description   string          `json:"description"`
	Category      *Category       `json:"category"`
	Image         string          `json:"image"`
}

type Restaurant struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

// MenuItem links a restaurant to a product it can sell.
type MenuItem struct {
	RestaurantID int  `json:"restaurant_id"`
	ProductID    int  `json:"product_id"`
	Availability bool `json:"availability"`
}

// MenuEntry is an available menu row joined with its restaurant.
type MenuEntry struct {
	Restaurant Restaurant
	ProductID  int
}

type Order struct {
	ID           int         `json:"id"`
	FirstName    string      `json:"firstname"`
	LastName     string      `json:"lastname"`
	PhoneNumber  string      `json:"phonenumber"`
	Address      string      `json:"address"`
	Status       OrderStatus `json:"status"`
	Payment      string      `json:"payment"`
	Comment      string      `json:"comment"`
	RestaurantID *int        `json:"restaurant_id"`
	CreatedAt    time.Time   `json:"created_at"`
	CalledAt     *time.Time  `json:"called_at"`
	DeliveredAt  *time.Time  `json:"delivered_at"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID int             `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// TotalPrice sums the frozen item prices.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ProductIDs returns the distinct product ids of the order in first-seen order.
func (o Order) ProductIDs() []int {
	seen := make(map[int]struct{}, len(o.Items))
	ids := make([]int, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// OrderIntent is a validated order submission ready to be persisted.
type OrderIntent struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Items       []IntentItem
}

type IntentItem struct {
	ProductID int `json:"product"`
	Quantity  int `json:"quantity"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodeEntry is a cached lookup. A nil Coordinates is a confirmed negative.
type GeocodeEntry struct {
	Address     string
	Coordinates *Coordinates
}

type RestaurantDistance struct {
	Name       string   `json:"name"`
	DistanceKm *float64 `json:"distance_km"`
}

type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

const EventOrderCreated = "order_created"

type OrderEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
