package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const productColumns = `
	SELECT p.id, p.name, p.price, p.special_status, p.description, p.image, c.id, c.name
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id`

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, productColumns+` ORDER BY p.id`)
}

// ListAvailableProducts returns products sold by at least one restaurant.
func (r *PostgresRepository) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, productColumns+`
	WHERE EXISTS (
		SELECT 1 FROM restaurant_menu_items mi
		WHERE mi.product_id = p.id AND mi.availability
	)
	ORDER BY p.id`)
}

func (r *PostgresRepository) queryProducts(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			product      domain.Product
			categoryID   sql.NullInt64
			categoryName sql.NullString
		)
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.SpecialStatus,
			&product.Description, &product.Image, &categoryID, &categoryName); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			product.Category = &domain.Category{ID: int(categoryID.Int64), Name: categoryName.String}
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) ExistingProductIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id FROM products WHERE id = ANY($1)`, pq.Array(toInt64s(ids)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[int]bool, len(ids))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO product_categories (name) VALUES ($1) RETURNING id",
		category.Name,
	).Scan(&category.ID)
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	var categoryID sql.NullInt64
	if product.Category != nil {
		categoryID = sql.NullInt64{Int64: int64(product.Category.ID), Valid: true}
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO products (name, category_id, price, image, special_status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		product.Name, categoryID, product.Price, product.Image, product.SpecialStatus, product.Description,
	).Scan(&product.ID)
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id",
		rest.Name, rest.Address, rest.ContactPhone,
	).Scan(&rest.ID)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, address, contact_phone
		FROM restaurants
		ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// SetMenuItem inserts or updates the (restaurant, product) menu row.
func (r *PostgresRepository) SetMenuItem(ctx context.Context, item domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id) DO UPDATE SET availability = EXCLUDED.availability`,
		item.RestaurantID, item.ProductID, item.Availability)
	return err
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT restaurant_id, product_id, availability FROM restaurant_menu_items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.RestaurantID, &item.ProductID, &item.Availability); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListAvailableMenu returns available menu rows for the given products joined
// with their restaurant, ordered by restaurant name.
func (r *PostgresRepository) ListAvailableMenu(ctx context.Context, productIDs []int) ([]domain.MenuEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.address, r.contact_phone, mi.product_id
		FROM restaurant_menu_items mi
		JOIN restaurants r ON r.id = mi.restaurant_id
		WHERE mi.availability AND mi.product_id = ANY($1)
		ORDER BY r.name, r.id, mi.product_id`, pq.Array(toInt64s(productIDs)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MenuEntry
	for rows.Next() {
		var entry domain.MenuEntry
		rest := &entry.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &entry.ProductID); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CreateOrder writes the order and its items in one transaction. Item prices
// are copied from products inside the same statement that inserts the item.
func (r *PostgresRepository) CreateOrder(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	order := &domain.Order{
		FirstName:   intent.FirstName,
		LastName:    intent.LastName,
		PhoneNumber: intent.PhoneNumber,
		Address:     intent.Address,
		Status:      domain.StatusUnprocessed,
	}
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (first_name, last_name, phone_number, address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		order.FirstName, order.LastName, order.PhoneNumber, order.Address, string(order.Status),
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	order.Items = make([]domain.OrderItem, 0, len(intent.Items))
	for _, item := range intent.Items {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			SELECT $1, id, $3, price FROM products WHERE id = $2
			RETURNING price`,
			order.ID, item.ProductID, item.Quantity,
		).Scan(&price)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("insert item for product %d: %w", item.ProductID, domain.ErrProductVanished)
		}
		if err != nil {
			return nil, fmt.Errorf("insert item for product %d: %w", item.ProductID, err)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return order, nil
}

const orderColumns = `
	SELECT id, first_name, last_name, phone_number, address, status, payment, comment,
		restaurant_id, created_at, called_at, delivered_at
	FROM orders`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order        domain.Order
		restaurantID sql.NullInt64
		calledAt     sql.NullTime
		deliveredAt  sql.NullTime
	)
	if err := row.Scan(&order.ID, &order.FirstName, &order.LastName, &order.PhoneNumber, &order.Address,
		&order.Status, &order.Payment, &order.Comment, &restaurantID, &order.CreatedAt, &calledAt, &deliveredAt); err != nil {
		return order, err
	}
	if restaurantID.Valid {
		id := int(restaurantID.Int64)
		order.RestaurantID = &id
	}
	if calledAt.Valid {
		order.CalledAt = &calledAt.Time
	}
	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}
	return order, nil
}

// ListOrders returns every order, newest first, with its items.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, orderColumns+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	items, err := r.listItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, orderColumns+` WHERE id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, []int{orderID})
	if err != nil {
		return nil, err
	}
	order.Items = items[orderID]
	return &order, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, orderIDs []int) (map[int][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, pq.Array(toInt64s(orderIDs)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

// UpdateOrderStatus moves the order from one status to another. It reports
// false when the order is no longer in the expected status.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID int, from, to domain.OrderStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
			delivered_at = CASE WHEN $4 THEN NOW() ELSE delivered_at END
		WHERE id = $2 AND status = $3`,
		string(to), orderID, string(from), to == domain.StatusCompleted)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresRepository) AssignRestaurant(ctx context.Context, orderID, restaurantID int) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET restaurant_id = $1
		WHERE id = $2 AND EXISTS (SELECT 1 FROM restaurants WHERE id = $1)`,
		restaurantID, orderID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toInt64s(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
