package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func testIntent() domain.OrderIntent {
	return domain.OrderIntent{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		PhoneNumber: "+79161234567",
		Address:     "Moscow, Tverskaya 1",
		Items: []domain.IntentItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupRepo(t)

	for range schemaStatements {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS product_categories").
		WillReturnError(errors.New("permission denied"))

	err := repo.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Ivan", "Petrov", "+79161234567", "Moscow, Tverskaya 1", "unprocessed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(7, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow("350.50"))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(7, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow("99.00"))
	mock.ExpectCommit()

	order, err := repo.CreateOrder(context.Background(), testIntent())
	require.NoError(t, err)

	assert.Equal(t, 7, order.ID)
	assert.Equal(t, domain.StatusUnprocessed, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.RequireFromString("350.50").Equal(order.Items[0].Price))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("99").Equal(order.Items[1].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_VanishedProductRollsBack(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(7, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"price"}))
	mock.ExpectRollback()

	order, err := repo.CreateOrder(context.Background(), testIntent())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrProductVanished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_InsertFailureRollsBack(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), testIntent())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProductVanished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistingProductIDs(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM products WHERE id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	existing, err := repo.ExistingProductIDs(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 3: true}, existing)
}

func TestListAvailableProducts(t *testing.T) {
	repo, mock := setupRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "special_status", "description", "image", "cid", "cname"}).
		AddRow(1, "Borscht", "350.00", true, "Beet soup", "borscht.png", 4, "Soups").
		AddRow(2, "Water", "50.00", false, "", "", nil, nil)
	mock.ExpectQuery("WHERE EXISTS").WillReturnRows(rows)

	products, err := repo.ListAvailableProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, &domain.Category{ID: 4, Name: "Soups"}, products[0].Category)
	assert.Nil(t, products[1].Category)
	assert.Equal(t, "350.00", products[0].Price.StringFixed(2))
}

func TestListAvailableMenu(t *testing.T) {
	repo, mock := setupRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "address", "contact_phone", "product_id"}).
		AddRow(1, "Alpha", "Moscow, Arbat 1", "", 1).
		AddRow(1, "Alpha", "Moscow, Arbat 1", "", 2)
	mock.ExpectQuery("FROM restaurant_menu_items mi").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	entries, err := repo.ListAvailableMenu(context.Background(), []int{1, 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alpha", entries[1].Restaurant.Name)
	assert.Equal(t, 2, entries[1].ProductID)
}

func orderRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone_number", "address", "status",
		"payment", "comment", "restaurant_id", "created_at", "called_at", "delivered_at"})
}

func TestGetOrder(t *testing.T) {
	repo, mock := setupRepo(t)
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(3).
		WillReturnRows(orderRow().AddRow(3, "Ivan", "Petrov", "+79161234567", "Moscow", "unprocessed",
			"", "", 2, createdAt, nil, nil))
	mock.ExpectQuery("FROM order_items").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "price"}).
			AddRow(3, 1, 2, "100.00"))

	order, err := repo.GetOrder(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, order.RestaurantID)
	assert.Equal(t, 2, *order.RestaurantID)
	assert.Nil(t, order.DeliveredAt)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "200", order.TotalPrice().String())
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_Empty(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(orderRow())

	orders, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		to       domain.OrderStatus
		affected int64
		want     bool
	}{
		{"moved", domain.StatusRestaurantConfirmed, 1, true},
		{"completed stamps delivery", domain.StatusCompleted, 1, true},
		{"status changed concurrently", domain.StatusDeliveryStarted, 0, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)

			mock.ExpectExec("UPDATE orders").
				WithArgs(string(testCase.to), 5, "unprocessed", testCase.to == domain.StatusCompleted).
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))

			ok, err := repo.UpdateOrderStatus(context.Background(), 5, domain.StatusUnprocessed, testCase.to)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, ok)
		})
	}
}

func TestAssignRestaurant_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("UPDATE orders SET restaurant_id").
		WithArgs(4, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.AssignRestaurant(context.Background(), 5, 4), domain.ErrNotFound)
}
