package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_categories (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		category_id INTEGER REFERENCES product_categories(id) ON DELETE SET NULL,
		price NUMERIC(8, 2) NOT NULL CHECK (price >= 0),
		image TEXT NOT NULL DEFAULT '',
		special_status BOOLEAN NOT NULL DEFAULT FALSE,
		description VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS products_special_status_idx ON products (special_status)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		address VARCHAR(100) NOT NULL DEFAULT '',
		contact_phone VARCHAR(50) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_menu_items (
		id SERIAL PRIMARY KEY,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		availability BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE (restaurant_id, product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS restaurant_menu_items_availability_idx ON restaurant_menu_items (availability)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		phone_number VARCHAR(32) NOT NULL DEFAULT '',
		address VARCHAR(200) NOT NULL DEFAULT '',
		comment TEXT NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'unprocessed',
		payment VARCHAR(50) NOT NULL DEFAULT '',
		restaurant_id INTEGER REFERENCES restaurants(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		called_at TIMESTAMPTZ,
		delivered_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS orders_status_idx ON orders (status)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		price NUMERIC(8, 2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id SERIAL PRIMARY KEY,
		address VARCHAR(200) NOT NULL UNIQUE,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
