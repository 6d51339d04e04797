package storage

import (
	"context"
	"database/sql"
	"errors"

	"foodcart/foodcart-svc/internal/domain"
)

// GetLocation returns nil without error when the address was never looked up.
func (r *PostgresRepository) GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error) {
	var lat, lon sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		"SELECT lat, lon FROM locations WHERE address = $1", address,
	).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry := &domain.GeocodeEntry{Address: address}
	if lat.Valid && lon.Valid {
		entry.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
	}
	return entry, nil
}

func (r *PostgresRepository) SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error {
	var lat, lon sql.NullFloat64
	if entry.Coordinates != nil {
		lat = sql.NullFloat64{Float64: entry.Coordinates.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: entry.Coordinates.Lon, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO locations (address, lat, lon)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO UPDATE
		SET lat = EXCLUDED.lat, lon = EXCLUDED.lon, updated_at = NOW()`,
		entry.Address, lat, lon)
	return err
}
