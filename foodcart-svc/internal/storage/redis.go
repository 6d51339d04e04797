package storage

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const negativeMarker = "none"

// RedisGeocodeCache keeps geocoder answers in Redis. Negative results are
// stored as a marker so they are not retried until the key expires.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func (c *RedisGeocodeCache) LocationKey(address string) string {
	return "geocode:" + address
}

func (c *RedisGeocodeCache) GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error) {
	val, err := c.Client.Get(ctx, c.LocationKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry := &domain.GeocodeEntry{Address: address}
	if val == negativeMarker {
		return entry, nil
	}
	coords, ok := parseCoordinates(val)
	if !ok {
		return nil, nil
	}
	entry.Coordinates = &coords
	return entry, nil
}

func (c *RedisGeocodeCache) SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error {
	val := negativeMarker
	if entry.Coordinates != nil {
		val = strconv.FormatFloat(entry.Coordinates.Lat, 'f', -1, 64) + "," +
			strconv.FormatFloat(entry.Coordinates.Lon, 'f', -1, 64)
	}
	return c.Client.Set(ctx, c.LocationKey(entry.Address), val, c.TTL).Err()
}

func parseCoordinates(val string) (domain.Coordinates, bool) {
	latRaw, lonRaw, found := strings.Cut(val, ",")
	if !found {
		return domain.Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, true
}

// LocationStore is one tier of the geocode cache.
type LocationStore interface {
	GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error)
	SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error
}

// TieredStore reads the hot tier first and falls back to the cold one.
// Cold hits are copied into the hot tier. Hot tier failures are logged and
// never fail the lookup.
type TieredStore struct {
	Hot  LocationStore
	Cold LocationStore
}

func NewTieredStore(hot, cold LocationStore) *TieredStore {
	return &TieredStore{Hot: hot, Cold: cold}
}

func (s *TieredStore) GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error) {
	entry, err := s.Hot.GetLocation(ctx, address)
	if err != nil {
		log.Printf("WARNING: hot geocode tier read %q: %v", address, err)
	}
	if entry != nil {
		return entry, nil
	}

	entry, err = s.Cold.GetLocation(ctx, address)
	if err != nil || entry == nil {
		return entry, err
	}
	if err := s.Hot.SaveLocation(ctx, *entry); err != nil {
		log.Printf("WARNING: hot geocode tier backfill %q: %v", address, err)
	}
	return entry, nil
}

func (s *TieredStore) SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error {
	if err := s.Cold.SaveLocation(ctx, entry); err != nil {
		return err
	}
	if err := s.Hot.SaveLocation(ctx, entry); err != nil {
		log.Printf("WARNING: hot geocode tier write %q: %v", entry.Address, err)
	}
	return nil
}
