package service

import (
	"context"
	"log"
	"strings"

	"foodcart/foodcart-svc/internal/domain"
)

// GeocodeCache resolves addresses through a persistent store and calls the
// geocoder only on a miss. Failed lookups are stored as negative entries.
type GeocodeCache struct {
	store    CoordinateStore
	geocoder Geocoder
}

func NewGeocodeCache(store CoordinateStore, geocoder Geocoder) *GeocodeCache {
	return &GeocodeCache{store: store, geocoder: geocoder}
}

func (c *GeocodeCache) Resolve(ctx context.Context, address string) (domain.Coordinates, bool) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, false
	}

	entry, err := c.store.GetLocation(ctx, address)
	if err != nil {
		log.Printf("WARNING: geocode cache read %q: %v", address, err)
	}
	if entry != nil {
		if entry.Coordinates == nil {
			return domain.Coordinates{}, false
		}
		return *entry.Coordinates, true
	}

	coords, err := c.geocoder.Geocode(ctx, address)
	if err != nil {
		// An abandoned request says nothing about the address.
		if ctx.Err() != nil {
			return domain.Coordinates{}, false
		}
		log.Printf("geocode %q failed, caching negative result: %v", address, err)
		c.save(ctx, domain.GeocodeEntry{Address: address})
		return domain.Coordinates{}, false
	}

	c.save(ctx, domain.GeocodeEntry{Address: address, Coordinates: &coords})
	return coords, true
}

func (c *GeocodeCache) save(ctx context.Context, entry domain.GeocodeEntry) {
	if err := c.store.SaveLocation(ctx, entry); err != nil {
		log.Printf("WARNING: geocode cache write %q: %v", entry.Address, err)
	}
}

var _ Resolver = (*GeocodeCache)(nil)

type memoResult struct {
	coords domain.Coordinates
	ok     bool
}

// MemoResolver remembers answers for the lifetime of one request. It is not
// safe for concurrent use.
type MemoResolver struct {
	next Resolver
	seen map[string]memoResult
}

func NewMemoResolver(next Resolver) *MemoResolver {
	return &MemoResolver{next: next, seen: map[string]memoResult{}}
}

func (m *MemoResolver) Resolve(ctx context.Context, address string) (domain.Coordinates, bool) {
	if res, ok := m.seen[address]; ok {
		return res.coords, res.ok
	}
	coords, ok := m.next.Resolve(ctx, address)
	m.seen[address] = memoResult{coords: coords, ok: ok}
	return coords, ok
}

var _ Resolver = (*MemoResolver)(nil)
