package tests

import (
	"context"
	"errors"
	"testing"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/mocks"
	"foodcart/foodcart-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var moscow = domain.Coordinates{Lat: 55.75, Lon: 37.62}

func TestGeocodeCache_RepeatedAddressCallsGeocoderOnce(t *testing.T) {
	geocoder := mocks.NewGeocoder(t)
	geocoder.On("Geocode", mock.Anything, "Moscow").Return(moscow, nil).Once()
	cache := service.NewGeocodeCache(newMemoryStore(), geocoder)

	for range 2 {
		coords, ok := cache.Resolve(context.Background(), "Moscow")
		require.True(t, ok)
		assert.Equal(t, moscow, coords)
	}
}

func TestGeocodeCache_FailureIsCachedAsNegative(t *testing.T) {
	geocoder := mocks.NewGeocoder(t)
	geocoder.On("Geocode", mock.Anything, "Atlantis").
		Return(domain.Coordinates{}, errors.New("address not found")).Once()
	store := newMemoryStore()
	cache := service.NewGeocodeCache(store, geocoder)

	for range 2 {
		_, ok := cache.Resolve(context.Background(), "Atlantis")
		assert.False(t, ok)
	}

	entry, err := store.GetLocation(context.Background(), "Atlantis")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Nil(t, entry.Coordinates)
}

func TestGeocodeCache_StoreErrorsAreAMiss(t *testing.T) {
	store := mocks.NewCoordinateStore(t)
	store.On("GetLocation", mock.Anything, "Moscow").Return(nil, assert.AnError).Once()
	store.On("SaveLocation", mock.Anything, mock.Anything).Return(assert.AnError).Once()
	geocoder := mocks.NewGeocoder(t)
	geocoder.On("Geocode", mock.Anything, "Moscow").Return(moscow, nil).Once()
	cache := service.NewGeocodeCache(store, geocoder)

	coords, ok := cache.Resolve(context.Background(), "Moscow")
	assert.True(t, ok)
	assert.Equal(t, moscow, coords)
}

func TestGeocodeCache_CancelledLookupIsNotCached(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	geocoder := mocks.NewGeocoder(t)
	geocoder.On("Geocode", mock.Anything, "Moscow").Return(domain.Coordinates{}, context.Canceled).Once()
	store := newMemoryStore()
	cache := service.NewGeocodeCache(store, geocoder)

	_, ok := cache.Resolve(ctx, "Moscow")
	assert.False(t, ok)

	entry, err := store.GetLocation(context.Background(), "Moscow")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGeocodeCache_BlankAddressSkipsLookup(t *testing.T) {
	cache := service.NewGeocodeCache(mocks.NewCoordinateStore(t), mocks.NewGeocoder(t))

	_, ok := cache.Resolve(context.Background(), "  ")
	assert.False(t, ok)
}

func TestMemoResolver_AsksOncePerAddress(t *testing.T) {
	next := mocks.NewResolver(t)
	next.On("Resolve", mock.Anything, "Moscow").Return(moscow, true).Once()
	next.On("Resolve", mock.Anything, "Atlantis").Return(domain.Coordinates{}, false).Once()
	memo := service.NewMemoResolver(next)
	ctx := context.Background()

	for range 3 {
		_, ok := memo.Resolve(ctx, "Moscow")
		assert.True(t, ok)
		_, ok = memo.Resolve(ctx, "Atlantis")
		assert.False(t, ok)
	}
}
