package cmd

import (
	"database/sql"
	"log"
	"net/http"

	"foodcart/config"
	"foodcart/foodcart-svc/internal/geocoding"
	"foodcart/foodcart-svc/internal/service"
	"foodcart/foodcart-svc/internal/storage"

	"github.com/redis/go-redis/v9"
)

// deps holds the shared infrastructure every subcommand builds on.
type deps struct {
	db       *sql.DB
	redis    *redis.Client
	repo     *storage.PostgresRepository
	geocache *service.GeocodeCache
}

func newDeps(s config.Settings) *deps {
	db := config.MustInitPostgres(s)
	d := &deps{db: db, repo: storage.NewPostgresRepository(db)}

	var store service.CoordinateStore = d.repo
	if d.redis = config.InitRedis(s); d.redis != nil {
		store = storage.NewTieredStore(storage.NewRedisGeocodeCache(d.redis, s.GeocodeRedisTTL), d.repo)
	} else {
		log.Println("[foodcart-svc] REDIS_HOST not set, geocode cache uses Postgres only")
	}

	if s.YandexAPIKey == "" {
		log.Println("WARNING: YANDEX_API_KEY is empty, geocoding requests will fail")
	}
	geocoder := geocoding.NewYandexClient(geocoding.Config{
		BaseURL: s.GeocoderURL,
		APIKey:  s.YandexAPIKey,
		Timeout: s.GeocoderTimeout,
	}, &http.Client{})
	d.geocache = service.NewGeocodeCache(store, geocoder)
	return d
}

func (d *deps) Close() {
	if d.redis != nil {
		d.redis.Close()
	}
	d.db.Close()
}
