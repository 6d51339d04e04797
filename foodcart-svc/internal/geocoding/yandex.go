package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart/foodcart-svc/internal/domain"
)

var ErrAddressNotFound = errors.New("address not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// YandexClient calls the Yandex Geocoder HTTP API.
type YandexClient struct {
	config Config
	client HTTPClient
}

func NewYandexClient(config Config, client HTTPClient) *YandexClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &YandexClient{config: config, client: client}
}

type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode returns the coordinates of the first match for address.
func (c *YandexClient) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("geocode", address)
	query.Set("apikey", c.config.APIKey)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: unexpected status %d", address, resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	members := body.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return domain.Coordinates{}, ErrAddressNotFound
	}
	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos reads the "lon lat" pair Yandex returns.
func parsePos(pos string) (domain.Coordinates, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return domain.Coordinates{}, fmt.Errorf("malformed pos %q", pos)
	}
	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed pos %q: %w", pos, err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed pos %q: %w", pos, err)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
