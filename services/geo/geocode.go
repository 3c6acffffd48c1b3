package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sagashealth/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Geocoder resolves street addresses to map coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
	HasCredential() bool
}

// defaultBaseURL is the Google Geocoding API endpoint.
const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder calls the Google Geocoding API and caches results in Redis
// keyed by address.
type GoogleGeocoder struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Cache      *redis.Client
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// NewGoogleGeocoder returns a geocoder with a bounded-timeout HTTP client.
func NewGoogleGeocoder(apiKey string, cache *redis.Client, logger *zap.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Cache:      cache,
		CacheTTL:   24 * time.Hour,
		Logger:     logger,
	}
}

// HasCredential reports whether a usable API key is configured. Placeholder
// values from sample configs count as missing, which switches the map
// endpoint to its textual list fallback.
func (g *GoogleGeocoder) HasCredential() bool {
	switch g.APIKey {
	case "", "your_google_maps_api_key_here":
		return false
	}
	return true
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address, consulting the cache first.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	cacheKey := "geocode:" + address
	if g.Cache != nil {
		if cached, err := g.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var coords models.Coordinates
			if err := json.Unmarshal([]byte(cached), &coords); err == nil {
				return &coords, nil
			}
		}
	}

	base := g.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	endpoint := fmt.Sprintf("%s?address=%s&key=%s",
		base, url.QueryEscape(address), url.QueryEscape(g.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, fmt.Errorf("geocoding failed for address %q: %s", address, decoded.Status)
	}

	coords := &models.Coordinates{
		Lat: decoded.Results[0].Geometry.Location.Lat,
		Lng: decoded.Results[0].Geometry.Location.Lng,
	}

	if g.Cache != nil {
		if data, err := json.Marshal(coords); err == nil {
			if err := g.Cache.Set(ctx, cacheKey, data, g.CacheTTL).Err(); err != nil {
				g.Logger.Warn("failed to cache geocoding result", zap.String("address", address), zap.Error(err))
			}
		}
	}
	return coords, nil
}
