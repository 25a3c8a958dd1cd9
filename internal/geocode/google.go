package geocode

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

const requestTimeout = time.Second

// GoogleGeocoder — геокодер на основе Google Maps Geocoding API.
// Каждый вызов — один запрос с таймаутом, без повторов и кэширования.
type GoogleGeocoder struct {
	client  *maps.Client
	timeout time.Duration
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("создание клиента Google Maps: %w", err)
	}
	return &GoogleGeocoder{client: client, timeout: requestTimeout}, nil
}

// Geocode возвращает координаты первого результата геокодирования.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := results[0].Geometry.Location
	return &Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
