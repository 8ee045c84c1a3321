// Package geocode wraps the Google Maps geocoding API.
//
// Every resolver returns a Result with OK=false when the geocoder had no
// match for the input; transport and API failures come back as errors.
// Callers decide whether a miss is fatal — organization writes proceed
// without coordinates, they just log the degradation.
package geocode

import (
	"context"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// Result is a resolved place. OK distinguishes "no match" from success;
// errors are reported separately.
type Result struct {
	Lat     float64
	Lng     float64
	Address string
	OK      bool
}

// Geocoder resolves addresses and place IDs. Satisfied by *Client and by
// test stubs.
type Geocoder interface {
	ResolveAddress(ctx context.Context, address string) (Result, error)
	ResolvePlaceAddress(ctx context.Context, placeID string) (Result, error)
	ResolvePlaceLocation(ctx context.Context, placeID string) (Result, error)
}

// Client is a Geocoder backed by the official Google Maps client.
type Client struct {
	mc  *maps.Client
	log *zap.Logger
}

// New builds a Client with the given API key.
func New(apiKey string, logger *zap.Logger) (*Client, error) {
	mc, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{mc: mc, log: logger}, nil
}

// ResolveAddress geocodes a street address to coordinates, using the first
// result the API returns.
func (c *Client) ResolveAddress(ctx context.Context, address string) (Result, error) {
	if address == "" {
		return Result{}, nil
	}
	results, err := c.mc.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Result{}, err
	}
	if len(results) == 0 {
		c.log.Info("geocode: no results for address", zap.String("address", address))
		return Result{}, nil
	}
	loc := results[0].Geometry.Location
	return Result{
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Address: results[0].FormattedAddress,
		OK:      true,
	}, nil
}

// ResolvePlaceAddress resolves a place ID to its formatted address.
func (c *Client) ResolvePlaceAddress(ctx context.Context, placeID string) (Result, error) {
	return c.resolvePlace(ctx, placeID)
}

// ResolvePlaceLocation resolves a place ID to a lat/lng pair.
func (c *Client) ResolvePlaceLocation(ctx context.Context, placeID string) (Result, error) {
	return c.resolvePlace(ctx, placeID)
}

func (c *Client) resolvePlace(ctx context.Context, placeID string) (Result, error) {
	if placeID == "" {
		return Result{}, nil
	}
	results, err := c.mc.Geocode(ctx, &maps.GeocodingRequest{PlaceID: placeID})
	if err != nil {
		return Result{}, err
	}
	if len(results) == 0 {
		c.log.Info("geocode: no results for place", zap.String("place_id", placeID))
		return Result{}, nil
	}
	loc := results[0].Geometry.Location
	return Result{
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Address: results[0].FormattedAddress,
		OK:      true,
	}, nil
}

// Disabled is a Geocoder that never resolves anything. Used when no API
// key is configured so organization writes still work.
type Disabled struct{}

func (Disabled) ResolveAddress(context.Context, string) (Result, error)       { return Result{}, nil }
func (Disabled) ResolvePlaceAddress(context.Context, string) (Result, error)  { return Result{}, nil }
func (Disabled) ResolvePlaceLocation(context.Context, string) (Result, error) { return Result{}, nil }
