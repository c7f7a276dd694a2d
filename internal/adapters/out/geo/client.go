// Package geo looks up addresses and coordinates through a Nominatim-style
// geocoding service. Lookups are best-effort UI helpers: callers treat a
// failure as "no suggestion", never as a hard error on the order flow.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"
)

const (
	defaultTimeout = 8 * time.Second

	// searchLimit caps address suggestions per query.
	searchLimit = 5

	// reverseZoom asks for building-level precision.
	reverseZoom = 18
)

// Place is one geocoding result: a human-readable address with its
// coordinates.
type Place struct {
	DisplayName string
	Location    kernel.GeoPoint
}

// Client talks to a Nominatim-compatible geocoding server.
type Client struct {
	baseURL     string
	countryCode string
	language    string
	httpc       *http.Client
}

// NewClient creates a geocoding client. countryCode narrows search results
// (e.g. "th"); language sets the Accept-Language header for display names.
func NewClient(baseURL, countryCode, language string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("geo base URL")
	}

	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		language:    language,
		httpc:       &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Reverse resolves coordinates to a display address.
func (c *Client) Reverse(ctx context.Context, point kernel.GeoPoint) (string, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lng(), 'f', -1, 64))
	query.Set("zoom", strconv.Itoa(reverseZoom))
	query.Set("addressdetails", "1")

	var result struct {
		DisplayName string `json:"display_name"`
	}
	if err := c.get(ctx, "/reverse", query, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", errs.NewObjectNotFoundError("address", fmt.Sprintf("%f,%f", point.Lat(), point.Lng()))
	}
	return result.DisplayName, nil
}

// Search resolves a free-text address query to candidate places.
func (c *Client) Search(ctx context.Context, text string) ([]Place, error) {
	if text == "" {
		return nil, errs.NewValueIsRequiredError("query")
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", text)
	query.Set("limit", strconv.Itoa(searchLimit))
	query.Set("addressdetails", "1")
	if c.countryCode != "" {
		query.Set("countrycodes", c.countryCode)
	}

	var results []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := c.get(ctx, "/search", query, &results); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		point, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			continue
		}
		places = append(places, Place{DisplayName: r.DisplayName, Location: point})
	}

	return places, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errs.NewTransportFailureError(path, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewTransportFailureError(path, err)
	}
	return nil
}
