// Package geo talks to the Open-Meteo geocoding and forecast APIs. It is the
// location-resolution collaborator the domain tools depend on: free-text place
// name in, coordinates/timezone/display-name out, with a bounded cache in
// front of the geocoder.
package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/logging"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	defaultCacheSize    = 256
)

// Location is a resolved place: display name, country, timezone and coordinates.
type Location struct {
	Name      string
	Country   string
	Timezone  string
	Latitude  float64
	Longitude float64
}

// DisplayName renders "Name, Country", omitting the country when unknown.
func (l Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}

// CurrentWeather is the current-conditions snapshot for a coordinate pair.
type CurrentWeather struct {
	Temperature   float64
	FeelsLike     float64
	Humidity      float64
	Precipitation float64
	WindSpeed     float64
	WeatherCode   int
	Timezone      string
}

// Options configures a Client.
type Options struct {
	GeocodingURL string
	ForecastURL  string
	CacheSize    int
	Timeout      time.Duration
	RetryCount   int
	Logger       logging.Logger
}

// Client queries Open-Meteo. Geocode results are cached (the same place names
// recur every turn once a location goes sticky), forecast calls are not.
type Client struct {
	http   *resty.Client
	cache  *lru.Cache[string, Location]
	opts   Options
	logger logging.Logger
}

// NewClient builds a Client with retrying HTTP transport and an LRU geocode cache.
func NewClient(optFns ...func(o *Options)) *Client {
	opts := Options{
		GeocodingURL: defaultGeocodingURL,
		ForecastURL:  defaultForecastURL,
		CacheSize:    defaultCacheSize,
		Timeout:      10 * time.Second,
		RetryCount:   2,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")

	cache, _ := lru.New[string, Location](opts.CacheSize)

	return &Client{http: httpClient, cache: cache, opts: opts, logger: opts.Logger}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Timezone  string  `json:"timezone"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode resolves a free-text place name. A name that resolves to nothing
// yields a *core.LocationError; transport failures are wrapped the same way so
// callers only ever deal with one failure kind.
func (c *Client) Geocode(ctx context.Context, name string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, core.NewLocationError(name, "location cannot be empty", nil)
	}

	cacheKey := strings.ToLower(name)
	if loc, ok := c.cache.Get(cacheKey); ok {
		c.logger.Debug("geo.geocode.cache_hit", "location", name)
		return loc, nil
	}

	var out geocodeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"name": name, "count": "1"}).
		SetResult(&out).
		Get(c.opts.GeocodingURL)
	if err != nil {
		return Location{}, core.NewLocationError(name, "geocoding request failed", err)
	}
	if resp.IsError() {
		return Location{}, core.NewLocationError(name, fmt.Sprintf("geocoding API returned %s", resp.Status()), nil)
	}
	if len(out.Results) == 0 {
		return Location{}, core.NewLocationError(name, "no matching place", nil)
	}

	r := out.Results[0]
	loc := Location{Name: r.Name, Country: r.Country, Timezone: r.Timezone, Latitude: r.Latitude, Longitude: r.Longitude}
	c.cache.Add(cacheKey, loc)
	c.logger.Debug("geo.geocode.resolved", "location", name, "name", loc.Name, "timezone", loc.Timezone)
	return loc, nil
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Current  *struct {
		Temperature   float64 `json:"temperature_2m"`
		FeelsLike     float64 `json:"apparent_temperature"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// CurrentWeather fetches current conditions for a coordinate pair.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (CurrentWeather, error) {
	var out forecastResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  fmt.Sprintf("%g", lat),
			"longitude": fmt.Sprintf("%g", lon),
			"current":   "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m",
			"timezone":  "auto",
		}).
		SetResult(&out).
		Get(c.opts.ForecastURL)
	if err != nil {
		return CurrentWeather{}, fmt.Errorf("forecast request failed: %w", err)
	}
	if resp.IsError() {
		return CurrentWeather{}, fmt.Errorf("forecast API returned %s", resp.Status())
	}
	if out.Current == nil {
		return CurrentWeather{}, fmt.Errorf("forecast response missing current conditions")
	}

	tz := out.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return CurrentWeather{
		Temperature:   out.Current.Temperature,
		FeelsLike:     out.Current.FeelsLike,
		Humidity:      out.Current.Humidity,
		Precipitation: out.Current.Precipitation,
		WindSpeed:     out.Current.WindSpeed,
		WeatherCode:   out.Current.WeatherCode,
		Timezone:      tz,
	}, nil
}
