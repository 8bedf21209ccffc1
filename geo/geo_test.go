package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybrief-ai/daybrief/core"
)

func newGeocodeServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("name") {
		case "London":
			w.Write([]byte(`{"results": [{"name": "London", "country": "United Kingdom", "timezone": "Europe/London", "latitude": 51.5074, "longitude": -0.1278}]}`))
		default:
			w.Write([]byte(`{"results": []}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Geocode(t *testing.T) {
	var hits atomic.Int32
	srv := newGeocodeServer(t, &hits)
	c := NewClient(func(o *Options) { o.GeocodingURL = srv.URL })

	loc, err := c.Geocode(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", loc.Name)
	assert.Equal(t, "United Kingdom", loc.Country)
	assert.Equal(t, "Europe/London", loc.Timezone)
	assert.InDelta(t, 51.5074, loc.Latitude, 0.0001)
	assert.Equal(t, "London, United Kingdom", loc.DisplayName())
}

func TestClient_GeocodeCachesByLoweredName(t *testing.T) {
	var hits atomic.Int32
	srv := newGeocodeServer(t, &hits)
	c := NewClient(func(o *Options) { o.GeocodingURL = srv.URL })

	_, err := c.Geocode(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// Same place name in a different case hits the cache, not the API.
	_, err = c.Geocode(context.Background(), "LONDON")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_GeocodeUnknownPlace(t *testing.T) {
	var hits atomic.Int32
	srv := newGeocodeServer(t, &hits)
	c := NewClient(func(o *Options) { o.GeocodingURL = srv.URL })

	_, err := c.Geocode(context.Background(), "Atlantis")
	require.Error(t, err)

	var locErr *core.LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, "Atlantis", locErr.Location)
}

func TestClient_GeocodeEmptyName(t *testing.T) {
	c := NewClient()
	_, err := c.Geocode(context.Background(), "   ")
	var locErr *core.LocationError
	require.ErrorAs(t, err, &locErr)
}

func TestClient_CurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "auto", r.URL.Query().Get("timezone"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"timezone": "Europe/London",
			"current": {
				"temperature_2m": 15.3,
				"apparent_temperature": 14.1,
				"relative_humidity_2m": 72,
				"precipitation": 0.4,
				"weather_code": 61,
				"wind_speed_10m": 8.5
			}
		}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(func(o *Options) { o.ForecastURL = srv.URL })

	wx, err := c.CurrentWeather(context.Background(), 51.5074, -0.1278)
	require.NoError(t, err)
	assert.InDelta(t, 15.3, wx.Temperature, 0.001)
	assert.InDelta(t, 14.1, wx.FeelsLike, 0.001)
	assert.Equal(t, 61, wx.WeatherCode)
	assert.Equal(t, "Europe/London", wx.Timezone)
}

func TestClient_CurrentWeatherMissingPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"timezone": "UTC"}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(func(o *Options) { o.ForecastURL = srv.URL })

	_, err := c.CurrentWeather(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing current conditions")
}

func TestClient_GeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(func(o *Options) {
		o.GeocodingURL = srv.URL
		o.RetryCount = 0
	})

	_, err := c.Geocode(context.Background(), "London")
	var locErr *core.LocationError
	require.ErrorAs(t, err, &locErr)
}
