package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daybrief-ai/daybrief/core"
	"github.com/daybrief-ai/daybrief/logging"
)

// weatherCodeDescriptions maps WMO weather interpretation codes to prose.
var weatherCodeDescriptions = map[int]string{
	0: "clear sky", 1: "mainly clear", 2: "partly cloudy", 3: "overcast",
	45: "foggy", 48: "depositing rime fog",
	51: "light drizzle", 53: "moderate drizzle", 55: "dense drizzle",
	61: "slight rain", 63: "moderate rain", 65: "heavy rain",
	71: "slight snow", 73: "moderate snow", 75: "heavy snow",
	77: "snow grains", 95: "thunderstorm",
	96: "thunderstorm with slight hail", 99: "thunderstorm with heavy hail",
}

// WeatherTool reports current conditions for a location.
type WeatherTool struct {
	geo    GeoClient
	logger logging.Logger
	now    func() time.Time
}

// WeatherToolOptions configures a WeatherTool.
type WeatherToolOptions struct {
	Logger logging.Logger
	// Now overrides the clock used to render local time.
	Now func() time.Time
}

// NewWeatherTool constructs a WeatherTool over the given geo client.
func NewWeatherTool(gc GeoClient, optFns ...func(o *WeatherToolOptions)) *WeatherTool {
	opts := WeatherToolOptions{Logger: logging.NoOpLogger{}, Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &WeatherTool{geo: gc, logger: opts.Logger, now: opts.Now}
}

// Name implements Tool.
func (t *WeatherTool) Name() string { return "Weather Agent" }

// Description implements Tool.
func (t *WeatherTool) Description() string {
	return "Provides current weather information for a given location."
}

// Use implements Tool. Failures never escape; they degrade to a sentence.
func (t *WeatherTool) Use(ctx context.Context, args Args) string {
	start := t.now()
	location := args.Location()

	loc, err := t.geo.Geocode(ctx, location)
	if err != nil {
		var locErr *core.LocationError
		if errors.As(err, &locErr) {
			logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, err)
			return fmt.Sprintf("Sorry, I couldn't find the location: %s", location)
		}
		logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, err)
		return fmt.Sprintf("Sorry, I couldn't get weather data for %s", location)
	}

	wx, err := t.geo.CurrentWeather(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, core.NewToolError(t.Name(), "weather lookup failed", err))
		return fmt.Sprintf("Sorry, I couldn't get weather data for %s", location)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s at %s:\n", loc.DisplayName(), t.localTime(wx.Timezone))
	fmt.Fprintf(&b, "Temperature: %.1f°C (feels like %.1f°C)\n", wx.Temperature, wx.FeelsLike)
	fmt.Fprintf(&b, "Conditions: %s\n", describeWeatherCode(wx.WeatherCode))
	fmt.Fprintf(&b, "Humidity: %.0f%%\n", wx.Humidity)
	fmt.Fprintf(&b, "Wind Speed: %.1f km/h", wx.WindSpeed)
	if wx.Precipitation > 0 {
		fmt.Fprintf(&b, "\nPrecipitation: %.1f mm", wx.Precipitation)
	}

	logging.LogToolUse(t.logger, t.Name(), time.Since(start), true, nil)
	return b.String()
}

func (t *WeatherTool) localTime(tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.now().In(loc).Format("3:04 PM")
}

func describeWeatherCode(code int) string {
	if desc, ok := weatherCodeDescriptions[code]; ok {
		return desc
	}
	return "unknown"
}
