package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daybrief-ai/daybrief/logging"
)

// outfit holds layered clothing picks for one temperature band. Slices keep
// the rendering order stable (base through accessories).
type outfit struct {
	Base        []string
	Mid         []string
	Outer       []string
	Bottom      []string
	Accessories []string
}

func (o outfit) clone() outfit {
	return outfit{
		Base:        append([]string(nil), o.Base...),
		Mid:         append([]string(nil), o.Mid...),
		Outer:       append([]string(nil), o.Outer...),
		Bottom:      append([]string(nil), o.Bottom...),
		Accessories: append([]string(nil), o.Accessories...),
	}
}

// Temperature bands in °C: very cold < 0 <= cold < 10 <= mild < 20 <= warm < 25 <= hot.
var outfitsByBand = map[string]outfit{
	"very cold": {
		Base:        []string{"Thermal underwear", "Warm long-sleeve shirt"},
		Mid:         []string{"Wool sweater", "Fleece jacket"},
		Outer:       []string{"Heavy winter coat"},
		Bottom:      []string{"Insulated pants", "Thermal leggings"},
		Accessories: []string{"Warm hat", "Scarf", "Gloves", "Warm socks", "Winter boots"},
	},
	"cold": {
		Base:        []string{"Long-sleeve thermal shirt"},
		Mid:         []string{"Sweater"},
		Outer:       []string{"Winter jacket"},
		Bottom:      []string{"Warm pants"},
		Accessories: []string{"Light hat", "Scarf", "Gloves"},
	},
	"mild": {
		Base:        []string{"Long-sleeve shirt"},
		Mid:         []string{"Light jacket"},
		Bottom:      []string{"Regular pants", "Jeans"},
		Accessories: []string{"Light scarf"},
	},
	"warm": {
		Base:        []string{"T-shirt", "Short-sleeve shirt"},
		Bottom:      []string{"Light pants", "Shorts"},
		Accessories: []string{"Sunglasses"},
	},
	"hot": {
		Base:        []string{"Light t-shirt", "Tank top"},
		Bottom:      []string{"Shorts", "Light skirt"},
		Accessories: []string{"Sunglasses", "Sun hat"},
	},
}

// ClothingTool recommends what to wear based on current conditions.
type ClothingTool struct {
	geo    GeoClient
	logger logging.Logger
}

// ClothingToolOptions configures a ClothingTool.
type ClothingToolOptions struct {
	Logger logging.Logger
}

// NewClothingTool constructs a ClothingTool over the given geo client.
func NewClothingTool(gc GeoClient, optFns ...func(o *ClothingToolOptions)) *ClothingTool {
	opts := ClothingToolOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ClothingTool{geo: gc, logger: opts.Logger}
}

// Name implements Tool.
func (t *ClothingTool) Name() string { return "Clothing Agent" }

// Description implements Tool.
func (t *ClothingTool) Description() string {
	return "Recommends clothing based on weather conditions."
}

// Use implements Tool.
func (t *ClothingTool) Use(ctx context.Context, args Args) string {
	start := time.Now()
	location := args.Location()

	loc, err := t.geo.Geocode(ctx, location)
	if err != nil {
		logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, err)
		return fmt.Sprintf("Sorry, I couldn't find the location: %s", location)
	}

	wx, err := t.geo.CurrentWeather(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, err)
		return fmt.Sprintf("Sorry, I couldn't get weather data for %s", location)
	}

	picks := outfitsByBand[temperatureBand(wx.Temperature)].clone()
	adjustForConditions(&picks, wx.WeatherCode, wx.WindSpeed)

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the current temperature of %.1f°C in %s, here's what you should wear:",
		wx.Temperature, loc.DisplayName())
	writeCategory(&b, "Base", picks.Base)
	writeCategory(&b, "Mid", picks.Mid)
	writeCategory(&b, "Outer", picks.Outer)
	writeCategory(&b, "Bottom", picks.Bottom)
	writeCategory(&b, "Accessories", picks.Accessories)

	logging.LogToolUse(t.logger, t.Name(), time.Since(start), true, nil)
	return b.String()
}

func temperatureBand(temp float64) string {
	switch {
	case temp < 0:
		return "very cold"
	case temp < 10:
		return "cold"
	case temp < 20:
		return "mild"
	case temp < 25:
		return "warm"
	default:
		return "hot"
	}
}

// adjustForConditions layers rain, snow and wind gear on top of the base picks.
func adjustForConditions(o *outfit, weatherCode int, windSpeed float64) {
	switch {
	case (weatherCode >= 51 && weatherCode <= 65) || (weatherCode >= 80 && weatherCode <= 82):
		o.Outer = append(o.Outer, "Rain jacket")
		o.Accessories = append(o.Accessories, "Umbrella")
	case (weatherCode >= 71 && weatherCode <= 77) || (weatherCode >= 85 && weatherCode <= 86):
		o.Outer = append(o.Outer, "Snow-proof jacket")
		o.Accessories = append(o.Accessories, "Snow boots", "Waterproof gloves")
	}
	if windSpeed > 20 {
		o.Outer = append(o.Outer, "Windbreaker")
	}
}

func writeCategory(b *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s: %s", name, strings.Join(items, ", "))
}
