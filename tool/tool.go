// Package tool implements the capability contract consumed by agents: a
// uniform name/description/invoke surface over the domain lookups (weather,
// local time, clothing advice). A tool never lets a failure escape its
// boundary; every internal error is logged and converted into a user-readable
// sentence.
package tool

import (
	"context"

	"github.com/daybrief-ai/daybrief/geo"
)

// Tool is the uniform interface a domain capability exposes to an agent.
//
// Name and Description are pure and stable for the tool's lifetime; they are
// used verbatim in oracle prompts and for dispatch matching. Use performs the
// domain operation and always returns user-facing text, even on failure.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	// This description is provided to the oracle to help it pick a tool.
	Description() string

	// Use executes the domain operation. args may be a free string or a
	// mapping (see Args); any internal failure is converted to a sentence.
	Use(ctx context.Context, args Args) string
}

// GeoClient is the slice of the geo package a tool needs. Declared here so
// tests can substitute a stub.
type GeoClient interface {
	Geocode(ctx context.Context, name string) (geo.Location, error)
	CurrentWeather(ctx context.Context, lat, lon float64) (geo.CurrentWeather, error)
}

var _ GeoClient = (*geo.Client)(nil)
