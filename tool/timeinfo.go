package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/daybrief-ai/daybrief/logging"
)

// TimeTool reports the current local time for a location.
type TimeTool struct {
	geo    GeoClient
	logger logging.Logger
	now    func() time.Time
}

// TimeToolOptions configures a TimeTool.
type TimeToolOptions struct {
	Logger logging.Logger
	Now    func() time.Time
}

// NewTimeTool constructs a TimeTool over the given geo client.
func NewTimeTool(gc GeoClient, optFns ...func(o *TimeToolOptions)) *TimeTool {
	opts := TimeToolOptions{Logger: logging.NoOpLogger{}, Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TimeTool{geo: gc, logger: opts.Logger, now: opts.Now}
}

// Name implements Tool.
func (t *TimeTool) Name() string { return "Time Agent" }

// Description implements Tool.
func (t *TimeTool) Description() string {
	return "Provides current time for a given location."
}

// Use implements Tool.
func (t *TimeTool) Use(ctx context.Context, args Args) string {
	start := t.now()
	location := args.Location()

	loc, err := t.geo.Geocode(ctx, location)
	if err != nil {
		logging.LogToolUse(t.logger, t.Name(), time.Since(start), false, err)
		return fmt.Sprintf("Sorry, I couldn't find the location: %s", location)
	}

	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		tz = time.UTC
	}
	current := t.now().In(tz)

	logging.LogToolUse(t.logger, t.Name(), time.Since(start), true, nil)
	return fmt.Sprintf("The current time in %s is %s (%s)",
		loc.DisplayName(), current.Format("3:04 PM"), loc.Timezone)
}
