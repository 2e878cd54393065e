package availability

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone names resolve without system tzdata
)

// Config holds configuration for the availability reconciler.
type Config struct {
	// Timezone is the IANA zone "today" and "now" are evaluated in.
	Timezone string `mapstructure:"timezone" default:"UTC"`
	// MatchPolicy picks the rule when several contain a slot (narrowest, first).
	MatchPolicy string `mapstructure:"match_policy" default:"narrowest"`
	// DefaultPocID is used when a request names no POC. 0 makes the POC id required.
	DefaultPocID int64 `mapstructure:"default_poc_id" default:"0"`
}

// Location resolves Timezone, defaulting to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the timezone, match policy and default POC id.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := ParseMatchPolicy(c.MatchPolicy); err != nil {
		return err
	}
	if c.DefaultPocID < 0 {
		return fmt.Errorf("default_poc_id must not be negative: %d", c.DefaultPocID)
	}
	return nil
}
