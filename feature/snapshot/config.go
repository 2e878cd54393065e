package snapshot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// Config holds configuration for availability report snapshots.
type Config struct {
	// Enabled turns on the scheduled export job.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Schedule is a cron expression or descriptor (e.g. "@hourly").
	Schedule string `mapstructure:"schedule" default:"@hourly"`
	// Targets lists the reports to export as "pocId:clientId" pairs separated by commas.
	Targets string `mapstructure:"targets" default:""`
	// Prefix is the object key prefix snapshots are written under.
	Prefix string `mapstructure:"prefix" default:"reports"`
	// Keep is how many snapshots per target survive pruning. 0 keeps all.
	Keep int `mapstructure:"keep" default:"24"`
}

// Target identifies one report to export.
type Target struct {
	PocID    int64
	ClientID int64
}

func (t Target) String() string {
	return fmt.Sprintf("%d:%d", t.PocID, t.ClientID)
}

// ParseTargets reads a "pocId:clientId,..." list. Blank entries are skipped.
func ParseTargets(s string) ([]Target, error) {
	var targets []Target
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		poc, client, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid target %q: want pocId:clientId", part)
		}
		pocID, err := strconv.ParseInt(strings.TrimSpace(poc), 10, 64)
		if err != nil || pocID <= 0 {
			return nil, fmt.Errorf("invalid poc id in target %q", part)
		}
		clientID, err := strconv.ParseInt(strings.TrimSpace(client), 10, 64)
		if err != nil || clientID <= 0 {
			return nil, fmt.Errorf("invalid client id in target %q", part)
		}
		targets = append(targets, Target{PocID: pocID, ClientID: clientID})
	}
	return targets, nil
}

// Validate checks the schedule and targets. The schedule is only checked
// when the job is enabled.
func (c Config) Validate() error {
	if _, err := ParseTargets(c.Targets); err != nil {
		return err
	}
	if c.Keep < 0 {
		return fmt.Errorf("keep must not be negative: %d", c.Keep)
	}
	if !c.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	return nil
}
