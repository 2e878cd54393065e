package availability

import (
	"fmt"
	"strings"
	"time"

	"poc-availability/core/utils"
	"poc-availability/feature/availability/models"

	"gorm.io/datatypes"
)

// MatchPolicy decides which rule wins when several rules contain a slot.
type MatchPolicy string

const (
	// MatchNarrowest picks the containing rule with the shortest window.
	// Equal widths keep the earlier rule in retrieval order.
	MatchNarrowest MatchPolicy = "narrowest"
	// MatchFirst picks the first containing rule in retrieval order.
	MatchFirst MatchPolicy = "first"
)

// ParseMatchPolicy reads a configured policy name. Empty selects MatchNarrowest.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchNarrowest:
		return MatchNarrowest, nil
	case MatchFirst:
		return MatchFirst, nil
	default:
		return "", fmt.Errorf("unknown match policy %q (want narrowest or first)", s)
	}
}

// Outcome is the result of reconciling slots against rules.
type Outcome struct {
	Details []models.AppointmentAvailability
	// Unmatched counts slots no rule contains.
	Unmatched int
	// Full counts matched slots with no remaining capacity.
	Full int
	// InvalidRules counts rules whose weekday could not be read. They never match.
	InvalidRules int
}

type weeklyRule struct {
	day      time.Weekday
	start    datatypes.Time
	end      datatypes.Time
	capacity int
}

// Reconcile matches every slot, in order, to a schedule rule and emits a row
// for each slot with capacity left. Rows are numbered 1..n in emission order.
func Reconcile(slots []models.Slot, rules []models.ScheduleRule, policy MatchPolicy) Outcome {
	out := Outcome{Details: make([]models.AppointmentAvailability, 0, len(slots))}

	weekly := make([]weeklyRule, 0, len(rules))
	for _, r := range rules {
		day, err := utils.ParseWeekday(r.DayOfWeek)
		if err != nil {
			out.InvalidRules++
			continue
		}
		weekly = append(weekly, weeklyRule{day: day, start: r.StartTime, end: r.EndTime, capacity: r.Capacity})
	}

	for _, slot := range slots {
		date := time.Time(slot.ScheduleDate)
		day := utils.CalendarWeekday(date)

		rule, ok := matchRule(weekly, day, slot.StartTime, slot.EndTime, policy)
		if !ok {
			out.Unmatched++
			continue
		}

		remaining := rule.capacity - slot.Booked
		if remaining <= 0 {
			out.Full++
			continue
		}

		out.Details = append(out.Details, models.AppointmentAvailability{
			SNo:              len(out.Details) + 1,
			Date:             utils.FormatDate(date),
			Day:              day.String(),
			Time:             FormatClock(slot.StartTime),
			NoOfAppointments: remaining,
			TotalSlots:       rule.capacity,
		})
	}

	return out
}

func matchRule(rules []weeklyRule, day time.Weekday, start, end datatypes.Time, policy MatchPolicy) (weeklyRule, bool) {
	var best weeklyRule
	found := false
	for _, r := range rules {
		if r.day != day || r.start > start || r.end < end {
			continue
		}
		if policy == MatchFirst {
			return r, true
		}
		if !found || r.end-r.start < best.end-best.start {
			best = r
			found = true
		}
	}
	return best, found
}

// FormatClock renders a time-of-day column as HH:MM:SS.
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
