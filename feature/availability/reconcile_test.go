package availability_test

import (
	"encoding/json"
	"testing"
	"time"

	"poc-availability/feature/availability"
	"poc-availability/feature/availability/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// 2030-01-07 is a Monday.
var monday = time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

func clock(t *testing.T, s string) datatypes.Time {
	t.Helper()
	parsed, err := time.Parse("15:04:05", s)
	require.NoError(t, err)
	return datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0)
}

func slot(t *testing.T, id int64, date time.Time, start, end string, booked int) models.Slot {
	return models.Slot{
		ID:           id,
		PocID:        1,
		ScheduleDate: datatypes.Date(date),
		StartTime:    clock(t, start),
		EndTime:      clock(t, end),
		Booked:       booked,
	}
}

func rule(t *testing.T, id int64, day, start, end string, capacity int) models.ScheduleRule {
	return models.ScheduleRule{
		ID:        id,
		PocID:     1,
		DayOfWeek: day,
		StartTime: clock(t, start),
		EndTime:   clock(t, end),
		Capacity:  capacity,
	}
}

func TestParseMatchPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    availability.MatchPolicy
		wantErr bool
	}{
		{"", availability.MatchNarrowest, false},
		{"narrowest", availability.MatchNarrowest, false},
		{" First ", availability.MatchFirst, false},
		{"widest", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := availability.ParseMatchPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcile_Scenarios(t *testing.T) {
	morning := rule(t, 1, "Monday", "09:00:00", "12:00:00", 5)

	t.Run("remaining capacity is emitted", func(t *testing.T) {
		out := availability.Reconcile(
			[]models.Slot{slot(t, 1, monday, "09:00:00", "09:30:00", 2)},
			[]models.ScheduleRule{morning},
			availability.MatchNarrowest,
		)

		require.Len(t, out.Details, 1)
		assert.Equal(t, models.AppointmentAvailability{
			SNo:              1,
			Date:             "2030-01-07",
			Day:              "Monday",
			Time:             "09:00:00",
			NoOfAppointments: 3,
			TotalSlots:       5,
		}, out.Details[0])
	})

	t.Run("fully booked slot is dropped", func(t *testing.T) {
		out := availability.Reconcile(
			[]models.Slot{slot(t, 1, monday, "09:00:00", "09:30:00", 5)},
			[]models.ScheduleRule{morning},
			availability.MatchNarrowest,
		)

		assert.Empty(t, out.Details)
		assert.Equal(t, 1, out.Full)
	})

	t.Run("overbooked slot is dropped", func(t *testing.T) {
		out := availability.Reconcile(
			[]models.Slot{slot(t, 1, monday, "09:00:00", "09:30:00", 7)},
			[]models.ScheduleRule{morning},
			availability.MatchNarrowest,
		)

		assert.Empty(t, out.Details)
		assert.Equal(t, 1, out.Full)
	})

	t.Run("weekday without rule is dropped", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		out := availability.Reconcile(
			[]models.Slot{slot(t, 1, tuesday, "09:00:00", "09:30:00", 0)},
			[]models.ScheduleRule{morning},
			availability.MatchNarrowest,
		)

		assert.Empty(t, out.Details)
		assert.Equal(t, 1, out.Unmatched)
	})

	t.Run("two dates are numbered in order", func(t *testing.T) {
		nextMonday := monday.AddDate(0, 0, 7)
		out := availability.Reconcile(
			[]models.Slot{
				slot(t, 1, monday, "10:00:00", "10:30:00", 1),
				slot(t, 2, nextMonday, "09:00:00", "09:30:00", 0),
			},
			[]models.ScheduleRule{morning},
			availability.MatchNarrowest,
		)

		require.Len(t, out.Details, 2)
		assert.Equal(t, 1, out.Details[0].SNo)
		assert.Equal(t, "2030-01-07", out.Details[0].Date)
		assert.Equal(t, 4, out.Details[0].NoOfAppointments)
		assert.Equal(t, 2, out.Details[1].SNo)
		assert.Equal(t, "2030-01-14", out.Details[1].Date)
		assert.Equal(t, 5, out.Details[1].NoOfAppointments)
	})
}

func TestReconcile_Containment(t *testing.T) {
	morning := rule(t, 1, "Monday", "09:00:00", "12:00:00", 5)

	tests := []struct {
		name       string
		start, end string
		matched    bool
	}{
		{"inside", "10:00:00", "10:30:00", true},
		{"same window", "09:00:00", "12:00:00", true},
		{"ends at rule end", "11:30:00", "12:00:00", true},
		{"starts before rule", "08:30:00", "09:30:00", false},
		{"ends after rule", "11:45:00", "12:15:00", false},
		{"outside", "13:00:00", "13:30:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := availability.Reconcile(
				[]models.Slot{slot(t, 1, monday, tt.start, tt.end, 0)},
				[]models.ScheduleRule{morning},
				availability.MatchNarrowest,
			)
			if tt.matched {
				assert.Len(t, out.Details, 1)
				assert.Zero(t, out.Unmatched)
			} else {
				assert.Empty(t, out.Details)
				assert.Equal(t, 1, out.Unmatched)
			}
		})
	}
}

func TestReconcile_WeekdayForms(t *testing.T) {
	for _, day := range []string{"Monday", "monday", "MON", "1"} {
		t.Run(day, func(t *testing.T) {
			out := availability.Reconcile(
				[]models.Slot{slot(t, 1, monday, "09:00:00", "09:30:00", 0)},
				[]models.ScheduleRule{rule(t, 1, day, "09:00:00", "12:00:00", 2)},
				availability.MatchNarrowest,
			)
			require.Len(t, out.Details, 1)
			assert.Equal(t, "Monday", out.Details[0].Day)
		})
	}
}

func TestReconcile_InvalidRuleNeverMatches(t *testing.T) {
	out := availability.Reconcile(
		[]models.Slot{slot(t, 1, monday, "09:00:00", "09:30:00", 0)},
		[]models.ScheduleRule{rule(t, 1, "Funday", "00:00:00", "23:59:59", 9)},
		availability.MatchNarrowest,
	)

	assert.Empty(t, out.Details)
	assert.Equal(t, 1, out.InvalidRules)
	assert.Equal(t, 1, out.Unmatched)
}

func TestReconcile_DateZoneDoesNotShiftWeekday(t *testing.T) {
	// Midnight Monday at UTC+14 is still Sunday in UTC.
	east := time.FixedZone("UTC+14", 14*60*60)
	date := time.Date(2030, time.January, 7, 0, 0, 0, 0, east)

	out := availability.Reconcile(
		[]models.Slot{slot(t, 1, date, "09:00:00", "09:30:00", 0)},
		[]models.ScheduleRule{rule(t, 1, "Monday", "09:00:00", "12:00:00", 1)},
		availability.MatchNarrowest,
	)

	require.Len(t, out.Details, 1)
	assert.Equal(t, "2030-01-07", out.Details[0].Date)
	assert.Equal(t, "Monday", out.Details[0].Day)
}

func TestReconcile_OverlappingRules(t *testing.T) {
	s := slot(t, 1, monday, "10:00:00", "10:30:00", 1)
	wide := rule(t, 1, "Monday", "08:00:00", "17:00:00", 10)
	narrow := rule(t, 2, "Monday", "10:00:00", "11:00:00", 3)
	sameWidth := rule(t, 3, "Monday", "09:30:00", "10:30:00", 6)

	t.Run("narrowest prefers the tighter window", func(t *testing.T) {
		out := availability.Reconcile([]models.Slot{s}, []models.ScheduleRule{wide, narrow}, availability.MatchNarrowest)
		require.Len(t, out.Details, 1)
		assert.Equal(t, 3, out.Details[0].TotalSlots)
	})

	t.Run("narrowest tie keeps retrieval order", func(t *testing.T) {
		out := availability.Reconcile([]models.Slot{s}, []models.ScheduleRule{narrow, sameWidth}, availability.MatchNarrowest)
		require.Len(t, out.Details, 1)
		assert.Equal(t, 3, out.Details[0].TotalSlots)

		out = availability.Reconcile([]models.Slot{s}, []models.ScheduleRule{sameWidth, narrow}, availability.MatchNarrowest)
		require.Len(t, out.Details, 1)
		assert.Equal(t, 6, out.Details[0].TotalSlots)
	})

	t.Run("first takes retrieval order", func(t *testing.T) {
		out := availability.Reconcile([]models.Slot{s}, []models.ScheduleRule{wide, narrow}, availability.MatchFirst)
		require.Len(t, out.Details, 1)
		assert.Equal(t, 10, out.Details[0].TotalSlots)
	})
}

func TestReconcile_Properties(t *testing.T) {
	rules := []models.ScheduleRule{
		rule(t, 1, "Monday", "09:00:00", "12:00:00", 4),
		rule(t, 2, "Wednesday", "13:00:00", "17:00:00", 2),
	}

	var slots []models.Slot
	id := int64(1)
	for week := 0; week < 3; week++ {
		mon := monday.AddDate(0, 0, 7*week)
		for _, tc := range []struct {
			day    time.Time
			start  string
			end    string
			booked int
		}{
			{mon, "09:00:00", "09:30:00", week},
			{mon, "11:30:00", "12:30:00", 0}, // overruns the rule
			{mon.AddDate(0, 0, 1), "09:00:00", "09:30:00", 0},
			{mon.AddDate(0, 0, 2), "13:00:00", "14:00:00", week},
			{mon.AddDate(0, 0, 2), "16:00:00", "17:00:00", 2},
		} {
			slots = append(slots, slot(t, id, tc.day, tc.start, tc.end, tc.booked))
			id++
		}
	}

	out := availability.Reconcile(slots, rules, availability.MatchNarrowest)
	require.NotEmpty(t, out.Details)
	assert.Equal(t, len(slots), len(out.Details)+out.Unmatched+out.Full)

	prev := ""
	for i, d := range out.Details {
		assert.Equal(t, i+1, d.SNo, "sequence numbers must be dense")
		assert.Greater(t, d.NoOfAppointments, 0)
		assert.LessOrEqual(t, d.NoOfAppointments, d.TotalSlots)

		key := d.Date + " " + d.Time
		assert.Less(t, prev, key, "rows must keep date and time order")
		prev = key

		assert.Contains(t, []string{"Monday", "Wednesday"}, d.Day)
	}

	again := availability.Reconcile(slots, rules, availability.MatchNarrowest)
	first, err := json.Marshal(out.Details)
	require.NoError(t, err)
	second, err := json.Marshal(again.Details)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestReconcile_EmptyInputs(t *testing.T) {
	out := availability.Reconcile(nil, nil, availability.MatchNarrowest)
	assert.NotNil(t, out.Details)
	assert.Empty(t, out.Details)

	b, err := json.Marshal(models.AvailabilityReport{AppointmentDetails: out.Details})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"appointmentDetails":[]`)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", availability.FormatClock(datatypes.NewTime(0, 0, 0, 0)))
	assert.Equal(t, "09:05:07", availability.FormatClock(datatypes.NewTime(9, 5, 7, 0)))
	assert.Equal(t, "23:59:59", availability.FormatClock(datatypes.NewTime(23, 59, 59, 0)))
}
