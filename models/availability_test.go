package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilitySlotValidate(t *testing.T) {
	cases := []struct {
		name string
		slot AvailabilitySlot
		ok   bool
	}{
		{"valid window", AvailabilitySlot{Day: Monday, StartTime: "09:00", EndTime: "12:00"}, true},
		{"inverted window", AvailabilitySlot{Day: Monday, StartTime: "12:00", EndTime: "09:00"}, false},
		{"empty window", AvailabilitySlot{Day: Monday, StartTime: "09:00", EndTime: "09:00"}, false},
		{"bad start format", AvailabilitySlot{Day: Monday, StartTime: "9am", EndTime: "12:00"}, false},
		{"bad end format", AvailabilitySlot{Day: Monday, StartTime: "09:00", EndTime: "noon"}, false},
		{"day below range", AvailabilitySlot{Day: -1, StartTime: "09:00", EndTime: "12:00"}, false},
		{"day above range", AvailabilitySlot{Day: 7, StartTime: "09:00", EndTime: "12:00"}, false},
		{"sunday ok", AvailabilitySlot{Day: Sunday, StartTime: "09:00", EndTime: "12:00"}, true},
	}

	for _, tc := range cases {
		err := tc.slot.Validate()
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.Error(t, err, tc.name)
		}
	}
}

func TestDayOfWeekString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "DayOfWeek(9)", DayOfWeek(9).String())
}

func TestDayOfDate(t *testing.T) {
	// 2026-09-07 is a Monday in Go's Sunday-first weekday numbering.
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, monday.Weekday())

	assert.Equal(t, Monday, DayOfDate(monday))
	assert.Equal(t, Saturday, DayOfDate(monday.AddDate(0, 0, 5)))
	assert.Equal(t, Sunday, DayOfDate(monday.AddDate(0, 0, 6)))
}
