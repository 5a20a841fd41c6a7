package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHours(t *testing.T) {
	hours := Hours()
	require.Len(t, hours, 15)
	assert.Equal(t, 10, hours[0])
	assert.Equal(t, 24, hours[len(hours)-1])
	assert.Equal(t, "09:00", HourLabel(9))
	assert.Equal(t, "25:00", HourLabel(25))
}

func TestSlotStart_RollsOverMidnight(t *testing.T) {
	loc := time.FixedZone("TRT", 3*3600)
	start := SlotStart(day("2026-03-02"), 24, loc)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, loc), start)
}

func TestSlotStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	date := day("2026-03-02")

	approved := &Booking{Date: date, StartTime: "18:00", Status: StatusApproved}
	pending := &Booking{Date: date, StartTime: "19:00", Status: StatusPending}
	cancelled := &Booking{Date: date, StartTime: "20:00", Status: StatusCancelled}
	subscriber := &Booking{Date: date, StartTime: "21:00", Status: StatusApproved, IsSubscriber: true}
	pastBooked := &Booking{Date: date, StartTime: "12:00", Status: StatusApproved}
	otherDay := &Booking{Date: day("2026-03-03"), StartTime: "22:00", Status: StatusApproved}
	bookings := []*Booking{approved, pending, cancelled, subscriber, pastBooked, otherDay}

	tests := []struct {
		name string
		hour int
		want SlotState
	}{
		{"past slot with booking", 12, SlotPast},
		{"past slot without booking", 11, SlotPast},
		{"slot in progress is past", 15, SlotPast},
		{"approved", 18, SlotApproved},
		{"pending", 19, SlotPending},
		{"cancelled frees the slot", 20, SlotAvailable},
		{"subscriber wins over status", 21, SlotSubscriber},
		{"booking on another day ignored", 22, SlotAvailable},
		{"free future slot", 23, SlotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotStatus(now, date, tt.hour, bookings))
		})
	}
}

func TestSlotStatus_ApprovedBeatsPending(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	date := day("2026-03-02")
	bookings := []*Booking{
		{Date: date, StartTime: "18:00", Status: StatusPending},
		{Date: date, StartTime: "18:00", Status: StatusApproved},
	}
	assert.Equal(t, SlotApproved, SlotStatus(now, date, 18, bookings))
}

func TestSlot_Bookable(t *testing.T) {
	assert.True(t, Slot{State: SlotAvailable}.Bookable())
	for _, st := range []SlotState{SlotPast, SlotPending, SlotApproved, SlotSubscriber} {
		assert.False(t, Slot{State: st}.Bookable(), st)
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	assert.Equal(t, day("2026-03-02"), WeekStart(day("2026-03-04"), 0))
	assert.Equal(t, day("2026-03-09"), WeekStart(day("2026-03-04"), 1))
	assert.Equal(t, day("2026-02-23"), WeekStart(day("2026-03-04"), -1))
	// Sunday belongs to the week that started six days earlier.
	assert.Equal(t, day("2026-03-02"), WeekStart(day("2026-03-08"), 0))
	assert.Equal(t, day("2026-03-02"), WeekStart(day("2026-03-02"), 0))
}

func TestBuildWeek(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	monday := day("2026-03-02")
	bookings := []*Booking{
		{Date: day("2026-03-05"), StartTime: "20:00", Status: StatusPending},
	}

	week := BuildWeek(now, monday, bookings)
	require.Len(t, week, 7)
	assert.Equal(t, monday, week[0].Date)
	assert.Equal(t, day("2026-03-08"), week[6].Date)

	for _, d := range week {
		require.Len(t, d.Slots, 15)
	}
	// Monday is entirely in the past.
	for _, s := range week[0].Slots {
		assert.Equal(t, SlotPast, s.State)
	}
	thursday := week[3]
	assert.Equal(t, SlotPending, thursday.Slots[20-FirstHour].State)
	assert.Equal(t, "20:00", thursday.Slots[20-FirstHour].StartTime)
	assert.Equal(t, "21:00", thursday.Slots[20-FirstHour].EndTime)
	assert.Equal(t, "25:00", thursday.Slots[len(thursday.Slots)-1].EndTime)
}
