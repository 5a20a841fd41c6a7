package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGenerateSubscription(t *testing.T) {
	start := day("2026-03-04")
	records := GenerateSubscription("g-1", SubscriptionTemplate{
		FieldID:       "field-1",
		StartDate:     start,
		StartTime:     "20:00",
		EndTime:       "21:00",
		CustomerName:  "Ahmet",
		CustomerPhone: "+905321234567",
	}, DefaultWeeks)

	require.Len(t, records, 52)
	for i, b := range records {
		assert.Equal(t, start.AddDate(0, 0, 7*i), b.Date)
		assert.Equal(t, StatusApproved, b.Status)
		assert.True(t, b.IsSubscriber)
		assert.False(t, b.IsArchived)
		require.NotNil(t, b.GroupID)
		assert.Equal(t, "g-1", *b.GroupID)
		assert.Equal(t, time.Wednesday, b.Date.Weekday())
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, b.Date.Sub(records[i-1].Date))
		}
	}
}

func TestAggregate_UsesEarliestBooking(t *testing.T) {
	today := day("2026-03-10")
	// Rows arrive out of date order; the earliest one carries the original slot.
	bookings := []*Booking{
		{GroupID: strPtr("g-1"), IsSubscriber: true, Date: day("2026-03-16"), StartTime: "21:00", EndTime: "22:00", CustomerName: "Later", Status: StatusApproved},
		{GroupID: strPtr("g-1"), IsSubscriber: true, Date: day("2026-03-02"), StartTime: "20:00", EndTime: "21:00", CustomerName: "Ahmet", CustomerPhone: "+905321234567", FieldID: "field-1", Status: StatusApproved},
		{GroupID: strPtr("g-1"), IsSubscriber: true, Date: day("2026-03-09"), StartTime: "20:00", EndTime: "21:00", CustomerName: "Ahmet", Status: StatusApproved},
	}

	subs := Aggregate(bookings, today)
	require.Len(t, subs, 1)
	s := subs[0]
	assert.Equal(t, "g-1", s.GroupID)
	assert.Equal(t, "Ahmet", s.CustomerName)
	assert.Equal(t, "+905321234567", s.CustomerPhone)
	assert.Equal(t, "field-1", s.FieldID)
	assert.Equal(t, day("2026-03-02"), s.FirstDate)
	assert.Equal(t, time.Monday, s.Weekday)
	assert.Equal(t, "20:00", s.StartTime)
	assert.Equal(t, "21:00", s.EndTime)
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 1, s.FutureCount)
	assert.Equal(t, SubscriptionActive, s.Status)
}

func TestAggregate_Status(t *testing.T) {
	today := day("2026-03-10")
	bookings := []*Booking{
		// g-active: one past, one today.
		{GroupID: strPtr("g-active"), IsSubscriber: true, Date: day("2026-03-03"), Status: StatusApproved},
		{GroupID: strPtr("g-active"), IsSubscriber: true, Date: day("2026-03-10"), Status: StatusApproved},
		// g-cancelled: past approved, future cancelled.
		{GroupID: strPtr("g-cancelled"), IsSubscriber: true, Date: day("2026-03-03"), Status: StatusApproved},
		{GroupID: strPtr("g-cancelled"), IsSubscriber: true, Date: day("2026-03-17"), Status: StatusCancelled},
		// Ignored rows.
		{GroupID: nil, IsSubscriber: true, Date: day("2026-03-17"), Status: StatusApproved},
		{GroupID: strPtr("g-x"), IsSubscriber: false, Date: day("2026-03-17"), Status: StatusApproved},
	}

	subs := Aggregate(bookings, today)
	require.Len(t, subs, 2)

	byID := map[string]*Subscription{}
	for _, s := range subs {
		byID[s.GroupID] = s
	}

	require.Contains(t, byID, "g-active")
	assert.Equal(t, SubscriptionActive, byID["g-active"].Status)
	assert.Equal(t, 1, byID["g-active"].FutureCount)
	assert.Equal(t, 2, byID["g-active"].TotalCount)

	require.Contains(t, byID, "g-cancelled")
	assert.Equal(t, SubscriptionCancelled, byID["g-cancelled"].Status)
	assert.Equal(t, 0, byID["g-cancelled"].FutureCount)
	assert.Equal(t, 2, byID["g-cancelled"].TotalCount)

	// Active subscriptions are listed first.
	assert.Equal(t, "g-active", subs[0].GroupID)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, day("2026-03-10")))
}
