package booking

import (
	"fmt"
	"time"
)

// Bookable hours: fifteen one-hour slots starting at 10:00, the last one at 24:00.
const (
	FirstHour = 10
	LastHour  = 24
)

type SlotState string

const (
	SlotPast       SlotState = "past"
	SlotAvailable  SlotState = "available"
	SlotPending    SlotState = "pending"
	SlotApproved   SlotState = "approved"
	SlotSubscriber SlotState = "subscriber"
)

// Slot is the derived state of one (field, date, hour).
type Slot struct {
	Hour      int
	StartTime string
	EndTime   string
	State     SlotState
}

// Bookable reports whether a new ad-hoc booking may target the slot.
func (s Slot) Bookable() bool {
	return s.State == SlotAvailable
}

// Day is one column of the weekly timetable.
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Hours lists the bookable start hours in order.
func Hours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// HourLabel formats an hour as a slot boundary, e.g. 9 -> "09:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// SlotStart is the instant the slot begins in loc. Hour 24 rolls over to
// 00:00 of the next day.
func SlotStart(date time.Time, hour int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

// SlotStatus derives the state of (date, hour) from the bookings of a field.
// A slot that has already started is past no matter what is booked on it.
// When several live bookings share the slot the strongest claim wins:
// subscriber, then approved, then pending.
func SlotStatus(now, date time.Time, hour int, bookings []*Booking) SlotState {
	if SlotStart(date, hour, now.Location()).Before(now) {
		return SlotPast
	}

	day := civilDay(date)
	label := HourLabel(hour)
	state := SlotAvailable
	for _, b := range bookings {
		if !b.Occupies() || b.StartTime != label || !civilDay(b.Date).Equal(day) {
			continue
		}
		switch {
		case b.IsSubscriber:
			return SlotSubscriber
		case b.Status == StatusApproved:
			state = SlotApproved
		case state == SlotAvailable:
			state = SlotPending
		}
	}
	return state
}

// WeekStart returns the Monday of the week offset weeks away from today.
func WeekStart(today time.Time, offset int) time.Time {
	day := civilDay(today)
	// time.Weekday counts from Sunday.
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back+offset*7)
}

// BuildWeek lays out seven days starting at monday with every slot resolved
// against bookings.
func BuildWeek(now, monday time.Time, bookings []*Booking) []Day {
	days := make([]Day, 7)
	for i := range days {
		date := civilDay(monday).AddDate(0, 0, i)
		slots := make([]Slot, 0, LastHour-FirstHour+1)
		for _, h := range Hours() {
			slots = append(slots, Slot{
				Hour:      h,
				StartTime: HourLabel(h),
				EndTime:   HourLabel(h + 1),
				State:     SlotStatus(now, date, h, bookings),
			})
		}
		days[i] = Day{Date: date, Slots: slots}
	}
	return days
}
