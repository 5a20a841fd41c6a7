package booking

import (
	"sort"
	"time"
)

const (
	DefaultWeeks = 52
	MaxWeeks     = 104
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is the logical view of a group of weekly bookings.
// It is never stored; Aggregate rebuilds it from the booking rows.
type Subscription struct {
	GroupID       string
	CustomerName  string
	CustomerPhone string
	FieldID       string
	FieldName     string
	FacilityName  string
	Weekday       time.Weekday
	StartTime     string
	EndTime       string
	FirstDate     time.Time
	TotalCount    int
	FutureCount   int
	Status        SubscriptionStatus
}

// SubscriptionTemplate describes the weekly slot a subscription repeats.
type SubscriptionTemplate struct {
	FieldID       string
	StartDate     time.Time
	StartTime     string
	EndTime       string
	CustomerName  string
	CustomerPhone string
}

// GenerateSubscription expands tpl into weeks approved subscriber bookings
// seven days apart, all tagged with groupID.
func GenerateSubscription(groupID string, tpl SubscriptionTemplate, weeks int) []*Booking {
	start := civilDay(tpl.StartDate)
	out := make([]*Booking, 0, weeks)
	for i := 0; i < weeks; i++ {
		gid := groupID
		out = append(out, &Booking{
			FieldID:       tpl.FieldID,
			Date:          start.AddDate(0, 0, 7*i),
			StartTime:     tpl.StartTime,
			EndTime:       tpl.EndTime,
			CustomerName:  tpl.CustomerName,
			CustomerPhone: tpl.CustomerPhone,
			Status:        StatusApproved,
			IsSubscriber:  true,
			GroupID:       &gid,
		})
	}
	return out
}

// Aggregate groups subscriber bookings by group id. The descriptive fields of
// each subscription come from its earliest-dated booking, whatever the input
// order. A booking counts as future when its date is today or later and it is
// not cancelled; a subscription with no future bookings is cancelled.
func Aggregate(bookings []*Booking, today time.Time) []*Subscription {
	today = civilDay(today)
	groups := make(map[string]*Subscription)

	for _, b := range bookings {
		if !b.IsSubscriber || b.GroupID == nil {
			continue
		}
		date := civilDay(b.Date)

		sub, ok := groups[*b.GroupID]
		if !ok {
			sub = &Subscription{GroupID: *b.GroupID}
			groups[*b.GroupID] = sub
		}
		if !ok || date.Before(sub.FirstDate) {
			sub.CustomerName = b.CustomerName
			sub.CustomerPhone = b.CustomerPhone
			sub.FieldID = b.FieldID
			sub.FieldName = b.FieldName
			sub.FacilityName = b.FacilityName
			sub.Weekday = date.Weekday()
			sub.StartTime = b.StartTime
			sub.EndTime = b.EndTime
			sub.FirstDate = date
		}

		sub.TotalCount++
		if !date.Before(today) && b.Status != StatusCancelled {
			sub.FutureCount++
		}
	}

	out := make([]*Subscription, 0, len(groups))
	for _, sub := range groups {
		sub.Status = SubscriptionActive
		if sub.FutureCount == 0 {
			sub.Status = SubscriptionCancelled
		}
		out = append(out, sub)
	}

	// Active first, then by weekday and start time as the admin panel lists them.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Status != b.Status {
			return a.Status == SubscriptionActive
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.GroupID < b.GroupID
	})
	return out
}
