package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/booking"
	"github.com/halisaha/field-booking-backend/internal/pkg/validation"
)

type BookingResponse struct {
	ID                string    `json:"id"`
	FieldID           string    `json:"field_id"`
	FieldName         string    `json:"field_name"`
	FacilityName      string    `json:"facility_name"`
	BookingDate       string    `json:"booking_date"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	CustomerName      string    `json:"customer_name,omitempty"`
	CustomerPhone     string    `json:"customer_phone,omitempty"`
	Status            string    `json:"status"`
	IsArchived        bool      `json:"is_archived"`
	IsSubscriber      bool      `json:"is_subscriber"`
	SubscriberGroupID *string   `json:"subscriber_group_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewBookingResponse converts a booking. Customer details are only included
// when withCustomer is set, so anonymous timetable readers never see them.
func NewBookingResponse(b *booking.Booking, withCustomer bool) BookingResponse {
	resp := BookingResponse{
		ID:                b.ID,
		FieldID:           b.FieldID,
		FieldName:         b.FieldName,
		FacilityName:      b.FacilityName,
		BookingDate:       b.Date.Format(validation.DateLayout),
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		Status:            string(b.Status),
		IsArchived:        b.IsArchived,
		IsSubscriber:      b.IsSubscriber,
		SubscriberGroupID: b.GroupID,
		CreatedAt:         b.CreatedAt,
	}
	if withCustomer {
		resp.CustomerName = b.CustomerName
		resp.CustomerPhone = b.CustomerPhone
	}
	return resp
}

type CreateBookingBody struct {
	FieldID       string `json:"field_id" binding:"required,uuid"`
	BookingDate   string `json:"booking_date" binding:"required,date"`
	StartTime     string `json:"start_time" binding:"required,hourmin"`
	EndTime       string `json:"end_time" binding:"required,hourmin"`
	CustomerName  string `json:"customer_name" binding:"required,max=100"`
	CustomerPhone string `json:"customer_phone" binding:"required,trphone"`
}

type ListBookingsQuery struct {
	FieldID    string `form:"field_id" binding:"omitempty,uuid"`
	Start      string `form:"start" binding:"omitempty,date"`
	End        string `form:"end" binding:"omitempty,date"`
	IncludeAll bool   `form:"include_all"`
}

type ActionBody struct {
	Action string `json:"action" binding:"required"`
}

type TimetableQuery struct {
	WeekOffset int `form:"week_offset" binding:"min=-52,max=52"`
}

type SlotResponse struct {
	Hour      int    `json:"hour"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Bookable  bool   `json:"bookable"`
}

type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type TimetableResponse struct {
	FieldID   string        `json:"field_id"`
	WeekStart string        `json:"week_start"`
	Days      []DayResponse `json:"days"`
}

func NewTimetableResponse(t *booking.Timetable) TimetableResponse {
	days := make([]DayResponse, len(t.Days))
	for i, d := range t.Days {
		slots := make([]SlotResponse, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = SlotResponse{
				Hour:      s.Hour,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Status:    string(s.State),
				Bookable:  s.Bookable(),
			}
		}
		days[i] = DayResponse{Date: d.Date.Format(validation.DateLayout), Slots: slots}
	}
	return TimetableResponse{
		FieldID:   t.FieldID,
		WeekStart: t.WeekStart.Format(validation.DateLayout),
		Days:      days,
	}
}

type CreateSubscriptionBody struct {
	FieldID       string `json:"field_id" binding:"required,uuid"`
	StartDate     string `json:"start_date" binding:"required,date"`
	StartTime     string `json:"start_time" binding:"required,hourmin"`
	EndTime       string `json:"end_time" binding:"required,hourmin"`
	CustomerName  string `json:"customer_name" binding:"required,max=100"`
	CustomerPhone string `json:"customer_phone" binding:"required,trphone"`
	Weeks         int    `json:"weeks" binding:"omitempty,min=1,max=104"`
}

type SubscriptionResponse struct {
	GroupID        string `json:"group_id"`
	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	FieldID        string `json:"field_id"`
	FieldName      string `json:"field_name"`
	FacilityName   string `json:"facility_name"`
	DayOfWeek      int    `json:"day_of_week"` // 0 = Sunday
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	FirstDate      string `json:"first_date"`
	TotalBookings  int    `json:"total_bookings"`
	FutureBookings int    `json:"future_bookings"`
	Status         string `json:"status"`
}

func NewSubscriptionResponse(s *booking.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		GroupID:        s.GroupID,
		CustomerName:   s.CustomerName,
		CustomerPhone:  s.CustomerPhone,
		FieldID:        s.FieldID,
		FieldName:      s.FieldName,
		FacilityName:   s.FacilityName,
		DayOfWeek:      int(s.Weekday),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		FirstDate:      s.FirstDate.Format(validation.DateLayout),
		TotalBookings:  s.TotalCount,
		FutureBookings: s.FutureCount,
		Status:         string(s.Status),
	}
}
