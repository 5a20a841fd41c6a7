package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/booking"
	"github.com/halisaha/field-booking-backend/internal/pkg/request"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
	"github.com/halisaha/field-booking-backend/internal/pkg/validation"
)

// actionPermissions maps every admin action to the permission it needs.
var actionPermissions = map[booking.Action]auth.Permission{
	booking.ActionApprove:         auth.PermApproveBookings,
	booking.ActionCancel:          auth.PermCancelBookings,
	booking.ActionArchive:         auth.PermArchiveBookings,
	booking.ActionSetSubscriber:   auth.PermManageSubscribers,
	booking.ActionUnsetSubscriber: auth.PermManageSubscribers,
}

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create handles a visitor's booking request.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, booking.ErrInvalidInput.Message, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		FieldID:       body.FieldID,
		Date:          body.BookingDate,
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": NewBookingResponse(b, true)})
}

// List returns bookings for the timetable. Cancelled and archived rows, as
// well as customer details, are only visible to admins.
func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Geçersiz sorgu parametresi.", err)
		return
	}

	_, isAdmin := auth.GetPrincipal(c)
	if q.IncludeAll && !isAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgUnauthenticated})
		return
	}

	filter := booking.Filter{FieldID: q.FieldID, IncludeAll: q.IncludeAll}
	if q.Start != "" {
		t, _ := time.Parse(validation.DateLayout, q.Start)
		filter.From = &t
	}
	if q.End != "" {
		t, _ := time.Parse(validation.DateLayout, q.End)
		filter.To = &t
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]BookingResponse, len(items))
	for i, b := range items {
		out[i] = NewBookingResponse(b, isAdmin)
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

// Timetable renders one week of slot states for a field.
func (h *Handler) Timetable(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz saha kimliği.", err)
		return
	}
	var q TimetableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Geçersiz hafta.", err)
		return
	}

	tt, err := h.service.Timetable(c.Request.Context(), uri.ID, q.WeekOffset)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTimetableResponse(tt))
}

// Update applies one admin action. The permission depends on the action.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz rezervasyon kimliği.", err)
		return
	}
	var body ActionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, booking.ErrInvalidAction.Message, err)
		return
	}

	action := booking.Action(body.Action)
	perm, ok := actionPermissions[action]
	if !ok {
		response.Error(c, booking.ErrInvalidAction)
		return
	}
	p, _ := auth.GetPrincipal(c)
	if !p.Can(perm) {
		c.JSON(http.StatusForbidden, gin.H{"error": auth.MsgForbidden})
		return
	}

	b, err := h.service.ApplyAction(c.Request.Context(), uri.ID, action)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": NewBookingResponse(b, true)})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz rezervasyon kimliği.", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	subs, err := h.service.ListSubscriptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		out[i] = NewSubscriptionResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": out})
}

func (h *Handler) CreateSubscription(c *gin.Context) {
	var body CreateSubscriptionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, booking.ErrInvalidInput.Message, err)
		return
	}

	res, err := h.service.CreateSubscription(c.Request.Context(), booking.SubscriptionRequest{
		FieldID:       body.FieldID,
		StartDate:     body.StartDate,
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		Weeks:         body.Weeks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"group_id": res.GroupID, "total": res.Total})
}

func (h *Handler) CancelSubscription(c *gin.Context) {
	var uri request.ByGroupIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz abonelik kimliği.", err)
		return
	}

	if err := h.service.CancelSubscription(c.Request.Context(), uri.GroupID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
