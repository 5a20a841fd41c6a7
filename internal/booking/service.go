package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/pkg/phone"
	"github.com/halisaha/field-booking-backend/internal/pkg/validation"
)

// FieldChecker is the slice of the field module bookings depend on.
type FieldChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type CreateRequest struct {
	FieldID       string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	EndTime       string // HH:MM
	CustomerName  string
	CustomerPhone string
}

type SubscriptionRequest struct {
	FieldID       string
	StartDate     string // YYYY-MM-DD
	StartTime     string
	EndTime       string
	CustomerName  string
	CustomerPhone string
	// Weeks is the number of weekly occurrences; zero means DefaultWeeks.
	Weeks int
}

type SubscriptionResult struct {
	GroupID string
	Total   int
}

// ConflictDetails accompanies ErrSubscriptionConflict.
type ConflictDetails struct {
	Dates []string `json:"dates"`
}

// Timetable is one week of slot states for a field.
type Timetable struct {
	FieldID   string
	WeekStart time.Time
	Days      []Day
}

type Service interface {
	// Create places an ad-hoc pending booking after the conflict checks.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// CreateSubscription generates the weekly approved bookings of a subscription.
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (*SubscriptionResult, error)
	ListSubscriptions(ctx context.Context) ([]*Subscription, error)
	// CancelSubscription cancels the remaining occurrences of a group.
	CancelSubscription(ctx context.Context, groupID string) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Timetable(ctx context.Context, fieldID string, weekOffset int) (*Timetable, error)
	ApplyAction(ctx context.Context, id string, action Action) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	fields FieldChecker
	loc    *time.Location
	now    func() time.Time
}

// NewService builds the booking service. loc is the business time zone that
// decides what "today" and "past" mean.
func NewService(repo Repository, fields FieldChecker, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		fields: fields,
		loc:    loc,
		now:    time.Now,
	}
}

// slotRequest is the validated form of a date and hour range.
type slotRequest struct {
	date  time.Time
	hour  int
	start string
	end   string
}

// parseSlot checks that start and end span exactly one bookable hour.
func parseSlot(date, start, end string) (slotRequest, error) {
	day, err := time.Parse(validation.DateLayout, date)
	if err != nil {
		return slotRequest{}, ErrInvalidInput
	}
	startMin, ok := validation.ParseHourMinute(start)
	if !ok {
		return slotRequest{}, ErrInvalidInput
	}
	endMin, ok := validation.ParseHourMinute(end)
	if !ok {
		return slotRequest{}, ErrInvalidInput
	}

	hour := startMin / 60
	if startMin%60 != 0 || hour < FirstHour || hour > LastHour || endMin != startMin+60 {
		return slotRequest{}, ErrInvalidTimeRange
	}
	return slotRequest{date: civilDay(day), hour: hour, start: start, end: end}, nil
}

// requireAll trims every value in place and fails if any ends up empty.
func requireAll(values ...*string) error {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *service) ensureField(ctx context.Context, fieldID string) error {
	ok, err := s.fields.Exists(ctx, fieldID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFieldNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate input
	if err := requireAll(&req.FieldID, &req.Date, &req.StartTime, &req.EndTime, &req.CustomerName, &req.CustomerPhone); err != nil {
		return nil, err
	}
	normalized, ok := phone.Normalize(req.CustomerPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	slot, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if SlotStart(slot.date, slot.hour, s.loc).Before(s.now()) {
		return nil, ErrSlotInPast
	}

	// 2. Validate field exists
	if err := s.ensureField(ctx, req.FieldID); err != nil {
		return nil, err
	}

	// 3. Insert unless the slot is held
	b := &Booking{
		FieldID:       req.FieldID,
		Date:          slot.date,
		StartTime:     slot.start,
		EndTime:       slot.end,
		CustomerName:  req.CustomerName,
		CustomerPhone: normalized,
		Status:        StatusPending,
	}
	created, err := s.repo.CreateIfSlotFree(ctx, b)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, s.explainConflict(ctx, b)
	}

	zerolog.Ctx(ctx).Info().
		Str("booking_id", b.ID).
		Str("field_id", b.FieldID).
		Str("date", b.Date.Format(validation.DateLayout)).
		Str("start", b.StartTime).
		Msg("booking requested")

	// 4. Reload with field and facility names
	return s.repo.GetByID(ctx, b.ID)
}

// explainConflict reports why the conditional insert found the slot occupied.
func (s *service) explainConflict(ctx context.Context, b *Booking) error {
	existing, err := s.repo.FindSlot(ctx, b.FieldID, b.Date, b.StartTime)
	if err != nil {
		return err
	}
	pending := false
	for _, e := range existing {
		switch e.Status {
		case StatusApproved:
			return ErrSlotTaken
		case StatusPending:
			pending = true
		}
	}
	if pending {
		return ErrAlreadyPending
	}
	// The blocking booking was cancelled in the meantime.
	return ErrSlotTaken
}

func (s *service) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*SubscriptionResult, error) {
	if err := requireAll(&req.FieldID, &req.StartDate, &req.StartTime, &req.EndTime, &req.CustomerName, &req.CustomerPhone); err != nil {
		return nil, err
	}
	weeks := req.Weeks
	if weeks == 0 {
		weeks = DefaultWeeks
	}
	if weeks < 1 || weeks > MaxWeeks {
		return nil, ErrInvalidWeeks
	}
	normalized, ok := phone.Normalize(req.CustomerPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	slot, err := parseSlot(req.StartDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.ensureField(ctx, req.FieldID); err != nil {
		return nil, err
	}

	groupID := uuid.NewString()
	records := GenerateSubscription(groupID, SubscriptionTemplate{
		FieldID:       req.FieldID,
		StartDate:     slot.date,
		StartTime:     slot.start,
		EndTime:       slot.end,
		CustomerName:  req.CustomerName,
		CustomerPhone: normalized,
	}, weeks)

	dates := make([]time.Time, len(records))
	for i, r := range records {
		dates[i] = r.Date
	}
	taken, err := s.repo.ApprovedDates(ctx, req.FieldID, dates, slot.start)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		details := ConflictDetails{Dates: make([]string, len(taken))}
		for i, d := range taken {
			details.Dates[i] = d.Format(validation.DateLayout)
		}
		return nil, ErrSubscriptionConflict.WithDetails(details)
	}

	if err := s.repo.CreateMany(ctx, records); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("group_id", groupID).
		Str("field_id", req.FieldID).
		Int("weeks", weeks).
		Msg("subscription created")

	return &SubscriptionResult{GroupID: groupID, Total: len(records)}, nil
}

func (s *service) ListSubscriptions(ctx context.Context) ([]*Subscription, error) {
	bookings, err := s.repo.ListSubscriptionBookings(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(bookings, Today(s.now(), s.loc)), nil
}

func (s *service) CancelSubscription(ctx context.Context, groupID string) error {
	exists, err := s.repo.GroupExists(ctx, groupID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSubscriptionNotFound
	}

	n, err := s.repo.CancelFutureInGroup(ctx, groupID, Today(s.now(), s.loc))
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("group_id", groupID).Int64("cancelled", n).Msg("subscription cancelled")
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Timetable(ctx context.Context, fieldID string, weekOffset int) (*Timetable, error) {
	if err := s.ensureField(ctx, fieldID); err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	monday := WeekStart(Today(now, s.loc), weekOffset)
	sunday := monday.AddDate(0, 0, 6)

	bookings, err := s.repo.List(ctx, Filter{FieldID: fieldID, From: &monday, To: &sunday})
	if err != nil {
		return nil, err
	}

	return &Timetable{
		FieldID:   fieldID,
		WeekStart: monday,
		Days:      BuildWeek(now, monday, bookings),
	}, nil
}

func (s *service) ApplyAction(ctx context.Context, id string, action Action) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := action.Apply(b); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("booking_id", id).Str("action", string(action)).Msg("booking updated")
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
