package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfSlotFree inserts b only when no pending or approved booking holds
	// its slot. The check and the insert are a single statement. It reports
	// false when the slot was occupied.
	CreateIfSlotFree(ctx context.Context, b *Booking) (bool, error)
	// FindSlot returns the live (non-cancelled) bookings of one slot.
	FindSlot(ctx context.Context, fieldID string, date time.Time, startTime string) ([]*Booking, error)
	// CreateMany inserts all bookings in one statement.
	CreateMany(ctx context.Context, bookings []*Booking) error
	// ApprovedDates returns which of dates already carry an approved booking at startTime.
	ApprovedDates(ctx context.Context, fieldID string, dates []time.Time, startTime string) ([]time.Time, error)

	ListSubscriptionBookings(ctx context.Context) ([]*Booking, error)
	GroupExists(ctx context.Context, groupID string) (bool, error)
	// CancelFutureInGroup cancels every live booking of the group dated on or after from.
	CancelFutureInGroup(ctx context.Context, groupID string, from time.Time) (int64, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id", "b.field_id", "f.name", "fa.name",
	"b.booking_date", "b.start_time", "b.end_time",
	"b.customer_name", "b.customer_phone", "b.status",
	"b.is_archived", "b.is_subscriber", "b.subscriber_group_id::text", "b.created_at",
}

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("public.bookings b").
		Join("public.fields f ON f.id = b.field_id").
		Join("public.facilities fa ON fa.id = f.facility_id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.FieldID, &b.FieldName, &b.FacilityName,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.CustomerName, &b.CustomerPhone, &b.Status,
		&b.IsArchived, &b.IsSubscriber, &b.GroupID, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]*Booking, error) {
	defer rows.Close()

	var result []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *pgxRepository) CreateIfSlotFree(ctx context.Context, b *Booking) (bool, error) {
	// The inner builder keeps '?' placeholders; the outer one numbers them all.
	values := squirrel.Select().
		Column("?::uuid", b.FieldID).
		Column("?::date", b.Date).
		Column("?::text", b.StartTime).
		Column("?::text", b.EndTime).
		Column("?::text", b.CustomerName).
		Column("?::text", b.CustomerPhone).
		Column("?::text", string(b.Status)).
		Column("?::boolean", b.IsArchived).
		Column("?::boolean", b.IsSubscriber).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM public.bookings WHERE field_id = ?::uuid AND booking_date = ?::date AND start_time = ? AND status IN ('pending', 'approved'))",
			b.FieldID, b.Date, b.StartTime,
		))

	query, args, err := psql.Insert("public.bookings").
		Columns("field_id", "booking_date", "start_time", "end_time", "customer_name", "customer_phone", "status", "is_archived", "is_subscriber").
		Select(values).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if isUniqueViolation(err) {
			// Lost a race against a concurrent insert on the same slot.
			return false, ErrSlotTaken
		}
		return false, fmt.Errorf("create booking failed: %w", err)
	}
	return true, nil
}

func (r *pgxRepository) FindSlot(ctx context.Context, fieldID string, date time.Time, startTime string) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.field_id": fieldID, "b.booking_date": date, "b.start_time": startTime}).
		Where(squirrel.NotEq{"b.status": string(StatusCancelled)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find slot query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find slot failed: %w", err)
	}
	return collectBookings(rows)
}

func (r *pgxRepository) CreateMany(ctx context.Context, bookings []*Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ib := psql.Insert("public.bookings").
		Columns("field_id", "booking_date", "start_time", "end_time", "customer_name", "customer_phone", "status", "is_archived", "is_subscriber", "subscriber_group_id")
	for _, b := range bookings {
		ib = ib.Values(b.FieldID, b.Date, b.StartTime, b.EndTime, b.CustomerName, b.CustomerPhone, string(b.Status), b.IsArchived, b.IsSubscriber, b.GroupID)
	}

	query, args, err := ib.Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("build batch booking query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSubscriptionConflict
		}
		return fmt.Errorf("batch booking insert failed: %w", err)
	}
	defer rows.Close()

	// RETURNING preserves the VALUES order for a single INSERT.
	i := 0
	for rows.Next() {
		if i < len(bookings) {
			if err := rows.Scan(&bookings[i].ID, &bookings[i].CreatedAt); err != nil {
				return fmt.Errorf("scan batch booking failed: %w", err)
			}
		}
		i++
	}
	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return ErrSubscriptionConflict
		}
		return fmt.Errorf("batch booking insert failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ApprovedDates(ctx context.Context, fieldID string, dates []time.Time, startTime string) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	query, args, err := psql.Select("booking_date").
		From("public.bookings").
		Where(squirrel.Eq{
			"field_id":     fieldID,
			"start_time":   startTime,
			"status":       string(StatusApproved),
			"booking_date": dates,
		}).
		OrderBy("booking_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build approved dates query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("approved dates query failed: %w", err)
	}
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan approved date failed: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *pgxRepository) ListSubscriptionBookings(ctx context.Context) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.is_subscriber": true}).
		Where(squirrel.NotEq{"b.subscriber_group_id": nil}).
		OrderBy("b.booking_date ASC", "b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subscription bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscription bookings failed: %w", err)
	}
	return collectBookings(rows)
}

func (r *pgxRepository) GroupExists(ctx context.Context, groupID string) (bool, error) {
	query, args, err := psql.Select().
		Column(squirrel.Expr("EXISTS (SELECT 1 FROM public.bookings WHERE subscriber_group_id = ?::uuid)", groupID)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build group exists query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("group exists query failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) CancelFutureInGroup(ctx context.Context, groupID string, from time.Time) (int64, error) {
	query, args, err := psql.Update("public.bookings").
		Set("status", string(StatusCancelled)).
		Where(squirrel.Eq{"subscriber_group_id": groupID}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.NotEq{"status": string(StatusCancelled)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cancel subscription query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cancel subscription failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	qb := selectBookings()
	if filter.FieldID != "" {
		qb = qb.Where(squirrel.Eq{"b.field_id": filter.FieldID})
	}
	if filter.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"b.booking_date": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"b.booking_date": *filter.To})
	}
	if !filter.IncludeAll {
		qb = qb.Where(squirrel.NotEq{"b.status": string(StatusCancelled)}).
			Where(squirrel.Eq{"b.is_archived": false})
	}

	query, args, err := qb.OrderBy("b.booking_date ASC", "b.start_time ASC", "b.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	return collectBookings(rows)
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", string(b.Status)).
		Set("is_archived", b.IsArchived).
		Set("is_subscriber", b.IsSubscriber).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
