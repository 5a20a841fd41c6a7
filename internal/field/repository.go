package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Field) error
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, error)
	Update(ctx context.Context, f *Field) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectFields() squirrel.SelectBuilder {
	return psql.Select("f.id", "f.facility_id", "fa.name", "f.name", "f.type", "f.created_at").
		From("public.fields f").
		Join("public.facilities fa ON fa.id = f.facility_id")
}

func scanField(row pgx.Row) (*Field, error) {
	var f Field
	if err := row.Scan(&f.ID, &f.FacilityID, &f.FacilityName, &f.Name, &f.Type, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func (r *pgxRepository) Create(ctx context.Context, f *Field) error {
	query, args, err := psql.Insert("public.fields").
		Columns("facility_id", "name", "type").
		Values(f.FacilityID, f.Name, f.Type).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return ErrFacilityNotFound
		}
		return fmt.Errorf("create field failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Field, error) {
	query, args, err := selectFields().Where(squirrel.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field query failed: %w", err)
	}

	f, err := scanField(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field failed: %w", err)
	}
	return f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Field, error) {
	qb := selectFields().OrderBy("fa.name ASC", "f.name ASC")
	if filter.FacilityID != "" {
		qb = qb.Where(squirrel.Eq{"f.facility_id": filter.FacilityID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list fields query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fields failed: %w", err)
	}
	defer rows.Close()

	var result []*Field
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field failed: %w", err)
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, f *Field) error {
	query, args, err := psql.Update("public.fields").
		Set("facility_id", f.FacilityID).
		Set("name", f.Name).
		Set("type", f.Type).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrFacilityNotFound
		}
		return fmt.Errorf("update field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
