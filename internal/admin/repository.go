package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

// Repository defines methods for accessing admin accounts.
type Repository interface {
	Count(ctx context.Context) (int, error)
	// CreateFirst inserts a only when the table is empty. It reports false otherwise.
	CreateFirst(ctx context.Context, a *Admin) (bool, error)
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	List(ctx context.Context) ([]*Admin, error)
	// Update persists the password hash and permissions.
	Update(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var adminColumns = []string{"id", "username", "password_hash", "role", "permissions", "created_at"}

func scanAdmin(row pgx.Row) (*Admin, error) {
	var (
		a     Admin
		perms []byte
	)
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &perms, &a.CreatedAt); err != nil {
		return nil, err
	}

	// Stored maps may be partial; missing keys keep their defaults.
	a.Permissions = auth.DefaultPermissions
	if len(perms) > 0 {
		if err := json.Unmarshal(perms, &a.Permissions); err != nil {
			return nil, fmt.Errorf("decode permissions failed: %w", err)
		}
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From("public.admin_users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count admins query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins failed: %w", err)
	}
	return n, nil
}

func (r *pgxRepository) CreateFirst(ctx context.Context, a *Admin) (bool, error) {
	perms, err := json.Marshal(a.Permissions)
	if err != nil {
		return false, fmt.Errorf("encode permissions failed: %w", err)
	}

	values := squirrel.Select().
		Column("?::text", a.Username).
		Column("?::text", a.PasswordHash).
		Column("?::text", string(a.Role)).
		Column("?::jsonb", perms).
		Where("NOT EXISTS (SELECT 1 FROM public.admin_users)")

	query, args, err := psql.Insert("public.admin_users").
		Columns("username", "password_hash", "role", "permissions").
		Select(values).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create first admin query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("create first admin failed: %w", err)
	}
	return true, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Admin) error {
	perms, err := json.Marshal(a.Permissions)
	if err != nil {
		return fmt.Errorf("encode permissions failed: %w", err)
	}

	query, args, err := psql.Insert("public.admin_users").
		Columns("username", "password_hash", "role", "permissions").
		Values(a.Username, a.PasswordHash, string(a.Role), perms).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create admin query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create admin failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) getBy(ctx context.Context, column, value string) (*Admin, error) {
	query, args, err := psql.Select(adminColumns...).
		From("public.admin_users").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get admin query failed: %w", err)
	}

	a, err := scanAdmin(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Admin, error) {
	return r.getBy(ctx, "id", id)
}

func (r *pgxRepository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	return r.getBy(ctx, "username", username)
}

func (r *pgxRepository) List(ctx context.Context) ([]*Admin, error) {
	query, args, err := psql.Select(adminColumns...).
		From("public.admin_users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list admins query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list admins failed: %w", err)
	}
	defer rows.Close()

	var result []*Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin failed: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, a *Admin) error {
	perms, err := json.Marshal(a.Permissions)
	if err != nil {
		return fmt.Errorf("encode permissions failed: %w", err)
	}

	query, args, err := psql.Update("public.admin_users").
		Set("password_hash", a.PasswordHash).
		Set("permissions", squirrel.Expr("?::jsonb", perms)).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update admin query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update admin failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.admin_users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete admin query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete admin failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
