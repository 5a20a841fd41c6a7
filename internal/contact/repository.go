package contact

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context) ([]*Message, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, m *Message) error {
	query, args, err := psql.Insert("public.contact_messages").
		Columns("customer_name", "customer_phone", "message").
		Values(m.CustomerName, m.CustomerPhone, m.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create contact message query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("create contact message failed: %w", err)
	}
	return nil
}

// List returns every message, newest first.
func (r *pgxRepository) List(ctx context.Context) ([]*Message, error) {
	query, args, err := psql.Select("id", "customer_name", "customer_phone", "message", "created_at").
		From("public.contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contact messages query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages failed: %w", err)
	}
	defer rows.Close()

	var result []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.CustomerName, &m.CustomerPhone, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message failed: %w", err)
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}
