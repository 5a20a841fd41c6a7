package setting

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	All(ctx context.Context) (Settings, error)
	// Upsert writes every pair in one transaction.
	Upsert(ctx context.Context, values Settings) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) All(ctx context.Context) (Settings, error) {
	query, args, err := psql.Select("key", "value").
		From("public.site_settings").
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list settings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings failed: %w", err)
	}
	defer rows.Close()

	out := Settings{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting failed: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *pgxRepository) Upsert(ctx context.Context, values Settings) error {
	// Stable key order keeps lock acquisition consistent across writers.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, k := range keys {
			query, args, err := psql.Insert("public.site_settings").
				Columns("key", "value", "updated_at").
				Values(k, values[k], squirrel.Expr("now()")).
				Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("build upsert setting query failed: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert setting %q failed: %w", k, err)
			}
		}
		return nil
	})
}
