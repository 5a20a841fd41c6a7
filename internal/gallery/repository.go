package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var itemColumns = []string{"id", "emoji", "label", "image_url", "thumbnail_url", "storage_path", "thumbnail_path", "created_at"}

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	if err := row.Scan(&it.ID, &it.Emoji, &it.Label, &it.ImageURL, &it.ThumbnailURL, &it.StoragePath, &it.ThumbnailPath, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	ib := psql.Insert("public.gallery").
		Columns("emoji", "label", "image_url", "thumbnail_url", "storage_path", "thumbnail_path").
		Values(it.Emoji, it.Label, it.ImageURL, it.ThumbnailURL, it.StoragePath, it.ThumbnailPath).
		Suffix("RETURNING id, created_at")
	// Uploads pick their id up front so it matches the stored file names.
	if it.ID != "" {
		ib = psql.Insert("public.gallery").
			Columns("id", "emoji", "label", "image_url", "thumbnail_url", "storage_path", "thumbnail_path").
			Values(it.ID, it.Emoji, it.Label, it.ImageURL, it.ThumbnailURL, it.StoragePath, it.ThumbnailPath).
			Suffix("RETURNING id, created_at")
	}

	query, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("build create gallery item query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&it.ID, &it.CreatedAt); err != nil {
		return fmt.Errorf("create gallery item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	query, args, err := psql.Select(itemColumns...).
		From("public.gallery").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get gallery item query failed: %w", err)
	}

	it, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gallery item failed: %w", err)
	}
	return it, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Item, error) {
	query, args, err := psql.Select(itemColumns...).
		From("public.gallery").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list gallery query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery failed: %w", err)
	}
	defer rows.Close()

	var result []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery item failed: %w", err)
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.gallery").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete gallery item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete gallery item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
