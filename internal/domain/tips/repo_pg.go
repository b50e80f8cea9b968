package tips

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carecompanion/carecompanion/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const tipCols = `id, title, content, category, author_name, author_credentials,
	image_url, is_active, created_at, updated_at`

func scanTip(row pgx.Row) (*Tip, error) {
	var t Tip
	err := row.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.AuthorName,
		&t.AuthorCredentials, &t.ImageURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) Create(ctx context.Context, t *Tip) error {
	t.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO health_tips (id, title, content, category, author_name, author_credentials, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+tipCols,
		t.ID, t.Title, t.Content, t.Category, t.AuthorName, t.AuthorCredentials, t.ImageURL)

	saved, err := scanTip(row)
	if err != nil {
		return err
	}
	*t = *saved
	return nil
}

func (r *repoPG) ListActive(ctx context.Context, limit, offset int) ([]*Tip, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+tipCols+` FROM health_tips
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Tip
	for rows.Next() {
		t, err := scanTip(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Random(ctx context.Context) (*Tip, error) {
	return scanTip(conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+tipCols+` FROM health_tips
		WHERE is_active = TRUE
		ORDER BY RANDOM()
		LIMIT 1`))
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM health_tips`).Scan(&n)
	return n, err
}
