package goals

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

const goalCols = `id, user_id, title, description, target_value, current_value,
	frequency, is_active, created_at, updated_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetValue,
		&g.CurrentValue, &g.Frequency, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repoPG) Create(ctx context.Context, g *Goal) error {
	g.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO health_goals (id, user_id, title, description, target_value, current_value, frequency)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+goalCols,
		g.ID, g.UserID, g.Title, g.Description, g.TargetValue, g.CurrentValue, g.Frequency)

	saved, err := scanGoal(row)
	if err != nil {
		return err
	}
	*g = *saved
	return nil
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+goalCols+` FROM health_goals
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, id, userID uuid.UUID, in UpdateGoalInput) (*Goal, error) {
	return scanGoal(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE health_goals SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			target_value = COALESCE($5, target_value),
			current_value = COALESCE($6, current_value),
			frequency = COALESCE($7, frequency),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+goalCols,
		id, userID, in.Title, in.Description, in.TargetValue, in.CurrentValue, in.Frequency))
}

func (r *repoPG) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE health_goals SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		id, userID)
	return err
}
