package metrics

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

const metricCols = `id, user_id, metric_type, value, unit, recorded_at, notes, created_at`

func scanMetric(row pgx.Row) (*Metric, error) {
	var m Metric
	err := row.Scan(&m.ID, &m.UserID, &m.MetricType, &m.Value, &m.Unit,
		&m.RecordedAt, &m.Notes, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repoPG) Create(ctx context.Context, m *Metric) error {
	m.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO health_metrics (id, user_id, metric_type, value, unit, recorded_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+metricCols,
		m.ID, m.UserID, m.MetricType, m.Value, m.Unit, m.RecordedAt, m.Notes)

	saved, err := scanMetric(row)
	if err != nil {
		return err
	}
	*m = *saved
	return nil
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, metricType string, limit, offset int) ([]*Metric, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+metricCols+` FROM health_metrics
		WHERE user_id = $1 AND ($2 = '' OR metric_type = $2)
		ORDER BY recorded_at DESC
		LIMIT $3 OFFSET $4`,
		userID, metricType, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Metric
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) LatestByType(ctx context.Context, userID uuid.UUID, metricType string) (*Metric, error) {
	return scanMetric(conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+metricCols+` FROM health_metrics
		WHERE user_id = $1 AND metric_type = $2
		ORDER BY recorded_at DESC
		LIMIT 1`,
		userID, metricType))
}
