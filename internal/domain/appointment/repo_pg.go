package appointment

import (
	"context"
	"time"

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

const apptCols = `id, user_id, title, description, doctor_name, location,
	appointment_date, duration, status, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.DoctorName,
		&a.Location, &a.AppointmentDate, &a.Duration, &a.Status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO appointments (id, user_id, title, description, doctor_name, location,
			appointment_date, duration, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING `+apptCols,
		a.ID, a.UserID, a.Title, a.Description, a.DoctorName, a.Location,
		a.AppointmentDate, a.Duration, a.Status, a.Notes)

	saved, err := scanAppointment(row)
	if err != nil {
		return err
	}
	*a = *saved
	return nil
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+apptCols+` FROM appointments
		WHERE user_id = $1
		ORDER BY appointment_date DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) Upcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*Appointment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+apptCols+` FROM appointments
		WHERE user_id = $1 AND status = 'scheduled' AND appointment_date >= $2
		ORDER BY appointment_date
		LIMIT 5`,
		userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) Update(ctx context.Context, id, userID uuid.UUID, in UpdateAppointmentInput) (*Appointment, error) {
	return scanAppointment(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE appointments SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			doctor_name = COALESCE($5, doctor_name),
			location = COALESCE($6, location),
			appointment_date = COALESCE($7, appointment_date),
			duration = COALESCE($8, duration),
			status = COALESCE($9, status),
			notes = COALESCE($10, notes),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+apptCols,
		id, userID, in.Title, in.Description, in.DoctorName, in.Location,
		in.AppointmentDate, in.Duration, in.Status, in.Notes))
}

func collect(rows pgx.Rows) ([]*Appointment, error) {
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
