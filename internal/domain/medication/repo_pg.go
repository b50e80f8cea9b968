package medication

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

// -- Medications --

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &medicationRepoPG{pool: pool}
}

const medCols = `id, user_id, name, dosage, frequency, instructions,
	start_date, end_date, is_active, created_at, updated_at`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.Instructions,
		&m.StartDate, &m.EndDate, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *medicationRepoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medications (id, user_id, name, dosage, frequency, instructions, start_date, end_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+medCols,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Instructions, m.StartDate, m.EndDate)

	saved, err := scanMedication(row)
	if err != nil {
		return err
	}
	*m = *saved
	return nil
}

func (r *medicationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return scanMedication(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+medCols+` FROM medications WHERE id = $1`, id))
}

func (r *medicationRepoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+medCols+` FROM medications
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicationRepoPG) Update(ctx context.Context, id, userID uuid.UUID, in UpdateMedicationInput) (*Medication, error) {
	return scanMedication(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE medications SET
			name = COALESCE($3, name),
			dosage = COALESCE($4, dosage),
			frequency = COALESCE($5, frequency),
			instructions = COALESCE($6, instructions),
			start_date = COALESCE($7, start_date),
			end_date = COALESCE($8, end_date),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+medCols,
		id, userID, in.Name, in.Dosage, in.Frequency, in.Instructions, in.StartDate, in.EndDate))
}

func (r *medicationRepoPG) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE medications SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		id, userID)
	return err
}

// -- Schedules --

type scheduleRepoPG struct{ pool *pgxpool.Pool }

func NewScheduleRepoPG(pool *pgxpool.Pool) ScheduleRepository {
	return &scheduleRepoPG{pool: pool}
}

const schedCols = `id, medication_id, scheduled_time::text, created_at`

func scanSchedule(row pgx.Row) (*Schedule, error) {
	var s Schedule
	err := row.Scan(&s.ID, &s.MedicationID, &s.ScheduledTime, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepoPG) Create(ctx context.Context, s *Schedule) error {
	s.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medication_schedules (id, medication_id, scheduled_time)
		VALUES ($1,$2,$3::time)
		RETURNING `+schedCols,
		s.ID, s.MedicationID, s.ScheduledTime)

	saved, err := scanSchedule(row)
	if err != nil {
		return err
	}
	*s = *saved
	return nil
}

func (r *scheduleRepoPG) ListByMedication(ctx context.Context, medicationID uuid.UUID) ([]*Schedule, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+schedCols+` FROM medication_schedules
		WHERE medication_id = $1
		ORDER BY scheduled_time`,
		medicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// -- Logs --

type logRepoPG struct{ pool *pgxpool.Pool }

func NewLogRepoPG(pool *pgxpool.Pool) LogRepository {
	return &logRepoPG{pool: pool}
}

const logCols = `id, medication_id, scheduled_date, taken_at, status, notes, created_at`

func scanLog(row pgx.Row) (*Log, error) {
	var l Log
	err := row.Scan(&l.ID, &l.MedicationID, &l.ScheduledDate, &l.TakenAt, &l.Status,
		&l.Notes, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *logRepoPG) Create(ctx context.Context, l *Log) error {
	l.ID = uuid.New()
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medication_logs (id, medication_id, scheduled_date, taken_at, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+logCols,
		l.ID, l.MedicationID, l.ScheduledDate, l.TakenAt, l.Status, l.Notes)

	saved, err := scanLog(row)
	if err != nil {
		return err
	}
	*l = *saved
	return nil
}

func (r *logRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Log, error) {
	return scanLog(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+logCols+` FROM medication_logs WHERE id = $1`, id))
}

func (r *logRepoPG) ListByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time, limit, offset int) ([]*LogWithMedication, error) {
	// Ownership is enforced by the join: a log is visible only through a
	// medication belonging to the caller.
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT l.id, l.medication_id, l.scheduled_date, l.taken_at, l.status, l.notes, l.created_at,
			m.id, m.user_id, m.name, m.dosage, m.frequency, m.instructions,
			m.start_date, m.end_date, m.is_active, m.created_at, m.updated_at
		FROM medication_logs l
		JOIN medications m ON m.id = l.medication_id
		WHERE m.user_id = $1
			AND ($2::timestamptz IS NULL OR l.scheduled_date >= $2)
			AND ($3::timestamptz IS NULL OR l.scheduled_date <= $3)
		ORDER BY l.scheduled_date DESC
		LIMIT $4 OFFSET $5`,
		userID, start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*LogWithMedication
	for rows.Next() {
		var lm LogWithMedication
		err := rows.Scan(
			&lm.ID, &lm.MedicationID, &lm.ScheduledDate, &lm.TakenAt, &lm.Status, &lm.Notes, &lm.CreatedAt,
			&lm.Medication.ID, &lm.Medication.UserID, &lm.Medication.Name, &lm.Medication.Dosage,
			&lm.Medication.Frequency, &lm.Medication.Instructions, &lm.Medication.StartDate,
			&lm.Medication.EndDate, &lm.Medication.IsActive, &lm.Medication.CreatedAt, &lm.Medication.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, &lm)
	}
	return items, rows.Err()
}

func (r *logRepoPG) Update(ctx context.Context, id uuid.UUID, in UpdateLogInput) (*Log, error) {
	return scanLog(conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE medication_logs SET
			scheduled_date = COALESCE($2, scheduled_date),
			taken_at = COALESCE($3, taken_at),
			status = COALESCE($4, status),
			notes = COALESCE($5, notes)
		WHERE id = $1
		RETURNING `+logCols,
		id, in.ScheduledDate, in.TakenAt, in.Status, in.Notes))
}

func (r *logRepoPG) ListForDay(ctx context.Context, medicationID uuid.UUID, dayStart, dayEnd time.Time) ([]*Log, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+logCols+` FROM medication_logs
		WHERE medication_id = $1 AND scheduled_date >= $2 AND scheduled_date < $3
		ORDER BY scheduled_date`,
		medicationID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
