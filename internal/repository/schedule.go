package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/medtrack/medtrack-go/internal/model"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// scheduleColumns is the shared SELECT list for schedule rows joined with
// their medication.
const scheduleColumns = `
	s.id, s.user_id, s.medication_id, s.time, s.status, s.created_at, s.updated_at,
	m.id, m.name, m.description, m.dosage, m.created_at, m.updated_at`

// ScheduleRepository handles schedule persistence operations. Every read and
// write is scoped to the owning user.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new schedule and sets the generated ID on the struct.
func (r *ScheduleRepository) Create(ctx context.Context, sched *model.Schedule) error {
	query := `INSERT INTO schedules (user_id, medication_id, time, status) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, sched.UserID, sched.MedicationID, sched.Time, sched.Status)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	sched.ID = id
	return nil
}

// GetByID retrieves one of the user's schedules joined with its medication.
func (r *ScheduleRepository) GetByID(ctx context.Context, userID, id int64) (*model.Schedule, error) {
	query := `SELECT` + scheduleColumns + `
		FROM schedules s
		JOIN medications m ON m.id = s.medication_id
		WHERE s.id = ? AND s.user_id = ?`

	sched, err := scanSchedule(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	return sched, nil
}

// ListByUser retrieves all of a user's schedules joined with their
// medications, ordered by time ascending.
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID int64) ([]model.Schedule, error) {
	query := `SELECT` + scheduleColumns + `
		FROM schedules s
		JOIN medications m ON m.id = s.medication_id
		WHERE s.user_id = ?
		ORDER BY s.time ASC`

	return r.querySchedules(ctx, query, userID)
}

// ListWindow retrieves a user's schedules with time in the half-open
// interval [start, end), joined with their medications, ordered by time
// ascending. A schedule at exactly end is excluded.
func (r *ScheduleRepository) ListWindow(ctx context.Context, userID int64, start, end time.Time) ([]model.Schedule, error) {
	query := `SELECT` + scheduleColumns + `
		FROM schedules s
		JOIN medications m ON m.id = s.medication_id
		WHERE s.user_id = ? AND s.time >= ? AND s.time < ?
		ORDER BY s.time ASC`

	return r.querySchedules(ctx, query, userID, start, end)
}

// Update replaces the medication, time and status of one of the user's
// schedules.
func (r *ScheduleRepository) Update(ctx context.Context, sched *model.Schedule) error {
	query := `UPDATE schedules SET medication_id = ?, time = ?, status = ? WHERE id = ? AND user_id = ?`

	// MySQL reports zero affected rows for a no-op update, so existence is
	// checked by the caller, not here.
	_, err := r.db.ExecContext(ctx, query, sched.MedicationID, sched.Time, sched.Status, sched.ID, sched.UserID)
	return err
}

// UpdateStatus sets only the status of one of the user's schedules.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, userID, id int64, status string) error {
	query := `UPDATE schedules SET status = ? WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, status, id, userID)
	return err
}

// Delete removes one of the user's schedules by ID.
func (r *ScheduleRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	return checkAffected(result, ErrScheduleNotFound)
}

func (r *ScheduleRepository) querySchedules(ctx context.Context, query string, args ...any) ([]model.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *sched)
	}

	return schedules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*model.Schedule, error) {
	sched := &model.Schedule{}
	var description sql.NullString
	err := row.Scan(
		&sched.ID, &sched.UserID, &sched.MedicationID, &sched.Time, &sched.Status,
		&sched.CreatedAt, &sched.UpdatedAt,
		&sched.Medication.ID, &sched.Medication.Name, &description,
		&sched.Medication.Dosage, &sched.Medication.CreatedAt, &sched.Medication.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sched.Medication.Description = description.String

	return sched, nil
}
