package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/medtrack/medtrack-go/internal/model"
)

var ErrMedicationNotFound = errors.New("medication not found")

// MedicationRepository handles medication persistence operations.
type MedicationRepository struct {
	db *sql.DB
}

// NewMedicationRepository creates a new MedicationRepository.
func NewMedicationRepository(db *sql.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// Create inserts a new medication and sets the generated ID on the struct.
func (r *MedicationRepository) Create(ctx context.Context, med *model.Medication) error {
	query := `INSERT INTO medications (name, description, dosage) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, med.Name, med.Description, med.Dosage)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	med.ID = id
	return nil
}

// CreateBatch inserts all given medications within a single transaction.
// Either every row is created or none is.
func (r *MedicationRepository) CreateBatch(ctx context.Context, meds []model.Medication) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO medications (name, description, dosage) VALUES (?, ?, ?)`
	for i := range meds {
		result, err := tx.ExecContext(ctx, query, meds[i].Name, meds[i].Description, meds[i].Dosage)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		meds[i].ID = id
	}

	return tx.Commit()
}

// GetByID retrieves a medication by its ID.
func (r *MedicationRepository) GetByID(ctx context.Context, id int64) (*model.Medication, error) {
	query := `SELECT id, name, description, dosage, created_at, updated_at FROM medications WHERE id = ?`

	med := &model.Medication{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&med.ID, &med.Name, &description, &med.Dosage, &med.CreatedAt, &med.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	med.Description = description.String

	return med, nil
}

// List retrieves all medications ordered by name.
func (r *MedicationRepository) List(ctx context.Context) ([]model.Medication, error) {
	query := `SELECT id, name, description, dosage, created_at, updated_at FROM medications ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meds []model.Medication
	for rows.Next() {
		var m model.Medication
		var description sql.NullString
		if err := rows.Scan(
			&m.ID, &m.Name, &description, &m.Dosage, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Description = description.String
		meds = append(meds, m)
	}

	return meds, rows.Err()
}

// Update replaces a medication's name, description and dosage.
func (r *MedicationRepository) Update(ctx context.Context, med *model.Medication) error {
	query := `UPDATE medications SET name = ?, description = ?, dosage = ? WHERE id = ?`

	// MySQL reports zero affected rows for a no-op update, so existence is
	// checked by the caller, not here.
	_, err := r.db.ExecContext(ctx, query, med.Name, med.Description, med.Dosage, med.ID)
	return err
}

// Delete removes a medication by ID.
func (r *MedicationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return checkAffected(result, ErrMedicationNotFound)
}
