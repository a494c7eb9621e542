package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/repository"
)

var (
	ErrMedicationNameRequired   = errors.New("medication name is required")
	ErrMedicationDosageRequired = errors.New("medication dosage is required")
	ErrMedicationNotFound       = errors.New("medication not found")
)

// defaultMedications is the reference set loaded by the seed endpoint.
var defaultMedications = []model.Medication{
	{Name: "Dipirona", Description: "Analgesic and antipyretic", Dosage: "500mg"},
	{Name: "Paracetamol", Description: "Analgesic and antipyretic", Dosage: "750mg"},
	{Name: "Omeprazol", Description: "Gastric protector", Dosage: "20mg"},
	{Name: "Amoxicilina", Description: "Antibiotic", Dosage: "500mg"},
}

// MedicationService handles medication business logic. Medications are
// shared reference data, visible to every authenticated user.
type MedicationService struct {
	repo *repository.MedicationRepository
}

// NewMedicationService creates a new MedicationService.
func NewMedicationService(repo *repository.MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

// CreateMedication creates a new medication.
func (s *MedicationService) CreateMedication(ctx context.Context, req model.MedicationRequest) (model.MedicationResponse, error) {
	if err := validateMedication(req); err != nil {
		return model.MedicationResponse{}, err
	}

	med := &model.Medication{
		Name:        req.Name,
		Description: req.Description,
		Dosage:      req.Dosage,
	}

	if err := s.repo.Create(ctx, med); err != nil {
		return model.MedicationResponse{}, err
	}

	return medicationToResponse(med), nil
}

// Seed loads the default medication set in a single transaction; either all
// rows are created or none is.
func (s *MedicationService) Seed(ctx context.Context) (model.SeedResponse, error) {
	meds := make([]model.Medication, len(defaultMedications))
	copy(meds, defaultMedications)

	if err := s.repo.CreateBatch(ctx, meds); err != nil {
		return model.SeedResponse{}, err
	}

	result := make([]model.MedicationResponse, len(meds))
	for i := range meds {
		result[i] = medicationToResponse(&meds[i])
	}

	return model.SeedResponse{
		Message:     fmt.Sprintf("%d medications created", len(meds)),
		Medications: result,
	}, nil
}

// ListMedications returns all medications ordered by name.
func (s *MedicationService) ListMedications(ctx context.Context) ([]model.MedicationResponse, error) {
	meds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.MedicationResponse, len(meds))
	for i := range meds {
		result[i] = medicationToResponse(&meds[i])
	}
	return result, nil
}

// GetMedication returns one medication by ID.
func (s *MedicationService) GetMedication(ctx context.Context, id int64) (model.MedicationResponse, error) {
	med, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return model.MedicationResponse{}, ErrMedicationNotFound
		}
		return model.MedicationResponse{}, err
	}

	return medicationToResponse(med), nil
}

// UpdateMedication replaces a medication's fields.
func (s *MedicationService) UpdateMedication(ctx context.Context, id int64, req model.MedicationRequest) (model.MedicationResponse, error) {
	if err := validateMedication(req); err != nil {
		return model.MedicationResponse{}, err
	}

	med, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return model.MedicationResponse{}, ErrMedicationNotFound
		}
		return model.MedicationResponse{}, err
	}

	med.Name = req.Name
	med.Description = req.Description
	med.Dosage = req.Dosage

	if err := s.repo.Update(ctx, med); err != nil {
		return model.MedicationResponse{}, err
	}

	return medicationToResponse(med), nil
}

// DeleteMedication removes a medication by ID.
func (s *MedicationService) DeleteMedication(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrMedicationNotFound) {
		return ErrMedicationNotFound
	}
	return err
}

func validateMedication(req model.MedicationRequest) error {
	if req.Name == "" {
		return ErrMedicationNameRequired
	}
	if req.Dosage == "" {
		return ErrMedicationDosageRequired
	}
	return nil
}

// medicationToResponse projects a medication onto its API representation.
func medicationToResponse(med *model.Medication) model.MedicationResponse {
	return model.MedicationResponse{
		ID:          med.ID,
		Name:        med.Name,
		Description: med.Description,
		Dosage:      med.Dosage,
		CreatedAt:   med.CreatedAt,
		UpdatedAt:   med.UpdatedAt,
	}
}
