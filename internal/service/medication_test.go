package service

import (
	"context"
	"testing"

	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/repository"
)

func newTestMedicationService() *MedicationService {
	return NewMedicationService(repository.NewMedicationRepository(nil))
}

func TestCreateMedication_EmptyName(t *testing.T) {
	svc := newTestMedicationService()

	_, err := svc.CreateMedication(context.Background(), model.MedicationRequest{
		Name:   "",
		Dosage: "500mg",
	})

	if err != ErrMedicationNameRequired {
		t.Errorf("expected ErrMedicationNameRequired, got %v", err)
	}
}

func TestCreateMedication_EmptyDosage(t *testing.T) {
	svc := newTestMedicationService()

	_, err := svc.CreateMedication(context.Background(), model.MedicationRequest{
		Name:   "Paracetamol",
		Dosage: "",
	})

	if err != ErrMedicationDosageRequired {
		t.Errorf("expected ErrMedicationDosageRequired, got %v", err)
	}
}

func TestDefaultMedications(t *testing.T) {
	if len(defaultMedications) == 0 {
		t.Fatal("default medication set should not be empty")
	}
	for _, med := range defaultMedications {
		if med.Name == "" || med.Dosage == "" {
			t.Errorf("default medication %+v missing name or dosage", med)
		}
	}
}
