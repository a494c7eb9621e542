package model

import "time"

// Medication represents a medication in the database. Medications are shared
// reference data, not owned by any user.
type Medication struct {
	ID          int64
	Name        string
	Description string
	Dosage      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MedicationRequest represents a medication create or update request.
type MedicationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dosage      string `json:"dosage"`
}

// MedicationResponse represents a medication in API responses.
type MedicationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Dosage      string    `json:"dosage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SeedResponse represents the result of loading the default medication set.
type SeedResponse struct {
	Message     string               `json:"message"`
	Medications []MedicationResponse `json:"medications"`
}
