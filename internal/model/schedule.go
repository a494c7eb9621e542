package model

import "time"

// Schedule statuses. Transitions are caller-driven; no state machine is
// enforced, any status may be replaced by any other.
const (
	StatusPending  = "PENDING"
	StatusTaken    = "TAKEN"
	StatusNotTaken = "NOT_TAKEN"
)

// ValidStatus reports whether s is one of the known schedule statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusTaken || s == StatusNotTaken
}

// Schedule represents a scheduled medication dose owned by exactly one user.
// Medication is populated when the row is read joined with its medication.
type Schedule struct {
	ID           int64
	UserID       int64
	MedicationID int64
	Time         time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Medication   Medication
}

// ScheduleRequest represents a schedule create or full-update request.
type ScheduleRequest struct {
	MedicationID int64     `json:"medication_id"`
	Time         time.Time `json:"time"`
	Status       string    `json:"status"`
}

// UpdateStatusRequest represents a status-only schedule patch.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ScheduleResponse represents a schedule joined with its medication in API
// responses. The owner id is implied by the authenticated caller.
type ScheduleResponse struct {
	ID           int64              `json:"id"`
	MedicationID int64              `json:"medication_id"`
	Time         time.Time          `json:"time"`
	Status       string             `json:"status"`
	Medication   MedicationResponse `json:"medication"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
