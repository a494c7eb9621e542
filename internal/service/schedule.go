package service

import (
	"context"
	"errors"
	"time"

	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/repository"
)

var (
	ErrMedicationIDRequired = errors.New("medication_id is required")
	ErrTimeRequired         = errors.New("time is required")
	ErrInvalidStatus        = errors.New("status must be PENDING, TAKEN or NOT_TAKEN")
	ErrScheduleNotFound     = errors.New("schedule not found")
)

// DayWindow is a half-open time interval covering one calendar day:
// Start is included, End is excluded.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TodayWindow returns the day window containing now: midnight of now's
// calendar day to midnight plus 24 hours, in now's location. The server's
// local zone stands in for the caller's; a caller in another timezone gets
// the server's notion of "today".
func TodayWindow(now time.Time) DayWindow {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DayWindow{Start: start, End: start.Add(24 * time.Hour)}
}

// ScheduleService handles schedule business logic. Every operation is scoped
// to the owning user; the user ID always comes from the verified token
// claims, never from the request body.
type ScheduleService struct {
	repo *repository.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// CreateSchedule creates a schedule owned by the given user. An empty status
// defaults to PENDING.
func (s *ScheduleService) CreateSchedule(ctx context.Context, userID int64, req model.ScheduleRequest) (model.ScheduleResponse, error) {
	if req.Status == "" {
		req.Status = model.StatusPending
	}
	if err := validateSchedule(req); err != nil {
		return model.ScheduleResponse{}, err
	}

	sched := &model.Schedule{
		UserID:       userID,
		MedicationID: req.MedicationID,
		Time:         req.Time,
		Status:       req.Status,
	}

	if err := s.repo.Create(ctx, sched); err != nil {
		return model.ScheduleResponse{}, err
	}

	// Re-read to pick up the joined medication and stored timestamps.
	created, err := s.repo.GetByID(ctx, userID, sched.ID)
	if err != nil {
		return model.ScheduleResponse{}, err
	}

	return scheduleToResponse(created), nil
}

// ListSchedules returns all of the user's schedules with their medications,
// ordered by time ascending.
func (s *ScheduleService) ListSchedules(ctx context.Context, userID int64) ([]model.ScheduleResponse, error) {
	schedules, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return schedulesToResponse(schedules), nil
}

// ListToday returns the user's schedules due within the calendar day
// containing now, in the server's local timezone, ordered by time ascending.
// The window is half-open: a schedule at exactly the next midnight is not
// part of today.
func (s *ScheduleService) ListToday(ctx context.Context, userID int64, now time.Time) ([]model.ScheduleResponse, error) {
	window := TodayWindow(now)

	schedules, err := s.repo.ListWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return schedulesToResponse(schedules), nil
}

// UpdateSchedule replaces the medication, time and status of one of the
// user's schedules.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID, id int64, req model.ScheduleRequest) (model.ScheduleResponse, error) {
	if err := validateSchedule(req); err != nil {
		return model.ScheduleResponse{}, err
	}

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.ScheduleResponse{}, err
	}

	sched := &model.Schedule{
		ID:           id,
		UserID:       userID,
		MedicationID: req.MedicationID,
		Time:         req.Time,
		Status:       req.Status,
	}

	if err := s.repo.Update(ctx, sched); err != nil {
		return model.ScheduleResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.ScheduleResponse{}, err
	}

	return scheduleToResponse(updated), nil
}

// UpdateStatus sets only the status of one of the user's schedules. Any
// status may replace any other; there is no transition rule.
func (s *ScheduleService) UpdateStatus(ctx context.Context, userID, id int64, status string) (model.ScheduleResponse, error) {
	if !model.ValidStatus(status) {
		return model.ScheduleResponse{}, ErrInvalidStatus
	}

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.ScheduleResponse{}, err
	}

	if err := s.repo.UpdateStatus(ctx, userID, id, status); err != nil {
		return model.ScheduleResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.ScheduleResponse{}, err
	}

	return scheduleToResponse(updated), nil
}

// DeleteSchedule removes one of the user's schedules.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, id int64) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrScheduleNotFound) {
		return ErrScheduleNotFound
	}
	return err
}

func (s *ScheduleService) getOwned(ctx context.Context, userID, id int64) (*model.Schedule, error) {
	sched, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sched, nil
}

func validateSchedule(req model.ScheduleRequest) error {
	if req.MedicationID == 0 {
		return ErrMedicationIDRequired
	}
	if req.Time.IsZero() {
		return ErrTimeRequired
	}
	if !model.ValidStatus(req.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// scheduleToResponse projects a schedule and its joined medication onto the
// API representation. The owner ID is dropped; it is implied by the caller.
func scheduleToResponse(sched *model.Schedule) model.ScheduleResponse {
	return model.ScheduleResponse{
		ID:           sched.ID,
		MedicationID: sched.MedicationID,
		Time:         sched.Time,
		Status:       sched.Status,
		Medication:   medicationToResponse(&sched.Medication),
		CreatedAt:    sched.CreatedAt,
		UpdatedAt:    sched.UpdatedAt,
	}
}

func schedulesToResponse(schedules []model.Schedule) []model.ScheduleResponse {
	result := make([]model.ScheduleResponse, len(schedules))
	for i := range schedules {
		result[i] = scheduleToResponse(&schedules[i])
	}
	return result
}
