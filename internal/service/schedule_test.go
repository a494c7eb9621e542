package service

import (
	"context"
	"testing"
	"time"

	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/repository"
)

func newTestScheduleService() *ScheduleService {
	return NewScheduleService(repository.NewScheduleRepository(nil))
}

func TestTodayWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	window := TodayWindow(now)

	wantStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantStart.Add(24 * time.Hour)) {
		t.Errorf("End = %v, want %v", window.End, wantStart.Add(24*time.Hour))
	}
}

func TestTodayWindowHalfOpen(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	window := TodayWindow(now)

	if !window.Contains(window.Start) {
		t.Error("window should include its start instant")
	}
	if !window.Contains(window.Start.Add(9 * time.Hour)) {
		t.Error("window should include 09:00 of the same day")
	}
	if window.Contains(window.Start.Add(24 * time.Hour)) {
		t.Error("window should exclude midnight of the next day")
	}
	if window.Contains(window.Start.Add(-time.Nanosecond)) {
		t.Error("window should exclude instants before its start")
	}
}

func TestTodayWindowAtMidnight(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	window := TodayWindow(now)

	if !window.Start.Equal(now) {
		t.Errorf("Start = %v, want %v", window.Start, now)
	}
	if !window.Contains(now) {
		t.Error("midnight itself belongs to the day it starts")
	}
}

func TestCreateSchedule_MissingMedication(t *testing.T) {
	svc := newTestScheduleService()

	_, err := svc.CreateSchedule(context.Background(), 1, model.ScheduleRequest{
		Time:   time.Now(),
		Status: model.StatusPending,
	})

	if err != ErrMedicationIDRequired {
		t.Errorf("expected ErrMedicationIDRequired, got %v", err)
	}
}

func TestCreateSchedule_MissingTime(t *testing.T) {
	svc := newTestScheduleService()

	_, err := svc.CreateSchedule(context.Background(), 1, model.ScheduleRequest{
		MedicationID: 2,
		Status:       model.StatusTaken,
	})

	if err != ErrTimeRequired {
		t.Errorf("expected ErrTimeRequired, got %v", err)
	}
}

func TestCreateSchedule_InvalidStatus(t *testing.T) {
	svc := newTestScheduleService()

	_, err := svc.CreateSchedule(context.Background(), 1, model.ScheduleRequest{
		MedicationID: 2,
		Time:         time.Now(),
		Status:       "SKIPPED",
	})

	if err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestScheduleService()

	_, err := svc.UpdateStatus(context.Background(), 1, 5, "taken")
	if err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{model.StatusPending, model.StatusTaken, model.StatusNotTaken} {
		if !model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "DONE"} {
		if model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestSchedulesToResponse_EmptySlice(t *testing.T) {
	result := schedulesToResponse(nil)

	if result == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("expected 0 schedules, got %d", len(result))
	}
}
