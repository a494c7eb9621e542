package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/medtrack/medtrack-go/internal/middleware"
	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/service"
)

// ScheduleHandler handles HTTP requests for schedule operations. The owner
// is always the authenticated caller taken from the request context.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// HandleListSchedules handles GET /api/schedules requests.
func (h *ScheduleHandler) HandleListSchedules(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	schedules, err := h.service.ListSchedules(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if schedules == nil {
		schedules = []model.ScheduleResponse{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

// HandleToday handles GET /api/schedules/today requests: the caller's
// schedules due within the server-local calendar day, time ascending.
func (h *ScheduleHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	schedules, err := h.service.ListToday(r.Context(), userID, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if schedules == nil {
		schedules = []model.ScheduleResponse{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

// HandleCreateSchedule handles POST /api/schedules requests.
func (h *ScheduleHandler) HandleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CreateSchedule(r.Context(), userID, req)
	if err != nil {
		if isScheduleValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateSchedule handles PUT /api/schedules/{id} requests.
func (h *ScheduleHandler) HandleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid schedule id"))
		return
	}

	var req model.ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateSchedule(r.Context(), userID, id, req)
	if err != nil {
		switch {
		case isScheduleValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrScheduleNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateStatus handles PATCH /api/schedules/{id}/status requests.
func (h *ScheduleHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid schedule id"))
		return
	}

	var req model.UpdateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), userID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrScheduleNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteSchedule handles DELETE /api/schedules/{id} requests.
func (h *ScheduleHandler) HandleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid schedule id"))
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isScheduleValidationError(err error) bool {
	return errors.Is(err, service.ErrMedicationIDRequired) ||
		errors.Is(err, service.ErrTimeRequired) ||
		errors.Is(err, service.ErrInvalidStatus)
}
