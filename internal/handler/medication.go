package handler

import (
	"errors"
	"net/http"

	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/service"
)

// MedicationHandler handles HTTP requests for medication operations.
type MedicationHandler struct {
	service *service.MedicationService
}

// NewMedicationHandler creates a new MedicationHandler.
func NewMedicationHandler(svc *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: svc}
}

// HandleSeed handles POST /api/medications/seed requests, loading the
// default medication set in one transaction.
func (h *MedicationHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Seed(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListMedications handles GET /api/medications requests.
func (h *MedicationHandler) HandleListMedications(w http.ResponseWriter, r *http.Request) {
	meds, err := h.service.ListMedications(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if meds == nil {
		meds = []model.MedicationResponse{}
	}
	writeJSON(w, http.StatusOK, meds)
}

// HandleGetMedication handles GET /api/medications/{id} requests.
func (h *MedicationHandler) HandleGetMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid medication id"))
		return
	}

	med, err := h.service.GetMedication(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMedicationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, med)
}

// HandleCreateMedication handles POST /api/medications requests.
func (h *MedicationHandler) HandleCreateMedication(w http.ResponseWriter, r *http.Request) {
	var req model.MedicationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	med, err := h.service.CreateMedication(r.Context(), req)
	if err != nil {
		if isMedicationValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, med)
}

// HandleUpdateMedication handles PUT /api/medications/{id} requests.
func (h *MedicationHandler) HandleUpdateMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid medication id"))
		return
	}

	var req model.MedicationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	med, err := h.service.UpdateMedication(r.Context(), id, req)
	if err != nil {
		switch {
		case isMedicationValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrMedicationNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, med)
}

// HandleDeleteMedication handles DELETE /api/medications/{id} requests.
func (h *MedicationHandler) HandleDeleteMedication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid medication id"))
		return
	}

	if err := h.service.DeleteMedication(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrMedicationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isMedicationValidationError(err error) bool {
	return errors.Is(err, service.ErrMedicationNameRequired) ||
		errors.Is(err, service.ErrMedicationDosageRequired)
}
