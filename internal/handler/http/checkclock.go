package http

import (
	"encoding/json"
	"net/http"

	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CheckClockHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	UploadProof(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CheckClockHandlerImpl struct {
	checkClockService checkclock.CheckClockService
}

func NewCheckClockHandler(checkClockService checkclock.CheckClockService) CheckClockHandler {
	return &CheckClockHandlerImpl{checkClockService: checkClockService}
}

// Record implements CheckClockHandler.
func (h *CheckClockHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req checkclock.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.checkClockService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded successfully", created)
}

// GetByID implements CheckClockHandler.
func (h *CheckClockHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.checkClockService.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// List implements CheckClockHandler. Filters come from query parameters.
func (h *CheckClockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter checkclock.ListEventsFilter
	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("check_clock_type"); v != "" {
		filter.Type = &v
	}
	if v := query.Get("approval"); v != "" {
		filter.Approval = &v
	}
	if v := query.Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := query.Get("date_to"); v != "" {
		filter.DateTo = &v
	}

	events, err := h.checkClockService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

// Respond implements CheckClockHandler.
func (h *CheckClockHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req checkclock.RespondEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.checkClockService.Respond(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance reviewed successfully", decided)
}

// UploadProof implements CheckClockHandler. Accepts a multipart form with a
// "proof" field.
func (h *CheckClockHandlerImpl) UploadProof(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("proof")
	if err != nil {
		response.BadRequest(w, "Field 'proof' is required", nil)
		return
	}
	defer file.Close()

	updated, err := h.checkClockService.UploadProof(
		r.Context(),
		chi.URLParam(r, "id"),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance proof uploaded successfully", updated)
}

// Delete implements CheckClockHandler.
func (h *CheckClockHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.checkClockService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
