package http

import (
	"encoding/json"
	"net/http"

	"github.com/SonyFebri/hris-backend/internal/domain/shift"
	"github.com/SonyFebri/hris-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	CreateSetting(w http.ResponseWriter, r *http.Request)
	GetSetting(w http.ResponseWriter, r *http.Request)
	ListSettings(w http.ResponseWriter, r *http.Request)
	UpdateSetting(w http.ResponseWriter, r *http.Request)
	DeleteSetting(w http.ResponseWriter, r *http.Request)

	AddTimeWindow(w http.ResponseWriter, r *http.Request)
	UpdateTimeWindow(w http.ResponseWriter, r *http.Request)
	RemoveTimeWindow(w http.ResponseWriter, r *http.Request)

	AssignSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// CreateSetting implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateSetting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift setting created successfully", created)
}

// GetSetting implements ShiftHandler.
func (h *ShiftHandlerImpl) GetSetting(w http.ResponseWriter, r *http.Request) {
	found, err := h.shiftService.GetSetting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// ListSettings implements ShiftHandler.
func (h *ShiftHandlerImpl) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.shiftService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateSetting implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.UpdateSetting(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift setting updated successfully", updated)
}

// DeleteSetting implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteSetting(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift setting deleted successfully", nil)
}

// AddTimeWindow implements ShiftHandler.
func (h *ShiftHandlerImpl) AddTimeWindow(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateTimeWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.AddTimeWindow(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Time window added successfully", created)
}

// UpdateTimeWindow implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateTimeWindow(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateTimeWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.UpdateTimeWindow(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "windowID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time window updated successfully", updated)
}

// RemoveTimeWindow implements ShiftHandler.
func (h *ShiftHandlerImpl) RemoveTimeWindow(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.RemoveTimeWindow(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "windowID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time window removed successfully", nil)
}

// AssignSchedule implements ShiftHandler.
func (h *ShiftHandlerImpl) AssignSchedule(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.AssignSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule assigned successfully", created)
}

// ListSchedules implements ShiftHandler.
func (h *ShiftHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.shiftService.ListSchedules(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// UpdateSchedule implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.UpdateSchedule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule updated successfully", updated)
}

// DeleteSchedule implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}
