package http

import (
	"encoding/json"
	"net/http"

	"github.com/SonyFebri/hris-backend/internal/domain/letter"
	"github.com/SonyFebri/hris-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LetterHandler interface {
	CreateFormat(w http.ResponseWriter, r *http.Request)
	GetFormat(w http.ResponseWriter, r *http.Request)
	ListFormats(w http.ResponseWriter, r *http.Request)
	UpdateFormat(w http.ResponseWriter, r *http.Request)
	DeleteFormat(w http.ResponseWriter, r *http.Request)

	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LetterHandlerImpl struct {
	letterService letter.LetterService
}

func NewLetterHandler(letterService letter.LetterService) LetterHandler {
	return &LetterHandlerImpl{letterService: letterService}
}

// CreateFormat implements LetterHandler.
func (h *LetterHandlerImpl) CreateFormat(w http.ResponseWriter, r *http.Request) {
	var req letter.CreateFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.letterService.CreateFormat(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Letter format created successfully", created)
}

// GetFormat implements LetterHandler.
func (h *LetterHandlerImpl) GetFormat(w http.ResponseWriter, r *http.Request) {
	found, err := h.letterService.GetFormat(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// ListFormats implements LetterHandler.
func (h *LetterHandlerImpl) ListFormats(w http.ResponseWriter, r *http.Request) {
	formats, err := h.letterService.ListFormats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, formats)
}

// UpdateFormat implements LetterHandler.
func (h *LetterHandlerImpl) UpdateFormat(w http.ResponseWriter, r *http.Request) {
	var req letter.UpdateFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.letterService.UpdateFormat(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Letter format updated successfully", updated)
}

// DeleteFormat implements LetterHandler.
func (h *LetterHandlerImpl) DeleteFormat(w http.ResponseWriter, r *http.Request) {
	if err := h.letterService.DeleteFormat(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Letter format deleted successfully", nil)
}

// Create implements LetterHandler.
func (h *LetterHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req letter.CreateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.letterService.CreateLetter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Letter created successfully", created)
}

// GetByID implements LetterHandler.
func (h *LetterHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.letterService.GetLetter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// List implements LetterHandler.
func (h *LetterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter letter.ListLettersFilter
	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("letter_format_id"); v != "" {
		filter.FormatID = &v
	}
	if v := query.Get("approval"); v != "" {
		filter.Approval = &v
	}

	letters, err := h.letterService.ListLetters(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, letters)
}

// Respond implements LetterHandler.
func (h *LetterHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req letter.RespondLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.letterService.Respond(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Letter reviewed successfully", decided)
}

// UploadFile implements LetterHandler. Accepts a multipart form with an
// "attachment" field.
func (h *LetterHandlerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err != nil {
		response.BadRequest(w, "Field 'attachment' is required", nil)
		return
	}
	defer file.Close()

	updated, err := h.letterService.UploadFile(
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
	response.SuccessWithMessage(w, "Letter file uploaded successfully", updated)
}

// Delete implements LetterHandler.
func (h *LetterHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.letterService.DeleteLetter(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Letter deleted successfully", nil)
}
