package letter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/letter"
	"github.com/SonyFebri/hris-backend/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

type LetterServiceImpl struct {
	letter.Repository
	letter.FormatRepository
	employee.EmployeeRepository
	fileService file.FileService
}

func NewLetterService(
	repository letter.Repository,
	formatRepository letter.FormatRepository,
	employeeRepository employee.EmployeeRepository,
	fileService file.FileService,
) letter.LetterService {
	return &LetterServiceImpl{
		Repository:         repository,
		FormatRepository:   formatRepository,
		EmployeeRepository: employeeRepository,
		fileService:        fileService,
	}
}

type callerClaims struct {
	companyID  string
	employeeID string
	isAdmin    bool
}

func claimsFromContext(ctx context.Context) (callerClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return callerClaims{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	caller := callerClaims{companyID: companyID}
	if employeeID, ok := claims["employee_id"].(string); ok {
		caller.employeeID = employeeID
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		caller.isAdmin = isAdmin
	}
	return caller, nil
}

// CreateFormat implements letter.LetterService.
func (s *LetterServiceImpl) CreateFormat(ctx context.Context, req letter.CreateFormatRequest) (letter.FormatResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.FormatResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.FormatResponse{}, err
	}

	created, err := s.FormatRepository.Create(ctx, letter.Format{
		CompanyID: caller.companyID,
		Name:      req.Name,
		Content:   req.Content,
		Status:    req.Status,
	})
	if err != nil {
		return letter.FormatResponse{}, err
	}
	return formatResponse(created), nil
}

// GetFormat implements letter.LetterService.
func (s *LetterServiceImpl) GetFormat(ctx context.Context, id string) (letter.FormatResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.FormatResponse{}, err
	}

	found, err := s.FormatRepository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.FormatResponse{}, err
	}
	return formatResponse(found), nil
}

// ListFormats implements letter.LetterService.
func (s *LetterServiceImpl) ListFormats(ctx context.Context) ([]letter.FormatResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	formats, err := s.FormatRepository.List(ctx, caller.companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]letter.FormatResponse, 0, len(formats))
	for _, found := range formats {
		responses = append(responses, formatResponse(found))
	}
	return responses, nil
}

// UpdateFormat implements letter.LetterService.
func (s *LetterServiceImpl) UpdateFormat(ctx context.Context, id string, req letter.UpdateFormatRequest) (letter.FormatResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.FormatResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.FormatResponse{}, err
	}

	if err := s.FormatRepository.Update(ctx, id, caller.companyID, req); err != nil {
		return letter.FormatResponse{}, err
	}

	updated, err := s.FormatRepository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.FormatResponse{}, err
	}
	return formatResponse(updated), nil
}

// DeleteFormat implements letter.LetterService. A format with live letters
// attached cannot be removed.
func (s *LetterServiceImpl) DeleteFormat(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.FormatRepository.GetByID(ctx, id, caller.companyID); err != nil {
		return err
	}

	count, err := s.FormatRepository.CountLetters(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return letter.ErrFormatInUse
	}
	return s.FormatRepository.SoftDelete(ctx, id, caller.companyID)
}

// CreateLetter implements letter.LetterService. Admin-filed letters skip the
// review queue and land approved; anything filed by an employee waits for an
// admin decision.
func (s *LetterServiceImpl) CreateLetter(ctx context.Context, req letter.CreateLetterRequest) (letter.LetterResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.LetterResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	if _, err := s.FormatRepository.GetByID(ctx, req.FormatID, caller.companyID); err != nil {
		return letter.LetterResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetActiveByID(ctx, req.EmployeeID, caller.companyID); err != nil {
		return letter.LetterResponse{}, err
	}

	// Employees may only file letters for themselves.
	if !caller.isAdmin && req.EmployeeID != caller.employeeID {
		return letter.LetterResponse{}, employee.ErrEmployeeNotFound
	}

	status := approval.StatusWaiting
	if caller.isAdmin {
		status = approval.StatusApproved
	}

	created, err := s.Repository.Create(ctx, letter.Letter{
		FormatID:   req.FormatID,
		EmployeeID: req.EmployeeID,
		CompanyID:  caller.companyID,
		Name:       req.Name,
		FileURL:    req.FileURL,
		Approval:   status,
	})
	if err != nil {
		return letter.LetterResponse{}, err
	}
	return letterResponse(created), nil
}

// GetLetter implements letter.LetterService.
func (s *LetterServiceImpl) GetLetter(ctx context.Context, id string) (letter.LetterResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.LetterResponse{}, err
	}
	if !caller.isAdmin && found.EmployeeID != caller.employeeID {
		return letter.LetterResponse{}, letter.ErrLetterNotFound
	}
	return letterResponse(found), nil
}

// ListLetters implements letter.LetterService.
func (s *LetterServiceImpl) ListLetters(ctx context.Context, filter letter.ListLettersFilter) ([]letter.LetterResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !caller.isAdmin {
		filter.EmployeeID = &caller.employeeID
	}

	letters, err := s.Repository.List(ctx, caller.companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]letter.LetterResponse, 0, len(letters))
	for _, found := range letters {
		responses = append(responses, letterResponse(found))
	}
	return responses, nil
}

// Respond implements letter.LetterService.
func (s *LetterServiceImpl) Respond(ctx context.Context, id string, req letter.RespondLetterRequest) (letter.LetterResponse, error) {
	if err := req.Validate(); err != nil {
		return letter.LetterResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	next, err := approval.Transition(found.Approval, approval.Status(req.Decision))
	if err != nil {
		return letter.LetterResponse{}, err
	}

	if err := s.Repository.UpdateApproval(ctx, id, caller.companyID, next); err != nil {
		return letter.LetterResponse{}, err
	}

	decided, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.LetterResponse{}, err
	}
	return letterResponse(decided), nil
}

// UploadFile implements letter.LetterService. Employees may attach documents
// only to their own letters.
func (s *LetterServiceImpl) UploadFile(ctx context.Context, id string, fileReader io.Reader, filename, contentType string) (letter.LetterResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.LetterResponse{}, err
	}
	if !caller.isAdmin && found.EmployeeID != caller.employeeID {
		return letter.LetterResponse{}, letter.ErrLetterNotFound
	}

	url, err := s.fileService.Upload(ctx, fileReader, "letters", filename, contentType)
	if err != nil {
		return letter.LetterResponse{}, err
	}

	if err := s.Repository.SetFileURL(ctx, id, caller.companyID, url); err != nil {
		return letter.LetterResponse{}, err
	}

	updated, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return letter.LetterResponse{}, err
	}
	return letterResponse(updated), nil
}

// DeleteLetter implements letter.LetterService.
func (s *LetterServiceImpl) DeleteLetter(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.Repository.SoftDelete(ctx, id, caller.companyID)
}

func formatResponse(found letter.Format) letter.FormatResponse {
	return letter.FormatResponse{
		ID:        found.ID,
		CompanyID: found.CompanyID,
		Name:      found.Name,
		Content:   found.Content,
		Status:    found.Status,
		CreatedAt: found.CreatedAt.Format(time.RFC3339),
		UpdatedAt: found.UpdatedAt.Format(time.RFC3339),
	}
}

func letterResponse(found letter.Letter) letter.LetterResponse {
	return letter.LetterResponse{
		ID:           found.ID,
		FormatID:     found.FormatID,
		EmployeeID:   found.EmployeeID,
		CompanyID:    found.CompanyID,
		Name:         found.Name,
		FileURL:      found.FileURL,
		Approval:     string(found.Approval),
		FormatName:   found.FormatName,
		EmployeeName: found.EmployeeName,
		CreatedAt:    found.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    found.UpdatedAt.Format(time.RFC3339),
	}
}
