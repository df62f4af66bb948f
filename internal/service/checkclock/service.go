package checkclock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
	"github.com/SonyFebri/hris-backend/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

type CheckClockServiceImpl struct {
	checkclock.Repository
	shift.ScheduleRepository
	shift.TimeWindowRepository
	employee.EmployeeRepository
	fileService file.FileService
}

func NewCheckClockService(
	repository checkclock.Repository,
	scheduleRepository shift.ScheduleRepository,
	timeWindowRepository shift.TimeWindowRepository,
	employeeRepository employee.EmployeeRepository,
	fileService file.FileService,
) checkclock.CheckClockService {
	return &CheckClockServiceImpl{
		Repository:           repository,
		ScheduleRepository:   scheduleRepository,
		TimeWindowRepository: timeWindowRepository,
		EmployeeRepository:   employeeRepository,
		fileService:          fileService,
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

// RecordEvent implements checkclock.CheckClockService.
func (s *CheckClockServiceImpl) RecordEvent(ctx context.Context, req checkclock.RecordEventRequest) (checkclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return checkclock.EventResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	if caller.employeeID == "" {
		return checkclock.EventResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		return checkclock.EventResponse{}, checkclock.ErrInvalidTime
	}

	// A still-valid token does not entitle a resigned employee to punch in.
	if _, err := s.EmployeeRepository.GetActiveByID(ctx, caller.employeeID, caller.companyID); err != nil {
		return checkclock.EventResponse{}, err
	}

	// Punches are self-certifying; only leave requests queue for review.
	event := checkclock.Event{
		EmployeeID: caller.employeeID,
		CompanyID:  caller.companyID,
		Type:       req.Type,
		OccurredAt: occurredAt,
		Approval:   approval.StatusWaiting,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	if checkclock.IsClockType(req.Type) {
		event.Approval = approval.StatusApproved

		workDate := time.Date(occurredAt.Year(), occurredAt.Month(), occurredAt.Day(), 0, 0, 0, 0, time.UTC)
		schedule, err := s.ScheduleRepository.GetByEmployeeAndDate(ctx, caller.employeeID, workDate)
		if err != nil {
			if errors.Is(err, shift.ErrScheduleNotFound) {
				return checkclock.EventResponse{}, checkclock.ErrNoScheduleFound
			}
			return checkclock.EventResponse{}, err
		}

		window, err := s.TimeWindowRepository.GetBySettingAndShift(ctx, schedule.SettingID, schedule.ShiftNumber)
		if err != nil {
			if errors.Is(err, shift.ErrTimeWindowNotFound) {
				return checkclock.EventResponse{}, checkclock.ErrNoTimeWindow
			}
			return checkclock.EventResponse{}, err
		}

		event.Status = classify(req.Type, occurredAt, window)
	}

	created, err := s.Repository.Create(ctx, event)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	return toResponse(created), nil
}

// GetEvent implements checkclock.CheckClockService. Employees only see their
// own records; admins see the whole company.
func (s *CheckClockServiceImpl) GetEvent(ctx context.Context, id string) (checkclock.EventResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	if !caller.isAdmin && found.EmployeeID != caller.employeeID {
		return checkclock.EventResponse{}, checkclock.ErrEventNotFound
	}
	return toResponse(found), nil
}

// ListEvents implements checkclock.CheckClockService.
func (s *CheckClockServiceImpl) ListEvents(ctx context.Context, filter checkclock.ListEventsFilter) ([]checkclock.EventResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Non-admins are pinned to their own records regardless of the filter.
	if !caller.isAdmin {
		filter.EmployeeID = &caller.employeeID
	}

	events, err := s.Repository.List(ctx, caller.companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]checkclock.EventResponse, 0, len(events))
	for _, found := range events {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// Respond implements checkclock.CheckClockService. The repository's
// conditional update is the authoritative guard; a record that has already
// been decided stays as it is.
func (s *CheckClockServiceImpl) Respond(ctx context.Context, id string, req checkclock.RespondEventRequest) (checkclock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return checkclock.EventResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	next, err := approval.Transition(found.Approval, approval.Status(req.Decision))
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	if err := s.Repository.UpdateApproval(ctx, id, caller.companyID, next); err != nil {
		return checkclock.EventResponse{}, err
	}

	decided, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	return toResponse(decided), nil
}

// UploadProof implements checkclock.CheckClockService. Employees may attach
// proof images only to their own records.
func (s *CheckClockServiceImpl) UploadProof(ctx context.Context, id string, fileReader io.Reader, filename, contentType string) (checkclock.EventResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	found, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	if !caller.isAdmin && found.EmployeeID != caller.employeeID {
		return checkclock.EventResponse{}, checkclock.ErrEventNotFound
	}

	url, err := s.fileService.Upload(ctx, fileReader, "check-clocks", filename, contentType)
	if err != nil {
		return checkclock.EventResponse{}, err
	}

	if err := s.Repository.SetProofURL(ctx, id, caller.companyID, url); err != nil {
		return checkclock.EventResponse{}, err
	}

	updated, err := s.Repository.GetByID(ctx, id, caller.companyID)
	if err != nil {
		return checkclock.EventResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteEvent implements checkclock.CheckClockService.
func (s *CheckClockServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.Repository.SoftDelete(ctx, id, caller.companyID)
}

func toResponse(event checkclock.Event) checkclock.EventResponse {
	return checkclock.EventResponse{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		CompanyID:    event.CompanyID,
		Type:         event.Type,
		OccurredAt:   event.OccurredAt.Format(time.RFC3339),
		Status:       event.Status,
		Approval:     string(event.Approval),
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		ProofURL:     event.ProofURL,
		EmployeeName: event.EmployeeName,
		CreatedAt:    event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    event.UpdatedAt.Format(time.RFC3339),
	}
}
