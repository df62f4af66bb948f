package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
	"github.com/go-chi/jwtauth/v5"
)

type ShiftServiceImpl struct {
	shift.SettingRepository
	shift.TimeWindowRepository
	shift.ScheduleRepository
	employee.EmployeeRepository
}

func NewShiftService(
	settingRepository shift.SettingRepository,
	timeWindowRepository shift.TimeWindowRepository,
	scheduleRepository shift.ScheduleRepository,
	employeeRepository employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		SettingRepository:    settingRepository,
		TimeWindowRepository: timeWindowRepository,
		ScheduleRepository:   scheduleRepository,
		EmployeeRepository:   employeeRepository,
	}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// CreateSetting implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateSetting(ctx context.Context, req shift.CreateSettingRequest) (shift.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.SettingResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.SettingResponse{}, err
	}

	created, err := s.SettingRepository.Create(ctx, shift.Setting{
		CompanyID:  companyID,
		Name:       req.Name,
		ShiftCount: req.ShiftCount,
	})
	if err != nil {
		return shift.SettingResponse{}, err
	}
	return settingResponse(created, nil), nil
}

// GetSetting implements shift.ShiftService. Time windows come along so the
// caller sees the whole configuration in one read.
func (s *ShiftServiceImpl) GetSetting(ctx context.Context, id string) (shift.SettingResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.SettingResponse{}, err
	}

	found, err := s.SettingRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.SettingResponse{}, err
	}

	windows, err := s.TimeWindowRepository.ListBySetting(ctx, id)
	if err != nil {
		return shift.SettingResponse{}, err
	}
	return settingResponse(found, windows), nil
}

// ListSettings implements shift.ShiftService.
func (s *ShiftServiceImpl) ListSettings(ctx context.Context) ([]shift.SettingResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.SettingRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.SettingResponse, 0, len(settings))
	for _, found := range settings {
		responses = append(responses, settingResponse(found, nil))
	}
	return responses, nil
}

// UpdateSetting implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateSetting(ctx context.Context, id string, req shift.UpdateSettingRequest) (shift.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.SettingResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.SettingResponse{}, err
	}

	if err := s.SettingRepository.Update(ctx, id, companyID, req); err != nil {
		return shift.SettingResponse{}, err
	}
	return s.GetSetting(ctx, id)
}

// DeleteSetting implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteSetting(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.SettingRepository.SoftDelete(ctx, id, companyID)
}

// AddTimeWindow implements shift.ShiftService.
func (s *ShiftServiceImpl) AddTimeWindow(ctx context.Context, settingID string, req shift.CreateTimeWindowRequest) (shift.TimeWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.TimeWindowResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}

	setting, err := s.SettingRepository.GetByID(ctx, settingID, companyID)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}
	if !setting.ContainsShiftNumber(req.ShiftNumber) {
		return shift.TimeWindowResponse{}, shift.ErrInvalidShiftNumber
	}

	window, err := req.Window(settingID)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}

	created, err := s.TimeWindowRepository.Create(ctx, window)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}
	return timeWindowResponse(created), nil
}

// UpdateTimeWindow implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateTimeWindow(ctx context.Context, settingID, windowID string, req shift.UpdateTimeWindowRequest) (shift.TimeWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.TimeWindowResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}
	if _, err := s.SettingRepository.GetByID(ctx, settingID, companyID); err != nil {
		return shift.TimeWindowResponse{}, err
	}

	existing, err := s.TimeWindowRepository.GetByID(ctx, windowID)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}
	if existing.SettingID != settingID {
		return shift.TimeWindowResponse{}, shift.ErrTimeWindowNotFound
	}

	merged, err := mergedWindow(existing, req)
	if err != nil {
		return shift.TimeWindowResponse{}, err
	}

	if err := s.TimeWindowRepository.Update(ctx, windowID, req); err != nil {
		return shift.TimeWindowResponse{}, err
	}
	return timeWindowResponse(merged), nil
}

// mergedWindow applies the partial update on top of the stored window and
// re-checks the ordering rules against the effective values.
func mergedWindow(existing shift.TimeWindow, req shift.UpdateTimeWindowRequest) (shift.TimeWindow, error) {
	apply := func(target *time.Time, value *string) error {
		if value == nil {
			return nil
		}
		parsed, err := shift.ParseTimeOfDay(*value)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
	applyPtr := func(target **time.Time, value *string) error {
		if value == nil {
			return nil
		}
		parsed, err := shift.ParseTimeOfDay(*value)
		if err != nil {
			return err
		}
		*target = &parsed
		return nil
	}

	if err := apply(&existing.ClockIn, req.ClockIn); err != nil {
		return shift.TimeWindow{}, err
	}
	if err := apply(&existing.ClockOut, req.ClockOut); err != nil {
		return shift.TimeWindow{}, err
	}
	if err := applyPtr(&existing.BreakStart, req.BreakStart); err != nil {
		return shift.TimeWindow{}, err
	}
	if err := applyPtr(&existing.BreakEnd, req.BreakEnd); err != nil {
		return shift.TimeWindow{}, err
	}

	if !existing.ClockOut.After(existing.ClockIn) {
		return shift.TimeWindow{}, shift.ErrClockOutNotAfterIn
	}
	if existing.BreakStart != nil && existing.BreakEnd != nil && !existing.BreakEnd.After(*existing.BreakStart) {
		return shift.TimeWindow{}, shift.ErrBreakEndNotAfter
	}
	return existing, nil
}

// RemoveTimeWindow implements shift.ShiftService.
func (s *ShiftServiceImpl) RemoveTimeWindow(ctx context.Context, settingID, windowID string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.SettingRepository.GetByID(ctx, settingID, companyID); err != nil {
		return err
	}

	existing, err := s.TimeWindowRepository.GetByID(ctx, windowID)
	if err != nil {
		return err
	}
	if existing.SettingID != settingID {
		return shift.ErrTimeWindowNotFound
	}
	return s.TimeWindowRepository.Delete(ctx, windowID)
}

// AssignSchedule implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignSchedule(ctx context.Context, req shift.AssignScheduleRequest) (shift.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ScheduleResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetActiveByID(ctx, req.EmployeeID, companyID); err != nil {
		return shift.ScheduleResponse{}, err
	}

	setting, err := s.SettingRepository.GetByID(ctx, req.SettingID, companyID)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}
	if !setting.ContainsShiftNumber(req.ShiftNumber) {
		return shift.ScheduleResponse{}, shift.ErrInvalidShiftNumber
	}

	workDate, err := shift.ParseWorkDate(req.WorkDate)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}

	taken, err := s.ScheduleRepository.ExistsForEmployeeAndDate(ctx, req.EmployeeID, workDate, nil)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}
	if taken {
		return shift.ScheduleResponse{}, shift.ErrDuplicateSchedule
	}

	created, err := s.ScheduleRepository.Create(ctx, shift.Schedule{
		EmployeeID:  req.EmployeeID,
		SettingID:   req.SettingID,
		WorkDate:    workDate,
		ShiftNumber: req.ShiftNumber,
	})
	if err != nil {
		return shift.ScheduleResponse{}, err
	}
	return scheduleResponse(created), nil
}

// ListSchedules implements shift.ShiftService.
func (s *ShiftServiceImpl) ListSchedules(ctx context.Context, employeeID string) ([]shift.ScheduleResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	schedules, err := s.ScheduleRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ScheduleResponse, 0, len(schedules))
	for _, found := range schedules {
		responses = append(responses, scheduleResponse(found))
	}
	return responses, nil
}

// UpdateSchedule implements shift.ShiftService. Moving a schedule to another
// date re-runs the one-per-day check against the new date.
func (s *ShiftServiceImpl) UpdateSchedule(ctx context.Context, id string, req shift.UpdateScheduleRequest) (shift.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ScheduleResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}

	existing, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, existing.EmployeeID, companyID); err != nil {
		return shift.ScheduleResponse{}, err
	}

	settingID := existing.SettingID
	if req.SettingID != nil {
		settingID = *req.SettingID
	}
	setting, err := s.SettingRepository.GetByID(ctx, settingID, companyID)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}

	shiftNumber := existing.ShiftNumber
	if req.ShiftNumber != nil {
		shiftNumber = *req.ShiftNumber
	}
	if !setting.ContainsShiftNumber(shiftNumber) {
		return shift.ScheduleResponse{}, shift.ErrInvalidShiftNumber
	}

	if req.WorkDate != nil {
		workDate, err := shift.ParseWorkDate(*req.WorkDate)
		if err != nil {
			return shift.ScheduleResponse{}, err
		}
		taken, err := s.ScheduleRepository.ExistsForEmployeeAndDate(ctx, existing.EmployeeID, workDate, &id)
		if err != nil {
			return shift.ScheduleResponse{}, err
		}
		if taken {
			return shift.ScheduleResponse{}, shift.ErrDuplicateSchedule
		}
	}

	if err := s.ScheduleRepository.Update(ctx, id, req); err != nil {
		return shift.ScheduleResponse{}, err
	}

	updated, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ScheduleResponse{}, err
	}
	return scheduleResponse(updated), nil
}

// DeleteSchedule implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, existing.EmployeeID, companyID); err != nil {
		return err
	}
	return s.ScheduleRepository.SoftDelete(ctx, id)
}

func settingResponse(setting shift.Setting, windows []shift.TimeWindow) shift.SettingResponse {
	resp := shift.SettingResponse{
		ID:         setting.ID,
		CompanyID:  setting.CompanyID,
		Name:       setting.Name,
		ShiftCount: setting.ShiftCount,
		CreatedAt:  setting.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  setting.UpdatedAt.Format(time.RFC3339),
	}
	for _, window := range windows {
		resp.Times = append(resp.Times, timeWindowResponse(window))
	}
	return resp
}

func timeWindowResponse(window shift.TimeWindow) shift.TimeWindowResponse {
	resp := shift.TimeWindowResponse{
		ID:          window.ID,
		SettingID:   window.SettingID,
		ShiftNumber: window.ShiftNumber,
		ClockIn:     shift.FormatTimeOfDay(window.ClockIn),
		ClockOut:    shift.FormatTimeOfDay(window.ClockOut),
	}
	if window.BreakStart != nil {
		formatted := shift.FormatTimeOfDay(*window.BreakStart)
		resp.BreakStart = &formatted
	}
	if window.BreakEnd != nil {
		formatted := shift.FormatTimeOfDay(*window.BreakEnd)
		resp.BreakEnd = &formatted
	}
	return resp
}

func scheduleResponse(schedule shift.Schedule) shift.ScheduleResponse {
	return shift.ScheduleResponse{
		ID:          schedule.ID,
		EmployeeID:  schedule.EmployeeID,
		SettingID:   schedule.SettingID,
		WorkDate:    shift.FormatWorkDate(schedule.WorkDate),
		ShiftNumber: schedule.ShiftNumber,
		CreatedAt:   schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   schedule.UpdatedAt.Format(time.RFC3339),
	}
}
