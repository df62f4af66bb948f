package shift

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
)

const (
	testEmployeeID = "3f8a2d44-9c1e-4b6a-8f2d-1a2b3c4d5e6f"
	testSettingID  = "7b9c3e55-1d2f-4a8b-9c3e-2b3c4d5e6f7a"
)

func adminContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-admin",
		"company_id": companyID,
		"is_admin":   true,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeSettingRepo struct {
	shift.SettingRepository

	stored shift.Setting
	err    error
}

func (f *fakeSettingRepo) GetByID(ctx context.Context, id, companyID string) (shift.Setting, error) {
	if f.err != nil {
		return shift.Setting{}, f.err
	}
	return f.stored, nil
}

type fakeTimeWindowRepo struct {
	shift.TimeWindowRepository

	created *shift.TimeWindow
}

func (f *fakeTimeWindowRepo) Create(ctx context.Context, window shift.TimeWindow) (shift.TimeWindow, error) {
	window.ID = "window-1"
	f.created = &window
	return window, nil
}

type fakeScheduleRepo struct {
	shift.ScheduleRepository

	exists  bool
	created *shift.Schedule
}

func (f *fakeScheduleRepo) ExistsForEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, excludeID *string) (bool, error) {
	return f.exists, nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule shift.Schedule) (shift.Schedule, error) {
	schedule.ID = "schedule-1"
	f.created = &schedule
	return schedule, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	err error
}

func (f *fakeEmployeeRepo) GetActiveByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	return employee.Employee{ID: id, CompanyID: companyID}, nil
}

func validAssignRequest() shift.AssignScheduleRequest {
	return shift.AssignScheduleRequest{
		EmployeeID:  testEmployeeID,
		SettingID:   testSettingID,
		WorkDate:    "2025-03-10",
		ShiftNumber: 2,
	}
}

func TestAssignSchedule_Success(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 3}}
	scheduleRepo := &fakeScheduleRepo{}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, scheduleRepo, &fakeEmployeeRepo{})

	created, err := svc.AssignSchedule(adminContext(t, "company-1"), validAssignRequest())

	require.NoError(t, err)
	assert.Equal(t, "schedule-1", created.ID)
	assert.Equal(t, "2025-03-10", created.WorkDate)
	assert.Equal(t, 2, created.ShiftNumber)
	require.NotNil(t, scheduleRepo.created)
	assert.Equal(t, testEmployeeID, scheduleRepo.created.EmployeeID)
}

func TestAssignSchedule_ShiftNumberOutsideSetting(t *testing.T) {
	// The setting only defines a single shift, so shift 2 is not assignable.
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 1}}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	_, err := svc.AssignSchedule(adminContext(t, "company-1"), validAssignRequest())

	assert.ErrorIs(t, err, shift.ErrInvalidShiftNumber)
}

func TestAssignSchedule_DateAlreadyTaken(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 3}}
	scheduleRepo := &fakeScheduleRepo{exists: true}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, scheduleRepo, &fakeEmployeeRepo{})

	_, err := svc.AssignSchedule(adminContext(t, "company-1"), validAssignRequest())

	assert.ErrorIs(t, err, shift.ErrDuplicateSchedule)
	assert.Nil(t, scheduleRepo.created)
}

func TestAssignSchedule_ResignedEmployee(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 3}}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{err: employee.ErrEmployeeResigned})

	_, err := svc.AssignSchedule(adminContext(t, "company-1"), validAssignRequest())

	assert.ErrorIs(t, err, employee.ErrEmployeeResigned)
}

func TestAddTimeWindow_Success(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 2}}
	windowRepo := &fakeTimeWindowRepo{}
	svc := NewShiftService(settingRepo, windowRepo, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	breakStart, breakEnd := "12:00:00", "13:00:00"
	created, err := svc.AddTimeWindow(adminContext(t, "company-1"), testSettingID, shift.CreateTimeWindowRequest{
		ShiftNumber: 2,
		ClockIn:     "09:00:00",
		ClockOut:    "17:00:00",
		BreakStart:  &breakStart,
		BreakEnd:    &breakEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, "09:00:00", created.ClockIn)
	assert.Equal(t, "17:00:00", created.ClockOut)
	require.NotNil(t, created.BreakStart)
	assert.Equal(t, "12:00:00", *created.BreakStart)
}

func TestAddTimeWindow_ShiftNumberOutsideSetting(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 1}}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	_, err := svc.AddTimeWindow(adminContext(t, "company-1"), testSettingID, shift.CreateTimeWindowRequest{
		ShiftNumber: 3,
		ClockIn:     "09:00:00",
		ClockOut:    "17:00:00",
	})

	assert.ErrorIs(t, err, shift.ErrInvalidShiftNumber)
}

func TestAddTimeWindow_ClockOutBeforeClockIn(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 1}}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	_, err := svc.AddTimeWindow(adminContext(t, "company-1"), testSettingID, shift.CreateTimeWindowRequest{
		ShiftNumber: 1,
		ClockIn:     "17:00:00",
		ClockOut:    "09:00:00",
	})

	assert.ErrorIs(t, err, shift.ErrClockOutNotAfterIn)
}

func TestAddTimeWindow_BreakEndBeforeBreakStart(t *testing.T) {
	settingRepo := &fakeSettingRepo{stored: shift.Setting{ID: testSettingID, ShiftCount: 1}}
	svc := NewShiftService(settingRepo, &fakeTimeWindowRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	breakStart, breakEnd := "13:00:00", "12:00:00"
	_, err := svc.AddTimeWindow(adminContext(t, "company-1"), testSettingID, shift.CreateTimeWindowRequest{
		ShiftNumber: 1,
		ClockIn:     "09:00:00",
		ClockOut:    "17:00:00",
		BreakStart:  &breakStart,
		BreakEnd:    &breakEnd,
	})

	assert.ErrorIs(t, err, shift.ErrBreakEndNotAfter)
}
