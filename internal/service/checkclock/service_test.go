package checkclock

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
)

func claimsContext(t *testing.T, companyID, employeeID string, isAdmin bool) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id":    "user-1",
		"company_id": companyID,
		"is_admin":   isAdmin,
		"type":       "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeEventRepo struct {
	checkclock.Repository

	stored    checkclock.Event
	getErr    error
	created   *checkclock.Event
	updatedTo *approval.Status
	updateErr error
	listGot   *checkclock.ListEventsFilter
}

func (f *fakeEventRepo) Create(ctx context.Context, event checkclock.Event) (checkclock.Event, error) {
	event.ID = "cc-1"
	f.created = &event
	return event, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id, companyID string) (checkclock.Event, error) {
	if f.getErr != nil {
		return checkclock.Event{}, f.getErr
	}
	found := f.stored
	if f.updatedTo != nil {
		found.Approval = *f.updatedTo
	}
	return found, nil
}

func (f *fakeEventRepo) List(ctx context.Context, companyID string, filter checkclock.ListEventsFilter) ([]checkclock.Event, error) {
	f.listGot = &filter
	return nil, nil
}

func (f *fakeEventRepo) UpdateApproval(ctx context.Context, id, companyID string, to approval.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTo = &to
	return nil
}

func (f *fakeEventRepo) SetProofURL(ctx context.Context, id, companyID, proofURL string) error {
	f.stored.ProofURL = &proofURL
	return nil
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

type fakeFileService struct {
	uploadedTo string
}

func (f *fakeFileService) Upload(ctx context.Context, file io.Reader, dir, filename, contentType string) (string, error) {
	f.uploadedTo = dir + "/" + filename
	return "http://localhost/uploads/" + f.uploadedTo, nil
}

func (f *fakeFileService) Delete(ctx context.Context, path string) error { return nil }

type fakeScheduleRepo struct {
	shift.ScheduleRepository

	stored shift.Schedule
	err    error
}

func (f *fakeScheduleRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (shift.Schedule, error) {
	if f.err != nil {
		return shift.Schedule{}, f.err
	}
	return f.stored, nil
}

type fakeTimeWindowRepo struct {
	shift.TimeWindowRepository

	stored shift.TimeWindow
	err    error
}

func (f *fakeTimeWindowRepo) GetBySettingAndShift(ctx context.Context, settingID string, shiftNumber int) (shift.TimeWindow, error) {
	if f.err != nil {
		return shift.TimeWindow{}, f.err
	}
	return f.stored, nil
}

func windowNineToFive(t *testing.T) shift.TimeWindow {
	t.Helper()
	clockIn, err := shift.ParseTimeOfDay("09:00:00")
	require.NoError(t, err)
	clockOut, err := shift.ParseTimeOfDay("17:00:00")
	require.NoError(t, err)
	return shift.TimeWindow{ID: "window-1", SettingID: "setting-1", ShiftNumber: 1, ClockIn: clockIn, ClockOut: clockOut}
}

func TestRecordEvent_LateClockIn(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	scheduleRepo := &fakeScheduleRepo{stored: shift.Schedule{ID: "schedule-1", SettingID: "setting-1", ShiftNumber: 1}}
	windowRepo := &fakeTimeWindowRepo{stored: windowNineToFive(t)}
	svc := NewCheckClockService(eventRepo, scheduleRepo, windowRepo, &fakeEmployeeRepo{}, nil)

	created, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeClockIn,
		OccurredAt: "2025-03-10T09:12:00Z",
	})

	require.NoError(t, err)
	require.NotNil(t, created.Status)
	assert.Equal(t, checkclock.StatusLate, *created.Status)
	assert.Equal(t, string(approval.StatusApproved), created.Approval)
	assert.Equal(t, "emp-1", created.EmployeeID)
}

func TestRecordEvent_OnTimeClockIn(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	scheduleRepo := &fakeScheduleRepo{stored: shift.Schedule{SettingID: "setting-1", ShiftNumber: 1}}
	windowRepo := &fakeTimeWindowRepo{stored: windowNineToFive(t)}
	svc := NewCheckClockService(eventRepo, scheduleRepo, windowRepo, &fakeEmployeeRepo{}, nil)

	created, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeClockIn,
		OccurredAt: "2025-03-10T09:00:00Z",
	})

	require.NoError(t, err)
	require.NotNil(t, created.Status)
	assert.Equal(t, checkclock.StatusOnTime, *created.Status)
	assert.Equal(t, string(approval.StatusApproved), created.Approval)
}

func TestRecordEvent_LeaveSkipsScheduleLookup(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	// Both lookups would fail; leave types must never reach them.
	scheduleRepo := &fakeScheduleRepo{err: shift.ErrScheduleNotFound}
	windowRepo := &fakeTimeWindowRepo{err: shift.ErrTimeWindowNotFound}
	svc := NewCheckClockService(eventRepo, scheduleRepo, windowRepo, &fakeEmployeeRepo{}, nil)

	created, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeSickLeave,
		OccurredAt: "2025-03-10T08:00:00Z",
	})

	require.NoError(t, err)
	assert.Nil(t, created.Status)
	assert.Equal(t, string(approval.StatusWaiting), created.Approval)
}

func TestRecordEvent_ResignedEmployeeRejected(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{err: employee.ErrEmployeeResigned}, nil)

	_, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeClockIn,
		OccurredAt: "2025-03-10T09:00:00Z",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeResigned)
	assert.Nil(t, eventRepo.created)
}

func TestRecordEvent_NoScheduleForDate(t *testing.T) {
	svc := NewCheckClockService(&fakeEventRepo{}, &fakeScheduleRepo{err: shift.ErrScheduleNotFound}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, nil)

	_, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeClockIn,
		OccurredAt: "2025-03-10T09:00:00Z",
	})

	assert.ErrorIs(t, err, checkclock.ErrNoScheduleFound)
}

func TestRecordEvent_NoWindowForShift(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{stored: shift.Schedule{SettingID: "setting-1", ShiftNumber: 2}}
	svc := NewCheckClockService(&fakeEventRepo{}, scheduleRepo, &fakeTimeWindowRepo{err: shift.ErrTimeWindowNotFound}, &fakeEmployeeRepo{}, nil)

	_, err := svc.RecordEvent(claimsContext(t, "company-1", "emp-1", false), checkclock.RecordEventRequest{
		Type:       checkclock.TypeClockOut,
		OccurredAt: "2025-03-10T17:00:00Z",
	})

	assert.ErrorIs(t, err, checkclock.ErrNoTimeWindow)
}

func TestListEvents_NonAdminPinnedToOwnRecords(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, nil)

	other := "emp-other"
	_, err := svc.ListEvents(claimsContext(t, "company-1", "emp-1", false), checkclock.ListEventsFilter{EmployeeID: &other})

	require.NoError(t, err)
	require.NotNil(t, eventRepo.listGot)
	require.NotNil(t, eventRepo.listGot.EmployeeID)
	assert.Equal(t, "emp-1", *eventRepo.listGot.EmployeeID)
}

func TestRespond_ApprovesPendingEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{stored: checkclock.Event{ID: "cc-1", EmployeeID: "emp-1", Approval: approval.StatusWaiting}}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, nil)

	decided, err := svc.Respond(claimsContext(t, "company-1", "", true), "cc-1", checkclock.RespondEventRequest{Decision: "Approve"})

	require.NoError(t, err)
	assert.Equal(t, string(approval.StatusApproved), decided.Approval)
}

func TestRespond_AlreadyDecided(t *testing.T) {
	eventRepo := &fakeEventRepo{stored: checkclock.Event{ID: "cc-1", Approval: approval.StatusApproved}}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, nil)

	_, err := svc.Respond(claimsContext(t, "company-1", "", true), "cc-1", checkclock.RespondEventRequest{Decision: "Reject"})

	assert.ErrorIs(t, err, approval.ErrNotPending)
	assert.Nil(t, eventRepo.updatedTo)
}

func TestUploadProof_AttachesURLToOwnRecord(t *testing.T) {
	eventRepo := &fakeEventRepo{stored: checkclock.Event{ID: "cc-1", EmployeeID: "emp-1", Approval: approval.StatusApproved}}
	fileSvc := &fakeFileService{}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, fileSvc)

	updated, err := svc.UploadProof(claimsContext(t, "company-1", "emp-1", false), "cc-1", strings.NewReader("img"), "proof.jpg", "image/jpeg")

	require.NoError(t, err)
	require.NotNil(t, updated.ProofURL)
	assert.Equal(t, "http://localhost/uploads/check-clocks/proof.jpg", *updated.ProofURL)
	assert.Equal(t, "check-clocks/proof.jpg", fileSvc.uploadedTo)
}

func TestUploadProof_EmployeeCannotAttachToOthers(t *testing.T) {
	eventRepo := &fakeEventRepo{stored: checkclock.Event{ID: "cc-1", EmployeeID: "emp-other", Approval: approval.StatusApproved}}
	fileSvc := &fakeFileService{}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, fileSvc)

	_, err := svc.UploadProof(claimsContext(t, "company-1", "emp-1", false), "cc-1", strings.NewReader("img"), "proof.jpg", "image/jpeg")

	assert.ErrorIs(t, err, checkclock.ErrEventNotFound)
	assert.Empty(t, fileSvc.uploadedTo)
}

func TestGetEvent_EmployeeCannotReadOthers(t *testing.T) {
	eventRepo := &fakeEventRepo{stored: checkclock.Event{ID: "cc-1", EmployeeID: "emp-other", Approval: approval.StatusWaiting}}
	svc := NewCheckClockService(eventRepo, &fakeScheduleRepo{}, &fakeTimeWindowRepo{}, &fakeEmployeeRepo{}, nil)

	_, err := svc.GetEvent(claimsContext(t, "company-1", "emp-1", false), "cc-1")

	assert.ErrorIs(t, err, checkclock.ErrEventNotFound)
}
