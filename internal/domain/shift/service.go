package shift

import "context"

type ShiftService interface {
	CreateSetting(ctx context.Context, req CreateSettingRequest) (SettingResponse, error)
	GetSetting(ctx context.Context, id string) (SettingResponse, error)
	ListSettings(ctx context.Context) ([]SettingResponse, error)
	UpdateSetting(ctx context.Context, id string, req UpdateSettingRequest) (SettingResponse, error)
	DeleteSetting(ctx context.Context, id string) error

	AddTimeWindow(ctx context.Context, settingID string, req CreateTimeWindowRequest) (TimeWindowResponse, error)
	UpdateTimeWindow(ctx context.Context, settingID, windowID string, req UpdateTimeWindowRequest) (TimeWindowResponse, error)
	RemoveTimeWindow(ctx context.Context, settingID, windowID string) error

	// AssignSchedule places an employee on one shift of a setting for a work
	// date. The (employee, work date) pair is unique across live schedules.
	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, employeeID string) ([]ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
}
