package shift

import (
	"context"
	"time"
)

type SettingRepository interface {
	Create(ctx context.Context, setting Setting) (Setting, error)
	GetByID(ctx context.Context, id string, companyID string) (Setting, error)
	List(ctx context.Context, companyID string) ([]Setting, error)
	Update(ctx context.Context, id string, companyID string, req UpdateSettingRequest) error
	SoftDelete(ctx context.Context, id string, companyID string) error
}

type TimeWindowRepository interface {
	Create(ctx context.Context, window TimeWindow) (TimeWindow, error)
	GetByID(ctx context.Context, id string) (TimeWindow, error)

	// GetBySettingAndShift resolves the single window for a (setting, shift
	// number) pair; ErrTimeWindowNotFound when none is configured.
	GetBySettingAndShift(ctx context.Context, settingID string, shiftNumber int) (TimeWindow, error)

	ListBySetting(ctx context.Context, settingID string) ([]TimeWindow, error)
	Update(ctx context.Context, id string, req UpdateTimeWindowRequest) error
	Delete(ctx context.Context, id string) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)

	// GetByEmployeeAndDate resolves the employee's schedule for a work date;
	// ErrScheduleNotFound when the date is unscheduled.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (Schedule, error)

	// ExistsForEmployeeAndDate supports the uniqueness check; excludeID skips
	// the record's own row on the update path.
	ExistsForEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, excludeID *string) (bool, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Schedule, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) error
	SoftDelete(ctx context.Context, id string) error
}
