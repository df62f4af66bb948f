package response

import (
	"errors"
	"net/http"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/auth"
	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/letter"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCompanyUsernameExists):
		Conflict(w, "Company username already taken")
	case errors.Is(err, user.ErrUsernameGeneration):
		Conflict(w, "Could not generate a unique company username")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Company
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company with this name already exists")
	case errors.Is(err, company.ErrCompanyCodeExists):
		Conflict(w, "Company code already exists")
	case errors.Is(err, company.ErrEmployeeQuotaExceeded):
		Conflict(w, "Company has reached its maximum employee count")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeResigned):
		Conflict(w, "Employee has resigned")

	// Shift configuration
	case errors.Is(err, shift.ErrSettingNotFound):
		NotFound(w, "Shift setting not found")
	case errors.Is(err, shift.ErrTimeWindowNotFound):
		NotFound(w, "Shift time window not found")
	case errors.Is(err, shift.ErrTimeWindowExists):
		Conflict(w, "Time window for this shift number already exists")
	case errors.Is(err, shift.ErrClockOutNotAfterIn):
		BadRequest(w, "clock_out must be after clock_in", nil)
	case errors.Is(err, shift.ErrBreakEndNotAfter):
		BadRequest(w, "break_end must be after break_start", nil)
	case errors.Is(err, shift.ErrScheduleNotFound):
		NotFound(w, "Shift schedule not found")
	case errors.Is(err, shift.ErrDuplicateSchedule):
		Conflict(w, "Employee already has a schedule on this date")
	case errors.Is(err, shift.ErrInvalidShiftNumber):
		BadRequest(w, "Shift number is outside the setting's shift count", nil)
	case errors.Is(err, shift.ErrInvalidWorkDate):
		BadRequest(w, "Invalid work date, use YYYY-MM-DD", nil)

	// Check clock
	case errors.Is(err, checkclock.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, checkclock.ErrInvalidType):
		BadRequest(w, "Invalid check clock type", nil)
	case errors.Is(err, checkclock.ErrInvalidTime):
		BadRequest(w, "Invalid check clock time", nil)
	case errors.Is(err, checkclock.ErrNoScheduleFound):
		NotFound(w, "No shift schedule found for this date")
	case errors.Is(err, checkclock.ErrNoTimeWindow):
		NotFound(w, "No time window configured for this shift")

	// Letters
	case errors.Is(err, letter.ErrLetterNotFound):
		NotFound(w, "Letter not found")
	case errors.Is(err, letter.ErrFormatNotFound):
		NotFound(w, "Letter format not found")
	case errors.Is(err, letter.ErrFormatInUse):
		Conflict(w, "Letter format still has letters attached")

	// Approval
	case errors.Is(err, approval.ErrNotPending):
		Conflict(w, "Record has already been approved or rejected")
	case errors.Is(err, approval.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approve or Reject", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
