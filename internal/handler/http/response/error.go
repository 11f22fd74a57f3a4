package response

import (
	"errors"
	"net/http"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/domain/report"
	"github.com/hadirly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionAlreadyOpen):
		Conflict(w, "An open attendance session already exists")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open attendance session found")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Report domain errors
	case errors.Is(err, report.ErrNoReportData):
		NotFound(w, "No attendance data for the requested period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
