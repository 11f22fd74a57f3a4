package report

import (
	"github.com/hadirly/attendance-backend-go/internal/pkg/validator"
)

// Row kinds. Session and day rows carry per-record data; subtotal and
// total rows close out one employee's block.
const (
	RowTypeSession  = "session"
	RowTypeSubtotal = "subtotal"
	RowTypeDay      = "day"
	RowTypeTotal    = "total"
)

type DailyReportRequest struct {
	Date string `json:"date"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodReportRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// Validate rejects malformed dates and start > end here at the boundary;
// the aggregator itself assumes an ordered range.
func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailyReportRow is one line of the per-session daily breakdown. Subtotal
// rows leave the session fields empty, matching the original table shape.
type DailyReportRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	RowType      string  `json:"row_type"`
	SessionIndex int     `json:"session_index,omitempty"`
	CheckIn      string  `json:"check_in,omitempty"`
	CheckOut     string  `json:"check_out,omitempty"`
	CheckInNote  string  `json:"check_in_note,omitempty"`
	CheckOutNote string  `json:"check_out_note,omitempty"`
	Hours        float64 `json:"hours"`
	Salary       float64 `json:"salary"`
}

type DailyReportResponse struct {
	Date        string           `json:"date"`
	GeneratedAt string           `json:"generated_at"`
	Rows        []DailyReportRow `json:"rows"`
	TotalHours  float64          `json:"total_hours"`
	TotalSalary float64          `json:"total_salary"`
}

// PeriodReportRow is one per-day line of the period report: the day's first
// check-in, last check-out and summed hours. Total rows close an employee.
type PeriodReportRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	RowType      string  `json:"row_type"`
	Date         string  `json:"date,omitempty"`
	FirstCheckIn string  `json:"first_check_in,omitempty"`
	LastCheckOut string  `json:"last_check_out,omitempty"`
	Hours        float64 `json:"hours"`
	Salary       float64 `json:"salary"`
}

type PeriodReportResponse struct {
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	EmployeeID  *string           `json:"employee_id,omitempty"`
	GeneratedAt string            `json:"generated_at"`
	Rows        []PeriodReportRow `json:"rows"`
	TotalHours  float64           `json:"total_hours"`
	TotalSalary float64           `json:"total_salary"`
}
