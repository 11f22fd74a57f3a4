package employee

import (
	"github.com/hadirly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Department    string          `json:"department"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee code may only contain letters, digits, '.', '_' and '-'",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string          `json:"-"`
	Name          string          `json:"name"`
	Department    string          `json:"department"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Department    string  `json:"department,omitempty"`
	MonthlySalary float64 `json:"monthly_salary"`
	HourlyRate    float64 `json:"hourly_rate"`
}

type ListEmployeeResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
