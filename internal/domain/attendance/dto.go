package attendance

import (
	"github.com/hadirly/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AmendNoteRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
}

func (r *AmendNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
	CheckInNote  string `json:"check_in_note,omitempty"`
	CheckOutNote string `json:"check_out_note,omitempty"`
	Open         bool   `json:"open"`
}

// OpenSessionStatus answers "is this employee clocked in, and since when".
// Date may predate today when a session spans midnight.
type OpenSessionStatus struct {
	EmployeeID string `json:"employee_id"`
	Open       bool   `json:"open"`
	Date       string `json:"date,omitempty"`
}

type ListSessionsResponse struct {
	EmployeeID string            `json:"employee_id"`
	Date       string            `json:"date"`
	Sessions   []SessionResponse `json:"sessions"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		Date:         s.Date,
		CheckIn:      s.CheckIn,
		CheckOut:     s.CheckOut,
		CheckInNote:  s.CheckInNote,
		CheckOutNote: s.CheckOutNote,
		Open:         s.IsOpen(),
	}
}
