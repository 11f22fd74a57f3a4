package attendance

const (
	// TimestampLayout is the persisted check-in/check-out format: local
	// time, no timezone offset. It round-trips through every backend.
	TimestampLayout = "2006-01-02 15:04:05"

	// DateLayout is the calendar date key format.
	DateLayout = "2006-01-02"
)

// Session is one check-in/check-out pair for an employee. Date is the
// calendar date of the check-in, even when the check-out lands on a later
// date. An empty CheckOut means the session is still open.
type Session struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	CheckInNote  string `json:"check_in_note,omitempty"`
	CheckOutNote string `json:"check_out_note,omitempty"`
}

// IsOpen reports whether the session has a check-in but no check-out yet.
func (s Session) IsOpen() bool {
	return s.CheckIn != "" && s.CheckOut == ""
}
