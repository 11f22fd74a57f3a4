package attendance

import "context"

// SessionRepository is the Session Store boundary. Sessions live in ordered
// lists keyed by (employee, date); insertion order is the chronological
// order of check-ins on that date, and Update addresses a session by its
// position in that list.
type SessionRepository interface {
	// GetByDate returns the session list for one date, empty when none.
	GetByDate(ctx context.Context, employeeID, date string) ([]Session, error)

	// Append adds a session to the end of the (employee, date) list.
	Append(ctx context.Context, employeeID, date string, s Session) error

	// Update replaces the session at index within the (employee, date)
	// list. ErrSessionNotFound when the slot does not exist.
	Update(ctx context.Context, employeeID, date string, index int, s Session) error

	// GetAllByEmployee returns every stored session keyed by date.
	GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]Session, error)

	// DeleteByEmployee removes all sessions under all dates.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
