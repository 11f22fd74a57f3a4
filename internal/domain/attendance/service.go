package attendance

import "context"

// LedgerService enforces the open-session invariant: per employee, at most
// one session across all dates may lack a check-out.
type LedgerService interface {
	// HasOpenSession scans every stored date for the employee. When an
	// open session exists it reports the date it was opened under.
	HasOpenSession(ctx context.Context, employeeID string) (OpenSessionStatus, error)

	// CheckIn opens a new session under today's date. Fails with
	// ErrSessionAlreadyOpen if any open session exists.
	CheckIn(ctx context.Context, req CheckInRequest) (SessionResponse, error)

	// CheckOut closes the most recently opened open session, which may be
	// dated earlier than today. Fails with ErrNoOpenSession.
	CheckOut(ctx context.Context, req CheckOutRequest) (SessionResponse, error)

	// SessionsOnDate returns the stored list for one date in insertion
	// order; empty when the employee has nothing that date.
	SessionsOnDate(ctx context.Context, employeeID, date string) (ListSessionsResponse, error)

	// AmendCheckInNote edits the check-in note of the open session.
	// Closed sessions are immutable, so this fails with ErrNoOpenSession
	// once the employee has checked out.
	AmendCheckInNote(ctx context.Context, req AmendNoteRequest) (SessionResponse, error)
}
