package attendance

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/pkg/clock"
)

type LedgerServiceImpl struct {
	clock        clock.Clock
	sessionRepo  attendance.SessionRepository
	employeeRepo employee.EmployeeRepository
}

func NewLedgerService(
	clk clock.Clock,
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.LedgerService {
	return &LedgerServiceImpl{
		clock:        clk,
		sessionRepo:  sessionRepo,
		employeeRepo: employeeRepo,
	}
}

// openSessionRef points at an open session inside the store so it can be
// updated in place.
type openSessionRef struct {
	date    string
	index   int
	session attendance.Session
}

// findOpenSession scans every stored date, newest first, and sessions
// within a date in reverse insertion order. The invariant guarantees at
// most one open session; if corrupted storage holds several, the first hit
// of this scan order is the deterministic winner.
func (l *LedgerServiceImpl) findOpenSession(ctx context.Context, employeeID string) (*openSessionRef, error) {
	byDate, err := l.sessionRepo.GetAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, date := range dates {
		sessions := byDate[date]
		for i := len(sessions) - 1; i >= 0; i-- {
			if sessions[i].IsOpen() {
				return &openSessionRef{date: date, index: i, session: sessions[i]}, nil
			}
		}
	}
	return nil, nil
}

// HasOpenSession implements attendance.LedgerService.
func (l *LedgerServiceImpl) HasOpenSession(ctx context.Context, employeeID string) (attendance.OpenSessionStatus, error) {
	if _, err := l.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.OpenSessionStatus{}, err
	}

	ref, err := l.findOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.OpenSessionStatus{}, err
	}
	if ref == nil {
		return attendance.OpenSessionStatus{EmployeeID: employeeID, Open: false}, nil
	}
	return attendance.OpenSessionStatus{EmployeeID: employeeID, Open: true, Date: ref.date}, nil
}

// CheckIn implements attendance.LedgerService.
func (l *LedgerServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	if _, err := l.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SessionResponse{}, err
	}

	// The caller is expected to have checked first, but the ledger
	// re-validates so UI state racing storage state cannot open a second
	// session.
	ref, err := l.findOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	if ref != nil {
		return attendance.SessionResponse{}, attendance.ErrSessionAlreadyOpen
	}

	now := l.clock.Now()
	session := attendance.Session{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        now.Format(attendance.DateLayout),
		CheckIn:     now.Format(attendance.TimestampLayout),
		CheckInNote: req.Note,
	}

	if err := l.sessionRepo.Append(ctx, req.EmployeeID, session.Date, session); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to persist check-in: %w", err)
	}

	return attendance.NewSessionResponse(session), nil
}

// CheckOut implements attendance.LedgerService. The session stays dated
// under its check-in date even when the check-out happens days later.
func (l *LedgerServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	if _, err := l.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SessionResponse{}, err
	}

	ref, err := l.findOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	if ref == nil {
		return attendance.SessionResponse{}, attendance.ErrNoOpenSession
	}

	session := ref.session
	session.CheckOut = l.clock.Now().Format(attendance.TimestampLayout)
	session.CheckOutNote = req.Note

	if err := l.sessionRepo.Update(ctx, req.EmployeeID, ref.date, ref.index, session); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to persist check-out: %w", err)
	}

	return attendance.NewSessionResponse(session), nil
}

// SessionsOnDate implements attendance.LedgerService.
func (l *LedgerServiceImpl) SessionsOnDate(ctx context.Context, employeeID, date string) (attendance.ListSessionsResponse, error) {
	sessions, err := l.sessionRepo.GetByDate(ctx, employeeID, date)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to load sessions: %w", err)
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, attendance.NewSessionResponse(s))
	}

	return attendance.ListSessionsResponse{
		EmployeeID: employeeID,
		Date:       date,
		Sessions:   responses,
	}, nil
}

// AmendCheckInNote implements attendance.LedgerService. Only the open
// session is editable; closed sessions are immutable.
func (l *LedgerServiceImpl) AmendCheckInNote(ctx context.Context, req attendance.AmendNoteRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	if _, err := l.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SessionResponse{}, err
	}

	ref, err := l.findOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	if ref == nil {
		return attendance.SessionResponse{}, attendance.ErrNoOpenSession
	}

	session := ref.session
	session.CheckInNote = req.Note

	if err := l.sessionRepo.Update(ctx, req.EmployeeID, ref.date, ref.index, session); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to persist note: %w", err)
	}

	return attendance.NewSessionResponse(session), nil
}
