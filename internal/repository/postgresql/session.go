package postgresql

import (
	"context"
	"fmt"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

// GetByDate implements attendance.SessionRepository.
func (r *sessionRepository) GetByDate(ctx context.Context, employeeID, date string) ([]attendance.Session, error) {
	query := `
		SELECT id, employee_id, date, check_in, check_out, check_in_note, check_out_note
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.CheckInNote, &s.CheckOutNote); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, nil
}

// Append implements attendance.SessionRepository. seq is allocated from the
// current maximum for the (employee, date) list; the single-writer model
// makes that safe without a transaction.
func (r *sessionRepository) Append(ctx context.Context, employeeID, date string, s attendance.Session) error {
	query := `
		INSERT INTO attendance_sessions (id, employee_id, date, seq, check_in, check_out, check_in_note, check_out_note)
		VALUES (
			$1, $2, $3,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM attendance_sessions WHERE employee_id = $2 AND date = $3),
			$4, $5, $6, $7
		)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID, employeeID, date, s.CheckIn, s.CheckOut, s.CheckInNote, s.CheckOutNote,
	)
	if err != nil {
		return fmt.Errorf("failed to append session: %w", err)
	}
	return nil
}

// Update implements attendance.SessionRepository. index is the zero-based
// position in insertion order, so it maps to seq = index + 1.
func (r *sessionRepository) Update(ctx context.Context, employeeID, date string, index int, s attendance.Session) error {
	query := `
		UPDATE attendance_sessions
		SET check_in = $4, check_out = $5, check_in_note = $6, check_out_note = $7, updated_at = now()
		WHERE employee_id = $1 AND date = $2 AND seq = $3
	`

	tag, err := r.db.Exec(ctx, query,
		employeeID, date, index+1, s.CheckIn, s.CheckOut, s.CheckInNote, s.CheckOutNote,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}
	return nil
}

// GetAllByEmployee implements attendance.SessionRepository.
func (r *sessionRepository) GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]attendance.Session, error) {
	query := `
		SELECT id, employee_id, date, check_in, check_out, check_in_note, check_out_note
		FROM attendance_sessions
		WHERE employee_id = $1
		ORDER BY date, seq
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]attendance.Session)
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.CheckInNote, &s.CheckOutNote); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out[s.Date] = append(out[s.Date], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return out, nil
}

// DeleteByEmployee implements attendance.SessionRepository.
func (r *sessionRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM attendance_sessions WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
