// Package fallback layers a local backup copy under a remote primary
// backend. Reads and writes go to the primary; when it is unreachable the
// operation is served from (or applied to) the backup instead, and only a
// failure of both surfaces to the caller. Successful primary writes are
// mirrored to the backup best-effort so the local copy stays usable.
//
// This is a redundancy policy, not replication: with a single active
// writer the backup trails the primary by at most the mirror failures
// logged below.
package fallback

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
)

type EmployeeStore struct {
	primary employee.EmployeeRepository
	backup  employee.EmployeeRepository
}

func NewEmployeeStore(primary, backup employee.EmployeeRepository) *EmployeeStore {
	return &EmployeeStore{primary: primary, backup: backup}
}

var _ employee.EmployeeRepository = (*EmployeeStore)(nil)

// GetAll implements employee.EmployeeRepository.
func (s *EmployeeStore) GetAll(ctx context.Context) (map[string]employee.Employee, error) {
	out, err := s.primary.GetAll(ctx)
	if err == nil {
		return out, nil
	}
	slog.Warn("primary store unavailable, reading employees from backup", "error", err)
	return s.backup.GetAll(ctx)
}

// GetByID implements employee.EmployeeRepository. Not-found answers come
// from whichever store answered; only transport failures fall back.
func (s *EmployeeStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.primary.GetByID(ctx, id)
	if err == nil || errors.Is(err, employee.ErrEmployeeNotFound) {
		return emp, err
	}
	slog.Warn("primary store unavailable, reading employee from backup", "error", err)
	return s.backup.GetByID(ctx, id)
}

// Save implements employee.EmployeeRepository.
func (s *EmployeeStore) Save(ctx context.Context, emp employee.Employee) error {
	if err := s.primary.Save(ctx, emp); err != nil {
		slog.Warn("primary store unavailable, saving employee to backup only", "error", err)
		return s.backup.Save(ctx, emp)
	}
	if err := s.backup.Save(ctx, emp); err != nil {
		slog.Warn("failed to mirror employee to backup", "employee_id", emp.ID, "error", err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (s *EmployeeStore) Delete(ctx context.Context, id string) error {
	if err := s.primary.Delete(ctx, id); err != nil {
		slog.Warn("primary store unavailable, deleting employee from backup only", "error", err)
		return s.backup.Delete(ctx, id)
	}
	if err := s.backup.Delete(ctx, id); err != nil {
		slog.Warn("failed to mirror employee delete to backup", "employee_id", id, "error", err)
	}
	return nil
}

type SessionStore struct {
	primary attendance.SessionRepository
	backup  attendance.SessionRepository
}

func NewSessionStore(primary, backup attendance.SessionRepository) *SessionStore {
	return &SessionStore{primary: primary, backup: backup}
}

var _ attendance.SessionRepository = (*SessionStore)(nil)

// GetByDate implements attendance.SessionRepository.
func (s *SessionStore) GetByDate(ctx context.Context, employeeID, date string) ([]attendance.Session, error) {
	sessions, err := s.primary.GetByDate(ctx, employeeID, date)
	if err == nil {
		return sessions, nil
	}
	slog.Warn("primary store unavailable, reading sessions from backup", "error", err)
	return s.backup.GetByDate(ctx, employeeID, date)
}

// Append implements attendance.SessionRepository.
func (s *SessionStore) Append(ctx context.Context, employeeID, date string, session attendance.Session) error {
	if err := s.primary.Append(ctx, employeeID, date, session); err != nil {
		slog.Warn("primary store unavailable, appending session to backup only", "error", err)
		return s.backup.Append(ctx, employeeID, date, session)
	}
	if err := s.backup.Append(ctx, employeeID, date, session); err != nil {
		slog.Warn("failed to mirror session to backup", "employee_id", employeeID, "date", date, "error", err)
	}
	return nil
}

// Update implements attendance.SessionRepository.
func (s *SessionStore) Update(ctx context.Context, employeeID, date string, index int, session attendance.Session) error {
	if err := s.primary.Update(ctx, employeeID, date, index, session); err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return err
		}
		slog.Warn("primary store unavailable, updating session in backup only", "error", err)
		return s.backup.Update(ctx, employeeID, date, index, session)
	}
	if err := s.backup.Update(ctx, employeeID, date, index, session); err != nil {
		slog.Warn("failed to mirror session update to backup", "employee_id", employeeID, "date", date, "error", err)
	}
	return nil
}

// GetAllByEmployee implements attendance.SessionRepository.
func (s *SessionStore) GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]attendance.Session, error) {
	sessions, err := s.primary.GetAllByEmployee(ctx, employeeID)
	if err == nil {
		return sessions, nil
	}
	slog.Warn("primary store unavailable, reading sessions from backup", "error", err)
	return s.backup.GetAllByEmployee(ctx, employeeID)
}

// DeleteByEmployee implements attendance.SessionRepository.
func (s *SessionStore) DeleteByEmployee(ctx context.Context, employeeID string) error {
	if err := s.primary.DeleteByEmployee(ctx, employeeID); err != nil {
		slog.Warn("primary store unavailable, deleting sessions from backup only", "error", err)
		return s.backup.DeleteByEmployee(ctx, employeeID)
	}
	if err := s.backup.DeleteByEmployee(ctx, employeeID); err != nil {
		slog.Warn("failed to mirror session delete to backup", "employee_id", employeeID, "error", err)
	}
	return nil
}
