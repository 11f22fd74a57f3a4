// Package memory holds the whole ledger in process memory. It backs tests
// and demo deployments, and doubles as the model for the simulated cloud
// folder backend of the original system.
package memory

import (
	"context"
	"sync"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
)

type Store struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	sessions  map[string]map[string][]attendance.Session // employeeID -> date -> sessions
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		sessions:  make(map[string]map[string][]attendance.Session),
	}
}

var (
	_ employee.EmployeeRepository  = (*Store)(nil)
	_ attendance.SessionRepository = (*Store)(nil)
)

// GetAll implements employee.EmployeeRepository.
func (s *Store) GetAll(ctx context.Context) (map[string]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]employee.Employee, len(s.employees))
	for id, emp := range s.employees {
		out[id] = emp
	}
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (s *Store) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// Save implements employee.EmployeeRepository.
func (s *Store) Save(ctx context.Context, emp employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees[emp.ID] = emp
	return nil
}

// Delete implements employee.EmployeeRepository.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.employees, id)
	return nil
}

// GetByDate implements attendance.SessionRepository.
func (s *Store) GetByDate(ctx context.Context, employeeID, date string) ([]attendance.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions[employeeID][date]
	out := make([]attendance.Session, len(sessions))
	copy(out, sessions)
	return out, nil
}

// Append implements attendance.SessionRepository.
func (s *Store) Append(ctx context.Context, employeeID, date string, session attendance.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[employeeID] == nil {
		s.sessions[employeeID] = make(map[string][]attendance.Session)
	}
	s.sessions[employeeID][date] = append(s.sessions[employeeID][date], session)
	return nil
}

// Update implements attendance.SessionRepository.
func (s *Store) Update(ctx context.Context, employeeID, date string, index int, session attendance.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions[employeeID][date]
	if index < 0 || index >= len(sessions) {
		return attendance.ErrSessionNotFound
	}
	sessions[index] = session
	return nil
}

// GetAllByEmployee implements attendance.SessionRepository.
func (s *Store) GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]attendance.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]attendance.Session, len(s.sessions[employeeID]))
	for date, sessions := range s.sessions[employeeID] {
		copied := make([]attendance.Session, len(sessions))
		copy(copied, sessions)
		out[date] = copied
	}
	return out, nil
}

// DeleteByEmployee implements attendance.SessionRepository.
func (s *Store) DeleteByEmployee(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, employeeID)
	return nil
}
