// Package jsonfile persists the ledger as two JSON documents in a data
// directory: employees.json (directory keyed by employee code) and
// attendance.json (date -> employee -> session list). The layout matches
// the files produced by the legacy system, so an existing data directory
// can be mounted as-is.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

const (
	employeesFile  = "employees.json"
	attendanceFile = "attendance.json"
)

type diskEmployee struct {
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	MonthlySalary float64 `json:"monthly_salary"`
}

type diskSession struct {
	ID           string `json:"id,omitempty"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	CheckInNote  string `json:"check_in_note,omitempty"`
	CheckOutNote string `json:"check_out_note,omitempty"`
}

type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

var (
	_ employee.EmployeeRepository  = (*Store)(nil)
	_ attendance.SessionRepository = (*Store)(nil)
)

func (s *Store) loadEmployees() (map[string]diskEmployee, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, employeesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]diskEmployee{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", employeesFile, err)
	}

	employees := make(map[string]diskEmployee)
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", employeesFile, err)
	}
	return employees, nil
}

// loadAttendance reads the date -> employee -> records document. The legacy
// writer stored a single record object where later versions store a list,
// so both shapes are accepted.
func (s *Store) loadAttendance() (map[string]map[string][]diskSession, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, attendanceFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]map[string][]diskSession{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", attendanceFile, err)
	}

	raw := make(map[string]map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", attendanceFile, err)
	}

	out := make(map[string]map[string][]diskSession, len(raw))
	for date, perEmployee := range raw {
		out[date] = make(map[string][]diskSession, len(perEmployee))
		for empID, records := range perEmployee {
			var list []diskSession
			if err := json.Unmarshal(records, &list); err == nil {
				out[date][empID] = list
				continue
			}
			var single diskSession
			if err := json.Unmarshal(records, &single); err == nil {
				out[date][empID] = []diskSession{single}
				continue
			}
			return nil, fmt.Errorf("failed to parse %s records for %s on %s", attendanceFile, empID, date)
		}
	}
	return out, nil
}

// writeFile writes via a temp file and rename so a crash mid-write cannot
// truncate the ledger.
func (s *Store) writeFile(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func toSession(d diskSession, employeeID, date string) attendance.Session {
	return attendance.Session{
		ID:           d.ID,
		EmployeeID:   employeeID,
		Date:         date,
		CheckIn:      d.CheckIn,
		CheckOut:     d.CheckOut,
		CheckInNote:  d.CheckInNote,
		CheckOutNote: d.CheckOutNote,
	}
}

func toDiskSession(session attendance.Session) diskSession {
	return diskSession{
		ID:           session.ID,
		CheckIn:      session.CheckIn,
		CheckOut:     session.CheckOut,
		CheckInNote:  session.CheckInNote,
		CheckOutNote: session.CheckOutNote,
	}
}

// GetAll implements employee.EmployeeRepository.
func (s *Store) GetAll(ctx context.Context) (map[string]employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	disk, err := s.loadEmployees()
	if err != nil {
		return nil, err
	}

	out := make(map[string]employee.Employee, len(disk))
	for id, rec := range disk {
		out[id] = employee.Employee{
			ID:            id,
			Name:          rec.Name,
			Department:    rec.Department,
			MonthlySalary: decimal.NewFromFloat(rec.MonthlySalary),
		}
	}
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (s *Store) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	disk, err := s.loadEmployees()
	if err != nil {
		return employee.Employee{}, err
	}

	rec, ok := disk[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{
		ID:            id,
		Name:          rec.Name,
		Department:    rec.Department,
		MonthlySalary: decimal.NewFromFloat(rec.MonthlySalary),
	}, nil
}

// Save implements employee.EmployeeRepository.
func (s *Store) Save(ctx context.Context, emp employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	disk, err := s.loadEmployees()
	if err != nil {
		return err
	}

	disk[emp.ID] = diskEmployee{
		Name:          emp.Name,
		Department:    emp.Department,
		MonthlySalary: emp.MonthlySalary.InexactFloat64(),
	}
	return s.writeFile(employeesFile, disk)
}

// Delete implements employee.EmployeeRepository.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	disk, err := s.loadEmployees()
	if err != nil {
		return err
	}
	if _, ok := disk[id]; !ok {
		return nil
	}

	delete(disk, id)
	return s.writeFile(employeesFile, disk)
}

// GetByDate implements attendance.SessionRepository.
func (s *Store) GetByDate(ctx context.Context, employeeID, date string) ([]attendance.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}

	records := byDate[date][employeeID]
	out := make([]attendance.Session, 0, len(records))
	for _, rec := range records {
		out = append(out, toSession(rec, employeeID, date))
	}
	return out, nil
}

// Append implements attendance.SessionRepository.
func (s *Store) Append(ctx context.Context, employeeID, date string, session attendance.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, err := s.loadAttendance()
	if err != nil {
		return err
	}

	if byDate[date] == nil {
		byDate[date] = make(map[string][]diskSession)
	}
	byDate[date][employeeID] = append(byDate[date][employeeID], toDiskSession(session))
	return s.writeFile(attendanceFile, byDate)
}

// Update implements attendance.SessionRepository.
func (s *Store) Update(ctx context.Context, employeeID, date string, index int, session attendance.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, err := s.loadAttendance()
	if err != nil {
		return err
	}

	records := byDate[date][employeeID]
	if index < 0 || index >= len(records) {
		return attendance.ErrSessionNotFound
	}
	records[index] = toDiskSession(session)
	byDate[date][employeeID] = records
	return s.writeFile(attendanceFile, byDate)
}

// GetAllByEmployee implements attendance.SessionRepository.
func (s *Store) GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]attendance.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]attendance.Session)
	for date, perEmployee := range byDate {
		records, ok := perEmployee[employeeID]
		if !ok || len(records) == 0 {
			continue
		}
		sessions := make([]attendance.Session, 0, len(records))
		for _, rec := range records {
			sessions = append(sessions, toSession(rec, employeeID, date))
		}
		out[date] = sessions
	}
	return out, nil
}

// DeleteByEmployee implements attendance.SessionRepository. Dates left with
// no employees are dropped, the way the legacy writer pruned them.
func (s *Store) DeleteByEmployee(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, err := s.loadAttendance()
	if err != nil {
		return err
	}

	changed := false
	for date, perEmployee := range byDate {
		if _, ok := perEmployee[employeeID]; !ok {
			continue
		}
		delete(perEmployee, employeeID)
		changed = true
		if len(perEmployee) == 0 {
			delete(byDate, date)
		}
	}
	if !changed {
		return nil
	}
	return s.writeFile(attendanceFile, byDate)
}
