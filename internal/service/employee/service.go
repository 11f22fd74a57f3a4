package employee

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/pkg/payroll"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	sessionRepo  attendance.SessionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	sessionRepo attendance.SessionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		sessionRepo:  sessionRepo,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Department:    emp.Department,
		MonthlySalary: emp.MonthlySalary.InexactFloat64(),
		HourlyRate:    payroll.HourlyRate(emp.MonthlySalary).InexactFloat64(),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	all, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	responses := make([]employee.EmployeeResponse, 0, len(ids))
	for _, id := range ids {
		responses = append(responses, toResponse(all[id]))
	}

	return employee.ListEmployeeResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	emp := employee.Employee{
		ID:            req.ID,
		Name:          req.Name,
		Department:    req.Department,
		MonthlySalary: req.MonthlySalary,
	}
	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return toResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.Department = req.Department
	emp.MonthlySalary = req.MonthlySalary

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return toResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService. Sessions go first so
// a failure cannot leave orphaned attendance under a missing employee.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.sessionRepo.DeleteByEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
