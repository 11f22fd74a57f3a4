package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepository) GetAll(ctx context.Context) (map[string]employee.Employee, error) {
	query := `
		SELECT id, name, department, monthly_salary
		FROM employees
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	out := make(map[string]employee.Employee)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.MonthlySalary); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out[emp.ID] = emp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT id, name, department, monthly_salary
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.Name, &emp.Department, &emp.MonthlySalary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Save implements employee.EmployeeRepository.
func (r *employeeRepository) Save(ctx context.Context, emp employee.Employee) error {
	query := `
		INSERT INTO employees (id, name, department, monthly_salary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    department = EXCLUDED.department,
		    monthly_salary = EXCLUDED.monthly_salary,
		    updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, emp.ID, emp.Name, emp.Department, emp.MonthlySalary); err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Sessions cascade via the
// foreign key; unknown codes delete zero rows and that is fine.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
