package employee

import (
	"context"
	"testing"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (employee.EmployeeService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewEmployeeService(store, store), store
}

func TestCreateEmployee(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ID:            "EMP-1",
		Name:          "Ayu Lestari",
		Department:    "Engineering",
		MonthlySalary: decimal.NewFromInt(2600),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-1", resp.ID)
	assert.InDelta(t, 2600.0, resp.MonthlySalary, 0.001)
	assert.InDelta(t, 100.0, resp.HourlyRate, 0.001) // 2600 over 26 working days
}

func TestCreateEmployeeDuplicateCode(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		ID:            "EMP-1",
		Name:          "Ayu Lestari",
		MonthlySalary: decimal.NewFromInt(2600),
	}
	_, err := svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	req.Name = "Someone Else"
	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{"missing id", employee.CreateEmployeeRequest{Name: "Ayu"}},
		{"missing name", employee.CreateEmployeeRequest{ID: "EMP-1"}},
		{"bad code", employee.CreateEmployeeRequest{ID: "EMP 1", Name: "Ayu"}},
		{"negative salary", employee.CreateEmployeeRequest{
			ID: "EMP-1", Name: "Ayu", MonthlySalary: decimal.NewFromInt(-1),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CreateEmployee(ctx, c.req)
			assert.Error(t, err)
		})
	}
}

func TestListEmployeesSorted(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"EMP-3", "EMP-1", "EMP-2"} {
		require.NoError(t, store.Save(ctx, employee.Employee{
			ID: id, Name: "Employee " + id, MonthlySalary: decimal.NewFromInt(2600),
		}))
	}

	resp, err := svc.ListEmployees(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	require.Len(t, resp.Employees, 3)
	assert.Equal(t, "EMP-1", resp.Employees[0].ID)
	assert.Equal(t, "EMP-2", resp.Employees[1].ID)
	assert.Equal(t, "EMP-3", resp.Employees[2].ID)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetEmployee(context.Background(), "GHOST")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, employee.Employee{
		ID: "EMP-1", Name: "Ayu Lestari", MonthlySalary: decimal.NewFromInt(2600),
	}))

	resp, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:            "EMP-1",
		Name:          "Ayu Wijaya",
		Department:    "Finance",
		MonthlySalary: decimal.NewFromInt(5200),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayu Wijaya", resp.Name)
	assert.Equal(t, "Finance", resp.Department)
	assert.InDelta(t, 200.0, resp.HourlyRate, 0.001)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID: "GHOST", Name: "Nobody",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployeeCascadesSessions(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, employee.Employee{
		ID: "EMP-1", Name: "Ayu Lestari", MonthlySalary: decimal.NewFromInt(2600),
	}))
	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", attendance.Session{
		ID: "s1", EmployeeID: "EMP-1", Date: "2024-01-10",
		CheckIn: "2024-01-10 09:00:00", CheckOut: "2024-01-10 17:00:00",
	}))

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP-1"))

	_, err := store.GetByID(ctx, "EMP-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	byDate, err := store.GetAllByEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Empty(t, byDate)
}

func TestDeleteEmployeeUnknownIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	assert.NoError(t, svc.DeleteEmployee(context.Background(), "GHOST"))
}
