package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("connection refused")

// downStore simulates an unreachable primary backend.
type downStore struct{}

func (downStore) GetAll(ctx context.Context) (map[string]employee.Employee, error) {
	return nil, errUnreachable
}

func (downStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, errUnreachable
}

func (downStore) Save(ctx context.Context, emp employee.Employee) error { return errUnreachable }

func (downStore) Delete(ctx context.Context, id string) error { return errUnreachable }

func (downStore) GetByDate(ctx context.Context, employeeID, date string) ([]attendance.Session, error) {
	return nil, errUnreachable
}

func (downStore) Append(ctx context.Context, employeeID, date string, session attendance.Session) error {
	return errUnreachable
}

func (downStore) Update(ctx context.Context, employeeID, date string, index int, session attendance.Session) error {
	return errUnreachable
}

func (downStore) GetAllByEmployee(ctx context.Context, employeeID string) (map[string][]attendance.Session, error) {
	return nil, errUnreachable
}

func (downStore) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return errUnreachable
}

func TestEmployeeStoreFallsBackOnFailure(t *testing.T) {
	backup := memory.NewStore()
	store := NewEmployeeStore(downStore{}, backup)
	ctx := context.Background()

	emp := employee.Employee{ID: "EMP-1", Name: "Ayu Lestari", MonthlySalary: decimal.NewFromInt(2600)}
	require.NoError(t, store.Save(ctx, emp))

	// The write landed in the backup and reads are served from it.
	got, err := store.GetByID(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", got.Name)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.Delete(ctx, "EMP-1"))
	_, err = store.GetByID(ctx, "EMP-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeStoreMirrorsWrites(t *testing.T) {
	primary := memory.NewStore()
	backup := memory.NewStore()
	store := NewEmployeeStore(primary, backup)
	ctx := context.Background()

	emp := employee.Employee{ID: "EMP-1", Name: "Ayu Lestari", MonthlySalary: decimal.NewFromInt(2600)}
	require.NoError(t, store.Save(ctx, emp))

	// Both copies hold the employee.
	_, err := primary.GetByID(ctx, "EMP-1")
	assert.NoError(t, err)
	_, err = backup.GetByID(ctx, "EMP-1")
	assert.NoError(t, err)
}

func TestEmployeeStoreNotFoundDoesNotFallBack(t *testing.T) {
	primary := memory.NewStore()
	backup := memory.NewStore()
	ctx := context.Background()

	// Present only in the backup: a healthy primary's not-found answer is
	// authoritative.
	require.NoError(t, backup.Save(ctx, employee.Employee{ID: "EMP-1", Name: "Ayu"}))

	store := NewEmployeeStore(primary, backup)
	_, err := store.GetByID(ctx, "EMP-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSessionStoreFallsBackOnFailure(t *testing.T) {
	backup := memory.NewStore()
	store := NewSessionStore(downStore{}, backup)
	ctx := context.Background()

	session := attendance.Session{
		ID: "s1", EmployeeID: "EMP-1", Date: "2024-01-10",
		CheckIn: "2024-01-10 09:00:00",
	}
	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", session))

	sessions, err := store.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	session.CheckOut = "2024-01-10 17:00:00"
	require.NoError(t, store.Update(ctx, "EMP-1", "2024-01-10", 0, session))

	byDate, err := store.GetAllByEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.False(t, byDate["2024-01-10"][0].IsOpen())

	require.NoError(t, store.DeleteByEmployee(ctx, "EMP-1"))
	byDate, err = store.GetAllByEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Empty(t, byDate)
}

func TestSessionStoreMirrorsWrites(t *testing.T) {
	primary := memory.NewStore()
	backup := memory.NewStore()
	store := NewSessionStore(primary, backup)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", attendance.Session{
		ID: "s1", EmployeeID: "EMP-1", Date: "2024-01-10",
		CheckIn: "2024-01-10 09:00:00",
	}))

	sessions, err := primary.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	sessions, err = backup.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionStoreUpdateNotFoundDoesNotFallBack(t *testing.T) {
	primary := memory.NewStore()
	backup := memory.NewStore()
	ctx := context.Background()

	// The backup has a session the primary lacks; a healthy primary's
	// not-found must not be retried against the backup.
	require.NoError(t, backup.Append(ctx, "EMP-1", "2024-01-10", attendance.Session{ID: "s1"}))

	store := NewSessionStore(primary, backup)
	err := store.Update(ctx, "EMP-1", "2024-01-10", 0, attendance.Session{ID: "s1"})
	assert.ErrorIs(t, err, attendance.ErrSessionNotFound)
}
