package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestEmployeeRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	emp := employee.Employee{
		ID:            "EMP-1",
		Name:          "Ayu Lestari",
		Department:    "Engineering",
		MonthlySalary: decimal.NewFromInt(2600),
	}
	require.NoError(t, store.Save(ctx, emp))

	// A fresh store over the same directory sees the data.
	reopened, err := NewStore(dir)
	require.NoError(t, err)

	got, err := reopened.GetByID(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", got.Name)
	assert.Equal(t, "Engineering", got.Department)
	assert.True(t, got.MonthlySalary.Equal(decimal.NewFromInt(2600)))

	all, err := reopened.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetByIDNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetByID(context.Background(), "GHOST")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployeeMissingFileIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "GHOST"))
}

func TestSessionRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	session := attendance.Session{
		ID:          "s1",
		EmployeeID:  "EMP-1",
		Date:        "2024-01-10",
		CheckIn:     "2024-01-10 09:00:00",
		CheckInNote: "on site",
	}
	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", session))

	session.CheckOut = "2024-01-10 17:00:00"
	session.CheckOutNote = "done"
	require.NoError(t, store.Update(ctx, "EMP-1", "2024-01-10", 0, session))

	reopened, err := NewStore(dir)
	require.NoError(t, err)

	sessions, err := reopened.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, session, sessions[0])

	byDate, err := reopened.GetAllByEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Len(t, byDate["2024-01-10"], 1)
}

func TestUpdateOutOfRange(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Update(ctx, "EMP-1", "2024-01-10", 0, attendance.Session{})
	assert.ErrorIs(t, err, attendance.ErrSessionNotFound)
}

func TestOnDiskLayout(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", attendance.Session{
		ID:      "s1",
		Date:    "2024-01-10",
		CheckIn: "2024-01-10 09:00:00",
	}))

	// The document is keyed date first, then employee, the layout the
	// legacy writer produced.
	data, err := os.ReadFile(filepath.Join(dir, "attendance.json"))
	require.NoError(t, err)

	var doc map[string]map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "2024-01-10")
	require.Contains(t, doc["2024-01-10"], "EMP-1")
	assert.Equal(t, "2024-01-10 09:00:00", doc["2024-01-10"]["EMP-1"][0]["check_in"])
}

func TestLegacySingleRecordShape(t *testing.T) {
	dir := t.TempDir()

	// Early versions stored one record object instead of a list.
	legacy := `{
        "2024-01-10": {
            "EMP-1": {"check_in": "2024-01-10 09:00:00", "check_out": "2024-01-10 17:00:00"},
            "EMP-2": [{"check_in": "2024-01-10 10:00:00", "check_out": ""}]
        }
    }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attendance.json"), []byte(legacy), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	sessions, err := store.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "2024-01-10 09:00:00", sessions[0].CheckIn)
	assert.Equal(t, "2024-01-10 17:00:00", sessions[0].CheckOut)

	sessions, err = store.GetByDate(ctx, "EMP-2", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsOpen())
}

func TestDeleteByEmployeePrunesEmptyDates(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-10", attendance.Session{
		CheckIn: "2024-01-10 09:00:00",
	}))
	require.NoError(t, store.Append(ctx, "EMP-1", "2024-01-11", attendance.Session{
		CheckIn: "2024-01-11 09:00:00",
	}))
	require.NoError(t, store.Append(ctx, "EMP-2", "2024-01-11", attendance.Session{
		CheckIn: "2024-01-11 10:00:00",
	}))

	require.NoError(t, store.DeleteByEmployee(ctx, "EMP-1"))

	byDate, err := store.GetAllByEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Empty(t, byDate)

	// 2024-01-10 had only EMP-1 and is gone; 2024-01-11 survives for EMP-2.
	data, err := os.ReadFile(filepath.Join(dir, "attendance.json"))
	require.NoError(t, err)

	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "2024-01-10")
	require.Contains(t, doc, "2024-01-11")
	assert.Contains(t, doc["2024-01-11"], "EMP-2")
}

func TestMissingFilesReadAsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	sessions, err := store.GetByDate(ctx, "EMP-1", "2024-01-10")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
