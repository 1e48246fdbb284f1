package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostaff/attendance-backend-go/internal/domain/employee"
	"github.com/prostaff/attendance-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	records []leave.LeaveRecord
}

func (r *fakeLeaveRepo) Create(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return record, nil
}

func (r *fakeLeaveRepo) List(_ context.Context) ([]leave.LeaveRecord, error) {
	return r.records, nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

type fixedIDGen struct{}

func (fixedIDGen) NewID() string { return "leave-1" }

func newTestService(repo *fakeLeaveRepo) leave.LeaveService {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Dana Wu"},
	}}
	return NewLeaveService(repo, employees, fixedIDGen{})
}

func TestCreateLeaveSnapshotsEmployeeName(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Reason:     "Medical appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana Wu", resp.EmployeeName)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "Medical appointment", resp.Reason)
}

func TestCreateLeaveDefaultReason(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.DefaultReason, resp.Reason)
}

func TestCreateLeaveUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{})

	_, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-404",
		Date:       "2026-03-02",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateLeaveInvalidDate(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{})

	_, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Date:       "02/03/2026",
	})
	assert.Error(t, err)
}

func TestDeleteLeave(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLeave(context.Background(), "leave-1"))
	assert.Empty(t, repo.records)

	assert.ErrorIs(t, svc.DeleteLeave(context.Background(), "leave-1"), leave.ErrLeaveNotFound)
}
