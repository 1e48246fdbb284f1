package attendance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/domain/employee"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/pkg/facecheck"
	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
)

type fakeAttendanceRepo struct {
	events []attendance.Event
}

func (r *fakeAttendanceRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	event.CreatedAt = time.Now()
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Event, error) {
	return r.events, nil
}

func (r *fakeAttendanceRepo) ListByDay(_ context.Context, day time.Time) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, e := range r.events {
		if e.Timestamp.Format("2006-01-02") == day.Format("2006-01-02") {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ExistsByEmployeeKindDay(_ context.Context, employeeID string, kind attendance.Kind, day time.Time) (bool, error) {
	for _, e := range r.events {
		if e.EmployeeID == employeeID && e.Kind == kind && e.Timestamp.Format("2006-01-02") == day.Format("2006-01-02") {
			return true, nil
		}
	}
	return false, nil
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
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

type fakePolicyRepo struct {
	policy policy.ShiftPolicy
}

func (r *fakePolicyRepo) Get(_ context.Context) (policy.ShiftPolicy, error) {
	return r.policy, nil
}

func (r *fakePolicyRepo) Replace(_ context.Context, p policy.ShiftPolicy) error {
	r.policy = p
	return nil
}

type fakeFileService struct{}

func (fakeFileService) UploadAttendancePhoto(_ context.Context, employeeID string, date time.Time, _ io.Reader, filename string, kind string) (string, error) {
	return fmt.Sprintf("attendance/%s/%s/%s-%s", employeeID, date.Format("2006-01-02"), kind, filename), nil
}

func (fakeFileService) GetFileURL(_ context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func (fakeFileService) DeleteFile(_ context.Context, _ string) error {
	return nil
}

type fakeVerifier struct {
	accept bool
	err    error
}

func (v fakeVerifier) VerifyFace(_ context.Context, _ []byte, _ string) (bool, error) {
	return v.accept, v.err
}

func (v fakeVerifier) MotivationalQuote(_ context.Context, kind facecheck.QuoteKind) (string, error) {
	return "quote for " + string(kind), nil
}

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

type testFile struct{ *bytes.Reader }

func (testFile) Close() error { return nil }

func photoUpload() (multipart.File, *multipart.FileHeader) {
	header := &multipart.FileHeader{
		Filename: "selfie.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
	return testFile{bytes.NewReader([]byte("jpeg-bytes"))}, header
}

func officePolicy() policy.ShiftPolicy {
	return policy.ShiftPolicy{
		Office:          geo.Point{Lat: 31.2304, Lng: 121.4737},
		WorkStart:       policy.ClockTime{Hour: 9, Minute: 0},
		WorkEnd:         policy.ClockTime{Hour: 18, Minute: 0},
		GeofenceRadiusM: 100,
	}
}

func newTestService(repo *fakeAttendanceRepo, verifier facecheck.Verifier, now time.Time) attendance.AttendanceService {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Dana Wu", Gender: employee.GenderFemale, Position: "Engineer"},
	}}
	svc := NewAttendanceService(nil, repo, employees, &fakePolicyRepo{policy: officePolicy()}, fakeFileService{}, verifier, &seqIDGen{})
	impl := svc.(*AttendanceServiceImpl)
	impl.now = func() time.Time { return now }
	impl.withTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc
}

func submitRequest(kind string, lat, lng float64) attendance.SubmitEventRequest {
	file, header := photoUpload()
	return attendance.SubmitEventRequest{
		EmployeeID: "emp-1",
		Kind:       kind,
		Latitude:   &lat,
		Longitude:  &lng,
		File:       file,
		FileHeader: header,
	}
}

func TestSubmitEventOnTime(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 8, 55, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	resp, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Dana Wu", resp.EmployeeName)
	assert.Equal(t, string(policy.StatusOnTime), resp.Status)
	assert.NotEmpty(t, resp.Quote)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "id-0001", repo.events[0].ID)
}

func TestSubmitEventLate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 15, 30, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	resp, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	require.NoError(t, err)

	assert.Equal(t, string(policy.StatusLate), resp.Status)
}

func TestSubmitEventCheckOutAlwaysRegular(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 20, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	resp, err := svc.SubmitEvent(context.Background(), submitRequest("check-out", 31.2304, 121.4737))
	require.NoError(t, err)

	assert.Equal(t, string(policy.StatusRegular), resp.Status)
}

func TestSubmitEventDuplicate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	require.NoError(t, err)

	_, err = svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)
	assert.Len(t, repo.events, 1)
}

func TestSubmitEventOutsideGeofence(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	// Roughly 150 m north of the office.
	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.23175, 121.4737))
	require.Error(t, err)

	var geoErr *attendance.GeofenceError
	require.ErrorAs(t, err, &geoErr)
	assert.InDelta(t, 150, geoErr.DistanceM, 5)
	assert.Empty(t, repo.events)
}

func TestSubmitEventMissingLocation(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	file, header := photoUpload()
	req := attendance.SubmitEventRequest{
		EmployeeID: "emp-1",
		Kind:       "check-in",
		File:       file,
		FileHeader: header,
	}

	_, err := svc.SubmitEvent(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)
}

func TestSubmitEventFaceRejected(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: false}, now)

	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	assert.ErrorIs(t, err, attendance.ErrFaceRejected)
	assert.Empty(t, repo.events)
}

func TestSubmitEventVerifierUnavailable(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{err: errors.New("upstream timeout")}, now)

	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	assert.ErrorIs(t, err, attendance.ErrFaceRejected)
}

func TestSubmitEventUnknownEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	req := submitRequest("check-in", 31.2304, 121.4737)
	req.EmployeeID = "emp-999"

	_, err := svc.SubmitEvent(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// txMarkerRepo reports stale "no duplicate" answers outside the transaction
// and the real answer inside it, and fails the test if the insert runs
// outside the transactional scope.
type txMarkerRepo struct {
	*fakeAttendanceRepo
	t    *testing.T
	inTx *bool
}

func (r *txMarkerRepo) ExistsByEmployeeKindDay(ctx context.Context, employeeID string, kind attendance.Kind, day time.Time) (bool, error) {
	if !*r.inTx {
		return false, nil
	}
	return r.fakeAttendanceRepo.ExistsByEmployeeKindDay(ctx, employeeID, kind, day)
}

func (r *txMarkerRepo) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	if !*r.inTx {
		r.t.Error("event insert ran outside the transaction")
	}
	return r.fakeAttendanceRepo.Create(ctx, event)
}

func TestSubmitEventPersistsInsideTransaction(t *testing.T) {
	inTx := false
	base := &fakeAttendanceRepo{}
	repo := &txMarkerRepo{fakeAttendanceRepo: base, t: t, inTx: &inTx}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	svc := newTestService(base, fakeVerifier{accept: true}, now)
	impl := svc.(*AttendanceServiceImpl)
	impl.AttendanceRepository = repo
	impl.withTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		inTx = true
		defer func() { inTx = false }()
		return fn(ctx)
	}

	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	require.NoError(t, err)
	require.Len(t, base.events, 1)

	// The early check sees the stale answer, so only the re-check inside
	// the transaction can catch this duplicate and abort the insert.
	_, err = svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)
	assert.Len(t, base.events, 1)
}

func TestListToday(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, fakeVerifier{accept: true}, now)

	_, err := svc.SubmitEvent(context.Background(), submitRequest("check-in", 31.2304, 121.4737))
	require.NoError(t, err)

	// Yesterday's event must not show up.
	repo.events = append(repo.events, attendance.Event{
		ID:         "id-old",
		EmployeeID: "emp-1",
		Kind:       attendance.KindCheckIn,
		Timestamp:  now.AddDate(0, 0, -1),
	})

	events, err := svc.ListToday(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "id-0001", events[0].ID)
}
