package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/domain/employee"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/pkg/database"
	"github.com/prostaff/attendance-backend-go/internal/pkg/facecheck"
	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
	"github.com/prostaff/attendance-backend-go/internal/pkg/idgen"
	"github.com/prostaff/attendance-backend-go/internal/repository/postgresql"
	"github.com/prostaff/attendance-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy.PolicyRepository
	fileService file.FileService
	verifier    facecheck.Verifier
	idGen       idgen.Generator
	now         func() time.Time
	withTx      func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo policy.PolicyRepository,
	fileService file.FileService,
	verifier facecheck.Verifier,
	idGen idgen.Generator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		PolicyRepository:     policyRepo,
		fileService:          fileService,
		verifier:             verifier,
		idGen:                idGen,
		now:                  time.Now,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// SubmitEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitEvent(ctx context.Context, req attendance.SubmitEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	// A request without acquired coordinates means the upstream
	// geolocation collaborator failed; the user is told to check
	// permissions rather than getting a generic validation error.
	if req.Latitude == nil || req.Longitude == nil {
		return attendance.EventResponse{}, attendance.ErrLocationUnavailable
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	pol, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to load shift policy: %w", err)
	}

	now := s.now()
	kind := attendance.Kind(req.Kind)

	exists, err := s.AttendanceRepository.ExistsByEmployeeKindDay(ctx, emp.ID, kind, now)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to check for duplicate event: %w", err)
	}
	if exists {
		return attendance.EventResponse{}, attendance.ErrDuplicateEvent
	}

	point := geo.Point{Lat: *req.Latitude, Lng: *req.Longitude}
	distance, inside := pol.Fence().Check(point)
	if !inside {
		return attendance.EventResponse{}, &attendance.GeofenceError{DistanceM: math.Round(distance)}
	}

	photo, err := io.ReadAll(req.File)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to read photo: %w", err)
	}

	accepted, err := s.verifier.VerifyFace(ctx, photo, req.FileHeader.Header.Get("Content-Type"))
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("%w: verifier unavailable", attendance.ErrFaceRejected)
	}
	if !accepted {
		return attendance.EventResponse{}, attendance.ErrFaceRejected
	}

	status := policy.StatusRegular
	if kind == attendance.KindCheckIn {
		status, _ = pol.ClassifyCheckIn(now)
	}

	photoPath, err := s.fileService.UploadAttendancePhoto(ctx, emp.ID, now, bytes.NewReader(photo), req.FileHeader.Filename, string(kind))
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to store attendance photo: %w", err)
	}

	event := attendance.Event{
		ID:           s.idGen.NewID(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Kind:         kind,
		Timestamp:    now,
		PhotoPath:    photoPath,
		Location:     point,
		DistanceM:    distance,
		Status:       status,
	}

	// The duplicate check is re-run inside the insert transaction so two
	// concurrent submitters cannot both pass the early check above.
	var created attendance.Event
	err = s.withTx(ctx, func(txCtx context.Context) error {
		exists, err := s.AttendanceRepository.ExistsByEmployeeKindDay(txCtx, emp.ID, kind, now)
		if err != nil {
			return fmt.Errorf("failed to check for duplicate event: %w", err)
		}
		if exists {
			return attendance.ErrDuplicateEvent
		}

		created, err = s.AttendanceRepository.Create(txCtx, event)
		if err != nil {
			return fmt.Errorf("failed to create attendance event: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	resp := s.mapEventToResponse(ctx, created)
	resp.Quote = s.motivationalQuote(ctx, kind, status)
	return resp, nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.EventResponse, error) {
	events, err := s.AttendanceRepository.ListByDay(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, s.mapEventToResponse(ctx, event))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) mapEventToResponse(ctx context.Context, event attendance.Event) attendance.EventResponse {
	// Photo URL resolution is best effort; the event itself is the record.
	photoURL, _ := s.fileService.GetFileURL(ctx, event.PhotoPath)

	return attendance.EventResponse{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		EmployeeName: event.EmployeeName,
		Kind:         string(event.Kind),
		Timestamp:    event.Timestamp.Format("2006-01-02 15:04:05"),
		Latitude:     event.Location.Lat,
		Longitude:    event.Location.Lng,
		DistanceM:    event.DistanceM,
		Status:       string(event.Status),
		PhotoURL:     photoURL,
	}
}

// motivationalQuote asks the external service for a quote matching the
// outcome. Decorative: failures degrade to a canned line inside the
// verifier wrapper, never to a failed submission.
func (s *AttendanceServiceImpl) motivationalQuote(ctx context.Context, kind attendance.Kind, status policy.Status) string {
	quoteKind := facecheck.QuoteCheckOut
	if kind == attendance.KindCheckIn {
		quoteKind = facecheck.QuoteOnTime
		if status == policy.StatusLate {
			quoteKind = facecheck.QuoteLate
		}
	}

	quote, err := s.verifier.MotivationalQuote(ctx, quoteKind)
	if err != nil {
		return ""
	}
	return quote
}
