package leave

import (
	"context"
	"fmt"

	"github.com/prostaff/attendance-backend-go/internal/domain/employee"
	"github.com/prostaff/attendance-backend-go/internal/domain/leave"
	"github.com/prostaff/attendance-backend-go/internal/pkg/idgen"
	"github.com/prostaff/attendance-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	idGen idgen.Generator
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, idGen idgen.Generator) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		idGen:              idGen,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	reason := req.Reason
	if reason == "" {
		reason = leave.DefaultReason
	}

	record := leave.LeaveRecord{
		ID:           s.idGen.NewID(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         date,
		Reason:       reason,
	}

	created, err := s.LeaveRepository.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapLeaveToResponse(record))
	}
	return responses, nil
}

// DeleteLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}

func mapLeaveToResponse(record leave.LeaveRecord) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		Reason:       record.Reason,
	}
}
