package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/domain/leave"
	"github.com/prostaff/attendance-backend-go/internal/domain/ledger"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
)

type LedgerServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRepository
	policy.PolicyRepository
}

func NewLedgerService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	policyRepo policy.PolicyRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		PolicyRepository:     policyRepo,
	}
}

// BuildLedger implements ledger.LedgerService.
func (s *LedgerServiceImpl) BuildLedger(ctx context.Context, filter ledger.Filter) ([]ledger.Row, error) {
	events, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	leaves, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	pol, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift policy: %w", err)
	}

	return aggregate(events, leaves, pol, filter), nil
}

type rowKey struct {
	date       string
	employeeID string
}

// aggregate folds events and leave records into one row per employee per
// day. Multiple check-ins resolve to the earliest, multiple check-outs to
// the latest; a leave record wins the display for its day.
func aggregate(events []attendance.Event, leaves []leave.LeaveRecord, pol policy.ShiftPolicy, filter ledger.Filter) []ledger.Row {
	rows := make(map[rowKey]*ledger.Row)
	var order []rowKey

	upsert := func(key rowKey, name string) *ledger.Row {
		if row, ok := rows[key]; ok {
			return row
		}
		row := &ledger.Row{
			Date:            key.date,
			EmployeeID:      key.employeeID,
			EmployeeName:    name,
			CheckInDisplay:  ledger.MissingTime,
			CheckOutDisplay: ledger.MissingTime,
		}
		rows[key] = row
		order = append(order, key)
		return row
	}

	for _, event := range events {
		if !matchesFilter(event.EmployeeID, event.Timestamp, filter) {
			continue
		}

		key := rowKey{date: event.Day().Format("2006-01-02"), employeeID: event.EmployeeID}
		row := upsert(key, event.EmployeeName)

		switch event.Kind {
		case attendance.KindCheckIn:
			if row.CheckIn == nil || event.Timestamp.Before(*row.CheckIn) {
				t := event.Timestamp
				row.CheckIn = &t
				row.Status = string(event.Status)
			}
		case attendance.KindCheckOut:
			if row.CheckOut == nil || event.Timestamp.After(*row.CheckOut) {
				t := event.Timestamp
				row.CheckOut = &t
			}
		}
	}

	for _, record := range leaves {
		if !matchesFilter(record.EmployeeID, record.Date, filter) {
			continue
		}

		key := rowKey{date: record.Date.Format("2006-01-02"), employeeID: record.EmployeeID}
		row := upsert(key, record.EmployeeName)
		row.IsLeave = true
		row.LeaveReason = record.Reason
	}

	for _, key := range order {
		finalize(rows[key], pol)
	}

	// Newest day first; insertion order within a day.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].date > order[j].date
	})

	result := make([]ledger.Row, 0, len(order))
	for _, key := range order {
		result = append(result, *rows[key])
	}
	return result
}

// finalize derives the display columns from the resolved instants.
func finalize(row *ledger.Row, pol policy.ShiftPolicy) {
	if row.IsLeave {
		row.CheckInDisplay = ledger.LeaveDisplay
		row.CheckOutDisplay = ledger.MissingTime
		row.Status = ""
		return
	}

	if row.CheckIn != nil {
		row.CheckInDisplay = row.CheckIn.Format("15:04")
		if status, minutes := pol.ClassifyCheckIn(*row.CheckIn); status == policy.StatusLate {
			row.IsLate = true
			row.Lateness = fmt.Sprintf("%dm", minutes)
		}
	}

	if row.CheckOut != nil {
		row.CheckOutDisplay = row.CheckOut.Format("15:04")
		if hours, ok := pol.OvertimeHours(*row.CheckOut); ok {
			row.IsOvertime = true
			row.Overtime = fmt.Sprintf("+%.1fh", hours)
		}
	}
}

func matchesFilter(employeeID string, t time.Time, filter ledger.Filter) bool {
	if filter.EmployeeID != "" && employeeID != filter.EmployeeID {
		return false
	}

	day := t.Format("2006-01-02")
	if filter.DateStart != nil && day < filter.DateStart.Format("2006-01-02") {
		return false
	}
	if filter.DateEnd != nil && day > filter.DateEnd.Format("2006-01-02") {
		return false
	}
	return true
}
