package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, employee_name, kind, timestamp, photo_path,
	latitude, longitude, distance_m, status, created_at
`

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, employee_id, employee_name, kind, timestamp, photo_path,
			latitude, longitude, distance_m, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.EmployeeName,
		event.Kind,
		event.Timestamp,
		event.PhotoPath,
		event.Location.Lat,
		event.Location.Lng,
		event.DistanceM,
		event.Status,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Event, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_events
		ORDER BY timestamp
	`
	return r.queryEvents(ctx, query)
}

// ListByDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDay(ctx context.Context, day time.Time) ([]attendance.Event, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_events
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp
	`
	start := startOfDay(day)
	return r.queryEvents(ctx, query, start, start.AddDate(0, 0, 1))
}

// ExistsByEmployeeKindDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) ExistsByEmployeeKindDay(ctx context.Context, employeeID string, kind attendance.Kind, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_events
			WHERE employee_id = $1
			  AND kind = $2
			  AND timestamp >= $3 AND timestamp < $4
		)
	`

	start := startOfDay(day)

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, kind, start, start.AddDate(0, 0, 1)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing event: %w", err)
	}

	return exists, nil
}

func (r *attendanceRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var event attendance.Event
		err := rows.Scan(
			&event.ID,
			&event.EmployeeID,
			&event.EmployeeName,
			&event.Kind,
			&event.Timestamp,
			&event.PhotoPath,
			&event.Location.Lat,
			&event.Location.Lng,
			&event.DistanceM,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
