package postgresql

import (
	"context"
	"fmt"

	"github.com/prostaff/attendance-backend-go/internal/domain/leave"
	"github.com/prostaff/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (id, employee_id, employee_name, date, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.EmployeeName,
		record.Date,
		record.Reason,
	).Scan(&record.CreatedAt)

	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return record, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, date, reason, created_at
		FROM leave_records
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var record leave.LeaveRecord
		err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.EmployeeName,
			&record.Date,
			&record.Reason,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave records: %w", err)
	}

	return records, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
