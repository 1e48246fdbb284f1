package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// Get implements policy.PolicyRepository.
//
// The shift_policy table holds a single row pinned to id 1.
func (r *policyRepository) Get(ctx context.Context) (policy.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT work_start_time, work_end_time, office_latitude, office_longitude,
			   geofence_radius_m, updated_at
		FROM shift_policy
		WHERE id = 1
	`

	var (
		workStart string
		workEnd   string
		pol       policy.ShiftPolicy
	)
	err := q.QueryRow(ctx, query).Scan(
		&workStart,
		&workEnd,
		&pol.Office.Lat,
		&pol.Office.Lng,
		&pol.GeofenceRadiusM,
		&pol.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.ShiftPolicy{}, policy.ErrPolicyNotFound
		}
		return policy.ShiftPolicy{}, fmt.Errorf("failed to get shift policy: %w", err)
	}

	if pol.WorkStart, err = policy.ParseClockTime(workStart); err != nil {
		return policy.ShiftPolicy{}, fmt.Errorf("stored work start is corrupt: %w", err)
	}
	if pol.WorkEnd, err = policy.ParseClockTime(workEnd); err != nil {
		return policy.ShiftPolicy{}, fmt.Errorf("stored work end is corrupt: %w", err)
	}

	return pol, nil
}

// Replace implements policy.PolicyRepository.
func (r *policyRepository) Replace(ctx context.Context, pol policy.ShiftPolicy) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_policy (
			id, work_start_time, work_end_time, office_latitude, office_longitude,
			geofence_radius_m, updated_at
		) VALUES (
			1, $1, $2, $3, $4, $5, NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			office_latitude = EXCLUDED.office_latitude,
			office_longitude = EXCLUDED.office_longitude,
			geofence_radius_m = EXCLUDED.geofence_radius_m,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		pol.WorkStart.String(),
		pol.WorkEnd.String(),
		pol.Office.Lat,
		pol.Office.Lng,
		pol.GeofenceRadiusM,
	)
	if err != nil {
		return fmt.Errorf("failed to replace shift policy: %w", err)
	}

	return nil
}
