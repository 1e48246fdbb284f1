package policy

import (
	"context"
	"fmt"

	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepo,
	}
}

// GetPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) GetPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	pol, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to load shift policy: %w", err)
	}
	return mapPolicyToResponse(pol), nil
}

// UpdatePolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) UpdatePolicy(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	workStart, err := policy.ParseClockTime(req.WorkStartTime)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	workEnd, err := policy.ParseClockTime(req.WorkEndTime)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	pol := policy.ShiftPolicy{
		Office:          geo.Point{Lat: req.OfficeLatitude, Lng: req.OfficeLongitude},
		WorkStart:       workStart,
		WorkEnd:         workEnd,
		GeofenceRadiusM: req.GeofenceRadiusM,
	}

	if err := s.PolicyRepository.Replace(ctx, pol); err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to update shift policy: %w", err)
	}

	// Read back so the response carries the stored UpdatedAt.
	stored, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to load shift policy: %w", err)
	}
	return mapPolicyToResponse(stored), nil
}

func mapPolicyToResponse(pol policy.ShiftPolicy) policy.PolicyResponse {
	resp := policy.PolicyResponse{
		WorkStartTime:   pol.WorkStart.String(),
		WorkEndTime:     pol.WorkEnd.String(),
		OfficeLatitude:  pol.Office.Lat,
		OfficeLongitude: pol.Office.Lng,
		GeofenceRadiusM: pol.GeofenceRadiusM,
	}
	if !pol.UpdatedAt.IsZero() {
		resp.UpdatedAt = pol.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
