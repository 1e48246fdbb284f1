package policy

import "context"

// PolicyService exposes the admin settings operations.
type PolicyService interface {
	// GetPolicy retrieves the current shift policy
	GetPolicy(ctx context.Context) (PolicyResponse, error)

	// UpdatePolicy replaces the shift policy
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}
