package policy

import "context"

// PolicyRepository stores the single shift policy row. The engine reads the
// whole policy and admins replace it wholesale; there is no partial update.
type PolicyRepository interface {
	// Get retrieves the current shift policy
	Get(ctx context.Context) (ShiftPolicy, error)

	// Replace overwrites the shift policy, creating it if absent
	Replace(ctx context.Context, p ShiftPolicy) error
}
