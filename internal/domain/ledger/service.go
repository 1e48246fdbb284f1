package ledger

import "context"

// LedgerService folds the event and leave collections into daily rows.
// Building never fails on its own account; absent or malformed filter
// bounds are treated as unbounded and an empty result is a valid result.
type LedgerService interface {
	BuildLedger(ctx context.Context, filter Filter) ([]Row, error)
}
