package attendance

import (
	"time"

	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
)

type Kind string

const (
	KindCheckIn  Kind = "check-in"
	KindCheckOut Kind = "check-out"
)

func ValidKinds() []string {
	return []string{string(KindCheckIn), string(KindCheckOut)}
}

// Event is one verified check-in or check-out. Events are immutable once
// created and the collection is append-only; DistanceM and Status are
// computed from the shift policy in effect at submission time and never
// recomputed when the policy changes.
type Event struct {
	ID           string
	EmployeeID   string
	EmployeeName string // denormalized snapshot, survives employee deletion
	Kind         Kind
	Timestamp    time.Time
	PhotoPath    string
	Location     geo.Point
	DistanceM    float64
	Status       policy.Status
	CreatedAt    time.Time
}

// Day returns the event's local calendar day, the grouping key for ledger
// aggregation.
func (e Event) Day() time.Time {
	y, m, d := e.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Timestamp.Location())
}
