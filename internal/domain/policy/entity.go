package policy

import (
	"fmt"
	"math"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
)

// Status is the classification stored on an attendance event at creation
// time. Check-outs are always recorded as Regular; overtime is a reporting
// concern, not a stored status.
type Status string

const (
	StatusOnTime  Status = "on-time"
	StatusLate    Status = "late"
	StatusRegular Status = "regular"
)

// ClockTime is a time of day with minute precision, as configured by the
// administrator ("HH:MM").
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (24-hour clock).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// OnDay returns the instant at this clock time on t's calendar day, in t's
// location, with seconds and below zeroed. This is the "limit" a timestamp
// is classified against.
func (c ClockTime) OnDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// ShiftPolicy is the administrator-configured shift window and geofence.
// Read-only to the engine; events are classified against the policy in
// effect when they are created and never reclassified.
type ShiftPolicy struct {
	Office          geo.Point
	WorkStart       ClockTime
	WorkEnd         ClockTime
	GeofenceRadiusM float64
	UpdatedAt       time.Time
}

// Fence returns the office geofence.
func (p ShiftPolicy) Fence() geo.Fence {
	return geo.Fence{Center: p.Office, RadiusM: p.GeofenceRadiusM}
}

// ClassifyCheckIn compares a check-in timestamp against the shift start on
// the same calendar day. Strictly after the limit is late; arriving exactly
// on the limit is on time. Lateness is whole minutes, floored.
func (p ShiftPolicy) ClassifyCheckIn(t time.Time) (Status, int) {
	limit := p.WorkStart.OnDay(t)
	if !t.After(limit) {
		return StatusOnTime, 0
	}
	lateMinutes := int(math.Floor(t.Sub(limit).Minutes()))
	return StatusLate, lateMinutes
}

// OvertimeHours compares a check-out timestamp against the shift end on the
// same calendar day. Strictly after the limit counts as overtime; leaving
// exactly on the limit does not. The magnitude is in hours.
func (p ShiftPolicy) OvertimeHours(t time.Time) (float64, bool) {
	limit := p.WorkEnd.OnDay(t)
	if !t.After(limit) {
		return 0, false
	}
	return t.Sub(limit).Hours(), true
}
